package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/rest/request"
	"github.com/Guyuepp/go-clean-social/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Fetch lists comments, filtered by ?post= when given
func (h *CommentHandler) Fetch(c *gin.Context) {
	q := domain.CommentQuery{
		Cursor: c.Query("cursor"),
		Num:    pageNum(c),
	}
	if s := c.Query("post"); s != "" {
		postID, err := strconv.ParseInt(s, 10, 64)
		if err != nil || postID <= 0 {
			abortWithError(c, domain.NewValidationError("post", "A valid integer is required."))
			return
		}
		q.PostID = postID
	}

	comments, nextCursor, err := h.Service.Fetch(c.Request.Context(), requesterID(c), q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), requesterID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) Store(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	comment := req.ToDomain()
	if err := h.Service.Create(c.Request.Context(), requesterID(c), &comment); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// Update serves both PUT and PATCH since content is the only writable field
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.CommentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	comment, err := h.Service.Update(c.Request.Context(), requesterID(c), id, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), requesterID(c), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

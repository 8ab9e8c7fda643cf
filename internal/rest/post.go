package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/rest/request"
	"github.com/Guyuepp/go-clean-social/internal/rest/response"
)

// PostHandler represent the httphandler for posts
type PostHandler struct {
	Service domain.PostUsecase
}

func NewPostHandler(svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Service: svc,
	}
}

// Fetch lists posts, optionally filtered by ?search=
func (h *PostHandler) Fetch(c *gin.Context) {
	posts, nextCursor, err := h.Service.Fetch(c.Request.Context(), requesterID(c), c.Query("search"), c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, response.NewPostsFromDomain(posts))
}

// GetByID will get post by given id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.Service.GetByID(c.Request.Context(), requesterID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Store will store the post by given request body
func (h *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	post := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), requesterID(c), &post); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}

// Update replaces title and content (PUT)
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	h.update(c, id, req.ToUpdate())
}

// Patch changes only the fields present in the body
func (h *PostHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.PostPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	h.update(c, id, req.ToUpdate())
}

func (h *PostHandler) update(c *gin.Context, id int64, upd domain.PostUpdate) {
	post, err := h.Service.Update(c.Request.Context(), requesterID(c), id, upd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Delete will delete the post by given param
func (h *PostHandler) Delete(c *gin.Context) {
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

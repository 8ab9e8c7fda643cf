package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/rest/response"
)

// SocialHandler serves the feed, likes and the follow graph
type SocialHandler struct {
	Service domain.SocialUsecase
}

func NewSocialHandler(svc domain.SocialUsecase) *SocialHandler {
	return &SocialHandler{
		Service: svc,
	}
}

func (h *SocialHandler) Feed(c *gin.Context) {
	posts, nextCursor, err := h.Service.Feed(c.Request.Context(), requesterID(c), c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, response.NewPostsFromDomain(posts))
}

func (h *SocialHandler) Like(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res, err := h.Service.LikePost(c.Request.Context(), requesterID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if res == domain.AlreadyLiked {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Already liked"})
		return
	}
	c.JSON(http.StatusCreated, ResponseError{Message: "Post liked"})
}

func (h *SocialHandler) Unlike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res, err := h.Service.UnlikePost(c.Request.Context(), requesterID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if res == domain.NotLiked {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "You have not liked this post"})
		return
	}
	c.JSON(http.StatusOK, ResponseError{Message: "Post unliked"})
}

var followMessages = map[domain.FollowResult]string{
	domain.Followed:         "Followed",
	domain.AlreadyFollowing: "Already following",
	domain.Unfollowed:       "Unfollowed",
	domain.NotFollowing:     "Not following",
}

func (h *SocialHandler) Follow(c *gin.Context) {
	h.follow(c, h.Service.Follow)
}

func (h *SocialHandler) Unfollow(c *gin.Context) {
	h.follow(c, h.Service.Unfollow)
}

func (h *SocialHandler) follow(c *gin.Context, op func(ctx context.Context, requesterID, targetID int64) (domain.FollowResult, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res, err := op(c.Request.Context(), requesterID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": followMessages[res], "changed": res.Changed()})
}

func (h *SocialHandler) Followers(c *gin.Context) {
	h.listUsers(c, h.Service.ListFollowers)
}

func (h *SocialHandler) Following(c *gin.Context) {
	h.listUsers(c, h.Service.ListFollowing)
}

func (h *SocialHandler) listUsers(c *gin.Context, list func(ctx context.Context, requesterID, userID int64) ([]domain.User, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	users, err := list(c.Request.Context(), requesterID(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}

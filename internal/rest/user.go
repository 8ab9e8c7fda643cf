package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/rest/request"
	"github.com/Guyuepp/go-clean-social/internal/rest/response"
)

type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	token, err := h.Service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Service.GetProfile(c.Request.Context(), requesterID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewProfileFromDomain(profile))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req request.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	profile, err := h.Service.UpdateBio(c.Request.Context(), requesterID(c), req.Bio)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewProfileFromDomain(profile))
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/rest/response"
)

type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

func (h *NotificationHandler) Fetch(c *gin.Context) {
	ns, nextCursor, err := h.Service.Fetch(c.Request.Context(), requesterID(c), c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, response.NewNotificationsFromDomain(ns))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.Service.MarkAllRead(c.Request.Context(), requesterID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": n})
}

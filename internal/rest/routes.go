package rest

import "github.com/gin-gonic/gin"

type Handlers struct {
	User         *UserHandler
	Post         *PostHandler
	Comment      *CommentHandler
	Social       *SocialHandler
	Notification *NotificationHandler
}

// RegisterRoutes mounts the public endpoints and, behind auth, everything else
func RegisterRoutes(route gin.IRouter, auth gin.HandlerFunc, h Handlers) {
	route.POST("/register", h.User.Register)
	route.POST("/login", h.User.Login)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.GET("/feed", h.Social.Feed)
		authorized.POST("/posts/:id/like", h.Social.Like)
		authorized.POST("/posts/:id/unlike", h.Social.Unlike)
		authorized.POST("/users/:id/follow", h.Social.Follow)
		authorized.POST("/users/:id/unfollow", h.Social.Unfollow)
		authorized.GET("/users/:id/followers", h.Social.Followers)
		authorized.GET("/users/:id/following", h.Social.Following)

		authorized.GET("/profile", h.User.GetProfile)
		authorized.PATCH("/profile", h.User.UpdateProfile)

		authorized.GET("/posts", h.Post.Fetch)
		authorized.POST("/posts", h.Post.Store)
		authorized.GET("/posts/:id", h.Post.GetByID)
		authorized.PUT("/posts/:id", h.Post.Update)
		authorized.PATCH("/posts/:id", h.Post.Patch)
		authorized.DELETE("/posts/:id", h.Post.Delete)

		authorized.GET("/comments", h.Comment.Fetch)
		authorized.POST("/comments", h.Comment.Store)
		authorized.GET("/comments/:id", h.Comment.GetByID)
		authorized.PUT("/comments/:id", h.Comment.Update)
		authorized.PATCH("/comments/:id", h.Comment.Update)
		authorized.DELETE("/comments/:id", h.Comment.Delete)

		authorized.GET("/notifications", h.Notification.Fetch)
		authorized.POST("/notifications/read", h.Notification.MarkAllRead)
	}
}

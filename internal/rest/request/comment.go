package request

import "github.com/Guyuepp/go-clean-social/domain"

// Comment is the body of POST /comments; the author always comes from the token
type Comment struct {
	PostID  int64  `json:"post_id" binding:"required,gt=0"`
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		PostID:  r.PostID,
		Content: r.Content,
	}
}

// CommentUpdate is the body of PUT and PATCH /comments/:id
type CommentUpdate struct {
	Content string `json:"content" binding:"required"`
}

package response

import "github.com/Guyuepp/go-clean-social/domain"

type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	Content   string `json:"content"`
	Author    *User  `json:"author"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		Author:    NewUserFromDomain(c.Author),
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(DateTimeFormat),
	}
}

func NewCommentsFromDomain(cs []domain.Comment) []Comment {
	res := make([]Comment, len(cs))
	for i := range cs {
		res[i] = NewCommentFromDomain(&cs[i])
	}
	return res
}

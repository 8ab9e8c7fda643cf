package response

import "github.com/Guyuepp/go-clean-social/domain"

type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    *User  `json:"author"`
	Likes     int64  `json:"likes"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    NewUserFromDomain(p.Author),
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
	}
}

func NewPostsFromDomain(ps []domain.Post) []Post {
	res := make([]Post, len(ps))
	for i := range ps {
		res[i] = NewPostFromDomain(&ps[i])
	}
	return res
}

package request

import "github.com/Guyuepp/go-clean-social/domain"

type Post struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

func (r *Post) ToDomain() domain.Post {
	return domain.Post{
		Title:   r.Title,
		Content: r.Content,
	}
}

func (r *Post) ToUpdate() domain.PostUpdate {
	return domain.PostUpdate{
		Title:   &r.Title,
		Content: &r.Content,
	}
}

// PostPatch carries only the fields being changed
type PostPatch struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
}

func (r *PostPatch) ToUpdate() domain.PostUpdate {
	return domain.PostUpdate{
		Title:   r.Title,
		Content: r.Content,
	}
}

package model

import (
	"time"

	"github.com/Guyuepp/go-clean-social/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  int64     `gorm:"column:author_id;not null;index:idx_posts_author_created,priority:1"`
	Likes     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;index:idx_posts_author_created,priority:2"`
	UpdatedAt time.Time
}

func (Post) TableName() string {
	return "posts"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Author:    domain.User{ID: m.AuthorID},
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.Author.ID,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

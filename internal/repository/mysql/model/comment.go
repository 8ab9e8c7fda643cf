package model

import (
	"time"

	"github.com/Guyuepp/go-clean-social/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null;index"`
	AuthorID  int64     `gorm:"column:author_id;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.Author.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		Author:    domain.User{ID: m.AuthorID},
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

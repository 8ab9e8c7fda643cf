package model

import (
	"time"

	"github.com/Guyuepp/go-clean-social/domain"
)

// Like uses (user_id, post_id) as its primary key, so the store itself rejects duplicates.
type Like struct {
	UserID    int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	PostID    int64 `gorm:"column:post_id;primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.Like) Like {
	return Like{
		UserID:    l.UserID,
		PostID:    l.PostID,
		CreatedAt: l.CreatedAt,
	}
}

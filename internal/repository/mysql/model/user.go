package model

import (
	"time"

	"github.com/Guyuepp/go-clean-social/domain"
)

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email     string `gorm:"type:varchar(254);not null;default:''"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type Profile struct {
	UserID    int64  `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Bio       string `gorm:"type:varchar(500);not null;default:''"`
	UpdatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}

func (m *Profile) ToDomain() domain.Profile {
	return domain.Profile{
		UserID:    m.UserID,
		Bio:       m.Bio,
		UpdatedAt: m.UpdatedAt,
	}
}

package model

import (
	"time"

	"github.com/Guyuepp/go-clean-social/domain"
)

type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RecipientID int64     `gorm:"column:recipient_id;not null;index:idx_notifications_recipient_created,priority:1"`
	ActorID     int64     `gorm:"column:actor_id;not null"`
	Verb        string    `gorm:"type:varchar(255);not null"`
	TargetType  string    `gorm:"type:varchar(20);not null"`
	TargetID    int64     `gorm:"column:target_id;not null"`
	Read        bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;index:idx_notifications_recipient_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}

func NewNotificationFromDomain(n domain.Notification) Notification {
	return Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Verb:        n.Verb,
		TargetType:  n.TargetType,
		TargetID:    n.TargetID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ActorID:     m.ActorID,
		Verb:        m.Verb,
		TargetType:  m.TargetType,
		TargetID:    m.TargetID,
		Read:        m.Read,
		CreatedAt:   m.CreatedAt,
	}
}

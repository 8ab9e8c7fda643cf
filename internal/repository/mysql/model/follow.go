package model

import "time"

type Follow struct {
	FollowerID int64 `gorm:"column:follower_id;primaryKey;autoIncrement:false"`
	FolloweeID int64 `gorm:"column:followee_id;primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time
}

func (Follow) TableName() string {
	return "follows"
}

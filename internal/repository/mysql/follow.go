package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{
		DB: db,
	}
}

// Add reports false when the edge already exists. A plain INSERT is used because
// MySQL's upsert counts an unchanged duplicate as affected under clientFoundRows.
func (m *followRepository) Add(ctx context.Context, followerID, followeeID int64) (bool, error) {
	err := m.DB.WithContext(ctx).
		Create(&model.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error
	if isDuplicateKey(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *followRepository) Remove(ctx context.Context, followerID, followeeID int64) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (m *followRepository) ListFollowing(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Order("followee_id").
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (m *followRepository) ListFollowers(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee_id = ?", userID).
		Order("follower_id").
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (m *followRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&n).Error
	return n, err
}

func (m *followRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userID).Count(&n).Error
	return n, err
}

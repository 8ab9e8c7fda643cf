package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

// Add relies on the (user_id, post_id) primary key: the INSERT either creates the row or
// fails with a duplicate key, so concurrent likes of the same pair cannot both succeed.
func (m *likeRepository) Add(ctx context.Context, l *domain.Like) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.NewLikeFromDomain(*l)
		if err := tx.Create(&row).Error; err != nil {
			if isDuplicateKey(err) {
				return domain.ErrConflict
			}
			return err
		}

		result := tx.Model(&model.Post{}).
			Where("id = ?", l.PostID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		l.CreatedAt = row.CreatedAt
		return nil
	})
}

func (m *likeRepository) Remove(ctx context.Context, userID, postID int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return tx.Model(&model.Post{}).
			Where("id = ? AND likes > 0", postID).
			UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
	})
}

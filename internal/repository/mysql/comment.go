package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Fetch(ctx context.Context, q domain.CommentQuery) ([]domain.Comment, error) {
	repository.PageVerify(&q.Num)

	tx := c.DB.WithContext(ctx).Model(&model.Comment{})
	if q.PostID > 0 {
		tx = tx.Where("post_id = ?", q.PostID)
	}
	if q.Cursor != "" {
		createdAt, id, err := repository.DecodeCursor(q.Cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, id)
	}

	var comments []model.Comment
	err := tx.Order("created_at DESC").
		Order("id DESC").
		Limit(int(q.Num)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	if err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return domain.Comment{}, translateError(err)
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return translateError(err)
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	comment.UpdatedAt = time.Now()
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"updated_at": comment.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

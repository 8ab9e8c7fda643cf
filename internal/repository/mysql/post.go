package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

// the mysql layer only talks to the database; authors are filled in by the coordination layer
var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository creates the database layer for posts
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, error) {
	if q.AuthorIDs != nil && len(q.AuthorIDs) == 0 {
		return []domain.Post{}, nil
	}
	repository.PageVerify(&q.Num)

	tx := m.DB.WithContext(ctx).Model(&model.Post{})
	if q.AuthorIDs != nil {
		tx = tx.Where("author_id IN ?", q.AuthorIDs)
	}
	if q.Search != "" {
		pattern := containsPattern(q.Search)
		tx = tx.Where("(title LIKE ? OR content LIKE ?)", pattern, pattern)
	}
	if q.Cursor != "" {
		createdAt, id, err := repository.DecodeCursor(q.Cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, id)
	}

	var posts []model.Post
	err := tx.Order("created_at DESC").
		Order("id DESC").
		Limit(int(q.Num)).
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	if err := m.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return domain.Post{}, translateError(err)
	}
	return post.ToDomain(), nil
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	if err := m.DB.WithContext(ctx).Create(postModel).Error; err != nil {
		return translateError(err)
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return nil
}

func (m *postRepository) Update(ctx context.Context, p *domain.Post) error {
	p.UpdatedAt = time.Now()
	result := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"title":      p.Title,
			"content":    p.Content,
			"updated_at": p.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return
}

package comment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) mustExist(ctx context.Context, postID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) Fetch(ctx context.Context, requesterID int64, q domain.CommentQuery) ([]domain.Comment, string, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return nil, "", err
	}
	if q.PostID > 0 {
		if err := s.mustExist(ctx, q.PostID); err != nil {
			return nil, "", err
		}
	}
	repository.PageVerify(&q.Num)

	res, err := s.commentRepo.Fetch(ctx, q)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Comment{}, "", nil
	}
	if err := s.fillAuthors(ctx, res); err != nil {
		return nil, "", err
	}

	last := res[len(res)-1]
	return res, repository.NextCursor(len(res), q.Num, last.CreatedAt, last.ID), nil
}

func (s *service) GetByID(ctx context.Context, requesterID int64, id int64) (domain.Comment, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return domain.Comment{}, err
	}
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.fillAuthor(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

// Create always records the requester as author, whatever c.Author holds.
func (s *service) Create(ctx context.Context, requesterID int64, c *domain.Comment) error {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return err
	}
	if strings.TrimSpace(c.Content) == "" {
		return domain.NewValidationError("content", "This field may not be blank.")
	}
	if c.PostID <= 0 {
		return domain.NewValidationError("post_id", "This field is required.")
	}
	if err := s.mustExist(ctx, c.PostID); err != nil {
		return err
	}
	if _, err := s.postRepo.GetByID(ctx, c.PostID); err != nil {
		return err
	}

	now := time.Now()
	c.ID = 0
	c.Author = domain.User{ID: requesterID}
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}
	if err := s.fillAuthor(ctx, c); err != nil {
		logrus.Warnf("comment %d stored but author lookup failed: %v", c.ID, err)
	}
	return nil
}

func (s *service) Update(ctx context.Context, requesterID int64, id int64, content string) (domain.Comment, error) {
	c, err := s.loadForWrite(ctx, requesterID, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, domain.NewValidationError("content", "This field may not be blank.")
	}

	c.Content = content
	if err := s.commentRepo.Update(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	if err := s.fillAuthor(ctx, &c); err != nil {
		logrus.Warnf("comment %d updated but author lookup failed: %v", c.ID, err)
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, requesterID int64, id int64) error {
	if _, err := s.loadForWrite(ctx, requesterID, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *service) loadForWrite(ctx context.Context, requesterID, id int64) (domain.Comment, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return domain.Comment{}, err
	}
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := domain.Authorize(requesterID, c, domain.ActionWrite).Err(); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *service) fillAuthor(ctx context.Context, c *domain.Comment) error {
	u, err := s.userRepo.GetByID(ctx, c.Author.ID)
	if err != nil {
		return err
	}
	c.Author = u
	return nil
}

func (s *service) fillAuthors(ctx context.Context, comments []domain.Comment) error {
	ids := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.Author.ID] {
			seen[c.Author.ID] = true
			ids = append(ids, c.Author.ID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for i := range comments {
		if u, ok := userMap[comments[i].Author.ID]; ok {
			comments[i].Author = u
		}
	}
	return nil
}

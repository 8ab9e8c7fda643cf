package post

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
)

const (
	TitleMaxLen = 200

	bloomWarmUpBatch = 1000
)

type Service struct {
	postRepo  domain.PostRepository
	bloomRepo domain.BloomRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:  p,
		bloomRepo: b,
	}
}

func (s *Service) Fetch(ctx context.Context, requesterID int64, search, cursor string, num int64) ([]domain.Post, string, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return nil, "", err
	}
	repository.PageVerify(&num)

	res, err := s.postRepo.Fetch(ctx, domain.PostQuery{
		Search: strings.TrimSpace(search),
		Cursor: cursor,
		Num:    num,
	})
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return res, "", nil
	}
	last := res[len(res)-1]
	return res, repository.NextCursor(len(res), num, last.CreatedAt, last.ID), nil
}

func (s *Service) GetByID(ctx context.Context, requesterID int64, id int64) (domain.Post, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return domain.Post{}, err
	}
	if err := s.mustExist(ctx, id); err != nil {
		return domain.Post{}, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// Store always records the requester as author, whatever p.Author holds.
func (s *Service) Store(ctx context.Context, requesterID int64, p *domain.Post) error {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return err
	}
	if err := validate(p.Title, p.Content); err != nil {
		return err
	}

	now := time.Now()
	p.ID = 0
	p.Author = domain.User{ID: requesterID}
	p.Likes = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Errorf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, requesterID int64, id int64, upd domain.PostUpdate) (domain.Post, error) {
	p, err := s.loadForWrite(ctx, requesterID, id)
	if err != nil {
		return domain.Post{}, err
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if err := validate(p.Title, p.Content); err != nil {
		return domain.Post{}, err
	}

	p.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, &p); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, requesterID int64, id int64) error {
	if _, err := s.loadForWrite(ctx, requesterID, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// InitBloomFilter pages through every post id and loads it into the filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomWarmUpBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomWarmUpBatch {
			break
		}
	}
	logrus.Infof("bloom filter warmed up with %d post ids", total)
	return nil
}

func (s *Service) loadForWrite(ctx context.Context, requesterID, id int64) (domain.Post, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return domain.Post{}, err
	}
	if err := s.mustExist(ctx, id); err != nil {
		return domain.Post{}, err
	}
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := domain.Authorize(requesterID, p, domain.ActionWrite).Err(); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

// mustExist answers ErrNotFound when the bloom filter rules id out.
// A filter error is not fatal, the store gets the final say.
func (s *Service) mustExist(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter lookup failed for post %d: %v", id, err)
		return nil
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func validate(title, content string) error {
	fields := map[string]string{}
	switch {
	case strings.TrimSpace(title) == "":
		fields["title"] = "This field may not be blank."
	case utf8.RuneCountInString(title) > TitleMaxLen:
		fields["title"] = "Ensure this field has no more than 200 characters."
	}
	if strings.TrimSpace(content) == "" {
		fields["content"] = "This field may not be blank."
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

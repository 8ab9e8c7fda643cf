package social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
)

var (
	ErrFollowSelf   = fmt.Errorf("%w: cannot follow yourself", domain.ErrInvalidOperation)
	ErrUnfollowSelf = fmt.Errorf("%w: cannot unfollow yourself", domain.ErrInvalidOperation)
)

type Service struct {
	postRepo   domain.PostRepository
	likeRepo   domain.LikeRepository
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
	bloomRepo  domain.BloomRepository
	sink       domain.NotificationSink
}

var _ domain.SocialUsecase = (*Service)(nil)

func NewService(
	p domain.PostRepository,
	l domain.LikeRepository,
	f domain.FollowRepository,
	u domain.UserRepository,
	b domain.BloomRepository,
	sink domain.NotificationSink,
) *Service {
	return &Service{
		postRepo:   p,
		likeRepo:   l,
		followRepo: f,
		userRepo:   u,
		bloomRepo:  b,
		sink:       sink,
	}
}

// Feed lists posts by the accounts requesterID follows, newest first.
func (s *Service) Feed(ctx context.Context, requesterID int64, cursor string, num int64) ([]domain.Post, string, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return nil, "", err
	}
	repository.PageVerify(&num)

	following, err := s.followRepo.ListFollowing(ctx, requesterID)
	if err != nil {
		return nil, "", err
	}
	if len(following) == 0 {
		return []domain.Post{}, "", nil
	}

	res, err := s.postRepo.Fetch(ctx, domain.PostQuery{
		AuthorIDs: following,
		Cursor:    cursor,
		Num:       num,
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

// LikePost records the like and notifies the author on the first like only.
func (s *Service) LikePost(ctx context.Context, requesterID, postID int64) (domain.LikeResult, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return 0, err
	}
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	err = s.likeRepo.Add(ctx, &domain.Like{
		PostID:    postID,
		UserID:    requesterID,
		CreatedAt: now,
	})
	if errors.Is(err, domain.ErrConflict) {
		return domain.AlreadyLiked, nil
	}
	if err != nil {
		return 0, err
	}

	if post.Author.ID != requesterID {
		s.sink.Emit(domain.Notification{
			RecipientID: post.Author.ID,
			ActorID:     requesterID,
			Verb:        domain.VerbLikedPost,
			TargetType:  domain.TargetPost,
			TargetID:    postID,
			CreatedAt:   now,
		})
	}
	return domain.Liked, nil
}

func (s *Service) UnlikePost(ctx context.Context, requesterID, postID int64) (domain.UnlikeResult, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return 0, err
	}
	if _, err := s.getPost(ctx, postID); err != nil {
		return 0, err
	}

	err := s.likeRepo.Remove(ctx, requesterID, postID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotLiked, nil
	}
	if err != nil {
		return 0, err
	}
	return domain.Unliked, nil
}

func (s *Service) Follow(ctx context.Context, requesterID, targetID int64) (domain.FollowResult, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return 0, err
	}
	if requesterID == targetID {
		return 0, ErrFollowSelf
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return 0, err
	}

	changed, err := s.followRepo.Add(ctx, requesterID, targetID)
	if err != nil {
		return 0, err
	}
	if !changed {
		return domain.AlreadyFollowing, nil
	}
	logrus.Debugf("user %d followed %d", requesterID, targetID)
	return domain.Followed, nil
}

func (s *Service) Unfollow(ctx context.Context, requesterID, targetID int64) (domain.FollowResult, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return 0, err
	}
	if requesterID == targetID {
		return 0, ErrUnfollowSelf
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return 0, err
	}

	changed, err := s.followRepo.Remove(ctx, requesterID, targetID)
	if err != nil {
		return 0, err
	}
	if !changed {
		return domain.NotFollowing, nil
	}
	logrus.Debugf("user %d unfollowed %d", requesterID, targetID)
	return domain.Unfollowed, nil
}

func (s *Service) ListFollowers(ctx context.Context, requesterID, userID int64) ([]domain.User, error) {
	return s.listUsers(ctx, requesterID, userID, s.followRepo.ListFollowers)
}

func (s *Service) ListFollowing(ctx context.Context, requesterID, userID int64) ([]domain.User, error) {
	return s.listUsers(ctx, requesterID, userID, s.followRepo.ListFollowing)
}

// listUsers checks userID exists while the edge ids load, then resolves them to users in list order.
func (s *Service) listUsers(ctx context.Context, requesterID, userID int64, list func(context.Context, int64) ([]int64, error)) ([]domain.User, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return nil, err
	}

	var ids []int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.userRepo.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		ids, err = list(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	res := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (s *Service) getPost(ctx context.Context, postID int64) (domain.Post, error) {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err == nil && !exists {
		return domain.Post{}, domain.ErrNotFound
	}
	if err != nil {
		logrus.Warnf("bloom filter lookup failed for post %d: %v", postID, err)
	}
	return s.postRepo.GetByID(ctx, postID)
}

package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-clean-social/domain"
)

const PostCacheTTL = 10 * time.Minute

// postRepository coordinates the post cache and the database
type postRepository struct {
	db           domain.PostRepository
	cache        domain.PostCache
	userRepo     domain.UserRepository
	rebuildGroup singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository wraps the database layer with a cache and author lookup
func NewPostRepository(db domain.PostRepository, cache domain.PostCache, userRepo domain.UserRepository) *postRepository {
	return &postRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

func (r *postRepository) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, error) {
	posts, err := r.db.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	return r.fillAuthors(ctx, posts)
}

// GetByID serves from cache; a logically expired entry is returned as is and rebuilt in the background.
func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	post, expired, err := r.cache.GetPost(ctx, id)
	if err == nil {
		if expired {
			go r.rebuildPostCache(context.Background(), id)
		}
		return post, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("post cache get error: %v", err)
	}

	result, err, _ := r.rebuildGroup.Do(postKey(id), func() (any, error) {
		return r.loadAndCache(ctx, id)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return result.(domain.Post), nil
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	if err := r.db.Store(ctx, p); err != nil {
		return err
	}

	author, err := r.userRepo.GetByID(ctx, p.Author.ID)
	if err != nil {
		logrus.Warnf("post %d stored but author %d lookup failed: %v", p.ID, p.Author.ID, err)
		return nil
	}
	p.Author = author
	return nil
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	if err := r.db.Update(ctx, p); err != nil {
		return err
	}
	r.evict(ctx, p.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

func (r *postRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.DeletePost(ctx, id); err != nil {
		logrus.Warnf("failed to evict post %d from cache: %v", id, err)
	}
}

func (r *postRepository) loadAndCache(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	author, err := r.userRepo.GetByID(ctx, post.Author.ID)
	if err != nil {
		return domain.Post{}, err
	}
	post.Author = author

	if err := r.cache.SetPost(ctx, &post, PostCacheTTL); err != nil {
		logrus.Warnf("failed to set post cache: %v", err)
	}
	return post, nil
}

func (r *postRepository) rebuildPostCache(ctx context.Context, id int64) {
	_, err, _ := r.rebuildGroup.Do("rebuild:"+postKey(id), func() (any, error) {
		post, err := r.loadAndCache(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			_ = r.cache.DeletePost(ctx, id)
		}
		return post, err
	})
	if err != nil {
		logrus.Errorf("rebuildPostCache failed for id %d: %v", id, err)
	}
}

// fillAuthors replaces the bare author ids with full users in one batch lookup
func (r *postRepository) fillAuthors(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	userIDs := make([]int64, 0, len(posts))
	seen := make(map[int64]bool)
	for _, p := range posts {
		if !seen[p.Author.ID] {
			userIDs = append(userIDs, p.Author.ID)
			seen[p.Author.ID] = true
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for i := range posts {
		if u, ok := userMap[posts[i].Author.ID]; ok {
			posts[i].Author = u
		}
	}
	return posts, nil
}

func postKey(id int64) string {
	return "post:" + strconv.FormatInt(id, 10)
}

// likeRepository evicts the cached post whenever its like count moves
type likeRepository struct {
	db    domain.LikeRepository
	cache domain.PostCache
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db domain.LikeRepository, cache domain.PostCache) *likeRepository {
	return &likeRepository{
		db:    db,
		cache: cache,
	}
}

func (r *likeRepository) Add(ctx context.Context, l *domain.Like) error {
	if err := r.db.Add(ctx, l); err != nil {
		return err
	}
	r.evict(ctx, l.PostID)
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, userID, postID int64) error {
	if err := r.db.Remove(ctx, userID, postID); err != nil {
		return err
	}
	r.evict(ctx, postID)
	return nil
}

func (r *likeRepository) evict(ctx context.Context, postID int64) {
	if err := r.cache.DeletePost(ctx, postID); err != nil {
		logrus.Warnf("failed to evict post %d from cache: %v", postID, err)
	}
}

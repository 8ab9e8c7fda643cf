package social_test

import (
	"context"
	"sort"
	"sync"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
)

// store is an in-memory stand-in for the post, like, follow and user tables.
type store struct {
	mu      sync.Mutex
	users   map[int64]domain.User
	posts   map[int64]domain.Post
	likes   map[[2]int64]bool
	follows map[[2]int64]bool
	queries int
}

func newStore() *store {
	return &store{
		users:   map[int64]domain.User{},
		posts:   map[int64]domain.Post{},
		likes:   map[[2]int64]bool{},
		follows: map[[2]int64]bool{},
	}
}

type postStore struct{ *store }

func (s postStore) Fetch(_ context.Context, q domain.PostQuery) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries++

	allowed := map[int64]bool{}
	for _, id := range q.AuthorIDs {
		allowed[id] = true
	}
	var res []domain.Post
	for _, p := range s.posts {
		if q.AuthorIDs != nil && !allowed[p.Author.ID] {
			continue
		}
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	if q.Cursor != "" {
		at, id, err := repository.DecodeCursor(q.Cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		for i, p := range res {
			if p.CreatedAt.Before(at) || (p.CreatedAt.Equal(at) && p.ID < id) {
				res = res[i:]
				break
			}
			if i == len(res)-1 {
				res = nil
			}
		}
	}
	if int64(len(res)) > q.Num {
		res = res[:q.Num]
	}
	return res, nil
}

func (s postStore) GetByID(_ context.Context, id int64) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	return p, nil
}

func (s postStore) Store(_ context.Context, p *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = *p
	return nil
}

func (s postStore) Update(ctx context.Context, p *domain.Post) error { return s.Store(ctx, p) }

func (s postStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

func (s postStore) FetchIDs(context.Context, int64, int64) ([]int64, error) { return nil, nil }

type likeStore struct{ *store }

func (s likeStore) Add(_ context.Context, l *domain.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[l.PostID]
	if !ok {
		return domain.ErrNotFound
	}
	key := [2]int64{l.UserID, l.PostID}
	if s.likes[key] {
		return domain.ErrConflict
	}
	s.likes[key] = true
	p.Likes++
	s.posts[l.PostID] = p
	return nil
}

func (s likeStore) Remove(_ context.Context, userID, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{userID, postID}
	if !s.likes[key] {
		return domain.ErrNotFound
	}
	delete(s.likes, key)
	p := s.posts[postID]
	p.Likes--
	s.posts[postID] = p
	return nil
}

type followStore struct{ *store }

func (s followStore) Add(_ context.Context, follower, followee int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{follower, followee}
	if s.follows[key] {
		return false, nil
	}
	s.follows[key] = true
	return true, nil
}

func (s followStore) Remove(_ context.Context, follower, followee int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{follower, followee}
	if !s.follows[key] {
		return false, nil
	}
	delete(s.follows, key)
	return true, nil
}

func (s followStore) list(match func(k [2]int64) (int64, bool)) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []int64{}
	for k := range s.follows {
		if id, ok := match(k); ok {
			res = append(res, id)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (s followStore) ListFollowing(_ context.Context, userID int64) ([]int64, error) {
	return s.list(func(k [2]int64) (int64, bool) { return k[1], k[0] == userID }), nil
}

func (s followStore) ListFollowers(_ context.Context, userID int64) ([]int64, error) {
	return s.list(func(k [2]int64) (int64, bool) { return k[0], k[1] == userID }), nil
}

func (s followStore) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	ids, _ := s.ListFollowing(ctx, userID)
	return int64(len(ids)), nil
}

func (s followStore) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	ids, _ := s.ListFollowers(ctx, userID)
	return int64(len(ids)), nil
}

type userStore struct{ *store }

func (s userStore) GetByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (s userStore) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (s userStore) Insert(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

func (s userStore) GetByUsername(context.Context, string) (domain.User, error) {
	return domain.User{}, domain.ErrNotFound
}

// alwaysBloom answers "maybe" for every id.
type alwaysBloom struct{}

func (alwaysBloom) Add(context.Context, int64) error          { return nil }
func (alwaysBloom) Exists(context.Context, int64) (bool, error) { return true, nil }
func (alwaysBloom) BulkAdd(context.Context, []int64) error    { return nil }

type recordingSink struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (r *recordingSink) Emit(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

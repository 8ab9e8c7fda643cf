package social_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/domain/mocks"
	"github.com/Guyuepp/go-clean-social/internal/usecase/social"
)

type fixture struct {
	st   *store
	sink *recordingSink
	svc  *social.Service
}

func newFixture(userIDs ...int64) fixture {
	st := newStore()
	for _, id := range userIDs {
		st.users[id] = domain.User{ID: id}
	}
	sink := &recordingSink{}
	svc := social.NewService(postStore{st}, likeStore{st}, followStore{st}, userStore{st}, alwaysBloom{}, sink)
	return fixture{st: st, sink: sink, svc: svc}
}

func (f fixture) addPost(id, author int64, title string, at time.Time) {
	f.st.posts[id] = domain.Post{ID: id, Title: title, Author: domain.User{ID: author}, CreatedAt: at}
}

func TestLikeTwiceKeepsOneRowAndOneNotification(t *testing.T) {
	const alice, bob = 1, 2
	f := newFixture(alice, bob)
	f.addPost(10, bob, "hi", time.Now())
	ctx := context.TODO()

	res, err := f.svc.LikePost(ctx, alice, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.Liked, res)

	res, err = f.svc.LikePost(ctx, alice, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyLiked, res)

	assert.Len(t, f.st.likes, 1)
	assert.Equal(t, int64(1), f.st.posts[10].Likes)
	require.Len(t, f.sink.sent, 1)
	assert.Equal(t, domain.Notification{
		RecipientID: bob,
		ActorID:     alice,
		Verb:        "liked your post",
		TargetType:  domain.TargetPost,
		TargetID:    10,
		CreatedAt:   f.sink.sent[0].CreatedAt,
	}, f.sink.sent[0])
}

func TestLikeOwnPostDoesNotNotify(t *testing.T) {
	f := newFixture(1)
	f.addPost(10, 1, "mine", time.Now())

	res, err := f.svc.LikePost(context.TODO(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.Liked, res)
	assert.Empty(t, f.sink.sent)
}

func TestLikeMissingPost(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.LikePost(context.TODO(), 1, 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.st.likes)
}

func TestUnlike(t *testing.T) {
	f := newFixture(1, 2)
	f.addPost(10, 2, "hi", time.Now())
	ctx := context.TODO()

	res, err := f.svc.UnlikePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.NotLiked, res)

	_, err = f.svc.LikePost(ctx, 1, 10)
	require.NoError(t, err)

	res, err = f.svc.UnlikePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.Unliked, res)
	assert.Empty(t, f.st.likes)
	assert.Equal(t, int64(0), f.st.posts[10].Likes)
}

func TestFollowSelfIsRejected(t *testing.T) {
	f := newFixture(1)

	for _, op := range []func(context.Context, int64, int64) (domain.FollowResult, error){f.svc.Follow, f.svc.Unfollow} {
		_, err := op(context.TODO(), 1, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	}
	assert.Empty(t, f.st.follows)
}

func TestFollowIsIdempotent(t *testing.T) {
	f := newFixture(1, 2)
	ctx := context.TODO()

	res, err := f.svc.Follow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Followed, res)
	assert.True(t, res.Changed())

	res, err = f.svc.Follow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.AlreadyFollowing, res)
	assert.False(t, res.Changed())

	res, err = f.svc.Unfollow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Unfollowed, res)

	res, err = f.svc.Unfollow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.NotFollowing, res)
}

func TestFollowMissingTarget(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.Follow(context.TODO(), 1, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedOrdersFollowedPostsNewestFirst(t *testing.T) {
	const a, b, c, d = 1, 2, 3, 4
	f := newFixture(a, b, c, d)
	ctx := context.TODO()
	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	f.addPost(1, b, "Hello", t1)
	f.addPost(2, c, "World", t1.Add(time.Minute))
	f.addPost(3, d, "Not followed", t1.Add(2*time.Minute))

	for _, target := range []int64{b, c} {
		_, err := f.svc.Follow(ctx, a, target)
		require.NoError(t, err)
	}

	feed, next, err := f.svc.Feed(ctx, a, "", 0)

	require.NoError(t, err)
	assert.Empty(t, next)
	titles := make([]string, len(feed))
	for i := range feed {
		titles[i] = feed[i].Title
	}
	assert.Equal(t, []string{"World", "Hello"}, titles)
}

func TestFeedPaginates(t *testing.T) {
	f := newFixture(1, 2)
	ctx := context.TODO()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 3; i++ {
		f.addPost(i, 2, "p", t0.Add(time.Duration(i)*time.Second))
	}
	_, err := f.svc.Follow(ctx, 1, 2)
	require.NoError(t, err)

	page1, next, err := f.svc.Feed(ctx, 1, "", 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, []int64{3, 2}, []int64{page1[0].ID, page1[1].ID})
	require.NotEmpty(t, next)

	page2, next, err := f.svc.Feed(ctx, 1, next, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, int64(1), page2[0].ID)
	assert.Empty(t, next)
}

func TestFeedWithoutFollowingSkipsPostQuery(t *testing.T) {
	f := newFixture(1)
	f.addPost(1, 1, "own", time.Now())

	feed, next, err := f.svc.Feed(context.TODO(), 1, "", 10)

	require.NoError(t, err)
	assert.Empty(t, feed)
	assert.Empty(t, next)
	assert.Zero(t, f.st.queries)
}

func TestUnauthenticatedRequester(t *testing.T) {
	f := newFixture()
	ctx := context.TODO()

	_, _, err := f.svc.Feed(ctx, 0, "", 10)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = f.svc.LikePost(ctx, 0, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = f.svc.Follow(ctx, 0, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestListFollowers(t *testing.T) {
	f := newFixture(1, 2, 3)
	ctx := context.TODO()
	for _, follower := range []int64{2, 3} {
		_, err := f.svc.Follow(ctx, follower, 1)
		require.NoError(t, err)
	}

	users, err := f.svc.ListFollowers(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{{ID: 2}, {ID: 3}}, users)

	following, err := f.svc.ListFollowing(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{{ID: 1}}, following)

	_, err = f.svc.ListFollowers(ctx, 2, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLikeStoreFailureIsReturned(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	likeRepo := new(mocks.LikeRepository)
	bloom := new(mocks.BloomRepository)
	sink := new(mocks.NotificationSink)

	bloom.On("Exists", mock.Anything, int64(10)).Return(true, nil).Once()
	postRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Post{ID: 10, Author: domain.User{ID: 2}}, nil).Once()
	likeRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	svc := social.NewService(postRepo, likeRepo, new(mocks.FollowRepository), new(mocks.UserRepository), bloom, sink)
	_, err := svc.LikePost(context.TODO(), 1, 10)

	assert.Error(t, err)
	sink.AssertNotCalled(t, "Emit", mock.Anything)
}

func TestLikeBloomRejects(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	bloom := new(mocks.BloomRepository)
	bloom.On("Exists", mock.Anything, int64(10)).Return(false, nil).Once()

	svc := social.NewService(postRepo, new(mocks.LikeRepository), new(mocks.FollowRepository), new(mocks.UserRepository), bloom, new(mocks.NotificationSink))
	_, err := svc.LikePost(context.TODO(), 1, 10)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

// Package mocks holds testify mocks for the domain contracts.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-social/domain"
)

type PostRepository struct {
	mock.Mock
}

func (_m *PostRepository) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, error) {
	ret := _m.Called(ctx, q)
	r0, _ := ret.Get(0).([]domain.Post)
	return r0, ret.Error(1)
}

func (_m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (_m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	return _m.Called(ctx, p).Error(0)
}

func (_m *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	return _m.Called(ctx, p).Error(0)
}

func (_m *PostRepository) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *PostRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, cursor, limit)
	r0, _ := ret.Get(0).([]int64)
	return r0, ret.Error(1)
}

type PostCache struct {
	mock.Mock
}

func (_m *PostCache) GetPost(ctx context.Context, id int64) (domain.Post, bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Post), ret.Bool(1), ret.Error(2)
}

func (_m *PostCache) SetPost(ctx context.Context, p *domain.Post, ttl time.Duration) error {
	return _m.Called(ctx, p, ttl).Error(0)
}

func (_m *PostCache) DeletePost(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	ret := _m.Called(ctx, ids)
	r0, _ := ret.Get(0).([]domain.User)
	return r0, ret.Error(1)
}

func (_m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	return _m.Called(ctx, u).Error(0)
}

func (_m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	ret := _m.Called(ctx, username)
	return ret.Get(0).(domain.User), ret.Error(1)
}

type ProfileRepository struct {
	mock.Mock
}

func (_m *ProfileRepository) Get(ctx context.Context, userID int64) (domain.Profile, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(domain.Profile), ret.Error(1)
}

func (_m *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	return _m.Called(ctx, p).Error(0)
}

type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) Fetch(ctx context.Context, q domain.CommentQuery) ([]domain.Comment, error) {
	ret := _m.Called(ctx, q)
	r0, _ := ret.Get(0).([]domain.Comment)
	return r0, ret.Error(1)
}

func (_m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	return _m.Called(ctx, c).Error(0)
}

func (_m *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	return _m.Called(ctx, c).Error(0)
}

func (_m *CommentRepository) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

type LikeRepository struct {
	mock.Mock
}

func (_m *LikeRepository) Add(ctx context.Context, l *domain.Like) error {
	return _m.Called(ctx, l).Error(0)
}

func (_m *LikeRepository) Remove(ctx context.Context, userID, postID int64) error {
	return _m.Called(ctx, userID, postID).Error(0)
}

type FollowRepository struct {
	mock.Mock
}

func (_m *FollowRepository) Add(ctx context.Context, followerID, followeeID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, followeeID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FollowRepository) Remove(ctx context.Context, followerID, followeeID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, followeeID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FollowRepository) ListFollowing(ctx context.Context, userID int64) ([]int64, error) {
	ret := _m.Called(ctx, userID)
	r0, _ := ret.Get(0).([]int64)
	return r0, ret.Error(1)
}

func (_m *FollowRepository) ListFollowers(ctx context.Context, userID int64) ([]int64, error) {
	ret := _m.Called(ctx, userID)
	r0, _ := ret.Get(0).([]int64)
	return r0, ret.Error(1)
}

func (_m *FollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

type BloomRepository struct {
	mock.Mock
}

func (_m *BloomRepository) Add(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	return _m.Called(ctx, ids).Error(0)
}

type NotificationRepository struct {
	mock.Mock
}

func (_m *NotificationRepository) StoreBatch(ctx context.Context, ns []domain.Notification) error {
	return _m.Called(ctx, ns).Error(0)
}

func (_m *NotificationRepository) FetchByRecipient(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, error) {
	ret := _m.Called(ctx, recipientID, cursor, num)
	r0, _ := ret.Get(0).([]domain.Notification)
	return r0, ret.Error(1)
}

func (_m *NotificationRepository) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	ret := _m.Called(ctx, recipientID)
	return ret.Get(0).(int64), ret.Error(1)
}

type NotificationSink struct {
	mock.Mock
}

func (_m *NotificationSink) Emit(n domain.Notification) {
	_m.Called(n)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-social/domain"
)

type PostUsecase struct {
	mock.Mock
}

func (_m *PostUsecase) Fetch(ctx context.Context, requesterID int64, search, cursor string, num int64) ([]domain.Post, string, error) {
	ret := _m.Called(ctx, requesterID, search, cursor, num)
	r0, _ := ret.Get(0).([]domain.Post)
	return r0, ret.String(1), ret.Error(2)
}

func (_m *PostUsecase) GetByID(ctx context.Context, requesterID int64, id int64) (domain.Post, error) {
	ret := _m.Called(ctx, requesterID, id)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (_m *PostUsecase) Store(ctx context.Context, requesterID int64, p *domain.Post) error {
	return _m.Called(ctx, requesterID, p).Error(0)
}

func (_m *PostUsecase) Update(ctx context.Context, requesterID int64, id int64, upd domain.PostUpdate) (domain.Post, error) {
	ret := _m.Called(ctx, requesterID, id, upd)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (_m *PostUsecase) Delete(ctx context.Context, requesterID int64, id int64) error {
	return _m.Called(ctx, requesterID, id).Error(0)
}

func (_m *PostUsecase) InitBloomFilter(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

type CommentUsecase struct {
	mock.Mock
}

func (_m *CommentUsecase) Fetch(ctx context.Context, requesterID int64, q domain.CommentQuery) ([]domain.Comment, string, error) {
	ret := _m.Called(ctx, requesterID, q)
	r0, _ := ret.Get(0).([]domain.Comment)
	return r0, ret.String(1), ret.Error(2)
}

func (_m *CommentUsecase) GetByID(ctx context.Context, requesterID int64, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, requesterID, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentUsecase) Create(ctx context.Context, requesterID int64, c *domain.Comment) error {
	return _m.Called(ctx, requesterID, c).Error(0)
}

func (_m *CommentUsecase) Update(ctx context.Context, requesterID int64, id int64, content string) (domain.Comment, error) {
	ret := _m.Called(ctx, requesterID, id, content)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentUsecase) Delete(ctx context.Context, requesterID int64, id int64) error {
	return _m.Called(ctx, requesterID, id).Error(0)
}

type SocialUsecase struct {
	mock.Mock
}

func (_m *SocialUsecase) Feed(ctx context.Context, requesterID int64, cursor string, num int64) ([]domain.Post, string, error) {
	ret := _m.Called(ctx, requesterID, cursor, num)
	r0, _ := ret.Get(0).([]domain.Post)
	return r0, ret.String(1), ret.Error(2)
}

func (_m *SocialUsecase) LikePost(ctx context.Context, requesterID, postID int64) (domain.LikeResult, error) {
	ret := _m.Called(ctx, requesterID, postID)
	return ret.Get(0).(domain.LikeResult), ret.Error(1)
}

func (_m *SocialUsecase) UnlikePost(ctx context.Context, requesterID, postID int64) (domain.UnlikeResult, error) {
	ret := _m.Called(ctx, requesterID, postID)
	return ret.Get(0).(domain.UnlikeResult), ret.Error(1)
}

func (_m *SocialUsecase) Follow(ctx context.Context, requesterID, targetID int64) (domain.FollowResult, error) {
	ret := _m.Called(ctx, requesterID, targetID)
	return ret.Get(0).(domain.FollowResult), ret.Error(1)
}

func (_m *SocialUsecase) Unfollow(ctx context.Context, requesterID, targetID int64) (domain.FollowResult, error) {
	ret := _m.Called(ctx, requesterID, targetID)
	return ret.Get(0).(domain.FollowResult), ret.Error(1)
}

func (_m *SocialUsecase) ListFollowers(ctx context.Context, requesterID, userID int64) ([]domain.User, error) {
	ret := _m.Called(ctx, requesterID, userID)
	r0, _ := ret.Get(0).([]domain.User)
	return r0, ret.Error(1)
}

func (_m *SocialUsecase) ListFollowing(ctx context.Context, requesterID, userID int64) ([]domain.User, error) {
	ret := _m.Called(ctx, requesterID, userID)
	r0, _ := ret.Get(0).([]domain.User)
	return r0, ret.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (_m *UserUsecase) Register(ctx context.Context, username, email, password string) (string, error) {
	ret := _m.Called(ctx, username, email, password)
	return ret.String(0), ret.Error(1)
}

func (_m *UserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	ret := _m.Called(ctx, username, password)
	return ret.String(0), ret.Error(1)
}

func (_m *UserUsecase) GetProfile(ctx context.Context, requesterID int64) (domain.UserProfile, error) {
	ret := _m.Called(ctx, requesterID)
	return ret.Get(0).(domain.UserProfile), ret.Error(1)
}

func (_m *UserUsecase) UpdateBio(ctx context.Context, requesterID int64, bio string) (domain.UserProfile, error) {
	ret := _m.Called(ctx, requesterID, bio)
	return ret.Get(0).(domain.UserProfile), ret.Error(1)
}

type NotificationUsecase struct {
	mock.Mock
}

func (_m *NotificationUsecase) Fetch(ctx context.Context, requesterID int64, cursor string, num int64) ([]domain.Notification, string, error) {
	ret := _m.Called(ctx, requesterID, cursor, num)
	r0, _ := ret.Get(0).([]domain.Notification)
	return r0, ret.String(1), ret.Error(2)
}

func (_m *NotificationUsecase) MarkAllRead(ctx context.Context, requesterID int64) (int64, error) {
	ret := _m.Called(ctx, requesterID)
	return ret.Get(0).(int64), ret.Error(1)
}

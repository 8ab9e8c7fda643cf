package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/domain/mocks"
	"github.com/Guyuepp/go-clean-social/internal/rest"
	"github.com/Guyuepp/go-clean-social/internal/usecase/social"
)

type server struct {
	router        *gin.Engine
	users         *mocks.UserUsecase
	posts         *mocks.PostUsecase
	comments      *mocks.CommentUsecase
	socials       *mocks.SocialUsecase
	notifications *mocks.NotificationUsecase
}

// newServer authenticates every request that sends X-Test-User as that user id
func newServer() *server {
	gin.SetMode(gin.TestMode)
	s := &server{
		router:        gin.New(),
		users:         new(mocks.UserUsecase),
		posts:         new(mocks.PostUsecase),
		comments:      new(mocks.CommentUsecase),
		socials:       new(mocks.SocialUsecase),
		notifications: new(mocks.NotificationUsecase),
	}
	auth := func(c *gin.Context) {
		if c.GetHeader("X-Test-User") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": domain.ErrUnauthenticated.Error()})
			return
		}
		c.Set("user_id", int64(7))
		c.Next()
	}
	rest.RegisterRoutes(s.router, auth, rest.Handlers{
		User:         rest.NewUserHandler(s.users),
		Post:         rest.NewPostHandler(s.posts),
		Comment:      rest.NewCommentHandler(s.comments),
		Social:       rest.NewSocialHandler(s.socials),
		Notification: rest.NewNotificationHandler(s.notifications),
	})
	return s
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", "7")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestLikeEndpoint(t *testing.T) {
	cases := []struct {
		name   string
		result domain.LikeResult
		err    error
		status int
		detail string
	}{
		{"new like", domain.Liked, nil, http.StatusCreated, "Post liked"},
		{"repeat like", domain.AlreadyLiked, nil, http.StatusBadRequest, "Already liked"},
		{"missing post", 0, domain.ErrNotFound, http.StatusNotFound, domain.ErrNotFound.Error()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer()
			s.socials.On("LikePost", mock.Anything, int64(7), int64(10)).Return(tc.result, tc.err).Once()

			rec := s.do(http.MethodPost, "/posts/10/like", nil)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.detail, decode(t, rec)["detail"])
		})
	}
}

func TestUnlikeEndpoint(t *testing.T) {
	s := newServer()
	s.socials.On("UnlikePost", mock.Anything, int64(7), int64(10)).Return(domain.NotLiked, nil).Once()
	s.socials.On("UnlikePost", mock.Anything, int64(7), int64(11)).Return(domain.Unliked, nil).Once()

	rec := s.do(http.MethodPost, "/posts/10/unlike", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You have not liked this post", decode(t, rec)["detail"])

	rec = s.do(http.MethodPost, "/posts/11/unlike", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Post unliked", decode(t, rec)["detail"])
}

func TestFollowEndpoint(t *testing.T) {
	s := newServer()
	s.socials.On("Follow", mock.Anything, int64(7), int64(8)).Return(domain.AlreadyFollowing, nil).Once()
	s.socials.On("Follow", mock.Anything, int64(7), int64(7)).Return(domain.FollowResult(0), social.ErrFollowSelf).Once()
	s.socials.On("Unfollow", mock.Anything, int64(7), int64(9)).Return(domain.FollowResult(0), domain.ErrNotFound).Once()

	rec := s.do(http.MethodPost, "/users/8/follow", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["changed"])

	rec = s.do(http.MethodPost, "/users/7/follow", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["detail"], "cannot follow yourself")

	rec = s.do(http.MethodPost, "/users/9/unfollow", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedEndpointSetsCursor(t *testing.T) {
	s := newServer()
	posts := []domain.Post{{ID: 2, Title: "World", Author: domain.User{ID: 3, Username: "c"}, CreatedAt: time.Now()}}
	s.socials.On("Feed", mock.Anything, int64(7), "", int64(5)).Return(posts, "next-token", nil).Once()

	rec := s.do(http.MethodGet, "/feed?num=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "next-token", rec.Header().Get("X-cursor"))
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "World", body[0]["title"])
}

func TestAuthRequired(t *testing.T) {
	s := newServer()
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	s.socials.AssertNotCalled(t, "Feed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostIgnoresClientAuthor(t *testing.T) {
	s := newServer()
	s.posts.On("Store", mock.Anything, int64(7), mock.MatchedBy(func(p *domain.Post) bool {
		return p.Author.ID == 0 && p.Title == "t"
	})).Run(func(args mock.Arguments) {
		p := args.Get(2).(*domain.Post)
		p.ID = 1
		p.Author = domain.User{ID: 7, Username: "me"}
	}).Return(nil).Once()

	rec := s.do(http.MethodPost, "/posts", map[string]any{"title": "t", "content": "c", "author": 99})

	require.Equal(t, http.StatusCreated, rec.Code)
	author := decode(t, rec)["author"].(map[string]any)
	assert.Equal(t, float64(7), author["id"])
}

func TestCreatePostValidation(t *testing.T) {
	s := newServer()

	rec := s.do(http.MethodPost, "/posts", map[string]any{"content": "c"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decode(t, rec)["fields"].(map[string]any)
	assert.Equal(t, "This field is required.", fields["title"])
	s.posts.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchPostForbidden(t *testing.T) {
	s := newServer()
	title := "x"
	s.posts.On("Update", mock.Anything, int64(7), int64(3), domain.PostUpdate{Title: &title}).
		Return(domain.Post{}, domain.ErrForbidden).Once()

	rec := s.do(http.MethodPatch, "/posts/3", map[string]any{"title": "x"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeletePost(t *testing.T) {
	s := newServer()
	s.posts.On("Delete", mock.Anything, int64(7), int64(3)).Return(nil).Once()

	rec := s.do(http.MethodDelete, "/posts/3", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	s := newServer()

	rec := s.do(http.MethodGet, "/posts/abc", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentFilterByPost(t *testing.T) {
	s := newServer()
	s.comments.On("Fetch", mock.Anything, int64(7), domain.CommentQuery{PostID: 4}).
		Return([]domain.Comment{{ID: 1, PostID: 4, Content: "hey"}}, "", nil).Once()

	rec := s.do(http.MethodGet, "/comments?post=4", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	s.comments.AssertExpectations(t)

	rec = s.do(http.MethodGet, "/comments?post=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateComment(t *testing.T) {
	s := newServer()
	s.comments.On("Create", mock.Anything, int64(7), mock.MatchedBy(func(c *domain.Comment) bool {
		return c.PostID == 4 && c.Content == "hi"
	})).Return(nil).Once()

	rec := s.do(http.MethodPost, "/comments", map[string]any{"post_id": 4, "content": "hi"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/comments", map[string]any{"content": "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["fields"], "post_id")
}

func TestRegisterAndLogin(t *testing.T) {
	s := newServer()
	s.users.On("Register", mock.Anything, "ann", "ann@example.com", "secret1").Return("tok", nil).Once()
	s.users.On("Login", mock.Anything, "ann", "bad").Return("", domain.ErrInvalidCredentials).Once()

	rec := s.do(http.MethodPost, "/register", map[string]any{"username": "ann", "email": "ann@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok", decode(t, rec)["token"])

	rec = s.do(http.MethodPost, "/login", map[string]any{"username": "ann", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	s := newServer()
	s.notifications.On("MarkAllRead", mock.Anything, int64(7)).Return(int64(0), assert.AnError).Once()

	rec := s.do(http.MethodPost, "/notifications/read", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domain.ErrInternalServerError.Error(), decode(t, rec)["detail"])
}

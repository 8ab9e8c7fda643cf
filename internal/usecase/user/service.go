package user

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-clean-social/domain"
)

const (
	BioMaxLen = 500
	// bcrypt only reads the first 72 bytes of a password
	PasswordMaxBytes = 72
)

// TokenIssuer hands out bearer tokens for a user id.
type TokenIssuer interface {
	Issue(uid int64) (string, error)
}

type Service struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	followRepo  domain.FollowRepository
	tokens      TokenIssuer
	hooks       []domain.UserCreatedHook
	bcryptCost  int
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service; hooks run in order after every successful Register.
// A failing hook is logged and does not undo the account, so readers of hook-owned rows must
// tolerate their absence.
func NewService(u domain.UserRepository, p domain.ProfileRepository, f domain.FollowRepository, tokens TokenIssuer, hooks ...domain.UserCreatedHook) *Service {
	return &Service{
		userRepo:    u,
		profileRepo: p,
		followRepo:  f,
		tokens:      tokens,
		hooks:       hooks,
		bcryptCost:  bcrypt.DefaultCost,
	}
}

// NewProfileHook creates the empty profile every account starts with.
func NewProfileHook(p domain.ProfileRepository) domain.UserCreatedHook {
	return func(ctx context.Context, u *domain.User) error {
		return p.Upsert(ctx, &domain.Profile{UserID: u.ID, UpdatedAt: u.CreatedAt})
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (string, error) {
	fields := map[string]string{}
	if username == "" {
		fields["username"] = "This field may not be blank."
	}
	if password == "" {
		fields["password"] = "This field may not be blank."
	} else if len(password) > PasswordMaxBytes {
		fields["password"] = "Ensure this field has no more than 72 bytes."
	}
	if len(fields) > 0 {
		return "", &domain.ValidationError{Fields: fields}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	u := &domain.User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Insert(ctx, u); err != nil {
		return "", err
	}

	// hooks are best effort once the account row exists
	for _, hook := range s.hooks {
		if err := hook(ctx, u); err != nil {
			logrus.Errorf("user created hook failed for user %d: %v", u.ID, err)
		}
	}

	return s.tokens.Issue(u.ID)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID)
}

// GetProfile loads the account, bio and follow counts concurrently.
func (s *Service) GetProfile(ctx context.Context, requesterID int64) (domain.UserProfile, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return domain.UserProfile{}, err
	}

	var res domain.UserProfile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.userRepo.GetByID(gctx, requesterID)
		if err != nil {
			return err
		}
		u.Password = ""
		res.User = u
		return nil
	})
	g.Go(func() error {
		p, err := s.profileRepo.Get(gctx, requesterID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		res.Bio = p.Bio
		return nil
	})
	g.Go(func() error {
		n, err := s.followRepo.CountFollowers(gctx, requesterID)
		res.Followers = n
		return err
	})
	g.Go(func() error {
		n, err := s.followRepo.CountFollowing(gctx, requesterID)
		res.Following = n
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.UserProfile{}, err
	}
	return res, nil
}

func (s *Service) UpdateBio(ctx context.Context, requesterID int64, bio string) (domain.UserProfile, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return domain.UserProfile{}, err
	}
	if utf8.RuneCountInString(bio) > BioMaxLen {
		return domain.UserProfile{}, domain.NewValidationError("bio", "Ensure this field has no more than 500 characters.")
	}

	if err := s.profileRepo.Upsert(ctx, &domain.Profile{
		UserID:    requesterID,
		Bio:       bio,
		UpdatedAt: time.Now(),
	}); err != nil {
		return domain.UserProfile{}, err
	}
	return s.GetProfile(ctx, requesterID)
}

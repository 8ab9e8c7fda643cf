package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, write posts and follow other users.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Login username (unique)
	Email     string    // Contact address
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// Profile holds the optional, user-editable part of an account.
type Profile struct {
	UserID    int64
	Bio       string
	UpdatedAt time.Time
}

// UserProfile is the aggregated view returned by the profile endpoint.
type UserProfile struct {
	User      User
	Bio       string
	Followers int64
	Following int64
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves the users that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the username is taken.
	Insert(ctx context.Context, u *User) error

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// ProfileRepository stores one Profile per user.
type ProfileRepository interface {
	// Get returns ErrNotFound if the user has no profile row.
	Get(ctx context.Context, userID int64) (Profile, error)
	// Upsert creates or replaces the profile of p.UserID.
	Upsert(ctx context.Context, p *Profile) error
}

// UserCreatedHook runs synchronously right after a user row is inserted.
type UserCreatedHook func(ctx context.Context, u *User) error

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account and returns a token for it.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, username, email, password string) (string, error)

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrInvalidCredentials on unknown user or wrong password.
	Login(ctx context.Context, username, password string) (string, error)

	GetProfile(ctx context.Context, requesterID int64) (UserProfile, error)
	UpdateBio(ctx context.Context, requesterID int64, bio string) (UserProfile, error)
}

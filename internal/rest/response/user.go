package response

import "github.com/Guyuepp/go-clean-social/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u domain.User) *User {
	if u.ID == 0 {
		return nil
	}
	return &User{
		ID:       u.ID,
		Username: u.Username,
	}
}

func NewUsersFromDomain(us []domain.User) []User {
	res := make([]User, 0, len(us))
	for _, u := range us {
		res = append(res, User{ID: u.ID, Username: u.Username})
	}
	return res
}

type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
	CreatedAt string `json:"created_at"`
}

func NewProfileFromDomain(p domain.UserProfile) Profile {
	return Profile{
		ID:        p.User.ID,
		Username:  p.User.Username,
		Email:     p.User.Email,
		Bio:       p.Bio,
		Followers: p.Followers,
		Following: p.Following,
		CreatedAt: p.User.CreatedAt.Format(DateTimeFormat),
	}
}

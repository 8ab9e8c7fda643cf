package domain

import "context"

type LikeResult int8

const (
	Liked LikeResult = iota + 1
	AlreadyLiked
)

func (r LikeResult) String() string {
	switch r {
	case Liked:
		return "LIKED"
	case AlreadyLiked:
		return "ALREADY_LIKED"
	default:
		return "UNKNOWN"
	}
}

type UnlikeResult int8

const (
	Unliked UnlikeResult = iota + 1
	NotLiked
)

func (r UnlikeResult) String() string {
	switch r {
	case Unliked:
		return "UNLIKED"
	case NotLiked:
		return "NOT_LIKED"
	default:
		return "UNKNOWN"
	}
}

type FollowResult int8

const (
	Followed FollowResult = iota + 1
	AlreadyFollowing
	Unfollowed
	NotFollowing
)

func (r FollowResult) String() string {
	switch r {
	case Followed:
		return "FOLLOWED"
	case AlreadyFollowing:
		return "ALREADY_FOLLOWING"
	case Unfollowed:
		return "UNFOLLOWED"
	case NotFollowing:
		return "NOT_FOLLOWING"
	default:
		return "UNKNOWN"
	}
}

// Changed reports whether the follow graph was modified.
func (r FollowResult) Changed() bool {
	return r == Followed || r == Unfollowed
}

// SocialUsecase composes feeds and maintains likes and the follow graph.
type SocialUsecase interface {
	// Feed returns posts of the accounts requesterID follows, newest first.
	Feed(ctx context.Context, requesterID int64, cursor string, num int64) ([]Post, string, error)

	LikePost(ctx context.Context, requesterID, postID int64) (LikeResult, error)
	UnlikePost(ctx context.Context, requesterID, postID int64) (UnlikeResult, error)

	// Follow and Unfollow return ErrInvalidOperation when targetID == requesterID.
	Follow(ctx context.Context, requesterID, targetID int64) (FollowResult, error)
	Unfollow(ctx context.Context, requesterID, targetID int64) (FollowResult, error)

	ListFollowers(ctx context.Context, requesterID, userID int64) ([]User, error)
	ListFollowing(ctx context.Context, requesterID, userID int64) ([]User, error)
}

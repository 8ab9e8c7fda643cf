package domain

import "context"

// FollowRepository stores the directed follow graph.
type FollowRepository interface {
	// Add creates follower -> followee, reporting false if the edge already existed.
	Add(ctx context.Context, followerID, followeeID int64) (bool, error)
	// Remove deletes follower -> followee, reporting false if there was no edge.
	Remove(ctx context.Context, followerID, followeeID int64) (bool, error)

	// ListFollowing returns the ids userID follows.
	ListFollowing(ctx context.Context, userID int64) ([]int64, error)
	// ListFollowers returns the ids following userID.
	ListFollowers(ctx context.Context, userID int64) ([]int64, error)

	CountFollowing(ctx context.Context, userID int64) (int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
}

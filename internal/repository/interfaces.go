package repository

import (
	"context"
	"time"

	"microblog/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Search matches the query as a case-insensitive substring of the
	// username or display name.
	Search(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error)
	CountSearch(ctx context.Context, query string) (int, error)
	// UpdateProfile applies a full profile write in a single statement
	// and returns the updated row.
	UpdateProfile(ctx context.Context, userID int64, name, bio *string, pfp string) (*model.User, error)
}

type FollowRepository interface {
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	// Toggle flips the follow edge inside one transaction and returns the
	// resulting state: true if the edge now exists.
	Toggle(ctx context.Context, followerID, followeeID int64) (bool, error)
	GetFolloweeIDs(ctx context.Context, userID int64) ([]int64, error)
	CountFollowers(ctx context.Context, userID int64) (int, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
	// CheckFollows batch-checks which of followeeIDs the follower follows.
	CheckFollows(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, userID int64, content string) (*model.Post, error)
	// Delete removes the post if requester owns it; check and delete run
	// in the same transaction.
	Delete(ctx context.Context, postID, requesterID int64) error
	CountByAuthors(ctx context.Context, authorIDs []int64) (int, error)
	ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.AuthoredPost, error)
	CountAll(ctx context.Context) (int, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.AuthoredPost, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

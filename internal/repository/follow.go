package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}
	return exists, nil
}

// Toggle flips the presence of the follow edge: reads the current state,
// then inserts or deletes accordingly. Both statements run in one
// transaction so two concurrent toggles cannot lose an update. Returns
// true if the edge exists after the call.
func (r *followRepository) Toggle(ctx context.Context, followerID, followeeID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var following bool
	err = tx.GetContext(ctx, &following,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}

	if following {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
			followerID, followeeID)
		if err != nil {
			return false, fmt.Errorf("failed to delete follow: %w", err)
		}
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)
			 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
			followerID, followeeID)
		if err != nil {
			return false, fmt.Errorf("failed to create follow: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	return !following, nil
}

// GetFolloweeIDs returns the ids of every user the given user follows.
func (r *followRepository) GetFolloweeIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT followee_id FROM follows WHERE follower_id = $1`
	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get followee ids: %w", err)
	}
	return ids, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM follows WHERE followee_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}

// CheckFollows batch-checks which of followeeIDs the follower follows,
// in a single query. Returns a map of followee id -> followed.
func (r *followRepository) CheckFollows(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error) {
	if len(followeeIDs) == 0 {
		return make(map[int64]bool), nil
	}

	query := `SELECT followee_id FROM follows WHERE follower_id = $1 AND followee_id = ANY($2)`
	var followedIDs []int64
	err := r.db.SelectContext(ctx, &followedIDs, query, followerID, pq.Array(followeeIDs))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check follows: %w", err)
	}

	result := make(map[int64]bool)
	for _, id := range followeeIDs {
		result[id] = false
	}
	for _, id := range followedIDs {
		result[id] = true
	}

	return result, nil
}

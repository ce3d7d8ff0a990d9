package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"microblog/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post with a server-generated UTC timestamp.
func (r *postRepository) Create(ctx context.Context, userID int64, content string) (*model.Post, error) {
	query := `
		INSERT INTO posts (user_id, content, post_time)
		VALUES ($1, $2, date_trunc('second', NOW() AT TIME ZONE 'utc'))
		RETURNING id, user_id, content, post_time
	`

	var post model.Post
	err := r.db.GetContext(ctx, &post, query, userID, content)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &post, nil
}

// Delete removes a post after verifying ownership. The existence check and
// the delete run in one transaction so a concurrent delete cannot turn an
// ownership failure into a silent success.
func (r *postRepository) Delete(ctx context.Context, postID, requesterID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var authorID int64
	err = tx.GetContext(ctx, &authorID, `SELECT user_id FROM posts WHERE id = $1`, postID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ErrPostNotFound
		}
		return fmt.Errorf("get post author: %w", err)
	}

	if authorID != requesterID {
		return model.ErrNotPostOwner
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1 AND user_id = $2`, postID, requesterID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		// Deleted by a concurrent request between the read and the delete.
		return model.ErrPostNotFound
	}

	return tx.Commit()
}

// CountByAuthors returns the number of posts authored by any of authorIDs.
func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []int64) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM posts WHERE user_id = ANY($1)`, pq.Array(authorIDs))
	if err != nil {
		return 0, fmt.Errorf("count posts by authors: %w", err)
	}

	return total, nil
}

// ListByAuthors returns one page of posts by the given authors, newest
// first. Ties on post_time break by descending id so pagination is stable.
func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.AuthoredPost, error) {
	if len(authorIDs) == 0 {
		return []model.AuthoredPost{}, nil
	}

	query := `
		SELECT p.id, p.user_id, u.username, p.content, p.post_time, u.pfp
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ANY($1)
		ORDER BY p.post_time DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`

	var posts []model.AuthoredPost
	err := r.db.SelectContext(ctx, &posts, query, pq.Array(authorIDs), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts by authors: %w", err)
	}

	return posts, nil
}

// CountAll returns the total number of posts.
func (r *postRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}

	return total, nil
}

// ListAll returns one page of the global timeline, newest first.
func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]model.AuthoredPost, error) {
	query := `
		SELECT p.id, p.user_id, u.username, p.content, p.post_time, u.pfp
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.post_time DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`

	var posts []model.AuthoredPost
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"microblog/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, password_hashed, pfp, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, u.Username, u.PasswordHashed, u.Pfp)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, password_hashed, name, bio, pfp, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by their username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, password_hashed, name, bio, pfp, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

// ExistsByUsername checks if a username is already taken
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// Search finds users whose username or display name contains the query,
// case-insensitively. Ordering by username keeps pages stable between calls.
func (r *userRepository) Search(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error) {
	searchQuery := `
		SELECT id, username, name, pfp
		FROM users
		WHERE username ILIKE $1 OR name ILIKE $1
		ORDER BY username ASC
		LIMIT $2 OFFSET $3
	`

	pattern := "%" + query + "%"
	var users []model.UserSummary
	err := r.db.SelectContext(ctx, &users, searchQuery, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}

// CountSearch returns the total number of users matching the query.
func (r *userRepository) CountSearch(ctx context.Context, query string) (int, error) {
	countQuery := `SELECT COUNT(*) FROM users WHERE username ILIKE $1 OR name ILIKE $1`

	pattern := "%" + query + "%"
	var total int
	err := r.db.GetContext(ctx, &total, countQuery, pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}

	return total, nil
}

// UpdateProfile writes name, bio and pfp in one statement and returns the
// updated row. Nil name/bio clear the columns.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, name, bio *string, pfp string) (*model.User, error) {
	query := `
		UPDATE users
		SET name = $1, bio = $2, pfp = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, username, password_hashed, name, bio, pfp, created_at, updated_at
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, name, bio, pfp, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &u, nil
}

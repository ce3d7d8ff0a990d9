package service

// Hand-rolled mocks of the repository interfaces. Each field lets a test
// define custom behavior; nil fields fall back to an empty-but-sane
// default. Because every service depends on the repository INTERFACES,
// these swap in without a database.

import (
	"context"
	"time"

	"microblog/internal/model"
)

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	searchFn           func(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error)
	countSearchFn      func(ctx context.Context, query string) (int, error)
	updateProfileFn    func(ctx context.Context, userID int64, name, bio *string, pfp string) (*model.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepository) CountSearch(ctx context.Context, query string) (int, error) {
	if m.countSearchFn != nil {
		return m.countSearchFn(ctx, query)
	}
	return 0, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, name, bio *string, pfp string) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, name, bio, pfp)
	}
	return nil, model.ErrUserNotFound
}

type mockFollowRepository struct {
	existsFn         func(ctx context.Context, followerID, followeeID int64) (bool, error)
	toggleFn         func(ctx context.Context, followerID, followeeID int64) (bool, error)
	getFolloweeIDsFn func(ctx context.Context, userID int64) ([]int64, error)
	countFollowersFn func(ctx context.Context, userID int64) (int, error)
	countFollowingFn func(ctx context.Context, userID int64) (int, error)
	checkFollowsFn   func(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error)
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, followeeID)
	}
	return false, nil
}

func (m *mockFollowRepository) Toggle(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, followerID, followeeID)
	}
	return false, nil
}

func (m *mockFollowRepository) GetFolloweeIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.getFolloweeIDsFn != nil {
		return m.getFolloweeIDsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	if m.countFollowersFn != nil {
		return m.countFollowersFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFollowRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	if m.countFollowingFn != nil {
		return m.countFollowingFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFollowRepository) CheckFollows(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error) {
	if m.checkFollowsFn != nil {
		return m.checkFollowsFn(ctx, followerID, followeeIDs)
	}
	result := make(map[int64]bool)
	for _, id := range followeeIDs {
		result[id] = false
	}
	return result, nil
}

type mockRefreshTokenRepository struct {
	createFn          func(ctx context.Context, token *model.RefreshToken) error
	findByTokenHashFn func(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	revokeFn          func(ctx context.Context, id string) error
	revokeAllFn       func(ctx context.Context, userID int64) error
	deleteExpiredFn   func(ctx context.Context, olderThan time.Duration) (int64, error)
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	if m.createFn != nil {
		return m.createFn(ctx, token)
	}
	return nil
}

func (m *mockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	if m.findByTokenHashFn != nil {
		return m.findByTokenHashFn(ctx, tokenHash)
	}
	return nil, model.ErrRefreshTokenNotFound
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, id)
	}
	return nil
}

func (m *mockRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	if m.revokeAllFn != nil {
		return m.revokeAllFn(ctx, userID)
	}
	return nil
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, olderThan)
	}
	return 0, nil
}

type mockPostRepository struct {
	createFn         func(ctx context.Context, userID int64, content string) (*model.Post, error)
	deleteFn         func(ctx context.Context, postID, requesterID int64) error
	countByAuthorsFn func(ctx context.Context, authorIDs []int64) (int, error)
	listByAuthorsFn  func(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.AuthoredPost, error)
	countAllFn       func(ctx context.Context) (int, error)
	listAllFn        func(ctx context.Context, limit, offset int) ([]model.AuthoredPost, error)
}

func (m *mockPostRepository) Create(ctx context.Context, userID int64, content string) (*model.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, content)
	}
	return &model.Post{ID: 1, UserID: userID, Content: content, PostTime: time.Now().UTC()}, nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID, requesterID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, requesterID)
	}
	return nil
}

func (m *mockPostRepository) CountByAuthors(ctx context.Context, authorIDs []int64) (int, error) {
	if m.countByAuthorsFn != nil {
		return m.countByAuthorsFn(ctx, authorIDs)
	}
	return 0, nil
}

func (m *mockPostRepository) ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.AuthoredPost, error) {
	if m.listByAuthorsFn != nil {
		return m.listByAuthorsFn(ctx, authorIDs, limit, offset)
	}
	return []model.AuthoredPost{}, nil
}

func (m *mockPostRepository) CountAll(ctx context.Context) (int, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockPostRepository) ListAll(ctx context.Context, limit, offset int) ([]model.AuthoredPost, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, limit, offset)
	}
	return []model.AuthoredPost{}, nil
}

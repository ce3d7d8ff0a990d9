package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"microblog/internal/model"
	"microblog/internal/repository"
)

// UserService handles registration, login and user search.
type UserService struct {
	repo       repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(repo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		repo:       repo,
		followRepo: followRepo,
	}
}

// Register creates a new account. Usernames are 3-20 chars of lowercase
// letters, digits, hyphen and underscore; passwords 8-64 chars. New users
// get the default profile picture.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if !model.ValidUsername(username) {
		return nil, model.ErrInvalidUsername
	}

	if len(req.Password) < model.MinPasswordLength || len(req.Password) > model.MaxPasswordLength {
		return nil, model.ErrInvalidPassword
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       username,
		PasswordHashed: string(hashedPassword),
		Pfp:            model.DefaultPfp,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user with username and password.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Don't reveal whether username exists or not
		return nil, model.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password))
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns one page of users whose username or name contains the
// query, case-insensitively, enriched with the viewer's follow state via
// one batch query. A query matching nothing fails with ErrNoResults; a
// page beyond the match count fails with ErrInvalidPage.
func (s *UserService) Search(ctx context.Context, viewerID int64, query string, page int) (*model.SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" || utf8.RuneCountInString(query) > model.MaxSearchQueryLength {
		return nil, model.ErrInvalidQuery
	}

	total, err := s.repo.CountSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, model.ErrNoResults
	}

	totalPages, offset, err := paginate(page, total, SearchPageSize)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.Search(ctx, query, SearchPageSize, offset)
	if err != nil {
		return nil, err
	}

	if len(users) > 0 {
		userIDs := make([]int64, len(users))
		for i, user := range users {
			userIDs[i] = user.ID
		}

		followMap, err := s.followRepo.CheckFollows(ctx, viewerID, userIDs)
		if err != nil {
			return nil, fmt.Errorf("check follows: %w", err)
		}
		for i := range users {
			users[i].IsFollowing = followMap[users[i].ID]
		}
	}

	return &model.SearchPage{
		Users:      users,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

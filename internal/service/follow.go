package service

import (
	"context"
	"log"

	"microblog/internal/model"
	"microblog/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Toggle flips the viewer's follow edge toward the named user and returns
// the new state: true if the viewer now follows them. Calling twice from
// the same starting state restores it; this alternating behavior is the
// contract the follow button relies on. A self-follow attempt fails
// regardless of prior state.
func (s *FollowService) Toggle(ctx context.Context, followerID int64, targetUsername string) (bool, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return false, err
	}

	if target.ID == followerID {
		return false, model.ErrCannotFollowSelf
	}

	following, err := s.followRepo.Toggle(ctx, followerID, target.ID)
	if err != nil {
		return false, err
	}

	log.Printf("[FollowService] Toggle: follower=%d target=%s following=%v",
		followerID, targetUsername, following)
	return following, nil
}

// IsFollowing reports whether follower currently follows followee.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}

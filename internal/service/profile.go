package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"microblog/internal/model"
	"microblog/internal/repository"
)

// ProfileService aggregates per-profile counters and the viewer's follow
// state, and applies owner-only profile edits.
type ProfileService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	feed       *FeedService
}

func NewProfileService(userRepo repository.UserRepository, followRepo repository.FollowRepository, feed *FeedService) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		followRepo: followRepo,
		feed:       feed,
	}
}

// GetProfile returns the named user's profile: field values, post and
// follower/following counts, whether the viewer follows them, and one page
// of their posts. Read-only.
func (s *ProfileService) GetProfile(ctx context.Context, viewerID int64, username string, page int) (*model.ProfileView, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.feed.UserPosts(ctx, user.ID, page)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	followingCount, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	postCount, err := s.feed.postRepo.CountByAuthors(ctx, []int64{user.ID})
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	view := &model.ProfileView{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		Bio:            user.Bio,
		Pfp:            user.Pfp,
		PostCount:      postCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		Posts:          *posts,
	}

	if viewerID != user.ID {
		isFollowing, err := s.followRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("check follow state: %w", err)
		}
		view.IsFollowing = isFollowing
	}

	return view, nil
}

// UpdateProfile applies an owner-only edit of name, bio and profile
// picture. Nil request fields keep their stored value; non-nil name/bio
// are trimmed and stored as NULL when empty. The write is a single UPDATE
// statement, so concurrent edits cannot interleave per-column.
func (s *ProfileService) UpdateProfile(ctx context.Context, requesterID int64, username string, req model.UpdateProfileRequest) (*model.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if target.ID != requesterID {
		return nil, model.ErrNotProfileOwner
	}

	name := target.Name
	if req.Name != nil {
		name, err = normalizeField(*req.Name, model.MaxNameLength, model.ErrNameTooLong)
		if err != nil {
			return nil, err
		}
	}

	bio := target.Bio
	if req.Bio != nil {
		bio, err = normalizeField(*req.Bio, model.MaxBioLength, model.ErrBioTooLong)
		if err != nil {
			return nil, err
		}
	}

	pfp := target.Pfp
	if req.Pfp != nil {
		if !model.ValidPfp(*req.Pfp) {
			return nil, model.ErrInvalidPfp
		}
		pfp = *req.Pfp
	}

	updated, err := s.userRepo.UpdateProfile(ctx, target.ID, name, bio, pfp)
	if err != nil {
		return nil, err
	}

	log.Printf("[ProfileService] User %d updated profile", requesterID)
	return updated, nil
}

// normalizeField trims an optional text field; empty after trim becomes
// "no value" (NULL), distinct from an untouched field. Limits count
// characters, matching the VARCHAR column widths.
func normalizeField(value string, maxLen int, tooLong error) (*string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return nil, tooLong
	}
	return &trimmed, nil
}

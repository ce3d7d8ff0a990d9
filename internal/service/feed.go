package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"microblog/internal/model"
	"microblog/internal/repository"
	"microblog/internal/timeago"
)

// Page sizes are fixed per scope.
const (
	// HomePageSize is the page size of the personal feed.
	HomePageSize = 3

	// ExplorePageSize is the page size of the global feed.
	ExplorePageSize = 5

	// ProfilePageSize is the page size of a profile's own posts.
	ProfilePageSize = 3

	// SearchPageSize is the page size of user search results.
	SearchPageSize = 5
)

// FeedService computes ordered, paginated views over the post store,
// restricted by the viewer's social graph for the personal scope.
type FeedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// Home returns one page of the viewer's personal feed: posts authored by
// the viewer or by anyone the viewer follows, newest first. The follow
// graph is read on every call, so the result always reflects the current
// edges rather than a snapshot.
func (s *FeedService) Home(ctx context.Context, viewerID int64, page int) (*model.FeedPage, error) {
	startTime := time.Now()

	authorIDs, err := s.visibleAuthors(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("count home feed: %w", err)
	}

	totalPages, offset, err := paginate(page, total, HomePageSize)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, HomePageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list home feed: %w", err)
	}

	log.Printf("[FeedService] Home OK: viewer=%d page=%d posts=%d duration=%v",
		viewerID, page, len(posts), time.Since(startTime))

	return &model.FeedPage{
		Posts:      renderPosts(posts),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Explore returns one page of the global feed: every post, newest first.
func (s *FeedService) Explore(ctx context.Context, page int) (*model.FeedPage, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count explore feed: %w", err)
	}

	totalPages, offset, err := paginate(page, total, ExplorePageSize)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListAll(ctx, ExplorePageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list explore feed: %w", err)
	}

	return &model.FeedPage{
		Posts:      renderPosts(posts),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// UserPosts returns one page of a single author's posts, newest first.
// Used by the profile page.
func (s *FeedService) UserPosts(ctx context.Context, authorID int64, page int) (*model.FeedPage, error) {
	authorIDs := []int64{authorID}

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("count user posts: %w", err)
	}

	totalPages, offset, err := paginate(page, total, ProfilePageSize)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, ProfilePageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}

	return &model.FeedPage{
		Posts:      renderPosts(posts),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// visibleAuthors is the personal-scope visibility predicate: the viewer
// plus everyone the viewer follows.
func (s *FeedService) visibleAuthors(ctx context.Context, viewerID int64) ([]int64, error) {
	followeeIDs, err := s.followRepo.GetFolloweeIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get followee ids: %w", err)
	}
	return append(followeeIDs, viewerID), nil
}

// paginate validates a 1-indexed page number against the total row count
// and returns the page count and row offset. An empty result set still has
// one (empty) page; anything outside [1, totalPages] is rejected, never
// clamped.
func paginate(page, total, pageSize int) (totalPages, offset int, err error) {
	if page < 1 {
		return 0, 0, model.ErrInvalidPage
	}

	totalPages = (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return 0, 0, model.ErrInvalidPage
	}

	return totalPages, (page - 1) * pageSize, nil
}

// renderPosts converts DB rows to display rows, rendering each post's age
// relative to the current UTC time.
func renderPosts(posts []model.AuthoredPost) []model.FeedPost {
	now := time.Now().UTC()
	rendered := make([]model.FeedPost, len(posts))
	for i, p := range posts {
		rendered[i] = model.FeedPost{
			ID:        p.ID,
			Username:  p.Username,
			Content:   p.Content,
			PostedAgo: timeago.Format(p.PostTime, now),
			Pfp:       p.Pfp,
		}
	}
	return rendered
}

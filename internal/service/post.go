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

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create validates and inserts a new post. Content is trimmed before the
// length checks; the timestamp is generated server-side.
func (s *PostService) Create(ctx context.Context, authorID int64, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.ErrContentRequired
	}
	if utf8.RuneCountInString(content) > model.MaxPostContentLength {
		return nil, model.ErrContentTooLong
	}

	post, err := s.postRepo.Create(ctx, authorID, content)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	log.Printf("[PostService] User %d created post %d", authorID, post.ID)
	return post, nil
}

// Delete removes a post if the requester authored it. Deleting an unknown
// or already-deleted post fails with ErrPostNotFound; deleting someone
// else's post fails with ErrNotPostOwner and leaves the post intact.
func (s *PostService) Delete(ctx context.Context, requesterID, postID int64) error {
	if err := s.postRepo.Delete(ctx, postID, requesterID); err != nil {
		return err
	}

	log.Printf("[PostService] User %d deleted post %d", requesterID, postID)
	return nil
}

package model

import (
	"errors"
	"time"
)

// Post represents a single text update authored by a user.
type Post struct {
	ID       int64     `db:"id" json:"id"`
	UserID   int64     `db:"user_id" json:"user_id"`
	Content  string    `db:"content" json:"content"`
	PostTime time.Time `db:"post_time" json:"post_time"`
}

// AuthoredPost is a post row joined with its author's username and
// profile picture, as selected by the feed queries.
type AuthoredPost struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	Username string    `db:"username"`
	Content  string    `db:"content"`
	PostTime time.Time `db:"post_time"`
	Pfp      string    `db:"pfp"`
}

// FeedPost is a post enriched with author info and a rendered relative age,
// ready for display.
type FeedPost struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	PostedAgo string `json:"posted_ago"`
	Pfp       string `json:"pfp"`
}

// FeedPage is one page of a feed plus the page count for navigation.
type FeedPage struct {
	Posts      []FeedPost `json:"posts"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

// CreatePostRequest is the request body for creating a post.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// DeletePostRequest is the request body for deleting a post.
type DeletePostRequest struct {
	PostID int64 `json:"post_id"`
}

// MaxPostContentLength bounds post content after trimming.
const MaxPostContentLength = 2000

// Post errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("not the owner of this post")
	ErrContentRequired = errors.New("content is required")
	ErrContentTooLong  = errors.New("content too long")

	// ErrInvalidPage is returned when a page number is below 1 or beyond
	// the computed page count. Out-of-range pages are rejected, never clamped.
	ErrInvalidPage = errors.New("invalid page number")
)

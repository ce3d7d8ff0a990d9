package model

import (
	"errors"
	"time"
)

// Follow is a directed edge: follower receives followee's posts in
// their home feed.
type Follow struct {
	FollowerID int64     `db:"follower_id" json:"follower_id"`
	FolloweeID int64     `db:"followee_id" json:"followee_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// UserSummary is a lightweight user representation for search results.
type UserSummary struct {
	ID          int64   `db:"id" json:"id"`
	Username    string  `db:"username" json:"username"`
	Name        *string `db:"name" json:"name"`
	Pfp         string  `db:"pfp" json:"pfp"`
	IsFollowing bool    `json:"is_following"`
}

// SearchPage is one page of user search results.
type SearchPage struct {
	Users      []UserSummary `json:"users"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// ProfileView aggregates everything the profile page needs: the profile
// fields, the counters, the viewer's follow state and one page of the
// owner's posts.
type ProfileView struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Name           *string  `json:"name"`
	Bio            *string  `json:"bio"`
	Pfp            string   `json:"pfp"`
	PostCount      int      `json:"post_count"`
	FollowerCount  int      `json:"follower_count"`
	FollowingCount int      `json:"following_count"`
	IsFollowing    bool     `json:"is_following"`
	Posts          FeedPage `json:"posts"`
}

var (
	// ErrCannotFollowSelf is returned for a self-follow attempt regardless
	// of prior state
	ErrCannotFollowSelf = errors.New("cannot follow yourself")

	// ErrInvalidQuery is returned when a search query is empty after
	// trimming or exceeds 50 characters
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrNoResults is returned when a valid search matches nothing.
	// Distinct from ErrInvalidPage: the query was fine, the set is empty.
	ErrNoResults = errors.New("no results found")
)

// MaxSearchQueryLength bounds the search query after trimming.
const MaxSearchQueryLength = 50

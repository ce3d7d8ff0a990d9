package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
)

func feedFixture(postRepo *stubPostRepo) *FeedHandler {
	feedSvc := service.NewFeedService(postRepo, stubFollowRepo{})
	postSvc := service.NewPostService(postRepo)
	return NewFeedHandler(feedSvc, postSvc)
}

func seededPosts(n int) []model.AuthoredPost {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	posts := make([]model.AuthoredPost, n)
	for i := range posts {
		// Stored newest first, matching the repository's ordering contract.
		posts[i] = model.AuthoredPost{
			ID:       int64(n - i),
			UserID:   1,
			Username: "alice",
			Content:  "post",
			PostTime: base.Add(-time.Duration(i) * time.Minute),
			Pfp:      model.DefaultPfp,
		}
	}
	return posts
}

func TestFeedHandlerHome(t *testing.T) {
	h := feedFixture(&stubPostRepo{posts: seededPosts(4)})

	req := asViewer(httptest.NewRequest(http.MethodGet, "/", nil), 1, "alice")
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var page model.FeedPage
	require.NoError(t, decodeBody(rec, &page))
	assert.Len(t, page.Posts, service.HomePageSize)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
}

func TestFeedHandlerHomeUnauthenticated(t *testing.T) {
	h := feedFixture(&stubPostRepo{})

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeedHandlerHomeInvalidPage(t *testing.T) {
	h := feedFixture(&stubPostRepo{posts: seededPosts(2)})

	tests := []string{"/?page=abc", "/?page=0", "/?page=99"}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			req := asViewer(httptest.NewRequest(http.MethodGet, url, nil), 1, "alice")
			rec := httptest.NewRecorder()
			h.Home(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, httputil.ErrCodeInvalidPage, decodeError(t, rec).Error.Code)
		})
	}
}

func TestFeedHandlerExplore(t *testing.T) {
	h := feedFixture(&stubPostRepo{posts: seededPosts(7)})

	req := asViewer(httptest.NewRequest(http.MethodGet, "/explore?page=2", nil), 1, "alice")
	rec := httptest.NewRecorder()
	h.Explore(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page model.FeedPage
	require.NoError(t, decodeBody(rec, &page))
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 2, page.TotalPages)
}

func TestFeedHandlerCreatePost(t *testing.T) {
	h := feedFixture(&stubPostRepo{})

	body := strings.NewReader(`{"content": "hello world"}`)
	req := asViewer(httptest.NewRequest(http.MethodPost, "/", body), 1, "alice")
	rec := httptest.NewRecorder()
	h.CreatePost(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var post model.Post
	require.NoError(t, decodeBody(rec, &post))
	assert.Equal(t, "hello world", post.Content)
}

func TestFeedHandlerCreatePostBadBody(t *testing.T) {
	h := feedFixture(&stubPostRepo{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"empty content", `{"content": ""}`},
		{"whitespace content", `{"content": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := asViewer(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), 1, "alice")
			rec := httptest.NewRecorder()
			h.CreatePost(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFeedHandlerDeletePostErrors(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
		wantCode   string
	}{
		{"not found", model.ErrPostNotFound, http.StatusNotFound, httputil.ErrCodeNotFound},
		{"not the owner", model.ErrNotPostOwner, http.StatusForbidden, httputil.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := feedFixture(&stubPostRepo{deleteErr: tt.repoErr})

			body := strings.NewReader(`{"post_id": 7}`)
			req := asViewer(httptest.NewRequest(http.MethodPost, "/delete", body), 1, "alice")
			rec := httptest.NewRecorder()
			h.DeletePost(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

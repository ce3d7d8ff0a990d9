package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
	postService *service.PostService
}

func NewFeedHandler(feedService *service.FeedService, postService *service.PostService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		postService: postService,
	}
}

// Home handles GET /
// Returns one page of the viewer's personal feed.
//
// Query params:
//   - page: optional, 1-indexed (default 1)
func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	page, err := parsePage(r)
	if err != nil {
		httputil.WriteInvalidPage(w, "Invalid page number")
		return
	}

	feed, err := h.feedService.Home(r.Context(), viewerID, page)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPage) {
			httputil.WriteInvalidPage(w, "Invalid page number")
			return
		}
		log.Printf("[ERROR] Home handler: viewer=%d err=%v", viewerID, err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// Explore handles GET /explore
// Returns one page of the global feed.
func (h *FeedHandler) Explore(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteInvalidPage(w, "Invalid page number")
		return
	}

	feed, err := h.feedService.Explore(r.Context(), page)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPage) {
			httputil.WriteInvalidPage(w, "Invalid page number")
			return
		}
		log.Printf("[ERROR] Explore handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// CreatePost handles POST /
// Creates a new post authored by the viewer.
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), viewerID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrContentRequired):
			httputil.WriteBadRequest(w, "Content is required")
		case errors.Is(err, model.ErrContentTooLong):
			httputil.WriteBadRequest(w, "Content too long (max 2000 characters)")
		default:
			log.Printf("[ERROR] CreatePost handler: viewer=%d err=%v", viewerID, err)
			httputil.WriteInternalError(w, "Failed to create post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// DeletePost handles POST /delete
// Deletes a post owned by the viewer. Body: {"post_id": N}.
func (h *FeedHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.DeletePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	err := h.postService.Delete(r.Context(), viewerID, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostOwner):
			httputil.WriteForbidden(w, "You can only delete your own posts")
		default:
			log.Printf("[ERROR] DeletePost handler: viewer=%d post=%d err=%v", viewerID, req.PostID, err)
			httputil.WriteInternalError(w, "Failed to delete post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}

// parsePage reads the 1-indexed page query parameter, defaulting to 1.
// Non-numeric and non-positive values are invalid input.
func parsePage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, model.ErrInvalidPage
	}
	return page, nil
}

package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

// Toggle handles POST /follow/{username}
// Flips the viewer's follow edge toward the named user and returns the
// resulting state.
func (h *FollowHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")

	following, err := h.followService.Toggle(r.Context(), followerID, username)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w, "User can't follow/unfollow themselves")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User doesn't exist")
		default:
			log.Printf("[ERROR] Toggle handler: follower=%d username=%s err=%v", followerID, username, err)
			httputil.WriteInternalError(w, "Failed to toggle follow")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{
		"following": following,
	})
}

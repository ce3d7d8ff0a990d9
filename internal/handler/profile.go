package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET /profile/{username}
// Returns the profile view: counters, follow state and one page of posts.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")

	page, err := parsePage(r)
	if err != nil {
		httputil.WriteInvalidPage(w, "Invalid page number")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), viewerID, username, page)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "Username doesn't exist")
		case errors.Is(err, model.ErrInvalidPage):
			httputil.WriteInvalidPage(w, "Invalid page number")
		default:
			log.Printf("[ERROR] GetProfile handler: username=%s err=%v", username, err)
			httputil.WriteInternalError(w, "Failed to get profile")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles POST /profile/{username}
// Applies an owner-only profile edit and returns the updated snapshot.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.profileService.UpdateProfile(r.Context(), viewerID, username, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "Username doesn't exist")
		case errors.Is(err, model.ErrNotProfileOwner):
			httputil.WriteForbidden(w, "You can only edit your own profile")
		case errors.Is(err, model.ErrNameTooLong):
			httputil.WriteBadRequest(w, "Name too long (max 50 characters)")
		case errors.Is(err, model.ErrBioTooLong):
			httputil.WriteBadRequest(w, "Bio too long (max 300 characters)")
		case errors.Is(err, model.ErrInvalidPfp):
			httputil.WriteBadRequest(w, "Invalid profile picture")
		default:
			log.Printf("[ERROR] UpdateProfile handler: viewer=%d username=%s err=%v", viewerID, username, err)
			httputil.WriteInternalError(w, "Failed to update profile")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

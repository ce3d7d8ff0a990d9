package handler

import (
	"errors"
	"log"
	"net/http"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type SearchHandler struct {
	userService *service.UserService
}

func NewSearchHandler(userService *service.UserService) *SearchHandler {
	return &SearchHandler{
		userService: userService,
	}
}

// Search handles GET /search?q=&page=
// Returns one page of users matching the query.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query().Get("q")

	page, err := parsePage(r)
	if err != nil {
		httputil.WriteInvalidPage(w, "Invalid page number")
		return
	}

	results, err := h.userService.Search(r.Context(), viewerID, query, page)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidQuery):
			httputil.WriteBadRequest(w, "Invalid query")
		case errors.Is(err, model.ErrNoResults):
			httputil.WriteNoResults(w, "No results found")
		case errors.Is(err, model.ErrInvalidPage):
			httputil.WriteInvalidPage(w, "Invalid page number")
		default:
			log.Printf("[ERROR] Search handler: viewer=%d err=%v", viewerID, err)
			httputil.WriteInternalError(w, "Failed to search users")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, results)
}

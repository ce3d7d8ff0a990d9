package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/httputil"
	"microblog/internal/model"
	"microblog/internal/service"
)

type stubUserRepo struct {
	users []model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for i := range s.users {
		if s.users[i].Username == username {
			return &s.users[i], nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := s.GetByUsername(ctx, username)
	return err == nil, nil
}

func (s *stubUserRepo) Search(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error) {
	matched := s.matches(query)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *stubUserRepo) CountSearch(ctx context.Context, query string) (int, error) {
	return len(s.matches(query)), nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, userID int64, name, bio *string, pfp string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepo) matches(query string) []model.UserSummary {
	var out []model.UserSummary
	for _, u := range s.users {
		if strings.Contains(u.Username, query) {
			out = append(out, model.UserSummary{ID: u.ID, Username: u.Username, Pfp: u.Pfp})
		}
	}
	return out
}

func searchHandlerFixture(users ...model.User) *SearchHandler {
	userSvc := service.NewUserService(&stubUserRepo{users: users}, stubFollowRepo{})
	return NewSearchHandler(userSvc)
}

func TestSearchHandler(t *testing.T) {
	h := searchHandlerFixture(
		model.User{ID: 2, Username: "bob", Pfp: model.DefaultPfp},
		model.User{ID: 3, Username: "bobby", Pfp: model.DefaultPfp},
	)

	req := asViewer(httptest.NewRequest(http.MethodGet, "/search?q=bob", nil), 1, "alice")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page model.SearchPage
	require.NoError(t, decodeBody(rec, &page))
	assert.Len(t, page.Users, 2)
	assert.Equal(t, 1, page.TotalPages)
}

func TestSearchHandlerNoResults(t *testing.T) {
	h := searchHandlerFixture()

	req := asViewer(httptest.NewRequest(http.MethodGet, "/search?q=nobody", nil), 1, "alice")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, httputil.ErrCodeNoResults, decodeError(t, rec).Error.Code)
}

func TestSearchHandlerInvalidQuery(t *testing.T) {
	h := searchHandlerFixture(model.User{ID: 2, Username: "bob"})

	for _, url := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		t.Run(url, func(t *testing.T) {
			req := asViewer(httptest.NewRequest(http.MethodGet, url, nil), 1, "alice")
			rec := httptest.NewRecorder()
			h.Search(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, httputil.ErrCodeBadRequest, decodeError(t, rec).Error.Code)
		})
	}
}

func TestSearchHandlerInvalidPage(t *testing.T) {
	h := searchHandlerFixture(model.User{ID: 2, Username: "bob"})

	req := asViewer(httptest.NewRequest(http.MethodGet, "/search?q=bob&page=5", nil), 1, "alice")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, httputil.ErrCodeInvalidPage, decodeError(t, rec).Error.Code)
}

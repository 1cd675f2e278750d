package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hirestack/job-board/backend/internal/domain"
	"github.com/hirestack/job-board/backend/internal/token"
)

func newAuthTestHandler(expiration time.Duration) *Handler {
	return &Handler{tokens: token.NewService("test-secret", expiration)}
}

func serveAuth(t *testing.T, h *Handler, authHeader string) (*httptest.ResponseRecorder, int64) {
	t.Helper()

	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(UserIDCtxKey).(int64)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)
	return rec, gotUserID
}

func TestAuthMissingToken(t *testing.T) {
	h := newAuthTestHandler(time.Hour)

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		rec, _ := serveAuth(t, h, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("auth with header %q returned %d, want 401", header, rec.Code)
		}

		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response body is not JSON: %v", err)
		}
		if body.Error != "Access denied. No token provided." {
			t.Errorf("error message = %q", body.Error)
		}
	}
}

func TestAuthInvalidToken(t *testing.T) {
	h := newAuthTestHandler(time.Hour)

	rec, _ := serveAuth(t, h, "Bearer not-a-real-token")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("auth with garbage token returned %d, want 400", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Error != "Invalid token." {
		t.Errorf("error message = %q, want \"Invalid token.\"", body.Error)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	expired := newAuthTestHandler(-time.Minute)
	tok, err := expired.tokens.Issue(5)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}

	rec, _ := serveAuth(t, expired, "Bearer "+tok)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("auth with expired token returned %d, want 400", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Error != "Token has expired." {
		t.Errorf("error message = %q, want \"Token has expired.\"", body.Error)
	}
}

func TestAuthValidTokenResolvesUser(t *testing.T) {
	h := newAuthTestHandler(time.Hour)
	tok, err := h.tokens.Issue(42)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}

	rec, userID := serveAuth(t, h, "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("auth with valid token returned %d, want 200", rec.Code)
	}
	if userID != 42 {
		t.Errorf("context user id = %d, want 42", userID)
	}
}

type fakeListingStore struct {
	listings map[int64]*domain.Listing
}

func (s *fakeListingStore) GetListingByID(id int64) (*domain.Listing, error) {
	listing, ok := s.listings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return listing, nil
}

// serveOwnership 通过真实的 chi 路由发请求，让 chi.URLParam 能解析出路径参数。
func serveOwnership(t *testing.T, h *Handler, asUserID int64, path string) (*httptest.ResponseRecorder, *domain.Listing) {
	t.Helper()

	var gotJob *domain.Listing
	mux := chi.NewRouter()
	mux.With(h.auth, h.jobOwnership).Delete("/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotJob = r.Context().Value(JobCtxKey).(*domain.Listing)
		w.WriteHeader(http.StatusOK)
	})

	tok, err := h.tokens.Issue(asUserID)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec, gotJob
}

func TestJobOwnershipForbiddenForNonOwner(t *testing.T) {
	h := newAuthTestHandler(time.Hour)
	h.listings = &fakeListingStore{listings: map[int64]*domain.Listing{
		1: {ID: 1, UserID: 1, CompanyName: "Brightwave Labs"},
	}}

	rec, _ := serveOwnership(t, h, 2, "/jobs/1")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner delete returned %d, want 403", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Error != "Access denied. You are not the owner of this job listing." {
		t.Errorf("error message = %q", body.Error)
	}
}

func TestJobOwnershipMissingListing(t *testing.T) {
	h := newAuthTestHandler(time.Hour)
	h.listings = &fakeListingStore{listings: map[int64]*domain.Listing{}}

	rec, _ := serveOwnership(t, h, 1, "/jobs/99")
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete of missing listing returned %d, want 404", rec.Code)
	}
}

func TestJobOwnershipNonNumericID(t *testing.T) {
	// 非数字的 id 在查库之前就被拒绝，所以不需要 listing 存储
	h := newAuthTestHandler(time.Hour)

	rec, _ := serveOwnership(t, h, 1, "/jobs/abc")
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete with non-numeric id returned %d, want 404", rec.Code)
	}
}

func TestJobOwnershipOwnerPasses(t *testing.T) {
	h := newAuthTestHandler(time.Hour)
	h.listings = &fakeListingStore{listings: map[int64]*domain.Listing{
		7: {ID: 7, UserID: 42, CompanyName: "Nimbus Works"},
	}}

	rec, gotJob := serveOwnership(t, h, 42, "/jobs/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete returned %d, want 200", rec.Code)
	}
	if gotJob == nil || gotJob.ID != 7 {
		t.Errorf("context listing = %+v, want listing 7", gotJob)
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	h, err := NewHandler(nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewHandler returned unexpected error: %v", err)
	}
	return h
}

func TestBadRequestPlainError(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	rec := httptest.NewRecorder()
	h.badRequest(rec, req, errors.New("unexpected EOF"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Error != "unexpected EOF" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestBadRequestValidationErrors(t *testing.T) {
	h := newTestHandler(t)

	// 两个字段都不合法，应该把所有校验错误一起返回
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}
	req.Email = "not-an-email"
	req.Password = "123"

	err := h.validate.Struct(req)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	r := httptest.NewRequest(http.MethodPost, "/signup", nil)
	rec := httptest.NewRecorder()
	h.badRequest(rec, r, err)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if len(body.Errors) != 2 {
		t.Errorf("errors = %v, want 2 messages", body.Errors)
	}
}

func TestStatusHelpers(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
		code int
	}{
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) { h.unauthorized(w, r, "nope") }, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter, r *http.Request) { h.forbidden(w, r, "nope") }, http.StatusForbidden},
		{"notFound", func(w http.ResponseWriter, r *http.Request) { h.notFound(w, r, "nope") }, http.StatusNotFound},
		{"internal", func(w http.ResponseWriter, r *http.Request) { h.internalServerError(w, r, errors.New("boom")) }, http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c.call(rec, req)

			if rec.Code != c.code {
				t.Errorf("status = %d, want %d", rec.Code, c.code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not JSON: %v", err)
			}
			if body.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestInternalServerErrorHidesDetails(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.internalServerError(rec, req, errors.New("pq: connection refused on 10.0.0.3"))

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Error != "Something went wrong!" {
		t.Errorf("error = %q, internal detail must not leak", body.Error)
	}
}

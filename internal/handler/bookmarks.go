package handler

import (
	"net/http"

	"github.com/hirestack/job-board/backend/internal/domain"
)

func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID int64 `json:"jobId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequestMessage(w, r, "Job ID is required")
		return
	}

	// 收藏不检查职位是否存在，也允许重复收藏，指向已删除职位的
	// 收藏在列表查询时会被连接条件过滤掉
	bookmark := &domain.Bookmark{
		JobID:  req.JobID,
		UserID: r.Context().Value(UserIDCtxKey).(int64),
	}

	if err := h.repository.CreateBookmark(bookmark); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, bookmark)
}

func (h *Handler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	listings, err := h.repository.GetBookmarkedListings(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, listings)
}

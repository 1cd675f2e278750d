package handler

import (
	"database/sql"
	"errors"
	"net/http"
)

// GetMyInfo 返回当前登录用户的信息，用户 ID 来自 auth 中间件。
func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "User not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, user)
}

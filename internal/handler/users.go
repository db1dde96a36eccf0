package handler

import (
	"net/http"
)

// GetUser 找不到用户时返回 null 而不是错误，前端据此判断未登录
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := h.repository.GetUserByEmail(email)
	if err != nil {
		h.internalServerError(w, r, err, "Failed to load user")
		return
	}

	h.writeJSON(w, r, http.StatusOK, user)
}

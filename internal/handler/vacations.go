package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/repository"
)

func (h *Handler) GetVacations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.VacationFilter{
		EmployeeEmail: query.Get("email"),
		Status:        domain.VacationStatus(query.Get("status")),
	}

	vacations, err := h.repository.GetVacations(filter)
	if err != nil {
		h.internalServerError(w, r, err, "Failed to load vacations")
		return
	}

	h.writeJSON(w, r, http.StatusOK, vacations)
}

// CreateVacation 原样保存调用方生成的记录，id 和 employeeEmail 都由调用方决定
// 请求体按 domain.Vacation 解析：未知字段会被丢弃，字段类型不符（例如数字 id）返回 400
func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var vacation domain.Vacation

	if err := h.readJSON(r, &vacation); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid vacation request body")
		return
	}

	if err := h.repository.CreateVacation(&vacation); err != nil {
		h.internalServerError(w, r, err, "Failed to process vacation request")
		return
	}

	h.notifyManagers(r, &vacation)

	h.writeJSON(w, r, http.StatusOK, vacation)
}

func (h *Handler) UpdateVacationStatus(w http.ResponseWriter, r *http.Request) {
	// id 按原样精确匹配，不做任何裁剪
	vacationID := chi.URLParam(r, "id")
	if vacationID == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "Vacation ID is required")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.updateVacationStatus(w, r, vacationID, domain.VacationStatus(req.Status))
}

// UpdateVacationStatusByBody 是旧版接口，行为与 PATCH 相同
func (h *Handler) UpdateVacationStatusByBody(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Deprecation", "true")

	var req struct {
		VacationID string `json:"vacationId" validate:"required"`
		Status     string `json:"status" validate:"required,oneof=pending approved rejected"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.updateVacationStatus(w, r, req.VacationID, domain.VacationStatus(req.Status))
}

func (h *Handler) updateVacationStatus(w http.ResponseWriter, r *http.Request, vacationID string, status domain.VacationStatus) {
	vacation, err := h.repository.UpdateVacationStatus(vacationID, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.notFound(w, r, "Vacation not found")
		case errors.Is(err, repository.ErrIllegalTransition):
			h.errorResponse(w, r, http.StatusConflict, err.Error())
		default:
			h.internalServerError(w, r, err, "Failed to update vacation status")
		}
		return
	}

	h.notifyEmployee(r, vacation)

	h.writeJSON(w, r, http.StatusOK, vacation)
}

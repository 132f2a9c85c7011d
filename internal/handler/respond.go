package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
)

// responder содержит общие помощники ответов, встраивается в хендлеры
type responder struct {
	logger *slog.Logger
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError переводит бизнес-ошибки в HTTP статусы.
// Нарушения доменных правил отличимы от сбоев хранилища: первые
// получают понятное сообщение, вторые - общий 500.
func (h *responder) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrPositionNotFound),
		errors.Is(err, domain.ErrHolidayNotFound),
		errors.Is(err, domain.ErrLeaveTypeNotFound),
		errors.Is(err, domain.ErrLeaveRequestNotFound),
		errors.Is(err, domain.ErrCompensationNotFound),
		errors.Is(err, domain.ErrPayrollSetNotFound):
		h.respondError(w, http.StatusNotFound, err.Error(), "")

	case errors.Is(err, domain.ErrDuplicateDepartmentName),
		errors.Is(err, domain.ErrDuplicatePositionTitle),
		errors.Is(err, domain.ErrDuplicateHolidayDate),
		errors.Is(err, domain.ErrDuplicateLeaveTypeName),
		errors.Is(err, domain.ErrDuplicatePayrollSetName),
		errors.Is(err, domain.ErrDuplicateAttendance):
		h.respondError(w, http.StatusConflict, err.Error(), "")

	case errors.Is(err, domain.ErrCycleDetected),
		errors.Is(err, domain.ErrHasChildren),
		errors.Is(err, domain.ErrHasAssignedEmployees),
		errors.Is(err, domain.ErrPositionInUse),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrLeaveAlreadyReviewed):
		h.respondError(w, http.StatusConflict, err.Error(), "")

	case errors.Is(err, domain.ErrSelfParent),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrNoComponents),
		errors.Is(err, domain.ErrTotalMismatch),
		errors.Is(err, domain.ErrInvalidPeriod):
		h.respondError(w, http.StatusBadRequest, err.Error(), "")

	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

// pathID извлекает числовой идентификатор из шаблона пути
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// actorID извлекает идентификатор вызывающего пользователя из заголовка.
// Глобального "текущего пользователя" в системе нет: идентичность
// передаётся явно в каждую мутирующую операцию.
func actorID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/service"
)

// LeaveHandler обслуживает заявки на отпуск и посещаемость
type LeaveHandler struct {
	responder
	leaveService service.LeaveService
	attService   service.AttendanceService
	validator    *validator.Validate
}

func NewLeaveHandler(
	leaveService service.LeaveService,
	attService service.AttendanceService,
	logger *slog.Logger,
) *LeaveHandler {
	return &LeaveHandler{
		responder:    responder{logger: logger},
		leaveService: leaveService,
		attService:   attService,
		validator:    validator.New(),
	}
}

func (h *LeaveHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	lr, err := h.leaveService.CreateRequest(r.Context(), &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toLeaveRequestResponse(lr))
}

func (h *LeaveHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid leave request id", err.Error())
		return
	}

	lr, err := h.leaveService.GetRequest(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toLeaveRequestResponse(lr))
}

// ListByEmployee возвращает заявки сотрудника, employee_id обязателен
func (h *LeaveHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "employee_id query parameter is required", "")
		return
	}

	requests, err := h.leaveService.GetRequestsByEmployee(r.Context(), empID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.LeaveRequestResponse, len(requests))
	for i := range requests {
		resp[i] = toLeaveRequestResponse(&requests[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Approve)
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Reject)
}

func (h *LeaveHandler) review(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64, actorID int64) (*domain.LeaveRequest, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid leave request id", err.Error())
		return
	}

	lr, err := fn(r.Context(), id, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toLeaveRequestResponse(lr))
}

func (h *LeaveHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid leave request id", err.Error())
		return
	}

	if err := h.leaveService.DeleteRequest(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordAttendance сохраняет отметку посещаемости за день
func (h *LeaveHandler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	att, err := h.attService.Record(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toAttendanceResponse(att))
}

// ListAttendance возвращает отметки сотрудника за месяц
func (h *LeaveHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "employee_id query parameter is required", "")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "year query parameter is required", "")
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "month query parameter is required", "")
		return
	}

	records, err := h.attService.GetByEmployeeAndPeriod(r.Context(), empID, domain.Period{Year: year, Month: month})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.AttendanceResponse, len(records))
	for i := range records {
		resp[i] = toAttendanceResponse(&records[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func toLeaveRequestResponse(lr *domain.LeaveRequest) dto.LeaveRequestResponse {
	return dto.LeaveRequestResponse{
		ID:          lr.ID,
		EmployeeID:  lr.EmployeeID,
		LeaveTypeID: lr.LeaveTypeID,
		FromDate:    lr.FromDate.Format("2006-01-02"),
		ThruDate:    lr.ThruDate.Format("2006-01-02"),
		Reason:      lr.Reason,
		Status:      lr.Status,
		ReviewedBy:  lr.ReviewedBy,
		CreatedAt:   lr.CreatedAt,
	}
}

func toAttendanceResponse(att *domain.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		Status:     att.Status,
	}
}

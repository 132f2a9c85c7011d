package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/service"
)

// DirectoryHandler обслуживает справочники: должности, праздничные дни
// и виды отпусков
type DirectoryHandler struct {
	responder
	posService     service.PositionService
	holidayService service.HolidayService
	leaveService   service.LeaveService
	validator      *validator.Validate
}

func NewDirectoryHandler(
	posService service.PositionService,
	holidayService service.HolidayService,
	leaveService service.LeaveService,
	logger *slog.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{
		responder:      responder{logger: logger},
		posService:     posService,
		holidayService: holidayService,
		leaveService:   leaveService,
		validator:      validator.New(),
	}
}

func (h *DirectoryHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	pos, err := h.posService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toPositionResponse(pos))
}

func (h *DirectoryHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.posService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.PositionResponse, len(positions))
	for i := range positions {
		resp[i] = toPositionResponse(&positions[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DirectoryHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid position id", err.Error())
		return
	}

	var req dto.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	pos, err := h.posService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPositionResponse(pos))
}

func (h *DirectoryHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid position id", err.Error())
		return
	}

	if err := h.posService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	holiday, err := h.holidayService.Create(r.Context(), &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toHolidayResponse(holiday))
}

func (h *DirectoryHandler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.HolidayResponse, len(holidays))
	for i := range holidays {
		resp[i] = toHolidayResponse(&holidays[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DirectoryHandler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid holiday id", err.Error())
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	lt, err := h.leaveService.CreateType(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toLeaveTypeResponse(lt))
}

func (h *DirectoryHandler) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.GetTypes(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.LeaveTypeResponse, len(types))
	for i := range types {
		resp[i] = toLeaveTypeResponse(&types[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DirectoryHandler) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid leave type id", err.Error())
		return
	}

	if err := h.leaveService.DeleteType(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPositionResponse(pos *domain.Position) dto.PositionResponse {
	return dto.PositionResponse{
		ID:        pos.ID,
		Title:     pos.Title,
		CreatedAt: pos.CreatedAt,
	}
}

func toHolidayResponse(holiday *domain.Holiday) dto.HolidayResponse {
	return dto.HolidayResponse{
		ID:        holiday.ID,
		Name:      holiday.Name,
		Date:      holiday.Date.Format("2006-01-02"),
		CreatedAt: holiday.CreatedAt,
	}
}

func toLeaveTypeResponse(lt *domain.LeaveType) dto.LeaveTypeResponse {
	return dto.LeaveTypeResponse{
		ID:        lt.ID,
		Name:      lt.Name,
		IsPaid:    lt.IsPaid,
		CreatedAt: lt.CreatedAt,
	}
}

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

type EmployeeHandler struct {
	responder
	empService  service.EmployeeService
	compService service.CompensationService
	validator   *validator.Validate
}

func NewEmployeeHandler(
	empService service.EmployeeService,
	compService service.CompensationService,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		responder:   responder{logger: logger},
		empService:  empService,
		compService: compService,
		validator:   validator.New(),
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Create(r.Context(), &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SaveCompensation создаёт сотруднику новое вознаграждение
func (h *EmployeeHandler) SaveCompensation(w http.ResponseWriter, r *http.Request) {
	empID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.SaveCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	comp, err := h.compService.Save(r.Context(), empID, 0, &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toCompensationResponse(comp))
}

// UpdateCompensation заменяет существующее вознаграждение вместе
// с компонентами
func (h *EmployeeHandler) UpdateCompensation(w http.ResponseWriter, r *http.Request) {
	empID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	compID, err := pathID(r, "compID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid compensation id", err.Error())
		return
	}

	var req dto.SaveCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	comp, err := h.compService.Save(r.Context(), empID, compID, &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toCompensationResponse(comp))
}

// DeleteCompensation удаляет вознаграждение сотрудника
func (h *EmployeeHandler) DeleteCompensation(w http.ResponseWriter, r *http.Request) {
	empID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	compID, err := pathID(r, "compID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid compensation id", err.Error())
		return
	}

	comp, err := h.compService.GetByID(r.Context(), compID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if comp.EmployeeID != empID {
		h.handleServiceError(w, domain.ErrCompensationNotFound)
		return
	}

	if err := h.compService.Delete(r.Context(), compID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCompensations возвращает все вознаграждения сотрудника
func (h *EmployeeHandler) ListCompensations(w http.ResponseWriter, r *http.Request) {
	empID, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	comps, err := h.compService.GetByEmployeeID(r.Context(), empID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.CompensationResponse, len(comps))
	for i := range comps {
		resp[i] = toCompensationResponse(&comps[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:           emp.ID,
		DepartmentID: emp.DepartmentID,
		PositionID:   emp.PositionID,
		FullName:     emp.FullName,
		CreatedAt:    emp.CreatedAt,
	}

	if emp.HiredAt != nil {
		hiredAt := emp.HiredAt.Format("2006-01-02")
		resp.HiredAt = &hiredAt
	}
	if emp.TerminatedAt != nil {
		terminatedAt := emp.TerminatedAt.Format("2006-01-02")
		resp.TerminatedAt = &terminatedAt
	}

	return resp
}

func toCompensationResponse(comp *domain.Compensation) dto.CompensationResponse {
	resp := dto.CompensationResponse{
		ID:          comp.ID,
		EmployeeID:  comp.EmployeeID,
		FromDate:    comp.FromDate.Format("2006-01-02"),
		IsActive:    comp.IsActive,
		TotalAmount: comp.TotalAmount,
		CreatedAt:   comp.CreatedAt,
		Components:  make([]dto.ComponentResponse, len(comp.Components)),
	}

	if comp.ThruDate != nil {
		thruDate := comp.ThruDate.Format("2006-01-02")
		resp.ThruDate = &thruDate
	}

	for i, c := range comp.Components {
		resp.Components[i] = dto.ComponentResponse{
			ID:            c.ID,
			Name:          c.Name,
			Kind:          c.Kind,
			IsBasicSalary: c.IsBasicSalary,
			IsTaxable:     c.IsTaxable,
			Amount:        c.Amount,
		}
	}

	return resp
}

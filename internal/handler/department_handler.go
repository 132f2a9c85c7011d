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

type DepartmentHandler struct {
	responder
	deptService service.DepartmentService
	empService  service.EmployeeService
	validator   *validator.Validate
}

func NewDepartmentHandler(
	deptService service.DepartmentService,
	empService service.EmployeeService,
	logger *slog.Logger,
) *DepartmentHandler {
	return &DepartmentHandler{
		responder:   responder{logger: logger},
		deptService: deptService,
		empService:  empService,
		validator:   validator.New(),
	}
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

// GetTree возвращает весь лес подразделений
func (h *DepartmentHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.deptService.GetTree(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, len(roots))
	for i := range roots {
		resp[i] = h.toDepartmentTreeResponse(&roots[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEmployees возвращает сотрудников подразделения
func (h *DepartmentHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	employees, err := h.empService.GetByDepartmentID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		ParentID:  dept.ParentID,
		Version:   dept.Version,
		CreatedAt: dept.CreatedAt,
	}
}

func (h *DepartmentHandler) toDepartmentTreeResponse(dept *domain.Department) dto.DepartmentResponse {
	resp := h.toDepartmentResponse(dept)
	if len(dept.Children) > 0 {
		resp.Children = make([]dto.DepartmentResponse, len(dept.Children))
		for i := range dept.Children {
			resp.Children[i] = h.toDepartmentTreeResponse(&dept.Children[i])
		}
	}
	return resp
}

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

// PayrollHandler обслуживает расчётные группы и прогоны расчёта зарплаты
type PayrollHandler struct {
	responder
	setService     service.PayrollSetService
	payrollService service.PayrollService
	validator      *validator.Validate
}

func NewPayrollHandler(
	setService service.PayrollSetService,
	payrollService service.PayrollService,
	logger *slog.Logger,
) *PayrollHandler {
	return &PayrollHandler{
		responder:      responder{logger: logger},
		setService:     setService,
		payrollService: payrollService,
		validator:      validator.New(),
	}
}

func (h *PayrollHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePayrollSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	set, err := h.setService.Create(r.Context(), &req, actorID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toPayrollSetResponse(set))
}

func (h *PayrollHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid payroll set id", err.Error())
		return
	}

	set, err := h.setService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPayrollSetResponse(set))
}

func (h *PayrollHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.setService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.PayrollSetResponse, len(sets))
	for i := range sets {
		resp[i] = toPayrollSetResponse(&sets[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// ReplaceMembers полностью замещает состав группы
func (h *PayrollHandler) ReplaceMembers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid payroll set id", err.Error())
		return
	}

	var req struct {
		EmployeeIDs []int64 `json:"employee_ids" validate:"dive,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	set, err := h.setService.ReplaceMembers(r.Context(), id, req.EmployeeIDs)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPayrollSetResponse(set))
}

func (h *PayrollHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid payroll set id", err.Error())
		return
	}

	if err := h.setService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Run выполняет прогон расчёта зарплаты; результаты не сохраняются
func (h *PayrollHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	period := domain.Period{Year: req.Year, Month: req.Month}
	run, err := h.payrollService.Run(r.Context(), req.PayrollSetID, period)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.PayrollRunResponse{
		ID:           run.ID,
		PayrollSetID: run.PayrollSetID,
		Year:         run.Period.Year,
		Month:        run.Period.Month,
		Results:      run.Results,
		Summary:      run.Summary,
	})
}

func toPayrollSetResponse(set *domain.PayrollSet) dto.PayrollSetResponse {
	employeeIDs := make([]int64, len(set.Members))
	for i, m := range set.Members {
		employeeIDs[i] = m.EmployeeID
	}
	return dto.PayrollSetResponse{
		ID:          set.ID,
		Name:        set.Name,
		EmployeeIDs: employeeIDs,
		CreatedAt:   set.CreatedAt,
	}
}

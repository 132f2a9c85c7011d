package handler

import (
	"log/slog"
	"net/http"

	"github.com/hr-payroll-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	deptHandler    *DepartmentHandler
	empHandler     *EmployeeHandler
	dirHandler     *DirectoryHandler
	leaveHandler   *LeaveHandler
	payrollHandler *PayrollHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	dirHandler *DirectoryHandler,
	leaveHandler *LeaveHandler,
	payrollHandler *PayrollHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		logger:         logger,
		deptHandler:    deptHandler,
		empHandler:     empHandler,
		dirHandler:     dirHandler,
		leaveHandler:   leaveHandler,
		payrollHandler: payrollHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Подразделения
	r.mux.HandleFunc("POST /departments", r.deptHandler.Create)
	r.mux.HandleFunc("GET /departments/tree", r.deptHandler.GetTree)
	r.mux.HandleFunc("GET /departments/{id}", r.deptHandler.GetByID)
	r.mux.HandleFunc("PATCH /departments/{id}", r.deptHandler.Update)
	r.mux.HandleFunc("DELETE /departments/{id}", r.deptHandler.Delete)
	r.mux.HandleFunc("GET /departments/{id}/employees", r.deptHandler.ListEmployees)

	// Сотрудники и вознаграждения
	r.mux.HandleFunc("POST /employees", r.empHandler.Create)
	r.mux.HandleFunc("GET /employees/{id}", r.empHandler.GetByID)
	r.mux.HandleFunc("PATCH /employees/{id}", r.empHandler.Update)
	r.mux.HandleFunc("DELETE /employees/{id}", r.empHandler.Delete)
	r.mux.HandleFunc("POST /employees/{id}/compensations", r.empHandler.SaveCompensation)
	r.mux.HandleFunc("PUT /employees/{id}/compensations/{compID}", r.empHandler.UpdateCompensation)
	r.mux.HandleFunc("DELETE /employees/{id}/compensations/{compID}", r.empHandler.DeleteCompensation)
	r.mux.HandleFunc("GET /employees/{id}/compensations", r.empHandler.ListCompensations)

	// Справочники
	r.mux.HandleFunc("POST /positions", r.dirHandler.CreatePosition)
	r.mux.HandleFunc("GET /positions", r.dirHandler.ListPositions)
	r.mux.HandleFunc("PATCH /positions/{id}", r.dirHandler.UpdatePosition)
	r.mux.HandleFunc("DELETE /positions/{id}", r.dirHandler.DeletePosition)
	r.mux.HandleFunc("POST /holidays", r.dirHandler.CreateHoliday)
	r.mux.HandleFunc("GET /holidays", r.dirHandler.ListHolidays)
	r.mux.HandleFunc("DELETE /holidays/{id}", r.dirHandler.DeleteHoliday)
	r.mux.HandleFunc("POST /leave-types", r.dirHandler.CreateLeaveType)
	r.mux.HandleFunc("GET /leave-types", r.dirHandler.ListLeaveTypes)
	r.mux.HandleFunc("DELETE /leave-types/{id}", r.dirHandler.DeleteLeaveType)

	// Заявки на отпуск и посещаемость
	r.mux.HandleFunc("POST /leave-requests", r.leaveHandler.CreateRequest)
	r.mux.HandleFunc("GET /leave-requests", r.leaveHandler.ListByEmployee)
	r.mux.HandleFunc("GET /leave-requests/{id}", r.leaveHandler.GetRequest)
	r.mux.HandleFunc("POST /leave-requests/{id}/approve", r.leaveHandler.Approve)
	r.mux.HandleFunc("POST /leave-requests/{id}/reject", r.leaveHandler.Reject)
	r.mux.HandleFunc("DELETE /leave-requests/{id}", r.leaveHandler.DeleteRequest)
	r.mux.HandleFunc("POST /attendance", r.leaveHandler.RecordAttendance)
	r.mux.HandleFunc("GET /attendance", r.leaveHandler.ListAttendance)

	// Расчётные группы и прогоны
	r.mux.HandleFunc("POST /payroll-sets", r.payrollHandler.CreateSet)
	r.mux.HandleFunc("GET /payroll-sets", r.payrollHandler.ListSets)
	r.mux.HandleFunc("GET /payroll-sets/{id}", r.payrollHandler.GetSet)
	r.mux.HandleFunc("PUT /payroll-sets/{id}/members", r.payrollHandler.ReplaceMembers)
	r.mux.HandleFunc("DELETE /payroll-sets/{id}", r.payrollHandler.DeleteSet)
	r.mux.HandleFunc("POST /payroll/runs", r.payrollHandler.Run)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

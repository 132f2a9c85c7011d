package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hr-payroll-api/internal/domain"
)

// ComponentRequest - одна составляющая вознаграждения в запросе
type ComponentRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Kind          string          `json:"kind" validate:"required,oneof=earning deduction"`
	IsBasicSalary bool            `json:"is_basic_salary"`
	IsTaxable     *bool           `json:"is_taxable"`
	Amount        decimal.Decimal `json:"amount"`
}

// SaveCompensationRequest - запрос на создание/замену вознаграждения.
// Список компонентов полностью замещает прежний набор.
type SaveCompensationRequest struct {
	FromDate    string             `json:"from_date" validate:"required,datetime=2006-01-02"`
	ThruDate    *string            `json:"thru_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive    bool               `json:"is_active"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Components  []ComponentRequest `json:"components" validate:"required,min=1,dive"`
}

// ComponentResponse - составляющая вознаграждения в ответе
type ComponentResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	IsBasicSalary bool            `json:"is_basic_salary"`
	IsTaxable     bool            `json:"is_taxable"`
	Amount        decimal.Decimal `json:"amount"`
}

// CompensationResponse - ответ с данными вознаграждения
type CompensationResponse struct {
	ID          int64               `json:"id"`
	EmployeeID  int64               `json:"employee_id"`
	FromDate    string              `json:"from_date"`
	ThruDate    *string             `json:"thru_date,omitempty"`
	IsActive    bool                `json:"is_active"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Components  []ComponentResponse `json:"components"`
	CreatedAt   time.Time           `json:"created_at"`
}

// CreatePayrollSetRequest - запрос на создание расчётной группы
type CreatePayrollSetRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	EmployeeIDs []int64 `json:"employee_ids" validate:"dive,min=1"`
}

// PayrollSetResponse - ответ с данными расчётной группы
type PayrollSetResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	EmployeeIDs []int64   `json:"employee_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// RunPayrollRequest - запрос на прогон расчёта зарплаты
type RunPayrollRequest struct {
	PayrollSetID int64 `json:"payroll_set_id" validate:"required,min=1"`
	Year         int   `json:"year" validate:"required,min=1970,max=9999"`
	Month        int   `json:"month" validate:"required,min=1,max=12"`
}

// PayrollRunResponse - ответ с результатами прогона
type PayrollRunResponse struct {
	ID           string                    `json:"id"`
	PayrollSetID int64                     `json:"payroll_set_id"`
	Year         int                       `json:"year"`
	Month        int                       `json:"month"`
	Results      []domain.PayrollRunResult `json:"results"`
	Summary      domain.PayrollSummary     `json:"summary"`
}

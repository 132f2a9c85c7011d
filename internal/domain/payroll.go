package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period задаёт расчётный период: год и месяц
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Valid сообщает, задан ли период корректно
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1970 && p.Year <= 9999
}

// Days возвращает число календарных дней в месяце периода
func (p Period) Days() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start возвращает первый день периода
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End возвращает последний день периода
func (p Period) End() time.Time {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// Статусы строки результата расчёта
const (
	PayrollStatusPending    = "Pending"
	PayrollStatusCalculated = "Calculated"
	PayrollStatusApproved   = "Approved"
	PayrollStatusError      = "Error"
)

// Заглушка для нерезолвящихся справочных полей
const PlaceholderNA = "N/A"

// PayItem представляет одну строку детализации начислений или удержаний
type PayItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PayrollRunResult представляет результат расчёта по одному сотруднику.
// Строится заново при каждом прогоне и не сохраняется.
type PayrollRunResult struct {
	EmployeeID      int64           `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	DepartmentName  string          `json:"department_name"`
	PositionTitle   string          `json:"position_title"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	DaysPresent     int             `json:"days_present"`
	DaysAbsent      int             `json:"days_absent"`
	UnpaidLeaveDays int             `json:"unpaid_leave_days"`
	Status          string          `json:"status"`
	Earnings        []PayItem       `json:"earnings"`
	Deductions      []PayItem       `json:"deductions"`
}

// PayrollSummary содержит агрегаты по всему прогону
type PayrollSummary struct {
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

// PayrollRun представляет полный результат одного прогона расчёта
type PayrollRun struct {
	ID           string             `json:"id"`
	PayrollSetID int64              `json:"payroll_set_id"`
	Period       Period             `json:"period"`
	Results      []PayrollRunResult `json:"results"`
	Summary      PayrollSummary     `json:"summary"`
}

// AttendanceSummary содержит счётчики посещаемости за период
type AttendanceSummary struct {
	DaysPresent int `json:"days_present"`
	DaysAbsent  int `json:"days_absent"`
}

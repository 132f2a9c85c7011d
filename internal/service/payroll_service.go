package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/repository"
)

// PayrollService определяет интерфейс движка расчёта зарплаты.
// Прогон - чистая функция от состава группы, периода и данных
// о вознаграждениях, посещаемости и отпусках; результаты нигде
// не сохраняются.
type PayrollService interface {
	Run(ctx context.Context, payrollSetID int64, period domain.Period) (*domain.PayrollRun, error)
}

type payrollService struct {
	setRepo   repository.PayrollSetRepository
	empRepo   repository.EmployeeRepository
	deptRepo  repository.DepartmentRepository
	posRepo   repository.PositionRepository
	compRepo  repository.CompensationRepository
	attRepo   repository.AttendanceRepository
	leaveRepo repository.LeaveRequestRepository
	taxRate   decimal.Decimal
}

// NewPayrollService создаёт новый экземпляр движка расчёта
func NewPayrollService(
	setRepo repository.PayrollSetRepository,
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	posRepo repository.PositionRepository,
	compRepo repository.CompensationRepository,
	attRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	taxRate decimal.Decimal,
) PayrollService {
	return &payrollService{
		setRepo:   setRepo,
		empRepo:   empRepo,
		deptRepo:  deptRepo,
		posRepo:   posRepo,
		compRepo:  compRepo,
		attRepo:   attRepo,
		leaveRepo: leaveRepo,
		taxRate:   taxRate,
	}
}

// Run рассчитывает зарплату по каждому сотруднику группы за период.
// Сбой выборки состава прерывает прогон целиком; сбой по отдельному
// сотруднику даёт строку со статусом Error, пробелы в справочных
// данных - заглушки, прогон продолжается.
func (s *payrollService) Run(ctx context.Context, payrollSetID int64, period domain.Period) (*domain.PayrollRun, error) {
	if !period.Valid() || period.Days() == 0 {
		return nil, domain.ErrInvalidPeriod
	}

	if _, err := s.setRepo.GetByID(ctx, payrollSetID); err != nil {
		return nil, err
	}

	memberIDs, err := s.setRepo.MemberIDs(ctx, payrollSetID)
	if err != nil {
		return nil, fmt.Errorf("fetch payroll set members: %w", err)
	}

	run := &domain.PayrollRun{
		ID:           uuid.NewString(),
		PayrollSetID: payrollSetID,
		Period:       period,
		Results:      make([]domain.PayrollRunResult, 0, len(memberIDs)),
		Summary: domain.PayrollSummary{
			TotalGross:      decimal.Zero,
			TotalDeductions: decimal.Zero,
			TotalNet:        decimal.Zero,
		},
	}

	for _, empID := range memberIDs {
		result := s.calculateEmployee(ctx, empID, period)
		run.Summary.TotalGross = run.Summary.TotalGross.Add(result.GrossPay)
		run.Summary.TotalDeductions = run.Summary.TotalDeductions.Add(result.TotalDeductions)
		run.Summary.TotalNet = run.Summary.TotalNet.Add(result.NetPay)
		run.Results = append(run.Results, result)
	}

	return run, nil
}

// calculateEmployee строит одну строку результата. Ошибки хранилища
// по этому сотруднику не прерывают прогон
func (s *payrollService) calculateEmployee(ctx context.Context, employeeID int64, period domain.Period) domain.PayrollRunResult {
	result := domain.PayrollRunResult{
		EmployeeID:      employeeID,
		EmployeeName:    domain.PlaceholderNA,
		DepartmentName:  domain.PlaceholderNA,
		PositionTitle:   domain.PlaceholderNA,
		BasicSalary:     decimal.Zero,
		GrossPay:        decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
		Status:          domain.PayrollStatusCalculated,
	}

	s.resolveNames(ctx, employeeID, &result)

	comp, err := s.compRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return errorResult(result)
	}

	attendance, err := s.attRepo.SummaryForPeriod(ctx, employeeID, period)
	if err != nil {
		return errorResult(result)
	}
	result.DaysPresent = attendance.DaysPresent
	result.DaysAbsent = attendance.DaysAbsent

	unpaidDays, err := s.leaveRepo.UnpaidLeaveDays(ctx, employeeID, period)
	if err != nil {
		return errorResult(result)
	}
	result.UnpaidLeaveDays = unpaidDays

	// Без активного вознаграждения строка остаётся с нулями,
	// но из прогона не выпадает
	var componentDeductions []domain.PayItem
	if comp != nil {
		for _, c := range comp.Components {
			item := domain.PayItem{Label: c.Name, Amount: c.Amount.Round(2)}
			switch c.Kind {
			case domain.ComponentDeduction:
				componentDeductions = append(componentDeductions, item)
			default:
				result.GrossPay = result.GrossPay.Add(c.Amount)
				result.Earnings = append(result.Earnings, item)
				if c.IsBasicSalary && result.BasicSalary.IsZero() {
					result.BasicSalary = c.Amount
				}
			}
		}
	}

	workingDays := decimal.NewFromInt(int64(period.Days()))
	dailyRate := result.BasicSalary.Div(workingDays)

	// Порядок удержаний фиксирован: прогулы, неоплачиваемый отпуск,
	// налог, затем удерживаемые компоненты вознаграждения
	if result.DaysAbsent > 0 {
		amount := dailyRate.Mul(decimal.NewFromInt(int64(result.DaysAbsent)))
		result.TotalDeductions = result.TotalDeductions.Add(amount)
		result.Deductions = append(result.Deductions, domain.PayItem{
			Label:  "Absence",
			Amount: amount.Round(2),
		})
	}

	if result.UnpaidLeaveDays > 0 {
		amount := dailyRate.Mul(decimal.NewFromInt(int64(result.UnpaidLeaveDays)))
		result.TotalDeductions = result.TotalDeductions.Add(amount)
		result.Deductions = append(result.Deductions, domain.PayItem{
			Label:  "Unpaid Leave",
			Amount: amount.Round(2),
		})
	}

	tax := result.GrossPay.Mul(s.taxRate)
	result.TotalDeductions = result.TotalDeductions.Add(tax)
	result.Deductions = append(result.Deductions, domain.PayItem{
		Label:  "Tax",
		Amount: tax.Round(2),
	})

	for _, item := range componentDeductions {
		result.TotalDeductions = result.TotalDeductions.Add(item.Amount)
		result.Deductions = append(result.Deductions, item)
	}

	result.NetPay = result.GrossPay.Sub(result.TotalDeductions)
	return result
}

// resolveNames подставляет ФИО, подразделение и должность; пробелы
// остаются заглушками и не считаются ошибкой
func (s *payrollService) resolveNames(ctx context.Context, employeeID int64, result *domain.PayrollRunResult) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil || emp == nil {
		return
	}
	result.EmployeeName = emp.FullName

	if dept, err := s.deptRepo.GetByID(ctx, emp.DepartmentID); err == nil {
		result.DepartmentName = dept.Name
	}
	if pos, err := s.posRepo.GetByID(ctx, emp.PositionID); err == nil {
		result.PositionTitle = pos.Title
	}
}

func errorResult(result domain.PayrollRunResult) domain.PayrollRunResult {
	result.Status = domain.PayrollStatusError
	result.BasicSalary = decimal.Zero
	result.GrossPay = decimal.Zero
	result.TotalDeductions = decimal.Zero
	result.NetPay = decimal.Zero
	result.Earnings = nil
	result.Deductions = nil
	return result
}

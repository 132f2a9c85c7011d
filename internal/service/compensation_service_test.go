package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/service"
)

func boolPtr(v bool) *bool {
	return &v
}

type compensationFixture struct {
	svc      service.CompensationService
	compRepo *mockCompensationRepo
	empRepo  *mockEmployeeRepo
}

func setupCompensationService(t *testing.T) (*compensationFixture, int64) {
	t.Helper()

	f := &compensationFixture{
		compRepo: newMockCompensationRepo(),
		empRepo:  newMockEmployeeRepo(),
	}
	f.svc = service.NewCompensationService(f.compRepo, f.empRepo)

	emp := &domain.Employee{FullName: "John Smith", DepartmentID: 1, PositionID: 1}
	if err := f.empRepo.Create(context.Background(), emp); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return f, emp.ID
}

func validCompensationRequest() *dto.SaveCompensationRequest {
	return &dto.SaveCompensationRequest{
		FromDate:    "2025-01-01",
		IsActive:    true,
		TotalAmount: decimal.RequireFromString("3500"),
		Components: []dto.ComponentRequest{
			{
				Name:          "Basic Salary",
				Kind:          domain.ComponentEarning,
				IsBasicSalary: true,
				Amount:        decimal.RequireFromString("3000"),
			},
			{
				Name:   "Transport Allowance",
				Kind:   domain.ComponentEarning,
				Amount: decimal.RequireFromString("500"),
			},
		},
	}
}

func TestCompensationSave(t *testing.T) {
	f, empID := setupCompensationService(t)

	comp, err := f.svc.Save(context.Background(), empID, 0, validCompensationRequest(), 5)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if comp.ID == 0 {
		t.Error("expected assigned id")
	}
	if !comp.IsActive {
		t.Error("expected active compensation")
	}
	if comp.CreatedBy != 5 {
		t.Errorf("expected created_by 5, got %d", comp.CreatedBy)
	}
	if len(comp.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(comp.Components))
	}
	// is_taxable по умолчанию истинно
	if !comp.Components[0].IsTaxable {
		t.Error("expected is_taxable to default to true")
	}
}

func TestCompensationSaveTotalMismatch(t *testing.T) {
	f, empID := setupCompensationService(t)

	req := validCompensationRequest()
	req.TotalAmount = decimal.RequireFromString("9999")

	_, err := f.svc.Save(context.Background(), empID, 0, req, 1)
	if !errors.Is(err, domain.ErrTotalMismatch) {
		t.Errorf("expected ErrTotalMismatch, got %v", err)
	}
}

func TestCompensationSaveNegativeAmount(t *testing.T) {
	f, empID := setupCompensationService(t)

	req := validCompensationRequest()
	req.Components[1].Amount = decimal.RequireFromString("-500")

	_, err := f.svc.Save(context.Background(), empID, 0, req, 1)
	if !errors.Is(err, domain.ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestCompensationSaveNoComponents(t *testing.T) {
	f, empID := setupCompensationService(t)

	req := validCompensationRequest()
	req.Components = nil

	_, err := f.svc.Save(context.Background(), empID, 0, req, 1)
	if !errors.Is(err, domain.ErrNoComponents) {
		t.Errorf("expected ErrNoComponents, got %v", err)
	}
}

func TestCompensationSaveInvalidDateRange(t *testing.T) {
	f, empID := setupCompensationService(t)

	req := validCompensationRequest()
	req.FromDate = "2025-06-01"
	thru := "2025-01-31"
	req.ThruDate = &thru

	_, err := f.svc.Save(context.Background(), empID, 0, req, 1)
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCompensationSaveEmployeeNotFound(t *testing.T) {
	f, _ := setupCompensationService(t)

	_, err := f.svc.Save(context.Background(), 999, 0, validCompensationRequest(), 1)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCompensationSaveExplicitTaxableFlag(t *testing.T) {
	f, empID := setupCompensationService(t)

	req := validCompensationRequest()
	req.Components[1].IsTaxable = boolPtr(false)

	comp, err := f.svc.Save(context.Background(), empID, 0, req, 1)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if comp.Components[1].IsTaxable {
		t.Error("expected is_taxable false when explicitly set")
	}
}

func TestCompensationUpdateDeactivatesPredecessor(t *testing.T) {
	f, empID := setupCompensationService(t)
	ctx := context.Background()

	first, err := f.svc.Save(ctx, empID, 0, validCompensationRequest(), 1)
	if err != nil {
		t.Fatalf("save first: %v", err)
	}

	second, err := f.svc.Save(ctx, empID, 0, validCompensationRequest(), 1)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	active, err := f.compRepo.GetActiveByEmployee(ctx, empID)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("expected active %d, got %d", second.ID, active.ID)
	}

	stored, err := f.compRepo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if stored.IsActive {
		t.Error("expected first compensation to be deactivated")
	}
}

func TestCompensationUpdateForeignEmployee(t *testing.T) {
	f, empID := setupCompensationService(t)
	ctx := context.Background()

	comp, err := f.svc.Save(ctx, empID, 0, validCompensationRequest(), 1)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	other := &domain.Employee{FullName: "Jane Doe", DepartmentID: 1, PositionID: 1}
	if err := f.empRepo.Create(ctx, other); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	// Обновление чужого вознаграждения не проходит
	_, err = f.svc.Save(ctx, other.ID, comp.ID, validCompensationRequest(), 1)
	if !errors.Is(err, domain.ErrCompensationNotFound) {
		t.Errorf("expected ErrCompensationNotFound, got %v", err)
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/service"
)

type leaveFixture struct {
	svc      service.LeaveService
	typeRepo *mockLeaveTypeRepo
	reqRepo  *mockLeaveRequestRepo
	empRepo  *mockEmployeeRepo
}

func setupLeaveService(t *testing.T) (*leaveFixture, int64, int64) {
	t.Helper()

	f := &leaveFixture{
		typeRepo: newMockLeaveTypeRepo(),
		reqRepo:  newMockLeaveRequestRepo(),
		empRepo:  newMockEmployeeRepo(),
	}
	f.svc = service.NewLeaveService(f.typeRepo, f.reqRepo, f.empRepo)

	ctx := context.Background()
	emp := &domain.Employee{FullName: "John Smith", DepartmentID: 1, PositionID: 1}
	if err := f.empRepo.Create(ctx, emp); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	lt, err := f.svc.CreateType(ctx, &dto.CreateLeaveTypeRequest{Name: "Unpaid Leave", IsPaid: boolPtr(false)})
	if err != nil {
		t.Fatalf("create leave type: %v", err)
	}
	return f, emp.ID, lt.ID
}

func leaveRequestFor(empID, typeID int64) *dto.CreateLeaveRequestRequest {
	return &dto.CreateLeaveRequestRequest{
		EmployeeID:  empID,
		LeaveTypeID: typeID,
		FromDate:    "2025-09-10",
		ThruDate:    "2025-09-12",
		Reason:      "family matters",
	}
}

func TestLeaveTypeDuplicateName(t *testing.T) {
	f, _, _ := setupLeaveService(t)

	_, err := f.svc.CreateType(context.Background(), &dto.CreateLeaveTypeRequest{Name: "Unpaid Leave", IsPaid: boolPtr(false)})
	if !errors.Is(err, domain.ErrDuplicateLeaveTypeName) {
		t.Errorf("expected ErrDuplicateLeaveTypeName, got %v", err)
	}
}

func TestLeaveRequestCreate(t *testing.T) {
	f, empID, typeID := setupLeaveService(t)

	lr, err := f.svc.CreateRequest(context.Background(), leaveRequestFor(empID, typeID), 3)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if lr.Status != domain.LeaveStatusPending {
		t.Errorf("expected pending status, got %q", lr.Status)
	}
	if lr.CreatedBy != 3 {
		t.Errorf("expected created_by 3, got %d", lr.CreatedBy)
	}
	if lr.ReviewedBy != nil {
		t.Error("expected reviewed_by to be empty on creation")
	}
}

func TestLeaveRequestInvalidDateRange(t *testing.T) {
	f, empID, typeID := setupLeaveService(t)

	req := leaveRequestFor(empID, typeID)
	req.FromDate = "2025-09-12"
	req.ThruDate = "2025-09-10"

	_, err := f.svc.CreateRequest(context.Background(), req, 1)
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestLeaveRequestUnknownReferences(t *testing.T) {
	f, empID, typeID := setupLeaveService(t)
	ctx := context.Background()

	_, err := f.svc.CreateRequest(ctx, leaveRequestFor(999, typeID), 1)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}

	_, err = f.svc.CreateRequest(ctx, leaveRequestFor(empID, 999), 1)
	if !errors.Is(err, domain.ErrLeaveTypeNotFound) {
		t.Errorf("expected ErrLeaveTypeNotFound, got %v", err)
	}
}

func TestLeaveRequestApprove(t *testing.T) {
	f, empID, typeID := setupLeaveService(t)
	ctx := context.Background()

	lr, err := f.svc.CreateRequest(ctx, leaveRequestFor(empID, typeID), 1)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	approved, err := f.svc.Approve(ctx, lr.ID, 9)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.LeaveStatusApproved {
		t.Errorf("expected approved status, got %q", approved.Status)
	}
	if approved.ReviewedBy == nil || *approved.ReviewedBy != 9 {
		t.Errorf("expected reviewed_by 9, got %v", approved.ReviewedBy)
	}
	if approved.ReviewedAt == nil {
		t.Error("expected reviewed_at to be set")
	}
}

func TestLeaveRequestRejectAfterApprove(t *testing.T) {
	f, empID, typeID := setupLeaveService(t)
	ctx := context.Background()

	lr, err := f.svc.CreateRequest(ctx, leaveRequestFor(empID, typeID), 1)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	if _, err := f.svc.Approve(ctx, lr.ID, 9); err != nil {
		t.Fatalf("approve: %v", err)
	}

	_, err = f.svc.Reject(ctx, lr.ID, 9)
	if !errors.Is(err, domain.ErrLeaveAlreadyReviewed) {
		t.Errorf("expected ErrLeaveAlreadyReviewed, got %v", err)
	}

	// Повторное одобрение также отклоняется
	_, err = f.svc.Approve(ctx, lr.ID, 9)
	if !errors.Is(err, domain.ErrLeaveAlreadyReviewed) {
		t.Errorf("expected ErrLeaveAlreadyReviewed, got %v", err)
	}
}

func TestLeaveRequestReject(t *testing.T) {
	f, empID, typeID := setupLeaveService(t)
	ctx := context.Background()

	lr, err := f.svc.CreateRequest(ctx, leaveRequestFor(empID, typeID), 1)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	rejected, err := f.svc.Reject(ctx, lr.ID, 9)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.LeaveStatusRejected {
		t.Errorf("expected rejected status, got %q", rejected.Status)
	}
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// LeaveService определяет интерфейс бизнес-логики для видов отпусков
// и заявок на отпуск
type LeaveService interface {
	CreateType(ctx context.Context, req *dto.CreateLeaveTypeRequest) (*domain.LeaveType, error)
	GetTypes(ctx context.Context) ([]domain.LeaveType, error)
	DeleteType(ctx context.Context, id int64) error

	CreateRequest(ctx context.Context, req *dto.CreateLeaveRequestRequest, actorID int64) (*domain.LeaveRequest, error)
	GetRequest(ctx context.Context, id int64) (*domain.LeaveRequest, error)
	GetRequestsByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error)
	// Approve и Reject переводят заявку из pending в конечный статус;
	// повторный перевод отклоняется
	Approve(ctx context.Context, id int64, actorID int64) (*domain.LeaveRequest, error)
	Reject(ctx context.Context, id int64, actorID int64) (*domain.LeaveRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

type leaveService struct {
	typeRepo repository.LeaveTypeRepository
	reqRepo  repository.LeaveRequestRepository
	empRepo  repository.EmployeeRepository
}

// NewLeaveService создаёт новый экземпляр сервиса
func NewLeaveService(
	typeRepo repository.LeaveTypeRepository,
	reqRepo repository.LeaveRequestRepository,
	empRepo repository.EmployeeRepository,
) LeaveService {
	return &leaveService{
		typeRepo: typeRepo,
		reqRepo:  reqRepo,
		empRepo:  empRepo,
	}
}

func (s *leaveService) CreateType(ctx context.Context, req *dto.CreateLeaveTypeRequest) (*domain.LeaveType, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.typeRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateLeaveTypeName
	}

	lt := &domain.LeaveType{
		Name:   name,
		IsPaid: *req.IsPaid,
	}
	if err := s.typeRepo.Create(ctx, lt); err != nil {
		return nil, err
	}
	return lt, nil
}

func (s *leaveService) GetTypes(ctx context.Context) ([]domain.LeaveType, error) {
	return s.typeRepo.GetAll(ctx)
}

func (s *leaveService) DeleteType(ctx context.Context, id int64) error {
	return s.typeRepo.Delete(ctx, id)
}

func (s *leaveService) CreateRequest(ctx context.Context, req *dto.CreateLeaveRequestRequest, actorID int64) (*domain.LeaveRequest, error) {
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	if _, err := s.typeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return nil, err
	}

	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, err
	}
	thruDate, err := time.Parse("2006-01-02", req.ThruDate)
	if err != nil {
		return nil, err
	}
	if thruDate.Before(fromDate) {
		return nil, domain.ErrInvalidDateRange
	}

	lr := &domain.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		FromDate:    fromDate,
		ThruDate:    thruDate,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      domain.LeaveStatusPending,
		CreatedBy:   actorID,
	}
	if err := s.reqRepo.Create(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *leaveService) GetRequest(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	return s.reqRepo.GetByID(ctx, id)
}

func (s *leaveService) GetRequestsByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.reqRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *leaveService) Approve(ctx context.Context, id int64, actorID int64) (*domain.LeaveRequest, error) {
	return s.review(ctx, id, actorID, domain.LeaveStatusApproved)
}

func (s *leaveService) Reject(ctx context.Context, id int64, actorID int64) (*domain.LeaveRequest, error) {
	return s.review(ctx, id, actorID, domain.LeaveStatusRejected)
}

func (s *leaveService) review(ctx context.Context, id int64, actorID int64, status string) (*domain.LeaveRequest, error) {
	lr, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lr.Status != domain.LeaveStatusPending {
		return nil, domain.ErrLeaveAlreadyReviewed
	}

	now := time.Now()
	lr.Status = status
	lr.ReviewedBy = &actorID
	lr.ReviewedAt = &now

	if err := s.reqRepo.Update(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *leaveService) DeleteRequest(ctx context.Context, id int64) error {
	return s.reqRepo.Delete(ctx, id)
}

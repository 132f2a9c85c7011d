package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest, actorID int64) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	posRepo  repository.PositionRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	posRepo repository.PositionRepository,
) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
		posRepo:  posRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest, actorID int64) (*domain.Employee, error) {
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if _, err := s.posRepo.GetByID(ctx, req.PositionID); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		FullName:     strings.TrimSpace(req.FullName),
		CreatedBy:    actorID,
	}

	if req.HiredAt != nil {
		hiredAt, err := time.Parse("2006-01-02", *req.HiredAt)
		if err != nil {
			return nil, err
		}
		emp.HiredAt = &hiredAt
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.empRepo.GetByDepartmentID(ctx, departmentID)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}

	// Перевод в другое подразделение
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		emp.DepartmentID = *req.DepartmentID
	}

	if req.PositionID != nil {
		if _, err := s.posRepo.GetByID(ctx, *req.PositionID); err != nil {
			return nil, err
		}
		emp.PositionID = *req.PositionID
	}

	if req.HiredAt != nil {
		hiredAt, err := time.Parse("2006-01-02", *req.HiredAt)
		if err != nil {
			return nil, err
		}
		emp.HiredAt = &hiredAt
	}

	if req.TerminatedAt != nil {
		terminatedAt, err := time.Parse("2006-01-02", *req.TerminatedAt)
		if err != nil {
			return nil, err
		}
		if emp.HiredAt != nil && terminatedAt.Before(*emp.HiredAt) {
			return nil, domain.ErrInvalidDateRange
		}
		emp.TerminatedAt = &terminatedAt
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"strings"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// PayrollSetService определяет интерфейс бизнес-логики для расчётных групп
type PayrollSetService interface {
	Create(ctx context.Context, req *dto.CreatePayrollSetRequest, actorID int64) (*domain.PayrollSet, error)
	GetByID(ctx context.Context, id int64) (*domain.PayrollSet, error)
	GetAll(ctx context.Context) ([]domain.PayrollSet, error)
	// ReplaceMembers полностью замещает состав группы
	ReplaceMembers(ctx context.Context, id int64, employeeIDs []int64) (*domain.PayrollSet, error)
	Delete(ctx context.Context, id int64) error
}

type payrollSetService struct {
	setRepo repository.PayrollSetRepository
	empRepo repository.EmployeeRepository
}

// NewPayrollSetService создаёт новый экземпляр сервиса
func NewPayrollSetService(setRepo repository.PayrollSetRepository, empRepo repository.EmployeeRepository) PayrollSetService {
	return &payrollSetService{setRepo: setRepo, empRepo: empRepo}
}

func (s *payrollSetService) Create(ctx context.Context, req *dto.CreatePayrollSetRequest, actorID int64) (*domain.PayrollSet, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.setRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicatePayrollSetName
	}

	for _, empID := range req.EmployeeIDs {
		if _, err := s.empRepo.GetByID(ctx, empID); err != nil {
			return nil, err
		}
	}

	set := &domain.PayrollSet{
		Name:      name,
		CreatedBy: actorID,
	}
	if err := s.setRepo.Create(ctx, set); err != nil {
		return nil, err
	}

	if len(req.EmployeeIDs) > 0 {
		if err := s.setRepo.ReplaceMembers(ctx, set.ID, req.EmployeeIDs); err != nil {
			return nil, err
		}
	}

	return s.setRepo.GetByID(ctx, set.ID)
}

func (s *payrollSetService) GetByID(ctx context.Context, id int64) (*domain.PayrollSet, error) {
	return s.setRepo.GetByID(ctx, id)
}

func (s *payrollSetService) GetAll(ctx context.Context) ([]domain.PayrollSet, error) {
	return s.setRepo.GetAll(ctx)
}

func (s *payrollSetService) ReplaceMembers(ctx context.Context, id int64, employeeIDs []int64) (*domain.PayrollSet, error) {
	if _, err := s.setRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	for _, empID := range employeeIDs {
		if _, err := s.empRepo.GetByID(ctx, empID); err != nil {
			return nil, err
		}
	}

	if err := s.setRepo.ReplaceMembers(ctx, id, employeeIDs); err != nil {
		return nil, err
	}
	return s.setRepo.GetByID(ctx, id)
}

func (s *payrollSetService) Delete(ctx context.Context, id int64) error {
	return s.setRepo.Delete(ctx, id)
}

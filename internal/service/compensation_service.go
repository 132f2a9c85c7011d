package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// CompensationService определяет интерфейс бизнес-логики для вознаграждений
type CompensationService interface {
	// Save создаёт (id == 0) или обновляет вознаграждение; набор
	// компонентов замещается целиком, total сверяется с их суммой
	Save(ctx context.Context, employeeID, id int64, req *dto.SaveCompensationRequest, actorID int64) (*domain.Compensation, error)
	GetByID(ctx context.Context, id int64) (*domain.Compensation, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Compensation, error)
	Delete(ctx context.Context, id int64) error
}

type compensationService struct {
	compRepo repository.CompensationRepository
	empRepo  repository.EmployeeRepository
}

// NewCompensationService создаёт новый экземпляр сервиса
func NewCompensationService(compRepo repository.CompensationRepository, empRepo repository.EmployeeRepository) CompensationService {
	return &compensationService{compRepo: compRepo, empRepo: empRepo}
}

func (s *compensationService) Save(ctx context.Context, employeeID, id int64, req *dto.SaveCompensationRequest, actorID int64) (*domain.Compensation, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, err
	}

	var thruDate *time.Time
	if req.ThruDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ThruDate)
		if err != nil {
			return nil, err
		}
		if parsed.Before(fromDate) {
			return nil, domain.ErrInvalidDateRange
		}
		thruDate = &parsed
	}

	if len(req.Components) == 0 {
		return nil, domain.ErrNoComponents
	}

	components := make([]domain.CompensationComponent, len(req.Components))
	sum := decimal.Zero
	for i, c := range req.Components {
		if c.Amount.IsNegative() {
			return nil, domain.ErrNegativeAmount
		}
		taxable := true
		if c.IsTaxable != nil {
			taxable = *c.IsTaxable
		}
		components[i] = domain.CompensationComponent{
			Name:          strings.TrimSpace(c.Name),
			Kind:          c.Kind,
			IsBasicSalary: c.IsBasicSalary,
			IsTaxable:     taxable,
			Amount:        c.Amount,
		}
		sum = sum.Add(c.Amount)
	}

	// Итог обязан сходиться с суммой компонентов на момент сохранения
	if !req.TotalAmount.Equal(sum) {
		return nil, domain.ErrTotalMismatch
	}

	comp := &domain.Compensation{
		ID:          id,
		EmployeeID:  employeeID,
		FromDate:    fromDate,
		ThruDate:    thruDate,
		IsActive:    req.IsActive,
		TotalAmount: req.TotalAmount,
		CreatedBy:   actorID,
		Components:  components,
	}

	if id != 0 {
		existing, err := s.compRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.EmployeeID != employeeID {
			return nil, domain.ErrCompensationNotFound
		}
	}

	if err := s.compRepo.Save(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *compensationService) GetByID(ctx context.Context, id int64) (*domain.Compensation, error) {
	return s.compRepo.GetByID(ctx, id)
}

func (s *compensationService) GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Compensation, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.compRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *compensationService) Delete(ctx context.Context, id int64) error {
	return s.compRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"strings"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// PositionService определяет интерфейс бизнес-логики для должностей
type PositionService interface {
	Create(ctx context.Context, req *dto.CreatePositionRequest) (*domain.Position, error)
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	GetAll(ctx context.Context) ([]domain.Position, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePositionRequest) (*domain.Position, error)
	Delete(ctx context.Context, id int64) error
}

type positionService struct {
	posRepo repository.PositionRepository
	empRepo repository.EmployeeRepository
}

// NewPositionService создаёт новый экземпляр сервиса
func NewPositionService(posRepo repository.PositionRepository, empRepo repository.EmployeeRepository) PositionService {
	return &positionService{posRepo: posRepo, empRepo: empRepo}
}

func (s *positionService) Create(ctx context.Context, req *dto.CreatePositionRequest) (*domain.Position, error) {
	title := strings.TrimSpace(req.Title)

	exists, err := s.posRepo.ExistsByTitle(ctx, title, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicatePositionTitle
	}

	pos := &domain.Position{Title: title}
	if err := s.posRepo.Create(ctx, pos); err != nil {
		return nil, err
	}
	return pos, nil
}

func (s *positionService) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	return s.posRepo.GetByID(ctx, id)
}

func (s *positionService) Update(ctx context.Context, id int64, req *dto.UpdatePositionRequest) (*domain.Position, error) {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == pos.Title {
		return pos, nil
	}

	exists, err := s.posRepo.ExistsByTitle(ctx, title, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicatePositionTitle
	}

	pos.Title = title
	if err := s.posRepo.Update(ctx, pos); err != nil {
		return nil, err
	}
	return pos, nil
}

func (s *positionService) GetAll(ctx context.Context) ([]domain.Position, error) {
	return s.posRepo.GetAll(ctx)
}

// Delete удаляет должность, если она не назначена ни одному сотруднику
func (s *positionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.posRepo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.empRepo.CountByPositionID(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return domain.ErrPositionInUse
	}

	return s.posRepo.Delete(ctx, id)
}

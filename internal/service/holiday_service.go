package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// HolidayService определяет интерфейс бизнес-логики для праздничных дней
type HolidayService interface {
	Create(ctx context.Context, req *dto.CreateHolidayRequest, actorID int64) (*domain.Holiday, error)
	GetAll(ctx context.Context) ([]domain.Holiday, error)
	Delete(ctx context.Context, id int64) error
}

type holidayService struct {
	holidayRepo repository.HolidayRepository
}

// NewHolidayService создаёт новый экземпляр сервиса
func NewHolidayService(holidayRepo repository.HolidayRepository) HolidayService {
	return &holidayService{holidayRepo: holidayRepo}
}

func (s *holidayService) Create(ctx context.Context, req *dto.CreateHolidayRequest, actorID int64) (*domain.Holiday, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	exists, err := s.holidayRepo.ExistsByDate(ctx, date, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateHolidayDate
	}

	holiday := &domain.Holiday{
		Name:      strings.TrimSpace(req.Name),
		Date:      date,
		CreatedBy: actorID,
	}
	if err := s.holidayRepo.Create(ctx, holiday); err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *holidayService) GetAll(ctx context.Context) ([]domain.Holiday, error) {
	return s.holidayRepo.GetAll(ctx)
}

func (s *holidayService) Delete(ctx context.Context, id int64) error {
	return s.holidayRepo.Delete(ctx, id)
}

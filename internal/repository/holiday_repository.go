package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// HolidayRepository определяет интерфейс для работы с праздничными днями
type HolidayRepository interface {
	Create(ctx context.Context, holiday *domain.Holiday) error
	GetByID(ctx context.Context, id int64) (*domain.Holiday, error)
	GetAll(ctx context.Context) ([]domain.Holiday, error)
	ExistsByDate(ctx context.Context, date time.Time, excludeID *int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type holidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository создаёт новый экземпляр репозитория
func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, holiday *domain.Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *holidayRepository) GetByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	var holiday domain.Holiday
	err := r.db.WithContext(ctx).First(&holiday, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHolidayNotFound
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *holidayRepository) GetAll(ctx context.Context) ([]domain.Holiday, error) {
	var holidays []domain.Holiday
	err := r.db.WithContext(ctx).Order("date ASC").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) ExistsByDate(ctx context.Context, date time.Time, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Holiday{}).Where("date = ?", date)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *holidayRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Holiday{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrHolidayNotFound
	}
	return nil
}

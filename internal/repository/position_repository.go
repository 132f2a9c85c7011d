package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// PositionRepository определяет интерфейс для работы с должностями
type PositionRepository interface {
	Create(ctx context.Context, pos *domain.Position) error
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	GetAll(ctx context.Context) ([]domain.Position, error)
	ExistsByTitle(ctx context.Context, title string, excludeID *int64) (bool, error)
	Update(ctx context.Context, pos *domain.Position) error
	Delete(ctx context.Context, id int64) error
}

type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository создаёт новый экземпляр репозитория
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, pos *domain.Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *positionRepository) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	var pos domain.Position
	err := r.db.WithContext(ctx).First(&pos, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, err
	}
	return &pos, nil
}

func (r *positionRepository) GetAll(ctx context.Context) ([]domain.Position, error) {
	var positions []domain.Position
	err := r.db.WithContext(ctx).Order("title ASC").Find(&positions).Error
	return positions, err
}

func (r *positionRepository) ExistsByTitle(ctx context.Context, title string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Position{}).Where("title = ?", title)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *positionRepository) Update(ctx context.Context, pos *domain.Position) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

func (r *positionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Position{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPositionNotFound
	}
	return nil
}

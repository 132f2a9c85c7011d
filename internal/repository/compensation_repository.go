package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// CompensationRepository определяет интерфейс для работы с вознаграждениями
type CompensationRepository interface {
	// Save атомарно создаёт или обновляет вознаграждение вместе с
	// компонентами: прежний набор компонентов полностью замещается.
	Save(ctx context.Context, comp *domain.Compensation) error
	GetByID(ctx context.Context, id int64) (*domain.Compensation, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Compensation, error)
	// GetActiveByEmployee возвращает (nil, nil), если активного
	// вознаграждения у сотрудника нет.
	GetActiveByEmployee(ctx context.Context, employeeID int64) (*domain.Compensation, error)
	Delete(ctx context.Context, id int64) error
}

type compensationRepository struct {
	db *gorm.DB
}

// NewCompensationRepository создаёт новый экземпляр репозитория
func NewCompensationRepository(db *gorm.DB) CompensationRepository {
	return &compensationRepository{db: db}
}

func (r *compensationRepository) Save(ctx context.Context, comp *domain.Compensation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Не более одного активного вознаграждения на сотрудника
		if comp.IsActive {
			if err := tx.Model(&domain.Compensation{}).
				Where("employee_id = ? AND id != ?", comp.EmployeeID, comp.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		components := comp.Components
		comp.Components = nil

		if comp.ID == 0 {
			if err := tx.Create(comp).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&domain.Compensation{}).
				Where("id = ?", comp.ID).
				Updates(map[string]any{
					"from_date":    comp.FromDate,
					"thru_date":    comp.ThruDate,
					"is_active":    comp.IsActive,
					"total_amount": comp.TotalAmount,
				}).Error; err != nil {
				return err
			}
			if err := tx.Where("compensation_id = ?", comp.ID).
				Delete(&domain.CompensationComponent{}).Error; err != nil {
				return err
			}
		}

		for i := range components {
			components[i].ID = 0
			components[i].CompensationID = comp.ID
			components[i].Ordinal = i
		}
		if err := tx.Create(&components).Error; err != nil {
			return err
		}

		comp.Components = components
		return nil
	})
}

func (r *compensationRepository) GetByID(ctx context.Context, id int64) (*domain.Compensation, error) {
	var comp domain.Compensation
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		First(&comp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompensationNotFound
		}
		return nil, err
	}
	return &comp, nil
}

func (r *compensationRepository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Compensation, error) {
	var comps []domain.Compensation
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		Where("employee_id = ?", employeeID).
		Order("from_date DESC").
		Find(&comps).Error
	return comps, err
}

func (r *compensationRepository) GetActiveByEmployee(ctx context.Context, employeeID int64) (*domain.Compensation, error) {
	var comp domain.Compensation
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		First(&comp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comp, nil
}

func (r *compensationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("compensation_id = ?", id).
			Delete(&domain.CompensationComponent{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Compensation{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCompensationNotFound
		}
		return nil
	})
}

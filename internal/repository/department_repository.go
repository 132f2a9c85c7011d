package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetAll(ctx context.Context) ([]domain.Department, error)
	Count(ctx context.Context) (int64, error)
	CountChildren(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	ExistsByNameAndParent(ctx context.Context, name string, parentID *int64, excludeID *int64) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	dept.Version = 1
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Count(&count).Error
	return count, err
}

func (r *departmentRepository) CountChildren(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	return count, err
}

// Update сохраняет подразделение, сверяя version на момент записи.
// Проверки сервиса (цикл, уникальность) выполняются до записи и могут
// устареть под конкурентной нагрузкой; несовпадение версии - признак
// того, что состояние изменилось после проверки.
func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	currentVersion := dept.Version
	result := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ? AND version = ?", dept.ID, currentVersion).
		Updates(map[string]any{
			"name":      dept.Name,
			"parent_id": dept.ParentID,
			"version":   currentVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}
	dept.Version = currentVersion + 1
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepository) ExistsByNameAndParent(ctx context.Context, name string, parentID *int64, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Department{}).Where("name = ?", name)

	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

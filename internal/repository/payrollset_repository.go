package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// PayrollSetRepository определяет интерфейс для работы с расчётными группами
type PayrollSetRepository interface {
	Create(ctx context.Context, set *domain.PayrollSet) error
	GetByID(ctx context.Context, id int64) (*domain.PayrollSet, error)
	GetAll(ctx context.Context) ([]domain.PayrollSet, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	// ReplaceMembers полностью замещает состав группы
	ReplaceMembers(ctx context.Context, setID int64, employeeIDs []int64) error
	// MemberIDs возвращает идентификаторы сотрудников группы
	MemberIDs(ctx context.Context, setID int64) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type payrollSetRepository struct {
	db *gorm.DB
}

// NewPayrollSetRepository создаёт новый экземпляр репозитория
func NewPayrollSetRepository(db *gorm.DB) PayrollSetRepository {
	return &payrollSetRepository{db: db}
}

func (r *payrollSetRepository) Create(ctx context.Context, set *domain.PayrollSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *payrollSetRepository) GetByID(ctx context.Context, id int64) (*domain.PayrollSet, error) {
	var set domain.PayrollSet
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&set, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPayrollSetNotFound
		}
		return nil, err
	}
	return &set, nil
}

func (r *payrollSetRepository) GetAll(ctx context.Context) ([]domain.PayrollSet, error) {
	var sets []domain.PayrollSet
	err := r.db.WithContext(ctx).Preload("Members").Order("name ASC").Find(&sets).Error
	return sets, err
}

func (r *payrollSetRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.PayrollSet{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *payrollSetRepository) ReplaceMembers(ctx context.Context, setID int64, employeeIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payroll_set_id = ?", setID).
			Delete(&domain.PayrollSetMember{}).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return nil
		}
		members := make([]domain.PayrollSetMember, len(employeeIDs))
		for i, empID := range employeeIDs {
			members[i] = domain.PayrollSetMember{PayrollSetID: setID, EmployeeID: empID}
		}
		return tx.Create(&members).Error
	})
}

func (r *payrollSetRepository) MemberIDs(ctx context.Context, setID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.PayrollSetMember{}).
		Where("payroll_set_id = ?", setID).
		Order("employee_id ASC").
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *payrollSetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payroll_set_id = ?", id).
			Delete(&domain.PayrollSetMember{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.PayrollSet{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrPayrollSetNotFound
		}
		return nil
	})
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// LeaveTypeRepository определяет интерфейс для работы с видами отпусков
type LeaveTypeRepository interface {
	Create(ctx context.Context, lt *domain.LeaveType) error
	GetByID(ctx context.Context, id int64) (*domain.LeaveType, error)
	GetAll(ctx context.Context) ([]domain.LeaveType, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type leaveTypeRepository struct {
	db *gorm.DB
}

// NewLeaveTypeRepository создаёт новый экземпляр репозитория
func NewLeaveTypeRepository(db *gorm.DB) LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

func (r *leaveTypeRepository) Create(ctx context.Context, lt *domain.LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id int64) (*domain.LeaveType, error) {
	var lt domain.LeaveType
	err := r.db.WithContext(ctx).First(&lt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	return &lt, nil
}

func (r *leaveTypeRepository) GetAll(ctx context.Context) ([]domain.LeaveType, error) {
	var types []domain.LeaveType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *leaveTypeRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.LeaveType{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *leaveTypeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.LeaveType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeaveTypeNotFound
	}
	return nil
}

// LeaveRequestRepository определяет интерфейс для работы с заявками на отпуск
type LeaveRequestRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) error
	GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error)
	Update(ctx context.Context, req *domain.LeaveRequest) error
	Delete(ctx context.Context, id int64) error
	UnpaidLeaveDays(ctx context.Context, employeeID int64, period domain.Period) (int, error)
}

type leaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository создаёт новый экземпляр репозитория
func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *domain.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	var req domain.LeaveRequest
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("from_date ASC").
		Find(&requests).Error
	return requests, err
}

func (r *leaveRequestRepository) Update(ctx context.Context, req *domain.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *leaveRequestRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.LeaveRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeaveRequestNotFound
	}
	return nil
}

// UnpaidLeaveDays считает дни одобренных заявок по неоплачиваемым видам
// отпусков, попадающие в период. Дни за пределами месяца обрезаются.
func (r *leaveRequestRepository) UnpaidLeaveDays(ctx context.Context, employeeID int64, period domain.Period) (int, error) {
	start, end := period.Start(), period.End()

	var requests []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Joins("JOIN leave_types ON leave_types.id = leave_requests.leave_type_id").
		Where("leave_requests.employee_id = ?", employeeID).
		Where("leave_requests.status = ?", domain.LeaveStatusApproved).
		Where("leave_types.is_paid = ?", false).
		Where("leave_requests.from_date <= ? AND leave_requests.thru_date >= ?", end, start).
		Find(&requests).Error
	if err != nil {
		return 0, err
	}

	days := 0
	for _, req := range requests {
		from := req.FromDate
		if from.Before(start) {
			from = start
		}
		thru := req.ThruDate
		if thru.After(end) {
			thru = end
		}
		days += int(thru.Sub(from).Hours()/24) + 1
	}
	return days, nil
}

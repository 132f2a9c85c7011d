package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hr-payroll-api/internal/domain"
)

// AttendanceRepository определяет интерфейс для работы с посещаемостью
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (bool, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period domain.Period) ([]domain.Attendance, error)
	SummaryForPeriod(ctx context.Context, employeeID int64, period domain.Period) (*domain.AttendanceSummary, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *attendanceRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period domain.Period) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, period.Start(), period.End()).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) SummaryForPeriod(ctx context.Context, employeeID int64, period domain.Period) (*domain.AttendanceSummary, error) {
	summary := &domain.AttendanceSummary{}

	base := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, period.Start(), period.End())

	var present, absent int64
	if err := base.Session(&gorm.Session{}).Where("status = ?", domain.AttendancePresent).Count(&present).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", domain.AttendanceAbsent).Count(&absent).Error; err != nil {
		return nil, err
	}

	summary.DaysPresent = int(present)
	summary.DaysAbsent = int(absent)
	return summary, nil
}

package service

import (
	"context"
	"time"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// AttendanceService определяет интерфейс бизнес-логики для посещаемости
type AttendanceService interface {
	Record(ctx context.Context, req *dto.RecordAttendanceRequest) (*domain.Attendance, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period domain.Period) ([]domain.Attendance, error)
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(attRepo repository.AttendanceRepository, empRepo repository.EmployeeRepository) AttendanceService {
	return &attendanceService{attRepo: attRepo, empRepo: empRepo}
}

func (s *attendanceService) Record(ctx context.Context, req *dto.RecordAttendanceRequest) (*domain.Attendance, error) {
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	exists, err := s.attRepo.ExistsByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateAttendance
	}

	att := &domain.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period domain.Period) ([]domain.Attendance, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.attRepo.GetByEmployeeAndPeriod(ctx, employeeID, period)
}

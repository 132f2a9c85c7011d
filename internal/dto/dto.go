package dto

import (
	"time"
)

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,min=1"`
}

// UpdateDepartmentRequest - запрос на обновление подразделения.
// Version - токен оптимистичной блокировки, полученный при чтении.
type UpdateDepartmentRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	ParentID *int64  `json:"parent_id" validate:"omitempty,min=1"`
	Version  *int64  `json:"version" validate:"omitempty,min=1"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	ParentID  *int64               `json:"parent_id"`
	Version   int64                `json:"version"`
	CreatedAt time.Time            `json:"created_at"`
	Children  []DepartmentResponse `json:"children,omitempty"`
}

// CreatePositionRequest - запрос на создание должности
type CreatePositionRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// UpdatePositionRequest - запрос на переименование должности
type UpdatePositionRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// PositionResponse - ответ с данными должности
type PositionResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name" validate:"required,min=1,max=200"`
	DepartmentID int64   `json:"department_id" validate:"required,min=1"`
	PositionID   int64   `json:"position_id" validate:"required,min=1"`
	HiredAt      *string `json:"hired_at" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest - запрос на обновление сотрудника
type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,min=1"`
	PositionID   *int64  `json:"position_id" validate:"omitempty,min=1"`
	HiredAt      *string `json:"hired_at" validate:"omitempty,datetime=2006-01-02"`
	TerminatedAt *string `json:"terminated_at" validate:"omitempty,datetime=2006-01-02"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           int64     `json:"id"`
	DepartmentID int64     `json:"department_id"`
	PositionID   int64     `json:"position_id"`
	FullName     string    `json:"full_name"`
	HiredAt      *string   `json:"hired_at,omitempty"`
	TerminatedAt *string   `json:"terminated_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateHolidayRequest - запрос на создание праздничного дня
type CreateHolidayRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// HolidayResponse - ответ с данными праздничного дня
type HolidayResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeaveTypeRequest - запрос на создание вида отпуска
type CreateLeaveTypeRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	IsPaid *bool  `json:"is_paid" validate:"required"`
}

// LeaveTypeResponse - ответ с данными вида отпуска
type LeaveTypeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeaveRequestRequest - запрос на создание заявки на отпуск
type CreateLeaveRequestRequest struct {
	EmployeeID  int64  `json:"employee_id" validate:"required,min=1"`
	LeaveTypeID int64  `json:"leave_type_id" validate:"required,min=1"`
	FromDate    string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ThruDate    string `json:"thru_date" validate:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" validate:"max=500"`
}

// LeaveRequestResponse - ответ с данными заявки на отпуск
type LeaveRequestResponse struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	LeaveTypeID int64     `json:"leave_type_id"`
	FromDate    string    `json:"from_date"`
	ThruDate    string    `json:"thru_date"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
	ReviewedBy  *int64    `json:"reviewed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordAttendanceRequest - запрос на отметку посещаемости
type RecordAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,min=1"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=present absent"`
}

// AttendanceResponse - ответ с отметкой посещаемости
type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

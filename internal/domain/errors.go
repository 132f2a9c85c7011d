package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrPositionNotFound     = errors.New("position not found")
	ErrHolidayNotFound      = errors.New("holiday not found")
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrCompensationNotFound = errors.New("compensation not found")
	ErrPayrollSetNotFound   = errors.New("payroll set not found")

	ErrDuplicateDepartmentName = errors.New("department with this name already exists in the same parent")
	ErrDuplicatePositionTitle  = errors.New("position with this title already exists")
	ErrDuplicateHolidayDate    = errors.New("holiday on this date already exists")
	ErrDuplicateLeaveTypeName  = errors.New("leave type with this name already exists")
	ErrDuplicatePayrollSetName = errors.New("payroll set with this name already exists")
	ErrDuplicateAttendance     = errors.New("attendance for this employee and date already recorded")

	ErrSelfParent           = errors.New("department cannot be its own parent")
	ErrCycleDetected        = errors.New("moving department would create a cycle")
	ErrHasChildren          = errors.New("department has sub-departments and cannot be deleted")
	ErrHasAssignedEmployees = errors.New("department has assigned employees and cannot be deleted")
	ErrVersionConflict      = errors.New("department was modified concurrently, retry with fresh data")

	ErrPositionInUse        = errors.New("position is assigned to employees and cannot be deleted")
	ErrInvalidDateRange     = errors.New("thru date must not precede from date")
	ErrLeaveAlreadyReviewed = errors.New("leave request has already been reviewed")

	ErrNegativeAmount = errors.New("component amount must not be negative")
	ErrNoComponents   = errors.New("compensation must have at least one component")
	ErrTotalMismatch  = errors.New("total amount must equal the sum of component amounts")

	ErrInvalidPeriod = errors.New("payroll period is invalid")
)

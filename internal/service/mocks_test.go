package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/hr-payroll-api/internal/domain"
)

var errStore = errors.New("store unavailable")

type mockDepartmentRepo struct {
	departments map[int64]*domain.Department
	nextID      int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{
		departments: make(map[int64]*domain.Department),
		nextID:      1,
	}
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	dept.ID = m.nextID
	dept.Version = 1
	dept.CreatedAt = time.Now()
	m.nextID++
	copied := *dept
	m.departments[dept.ID] = &copied
	return nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	if dept, ok := m.departments[id]; ok {
		copied := *dept
		return &copied, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) GetAll(ctx context.Context) ([]domain.Department, error) {
	result := make([]domain.Department, 0, len(m.departments))
	for id := int64(1); id < m.nextID; id++ {
		if dept, ok := m.departments[id]; ok {
			result = append(result, *dept)
		}
	}
	return result, nil
}

func (m *mockDepartmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.departments)), nil
}

func (m *mockDepartmentRepo) CountChildren(ctx context.Context, id int64) (int64, error) {
	var count int64
	for _, dept := range m.departments {
		if dept.ParentID != nil && *dept.ParentID == id {
			count++
		}
	}
	return count, nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	stored, ok := m.departments[dept.ID]
	if !ok {
		return domain.ErrDepartmentNotFound
	}
	if stored.Version != dept.Version {
		return domain.ErrVersionConflict
	}
	dept.Version++
	copied := *dept
	m.departments[dept.ID] = &copied
	return nil
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) ExistsByNameAndParent(ctx context.Context, name string, parentID *int64, excludeID *int64) (bool, error) {
	for _, dept := range m.departments {
		if dept.Name != name {
			continue
		}
		sameParent := (parentID == nil && dept.ParentID == nil) ||
			(parentID != nil && dept.ParentID != nil && *parentID == *dept.ParentID)
		if sameParent && (excludeID == nil || dept.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	m.nextID++
	copied := *emp
	m.employees[emp.ID] = &copied
	return nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		copied := *emp
		return &copied, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	var result []domain.Employee
	for id := int64(1); id < m.nextID; id++ {
		if emp, ok := m.employees[id]; ok && emp.DepartmentID == departmentID {
			result = append(result, *emp)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	for _, emp := range m.employees {
		if emp.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (m *mockEmployeeRepo) CountByPositionID(ctx context.Context, positionID int64) (int64, error) {
	var count int64
	for _, emp := range m.employees {
		if emp.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	if _, ok := m.employees[emp.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	copied := *emp
	m.employees[emp.ID] = &copied
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

type mockPositionRepo struct {
	positions map[int64]*domain.Position
	nextID    int64
}

func newMockPositionRepo() *mockPositionRepo {
	return &mockPositionRepo{
		positions: make(map[int64]*domain.Position),
		nextID:    1,
	}
}

func (m *mockPositionRepo) Create(ctx context.Context, pos *domain.Position) error {
	pos.ID = m.nextID
	pos.CreatedAt = time.Now()
	m.nextID++
	copied := *pos
	m.positions[pos.ID] = &copied
	return nil
}

func (m *mockPositionRepo) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	if pos, ok := m.positions[id]; ok {
		copied := *pos
		return &copied, nil
	}
	return nil, domain.ErrPositionNotFound
}

func (m *mockPositionRepo) GetAll(ctx context.Context) ([]domain.Position, error) {
	result := make([]domain.Position, 0, len(m.positions))
	for id := int64(1); id < m.nextID; id++ {
		if pos, ok := m.positions[id]; ok {
			result = append(result, *pos)
		}
	}
	return result, nil
}

func (m *mockPositionRepo) ExistsByTitle(ctx context.Context, title string, excludeID *int64) (bool, error) {
	for _, pos := range m.positions {
		if pos.Title == title && (excludeID == nil || pos.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPositionRepo) Update(ctx context.Context, pos *domain.Position) error {
	copied := *pos
	m.positions[pos.ID] = &copied
	return nil
}

func (m *mockPositionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.positions[id]; !ok {
		return domain.ErrPositionNotFound
	}
	delete(m.positions, id)
	return nil
}

type mockPayrollSetRepo struct {
	sets       map[int64]*domain.PayrollSet
	members    map[int64][]int64
	nextID     int64
	memberErr  error
}

func newMockPayrollSetRepo() *mockPayrollSetRepo {
	return &mockPayrollSetRepo{
		sets:    make(map[int64]*domain.PayrollSet),
		members: make(map[int64][]int64),
		nextID:  1,
	}
}

func (m *mockPayrollSetRepo) Create(ctx context.Context, set *domain.PayrollSet) error {
	set.ID = m.nextID
	set.CreatedAt = time.Now()
	m.nextID++
	copied := *set
	m.sets[set.ID] = &copied
	return nil
}

func (m *mockPayrollSetRepo) GetByID(ctx context.Context, id int64) (*domain.PayrollSet, error) {
	set, ok := m.sets[id]
	if !ok {
		return nil, domain.ErrPayrollSetNotFound
	}
	copied := *set
	copied.Members = nil
	for _, empID := range m.members[id] {
		copied.Members = append(copied.Members, domain.PayrollSetMember{
			PayrollSetID: id,
			EmployeeID:   empID,
		})
	}
	return &copied, nil
}

func (m *mockPayrollSetRepo) GetAll(ctx context.Context) ([]domain.PayrollSet, error) {
	result := make([]domain.PayrollSet, 0, len(m.sets))
	for id := int64(1); id < m.nextID; id++ {
		if set, ok := m.sets[id]; ok {
			result = append(result, *set)
		}
	}
	return result, nil
}

func (m *mockPayrollSetRepo) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	for _, set := range m.sets {
		if set.Name == name && (excludeID == nil || set.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPayrollSetRepo) ReplaceMembers(ctx context.Context, setID int64, employeeIDs []int64) error {
	m.members[setID] = append([]int64(nil), employeeIDs...)
	return nil
}

func (m *mockPayrollSetRepo) MemberIDs(ctx context.Context, setID int64) ([]int64, error) {
	if m.memberErr != nil {
		return nil, m.memberErr
	}
	return append([]int64(nil), m.members[setID]...), nil
}

func (m *mockPayrollSetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.sets[id]; !ok {
		return domain.ErrPayrollSetNotFound
	}
	delete(m.sets, id)
	delete(m.members, id)
	return nil
}

type mockCompensationRepo struct {
	compensations map[int64]*domain.Compensation
	nextID        int64
	failFor       map[int64]bool
}

func newMockCompensationRepo() *mockCompensationRepo {
	return &mockCompensationRepo{
		compensations: make(map[int64]*domain.Compensation),
		nextID:        1,
		failFor:       make(map[int64]bool),
	}
}

func (m *mockCompensationRepo) Save(ctx context.Context, comp *domain.Compensation) error {
	if comp.IsActive {
		for _, c := range m.compensations {
			if c.EmployeeID == comp.EmployeeID && c.ID != comp.ID {
				c.IsActive = false
			}
		}
	}
	if comp.ID == 0 {
		comp.ID = m.nextID
		comp.CreatedAt = time.Now()
		m.nextID++
	}
	copied := *comp
	m.compensations[comp.ID] = &copied
	return nil
}

func (m *mockCompensationRepo) GetByID(ctx context.Context, id int64) (*domain.Compensation, error) {
	if comp, ok := m.compensations[id]; ok {
		copied := *comp
		return &copied, nil
	}
	return nil, domain.ErrCompensationNotFound
}

func (m *mockCompensationRepo) GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Compensation, error) {
	var result []domain.Compensation
	for id := int64(1); id < m.nextID; id++ {
		if comp, ok := m.compensations[id]; ok && comp.EmployeeID == employeeID {
			result = append(result, *comp)
		}
	}
	return result, nil
}

func (m *mockCompensationRepo) GetActiveByEmployee(ctx context.Context, employeeID int64) (*domain.Compensation, error) {
	if m.failFor[employeeID] {
		return nil, errStore
	}
	for _, comp := range m.compensations {
		if comp.EmployeeID == employeeID && comp.IsActive {
			copied := *comp
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockCompensationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.compensations[id]; !ok {
		return domain.ErrCompensationNotFound
	}
	delete(m.compensations, id)
	return nil
}

type mockAttendanceRepo struct {
	summaries map[int64]domain.AttendanceSummary
	records   []domain.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{
		summaries: make(map[int64]domain.AttendanceSummary),
	}
}

func (m *mockAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	m.records = append(m.records, *att)
	return nil
}

func (m *mockAttendanceRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period domain.Period) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) SummaryForPeriod(ctx context.Context, employeeID int64, period domain.Period) (*domain.AttendanceSummary, error) {
	summary := m.summaries[employeeID]
	return &summary, nil
}

type mockLeaveTypeRepo struct {
	types  map[int64]*domain.LeaveType
	nextID int64
}

func newMockLeaveTypeRepo() *mockLeaveTypeRepo {
	return &mockLeaveTypeRepo{
		types:  make(map[int64]*domain.LeaveType),
		nextID: 1,
	}
}

func (m *mockLeaveTypeRepo) Create(ctx context.Context, lt *domain.LeaveType) error {
	lt.ID = m.nextID
	lt.CreatedAt = time.Now()
	m.nextID++
	copied := *lt
	m.types[lt.ID] = &copied
	return nil
}

func (m *mockLeaveTypeRepo) GetByID(ctx context.Context, id int64) (*domain.LeaveType, error) {
	if lt, ok := m.types[id]; ok {
		copied := *lt
		return &copied, nil
	}
	return nil, domain.ErrLeaveTypeNotFound
}

func (m *mockLeaveTypeRepo) GetAll(ctx context.Context) ([]domain.LeaveType, error) {
	result := make([]domain.LeaveType, 0, len(m.types))
	for id := int64(1); id < m.nextID; id++ {
		if lt, ok := m.types[id]; ok {
			result = append(result, *lt)
		}
	}
	return result, nil
}

func (m *mockLeaveTypeRepo) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	for _, lt := range m.types {
		if lt.Name == name && (excludeID == nil || lt.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLeaveTypeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.types[id]; !ok {
		return domain.ErrLeaveTypeNotFound
	}
	delete(m.types, id)
	return nil
}

type mockLeaveRequestRepo struct {
	requests   map[int64]*domain.LeaveRequest
	nextID     int64
	unpaidDays map[int64]int
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{
		requests:   make(map[int64]*domain.LeaveRequest),
		nextID:     1,
		unpaidDays: make(map[int64]int),
	}
}

func (m *mockLeaveRequestRepo) Create(ctx context.Context, req *domain.LeaveRequest) error {
	req.ID = m.nextID
	req.CreatedAt = time.Now()
	m.nextID++
	copied := *req
	m.requests[req.ID] = &copied
	return nil
}

func (m *mockLeaveRequestRepo) GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	if req, ok := m.requests[id]; ok {
		copied := *req
		return &copied, nil
	}
	return nil, domain.ErrLeaveRequestNotFound
}

func (m *mockLeaveRequestRepo) GetByEmployeeID(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error) {
	var result []domain.LeaveRequest
	for id := int64(1); id < m.nextID; id++ {
		if req, ok := m.requests[id]; ok && req.EmployeeID == employeeID {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) Update(ctx context.Context, req *domain.LeaveRequest) error {
	if _, ok := m.requests[req.ID]; !ok {
		return domain.ErrLeaveRequestNotFound
	}
	copied := *req
	m.requests[req.ID] = &copied
	return nil
}

func (m *mockLeaveRequestRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.requests[id]; !ok {
		return domain.ErrLeaveRequestNotFound
	}
	delete(m.requests, id)
	return nil
}

func (m *mockLeaveRequestRepo) UnpaidLeaveDays(ctx context.Context, employeeID int64, period domain.Period) (int, error) {
	return m.unpaidDays[employeeID], nil
}

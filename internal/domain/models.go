package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department представляет подразделение организации.
// Связи parent_id обязаны образовывать лес: подразделение не может
// быть собственным предком. Поле version служит токеном оптимистичной
// блокировки при обновлении.
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	ParentID  *int64    `json:"parent_id" gorm:"index"`
	Version   int64     `json:"version" gorm:"not null;default:1"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Parent    *Department  `json:"-" gorm:"foreignKey:ParentID"`
	Children  []Department `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Employees []Employee   `json:"employees,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Position представляет должность (штатную позицию)
type Position struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Position) TableName() string {
	return "positions"
}

// Employee представляет сотрудника
type Employee struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	DepartmentID int64      `json:"department_id" gorm:"not null;index"`
	PositionID   int64      `json:"position_id" gorm:"not null;index"`
	FullName     string     `json:"full_name" gorm:"type:varchar(200);not null"`
	HiredAt      *time.Time `json:"hired_at" gorm:"type:date"`
	TerminatedAt *time.Time `json:"terminated_at" gorm:"type:date"`
	CreatedBy    int64      `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
	Position   *Position   `json:"-" gorm:"foreignKey:PositionID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Holiday представляет праздничный день.
// Справочная сущность: на число рабочих дней в расчёте зарплаты
// не влияет (расчёт ведётся по календарным дням месяца).
type Holiday struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	Date      time.Time `json:"date" gorm:"type:date;not null;uniqueIndex"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Holiday) TableName() string {
	return "holidays"
}

// LeaveType представляет вид отпуска
type LeaveType struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null;uniqueIndex"`
	IsPaid    bool      `json:"is_paid" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (LeaveType) TableName() string {
	return "leave_types"
}

// Статусы заявки на отпуск
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest представляет заявку сотрудника на отпуск
type LeaveRequest struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID  int64      `json:"employee_id" gorm:"not null;index"`
	LeaveTypeID int64      `json:"leave_type_id" gorm:"not null;index"`
	FromDate    time.Time  `json:"from_date" gorm:"type:date;not null"`
	ThruDate    time.Time  `json:"thru_date" gorm:"type:date;not null"`
	Reason      string     `json:"reason" gorm:"type:varchar(500)"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	CreatedBy   int64      `json:"created_by"`
	ReviewedBy  *int64     `json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Employee  *Employee  `json:"-" gorm:"foreignKey:EmployeeID"`
	LeaveType *LeaveType `json:"-" gorm:"foreignKey:LeaveTypeID"`
}

// TableName задаёт имя таблицы для GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Статусы посещаемости
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance представляет отметку посещаемости за один день
type Attendance struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Date       time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Attendance) TableName() string {
	return "attendance"
}

// Виды компонентов вознаграждения
const (
	ComponentEarning   = "earning"
	ComponentDeduction = "deduction"
)

// Compensation представляет назначенное сотруднику вознаграждение
// за период. Не более одного активного назначения на сотрудника;
// total_amount всегда равен сумме компонентов.
type Compensation struct {
	ID          int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID  int64           `json:"employee_id" gorm:"not null;index"`
	FromDate    time.Time       `json:"from_date" gorm:"type:date;not null"`
	ThruDate    *time.Time      `json:"thru_date" gorm:"type:date"`
	IsActive    bool            `json:"is_active" gorm:"not null;default:false"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(14,2);not null"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Components []CompensationComponent `json:"components,omitempty" gorm:"foreignKey:CompensationID"`
}

// TableName задаёт имя таблицы для GORM
func (Compensation) TableName() string {
	return "compensations"
}

// CompensationComponent представляет одну составляющую вознаграждения
type CompensationComponent struct {
	ID             int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	CompensationID int64           `json:"compensation_id" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"type:varchar(200);not null"`
	Kind           string          `json:"kind" gorm:"type:varchar(20);not null"`
	IsBasicSalary  bool            `json:"is_basic_salary" gorm:"not null;default:false"`
	IsTaxable      bool            `json:"is_taxable" gorm:"not null;default:true"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	Ordinal        int             `json:"ordinal" gorm:"not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (CompensationComponent) TableName() string {
	return "compensation_components"
}

// PayrollSet представляет именованную группу сотрудников,
// рассчитываемую одним прогоном
type PayrollSet struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null;uniqueIndex"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Members []PayrollSetMember `json:"members,omitempty" gorm:"foreignKey:PayrollSetID"`
}

// TableName задаёт имя таблицы для GORM
func (PayrollSet) TableName() string {
	return "payroll_sets"
}

// PayrollSetMember связывает сотрудника с расчётной группой
type PayrollSetMember struct {
	ID           int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	PayrollSetID int64 `json:"payroll_set_id" gorm:"not null;uniqueIndex:idx_payroll_set_employee"`
	EmployeeID   int64 `json:"employee_id" gorm:"not null;uniqueIndex:idx_payroll_set_employee"`
}

// TableName задаёт имя таблицы для GORM
func (PayrollSetMember) TableName() string {
	return "payroll_set_members"
}

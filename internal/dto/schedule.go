package dto

// ── 排班模块 DTO ──

// GenerateScheduleRequest 生成周排班请求
type GenerateScheduleRequest struct {
	WeekStartDate string `json:"week_start_date" binding:"required,datetime=2006-01-02"`
}

// ScheduleWeekRequest 按周查询排班请求
type ScheduleWeekRequest struct {
	WeekStartDate string `form:"week_start_date" binding:"required,datetime=2006-01-02"`
}

// ── 响应 ──

// ScheduleResponse 周排班表响应
type ScheduleResponse struct {
	ID            string               `json:"id"`
	WeekStartDate string               `json:"week_start_date"`
	Status        string               `json:"status"`
	PublishedAt   *string              `json:"published_at,omitempty"`
	Assignments   []AssignmentResponse `json:"assignments,omitempty"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// AssignmentResponse 排班明细响应
type AssignmentResponse struct {
	ID           string `json:"id"`
	ScheduleID   string `json:"schedule_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ShiftID      string `json:"shift_id"`
	ShiftName    string `json:"shift_name,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Date         string `json:"date"`
}

// CoverageStatusResponse 单个班段的覆盖状态
type CoverageStatusResponse struct {
	Required int  `json:"required"`
	Assigned int  `json:"assigned"`
	IsMet    bool `json:"is_met"`
}

// DailyCoverageResponse 单日覆盖状态
type DailyCoverageResponse struct {
	Date       string                            `json:"date"`
	Categories map[string]CoverageStatusResponse `json:"categories"`
}

// CoverageReportResponse 覆盖报告响应
type CoverageReportResponse struct {
	Weekly   map[string]CoverageStatusResponse `json:"weekly"`
	Daily    []DailyCoverageResponse           `json:"daily"`
	Warnings []string                          `json:"warnings,omitempty"`
	Success  bool                              `json:"success"`
}

// GenerateScheduleResponse 生成排班结果响应
type GenerateScheduleResponse struct {
	Schedule *ScheduleResponse       `json:"schedule"`
	Report   *CoverageReportResponse `json:"report"`
}

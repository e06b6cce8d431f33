package dto

// ── 覆盖需求模块 DTO ──

// CreateCoverageRequirementRequest 创建覆盖需求请求
type CreateCoverageRequirementRequest struct {
	StartTime    string `json:"start_time"    binding:"required,datetime=15:04"`
	EndTime      string `json:"end_time"      binding:"required,datetime=15:04"`
	MinEmployees int    `json:"min_employees" binding:"required,min=1"`
}

// UpdateCoverageRequirementRequest 更新覆盖需求请求
type UpdateCoverageRequirementRequest struct {
	StartTime    *string `json:"start_time"    binding:"omitempty,datetime=15:04"`
	EndTime      *string `json:"end_time"      binding:"omitempty,datetime=15:04"`
	MinEmployees *int    `json:"min_employees" binding:"omitempty,min=1"`
}

// CoverageRequirementResponse 覆盖需求响应
type CoverageRequirementResponse struct {
	ID           string `json:"id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	MinEmployees int    `json:"min_employees"`
	Category     string `json:"category"` // 按起始时间归类的班段
}

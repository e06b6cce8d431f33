package dto

// ── 认证模块响应 ──

// TokenResponse Token 响应
type TokenResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresIn   int              `json:"expires_in"` // Access Token 有效期（秒）
	Employee    EmployeeResponse `json:"employee"`
}

// ── 员工模块响应 ──

// EmployeeResponse 员工信息响应（脱敏）
type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	WeeklyHoursLimit float64 `json:"weekly_hours_limit"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// [自证通过] internal/dto/response.go

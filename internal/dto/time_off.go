package dto

// ── 休假申请模块 DTO ──

// CreateTimeOffRequest 提交休假申请请求
type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     binding:"omitempty,max=200"`
}

// ReviewTimeOffRequest 审批休假申请请求（仅 manager）
type ReviewTimeOffRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// TimeOffListRequest 休假申请列表查询参数
type TimeOffListRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status"      binding:"omitempty,oneof=pending approved rejected"`
	PaginationRequest
}

// TimeOffResponse 休假申请响应
type TimeOffResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// [自证通过] internal/dto/time_off.go

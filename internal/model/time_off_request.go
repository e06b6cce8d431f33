package model

import "time"

// TimeOffRequest 休假申请表 — 对应 time_off_requests
//
// start_date/end_date 为闭区间，仅 approved 状态阻止排班。
type TimeOffRequest struct {
	RequestID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	EmployeeID string   `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | approved | rejected
	Reason    string    `gorm:"type:varchar(200)"                              json:"reason,omitempty"`
	VersionedModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (TimeOffRequest) TableName() string { return "time_off_requests" }

// [自证通过] internal/model/time_off_request.go

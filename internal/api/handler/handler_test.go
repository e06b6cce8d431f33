package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shiftline/backend/internal/dto"
	"shiftline/backend/internal/service"
	"shiftline/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	logoutErr     error
	meResult      *dto.EmployeeResponse
	meErr         error
	changePassErr error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) Me(_ context.Context, _ string) (*dto.EmployeeResponse, error) {
	return m.meResult, m.meErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock ScheduleService ──

type mockScheduleService struct {
	generateResult *dto.GenerateScheduleResponse
	generateErr    error
	publishResult  *dto.ScheduleResponse
	publishErr     error
	deleteErr      error
	getResult      *dto.ScheduleResponse
	getErr         error
	myResult       []dto.AssignmentResponse
	myErr          error
	coverageResult *dto.CoverageReportResponse
	coverageErr    error
}

func (m *mockScheduleService) Generate(_ context.Context, _ *dto.GenerateScheduleRequest, _ string) (*dto.GenerateScheduleResponse, error) {
	return m.generateResult, m.generateErr
}
func (m *mockScheduleService) Publish(_ context.Context, _ string, _ string) (*dto.ScheduleResponse, error) {
	return m.publishResult, m.publishErr
}
func (m *mockScheduleService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}
func (m *mockScheduleService) GetByWeek(_ context.Context, _ string) (*dto.ScheduleResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockScheduleService) GetMyAssignments(_ context.Context, _, _ string) ([]dto.AssignmentResponse, error) {
	return m.myResult, m.myErr
}
func (m *mockScheduleService) GetCoverage(_ context.Context, _ string) (*dto.CoverageReportResponse, error) {
	return m.coverageResult, m.coverageErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportScheduleXLSX(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportEmployeeICS(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setupGin() (*gin.Engine, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	r := gin.New()
	return r, w
}

func setAuth(c *gin.Context) {
	c.Set("employee_id", "test-employee-id")
	c.Set("role", "manager")
	c.Set("jti", "test-jti")
	c.Set("token_expires_at", time.Now().Add(15*time.Minute))
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken: "test-access-token",
			ExpiresIn:   43200,
		},
	}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "Test1234",
	}))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "wrong1234",
	}))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_Inactive(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrEmployeeInactive}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "Test1234",
	}))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r.GET("/auth/me", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongOld(t *testing.T) {
	mock := &mockAuthService{changePassErr: service.ErrOldPasswordWrong}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("PUT", "/auth/password", jsonBody(dto.ChangePasswordRequest{
		OldPassword: "Old12345",
		NewPassword: "New12345",
	}))
	req.Header.Set("Content-Type", "application/json")

	r.PUT("/auth/password", func(c *gin.Context) {
		setAuth(c)
		h.ChangePassword(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11004 {
		t.Errorf("expected error code 11004, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ScheduleHandler Tests
// ═══════════════════════════════════════════════════════════

func TestScheduleHandler_Generate_Success(t *testing.T) {
	mock := &mockScheduleService{
		generateResult: &dto.GenerateScheduleResponse{
			Schedule: &dto.ScheduleResponse{ID: "sched-1", Status: "draft"},
			Report:   &dto.CoverageReportResponse{Success: true},
		},
	}
	h := NewScheduleHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/schedules/generate", jsonBody(dto.GenerateScheduleRequest{
		WeekStartDate: "2024-06-03",
	}))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/schedules/generate", func(c *gin.Context) {
		setAuth(c)
		h.Generate(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestScheduleHandler_Generate_BadJSON(t *testing.T) {
	mock := &mockScheduleService{}
	h := NewScheduleHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/schedules/generate", bytes.NewReader([]byte("bad")))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/schedules/generate", func(c *gin.Context) {
		setAuth(c)
		h.Generate(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_Generate_BadWeekFormat(t *testing.T) {
	mock := &mockScheduleService{}
	h := NewScheduleHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/schedules/generate", jsonBody(dto.GenerateScheduleRequest{
		WeekStartDate: "06/03/2024",
	}))
	req.Header.Set("Content-Type", "application/json")

	r.POST("/schedules/generate", func(c *gin.Context) {
		setAuth(c)
		h.Generate(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_GetByWeek_MissingParam(t *testing.T) {
	mock := &mockScheduleService{}
	h := NewScheduleHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/schedules", nil) // 缺少 week_start_date

	r.GET("/schedules", h.GetByWeek)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_Publish_Success(t *testing.T) {
	mock := &mockScheduleService{
		publishResult: &dto.ScheduleResponse{ID: "sched-1", Status: "published"},
	}
	h := NewScheduleHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("POST", "/schedules/sched-1/publish", nil)

	r.POST("/schedules/:id/publish", func(c *gin.Context) {
		setAuth(c)
		h.Publish(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestScheduleHandler_GetCoverage_Success(t *testing.T) {
	mock := &mockScheduleService{
		coverageResult: &dto.CoverageReportResponse{
			Weekly:  map[string]dto.CoverageStatusResponse{"day": {IsMet: true}},
			Success: true,
		},
	}
	h := NewScheduleHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/schedules/sched-1/coverage", nil)

	r.GET("/schedules/:id/coverage", h.GetCoverage)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestScheduleHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrScheduleNotFound, 404, 17101},
		{"AlreadyExists", service.ErrScheduleAlreadyExists, 409, 17102},
		{"NotDraft", service.ErrScheduleNotDraft, 400, 17103},
		{"InsufficientInput", service.ErrInsufficientInputData, 422, 17104},
		{"InvalidWeekStart", service.ErrInvalidWeekStart, 400, 17105},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockScheduleService{getErr: tt.err}
			h := NewScheduleHandler(mock)

			r, w := setupGin()
			req := httptest.NewRequest("GET", "/schedules?week_start_date=2024-06-03", nil)

			r.GET("/schedules", h.GetByWeek)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_XLSX_Success(t *testing.T) {
	buf := bytes.NewBufferString("excel content")
	mock := &mockExportService{
		buf:      buf,
		filename: "排班表_2024-06-03.xlsx",
	}
	h := NewExportHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/export/schedules/sched-1/xlsx", nil)

	r.GET("/export/schedules/:id/xlsx", h.ExportScheduleXLSX)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != xlsxContentType {
		t.Errorf("unexpected content type: %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_XLSX_NotFound(t *testing.T) {
	mock := &mockExportService{err: service.ErrScheduleNotFound}
	h := NewExportHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/export/schedules/missing/xlsx", nil)

	r.GET("/export/schedules/:id/xlsx", h.ExportScheduleXLSX)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestExportHandler_XLSX_NoAssignments(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoAssignments}
	h := NewExportHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/export/schedules/sched-1/xlsx", nil)

	r.GET("/export/schedules/:id/xlsx", h.ExportScheduleXLSX)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandler_ICS_Success(t *testing.T) {
	buf := bytes.NewBufferString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	mock := &mockExportService{
		buf:      buf,
		filename: "个人班表_2024-06-03.ics",
	}
	h := NewExportHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/export/schedules/sched-1/my.ics", nil)

	r.GET("/export/schedules/:id/my.ics", func(c *gin.Context) {
		setAuth(c)
		h.ExportMyICS(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != icsContentType {
		t.Errorf("unexpected content type: %s", w.Header().Get("Content-Type"))
	}
}

func TestExportHandler_ICS_Unauthenticated(t *testing.T) {
	mock := &mockExportService{}
	h := NewExportHandler(mock)

	r, w := setupGin()
	req := httptest.NewRequest("GET", "/export/schedules/sched-1/my.ics", nil)

	r.GET("/export/schedules/:id/my.ics", h.ExportMyICS)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go

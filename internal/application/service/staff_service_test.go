package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/pkg/email"
)

func newTestStaffService(users *fakeUserRepo) *StaffService {
	// Unconfigured email service; approval must work without SMTP.
	return NewStaffService(users, email.NewEmailService(email.EmailConfig{}))
}

func seedUser(t *testing.T, users *fakeUserRepo, role enum.UserRole, status enum.UserStatus) *entity.User {
	t.Helper()
	user := &entity.User{
		Email:  uuid.New().String() + "@coffeechill.in",
		Role:   role,
		Status: status,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestApproveStaff(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newTestStaffService(users)
	pending := seedUser(t, users, enum.UserRoleStaff, enum.UserStatusPending)

	approved, err := svc.ApproveStaff(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != enum.UserStatusApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}

	// Approving an already-approved account is a no-op.
	if _, err := svc.ApproveStaff(context.Background(), pending.ID); err != nil {
		t.Fatalf("second approve: %v", err)
	}
}

func TestApproveStaffUnknownUser(t *testing.T) {
	svc := newTestStaffService(&fakeUserRepo{})
	if _, err := svc.ApproveStaff(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestRejectStaffBlocksAdmin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newTestStaffService(users)
	admin := seedUser(t, users, enum.UserRoleAdmin, enum.UserStatusApproved)

	if _, err := svc.RejectStaff(context.Background(), admin.ID); err == nil {
		t.Fatal("expected rejection of an admin account to fail")
	}

	staff := seedUser(t, users, enum.UserRoleStaff, enum.UserStatusPending)
	rejected, err := svc.RejectStaff(context.Background(), staff.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != enum.UserStatusRejected {
		t.Fatalf("expected rejected status, got %s", rejected.Status)
	}
}

func TestDeleteUserBlocksAdmin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newTestStaffService(users)
	admin := seedUser(t, users, enum.UserRoleAdmin, enum.UserStatusApproved)
	staff := seedUser(t, users, enum.UserRoleStaff, enum.UserStatusApproved)

	if err := svc.DeleteUser(context.Background(), admin.ID); err == nil {
		t.Fatal("expected delete of an admin account to fail")
	}
	if err := svc.DeleteUser(context.Background(), staff.ID); err != nil {
		t.Fatalf("delete staff: %v", err)
	}
	if got, _ := users.GetByID(context.Background(), staff.ID); got != nil {
		t.Fatal("expected staff account removed")
	}
}

func TestUpdateRoleValidates(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newTestStaffService(users)
	staff := seedUser(t, users, enum.UserRoleStaff, enum.UserStatusApproved)

	if _, err := svc.UpdateRole(context.Background(), staff.ID, &UpdateRoleInput{Role: "owner"}); err == nil {
		t.Fatal("expected error for unknown role")
	}

	updated, err := svc.UpdateRole(context.Background(), staff.ID, &UpdateRoleInput{Role: enum.UserRoleAdmin})
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != enum.UserRoleAdmin {
		t.Fatalf("expected admin role, got %s", updated.Role)
	}
}

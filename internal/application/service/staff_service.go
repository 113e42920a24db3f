package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
	"github.com/samlamare/cafechill-api/pkg/email"
)

// StaffService handles the admin staff-approval flow
type StaffService struct {
	userRepo     repository.UserRepository
	emailService *email.EmailService
}

// NewStaffService creates a new staff service
func NewStaffService(userRepo repository.UserRepository, emailService *email.EmailService) *StaffService {
	return &StaffService{
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// ListUsers returns accounts filtered by role, status, or search term
func (s *StaffService) ListUsers(ctx context.Context, params *repository.UserFilterParams) ([]entity.User, error) {
	return s.userRepo.List(ctx, params)
}

// ApproveStaff approves a pending staff account and sends the welcome
// email. Email delivery is best-effort; a dead SMTP relay must not
// block the approval itself.
func (s *StaffService) ApproveStaff(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	if user.Status == enum.UserStatusApproved {
		return user, nil
	}

	user.Status = enum.UserStatusApproved
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.emailService.IsConfigured() {
		if err := s.emailService.SendStaffWelcomeEmail(user.Email); err != nil {
			log.Printf("Warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

// RejectStaff rejects a staff account. Rejected accounts can still sign
// in but never pass the approval gate on the staff area.
func (s *StaffService) RejectStaff(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	if user.IsAdmin() {
		return nil, apperror.NewBadRequestError("Cannot reject an admin account")
	}

	user.Status = enum.UserStatusRejected
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRoleInput represents the role change input
type UpdateRoleInput struct {
	Role enum.UserRole
}

// UpdateRole changes an account's role
func (s *StaffService) UpdateRole(ctx context.Context, userID uuid.UUID, input *UpdateRoleInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	user.Role = input.Role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account
func (s *StaffService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if user.IsAdmin() {
		return apperror.NewBadRequestError("Cannot delete an admin account")
	}
	return s.userRepo.Delete(ctx, userID)
}

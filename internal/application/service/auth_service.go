package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
	"github.com/samlamare/cafechill-api/pkg/oauth"
	"github.com/samlamare/cafechill-api/pkg/utils"
)

// AuthService handles sign-in and session token operations. Staff
// identity comes from Google sign-in; the only local password belongs
// to the bootstrap admin seeded at first boot.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	oauthSvc   *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	oauthSvc *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		oauthSvc:   oauthSvc,
	}
}

// LoginInput represents the local admin login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents a successful sign-in
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates the local bootstrap admin. Staff accounts have no
// password and must sign in with Google.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// GoogleAuthURL returns the Google consent page URL for the given state
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.oauthSvc.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.oauthSvc.GetAuthURL(state), nil
}

// GoogleCallback completes the Google sign-in flow. A first-time
// sign-in creates a pending staff account that an admin must approve;
// returning users are matched by their Google account id.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*LoginOutput, error) {
	token, err := s.oauthSvc.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}

	info, err := s.oauthSvc.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperror.NewBadRequestError("Failed to fetch Google account info")
	}

	user, err := s.upsertExternalUser(ctx, info)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// upsertExternalUser resolves a Google account to a local user,
// creating a pending staff account on first sign-in
func (s *AuthService) upsertExternalUser(ctx context.Context, info *oauth.GoogleUserInfo) (*entity.User, error) {
	user, err := s.userRepo.GetByExternalUID(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		// Keep the profile fresh; role and status are admin-owned.
		if info.Name != "" && (user.DisplayName == nil || *user.DisplayName != info.Name) {
			name := info.Name
			user.DisplayName = &name
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	// The bootstrap admin may sign in with Google using the same email;
	// link the external id to the existing account instead of creating
	// a duplicate pending user.
	user, err = s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.ExternalUID = info.ID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user = &entity.User{
		ExternalUID: info.ID,
		Email:       info.Email,
		Role:        enum.UserRoleStaff,
		Status:      enum.UserStatusPending,
	}
	if info.Name != "" {
		name := info.Name
		user.DisplayName = &name
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshToken issues new tokens from a refresh token. Role and status
// are re-read from the store, so an approval or rejection takes effect
// on the next refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role.String(), user.Status.String())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

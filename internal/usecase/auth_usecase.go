package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/pkg/apperror"
)

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=8"`
	DisplayName string      `json:"display_name" validate:"required"`
	Role        domain.Role `json:"role" validate:"required"`
}

// LoginResponse carries the issued token and the resolved actor.
type LoginResponse struct {
	Token string        `json:"token"`
	Actor *domain.Actor `json:"actor"`
}

// AuthUseCase is the identity provider boundary: registration writes the
// profile record, login validates credentials and issues an access token.
// Authorization decisions never happen here; the token carries identity
// only and role is resolved from the profile store per session.
type AuthUseCase struct {
	profileRepo ports.ProfileRepository
	passwords   ports.PasswordService
	tokens      ports.TokenService
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(profileRepo ports.ProfileRepository, passwords ports.PasswordService, tokens ports.TokenService) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		passwords:   passwords,
		tokens:      tokens,
	}
}

// Register creates a profile and signs the new user in.
func (uc *AuthUseCase) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	if err := uc.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	existing, err := uc.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil && err != domain.ErrProfileNotFound {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := uc.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := domain.NewProfile(uuid.NewString(), req.Email, hash, req.DisplayName, req.Role)
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return uc.issueToken(profile)
}

// Login validates credentials and issues an access token.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, apperror.ErrUnauthorized
	}

	profile, err := uc.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, apperror.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := uc.passwords.Compare(profile.PasswordHash, password); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	return uc.issueToken(profile)
}

func (uc *AuthUseCase) issueToken(profile *domain.Profile) (*LoginResponse, error) {
	token, err := uc.tokens.Generate(profile.UID, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResponse{
		Token: token,
		Actor: &domain.Actor{
			ID:          profile.UID,
			DisplayName: profile.DisplayName,
			Role:        profile.Role,
		},
	}, nil
}

func (uc *AuthUseCase) validateRegisterRequest(req RegisterRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return apperror.NewValidation("a valid email is required")
	}
	if len(req.Password) < 8 {
		return apperror.NewValidation("password must be at least 8 characters")
	}
	if req.DisplayName == "" {
		return apperror.NewValidation("display name is required")
	}
	if req.Role != domain.RoleReporter && req.Role != domain.RoleEditor {
		return apperror.NewValidation(fmt.Sprintf("invalid role: %s", req.Role))
	}
	return nil
}

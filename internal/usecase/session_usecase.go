package usecase

import (
	"context"
	"fmt"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/service/logger"
)

// SessionUseCase resolves authentication events into Actors. This is the
// only place role is established; every other component takes the Actor
// as an explicit parameter.
type SessionUseCase struct {
	profileRepo ports.ProfileRepository
	log         logger.Logger
}

// NewSessionUseCase creates a new session use case.
func NewSessionUseCase(profileRepo ports.ProfileRepository, log logger.Logger) *SessionUseCase {
	return &SessionUseCase{
		profileRepo: profileRepo,
		log:         log,
	}
}

// Resolve turns an identity-provider event into an Actor. A sign-out
// yields nil. A signed-in credential with no profile record yields an
// Actor with an empty Role, which authorizes nothing: a half-registered
// account fails closed rather than open.
func (uc *SessionUseCase) Resolve(ctx context.Context, event domain.AuthEvent) (*domain.Actor, error) {
	if !event.SignedIn {
		return nil, nil
	}
	if event.UID == "" {
		return nil, fmt.Errorf("signed-in event without uid")
	}

	profile, err := uc.profileRepo.FindByUID(ctx, event.UID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			if uc.log != nil {
				uc.log.Warn(ctx, "no profile for signed-in credential", map[string]interface{}{
					"uid": event.UID,
				})
			}
			return &domain.Actor{ID: event.UID, DisplayName: event.Email}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &domain.Actor{
		ID:          profile.UID,
		DisplayName: profile.DisplayName,
		Role:        profile.Role,
	}, nil
}

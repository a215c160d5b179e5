package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/pressroom/internal/domain"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func TestResolve_SignedOut(t *testing.T) {
	repo := new(MockProfileRepository)
	uc := NewSessionUseCase(repo, nil)

	actor, err := uc.Resolve(context.Background(), domain.AuthEvent{SignedIn: false})
	require.NoError(t, err)
	assert.Nil(t, actor)
	repo.AssertNotCalled(t, "FindByUID")
}

func TestResolve_SignedInWithProfile(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("FindByUID", mock.Anything, "uid1").Return(&domain.Profile{
		UID:         "uid1",
		Email:       "ada@example.com",
		DisplayName: "Ada",
		Role:        domain.RoleReporter,
	}, nil)

	uc := NewSessionUseCase(repo, nil)
	actor, err := uc.Resolve(context.Background(), domain.AuthEvent{
		SignedIn: true,
		UID:      "uid1",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, actor)
	assert.Equal(t, "uid1", actor.ID)
	assert.Equal(t, "Ada", actor.DisplayName)
	assert.Equal(t, domain.RoleReporter, actor.Role)
}

// A credential with no profile record yields an actor with no role, which
// every role-gated operation rejects.
func TestResolve_MissingProfileFailsClosed(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("FindByUID", mock.Anything, "uid1").Return(nil, domain.ErrProfileNotFound)

	uc := NewSessionUseCase(repo, nil)
	actor, err := uc.Resolve(context.Background(), domain.AuthEvent{
		SignedIn: true,
		UID:      "uid1",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, actor)
	assert.Empty(t, actor.Role)
	assert.False(t, actor.IsEditor())
	assert.False(t, actor.IsReporter())
}

func TestResolve_ProfileStoreFailure(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("FindByUID", mock.Anything, "uid1").Return(nil, errors.New("connection refused"))

	uc := NewSessionUseCase(repo, nil)
	_, err := uc.Resolve(context.Background(), domain.AuthEvent{SignedIn: true, UID: "uid1"})
	assert.Error(t, err)
}

func TestResolve_SignedInWithoutUID(t *testing.T) {
	uc := NewSessionUseCase(new(MockProfileRepository), nil)

	_, err := uc.Resolve(context.Background(), domain.AuthEvent{SignedIn: true})
	assert.Error(t, err)
}

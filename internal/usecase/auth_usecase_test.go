package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/pkg/apperror"
)

type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(uid, email string) (string, error) {
	args := m.Called(uid, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (*ports.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.TokenClaims), args.Error(1)
}

func TestRegister(t *testing.T) {
	profiles := newFakeProfileRepo()
	passwords := new(MockPasswordService)
	passwords.On("Hash", "secret-password").Return("hashed", nil)
	tokens := new(MockTokenService)
	tokens.On("Generate", mock.Anything, "ada@example.com").Return("token123", nil)

	uc := NewAuthUseCase(profiles, passwords, tokens)
	result, err := uc.Register(context.Background(), RegisterRequest{
		Email:       "ada@example.com",
		Password:    "secret-password",
		DisplayName: "Ada",
		Role:        domain.RoleReporter,
	})
	require.NoError(t, err)
	assert.Equal(t, "token123", result.Token)
	assert.Equal(t, "Ada", result.Actor.DisplayName)
	assert.Equal(t, domain.RoleReporter, result.Actor.Role)

	stored, err := profiles.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed", stored.PasswordHash)
}

func TestRegister_Validation(t *testing.T) {
	uc := NewAuthUseCase(newFakeProfileRepo(), new(MockPasswordService), new(MockTokenService))
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "secret-password", DisplayName: "Ada", Role: domain.RoleReporter}},
		{"malformed email", RegisterRequest{Email: "nope", Password: "secret-password", DisplayName: "Ada", Role: domain.RoleReporter}},
		{"short password", RegisterRequest{Email: "a@b.c", Password: "short", DisplayName: "Ada", Role: domain.RoleReporter}},
		{"missing display name", RegisterRequest{Email: "a@b.c", Password: "secret-password", Role: domain.RoleReporter}},
		{"bad role", RegisterRequest{Email: "a@b.c", Password: "secret-password", DisplayName: "Ada", Role: "Admin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Create(context.Background(),
		domain.NewProfile("uid1", "ada@example.com", "hash", "Ada", domain.RoleReporter)))

	passwords := new(MockPasswordService)
	tokens := new(MockTokenService)

	uc := NewAuthUseCase(profiles, passwords, tokens)
	_, err := uc.Register(context.Background(), RegisterRequest{
		Email:       "ada@example.com",
		Password:    "secret-password",
		DisplayName: "Ada Again",
		Role:        domain.RoleReporter,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Create(context.Background(),
		domain.NewProfile("uid1", "ada@example.com", "hashed", "Ada", domain.RoleEditor)))

	passwords := new(MockPasswordService)
	passwords.On("Compare", "hashed", "secret-password").Return(nil)
	tokens := new(MockTokenService)
	tokens.On("Generate", "uid1", "ada@example.com").Return("token123", nil)

	uc := NewAuthUseCase(profiles, passwords, tokens)
	result, err := uc.Login(context.Background(), "ada@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "token123", result.Token)
	assert.True(t, result.Actor.IsEditor())
}

func TestLogin_BadCredentials(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Create(context.Background(),
		domain.NewProfile("uid1", "ada@example.com", "hashed", "Ada", domain.RoleEditor)))

	passwords := new(MockPasswordService)
	passwords.On("Compare", "hashed", "wrong").Return(assert.AnError)
	tokens := new(MockTokenService)

	uc := NewAuthUseCase(profiles, passwords, tokens)

	_, err := uc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
)

// PostgresProfileRepository implements the profile store boundary using
// PostgreSQL.
type PostgresProfileRepository struct {
	db *sql.DB
}

// NewPostgresProfileRepository creates a new PostgreSQL profile repository.
func NewPostgresProfileRepository(db *sql.DB) ports.ProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// Create writes a profile at registration time.
func (r *PostgresProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (uid, email, password_hash, display_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.UID,
		profile.Email,
		profile.PasswordHash,
		profile.DisplayName,
		string(profile.Role),
		profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// FindByUID retrieves a profile by the identity provider's stable uid.
func (r *PostgresProfileRepository) FindByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	query := `
		SELECT uid, email, password_hash, display_name, role, created_at
		FROM profiles
		WHERE uid = $1
	`
	return r.findOne(ctx, query, uid)
}

// FindByEmail retrieves a profile by email.
func (r *PostgresProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `
		SELECT uid, email, password_hash, display_name, role, created_at
		FROM profiles
		WHERE email = $1
	`
	return r.findOne(ctx, query, email)
}

func (r *PostgresProfileRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Profile, error) {
	var profile domain.Profile

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&profile.UID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.DisplayName,
		&profile.Role,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}

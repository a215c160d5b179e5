package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	db *sql.DB
}

// NewPostgresCategoryRepository creates a new PostgreSQL category repository.
func NewPostgresCategoryRepository(db *sql.DB) ports.CategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// Create saves a new category.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		category.ID,
		category.Name,
		nullString(category.Description),
		category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// FindByID retrieves a category by its ID.
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, name, description, created_at FROM categories WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByName retrieves a category by its exact name.
func (r *PostgresCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT id, name, description, created_at FROM categories WHERE name = $1`
	return r.findOne(ctx, query, name)
}

// Update updates an existing category.
func (r *PostgresCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `UPDATE categories SET name = $2, description = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		category.ID,
		category.Name,
		nullString(category.Description),
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category row only. Articles keep whatever category
// name they were filed under.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// List retrieves all categories ordered by name ascending.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, description, created_at FROM categories ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Count returns the number of categories.
func (r *PostgresCategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func (r *PostgresCategoryRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Category, error) {
	category, err := scanCategory(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var category domain.Category
	var description sql.NullString

	err := row.Scan(
		&category.ID,
		&category.Name,
		&description,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		category.Description = description.String
	}

	return &category, nil
}

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
)

const articleColumns = `id, title, subtitle, body, category, image_url, author_id, author_name, status, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	db *sql.DB
}

// NewPostgresArticleRepository creates a new PostgreSQL article repository.
func NewPostgresArticleRepository(db *sql.DB) ports.ArticleRepository {
	return &PostgresArticleRepository{db: db}
}

// Create saves a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (id, title, subtitle, body, category, image_url, author_id, author_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Subtitle,
		article.Body,
		article.Category,
		nullString(article.ImageURL),
		article.AuthorID,
		article.AuthorName,
		string(article.Status),
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// FindByID retrieves an article by its ID.
func (r *PostgresArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return article, nil
}

// Update writes the content fields and updated_at. The status column is
// deliberately absent from the SET list: status changes go through
// UpdateStatus only.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles
		SET title = $2, subtitle = $3, body = $4, category = $5, image_url = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Subtitle,
		article.Body,
		article.Category,
		nullString(article.ImageURL),
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}

// UpdateStatus conditionally writes status and updated_at. The condition
// on the previously-read updated_at is the optimistic concurrency check:
// zero rows with the article still present means a concurrent writer won.
func (r *PostgresArticleRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt, expectedUpdatedAt time.Time) error {
	query := `
		UPDATE articles
		SET status = $2, updated_at = $3
		WHERE id = $1 AND updated_at = $4
	`

	result, err := r.db.ExecContext(ctx, query, id, string(status), updatedAt, expectedUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check article existence: %w", err)
		}
		if exists {
			return domain.ErrStaleArticle
		}
		return domain.ErrArticleNotFound
	}

	return nil
}

// Delete removes an article. A missing id is a success, not an error.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// ListAll retrieves every article, newest created first.
func (r *PostgresArticleRepository) ListAll(ctx context.Context) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC`
	return r.queryArticles(ctx, query)
}

// ListByAuthor retrieves an author's articles, newest created first.
func (r *PostgresArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE author_id = $1 ORDER BY created_at DESC`
	return r.queryArticles(ctx, query, authorID)
}

// ListPublished retrieves published articles ordered by most recent
// update, so a republished-after-retire article surfaces at the top of
// the feed.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, category string) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE status = $1`
	args := []interface{}{string(domain.StatusPublished)}

	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY updated_at DESC`

	return r.queryArticles(ctx, query, args...)
}

func (r *PostgresArticleRepository) queryArticles(ctx context.Context, query string, args ...interface{}) ([]*domain.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	return articles, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var article domain.Article
	var imageURL sql.NullString

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Subtitle,
		&article.Body,
		&article.Category,
		&imageURL,
		&article.AuthorID,
		&article.AuthorName,
		&article.Status,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		article.ImageURL = imageURL.String
	}

	return &article, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package ports

import (
	"context"
	"time"

	"github.com/pressroom/pressroom/internal/domain"
)

// ArticleRepository defines the interface for article persistence. It owns
// data shape only; workflow and visibility policy live in the usecases.
type ArticleRepository interface {
	// Create saves a new article
	Create(ctx context.Context, article *domain.Article) error

	// FindByID retrieves an article by its ID
	FindByID(ctx context.Context, id string) (*domain.Article, error)

	// Update writes the article's content fields and updated_at. It must
	// never be used to change status; see UpdateStatus.
	Update(ctx context.Context, article *domain.Article) error

	// UpdateStatus conditionally writes status and updated_at. The write
	// applies only if the stored updated_at still equals expectedUpdatedAt;
	// otherwise domain.ErrStaleArticle is returned.
	UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt, expectedUpdatedAt time.Time) error

	// Delete removes an article. Deleting an absent id is a no-op success.
	Delete(ctx context.Context, id string) error

	// ListAll retrieves every article, newest created first
	ListAll(ctx context.Context) ([]*domain.Article, error)

	// ListByAuthor retrieves an author's articles, newest created first
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Article, error)

	// ListPublished retrieves published articles ordered by most recent
	// update, optionally filtered by category name
	ListPublished(ctx context.Context, category string) ([]*domain.Article, error)
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// Create saves a new category
	Create(ctx context.Context, category *domain.Category) error

	// FindByID retrieves a category by its ID
	FindByID(ctx context.Context, id string) (*domain.Category, error)

	// FindByName retrieves a category by its exact name
	FindByName(ctx context.Context, name string) (*domain.Category, error)

	// Update updates an existing category
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes the category row only; articles referencing the name
	// are left untouched
	Delete(ctx context.Context, id string) error

	// List retrieves all categories ordered by name ascending
	List(ctx context.Context) ([]*domain.Category, error)

	// Count returns the number of categories
	Count(ctx context.Context) (int, error)
}

// ProfileRepository defines the interface for the profile store boundary.
type ProfileRepository interface {
	// Create writes a profile at registration time
	Create(ctx context.Context, profile *domain.Profile) error

	// FindByUID retrieves a profile by the identity provider's stable uid
	FindByUID(ctx context.Context, uid string) (*domain.Profile, error)

	// FindByEmail retrieves a profile by email
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
}

package ports

import (
	"context"
	"time"

	"github.com/pressroom/pressroom/internal/domain"
)

// BlobStore is the blob storage boundary. Upload accepts raw image bytes
// and returns a public URL, or fails; a failed upload must abort the
// article write that requested it.
type BlobStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// FeedCache caches the public published feed keyed by category filter.
// Implementations are best-effort: a miss or backend failure falls
// through to the repository.
type FeedCache interface {
	Get(ctx context.Context, category string) ([]*domain.Article, bool)
	Set(ctx context.Context, category string, articles []*domain.Article, ttl time.Duration)
	Invalidate(ctx context.Context)
}

// TokenService issues and validates access tokens for the identity
// provider boundary.
type TokenService interface {
	Generate(uid, email string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// TokenClaims is the verified content of an access token. It carries
// identity only; role comes from the profile store at resolution time.
type TokenClaims struct {
	UID   string
	Email string
}

// PasswordService hashes and verifies credentials.
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

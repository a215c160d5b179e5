package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/service/logger"
)

// feedCacheTTL bounds how stale the public feed may get when no
// invalidating transition happens.
const feedCacheTTL = 30 * time.Second

// ReaderUseCase is the read-side visibility policy. Editors enumerate
// everything, reporters their own work, everyone else only what has been
// published. Fetching an unpublished article by its exact id from the
// public surface yields not-found, never the article.
type ReaderUseCase struct {
	articleRepo ports.ArticleRepository
	feedCache   ports.FeedCache
	log         logger.Logger
}

// NewReaderUseCase creates a new reader use case.
func NewReaderUseCase(articleRepo ports.ArticleRepository, feedCache ports.FeedCache, log logger.Logger) *ReaderUseCase {
	return &ReaderUseCase{
		articleRepo: articleRepo,
		feedCache:   feedCache,
		log:         log,
	}
}

// ListForActor returns the articles the actor may enumerate. An empty
// result is a valid answer, not an error.
func (uc *ReaderUseCase) ListForActor(ctx context.Context, actor *domain.Actor) ([]*domain.Article, error) {
	switch {
	case actor.IsEditor():
		articles, err := uc.articleRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list articles: %w", err)
		}
		return articles, nil
	case actor.IsReporter():
		articles, err := uc.articleRepo.ListByAuthor(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list articles by author: %w", err)
		}
		return articles, nil
	default:
		// Anonymous, or an actor whose profile carried no role: public
		// feed only, fail-closed.
		return uc.PublicFeed(ctx, "")
	}
}

// PublicFeed returns published articles ordered by most recent update,
// optionally filtered by category. Results are served from the feed cache
// when warm; cache trouble degrades to the database.
func (uc *ReaderUseCase) PublicFeed(ctx context.Context, category string) ([]*domain.Article, error) {
	if uc.feedCache != nil {
		if articles, ok := uc.feedCache.Get(ctx, category); ok {
			return articles, nil
		}
	}

	articles, err := uc.articleRepo.ListPublished(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}

	if uc.feedCache != nil {
		uc.feedCache.Set(ctx, category, articles, feedCacheTTL)
	}

	return articles, nil
}

// PublicArticle fetches a single article for anonymous display. The
// Published check is repeated here even though the caller already has the
// id: a guessed or leaked id must not expose unpublished content.
func (uc *ReaderUseCase) PublicArticle(ctx context.Context, id string) (*domain.Article, error) {
	article, err := uc.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.StatusPublished {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

// ArticleForActor fetches a single article under the same policy as
// ListForActor: editors see any article, reporters their own, and anyone
// else only published ones. Invisible articles read as not found rather
// than forbidden so their existence is not disclosed.
func (uc *ReaderUseCase) ArticleForActor(ctx context.Context, actor *domain.Actor, id string) (*domain.Article, error) {
	if actor.IsEditor() {
		return uc.articleRepo.FindByID(ctx, id)
	}

	article, err := uc.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsReporter() && actor.ID == article.AuthorID {
		return article, nil
	}
	if article.Status != domain.StatusPublished {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

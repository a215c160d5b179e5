package usecase

import (
	"context"
	"fmt"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/service/logger"
)

// WorkflowUseCase is the article state machine. Every status change in the
// system goes through Transition; the content-edit path cannot touch
// status. The transition table in the domain package is the single
// authoritative policy, and it is re-validated here on every request no
// matter what the caller's UI showed.
type WorkflowUseCase struct {
	articleRepo ports.ArticleRepository
	feedCache   ports.FeedCache
	log         logger.Logger
}

// NewWorkflowUseCase creates a new workflow use case.
func NewWorkflowUseCase(articleRepo ports.ArticleRepository, feedCache ports.FeedCache, log logger.Logger) *WorkflowUseCase {
	return &WorkflowUseCase{
		articleRepo: articleRepo,
		feedCache:   feedCache,
		log:         log,
	}
}

// Transition moves an article to the target status on behalf of the actor.
// The write is conditional on the updated_at value read here: if another
// writer got in between, domain.ErrStaleArticle comes back and the caller
// should re-read and retry.
func (uc *WorkflowUseCase) Transition(ctx context.Context, articleID string, actor *domain.Actor, target domain.Status) (*domain.Article, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article ID is required")
	}
	if !target.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	article, err := uc.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	from := article.Status
	expected := article.UpdatedAt

	if err := article.ApplyTransition(actor, target); err != nil {
		return nil, err
	}

	if err := uc.articleRepo.UpdateStatus(ctx, article.ID, article.Status, article.UpdatedAt, expected); err != nil {
		return nil, fmt.Errorf("failed to apply transition: %w", err)
	}

	// The public feed changes whenever an article enters or leaves the
	// Published state.
	if uc.feedCache != nil && (from == domain.StatusPublished || target == domain.StatusPublished) {
		uc.feedCache.Invalidate(ctx)
	}

	if uc.log != nil {
		uc.log.Info(ctx, "article transitioned", map[string]interface{}{
			"article_id": article.ID,
			"from":       string(from),
			"to":         string(target),
			"actor_id":   actor.ID,
			"actor_role": string(actor.Role),
		})
	}

	return article, nil
}

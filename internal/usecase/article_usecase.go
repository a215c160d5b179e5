package usecase

import (
	"context"
	"fmt"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/pkg/apperror"
)

// CreateArticleRequest represents the request to create an article. Any
// status the caller supplies is ignored; new articles always start as
// drafts.
type CreateArticleRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category" validate:"required"`

	// Image holds raw upload bytes; when set it is pushed to blob storage
	// before the article row is written.
	Image         []byte `json:"-"`
	ImageFilename string `json:"-"`
}

// UpdateArticleRequest carries edits to an article's content fields.
type UpdateArticleRequest struct {
	Fields domain.ArticleUpdate

	Image         []byte `json:"-"`
	ImageFilename string `json:"-"`
}

// ArticleUseCase handles article content operations: create, edit, delete.
// Status changes are out of scope here, see WorkflowUseCase.
type ArticleUseCase struct {
	articleRepo  ports.ArticleRepository
	categoryRepo ports.CategoryRepository
	blobStore    ports.BlobStore
}

// NewArticleUseCase creates a new article use case.
func NewArticleUseCase(articleRepo ports.ArticleRepository, categoryRepo ports.CategoryRepository, blobStore ports.BlobStore) *ArticleUseCase {
	return &ArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		blobStore:    blobStore,
	}
}

// Create validates the request, uploads the image if one was supplied, and
// persists a new draft owned by the actor.
func (uc *ArticleUseCase) Create(ctx context.Context, actor *domain.Actor, req CreateArticleRequest) (*domain.Article, error) {
	if err := requireRole(actor); err != nil {
		return nil, err
	}
	if err := uc.validateCreateRequest(ctx, req); err != nil {
		return nil, err
	}

	imageURL, err := uc.uploadImage(ctx, req.ImageFilename, req.Image)
	if err != nil {
		return nil, err
	}

	article := domain.NewArticle(req.Title, req.Subtitle, req.Body, req.Category, imageURL, actor.ID, actor.DisplayName)

	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

// Update edits an article's content fields. It cannot change status: the
// update struct has no status field and the repository write excludes the
// status column.
func (uc *ArticleUseCase) Update(ctx context.Context, actor *domain.Actor, articleID string, req UpdateArticleRequest) (*domain.Article, error) {
	if err := requireRole(actor); err != nil {
		return nil, err
	}
	if articleID == "" {
		return nil, apperror.NewValidation("article ID is required")
	}

	article, err := uc.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	// Reporters may only edit their own articles; editors may edit any.
	if !actor.IsEditor() && actor.ID != article.AuthorID {
		return nil, domain.ErrForbidden
	}

	if req.Fields.Title != nil && *req.Fields.Title == "" {
		return nil, apperror.NewValidation("title cannot be empty")
	}
	if req.Fields.Category != nil {
		if err := uc.requireCategory(ctx, *req.Fields.Category); err != nil {
			return nil, err
		}
	}

	if len(req.Image) > 0 {
		imageURL, err := uc.uploadImage(ctx, req.ImageFilename, req.Image)
		if err != nil {
			return nil, err
		}
		req.Fields.ImageURL = &imageURL
	}

	article.Apply(req.Fields)

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return article, nil
}

// Delete removes an article permanently. Deleting an id that does not
// exist is a success.
func (uc *ArticleUseCase) Delete(ctx context.Context, actor *domain.Actor, articleID string) error {
	if err := requireRole(actor); err != nil {
		return err
	}
	if articleID == "" {
		return apperror.NewValidation("article ID is required")
	}

	article, err := uc.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		if err == domain.ErrArticleNotFound {
			return nil
		}
		return fmt.Errorf("failed to load article: %w", err)
	}

	if !actor.IsEditor() && actor.ID != article.AuthorID {
		return domain.ErrForbidden
	}

	if err := uc.articleRepo.Delete(ctx, articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

func (uc *ArticleUseCase) validateCreateRequest(ctx context.Context, req CreateArticleRequest) error {
	if req.Title == "" {
		return apperror.NewValidation("title is required")
	}
	if len(req.Title) > 200 {
		return apperror.NewValidation("title must not exceed 200 characters")
	}
	if req.Body == "" {
		return apperror.NewValidation("body is required")
	}
	if req.Category == "" {
		return apperror.NewValidation("category is required")
	}
	return uc.requireCategory(ctx, req.Category)
}

// requireCategory checks that the name refers to an existing category.
func (uc *ArticleUseCase) requireCategory(ctx context.Context, name string) error {
	_, err := uc.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if err == domain.ErrCategoryNotFound {
			return apperror.NewValidation(fmt.Sprintf("unknown category: %s", name))
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	return nil
}

func (uc *ArticleUseCase) uploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if uc.blobStore == nil {
		return "", apperror.NewUpstream("image upload is not configured")
	}
	url, err := uc.blobStore.Upload(ctx, filename, data)
	if err != nil {
		return "", apperror.NewUpstream(fmt.Sprintf("image upload failed: %v", err))
	}
	return url, nil
}

// requireRole rejects anonymous callers and actors whose profile carried
// no role. A missing role authorizes nothing.
func requireRole(actor *domain.Actor) error {
	if actor == nil || actor.Role == "" {
		return domain.ErrForbidden
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/service/logger"
	"github.com/pressroom/pressroom/pkg/apperror"
)

// CategoryUseCase manages the closed set of category names articles are
// validated against. All mutations are editor-only. Deleting a category
// does not touch articles that reference its name; readers of such
// articles simply see a name that no longer appears in List.
type CategoryUseCase struct {
	categoryRepo ports.CategoryRepository
	log          logger.Logger
}

// NewCategoryUseCase creates a new category use case.
func NewCategoryUseCase(categoryRepo ports.CategoryRepository, log logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		log:          log,
	}
}

// Create adds a new category with a unique, non-empty name.
func (uc *CategoryUseCase) Create(ctx context.Context, actor *domain.Actor, name, description string) (*domain.Category, error) {
	if !actor.IsEditor() {
		return nil, domain.ErrForbidden
	}
	if name == "" {
		return nil, apperror.NewValidation("category name is required")
	}

	if err := uc.requireUniqueName(ctx, name); err != nil {
		return nil, err
	}

	category := domain.NewCategory(name, description)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// Update renames or re-describes a category.
func (uc *CategoryUseCase) Update(ctx context.Context, actor *domain.Actor, id string, name, description *string) (*domain.Category, error) {
	if !actor.IsEditor() {
		return nil, domain.ErrForbidden
	}
	if id == "" {
		return nil, apperror.NewValidation("category ID is required")
	}

	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if name != nil && *name != category.Name {
		if *name == "" {
			return nil, apperror.NewValidation("category name is required")
		}
		if err := uc.requireUniqueName(ctx, *name); err != nil {
			return nil, err
		}
		category.Name = *name
	}
	if description != nil {
		category.Description = *description
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes the category row only. Articles already filed under the
// name keep their dangling reference.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	if !actor.IsEditor() {
		return domain.ErrForbidden
	}
	if id == "" {
		return apperror.NewValidation("category ID is required")
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// List returns all categories ordered by name. Public: the reading surface
// uses it to build its category filter.
func (uc *CategoryUseCase) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Bootstrap seeds the default categories when the registry is completely
// empty. It is an explicit administrative operation, run once at
// deployment via cmd/seed, and checks emptiness as a whole rather than
// per item: repeated invocations never duplicate entries.
func (uc *CategoryUseCase) Bootstrap(ctx context.Context) (int, error) {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		if uc.log != nil {
			uc.log.Info(ctx, "category bootstrap skipped, registry not empty", map[string]interface{}{
				"count": count,
			})
		}
		return 0, nil
	}

	seeded := 0
	for _, def := range domain.DefaultCategories {
		category := domain.NewCategory(def.Name, def.Description)
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return seeded, fmt.Errorf("failed to seed category %q: %w", def.Name, err)
		}
		seeded++
	}

	if uc.log != nil {
		uc.log.Info(ctx, "default categories seeded", map[string]interface{}{
			"count": seeded,
		})
	}
	return seeded, nil
}

func (uc *CategoryUseCase) requireUniqueName(ctx context.Context, name string) error {
	_, err := uc.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return domain.ErrDuplicateCategory
	}
	if err != domain.ErrCategoryNotFound {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	return nil
}

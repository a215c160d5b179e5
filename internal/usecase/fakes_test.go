package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/pressroom/pressroom/internal/domain"
)

// In-memory fakes backing the usecase tests. They store copies so a
// caller mutating a returned article cannot bypass the write paths.

type fakeArticleRepo struct {
	mu       sync.Mutex
	articles map[string]domain.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]domain.Article)}
}

func (r *fakeArticleRepo) Create(ctx context.Context, article *domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles[article.ID] = *article
	return nil
}

func (r *fakeArticleRepo) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	copy := stored
	return &copy, nil
}

func (r *fakeArticleRepo) Update(ctx context.Context, article *domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.articles[article.ID]
	if !ok {
		return domain.ErrArticleNotFound
	}
	// Content fields only; status stays whatever the store has.
	stored.Title = article.Title
	stored.Subtitle = article.Subtitle
	stored.Body = article.Body
	stored.Category = article.Category
	stored.ImageURL = article.ImageURL
	stored.UpdatedAt = article.UpdatedAt
	r.articles[article.ID] = stored
	return nil
}

func (r *fakeArticleRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt, expectedUpdatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.articles[id]
	if !ok {
		return domain.ErrArticleNotFound
	}
	if !stored.UpdatedAt.Equal(expectedUpdatedAt) {
		return domain.ErrStaleArticle
	}
	stored.Status = status
	stored.UpdatedAt = updatedAt
	r.articles[id] = stored
	return nil
}

func (r *fakeArticleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) ListAll(ctx context.Context) ([]*domain.Article, error) {
	return r.list(func(domain.Article) bool { return true }, byCreatedDesc), nil
}

func (r *fakeArticleRepo) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Article, error) {
	return r.list(func(a domain.Article) bool { return a.AuthorID == authorID }, byCreatedDesc), nil
}

func (r *fakeArticleRepo) ListPublished(ctx context.Context, category string) ([]*domain.Article, error) {
	return r.list(func(a domain.Article) bool {
		if a.Status != domain.StatusPublished {
			return false
		}
		return category == "" || a.Category == category
	}, byUpdatedDesc), nil
}

func byCreatedDesc(a, b *domain.Article) bool { return a.CreatedAt.After(b.CreatedAt) }
func byUpdatedDesc(a, b *domain.Article) bool { return a.UpdatedAt.After(b.UpdatedAt) }

func (r *fakeArticleRepo) list(keep func(domain.Article) bool, less func(a, b *domain.Article) bool) []*domain.Article {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Article
	for _, stored := range r.articles {
		if keep(stored) {
			copy := stored
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]domain.Category
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[string]domain.Category)}
	for _, name := range names {
		category := domain.NewCategory(name, "")
		repo.categories[category.ID] = *category
	}
	return repo
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copy := stored
	return &copy, nil
}

func (r *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.categories {
		if stored.Name == name {
			copy := stored
			return &copy, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Category
	for _, stored := range r.categories {
		copy := stored
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.categories), nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]domain.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UID] = *profile
	return nil
}

func (r *fakeProfileRepo) FindByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.profiles[uid]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	copy := stored
	return &copy, nil
}

func (r *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.profiles {
		if stored.Email == email {
			copy := stored
			return &copy, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

type fakeBlobStore struct {
	url  string
	fail bool
}

func (b *fakeBlobStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if b.fail {
		return "", errors.New("upload backend unavailable")
	}
	if b.url != "" {
		return b.url, nil
	}
	return "https://blobs.example/" + filename, nil
}

type fakeFeedCache struct {
	mu          sync.Mutex
	entries     map[string][]*domain.Article
	invalidated int
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{entries: make(map[string][]*domain.Article)}
}

func (c *fakeFeedCache) Get(ctx context.Context, category string) ([]*domain.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	articles, ok := c.entries[category]
	return articles, ok
}

func (c *fakeFeedCache) Set(ctx context.Context, category string, articles []*domain.Article, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[category] = articles
}

func (c *fakeFeedCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]*domain.Article)
	c.invalidated++
}

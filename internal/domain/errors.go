package domain

// DomainError represents a domain-specific error.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

var (
	ErrArticleNotFound   = NewDomainError("article not found")
	ErrCategoryNotFound  = NewDomainError("category not found")
	ErrProfileNotFound   = NewDomainError("profile not found")
	ErrInvalidTransition = NewDomainError("invalid status transition")
	ErrForbidden         = NewDomainError("operation not permitted for this actor")
	ErrStaleArticle      = NewDomainError("article was modified concurrently")
	ErrDuplicateCategory = NewDomainError("category name already exists")
	ErrDuplicateEmail    = NewDomainError("email already registered")
)

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the editorial state of an article. The persisted
// labels are the external contract; do not rename them.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusReady     Status = "Ready"
	StatusPublished Status = "Published"
	StatusRetired   Status = "Retired"
)

// Valid reports whether s is one of the four enumerated states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReady, StatusPublished, StatusRetired:
		return true
	}
	return false
}

// Article represents a news article moving through the editorial workflow.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Body       string    `json:"body"`
	Category   string    `json:"category"`
	ImageURL   string    `json:"image_url,omitempty"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewArticle creates a new article owned by the given author. Articles
// always start in Draft regardless of what the caller asked for.
func NewArticle(title, subtitle, body, category, imageURL, authorID, authorName string) *Article {
	now := time.Now().UTC()
	return &Article{
		ID:         uuid.NewString(),
		Title:      title,
		Subtitle:   subtitle,
		Body:       body,
		Category:   category,
		ImageURL:   imageURL,
		AuthorID:   authorID,
		AuthorName: authorName,
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// transition is a legal (from, to) pair in the editorial workflow.
type transition struct {
	From Status
	To   Status
}

// transitionTable is the single authoritative policy for status changes.
// Any pair not listed here is rejected, identity moves included.
var transitionTable = map[transition]Role{
	{StatusDraft, StatusReady}:       RoleReporter,
	{StatusReady, StatusPublished}:   RoleEditor,
	{StatusPublished, StatusRetired}: RoleEditor,
	{StatusRetired, StatusPublished}: RoleEditor,
}

// CanTransition looks up the (current, target) pair in the transition
// table and returns the role required to perform it.
func (a *Article) CanTransition(target Status) (Role, error) {
	role, ok := transitionTable[transition{a.Status, target}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return role, nil
}

// ApplyTransition validates the move against the transition table and the
// acting role, then applies it. Reporter moves additionally require
// ownership: only the author may advance their own draft.
func (a *Article) ApplyTransition(actor *Actor, target Status) error {
	required, err := a.CanTransition(target)
	if err != nil {
		return err
	}
	if actor == nil || actor.Role != required {
		return ErrForbidden
	}
	if required == RoleReporter && actor.ID != a.AuthorID {
		return ErrForbidden
	}
	a.Status = target
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// ArticleUpdate carries the content fields a caller may edit. Status is
// deliberately absent: status changes go through the workflow only.
type ArticleUpdate struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Body     *string `json:"body,omitempty"`
	Category *string `json:"category,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Apply copies the set fields onto the article and refreshes UpdatedAt.
func (a *Article) Apply(upd ArticleUpdate) {
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Subtitle != nil {
		a.Subtitle = *upd.Subtitle
	}
	if upd.Body != nil {
		a.Body = *upd.Body
	}
	if upd.Category != nil {
		a.Category = *upd.Category
	}
	if upd.ImageURL != nil {
		a.ImageURL = *upd.ImageURL
	}
	a.UpdatedAt = time.Now().UTC()
}

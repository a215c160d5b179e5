package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named section articles are filed under. Articles reference
// categories by name, not id; deleting a category leaves existing articles
// untouched.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategory creates a new category.
func NewCategory(name, description string) *Category {
	return &Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// DefaultCategories is the fixed set seeded into an empty registry.
var DefaultCategories = []Category{
	{Name: "General", Description: "News and general announcements"},
	{Name: "National", Description: "Nationwide coverage"},
	{Name: "Entertainment", Description: "Entertainment and culture"},
	{Name: "Sports", Description: "Sports coverage"},
	{Name: "Technology", Description: "Technology and innovation"},
	{Name: "Business", Description: "Business and the economy"},
}

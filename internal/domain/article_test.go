package domain

import (
	"testing"
	"time"
)

func TestNewArticle(t *testing.T) {
	article := NewArticle("Title", "Subtitle", "Body", "Technology", "", "author1", "Ada")

	if article.ID == "" {
		t.Error("Expected ID to be assigned")
	}

	if article.Status != StatusDraft {
		t.Errorf("Expected status %s, got %s", StatusDraft, article.Status)
	}

	if article.AuthorID != "author1" {
		t.Errorf("Expected authorID author1, got %s", article.AuthorID)
	}

	if article.AuthorName != "Ada" {
		t.Errorf("Expected authorName Ada, got %s", article.AuthorName)
	}

	if article.CreatedAt.IsZero() || article.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	if !article.CreatedAt.Equal(article.UpdatedAt) {
		t.Error("Expected createdAt to equal updatedAt on creation")
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusReady, StatusPublished, StatusRetired} {
		if !s.Valid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}

	for _, s := range []Status{"", "Deleted", "draft", "PUBLISHED"} {
		if s.Valid() {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}

// Every (from, to) pair outside the four table entries must be rejected,
// identity moves and backward moves included.
func TestTransitionTableClosure(t *testing.T) {
	allowed := map[[2]Status]Role{
		{StatusDraft, StatusReady}:       RoleReporter,
		{StatusReady, StatusPublished}:   RoleEditor,
		{StatusPublished, StatusRetired}: RoleEditor,
		{StatusRetired, StatusPublished}: RoleEditor,
	}

	statuses := []Status{StatusDraft, StatusReady, StatusPublished, StatusRetired}
	for _, from := range statuses {
		for _, to := range statuses {
			article := NewArticle("T", "S", "B", "General", "", "author1", "Ada")
			article.Status = from

			role, err := article.CanTransition(to)
			if want, ok := allowed[[2]Status{from, to}]; ok {
				if err != nil {
					t.Errorf("%s -> %s: unexpected error %v", from, to, err)
				}
				if role != want {
					t.Errorf("%s -> %s: expected role %s, got %s", from, to, want, role)
				}
			} else {
				if err != ErrInvalidTransition {
					t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
				}
			}
		}
	}
}

func TestApplyTransition_RoleEnforcement(t *testing.T) {
	reporter := &Actor{ID: "author1", DisplayName: "Ada", Role: RoleReporter}
	editor := &Actor{ID: "editor1", DisplayName: "Ed", Role: RoleEditor}

	article := NewArticle("T", "S", "B", "General", "", "author1", "Ada")
	article.Status = StatusReady

	if err := article.ApplyTransition(reporter, StatusPublished); err != ErrForbidden {
		t.Errorf("Expected ErrForbidden for reporter publish, got %v", err)
	}
	if article.Status != StatusReady {
		t.Errorf("Status must not change on a rejected transition, got %s", article.Status)
	}

	if err := article.ApplyTransition(editor, StatusPublished); err != nil {
		t.Errorf("Unexpected error for editor publish: %v", err)
	}
	if article.Status != StatusPublished {
		t.Errorf("Expected status %s, got %s", StatusPublished, article.Status)
	}
}

func TestApplyTransition_OwnershipEnforcement(t *testing.T) {
	other := &Actor{ID: "author2", DisplayName: "Bea", Role: RoleReporter}
	owner := &Actor{ID: "author1", DisplayName: "Ada", Role: RoleReporter}

	article := NewArticle("T", "S", "B", "General", "", "author1", "Ada")

	if err := article.ApplyTransition(other, StatusReady); err != ErrForbidden {
		t.Errorf("Expected ErrForbidden for non-owner, got %v", err)
	}

	if err := article.ApplyTransition(owner, StatusReady); err != nil {
		t.Errorf("Unexpected error for owner: %v", err)
	}
}

func TestApplyTransition_NoActor(t *testing.T) {
	article := NewArticle("T", "S", "B", "General", "", "author1", "Ada")

	if err := article.ApplyTransition(nil, StatusReady); err != ErrForbidden {
		t.Errorf("Expected ErrForbidden for nil actor, got %v", err)
	}

	// An actor with no resolved role is authorized for nothing.
	roleless := &Actor{ID: "author1", DisplayName: "Ada"}
	if err := article.ApplyTransition(roleless, StatusReady); err != ErrForbidden {
		t.Errorf("Expected ErrForbidden for roleless actor, got %v", err)
	}
}

func TestApplyTransition_RefreshesUpdatedAt(t *testing.T) {
	article := NewArticle("T", "S", "B", "General", "", "author1", "Ada")
	article.UpdatedAt = article.UpdatedAt.Add(-time.Minute)
	before := article.UpdatedAt

	owner := &Actor{ID: "author1", DisplayName: "Ada", Role: RoleReporter}
	if err := article.ApplyTransition(owner, StatusReady); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !article.UpdatedAt.After(before) {
		t.Error("Expected updatedAt to advance on transition")
	}
	if article.CreatedAt.After(before) {
		t.Error("CreatedAt must not change on transition")
	}
}

func TestApply_EditsContentNotStatus(t *testing.T) {
	article := NewArticle("T", "S", "B", "General", "", "author1", "Ada")
	article.UpdatedAt = article.UpdatedAt.Add(-time.Minute)
	before := article.UpdatedAt

	title := "New title"
	category := "Sports"
	article.Apply(ArticleUpdate{Title: &title, Category: &category})

	if article.Title != "New title" {
		t.Errorf("Expected title to change, got %s", article.Title)
	}
	if article.Category != "Sports" {
		t.Errorf("Expected category to change, got %s", article.Category)
	}
	if article.Subtitle != "S" || article.Body != "B" {
		t.Error("Unset fields must not change")
	}
	if article.Status != StatusDraft {
		t.Errorf("Content edits must not touch status, got %s", article.Status)
	}
	if !article.UpdatedAt.After(before) {
		t.Error("Expected updatedAt to advance on edit")
	}
}

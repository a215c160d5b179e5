package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pressroom/pressroom/internal/adapter/http/middleware"
	"github.com/pressroom/pressroom/internal/adapter/http/response"
	"github.com/pressroom/pressroom/internal/usecase"
)

// CategoryHandler handles category management. Listing is public so the
// reading surface can build its filter; mutations are editor-only.
type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
	auth            *middleware.AuthMiddleware
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase, auth *middleware.AuthMiddleware) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		auth:            auth,
	}
}

// RegisterRoutes registers category routes.
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/categories", h.List).Methods("GET")
	router.HandleFunc("/api/v1/categories", h.auth.RequireEditor(h.Create)).Methods("POST")
	router.HandleFunc("/api/v1/categories/{id}", h.auth.RequireEditor(h.Update)).Methods("PUT")
	router.HandleFunc("/api/v1/categories/{id}", h.auth.RequireEditor(h.Delete)).Methods("DELETE")
}

// List returns all categories ordered by name.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUseCase.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "OK", categories)
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Create adds a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	name, description := "", ""
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	category, err := h.categoryUseCase.Create(r.Context(), actor, name, description)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Category created", category)
}

// Update renames or re-describes a category.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	categoryID := mux.Vars(r)["id"]

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	category, err := h.categoryUseCase.Update(r.Context(), actor, categoryID, req.Name, req.Description)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Category updated", category)
}

// Delete removes a category. Articles filed under the name are untouched.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	categoryID := mux.Vars(r)["id"]

	if err := h.categoryUseCase.Delete(r.Context(), actor, categoryID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Category deleted", nil)
}

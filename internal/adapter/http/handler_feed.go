package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pressroom/pressroom/internal/adapter/http/response"
	"github.com/pressroom/pressroom/internal/usecase"
)

// FeedHandler serves the anonymous reading surface. Only published
// articles ever leave these endpoints.
type FeedHandler struct {
	readerUseCase *usecase.ReaderUseCase
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(readerUseCase *usecase.ReaderUseCase) *FeedHandler {
	return &FeedHandler{readerUseCase: readerUseCase}
}

// RegisterRoutes registers public feed routes.
func (h *FeedHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/feed", h.List).Methods("GET")
	router.HandleFunc("/api/v1/feed/{id}", h.Get).Methods("GET")
}

// List returns published articles, optionally filtered by category.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	articles, err := h.readerUseCase.PublicFeed(r.Context(), category)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "OK", articles)
}

// Get returns a single published article. An unpublished id reads as not
// found even when the id is exact.
func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["id"]

	article, err := h.readerUseCase.PublicArticle(r.Context(), articleID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "OK", article)
}

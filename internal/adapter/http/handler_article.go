package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/pressroom/pressroom/internal/adapter/http/middleware"
	"github.com/pressroom/pressroom/internal/adapter/http/response"
	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/usecase"
)

// maxImageBytes bounds the accepted upload size.
const maxImageBytes = 10 << 20

// ArticleHandler handles the authenticated article surface: visibility-
// filtered listing, content CRUD, and workflow transitions.
type ArticleHandler struct {
	articleUseCase  *usecase.ArticleUseCase
	workflowUseCase *usecase.WorkflowUseCase
	readerUseCase   *usecase.ReaderUseCase
	auth            *middleware.AuthMiddleware
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(
	articleUseCase *usecase.ArticleUseCase,
	workflowUseCase *usecase.WorkflowUseCase,
	readerUseCase *usecase.ReaderUseCase,
	auth *middleware.AuthMiddleware,
) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase:  articleUseCase,
		workflowUseCase: workflowUseCase,
		readerUseCase:   readerUseCase,
		auth:            auth,
	}
}

// RegisterRoutes registers article routes.
func (h *ArticleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/articles", h.auth.RequireActor(h.List)).Methods("GET")
	router.HandleFunc("/api/v1/articles", h.auth.RequireActor(h.Create)).Methods("POST")
	router.HandleFunc("/api/v1/articles/{id}", h.auth.RequireActor(h.Get)).Methods("GET")
	router.HandleFunc("/api/v1/articles/{id}", h.auth.RequireActor(h.Update)).Methods("PATCH")
	router.HandleFunc("/api/v1/articles/{id}", h.auth.RequireActor(h.Delete)).Methods("DELETE")
	router.HandleFunc("/api/v1/articles/{id}/status", h.auth.RequireActor(h.Transition)).Methods("POST")
}

// List returns the articles the acting user may enumerate.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	articles, err := h.readerUseCase.ListForActor(r.Context(), actor)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "OK", articles)
}

// Get returns a single article under the actor's visibility policy.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	articleID := mux.Vars(r)["id"]

	article, err := h.readerUseCase.ArticleForActor(r.Context(), actor, articleID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "OK", article)
}

// Create handles article creation. Accepts JSON, or multipart form data
// when an image accompanies the draft.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var req usecase.CreateArticleRequest
	if isMultipart(r) {
		if err := parseCreateForm(r, &req); err != nil {
			response.BadRequest(w, err.Error())
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	article, err := h.articleUseCase.Create(r.Context(), actor, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Article created", article)
}

// Update handles content edits. Status is not editable here; the request
// body has no status field and one supplied in JSON is ignored by the
// decoder.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	articleID := mux.Vars(r)["id"]

	var req usecase.UpdateArticleRequest
	if isMultipart(r) {
		if err := parseUpdateForm(r, &req); err != nil {
			response.BadRequest(w, err.Error())
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req.Fields); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	article, err := h.articleUseCase.Update(r.Context(), actor, articleID, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Article updated", article)
}

// Delete removes an article.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	articleID := mux.Vars(r)["id"]

	if err := h.articleUseCase.Delete(r.Context(), actor, articleID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Article deleted", nil)
}

type transitionRequest struct {
	Status domain.Status `json:"status"`
}

// Transition moves an article through the editorial workflow.
func (h *ArticleHandler) Transition(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	articleID := mux.Vars(r)["id"]

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	article, err := h.workflowUseCase.Transition(r.Context(), articleID, actor, req.Status)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Status updated", article)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseCreateForm(r *http.Request, req *usecase.CreateArticleRequest) error {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return err
	}

	req.Title = r.FormValue("title")
	req.Subtitle = r.FormValue("subtitle")
	req.Body = r.FormValue("body")
	req.Category = r.FormValue("category")

	image, filename, err := readImageFile(r)
	if err != nil {
		return err
	}
	req.Image = image
	req.ImageFilename = filename

	return nil
}

func parseUpdateForm(r *http.Request, req *usecase.UpdateArticleRequest) error {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return err
	}

	setIfPresent := func(field string, dst **string) {
		if values, ok := r.MultipartForm.Value[field]; ok && len(values) > 0 {
			v := values[0]
			*dst = &v
		}
	}
	setIfPresent("title", &req.Fields.Title)
	setIfPresent("subtitle", &req.Fields.Subtitle)
	setIfPresent("body", &req.Fields.Body)
	setIfPresent("category", &req.Fields.Category)

	image, filename, err := readImageFile(r)
	if err != nil {
		return err
	}
	req.Image = image
	req.ImageFilename = filename

	return nil
}

func readImageFile(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return nil, "", err
	}

	return data, header.Filename, nil
}

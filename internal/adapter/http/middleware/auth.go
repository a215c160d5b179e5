package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pressroom/pressroom/internal/adapter/http/response"
	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/usecase"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware turns Bearer tokens into resolved Actors. The token
// carries identity only; the session resolver consults the profile store
// for the role on every request, so a revoked or missing profile fails
// closed immediately.
type AuthMiddleware struct {
	tokens   ports.TokenService
	sessions *usecase.SessionUseCase
}

func NewAuthMiddleware(tokens ports.TokenService, sessions *usecase.SessionUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
	}
}

// RequireActor rejects requests without a valid token or resolvable actor.
func (m *AuthMiddleware) RequireActor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := m.resolve(r)
		if !ok || actor == nil {
			response.Unauthorized(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	}
}

// OptionalActor resolves an actor when a valid token is present and
// proceeds anonymously otherwise.
func (m *AuthMiddleware) OptionalActor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if actor, ok := m.resolve(r); ok && actor != nil {
			r = r.WithContext(withActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	}
}

// RequireEditor rejects any actor without the Editor role.
func (m *AuthMiddleware) RequireEditor(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireActor(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromContext(r.Context())
		if !actor.IsEditor() {
			response.Forbidden(w, "Editor access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (*domain.Actor, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, false
	}

	claims, err := m.tokens.Validate(parts[1])
	if err != nil {
		return nil, false
	}

	actor, err := m.sessions.Resolve(r.Context(), domain.AuthEvent{
		SignedIn: true,
		UID:      claims.UID,
		Email:    claims.Email,
	})
	if err != nil || actor == nil {
		return nil, false
	}

	return actor, true
}

func withActor(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the resolved actor, or nil for anonymous
// requests.
func ActorFromContext(ctx context.Context) *domain.Actor {
	actor, _ := ctx.Value(actorKey).(*domain.Actor)
	return actor
}

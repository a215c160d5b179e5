package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pressroom/pressroom/internal/service/logger"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	log    logger.Logger
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer wires the handlers into a router with the shared middleware
// chain and a health endpoint.
func NewServer(
	config ServerConfig,
	log logger.Logger,
	authHandler *AuthHandler,
	articleHandler *ArticleHandler,
	categoryHandler *CategoryHandler,
	feedHandler *FeedHandler,
) *Server {
	router := mux.NewRouter()

	authHandler.RegisterRoutes(router)
	articleHandler.RegisterRoutes(router)
	categoryHandler.RegisterRoutes(router)
	feedHandler.RegisterRoutes(router)

	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware)
	router.Use(recoveryMiddleware(log))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return &Server{
		server: &http.Server{
			Addr:         ":" + config.Port,
			Handler:      router,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
		log: log,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info(context.Background(), "starting HTTP server", map[string]interface{}{
		"addr": s.server.Addr,
	})
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info(ctx, "shutting down HTTP server", nil)
	return s.server.Shutdown(ctx)
}

func loggingMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info(r.Context(), "request handled", map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"remote":   r.RemoteAddr,
				"duration": time.Since(start).String(),
			})
		})
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func recoveryMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error(r.Context(), "panic recovered", nil, map[string]interface{}{
						"panic": err,
						"path":  r.URL.Path,
					})
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

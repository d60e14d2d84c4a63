// Package httpapi exposes the service layer as an HTTP/JSON API behind the
// session-cookie gate.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/GURUTIKI/presently/internal/logging"
	"github.com/GURUTIKI/presently/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	addr       string
	corsOrigin string
	logger     logging.Logger
	users      *services.UserService
	lists      *services.ListService
	items      *services.ItemService
	images     *services.ImageService
}

func NewServer(addr, corsOrigin string, logger logging.Logger,
	users *services.UserService, lists *services.ListService,
	items *services.ItemService, images *services.ImageService) *Server {
	return &Server{
		addr:       addr,
		corsOrigin: corsOrigin,
		logger:     logger,
		users:      users,
		lists:      lists,
		items:      items,
		images:     images,
	}
}

// Handler builds the route tree. Split out of Run so tests can drive the
// API through httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	var origins []string
	for _, p := range strings.Split(s.corsOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/logout", s.handleLogout)

	// public item paths: listing applies the visibility policy, status
	// updates deliberately require no identity
	r.Get("/items", s.handleListItems)
	r.Put("/items/{id}", s.handleUpdateItemStatus)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/lists", s.handleListLists)
		r.Post("/lists", s.handleCreateList)
		r.Post("/items", s.handleCreateItem)
		r.Delete("/items/{id}", s.handleDeleteItem)
		r.Post("/uploads", s.handlePresignUpload)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "API listening", "addr", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

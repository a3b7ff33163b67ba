// Package web exposes the JSON API and the server-rendered HTML UI.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"

	"github.com/tesso57/writepilot/internal/domain/article"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ArticleService is the application surface the handlers call.
type ArticleService interface {
	Generate(ctx context.Context, title, audience, tone string) (article.Article, error)
	Rewrite(ctx context.Context, id int64, tone string) (article.Article, error)
	Edit(ctx context.Context, id int64, patch article.Patch) (article.Article, error)
	Remove(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (article.Article, error)
	List(ctx context.Context) ([]article.Article, error)
}

// Server holds the HTTP handler dependencies.
type Server struct {
	service  ArticleService
	logger   *slog.Logger
	tmpl     *template.Template
	markdown goldmark.Markdown
}

// NewServer constructs a Server.
func NewServer(service ArticleService, logger *slog.Logger) (*Server, error) {
	if service == nil {
		return nil, errors.New("article service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		service:  service,
		logger:   logger,
		tmpl:     tmpl,
		markdown: goldmark.New(),
	}, nil
}

// Routes builds the router. Generation routes get no timeout middleware: the
// provider call is allowed to block for its full round-trip.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)

	r.Get("/", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.handlePing)
		r.Post("/generate", s.handleGenerate)
		r.Get("/articles", s.handleListArticles)
		r.Get("/articles/{id}", s.handleGetArticle)
		r.Put("/articles/{id}", s.handleUpdateArticle)
		r.Patch("/articles/{id}", s.handleUpdateArticle)
		r.Delete("/articles/{id}", s.handleDeleteArticle)
		r.Post("/rewrite/{id}", s.handleRewrite)
	})

	r.Route("/ui", func(r chi.Router) {
		r.Get("/", s.uiIndex)
		r.Get("/new", s.uiNew)
		r.Get("/articles/{id}", s.uiEdit)
		r.Post("/generate", s.uiGenerate)
		r.Post("/articles/{id}/update", s.uiUpdate)
		r.Post("/articles/{id}/rewrite", s.uiRewrite)
		r.Post("/articles/{id}/delete", s.uiDelete)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "writepilot"})
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tesso57/writepilot/internal/domain/article"
)

type generateRequest struct {
	Title    string `json:"title"`
	Audience string `json:"audience"`
	Tone     string `json:"tone"`
}

type generateResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Article string `json:"article"`
}

// articleOut is the external article shape; the content field is exposed
// under the name "article".
type articleOut struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Audience  string    `json:"audience"`
	Tone      string    `json:"tone"`
	Article   string    `json:"article"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	Audience *string `json:"audience"`
	Tone     *string `json:"tone"`
	Article  *string `json:"article"`
}

type rewriteRequest struct {
	Tone string `json:"tone"`
}

func toArticleOut(a article.Article) articleOut {
	return articleOut{
		ID:        a.ID,
		Title:     a.Title,
		Audience:  a.Audience,
		Tone:      a.Tone,
		Article:   a.Content,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "write api alive"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := s.service.Generate(r.Context(), req.Title, req.Audience, req.Tone)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{ID: a.ID, Title: a.Title, Article: a.Content})
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.service.List(r.Context())
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	out := make([]articleOut, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleOut(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid article id")
		return
	}
	a, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleOut(a))
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid article id")
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := s.service.Edit(r.Context(), id, article.Patch{
		Title:    req.Title,
		Audience: req.Audience,
		Tone:     req.Tone,
		Content:  req.Article,
	})
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleOut(a))
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid article id")
		return
	}
	if err := s.service.Remove(r.Context(), id); err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "id": id})
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid article id")
		return
	}
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := s.service.Rewrite(r.Context(), id, req.Tone)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleOut(a))
}

// writeAPIError maps domain failures to HTTP statuses. API clients get the
// full error detail; the UI surface deliberately does not (see ui.go).
func (s *Server) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, article.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Article not found")
	case errors.Is(err, article.ErrBlankContent):
		writeDetail(w, http.StatusUnprocessableEntity, "Article content cannot be empty")
	case errors.Is(err, article.ErrInvalidInput):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	case article.IsGenerationError(err):
		writeDetail(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

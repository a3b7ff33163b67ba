package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tesso57/writepilot/internal/domain/article"
)

// UI error codes carried on the redirect target. The browser only ever sees
// these short codes; full detail goes to the server log.
const (
	uiErrLLMFailed    = "llm_failed"
	uiErrEmptyContent = "empty_content"
	uiErrInvalidInput = "invalid_input"
)

type indexView struct {
	Articles []article.Article
}

type newView struct {
	Error string
}

type editView struct {
	Article  article.Article
	Rendered template.HTML
	Error    string
}

func (s *Server) uiIndex(w http.ResponseWriter, r *http.Request) {
	articles, err := s.service.List(r.Context())
	if err != nil {
		s.logger.Error("ui: list failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, "index.html", indexView{Articles: articles})
}

func (s *Server) uiNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, "new.html", newView{Error: r.URL.Query().Get("error")})
}

func (s *Server) uiEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	a, err := s.service.Get(r.Context(), id)
	if errors.Is(err, article.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("ui: get failed", "id", id, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, "edit.html", editView{
		Article:  a,
		Rendered: s.renderMarkdown(a.Content),
		Error:    r.URL.Query().Get("error"),
	})
}

func (s *Server) uiGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	a, err := s.service.Generate(r.Context(),
		r.PostFormValue("title"),
		r.PostFormValue("audience"),
		r.PostFormValue("tone"))
	if errors.Is(err, article.ErrInvalidInput) {
		s.logger.Error("ui: generate rejected", "err", err)
		seeOther(w, r, "/ui/new?error="+uiErrInvalidInput)
		return
	}
	if err != nil {
		s.logger.Error("ui: generate failed", "err", err)
		seeOther(w, r, "/ui/new?error="+uiErrLLMFailed)
		return
	}
	seeOther(w, r, fmt.Sprintf("/ui/articles/%d", a.ID))
}

func (s *Server) uiUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := r.PostFormValue("title")
	audience := r.PostFormValue("audience")
	tone := r.PostFormValue("tone")
	content := r.PostFormValue("content")

	if article.IsBlank(content) {
		seeOther(w, r, fmt.Sprintf("/ui/articles/%d?error=%s", id, uiErrEmptyContent))
		return
	}

	a, err := s.service.Edit(r.Context(), id, article.Patch{
		Title:    &title,
		Audience: &audience,
		Tone:     &tone,
		Content:  &content,
	})
	if errors.Is(err, article.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("ui: update failed", "id", id, "err", err)
		seeOther(w, r, fmt.Sprintf("/ui/articles/%d?error=%s", id, uiErrInvalidInput))
		return
	}
	seeOther(w, r, fmt.Sprintf("/ui/articles/%d", a.ID))
}

func (s *Server) uiRewrite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	a, err := s.service.Rewrite(r.Context(), id, r.PostFormValue("tone"))
	if errors.Is(err, article.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("ui: rewrite failed", "id", id, "err", err)
		seeOther(w, r, fmt.Sprintf("/ui/articles/%d?error=%s", id, uiErrLLMFailed))
		return
	}
	seeOther(w, r, fmt.Sprintf("/ui/articles/%d", a.ID))
}

func (s *Server) uiDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, article.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("ui: delete failed", "id", id, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	seeOther(w, r, "/ui")
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("ui: template failed", "template", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// renderMarkdown converts the article body to HTML for the edit page
// preview. On a conversion error the raw text is shown escaped instead.
func (s *Server) renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(content), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(content) + "</pre>")
	}
	return template.HTML(buf.String())
}

func seeOther(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

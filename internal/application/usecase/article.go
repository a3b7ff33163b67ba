package usecase

import (
	"context"

	"github.com/tesso57/writepilot/internal/domain/article"
)

// DraftGenerator abstracts article generation and rewriting.
type DraftGenerator interface {
	Generate(ctx context.Context, req DraftRequest) (string, error)
	Rewrite(ctx context.Context, sourceText, targetTone string) (string, error)
}

// ArticleStore abstracts article persistence.
type ArticleStore interface {
	Create(ctx context.Context, title, audience, tone, content string) (article.Article, error)
	Get(ctx context.Context, id int64) (article.Article, error)
	List(ctx context.Context) ([]article.Article, error)
	Update(ctx context.Context, id int64, patch article.Patch) (article.Article, error)
	Delete(ctx context.Context, id int64) error
}

// ArticleService coordinates draft generation and persistence.
type ArticleService struct {
	Store  ArticleStore
	Drafts DraftGenerator
}

// NewArticleService constructs an ArticleService.
func NewArticleService(store ArticleStore, drafts DraftGenerator) *ArticleService {
	return &ArticleService{
		Store:  store,
		Drafts: drafts,
	}
}

// Generate drafts a new article via the provider and persists it. On any
// generation failure no row is created.
func (s *ArticleService) Generate(ctx context.Context, title, audience, tone string) (article.Article, error) {
	if article.IsBlank(audience) {
		audience = article.DefaultAudience
	}
	if article.IsBlank(tone) {
		tone = article.DefaultTone
	}
	if err := article.ValidateRequest(title, audience, tone); err != nil {
		return article.Article{}, err
	}

	content, err := s.Drafts.Generate(ctx, DraftRequest{Title: title, Audience: audience, Tone: tone})
	if err != nil {
		return article.Article{}, err
	}
	return s.Store.Create(ctx, title, audience, tone, content)
}

// Rewrite replaces the article's content and tone with a provider rewrite.
// On failure the stored article is left completely unchanged; on success
// content and tone are committed together.
func (s *ArticleService) Rewrite(ctx context.Context, id int64, tone string) (article.Article, error) {
	if article.IsBlank(tone) {
		tone = article.DefaultTone
	}
	if err := article.ValidatePatch(article.Patch{Tone: &tone}); err != nil {
		return article.Article{}, err
	}

	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return article.Article{}, err
	}

	rewritten, err := s.Drafts.Rewrite(ctx, current.Content, tone)
	if err != nil {
		return article.Article{}, err
	}

	return s.Store.Update(ctx, id, article.Patch{
		Content: &rewritten,
		Tone:    &tone,
	})
}

// Edit applies a partial update; fields absent from the patch are unchanged.
func (s *ArticleService) Edit(ctx context.Context, id int64, patch article.Patch) (article.Article, error) {
	if err := article.ValidatePatch(patch); err != nil {
		return article.Article{}, err
	}
	return s.Store.Update(ctx, id, patch)
}

// Remove deletes the article with the given id.
func (s *ArticleService) Remove(ctx context.Context, id int64) error {
	return s.Store.Delete(ctx, id)
}

// Get returns one article by id.
func (s *ArticleService) Get(ctx context.Context, id int64) (article.Article, error) {
	return s.Store.Get(ctx, id)
}

// List returns all articles, newest first.
func (s *ArticleService) List(ctx context.Context) ([]article.Article, error) {
	return s.Store.List(ctx)
}

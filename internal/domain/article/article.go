// Package article defines the persisted content entity and its error taxonomy.
package article

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits, mirrored by the articles table schema.
const (
	MaxTitleLen    = 200
	MaxAudienceLen = 50
	MaxToneLen     = 50
)

// Defaults applied when a request omits the field.
const (
	DefaultAudience = "general"
	DefaultTone     = "friendly"
)

// Article is the persisted unit of content.
type Article struct {
	ID        int64
	Title     string
	Audience  string
	Tone      string
	Content   string // Markdown body
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Title    *string
	Audience *string
	Tone     *string
	Content  *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Audience == nil && p.Tone == nil && p.Content == nil
}

// Apply returns a copy of a with the patch fields replaced.
func (p Patch) Apply(a Article) Article {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Audience != nil {
		a.Audience = *p.Audience
	}
	if p.Tone != nil {
		a.Tone = *p.Tone
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	return a
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateRequest checks field limits for a generation request.
func ValidateRequest(title, audience, tone string) error {
	if IsBlank(title) {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, MaxTitleLen)
	}
	if utf8.RuneCountInString(audience) > MaxAudienceLen {
		return fmt.Errorf("%w: audience exceeds %d characters", ErrInvalidInput, MaxAudienceLen)
	}
	if utf8.RuneCountInString(tone) > MaxToneLen {
		return fmt.Errorf("%w: tone exceeds %d characters", ErrInvalidInput, MaxToneLen)
	}
	return nil
}

// ValidatePatch checks field limits for a partial update.
func ValidatePatch(p Patch) error {
	if p.Title != nil {
		if IsBlank(*p.Title) {
			return fmt.Errorf("%w: title cannot be blank", ErrInvalidInput)
		}
		if utf8.RuneCountInString(*p.Title) > MaxTitleLen {
			return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, MaxTitleLen)
		}
	}
	if p.Audience != nil && utf8.RuneCountInString(*p.Audience) > MaxAudienceLen {
		return fmt.Errorf("%w: audience exceeds %d characters", ErrInvalidInput, MaxAudienceLen)
	}
	if p.Tone != nil && utf8.RuneCountInString(*p.Tone) > MaxToneLen {
		return fmt.Errorf("%w: tone exceeds %d characters", ErrInvalidInput, MaxToneLen)
	}
	return nil
}

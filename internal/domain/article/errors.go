package article

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the store and service layers.
var (
	// ErrNotFound means the referenced article id does not exist.
	ErrNotFound = errors.New("article not found")

	// ErrBlankContent means a mutation would leave the content empty or
	// whitespace-only. Rejected before commit.
	ErrBlankContent = errors.New("article content cannot be empty")

	// ErrInvalidInput means a request field violates a length or presence rule.
	ErrInvalidInput = errors.New("invalid input")
)

// GenerationError reports a failed draft or rewrite call to the text
// provider. It carries the provider's stop reason and whether the response
// held a tool call instead of text, which is the usual explanation when the
// model stops for a non-text reason.
type GenerationError struct {
	Op          string // "generate" or "rewrite"
	StopReason  string
	HadToolCall bool
	Err         error // transport or provider error, nil for blank output
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("llm %s returned empty content (finish_reason=%s, has_tool_calls=%t)",
		e.Op, e.StopReason, e.HadToolCall)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsGenerationError reports whether err is (or wraps) a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

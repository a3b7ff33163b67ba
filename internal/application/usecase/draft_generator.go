// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tesso57/writepilot/internal/domain/article"
	"github.com/tesso57/writepilot/internal/infrastructure/ai"
)

// draftSystemPrompt is sent as the system message on every provider call.
const draftSystemPrompt = "You are a helpful writing assistant."

// DraftRequest is the structured input for article generation.
type DraftRequest struct {
	Title    string
	Audience string
	Tone     string
}

// PromptDraftGenerator builds prompts and validates text output from a
// chat-completion client. The provider is not trusted to always produce
// usable text, so emptiness is checked explicitly even on a successful call.
type PromptDraftGenerator struct {
	Client ai.Client
}

// NewPromptDraftGenerator constructs a PromptDraftGenerator.
func NewPromptDraftGenerator(client ai.Client) PromptDraftGenerator {
	return PromptDraftGenerator{Client: client}
}

// Generate produces a new Markdown article for the request. A provider error
// or blank output fails with *article.GenerationError; no retry is attempted.
func (g PromptDraftGenerator) Generate(ctx context.Context, req DraftRequest) (string, error) {
	if g.Client == nil {
		return "", errors.New("ai client is not configured")
	}
	comp, err := g.Client.Complete(ctx, draftSystemPrompt, buildGeneratePrompt(req))
	return checkCompletion("generate", comp, err)
}

// Rewrite produces a meaning-preserving rewrite of sourceText in targetTone.
func (g PromptDraftGenerator) Rewrite(ctx context.Context, sourceText, targetTone string) (string, error) {
	if g.Client == nil {
		return "", errors.New("ai client is not configured")
	}
	comp, err := g.Client.Complete(ctx, draftSystemPrompt, buildRewritePrompt(sourceText, targetTone))
	return checkCompletion("rewrite", comp, err)
}

func checkCompletion(op string, comp ai.Completion, err error) (string, error) {
	if err != nil {
		return "", &article.GenerationError{Op: op, Err: err}
	}
	text := strings.TrimSpace(comp.Text)
	if text == "" {
		return "", &article.GenerationError{
			Op:          op,
			StopReason:  comp.StopReason,
			HadToolCall: comp.HadToolCall,
		}
	}
	return text, nil
}

func buildGeneratePrompt(req DraftRequest) string {
	return strings.Join([]string{
		"You are WritePilot, an AI writing assistant for English blogs.",
		"",
		"Write an English blog article.",
		"",
		"Requirements:",
		fmt.Sprintf("- Title: %s", req.Title),
		fmt.Sprintf("- Audience: %s", req.Audience),
		fmt.Sprintf("- Tone: %s", req.Tone),
		"- Use Markdown",
		"- Add headings (##) and bullet points where helpful",
		"- End with a short conclusion",
		"",
		"Output only the article in Markdown.",
	}, "\n")
}

func buildRewritePrompt(sourceText, targetTone string) string {
	return strings.Join([]string{
		"You are WritePilot, an AI writing assistant for English blogs.",
		"",
		"Rewrite the following article in English.",
		"",
		"Requirements:",
		"- Keep the meaning",
		"- Improve clarity and flow",
		fmt.Sprintf("- Tone: %s", targetTone),
		"- Keep headings (##) if present",
		"- Output only the rewritten article in Markdown",
		"",
		"ARTICLE:",
		sourceText,
	}, "\n")
}

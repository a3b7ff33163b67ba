package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/tesso57/writepilot/internal/domain/article"
	"github.com/tesso57/writepilot/internal/infrastructure/ai"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, system, user string) (ai.Completion, error) {
	args := m.Called(ctx, system, user)
	comp, _ := args.Get(0).(ai.Completion)
	return comp, args.Error(1)
}

func TestPromptDraftGenerator_Generate(t *testing.T) {
	client := &mockCompleter{}
	client.On("Complete", mock.Anything, draftSystemPrompt, mock.AnythingOfType("string")).
		Return(ai.Completion{Text: "\n# Test Post\n\nBody.\n", StopReason: "stop"}, nil).Once()
	generator := NewPromptDraftGenerator(client)

	got, err := generator.Generate(context.Background(), DraftRequest{
		Title:    "Test Post",
		Audience: "developers",
		Tone:     "confident",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "# Test Post\n\nBody." {
		t.Fatalf("Generate() = %q, want trimmed markdown", got)
	}

	calls := client.Calls
	if len(calls) != 1 {
		t.Fatalf("expected one Complete call, got %d", len(calls))
	}
	prompt, _ := calls[0].Arguments.Get(2).(string)
	for _, want := range []string{
		"- Title: Test Post",
		"- Audience: developers",
		"- Tone: confident",
		"Output only the article in Markdown.",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %q", want, prompt)
		}
	}
	client.AssertExpectations(t)
}

func TestPromptDraftGenerator_Rewrite(t *testing.T) {
	client := &mockCompleter{}
	client.On("Complete", mock.Anything, draftSystemPrompt, mock.AnythingOfType("string")).
		Return(ai.Completion{Text: "## Heading\n\nRewritten.", StopReason: "stop"}, nil).Once()
	generator := NewPromptDraftGenerator(client)

	got, err := generator.Rewrite(context.Background(), "## Heading\n\nOriginal.", "professional")
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != "## Heading\n\nRewritten." {
		t.Fatalf("Rewrite() = %q", got)
	}

	prompt, _ := client.Calls[0].Arguments.Get(2).(string)
	if !strings.Contains(prompt, "- Keep the meaning") {
		t.Fatalf("prompt missing meaning rule: %q", prompt)
	}
	if !strings.Contains(prompt, "- Tone: professional") {
		t.Fatalf("prompt missing target tone: %q", prompt)
	}
	if !strings.Contains(prompt, "ARTICLE:\n## Heading\n\nOriginal.") {
		t.Fatalf("prompt missing source article: %q", prompt)
	}
	client.AssertExpectations(t)
}

func TestPromptDraftGenerator_ProviderError(t *testing.T) {
	client := &mockCompleter{}
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(ai.Completion{}, errors.New("connection refused")).Once()
	generator := NewPromptDraftGenerator(client)

	_, err := generator.Generate(context.Background(), DraftRequest{Title: "x"})
	var genErr *article.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error = %v, want GenerationError", err)
	}
	if genErr.Op != "generate" {
		t.Fatalf("op = %q, want generate", genErr.Op)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("error message lost cause: %q", err.Error())
	}
	client.AssertExpectations(t)
}

func TestPromptDraftGenerator_BlankOutput(t *testing.T) {
	tests := []struct {
		name string
		comp ai.Completion
		want []string
	}{
		{
			name: "whitespace only",
			comp: ai.Completion{Text: "  \n\t", StopReason: "stop"},
			want: []string{"finish_reason=stop", "has_tool_calls=false"},
		},
		{
			name: "tool call instead of text",
			comp: ai.Completion{Text: "", StopReason: "tool_calls", HadToolCall: true},
			want: []string{"finish_reason=tool_calls", "has_tool_calls=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockCompleter{}
			client.On("Complete", mock.Anything, mock.Anything, mock.Anything).
				Return(tt.comp, nil).Once()
			generator := NewPromptDraftGenerator(client)

			_, err := generator.Rewrite(context.Background(), "body", "casual")
			var genErr *article.GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("Rewrite() error = %v, want GenerationError", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(err.Error(), want) {
					t.Fatalf("error %q missing %q", err.Error(), want)
				}
			}
			client.AssertExpectations(t)
		})
	}
}

func TestPromptDraftGenerator_NoClient(t *testing.T) {
	generator := NewPromptDraftGenerator(nil)
	if _, err := generator.Generate(context.Background(), DraftRequest{Title: "x"}); err == nil {
		t.Fatal("Generate() with nil client should fail")
	}
	if _, err := generator.Rewrite(context.Background(), "body", "casual"); err == nil {
		t.Fatal("Rewrite() with nil client should fail")
	}
}

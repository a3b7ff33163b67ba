package article

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestPatch_Apply(t *testing.T) {
	base := Article{ID: 1, Title: "X", Audience: "general", Tone: "friendly", Content: "body"}

	got := Patch{Tone: strPtr("casual")}.Apply(base)
	if got.Tone != "casual" {
		t.Fatalf("tone = %q, want casual", got.Tone)
	}
	if got.Title != "X" || got.Audience != "general" || got.Content != "body" {
		t.Fatalf("unset fields changed: %+v", got)
	}

	got = Patch{
		Title:    strPtr("Y"),
		Audience: strPtr("devs"),
		Tone:     strPtr("bold"),
		Content:  strPtr("new"),
	}.Apply(base)
	if got.Title != "Y" || got.Audience != "devs" || got.Tone != "bold" || got.Content != "new" {
		t.Fatalf("full patch not applied: %+v", got)
	}

	// The receiver value is untouched.
	if base.Tone != "friendly" {
		t.Fatalf("Apply mutated its input: %+v", base)
	}
}

func TestPatch_IsZero(t *testing.T) {
	if !(Patch{}).IsZero() {
		t.Fatal("empty patch should be zero")
	}
	if (Patch{Tone: strPtr("casual")}).IsZero() {
		t.Fatal("patch with a field should not be zero")
	}
}

func TestIsBlank(t *testing.T) {
	for s, want := range map[string]bool{
		"":        true,
		"  \n\t ": true,
		"x":       false,
		" x ":     false,
	} {
		if got := IsBlank(s); got != want {
			t.Fatalf("IsBlank(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		audience string
		tone     string
		wantErr  bool
	}{
		{name: "valid", title: "T", audience: "general", tone: "friendly"},
		{name: "max lengths", title: strings.Repeat("t", MaxTitleLen), audience: strings.Repeat("a", MaxAudienceLen), tone: strings.Repeat("o", MaxToneLen)},
		{name: "blank title", title: "  ", wantErr: true},
		{name: "title too long", title: strings.Repeat("t", MaxTitleLen+1), wantErr: true},
		{name: "audience too long", title: "T", audience: strings.Repeat("a", MaxAudienceLen+1), wantErr: true},
		{name: "tone too long", title: "T", tone: strings.Repeat("o", MaxToneLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.title, tt.audience, tt.tone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error %v does not wrap ErrInvalidInput", err)
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	if err := ValidatePatch(Patch{}); err != nil {
		t.Fatalf("empty patch should validate: %v", err)
	}
	if err := ValidatePatch(Patch{Title: strPtr("  ")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title error = %v, want ErrInvalidInput", err)
	}
	if err := ValidatePatch(Patch{Tone: strPtr(strings.Repeat("x", MaxToneLen+1))}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("long tone error = %v, want ErrInvalidInput", err)
	}
	// Content blankness is the store's invariant, checked against the merged
	// row, not the patch alone.
	if err := ValidatePatch(Patch{Content: strPtr("")}); err != nil {
		t.Fatalf("blank content in patch should pass field validation: %v", err)
	}
}

func TestGenerationError_Message(t *testing.T) {
	blank := &GenerationError{Op: "generate", StopReason: "tool_calls", HadToolCall: true}
	msg := blank.Error()
	for _, want := range []string{"generate", "finish_reason=tool_calls", "has_tool_calls=true"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}

	cause := errors.New("dial tcp: connection refused")
	wrapped := &GenerationError{Op: "rewrite", Err: cause}
	if !strings.Contains(wrapped.Error(), "connection refused") {
		t.Fatalf("message %q lost cause", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("GenerationError should unwrap its cause")
	}
	if !IsGenerationError(wrapped) {
		t.Fatal("IsGenerationError should match")
	}
	if IsGenerationError(errors.New("other")) {
		t.Fatal("IsGenerationError matched an unrelated error")
	}
}

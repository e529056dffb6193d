package gemini

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestCollectText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{
			name: "single candidate single part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: "hello"}}},
				}},
			},
			want: "hello",
		},
		{
			name: "parts joined with newlines",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{Text: "Skill Level: Ready"},
						{Text: "You are doing well."},
					}},
				}},
			},
			want: "Skill Level: Ready\nYou are doing well.",
		},
		{
			name: "multiple candidates concatenated",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "first"}}}},
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "second"}}}},
				},
			},
			want: "first\nsecond",
		},
		{
			name: "nil candidates and empty parts skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					nil,
					{Content: nil},
					{Content: &genai.Content{Parts: []*genai.Part{nil, {Text: "   "}, {Text: "kept"}}}},
				},
			},
			want: "kept",
		},
		{
			name: "whitespace trimmed",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: "  padded  "}}},
				}},
			},
			want: "padded",
		},
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
			want: "",
		},
		{
			name: "nil response",
			resp: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collectText(tt.resp); got != tt.want {
				t.Fatalf("unexpected output: %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateTextRejectsEmptyPrompt(t *testing.T) {
	g := &Generator{client: &genai.Client{}, modelName: defaultModel}

	if _, err := g.GenerateText(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestGenerateTextUninitialized(t *testing.T) {
	var g *Generator
	if _, err := g.GenerateText(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for nil generator")
	}

	g = &Generator{}
	if _, err := g.GenerateText(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for generator without client")
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), "  ", "gemini-pro"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGeneratorModel(t *testing.T) {
	g := &Generator{modelName: "gemini-pro"}
	if g.Model() != "gemini-pro" {
		t.Fatalf("unexpected model: %q", g.Model())
	}

	var nilGen *Generator
	if nilGen.Model() != "" {
		t.Fatal("nil generator must report an empty model")
	}
}

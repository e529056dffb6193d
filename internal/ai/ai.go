// Package ai defines the text-generation boundary. Services depend on the
// Generator interface; the gemini subpackage provides the production
// implementation and tests substitute fakes.
package ai

import "context"

// Generator produces text for a prompt. Implementations must not retain the
// prompt after returning.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

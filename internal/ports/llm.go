package ports

import "context"

// Generator turns a prompt into generated text via an LLM.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

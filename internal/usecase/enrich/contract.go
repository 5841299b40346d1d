package enrich

import "context"

// Generator produces free text from a prompt. Implementations are expected to
// bound the call with their own timeout and never stream.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

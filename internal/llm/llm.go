package llm

import "context"

// Completer abstracts a generative text service that completes a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

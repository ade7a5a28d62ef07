package completion_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=completion_port.go -destination=../../mocks/mock_completion_port.go -package=mocks

// CompletionPort is a single-shot generative text provider. The tagger holds
// an ordered list of these and takes the first successful completion.
type CompletionPort interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

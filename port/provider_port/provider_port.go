package provider_port

import (
	"context"

	"hud/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=provider_port.go -destination=../../mocks/mock_provider_port.go -package=mocks

// CandidateProviderPort fetches a bounded batch of candidate items from one
// external source and normalizes them into the common candidate shape.
// Individual-item failures are skipped inside the provider; an error return
// means the provider is unavailable as a whole and contributes nothing.
type CandidateProviderPort interface {
	Name() string
	FetchCandidates(ctx context.Context) ([]*domain.Candidate, error)
}

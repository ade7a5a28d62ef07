package preference_port

import (
	"context"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=preference_port.go -destination=../../mocks/mock_preference_port.go -package=mocks

// PreferencePort exposes a user's focus-area preference set. The core only
// reads it, as a lowercase tag filter predicate for the feed query.
type PreferencePort interface {
	FocusAreas(ctx context.Context, userID uuid.UUID) ([]string, error)
}

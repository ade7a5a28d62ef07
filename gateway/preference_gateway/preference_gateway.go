package preference_gateway

import (
	"context"

	"hud/domain"
	"hud/driver/hud_db"

	"github.com/google/uuid"
)

// PreferenceGateway reads user focus areas. Focus areas are compared
// case-insensitively against item tags, so they come back lowercased.
type PreferenceGateway struct {
	hudDB *hud_db.HudDBRepository
}

func NewPreferenceGateway(hudDB *hud_db.HudDBRepository) *PreferenceGateway {
	return &PreferenceGateway{hudDB: hudDB}
}

func (g *PreferenceGateway) FocusAreas(ctx context.Context, userID uuid.UUID) ([]string, error) {
	focusAreas, err := g.hudDB.FetchFocusAreas(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.LowercaseAll(focusAreas), nil
}

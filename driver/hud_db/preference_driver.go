package hud_db

import (
	"context"
	"errors"
	"fmt"

	"hud/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchFocusAreas returns the user's focus-area preference set. A user with
// no preference row simply has no focus areas.
func (r *HudDBRepository) FetchFocusAreas(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT focus_areas FROM user_preferences WHERE user_id = $1`

	var focusAreas []string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&focusAreas)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Logger.Error("error fetching focus areas", "user_id", userID, "error", err)
		return nil, fmt.Errorf("error fetching focus areas: %w", err)
	}

	return focusAreas, nil
}

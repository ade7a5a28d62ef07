package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark pins a feed item for a user. A bookmarked item is exempt from
// retention deletion for as long as any bookmark references it.
type Bookmark struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ItemID    uuid.UUID `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

package bookmark_port

import (
	"context"

	"hud/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=bookmark_port.go -destination=../../mocks/mock_bookmark_port.go -package=mocks

type BookmarkPort interface {
	Create(ctx context.Context, userID, itemID uuid.UUID) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error)
}

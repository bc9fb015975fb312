package cards

import (
	"context"

	"hackboard-backend/pkg/models"
)

// Store persists the two dashboard overlay records: the hidden-ID list and
// the custom-card list. Implementations must treat a missing record as the
// empty value, never as an error, so a first run starts clean.
type Store interface {
	HiddenIDs(ctx context.Context) ([]string, error)
	SaveHiddenIDs(ctx context.Context, ids []string) error
	CustomCards(ctx context.Context) ([]models.CustomCard, error)
	SaveCustomCards(ctx context.Context, cards []models.CustomCard) error
}

package dashboard

import (
	"context"

	"hackboard-backend/pkg/models"
)

// FolderSource lists the "Completed" subfolders with their files.
type FolderSource interface {
	ListCompletedFolders(ctx context.Context, token *models.Token, rootFolderID string) ([]models.DriveFolder, error)
}

// OverlayStore reads the persisted hidden-ID and custom-card records.
type OverlayStore interface {
	HiddenIDs(ctx context.Context) ([]string, error)
	CustomCards(ctx context.Context) ([]models.CustomCard, error)
}

package dashboard

import (
	"context"
	"log"

	"hackboard-backend/internal/teams"
	"hackboard-backend/pkg/models"
)

// driveErrorMessage is the single page-level message shown when the Drive
// listing fails; no partial folder list is rendered.
const driveErrorMessage = "Failed to load Drive files. Please try refreshing the page."

// Service builds the dashboard view for a signed-in user.
type Service struct {
	source       FolderSource
	overlays     OverlayStore
	registry     *teams.Registry
	rootFolderID string
	folderName   string
	assembler    Assembler
}

// NewService creates a dashboard service.
func NewService(source FolderSource, overlays OverlayStore, registry *teams.Registry, rootFolderID, folderName string) *Service {
	return &Service{
		source:       source,
		overlays:     overlays,
		registry:     registry,
		rootFolderID: rootFolderID,
		folderName:   folderName,
	}
}

// BuildView fetches the three data sources and assembles the dashboard.
// A Drive failure degrades to an empty folder list with a page-level error
// string; overlay read failures degrade to empty overlays.
func (s *Service) BuildView(ctx context.Context, token *models.Token, showHidden bool) (*View, error) {
	view := &View{
		FolderName: s.folderName,
		ShowHidden: showHidden,
	}
	if token != nil {
		view.UserEmail = token.Email
	}

	folders, err := s.source.ListCompletedFolders(ctx, token, s.rootFolderID)
	if err != nil {
		log.Printf("drive listing error: %v", err)
		view.Error = driveErrorMessage
		folders = nil
	}

	hiddenIDs, err := s.overlays.HiddenIDs(ctx)
	if err != nil {
		log.Printf("hidden-id read error: %v", err)
		hiddenIDs = nil
	}

	customCards, err := s.overlays.CustomCards(ctx)
	if err != nil {
		log.Printf("custom-card read error: %v", err)
		customCards = nil
	}

	winners := s.registry.MatchWinners(folders)

	view.Winners, view.Folders, view.HiddenCount = s.assembler.Assemble(Input{
		Folders:     folders,
		Winners:     winners,
		CustomCards: customCards,
		HiddenIDs:   hiddenIDs,
		ShowHidden:  showHidden,
	})

	return view, nil
}

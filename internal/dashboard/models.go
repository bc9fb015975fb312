package dashboard

import (
	"hackboard-backend/internal/teams"
	"hackboard-backend/pkg/models"
)

// FileView is one renderable card: a Drive file or a converted custom card,
// plus the affordances the frontend needs.
type FileView struct {
	models.DriveFile
	Hidden    bool `json:"hidden"`
	Deletable bool `json:"deletable"` // only custom cards can be deleted
}

// FolderView is one folder's effective, visibility-filtered file list.
// TotalFiles counts the merged list before filtering; HiddenCount is how
// many entries are currently suppressed (zero when showHidden is on).
type FolderView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Files       []FileView `json:"files"`
	TotalFiles  int        `json:"totalFiles"`
	HiddenCount int        `json:"hiddenCount"`
}

// WinnerCard is a winner section entry: the team, its placement style and
// the matched folder's view when one exists.
type WinnerCard struct {
	Team   teams.Team           `json:"team"`
	Style  teams.PlacementStyle `json:"style"`
	Folder *FolderView          `json:"folder,omitempty"`
}

// View is the complete assembled dashboard payload.
type View struct {
	FolderName  string       `json:"folderName"`
	UserEmail   string       `json:"userEmail,omitempty"`
	Winners     []WinnerCard `json:"winners"`
	Folders     []FolderView `json:"folders"` // general section, winner folders excluded
	ShowHidden  bool         `json:"showHidden"`
	HiddenCount int          `json:"hiddenCount"` // global count of hidden IDs
	Error       string       `json:"error,omitempty"`
}

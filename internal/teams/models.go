package teams

import "hackboard-backend/pkg/models"

// Team is one hackathon team as configured in teams.json. Placement and
// Award are nil for teams that did not place.
type Team struct {
	Name             string   `json:"name"`
	TeamNumber       int      `json:"teamNumber"`
	ProjectTitle     string   `json:"projectTitle"`
	Description      string   `json:"description"`
	Members          []string `json:"members"`
	Placement        *int     `json:"placement"`
	Award            *string  `json:"award"`
	DriveFolderMatch string   `json:"driveFolderMatch"`
}

// PlacementStyle carries the CSS class fragments the frontend uses to style
// a winner card for ranks 1-3.
type PlacementStyle struct {
	Color  string `json:"color"`
	Border string `json:"border"`
	Badge  string `json:"badge"`
}

// WinnerView pairs a placed team with its style and, when a Drive subfolder
// name contains the team's match key, that folder. Derived per request.
type WinnerView struct {
	Team   Team                `json:"team"`
	Style  PlacementStyle      `json:"style"`
	Folder *models.DriveFolder `json:"folder,omitempty"`
}

type teamsFile struct {
	Teams []Team `json:"teams"`
}

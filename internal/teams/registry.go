package teams

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"hackboard-backend/pkg/models"
)

// Registry holds the static team list for the event. It is loaded once at
// startup and never mutated afterwards, so all methods are safe for
// concurrent use.
type Registry struct {
	teams []Team
}

var placementStyles = map[int]PlacementStyle{
	1: {Color: "from-yellow-400 to-amber-500", Border: "border-yellow-400", Badge: "bg-yellow-100 text-yellow-800"},
	2: {Color: "from-gray-300 to-slate-400", Border: "border-gray-300", Badge: "bg-gray-100 text-gray-700"},
	3: {Color: "from-amber-600 to-orange-700", Border: "border-amber-600", Badge: "bg-orange-100 text-orange-800"},
}

// LoadRegistry reads the team list from a JSON file of the form
// {"teams": [...]}.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read teams file: %w", err)
	}

	var file teamsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse teams file: %w", err)
	}

	return NewRegistry(file.Teams), nil
}

// NewRegistry builds a registry from an already-loaded team list.
func NewRegistry(list []Team) *Registry {
	return &Registry{teams: list}
}

// AllTeams returns every team sorted by placement ascending, with unplaced
// teams last. The sort is stable so ties keep their configured order.
func (r *Registry) AllTeams() []Team {
	out := make([]Team, len(r.teams))
	copy(out, r.teams)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Placement, out[j].Placement
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})

	return out
}

// Winners returns the teams that placed, in placement order.
func (r *Registry) Winners() []Team {
	var winners []Team
	for _, t := range r.AllTeams() {
		if t.Placement != nil {
			winners = append(winners, t)
		}
	}
	return winners
}

// TeamByName looks a team up by its unique name.
func (r *Registry) TeamByName(name string) (Team, bool) {
	for _, t := range r.teams {
		if t.Name == name {
			return t, true
		}
	}
	return Team{}, false
}

// StyleFor returns the placement style for ranks 1-3; ok is false for any
// other rank so callers can render those winners unstyled.
func StyleFor(placement *int) (PlacementStyle, bool) {
	if placement == nil {
		return PlacementStyle{}, false
	}
	style, ok := placementStyles[*placement]
	return style, ok
}

// MatchWinners pairs each winning team with the first Drive folder whose
// name contains the team's DriveFolderMatch key. Winners with no matching
// folder still appear, with Folder left nil.
func (r *Registry) MatchWinners(folders []models.DriveFolder) []WinnerView {
	winners := r.Winners()
	views := make([]WinnerView, 0, len(winners))

	for _, team := range winners {
		style, _ := StyleFor(team.Placement)
		view := WinnerView{Team: team, Style: style}
		for i := range folders {
			if strings.Contains(folders[i].Name, team.DriveFolderMatch) {
				view.Folder = &folders[i]
				break
			}
		}
		views = append(views, view)
	}

	return views
}

// WinnerFolderIDs returns the set of folder IDs claimed by winners.
func WinnerFolderIDs(winners []WinnerView) map[string]bool {
	ids := make(map[string]bool)
	for _, w := range winners {
		if w.Folder != nil {
			ids[w.Folder.ID] = true
		}
	}
	return ids
}

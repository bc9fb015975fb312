package dashboard

import (
	"hackboard-backend/internal/teams"
	"hackboard-backend/pkg/models"
)

// Assembler merges Drive folder listings, custom cards and the hidden-ID
// set into the final dashboard view. It is pure: the same inputs always
// produce the same output and nothing is mutated.
type Assembler struct{}

// Input carries the four data sources the assembler works from.
type Input struct {
	Folders     []models.DriveFolder
	Winners     []teams.WinnerView
	CustomCards []models.CustomCard
	HiddenIDs   []string
	ShowHidden  bool
}

// Assemble produces the winner section and the general folder listing.
// Winner-matched folders are excluded from the general listing so no file
// is ever rendered twice.
func (a Assembler) Assemble(in Input) ([]WinnerCard, []FolderView, int) {
	hidden := make(map[string]bool, len(in.HiddenIDs))
	for _, id := range in.HiddenIDs {
		hidden[id] = true
	}

	deletable := make(map[string]bool, len(in.CustomCards))
	for _, c := range in.CustomCards {
		deletable[c.ID] = true
	}

	winners := make([]WinnerCard, 0, len(in.Winners))
	for _, w := range in.Winners {
		card := WinnerCard{Team: w.Team, Style: w.Style}
		if w.Folder != nil {
			view := a.folderView(*w.Folder, in.CustomCards, hidden, deletable, in.ShowHidden)
			card.Folder = &view
		}
		winners = append(winners, card)
	}

	winnerFolderIDs := teams.WinnerFolderIDs(in.Winners)
	remaining := make([]FolderView, 0, len(in.Folders))
	for _, f := range in.Folders {
		if winnerFolderIDs[f.ID] {
			continue
		}
		remaining = append(remaining, a.folderView(f, in.CustomCards, hidden, deletable, in.ShowHidden))
	}

	return winners, remaining, len(hidden)
}

// folderView builds one folder's effective file list: native Drive files
// first, then the folder's custom cards in their stored order, then the
// visibility filter. The merge is never re-sorted.
func (a Assembler) folderView(folder models.DriveFolder, customCards []models.CustomCard, hidden, deletable map[string]bool, showHidden bool) FolderView {
	merged := MergeFiles(folder, customCards)

	files := make([]FileView, 0, len(merged))
	hiddenCount := 0
	for _, f := range merged {
		isHidden := hidden[f.ID]
		if isHidden && !showHidden {
			hiddenCount++
			continue
		}
		files = append(files, FileView{
			DriveFile: f,
			Hidden:    isHidden,
			Deletable: deletable[f.ID],
		})
	}

	view := FolderView{
		ID:         folder.ID,
		Name:       folder.Name,
		Files:      files,
		TotalFiles: len(merged),
	}
	if !showHidden {
		view.HiddenCount = hiddenCount
	}
	return view
}

// MergeFiles returns the folder's effective file list: its Drive-native
// files followed by the custom cards assigned to it, each sub-list keeping
// its own order.
func MergeFiles(folder models.DriveFolder, customCards []models.CustomCard) []models.DriveFile {
	merged := make([]models.DriveFile, 0, len(folder.Files))
	merged = append(merged, folder.Files...)
	for _, c := range customCards {
		if c.FolderID == folder.ID {
			merged = append(merged, c.ToDriveFile())
		}
	}
	return merged
}

// VisibilityFilter returns the entries of files whose ID is not in the
// hidden set, preserving relative order. With showHidden set it returns the
// input unchanged.
func VisibilityFilter(files []models.DriveFile, hiddenIDs map[string]bool, showHidden bool) []models.DriveFile {
	if showHidden {
		return files
	}
	visible := make([]models.DriveFile, 0, len(files))
	for _, f := range files {
		if !hiddenIDs[f.ID] {
			visible = append(visible, f)
		}
	}
	return visible
}

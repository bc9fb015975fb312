package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackboard-backend/internal/teams"
	"hackboard-backend/pkg/models"
)

func intPtr(v int) *int { return &v }

func fileIDs(files []FileView) []string {
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}
	return ids
}

func TestMergeFiles_NativeFilesPrecedeCustomCards(t *testing.T) {
	folder := models.DriveFolder{
		ID:   "f1",
		Name: "Team A - Completed",
		Files: []models.DriveFile{
			{ID: "d1", Name: "Pitch deck"},
			{ID: "d2", Name: "Demo video"},
		},
	}
	cardList := []models.CustomCard{
		{ID: "c1", Name: "Repo link", FolderID: "f1"},
		{ID: "c2", Name: "Elsewhere", FolderID: "f2"},
		{ID: "c3", Name: "Figma", FolderID: "f1"},
	}

	merged := MergeFiles(folder, cardList)

	require.Len(t, merged, 4) // 2 native + 2 matching cards
	assert.Equal(t, "d1", merged[0].ID)
	assert.Equal(t, "d2", merged[1].ID)
	assert.Equal(t, "c1", merged[2].ID)
	assert.Equal(t, "c3", merged[3].ID)
}

func TestMergeFiles_CardFieldsMapToFileShape(t *testing.T) {
	folder := models.DriveFolder{ID: "f1"}
	cardList := []models.CustomCard{
		{ID: "c1", Name: "Repo", URL: "https://example.com/repo", MimeType: "text/html", FolderID: "f1", CreatedAt: "2026-02-01T10:00:00Z"},
	}

	merged := MergeFiles(folder, cardList)

	require.Len(t, merged, 1)
	assert.Equal(t, "https://example.com/repo", merged[0].WebViewLink)
	assert.Equal(t, "2026-02-01T10:00:00Z", merged[0].ModifiedTime)
	assert.Equal(t, "text/html", merged[0].MimeType)
}

func TestVisibilityFilter(t *testing.T) {
	files := []models.DriveFile{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	hidden := map[string]bool{"b": true}

	visible := VisibilityFilter(files, hidden, false)
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].ID)
	assert.Equal(t, "c", visible[1].ID)

	// showHidden returns the input unchanged
	all := VisibilityFilter(files, hidden, true)
	assert.Equal(t, files, all)

	// filtering never mutates the input
	assert.Len(t, files, 3)
}

func TestAssemble_WinnerFoldersExcludedFromGeneralListing(t *testing.T) {
	folderA := models.DriveFolder{ID: "fa", Name: "Team A - Completed", Files: []models.DriveFile{{ID: "a1"}}}
	folderB := models.DriveFolder{ID: "fb", Name: "Team B - Completed", Files: []models.DriveFile{{ID: "b1"}}}

	winner := teams.WinnerView{
		Team:   teams.Team{Name: "Team A", Placement: intPtr(1), DriveFolderMatch: "Team A"},
		Folder: &folderA,
	}

	winners, remaining, _ := Assembler{}.Assemble(Input{
		Folders: []models.DriveFolder{folderA, folderB},
		Winners: []teams.WinnerView{winner},
	})

	require.Len(t, winners, 1)
	require.NotNil(t, winners[0].Folder)
	assert.Equal(t, []string{"a1"}, fileIDs(winners[0].Folder.Files))

	require.Len(t, remaining, 1)
	assert.Equal(t, "Team B - Completed", remaining[0].Name)

	// no folder may appear in both sections
	for _, w := range winners {
		if w.Folder == nil {
			continue
		}
		for _, f := range remaining {
			assert.NotEqual(t, w.Folder.ID, f.ID)
		}
	}
}

func TestAssemble_HiddenCounts(t *testing.T) {
	folder := models.DriveFolder{
		ID:   "f1",
		Name: "Team X - Completed",
		Files: []models.DriveFile{
			{ID: "file123"},
			{ID: "file456"},
		},
	}

	in := Input{
		Folders:   []models.DriveFolder{folder},
		HiddenIDs: []string{"file123"},
	}

	_, remaining, hiddenTotal := Assembler{}.Assemble(in)

	require.Len(t, remaining, 1)
	assert.Equal(t, []string{"file456"}, fileIDs(remaining[0].Files))
	assert.Equal(t, 1, remaining[0].HiddenCount)
	assert.Equal(t, 2, remaining[0].TotalFiles)
	assert.Equal(t, 1, hiddenTotal)

	// with showHidden both files appear and no hidden-count badge is reported
	in.ShowHidden = true
	_, remaining, _ = Assembler{}.Assemble(in)
	require.Len(t, remaining, 1)
	assert.Equal(t, []string{"file123", "file456"}, fileIDs(remaining[0].Files))
	assert.Equal(t, 0, remaining[0].HiddenCount)
	assert.True(t, remaining[0].Files[0].Hidden)
}

func TestAssemble_DeletableOnlyForCustomCards(t *testing.T) {
	folder := models.DriveFolder{
		ID:    "f1",
		Name:  "Team X - Completed",
		Files: []models.DriveFile{{ID: "d1"}},
	}
	in := Input{
		Folders:     []models.DriveFolder{folder},
		CustomCards: []models.CustomCard{{ID: "c1", FolderID: "f1"}},
	}

	_, remaining, _ := Assembler{}.Assemble(in)

	require.Len(t, remaining, 1)
	require.Len(t, remaining[0].Files, 2)
	assert.False(t, remaining[0].Files[0].Deletable, "native Drive files are not deletable")
	assert.True(t, remaining[0].Files[1].Deletable, "custom cards are deletable")
}

func TestAssemble_Idempotent(t *testing.T) {
	in := Input{
		Folders: []models.DriveFolder{
			{ID: "f1", Name: "Team A - Completed", Files: []models.DriveFile{{ID: "a"}, {ID: "b"}}},
		},
		CustomCards: []models.CustomCard{{ID: "c1", FolderID: "f1"}},
		HiddenIDs:   []string{"b", "b"}, // duplicate input ids collapse via set semantics
	}

	w1, f1, h1 := Assembler{}.Assemble(in)
	w2, f2, h2 := Assembler{}.Assemble(in)

	assert.Equal(t, w1, w2)
	assert.Equal(t, f1, f2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, h1)
}

func TestAssemble_UnmatchedWinnerRendersWithoutFolder(t *testing.T) {
	winners, _, _ := Assembler{}.Assemble(Input{
		Winners: []teams.WinnerView{
			{Team: teams.Team{Name: "Ghosts", Placement: intPtr(2)}},
		},
	})

	require.Len(t, winners, 1)
	assert.Nil(t, winners[0].Folder)
}

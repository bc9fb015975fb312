package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackboard-backend/pkg/models"
)

func testToken() *models.Token {
	return &models.Token{AccessToken: "test-token", Email: "staff@example.com"}
}

// fakeDrive serves the two-stage listing: a folder query for the root and a
// children query per folder ID.
func fakeDrive(t *testing.T, folders map[string]string, children map[string][]apiFile) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", got)
		}

		query := r.URL.Query().Get("q")
		if r.URL.Query().Get("supportsAllDrives") != "true" {
			t.Error("expected supportsAllDrives=true")
		}

		var resp apiResponse
		if strings.Contains(query, "mimeType = 'application/vnd.google-apps.folder'") {
			if r.URL.Query().Get("orderBy") != "name" {
				t.Errorf("folder listing should order by name, got %q", r.URL.Query().Get("orderBy"))
			}
			// folders map preserves no order; emit sorted by name like the API would
			for id, name := range folders {
				resp.Files = append(resp.Files, apiFile{ID: id, Name: name})
			}
			sort.Slice(resp.Files, func(i, j int) bool { return resp.Files[i].Name < resp.Files[j].Name })
		} else {
			if r.URL.Query().Get("orderBy") != "modifiedTime desc" {
				t.Errorf("children listing should order by modifiedTime desc, got %q", r.URL.Query().Get("orderBy"))
			}
			for id, files := range children {
				if strings.Contains(query, fmt.Sprintf("'%s' in parents", id)) {
					resp.Files = files
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestListCompletedFolders_TwoStageFetch(t *testing.T) {
	server := fakeDrive(t,
		map[string]string{
			"fa": "Team A - Completed",
			"fb": "Team B - Completed",
		},
		map[string][]apiFile{
			"fa": {
				{ID: "a1", Name: "Demo", MimeType: "video/mp4", ModifiedTime: "2026-02-02T00:00:00Z"},
				{ID: "a2", Name: "Deck", MimeType: "application/pdf", ModifiedTime: "2026-02-01T00:00:00Z"},
			},
			"fb": {
				{ID: "b1", Name: "Notes", MimeType: "text/plain", Size: "1024"},
			},
		})
	defer server.Close()

	s := NewServiceWithBaseURL(server.URL)

	folders, err := s.ListCompletedFolders(context.Background(), testToken(), "root-id")
	require.NoError(t, err)

	require.Len(t, folders, 2)
	assert.Equal(t, "Team A - Completed", folders[0].Name)
	assert.Equal(t, "Team B - Completed", folders[1].Name)

	require.Len(t, folders[0].Files, 2)
	assert.Equal(t, "a1", folders[0].Files[0].ID)
	assert.Equal(t, "a2", folders[0].Files[1].ID)

	require.Len(t, folders[1].Files, 1)
	assert.Equal(t, "1024", folders[1].Files[0].Size)
}

func TestListCompletedFolders_NoMatches(t *testing.T) {
	server := fakeDrive(t, map[string]string{}, nil)
	defer server.Close()

	s := NewServiceWithBaseURL(server.URL)

	folders, err := s.ListCompletedFolders(context.Background(), testToken(), "root-id")
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestListCompletedFolders_APIErrorIsSourceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"insufficient permissions","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	s := NewServiceWithBaseURL(server.URL)

	_, err := s.ListCompletedFolders(context.Background(), testToken(), "root-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSource)
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
}

func TestListCompletedFolders_ChildFailureFailsWholeListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if strings.Contains(query, "mimeType = 'application/vnd.google-apps.folder'") {
			_ = json.NewEncoder(w).Encode(apiResponse{Files: []apiFile{{ID: "fa", Name: "Team A - Completed"}}})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error","status":"INTERNAL"}}`))
	}))
	defer server.Close()

	s := NewServiceWithBaseURL(server.URL)

	folders, err := s.ListCompletedFolders(context.Background(), testToken(), "root-id")
	assert.ErrorIs(t, err, ErrSource)
	assert.Nil(t, folders)
}

func TestListCompletedFolders_TransportErrorIsSourceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	s := NewServiceWithBaseURL(server.URL)

	_, err := s.ListCompletedFolders(context.Background(), testToken(), "root-id")
	assert.ErrorIs(t, err, ErrSource)
}

func TestGetThumbnailStream_RequiresURL(t *testing.T) {
	s := NewService()

	_, err := s.GetThumbnailStream(context.Background(), "", testToken())
	assert.Error(t, err)
}

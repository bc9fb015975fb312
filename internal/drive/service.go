package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"hackboard-backend/pkg/models"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	pageSize       = 100
)

// Service lists "Completed" subfolders of the shared root folder and their
// immediate children from the Drive v3 REST API.
type Service struct {
	httpClient *http.Client
	baseURL    string
}

// NewService creates a Drive service with the default API endpoint.
func NewService() *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://www.googleapis.com/drive/v3",
	}
}

// NewServiceWithBaseURL creates a Drive service pointed at a custom endpoint.
// Used by tests to target an httptest server.
func NewServiceWithBaseURL(baseURL string) *Service {
	s := NewService()
	s.baseURL = baseURL
	return s
}

// ListCompletedFolders returns the subfolders of rootFolderID whose name
// contains "Completed", ordered by name, each populated with its immediate
// children ordered by modifiedTime descending. The children of all folders
// are fetched concurrently; result order follows folder order, not
// completion order. Any API failure fails the whole listing.
func (s *Service) ListCompletedFolders(ctx context.Context, token *models.Token, rootFolderID string) ([]models.DriveFolder, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and name contains 'Completed' and trashed = false",
		rootFolderID, folderMimeType)

	resp, err := s.listFiles(ctx, token, query, "files(id,name)", "name")
	if err != nil {
		return nil, err
	}

	folders := make([]models.DriveFolder, len(resp.Files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range resp.Files {
		i, f := i, f
		folders[i] = models.DriveFolder{ID: f.ID, Name: f.Name}

		g.Go(func() error {
			files, err := s.listChildren(ctx, token, f.ID)
			if err != nil {
				return err
			}
			folders[i].Files = files
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return folders, nil
}

// listChildren lists the immediate, non-trashed children of one folder.
func (s *Service) listChildren(ctx context.Context, token *models.Token, folderID string) ([]models.DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	fields := "files(id,name,mimeType,thumbnailLink,webViewLink,modifiedTime,iconLink,size)"

	resp, err := s.listFiles(ctx, token, query, fields, "modifiedTime desc")
	if err != nil {
		return nil, err
	}

	files := make([]models.DriveFile, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, models.DriveFile{
			ID:            f.ID,
			Name:          f.Name,
			MimeType:      f.MimeType,
			ThumbnailLink: f.ThumbnailLink,
			WebViewLink:   f.WebViewLink,
			ModifiedTime:  f.ModifiedTime,
			IconLink:      f.IconLink,
			Size:          f.Size,
		})
	}

	return files, nil
}

// listFiles issues one files.list call. The shared-drive flags are always
// set because the root folder lives in a shared drive.
func (s *Service) listFiles(ctx context.Context, token *models.Token, query, fields, orderBy string) (*apiResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", fields)
	params.Set("orderBy", orderBy)
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("supportsAllDrives", "true")
	params.Set("includeItemsFromAllDrives", "true")

	apiURL := fmt.Sprintf("%s/files?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, sourceError("failed to create request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, sourceError("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.handleAPIError(resp)
	}

	var driveResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&driveResp); err != nil {
		return nil, sourceError("failed to decode response: %v", err)
	}

	return &driveResp, nil
}

// GetThumbnailStream retrieves a thumbnail stream from a Drive thumbnail URL.
// API-served thumbnail links need the bearer token; CDN links
// (lh3.googleusercontent.com) do not.
func (s *Service) GetThumbnailStream(ctx context.Context, thumbnailURL string, token *models.Token) (io.ReadCloser, error) {
	if thumbnailURL == "" {
		return nil, fmt.Errorf("thumbnail URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnailURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail request: %w", err)
	}

	if strings.Contains(thumbnailURL, "googleapis.com") {
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("thumbnail request failed with status: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// handleAPIError processes Drive API error responses
func (s *Service) handleAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return sourceError("API request failed with status %d", resp.StatusCode)
	}

	var errorResponse struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return sourceError("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return sourceError("google Drive API error (%d): %s - %s",
		resp.StatusCode, errorResponse.Error.Status, errorResponse.Error.Message)
}

package models

// DriveFile represents a single file's metadata as returned by the Drive API.
// Custom cards are converted into this shape before rendering so the frontend
// deals with one card type only.
type DriveFile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mimeType"`
	ThumbnailLink string `json:"thumbnailLink,omitempty"`
	WebViewLink   string `json:"webViewLink,omitempty"`
	ModifiedTime  string `json:"modifiedTime,omitempty"`
	IconLink      string `json:"iconLink,omitempty"`
	Size          string `json:"size,omitempty"` // Drive returns byte counts as strings
}

// DriveFolder is one matched "Completed" subfolder with its immediate children.
// Rebuilt from the Drive API on every dashboard request, never persisted.
type DriveFolder struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Files []DriveFile `json:"files"`
}

package drive

// apiFile mirrors the fields requested from the Drive v3 files endpoint.
type apiFile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mimeType"`
	ThumbnailLink string `json:"thumbnailLink"`
	WebViewLink   string `json:"webViewLink"`
	ModifiedTime  string `json:"modifiedTime"`
	IconLink      string `json:"iconLink"`
	Size          string `json:"size"`
}

type apiResponse struct {
	Files         []apiFile `json:"files"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

package models

// CustomCard is a user-added link rendered alongside Drive-native files.
// FolderID references a DriveFolder; empty means the card is unassigned.
type CustomCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	MimeType  string `json:"mimeType"`
	FolderID  string `json:"folderId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToDriveFile converts a custom card into the common file shape. The card's
// URL becomes the web view link and its creation time stands in for the
// modified time.
func (c CustomCard) ToDriveFile() DriveFile {
	return DriveFile{
		ID:           c.ID,
		Name:         c.Name,
		MimeType:     c.MimeType,
		WebViewLink:  c.URL,
		ModifiedTime: c.CreatedAt,
	}
}

package cards

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hackboard-backend/pkg/models"
)

// FileStore keeps each record as one pretty-printed JSON document on disk.
// Reads of a missing or unparseable file yield the empty value; writes
// rewrite the whole document.
type FileStore struct {
	hiddenPath string
	customPath string
}

type hiddenDocument struct {
	HiddenIDs []string `json:"hiddenIds"`
}

type cardsDocument struct {
	Cards []models.CustomCard `json:"cards"`
}

// NewFileStore creates a file-backed store writing to the given paths.
func NewFileStore(hiddenPath, customPath string) *FileStore {
	return &FileStore{hiddenPath: hiddenPath, customPath: customPath}
}

func (s *FileStore) HiddenIDs(_ context.Context) ([]string, error) {
	raw, err := os.ReadFile(s.hiddenPath)
	if err != nil {
		return []string{}, nil
	}

	var doc hiddenDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []string{}, nil
	}
	if doc.HiddenIDs == nil {
		return []string{}, nil
	}

	return doc.HiddenIDs, nil
}

func (s *FileStore) SaveHiddenIDs(_ context.Context, ids []string) error {
	return s.writeDocument(s.hiddenPath, hiddenDocument{HiddenIDs: ids})
}

func (s *FileStore) CustomCards(_ context.Context) ([]models.CustomCard, error) {
	raw, err := os.ReadFile(s.customPath)
	if err != nil {
		return []models.CustomCard{}, nil
	}

	var doc cardsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []models.CustomCard{}, nil
	}
	if doc.Cards == nil {
		return []models.CustomCard{}, nil
	}

	return doc.Cards, nil
}

func (s *FileStore) SaveCustomCards(_ context.Context, cards []models.CustomCard) error {
	return s.writeDocument(s.customPath, cardsDocument{Cards: cards})
}

func (s *FileStore) writeDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	return nil
}

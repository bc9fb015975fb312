package cards

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hackboard-backend/pkg/models"
)

// Actions accepted by SetHidden.
const (
	ActionHide = "hide"
	ActionShow = "show"
)

// Service implements the card and hidden-state mutations on top of a Store.
// Every mutation reads the full record, applies the change and writes the
// full record back; last writer wins under concurrent use.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService creates a card service backed by the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// HiddenIDs returns the persisted hidden-ID list.
func (s *Service) HiddenIDs(ctx context.Context) ([]string, error) {
	return s.store.HiddenIDs(ctx)
}

// CustomCards returns the persisted custom-card list.
func (s *Service) CustomCards(ctx context.Context) ([]models.CustomCard, error) {
	return s.store.CustomCards(ctx)
}

// SetHidden adds or removes an ID from the hidden set and returns the
// updated list. Showing an ID that is not hidden is a no-op success, so
// client retries stay safe.
func (s *Service) SetHidden(ctx context.Context, id, action string) ([]string, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if action != ActionHide && action != ActionShow {
		return nil, ErrInvalidAction
	}

	ids, err := s.store.HiddenIDs(ctx)
	if err != nil {
		return nil, err
	}

	// Set semantics: dedupe and preserve first-seen order.
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids)+1)
	for _, existing := range ids {
		if seen[existing] || (action == ActionShow && existing == id) {
			continue
		}
		seen[existing] = true
		result = append(result, existing)
	}
	if action == ActionHide && !seen[id] {
		result = append(result, id)
	}

	if err := s.store.SaveHiddenIDs(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddCard validates the draft fields, assigns the card its ID and creation
// timestamp, and appends it to the persisted list.
func (s *Service) AddCard(ctx context.Context, name, url, mimeType, folderID string) (*models.CustomCard, error) {
	switch {
	case name == "":
		return nil, ErrMissingName
	case url == "":
		return nil, ErrMissingURL
	case mimeType == "":
		return nil, ErrMissingMimeType
	}

	existing, err := s.store.CustomCards(ctx)
	if err != nil {
		return nil, err
	}

	card := models.CustomCard{
		ID:        s.newID(),
		Name:      name,
		URL:       url,
		MimeType:  mimeType,
		FolderID:  folderID,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	if err := s.store.SaveCustomCards(ctx, append(existing, card)); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard removes the card with the given ID and returns the updated
// list. Deleting an unknown ID is a no-op success.
func (s *Service) DeleteCard(ctx context.Context, id string) ([]models.CustomCard, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	existing, err := s.store.CustomCards(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.CustomCard, 0, len(existing))
	for _, c := range existing {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	if err := s.store.SaveCustomCards(ctx, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

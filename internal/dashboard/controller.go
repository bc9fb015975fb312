package dashboard

import (
	"context"
	"log"
	"sync"

	"hackboard-backend/pkg/models"
)

// Syncer persists overlay mutations. *cards.Service satisfies this.
type Syncer interface {
	SetHidden(ctx context.Context, id, action string) ([]string, error)
	AddCard(ctx context.Context, name, url, mimeType, folderID string) (*models.CustomCard, error)
	DeleteCard(ctx context.Context, id string) ([]models.CustomCard, error)
}

// Controller keeps in-memory mirrors of the hidden-ID set and custom-card
// list, applies mutations optimistically and dispatches them to the Syncer
// without blocking. A failed dispatch is logged and the local state is left
// as-is; there is no rollback, so local and persisted state can diverge
// until the next full reload.
type Controller struct {
	syncer Syncer

	mu     sync.RWMutex
	hidden map[string]bool
	cards  []models.CustomCard

	wg sync.WaitGroup
}

// NewController seeds a controller from the initial server-rendered values.
func NewController(syncer Syncer, initialHiddenIDs []string, initialCards []models.CustomCard) *Controller {
	hidden := make(map[string]bool, len(initialHiddenIDs))
	for _, id := range initialHiddenIDs {
		hidden[id] = true
	}

	cards := make([]models.CustomCard, len(initialCards))
	copy(cards, initialCards)

	return &Controller{
		syncer: syncer,
		hidden: hidden,
		cards:  cards,
	}
}

// ToggleHide flips the ID's hidden state locally, then dispatches the new
// state to the persistence layer. Returns true when the ID is now hidden.
func (ctl *Controller) ToggleHide(id string) bool {
	ctl.mu.Lock()
	nowHidden := !ctl.hidden[id]
	if nowHidden {
		ctl.hidden[id] = true
	} else {
		delete(ctl.hidden, id)
	}
	ctl.mu.Unlock()

	// "show" for an already-visible ID is an idempotent no-op server-side,
	// so the dispatch is always safe to retry.
	action := "show"
	if nowHidden {
		action = "hide"
	}
	ctl.dispatch(func(ctx context.Context) error {
		_, err := ctl.syncer.SetHidden(ctx, id, action)
		return err
	})

	return nowHidden
}

// AddCard sends the draft fields through the card service, which assigns
// the ID and timestamp, then appends the created card to the local mirror.
// Unlike the other mutations this one is not optimistic: the card cannot be
// rendered before the server names it.
func (ctl *Controller) AddCard(ctx context.Context, name, url, mimeType, folderID string) (*models.CustomCard, error) {
	card, err := ctl.syncer.AddCard(ctx, name, url, mimeType, folderID)
	if err != nil {
		return nil, err
	}

	ctl.mu.Lock()
	ctl.cards = append(ctl.cards, *card)
	ctl.mu.Unlock()

	return card, nil
}

// DeleteCard removes the card locally first, then dispatches the deletion.
// Unknown IDs are a no-op.
func (ctl *Controller) DeleteCard(id string) {
	ctl.mu.Lock()
	filtered := ctl.cards[:0]
	for _, c := range ctl.cards {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	ctl.cards = filtered
	ctl.mu.Unlock()

	ctl.dispatch(func(ctx context.Context) error {
		_, err := ctl.syncer.DeleteCard(ctx, id)
		return err
	})
}

// IsHidden reports the local hidden state for an ID.
func (ctl *Controller) IsHidden(id string) bool {
	ctl.mu.RLock()
	defer ctl.mu.RUnlock()
	return ctl.hidden[id]
}

// HiddenIDs returns a snapshot of the local hidden set.
func (ctl *Controller) HiddenIDs() []string {
	ctl.mu.RLock()
	defer ctl.mu.RUnlock()

	ids := make([]string, 0, len(ctl.hidden))
	for id := range ctl.hidden {
		ids = append(ids, id)
	}
	return ids
}

// CustomCards returns a snapshot of the local card list.
func (ctl *Controller) CustomCards() []models.CustomCard {
	ctl.mu.RLock()
	defer ctl.mu.RUnlock()

	out := make([]models.CustomCard, len(ctl.cards))
	copy(out, ctl.cards)
	return out
}

// Wait blocks until all dispatched persistence calls have finished. Used on
// shutdown and in tests.
func (ctl *Controller) Wait() {
	ctl.wg.Wait()
}

func (ctl *Controller) dispatch(fn func(context.Context) error) {
	ctl.wg.Add(1)
	go func() {
		defer ctl.wg.Done()
		if err := fn(context.Background()); err != nil {
			log.Printf("overlay sync failed: %v", err)
		}
	}()
}

package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackboard-backend/pkg/models"
)

// fakeSyncer records dispatched mutations and can be told to fail.
type fakeSyncer struct {
	mu         sync.Mutex
	setHidden  [][2]string // id, action pairs in dispatch order
	deleted    []string
	failAll    bool
	addedCards int
}

func (f *fakeSyncer) SetHidden(_ context.Context, id, action string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("store down")
	}
	f.setHidden = append(f.setHidden, [2]string{id, action})
	return nil, nil
}

func (f *fakeSyncer) AddCard(_ context.Context, name, url, mimeType, folderID string) (*models.CustomCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("store down")
	}
	f.addedCards++
	return &models.CustomCard{
		ID:       "server-id",
		Name:     name,
		URL:      url,
		MimeType: mimeType,
		FolderID: folderID,
	}, nil
}

func (f *fakeSyncer) DeleteCard(_ context.Context, id string) ([]models.CustomCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("store down")
	}
	f.deleted = append(f.deleted, id)
	return nil, nil
}

func TestController_ToggleHideIsOptimisticAndDispatches(t *testing.T) {
	syncer := &fakeSyncer{}
	ctl := NewController(syncer, nil, nil)

	nowHidden := ctl.ToggleHide("file1")

	assert.True(t, nowHidden)
	assert.True(t, ctl.IsHidden("file1"), "local state flips before the round-trip")

	ctl.Wait()
	require.Len(t, syncer.setHidden, 1)
	assert.Equal(t, [2]string{"file1", "hide"}, syncer.setHidden[0])
}

func TestController_ToggleHideTwiceRestoresOriginalState(t *testing.T) {
	syncer := &fakeSyncer{}
	ctl := NewController(syncer, []string{"file1"}, nil)

	assert.False(t, ctl.ToggleHide("file1"))
	ctl.Wait() // drain so the dispatch order below is deterministic
	assert.True(t, ctl.ToggleHide("file1"))

	assert.True(t, ctl.IsHidden("file1"))
	ctl.Wait()
	require.Len(t, syncer.setHidden, 2)
	assert.Equal(t, "show", syncer.setHidden[0][1])
	assert.Equal(t, "hide", syncer.setHidden[1][1])
}

func TestController_FailedDispatchDoesNotRollBack(t *testing.T) {
	// The current design accepts local/persisted divergence on failure.
	syncer := &fakeSyncer{failAll: true}
	ctl := NewController(syncer, nil, nil)

	ctl.ToggleHide("file1")
	ctl.Wait()

	assert.True(t, ctl.IsHidden("file1"))
}

func TestController_AddCardAppendsOnSuccessOnly(t *testing.T) {
	syncer := &fakeSyncer{}
	ctl := NewController(syncer, nil, nil)

	card, err := ctl.AddCard(context.Background(), "Repo", "https://example.com", "text/html", "f1")
	require.NoError(t, err)
	assert.Equal(t, "server-id", card.ID)
	require.Len(t, ctl.CustomCards(), 1)

	syncer.failAll = true
	_, err = ctl.AddCard(context.Background(), "Another", "https://example.com", "text/html", "f1")
	require.Error(t, err)
	assert.Len(t, ctl.CustomCards(), 1, "failed create must not appear locally")
}

func TestController_DeleteCardIsIdempotent(t *testing.T) {
	syncer := &fakeSyncer{}
	initial := []models.CustomCard{{ID: "c1"}, {ID: "c2"}}
	ctl := NewController(syncer, nil, initial)

	ctl.DeleteCard("c1")
	ctl.DeleteCard("c1") // unknown by now, still a no-op success

	cardList := ctl.CustomCards()
	require.Len(t, cardList, 1)
	assert.Equal(t, "c2", cardList[0].ID)

	ctl.Wait()
	assert.Equal(t, []string{"c1", "c1"}, syncer.deleted)
}

func TestController_SeedingCopiesInputs(t *testing.T) {
	initial := []models.CustomCard{{ID: "c1"}}
	ctl := NewController(&fakeSyncer{}, []string{"h1"}, initial)

	initial[0].ID = "mutated"

	cardList := ctl.CustomCards()
	require.Len(t, cardList, 1)
	assert.Equal(t, "c1", cardList[0].ID)
	assert.ElementsMatch(t, []string{"h1"}, ctl.HiddenIDs())
}

package resume

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/shared/storage/kv"
)

func TestLoadFallsBackToSeedWhenAbsent(t *testing.T) {
	backend := kv.NewMemoryStore()

	doc := Load(context.Background(), backend)

	assert.Equal(t, DefaultDocument(), doc)
}

func TestPersistRoundTrip(t *testing.T) {
	backend := kv.NewMemoryStore()
	store := NewStore(Load(context.Background(), backend), DefaultHistoryLimit)
	Attach(store, backend)

	store.UpdateSummary("persisted summary")
	store.AddExperience()

	restored := Load(context.Background(), backend)
	assert.Equal(t, "persisted summary", restored.Summary)
	require.Len(t, restored.Experience, 3)
	assert.Equal(t, "NEW ROLE", restored.Experience[0].Role)
}

func TestHistoryIsNotPersisted(t *testing.T) {
	backend := kv.NewMemoryStore()
	store := NewStore(Load(context.Background(), backend), DefaultHistoryLimit)
	Attach(store, backend)
	store.UpdateSummary("first")
	store.UpdateSummary("second")

	// A fresh process start: same backend, new store.
	fresh := NewStore(Load(context.Background(), backend), DefaultHistoryLimit)

	assert.Equal(t, "second", fresh.Snapshot().Summary)
	assert.False(t, fresh.Undo(), "rehydrated store must start with empty history")
}

func TestLoadFallsBackOnCorruptBlob(t *testing.T) {
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set(context.Background(), StorageKey, []byte("{not json")))

	doc := Load(context.Background(), backend)

	assert.Equal(t, DefaultDocument(), doc)
}

func TestLoadFallsBackOnSchemaMismatch(t *testing.T) {
	backend := kv.NewMemoryStore()
	// Valid JSON, wrong shape: summary must be a string.
	blob := []byte(`{"summary": 42, "experience": "nope"}`)
	require.NoError(t, backend.Set(context.Background(), StorageKey, blob))

	doc := Load(context.Background(), backend)

	assert.Equal(t, DefaultDocument(), doc)
}

func TestLoadRepairsMissingStructuralFields(t *testing.T) {
	backend := kv.NewMemoryStore()
	blob := []byte(`{"summary": "kept", "skills": [{"id": "s1", "name": "Go", "level": 80}]}`)
	require.NoError(t, backend.Set(context.Background(), StorageKey, blob))

	doc := Load(context.Background(), backend)

	assert.Equal(t, "kept", doc.Summary)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Go", doc.Skills[0].Name)
	assert.True(t, isSectionPermutation(doc.SectionOrder), "missing section order repaired")
	assert.Equal(t, 48, doc.Layout.SectionGap)
	assert.Equal(t, SkillsModeList, doc.Layout.SkillsMode)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Interests)
}

func TestLoadDropsDanglingActiveItem(t *testing.T) {
	backend := kv.NewMemoryStore()
	doc := DefaultDocument()
	stale := "deleted-item-id"
	doc.ActiveItemID = &stale
	blob, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, backend.Set(context.Background(), StorageKey, blob))

	restored := Load(context.Background(), backend)

	assert.Nil(t, restored.ActiveItemID)
}

func TestLoadKeepsActiveItemThatStillExists(t *testing.T) {
	backend := kv.NewMemoryStore()
	doc := DefaultDocument()
	active := doc.Skills[0].ID
	doc.ActiveItemID = &active
	blob, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, backend.Set(context.Background(), StorageKey, blob))

	restored := Load(context.Background(), backend)

	require.NotNil(t, restored.ActiveItemID)
	assert.Equal(t, active, *restored.ActiveItemID)
}

func TestPersistedBlobTracksLatestState(t *testing.T) {
	backend := kv.NewMemoryStore()
	store := NewStore(DefaultDocument(), DefaultHistoryLimit)
	Attach(store, backend)

	store.UpdateSummary("one")
	store.UpdateSummary("two")
	store.Undo()

	raw, err := backend.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	var persisted Document
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, "one", persisted.Summary, "persisted blob must follow undo")
}

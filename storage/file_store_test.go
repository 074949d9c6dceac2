package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	saved := []record{{ID: 1, Name: "Haircut & Style"}, {ID: 2, Name: "Manicure"}}
	require.NoError(t, store.Save(CollectionServices, saved))

	loaded := []record{}
	require.NoError(t, store.Load(CollectionServices, &loaded))
	assert.Equal(t, saved, loaded)
}

func TestFileStoreMissingKeyLeavesDestination(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	loaded := []record{}
	require.NoError(t, store.Load("never-written", &loaded))
	assert.Empty(t, loaded)
}

func TestFileStoreSaveReplacesWholeCollection(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(CollectionClients, []record{{ID: 1, Name: "Asha"}, {ID: 2, Name: "Meera"}}))
	require.NoError(t, store.Save(CollectionClients, []record{{ID: 2, Name: "Meera"}}))

	loaded := []record{}
	require.NoError(t, store.Load(CollectionClients, &loaded))
	assert.Equal(t, []record{{ID: 2, Name: "Meera"}}, loaded)
}

func TestFileStoreCorruptFileIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, CollectionOrders+".json"), []byte("{not json"), 0o644))

	loaded := []record{}
	err = store.Load(CollectionOrders, &loaded)
	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, CollectionOrders, persistenceErr.Key)
}

func TestMemoryStoreIsolatesValues(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(CollectionOrders, []record{{ID: 1, Name: "Order"}}))

	loaded := []record{}
	require.NoError(t, store.Load(CollectionOrders, &loaded))
	require.Len(t, loaded, 1)

	// Mutating what we loaded must not leak back into the store
	loaded[0].Name = "changed"
	reloaded := []record{}
	require.NoError(t, store.Load(CollectionOrders, &reloaded))
	assert.Equal(t, "Order", reloaded[0].Name)
}

package directors

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"jsonstore/src/engine"
	"jsonstore/src/settings"
)

func newTestService(t *testing.T) *DocumentService {
	t.Helper()
	logger := zaptest.NewLogger(t).Sugar()
	store := engine.NewDocumentStore(filepath.Join(t.TempDir(), "datastore.db"), logger)
	return NewDocumentService(store, logger, settings.GetSettings())
}

func TestServiceSaveAndGet(t *testing.T) {
	service := newTestService(t)

	doc, err := service.SaveDocument("person", engine.Document{"name": "Craig"})
	require.NoError(t, err)
	require.Contains(t, doc, engine.FieldID)

	loaded, err := service.GetDocument("person", doc[engine.FieldID].(string))
	require.NoError(t, err)
	assert.Equal(t, "Craig", loaded["name"])
}

func TestServicePreservesNotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetDocument("person", "x")
	require.Error(t, err)
	assert.True(t, engine.IsNotFound(err))

	err = service.RemoveDocument("person", "x")
	assert.True(t, engine.IsNotFound(err))

	err = service.RemoveType("person")
	assert.True(t, engine.IsNotFound(err))

	// Wrapped errors still satisfy IsNotFound
	err = service.RemoveAllDocuments("person")
	require.Error(t, err)
	assert.True(t, engine.IsNotFound(err))
	assert.Contains(t, err.Error(), "person")
}

func TestServiceRemoveAllAndListings(t *testing.T) {
	service := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := service.SaveDocument("person", nil)
		require.NoError(t, err)
	}
	_, err := service.SaveDocument("animal", nil)
	require.NoError(t, err)

	types, err := service.ListDocumentTypes()
	require.NoError(t, err)
	assert.Len(t, types, 2)

	ids, err := service.ListDocumentIDs("person")
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	require.NoError(t, service.RemoveAllDocuments("person"))
	ids, err = service.ListDocumentIDs("person")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

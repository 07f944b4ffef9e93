package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func testDocument(id, name, content string) *domain.StoredDocument {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.StoredDocument{
		ID:        id,
		Name:      name,
		Content:   content,
		Revision:  "rev-" + id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFileName), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.DocumentStore().Save(ctx, testDocument("d1", "notes", "<p>x</p>")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	doc, err := reopened.DocumentStore().Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", doc.Content)

	var versions int
	require.NoError(t, reopened.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&versions))
	assert.Equal(t, 1, versions)
}

func TestMigrate_SkipsAppliedAndUnnumbered(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"001_documents.up.sql": {Data: []byte("SELECT broken syntax here")},
		"002_extra.up.sql":     {Data: []byte("CREATE TABLE extra (id TEXT)")},
		"README.up.sql":        {Data: []byte("garbage")},
		"002_extra.down.sql":   {Data: []byte("DROP TABLE extra")},
	}
	require.NoError(t, store.migrate(fsys))

	var name string
	require.NoError(t, store.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'extra'").Scan(&name))
	assert.Equal(t, "extra", name)
}

func TestMigrate_FailedScriptNotRecorded(t *testing.T) {
	store := setupTestStore(t)

	err := store.migrate(fstest.MapFS{
		"005_bad.up.sql": {Data: []byte("NOT SQL")},
	})
	require.Error(t, err)

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = 5").Scan(&count))
	assert.Zero(t, count)
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	docs := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	original := testDocument("d1", "notes", "<p>hello</p>")
	require.NoError(t, docs.Save(ctx, original))

	got, err := docs.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Content, got.Content)
	assert.Equal(t, original.Revision, got.Revision)
	assert.True(t, original.CreatedAt.Equal(got.CreatedAt))

	byName, err := docs.GetByName(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, "d1", byName.ID)
}

func TestDocumentStore_SaveUpdates(t *testing.T) {
	docs := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	doc := testDocument("d1", "notes", "<p>one</p>")
	require.NoError(t, docs.Save(ctx, doc))

	doc.Content = "<p>two</p>"
	doc.Revision = "rev-2"
	doc.UpdatedAt = doc.UpdatedAt.Add(time.Hour)
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "<p>two</p>", got.Content)
	assert.Equal(t, "rev-2", got.Revision)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestDocumentStore_DuplicateName(t *testing.T) {
	docs := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.Save(ctx, testDocument("d1", "notes", "a")))
	assert.Error(t, docs.Save(ctx, testDocument("d2", "notes", "b")))
}

func TestDocumentStore_NotFound(t *testing.T) {
	docs := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	_, err := docs.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = docs.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListOrderedByName(t *testing.T) {
	docs := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.Save(ctx, testDocument("d1", "zeta", "z")))
	require.NoError(t, docs.Save(ctx, testDocument("d2", "alpha", "a")))

	list, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "zeta", list[1].Name)
}

func TestDocumentStore_ListEmpty(t *testing.T) {
	list, err := setupTestStore(t).DocumentStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDocumentStore_Delete(t *testing.T) {
	docs := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.Save(ctx, testDocument("d1", "notes", "x")))
	require.NoError(t, docs.Delete(ctx, "d1"))
	require.NoError(t, docs.Delete(ctx, "d1"))

	_, err := docs.Get(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

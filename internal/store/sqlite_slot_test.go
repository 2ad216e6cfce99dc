package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	slot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "notes.sqlite3"))
	assert.Nil(t, err)
	defer slot.Close()

	_, ok, err := slot.Read()
	assert.Nil(t, err)
	assert.False(t, ok)

	assert.Nil(t, slot.Write([]byte(`[{"id":"a"}]`)))

	data, ok, err := slot.Read()
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(data))

	// 整体覆盖写入，最后写入生效
	assert.Nil(t, slot.Write([]byte(`[]`)))
	data, ok, err = slot.Read()
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(data))
}

func TestSQLiteBackedStore(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Type: "sqlite", Path: filepath.Join(t.TempDir(), "notes.sqlite3")}

	s, err := NewNoteStore(cfg, zap.NewNop())
	assert.Nil(t, err)

	a, err := s.Create(ctx, "sqlite", "backend")
	assert.Nil(t, err)
	assert.Nil(t, s.Close())

	reloaded, err := NewNoteStore(cfg, zap.NewNop())
	assert.Nil(t, err)
	defer reloaded.Close()

	got, found := reloaded.Find(ctx, a.ID)
	assert.True(t, found)
	assert.Equal(t, "sqlite", got.Title)
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *NoteStore {
	t.Helper()
	s, err := NewNoteStore(Config{Type: "file", DataDir: t.TempDir()}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCreatePrependsNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.Create(ctx, "Groceries", "milk, eggs")
	assert.Nil(t, err)

	dump.P(first)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Groceries", first.Title)
	assert.Equal(t, "milk, eggs", first.Content)

	second, err := s.Create(ctx, "Ideas", "")
	assert.Nil(t, err)

	all := s.All(ctx)
	assert.Equal(t, 2, len(all))
	// 最新创建的排在最前
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestUpdateKeepsIdentityAndPosition(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.Create(ctx, "A", "aaa")
	b, _ := s.Create(ctx, "B", "bbb")

	updated, err := s.Update(ctx, a.ID, "A2", "aaa2")
	assert.Nil(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "A2", updated.Title)

	all := s.All(ctx)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)
	assert.Equal(t, "A2", all[1].Title)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.Create(ctx, "A", "")
	b, _ := s.Create(ctx, "B", "")

	removed, err := s.Delete(ctx, a.ID)
	assert.Nil(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, s.Len(ctx))

	_, found := s.Find(ctx, a.ID)
	assert.False(t, found)
	_, found = s.Find(ctx, b.ID)
	assert.True(t, found)

	// 删除不存在的 ID 是无操作
	removed, err = s.Delete(ctx, a.ID)
	assert.Nil(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, s.Len(ctx))
}

func TestCollectionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := Config{Type: "file", DataDir: dir}

	s, err := NewNoteStore(cfg, zap.NewNop())
	assert.Nil(t, err)

	a, _ := s.Create(ctx, "持久化", "槽内容")
	_, _ = s.Create(ctx, "B", "second")

	// 重新打开同一个槽，集合原样恢复
	reloaded, err := NewNoteStore(cfg, zap.NewNop())
	assert.Nil(t, err)
	assert.Equal(t, 2, reloaded.Len(ctx))

	got, found := reloaded.Find(ctx, a.ID)
	assert.True(t, found)
	assert.Equal(t, "持久化", got.Title)
	assert.Equal(t, "槽内容", got.Content)
	assert.True(t, got.Date.Equal(a.Date))
}

func TestMalformedSlotYieldsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	err := os.WriteFile(defaultFilePath(dir), []byte("{not json"), 0644)
	assert.Nil(t, err)

	s, err := NewNoteStore(Config{Type: "file", DataDir: dir}, zap.NewNop())
	assert.Nil(t, err)
	assert.Equal(t, 0, s.Len(ctx))

	// 下一次写入覆盖损坏内容
	_, err = s.Create(ctx, "fresh", "")
	assert.Nil(t, err)

	reloaded, err := NewNoteStore(Config{Type: "file", DataDir: dir}, zap.NewNop())
	assert.Nil(t, err)
	assert.Equal(t, 1, reloaded.Len(ctx))
}

func TestAbsentSlotYieldsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	assert.Equal(t, 0, s.Len(ctx))
	assert.Equal(t, 0, len(s.All(ctx)))
}

func TestUnknownStorageType(t *testing.T) {
	_, err := NewNoteStore(Config{Type: "redis"}, zap.NewNop())
	assert.NotNil(t, err)
}

func TestFileSlotWriteIsAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(filepath.Join(dir, "notes.json"))
	assert.Nil(t, err)

	_, ok, err := slot.Read()
	assert.Nil(t, err)
	assert.False(t, ok)

	assert.Nil(t, slot.Write([]byte(`[{"id":"1"}]`)))

	data, ok, err := slot.Read()
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	// 没有残留的临时文件
	_, err = os.Stat(slot.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

package service

import (
	"context"
	"testing"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSessionService(t *testing.T) *SessionService {
	t.Helper()
	st, err := store.NewNoteStore(store.Config{Type: "file", DataDir: t.TempDir()}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return NewSessionService(NewNoteService(st, zap.NewNop()), zap.NewNop())
}

func TestInitialSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	snap := s.Snapshot(ctx)
	assert.Equal(t, "idle", snap.Mode)
	assert.Empty(t, snap.SelectedID)
	assert.Nil(t, snap.Draft)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, 0, len(snap.Notes))
}

func TestComposeSaveFlow(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	snap := s.Compose(ctx)
	assert.Equal(t, "composing", snap.Mode)
	assert.NotNil(t, snap.Draft)
	assert.Empty(t, snap.Draft.Title)

	snap, err := s.Save(ctx, "First note", "hello")
	assert.Nil(t, err)
	assert.Equal(t, "idle", snap.Mode)
	assert.Nil(t, snap.Draft)
	// 保存后选中新建的笔记
	assert.NotEmpty(t, snap.SelectedID)
	assert.NotNil(t, snap.Selected)
	assert.Equal(t, "First note", snap.Selected.Title)
	assert.Equal(t, 1, len(snap.Notes))
}

func TestSaveEmptyTitleKeepsFormOpen(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)

	_, err := s.Save(ctx, "   ", "draft body")
	assert.ErrorIs(t, err, domain.ErrTitleEmpty)

	// 被拒绝的保存不转移状态，草稿保留最后的输入
	snap := s.Snapshot(ctx)
	assert.Equal(t, "composing", snap.Mode)
	assert.NotNil(t, snap.Draft)
	assert.Equal(t, "   ", snap.Draft.Title)
	assert.Equal(t, "draft body", snap.Draft.Content)
	assert.Equal(t, 0, len(snap.Notes))
}

func TestEditSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)
	snap, err := s.Save(ctx, "Original", "old body")
	assert.Nil(t, err)
	noteID := snap.SelectedID

	snap, err = s.Edit(ctx)
	assert.Nil(t, err)
	assert.Equal(t, "editing", snap.Mode)
	// 草稿以当前内容填充
	assert.Equal(t, "Original", snap.Draft.Title)
	assert.Equal(t, "old body", snap.Draft.Content)

	snap, err = s.Save(ctx, "Renamed", "new body")
	assert.Nil(t, err)
	assert.Equal(t, "idle", snap.Mode)
	assert.Equal(t, noteID, snap.SelectedID)
	assert.Equal(t, "Renamed", snap.Selected.Title)
	assert.Equal(t, 1, len(snap.Notes))
}

func TestEditRequiresSelection(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	_, err := s.Edit(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNoSelection)

	s.Compose(ctx)
	_, err = s.Edit(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionTransition)
}

func TestSelectUnknownNote(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	_, err := s.Select(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestCancelComposeRestoresSelection(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)
	snap, err := s.Save(ctx, "Kept", "")
	assert.Nil(t, err)
	kept := snap.SelectedID

	// 新建再取消，回到之前的选择
	snap = s.Compose(ctx)
	assert.Empty(t, snap.SelectedID)

	snap, err = s.Cancel(ctx)
	assert.Nil(t, err)
	assert.Equal(t, "idle", snap.Mode)
	assert.Equal(t, kept, snap.SelectedID)
	assert.Nil(t, snap.Draft)
}

func TestCancelEditKeepsSelectionAndNote(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)
	snap, _ := s.Save(ctx, "Stable", "unchanged")
	noteID := snap.SelectedID

	_, err := s.Edit(ctx)
	assert.Nil(t, err)
	_, err = s.Save(ctx, "", "typed but discarded")
	assert.ErrorIs(t, err, domain.ErrTitleEmpty)

	snap, err = s.Cancel(ctx)
	assert.Nil(t, err)
	assert.Equal(t, "idle", snap.Mode)
	assert.Equal(t, noteID, snap.SelectedID)
	assert.Equal(t, "Stable", snap.Selected.Title)
	assert.Equal(t, "unchanged", snap.Selected.Content)
}

func TestCancelFromIdleRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	_, err := s.Cancel(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionTransition)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)
	snap, _ := s.Save(ctx, "Doomed", "")
	noteID := snap.SelectedID

	// confirm=false 是无操作
	snap, err := s.Delete(ctx, false)
	assert.Nil(t, err)
	assert.Equal(t, noteID, snap.SelectedID)
	assert.Equal(t, 1, len(snap.Notes))

	snap, err = s.Delete(ctx, true)
	assert.Nil(t, err)
	assert.Empty(t, snap.SelectedID)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, 0, len(snap.Notes))
}

func TestDeleteWithoutSelection(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	_, err := s.Delete(ctx, true)
	assert.ErrorIs(t, err, domain.ErrSessionNoSelection)
}

func TestSearchFiltersSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)
	_, _ = s.Save(ctx, "Shopping", "apples")
	s.Compose(ctx)
	_, _ = s.Save(ctx, "Work", "報告 review")

	snap := s.Search(ctx, "shopping")
	assert.Equal(t, "shopping", snap.Keyword)
	assert.Equal(t, 1, len(snap.Notes))
	assert.Equal(t, "Shopping", snap.Notes[0].Title)

	// 过滤串保留在后续快照中
	snap = s.Snapshot(ctx)
	assert.Equal(t, "shopping", snap.Keyword)

	snap = s.Search(ctx, "")
	assert.Equal(t, 2, len(snap.Notes))
}

func TestComposeWhileEditingDiscardsDraft(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionService(t)

	s.Compose(ctx)
	_, _ = s.Save(ctx, "Note", "content")

	_, err := s.Edit(ctx)
	assert.Nil(t, err)

	// 编辑中直接新建：编辑草稿被丢弃，打开空白草稿
	snap := s.Compose(ctx)
	assert.Equal(t, "composing", snap.Mode)
	assert.Empty(t, snap.Draft.Title)
	assert.Empty(t, snap.SelectedID)
}

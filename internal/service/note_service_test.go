package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/store"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestNoteService(t *testing.T) *NoteService {
	t.Helper()
	st, err := store.NewNoteStore(store.Config{Type: "file", DataDir: t.TempDir()}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return NewNoteService(st, zap.NewNop())
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	note, err := svc.Create(ctx, "Groceries", "milk, eggs, bread")
	assert.Nil(t, err)
	assert.NotEmpty(t, note.ID)

	got, err := svc.Get(ctx, note.ID)
	assert.Nil(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "milk, eggs, bread", got.Content)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	tests := []struct {
		name    string
		title   string
		content string
		wantErr error
	}{
		{"empty title", "", "body", domain.ErrTitleEmpty},
		{"whitespace title", "   \t ", "body", domain.ErrTitleEmpty},
		{"title over limit", strings.Repeat("x", domain.TitleMaxLen+1), "", ErrTitleTooLong},
		{"content over limit", "ok", strings.Repeat("y", domain.ContentMaxLen+1), ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.title, tt.content)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// 上限按字符数而不是字节数
	wide := strings.Repeat("笔", domain.TitleMaxLen)
	note, err := svc.Create(ctx, wide, "")
	assert.Nil(t, err)
	assert.Equal(t, wide, note.Title)

	assert.Equal(t, 1, len(svc.List(ctx, "")))
}

func TestCreateTrimsTitle(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	note, err := svc.Create(ctx, "  Trimmed  ", "body")
	assert.Nil(t, err)
	assert.Equal(t, "Trimmed", note.Title)
}

func TestListOrderNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	a, _ := svc.Create(ctx, "A", "")
	b, _ := svc.Create(ctx, "B", "")

	list := svc.List(ctx, "")
	assert.Equal(t, 2, len(list))
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestUpdateAbsentNote(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	_, err := svc.Update(ctx, "missing", "Title", "")
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	removed, err := svc.Delete(ctx, "missing")
	assert.Nil(t, err)
	assert.False(t, removed)
}

func TestListKeywordFilter(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	_, _ = svc.Create(ctx, "Shopping list", "apples and MILK")
	_, _ = svc.Create(ctx, "Meeting notes", "quarterly review")
	_, _ = svc.Create(ctx, "Milk recipes", "pancakes")

	tests := []struct {
		keyword string
		want    int
	}{
		{"milk", 2},
		{"MILK", 2},
		{"  milk  ", 2},
		{"quarterly", 1},
		{"", 3},
		{"nothing-matches", 0},
	}

	for _, tt := range tests {
		got := svc.List(ctx, tt.keyword)
		assert.Equal(t, tt.want, len(got), "keyword %q", tt.keyword)
	}
}

func TestPropertyFilterNotes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every match contains the query as substring", prop.ForAll(
		func(titles []string, query string) bool {
			notes := make([]*domain.Note, 0, len(titles))
			for _, title := range titles {
				notes = append(notes, &domain.Note{Title: title})
			}

			q := strings.ToLower(strings.TrimSpace(query))
			got := FilterNotes(notes, query)

			if q == "" {
				return len(got) == len(notes)
			}
			for _, n := range got {
				if !strings.Contains(strings.ToLower(n.Title), q) &&
					!strings.Contains(strings.ToLower(n.Content), q) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.Property("filter result is an ordered subsequence", prop.ForAll(
		func(titles []string, query string) bool {
			notes := make([]*domain.Note, 0, len(titles))
			for i, title := range titles {
				notes = append(notes, &domain.Note{ID: string(rune('a'+i%26)) + title, Title: title})
			}

			got := FilterNotes(notes, query)
			if len(got) > len(notes) {
				return false
			}

			// 结果保持输入顺序
			idx := 0
			for _, n := range got {
				found := false
				for ; idx < len(notes); idx++ {
					if notes[idx] == n {
						found = true
						idx++
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestPropertyCreatedIDsUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	seen := make(map[string]bool)
	properties.Property("every created note gets a fresh id", prop.ForAll(
		func(title string) bool {
			note, err := svc.Create(ctx, title+"!", "")
			if err != nil {
				return false
			}
			if seen[note.ID] {
				return false
			}
			seen[note.ID] = true
			return true
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

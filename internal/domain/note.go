// Package domain defines the core entities and contracts of the note
// management system.
// Package domain 定义笔记管理系统的核心实体与契约
package domain

import (
	"context"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/timex"

	"github.com/pkg/errors"
)

// Limits of the note fields, counted in Unicode runes.
// 笔记字段上限，按 Unicode 字符计算
const (
	TitleMaxLen   = 100
	ContentMaxLen = 4000
)

// Note is the sole persisted entity: a titled, timestamped text record.
// Note 是唯一持久化实体：带标题和时间戳的文本记录
type Note struct {
	// ID is unique within the collection and immutable once assigned.
	ID string `json:"id"`
	// Title is required and non-empty after trimming.
	Title string `json:"title"`
	// Content is optional and may contain newlines.
	Content string `json:"content"`
	// Date is the last-modified timestamp, refreshed on every save.
	Date timex.Time `json:"date"`
}

// Clone returns an independent copy so callers can never mutate the
// canonical collection through a returned pointer.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

// Domain errors shared by the store and service layers.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrTitleEmpty   = errors.New("note title is empty after trimming")
)

// NoteStore owns the canonical ordered note collection and mirrors it to a
// durable slot after every mutation. Ordering invariant: newly created notes
// are prepended; updates keep their position.
// NoteStore 持有有序笔记集合，并在每次变更后整体写入持久化槽
type NoteStore interface {
	// All returns the collection in order, most recently created first.
	All(ctx context.Context) []*Note
	// Find returns the note with the given id, or false when absent.
	Find(ctx context.Context, id string) (*Note, bool)
	// Create assigns a fresh unique id and the current timestamp, prepends
	// the note and persists the collection.
	Create(ctx context.Context, title, content string) (*Note, error)
	// Update overwrites title and content and refreshes the date of the
	// note with the given id, preserving its position. Absent id is a
	// no-op returning ErrNoteNotFound.
	Update(ctx context.Context, id, title, content string) (*Note, error)
	// Delete removes the note with the given id. It reports whether a note
	// was actually removed; deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) (bool, error)
	// Len returns the current collection size.
	Len(ctx context.Context) int
}

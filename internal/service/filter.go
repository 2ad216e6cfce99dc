package service

import (
	"strings"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
)

// FilterNotes returns the subsequence of notes whose title or content
// contains the trimmed query as a case-insensitive substring. An empty
// query matches everything. The input is never mutated and order is
// preserved; the result is recomputed per request from current state.
// FilterNotes 返回标题或内容包含查询子串（忽略大小写）的笔记子序列
func FilterNotes(notes []*domain.Note, query string) []*domain.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes
	}

	out := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

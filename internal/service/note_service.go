// Package service implements the business operations on top of the store:
// note CRUD with validation, the search filter and the selection/edit
// state machine.
// Package service 在存储层之上实现业务操作
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/dto"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/convert"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Validation errors raised on top of the domain limits.
var (
	ErrTitleTooLong   = errors.New("note title exceeds the maximum length")
	ErrContentTooLong = errors.New("note content exceeds the maximum length")
)

// NoteService validates input and drives the note store. All derived data
// (filtered lists) is computed per call, never cached.
type NoteService struct {
	store  domain.NoteStore
	logger *zap.Logger
}

func NewNoteService(store domain.NoteStore, lg *zap.Logger) *NoteService {
	return &NoteService{store: store, logger: lg}
}

// List returns the collection filtered by keyword, in collection order.
func (s *NoteService) List(ctx context.Context, keyword string) []*dto.NoteDTO {
	notes := FilterNotes(s.store.All(ctx), keyword)
	out := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteDTO(n))
	}
	return out
}

// Get returns one note or domain.ErrNoteNotFound.
func (s *NoteService) Get(ctx context.Context, id string) (*dto.NoteDTO, error) {
	n, ok := s.store.Find(ctx, id)
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return toNoteDTO(n), nil
}

// Create validates the draft and prepends a new note. The stored title is
// the trimmed form; a whitespace-only title is never persisted.
func (s *NoteService) Create(ctx context.Context, title, content string) (*dto.NoteDTO, error) {
	title, err := s.validate(title, content)
	if err != nil {
		return nil, err
	}

	n, err := s.store.Create(ctx, title, content)
	if err != nil {
		return nil, err
	}
	s.logger.Info("note created",
		zap.String(logger.FieldNoteID, n.ID),
		zap.Int(logger.FieldCount, s.store.Len(ctx)))
	return toNoteDTO(n), nil
}

// Update validates the draft and overwrites the note, keeping id and
// position. Absent id yields domain.ErrNoteNotFound.
func (s *NoteService) Update(ctx context.Context, id, title, content string) (*dto.NoteDTO, error) {
	title, err := s.validate(title, content)
	if err != nil {
		return nil, err
	}

	n, err := s.store.Update(ctx, id, title, content)
	if err != nil {
		return nil, err
	}
	s.logger.Info("note updated", zap.String(logger.FieldNoteID, n.ID))
	return toNoteDTO(n), nil
}

// Delete removes the note; deleting an absent id is a no-op and reports
// removed=false without an error.
func (s *NoteService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return removed, err
	}
	if removed {
		s.logger.Info("note deleted",
			zap.String(logger.FieldNoteID, id),
			zap.Int(logger.FieldCount, s.store.Len(ctx)))
	}
	return removed, nil
}

// validate trims the title and enforces the field limits in runes.
// validate 去除标题空白并按字符数检查上限
func (s *NoteService) validate(title, content string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.ErrTitleEmpty
	}
	if utf8.RuneCountInString(title) > domain.TitleMaxLen {
		return "", ErrTitleTooLong
	}
	if utf8.RuneCountInString(content) > domain.ContentMaxLen {
		return "", ErrContentTooLong
	}
	return title, nil
}

func toNoteDTO(n *domain.Note) *dto.NoteDTO {
	d := &dto.NoteDTO{}
	convert.StructAssign(n, d)
	return d
}

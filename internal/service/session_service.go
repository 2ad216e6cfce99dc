package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/dto"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/logger"

	"go.uber.org/zap"
)

// SessionService is the selection/edit state machine of the single user
// session. State is ephemeral: it lives for the process lifetime and is
// never persisted. The machine has no terminal state.
//
// States: Idle(selectedID?), Composing, Editing(selectedID).
// SessionService 是单用户会话的选择/编辑状态机，状态短暂且永不持久化
type SessionService struct {
	mu    sync.Mutex
	notes *NoteService

	state domain.Session
	// prevSelectedID is the selection stashed when composing starts so
	// cancel can revert to it.
	// prevSelectedID 进入新建态时暂存的选择，取消时恢复
	prevSelectedID string

	logger *zap.Logger
}

func NewSessionService(notes *NoteService, lg *zap.Logger) *SessionService {
	return &SessionService{
		notes:  notes,
		state:  domain.Session{Mode: domain.ModeIdle},
		logger: lg,
	}
}

// Snapshot returns the full view state: machine state, draft, filter and
// the derived note list, recomputed from current state.
func (s *SessionService) Snapshot(ctx context.Context) *dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(ctx)
}

// Compose enters the Composing state: prior selection and draft are
// cleared, an empty draft is opened. Allowed from any state; the stashed
// selection lets cancel revert.
// Compose 进入新建态：清空选择与草稿，打开空白草稿
func (s *SessionService) Compose(ctx context.Context) *dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode == domain.ModeIdle {
		s.prevSelectedID = s.state.SelectedID
	}
	s.state.Mode = domain.ModeComposing
	s.state.SelectedID = ""
	s.state.Draft = &domain.Draft{}

	s.logger.Debug("session compose", zap.String(logger.FieldMode, string(s.state.Mode)))
	return s.snapshotLocked(ctx)
}

// Select shows a note in the detail view and discards any edit draft.
// Selecting an unknown id yields domain.ErrNoteNotFound.
// Select 选中一条笔记用于详情展示，并丢弃编辑草稿
func (s *SessionService) Select(ctx context.Context, id string) (*dto.SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.notes.Get(ctx, id); err != nil {
		return nil, err
	}

	s.state.Mode = domain.ModeIdle
	s.state.SelectedID = id
	s.prevSelectedID = ""
	s.state.Draft = nil
	return s.snapshotLocked(ctx), nil
}

// Edit enters the Editing state for the currently selected note; the draft
// is populated from the note's current title and content.
// Edit 对当前选中的笔记进入编辑态，草稿以笔记当前内容填充
func (s *SessionService) Edit(ctx context.Context) (*dto.SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != domain.ModeIdle {
		return nil, domain.ErrSessionTransition
	}
	if s.state.SelectedID == "" {
		return nil, domain.ErrSessionNoSelection
	}

	note, err := s.notes.Get(ctx, s.state.SelectedID)
	if err != nil {
		return nil, err
	}

	s.state.Mode = domain.ModeEditing
	s.state.Draft = &domain.Draft{Title: note.Title, Content: note.Content}
	return s.snapshotLocked(ctx), nil
}

// Save commits the draft: create while Composing, update while Editing.
// A title that trims to empty rejects the save with no transition and no
// persistence; the draft and mode are retained so the form stays open.
// Save 提交草稿；标题去空白后为空时拒绝保存，状态与草稿保持不变
func (s *SessionService) Save(ctx context.Context, title, content string) (*dto.SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != domain.ModeComposing && s.state.Mode != domain.ModeEditing {
		return nil, domain.ErrSessionTransition
	}

	// The draft always reflects the latest form content, including a
	// rejected attempt.
	// 草稿始终反映最新表单内容，包括被拒绝的尝试
	s.state.Draft = &domain.Draft{Title: title, Content: content}

	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrTitleEmpty
	}

	var (
		saved *dto.NoteDTO
		err   error
	)
	if s.state.Mode == domain.ModeComposing {
		saved, err = s.notes.Create(ctx, title, content)
	} else {
		saved, err = s.notes.Update(ctx, s.state.SelectedID, title, content)
	}
	if err != nil {
		return nil, err
	}

	s.state.Mode = domain.ModeIdle
	s.state.SelectedID = saved.ID
	s.prevSelectedID = ""
	s.state.Draft = nil

	s.logger.Info("session draft saved", zap.String(logger.FieldNoteID, saved.ID))
	return s.snapshotLocked(ctx), nil
}

// Cancel discards the draft and reverts to the prior selection without
// persisting anything.
// Cancel 丢弃草稿并恢复之前的选择，不做任何持久化
func (s *SessionService) Cancel(ctx context.Context) (*dto.SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.Mode {
	case domain.ModeComposing:
		s.state.SelectedID = s.prevSelectedID
	case domain.ModeEditing:
		// selection stays on the note that was being edited
	default:
		return nil, domain.ErrSessionTransition
	}

	s.state.Mode = domain.ModeIdle
	s.prevSelectedID = ""
	s.state.Draft = nil
	return s.snapshotLocked(ctx), nil
}

// Delete removes the selected note after explicit confirmation. Without
// confirmation it is a no-op. On success the selection is cleared.
// Delete 确认后删除选中笔记；未确认时不做任何事
func (s *SessionService) Delete(ctx context.Context, confirm bool) (*dto.SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Mode != domain.ModeIdle {
		return nil, domain.ErrSessionTransition
	}
	if s.state.SelectedID == "" {
		return nil, domain.ErrSessionNoSelection
	}
	if !confirm {
		return s.snapshotLocked(ctx), nil
	}

	if _, err := s.notes.Delete(ctx, s.state.SelectedID); err != nil {
		return nil, err
	}
	s.state.SelectedID = ""
	return s.snapshotLocked(ctx), nil
}

// Search sets the sidebar filter string; allowed in any state.
func (s *SessionService) Search(ctx context.Context, keyword string) *dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Keyword = keyword
	return s.snapshotLocked(ctx)
}

// snapshotLocked builds the view DTO. Caller holds the lock.
func (s *SessionService) snapshotLocked(ctx context.Context) *dto.SessionDTO {
	out := &dto.SessionDTO{
		Mode:       string(s.state.Mode),
		SelectedID: s.state.SelectedID,
		Keyword:    s.state.Keyword,
		Notes:      s.notes.List(ctx, s.state.Keyword),
	}
	if s.state.Draft != nil {
		out.Draft = &dto.DraftDTO{Title: s.state.Draft.Title, Content: s.state.Draft.Content}
	}
	if s.state.SelectedID != "" {
		if note, err := s.notes.Get(ctx, s.state.SelectedID); err == nil {
			out.Selected = note
		}
	}
	return out
}

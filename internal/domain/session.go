package domain

import "github.com/pkg/errors"

// Session errors raised by invalid state machine transitions.
var (
	ErrSessionTransition  = errors.New("operation not allowed in the current session state")
	ErrSessionNoSelection = errors.New("no note is selected")
)

// Mode enumerates the states of the selection/edit state machine.
// Mode 枚举选择/编辑状态机的状态
type Mode string

const (
	// ModeIdle 浏览态，可带有选中的笔记
	ModeIdle Mode = "idle"
	// ModeComposing 新建笔记编辑态
	ModeComposing Mode = "composing"
	// ModeEditing 编辑已有笔记态
	ModeEditing Mode = "editing"
)

// Draft is the transient working copy of a note's title and content during
// composition or editing. It is decoupled from the persisted note until a
// save transition commits it.
// Draft 撰写或编辑期间的临时工作副本，保存前不影响已持久化的笔记
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Session is the ephemeral UI state; it is never persisted.
// Session 是短暂的界面状态，永不持久化
type Session struct {
	Mode Mode `json:"mode"`
	// SelectedID identifies the note shown in detail or being edited;
	// empty when nothing is selected.
	SelectedID string `json:"selectedId"`
	// Draft is non-nil only while composing or editing.
	Draft *Draft `json:"draft,omitempty"`
	// Keyword is the free-text filter applied to the sidebar list.
	Keyword string `json:"keyword"`
}

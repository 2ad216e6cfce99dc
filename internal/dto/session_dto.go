package dto

// SessionSelectRequest selects a note for the detail view
// 选中一条笔记用于详情展示
type SessionSelectRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

// SessionSaveRequest carries the draft being committed. Limits are enforced
// here; the empty-after-trim title rule is enforced by the state machine so
// a rejected save keeps the draft and the edit mode.
// SessionSaveRequest 携带要提交的草稿
type SessionSaveRequest struct {
	Title   string `json:"title" form:"title" binding:"max=100"`
	Content string `json:"content" form:"content" binding:"max=4000"`
}

// SessionDeleteRequest deletes the selected note after user confirmation
// 确认后删除当前选中的笔记
type SessionDeleteRequest struct {
	Confirm bool `json:"confirm" form:"confirm"`
}

// SessionSearchRequest sets the sidebar filter string
// 设置侧边栏过滤串
type SessionSearchRequest struct {
	Keyword string `json:"keyword" form:"keyword" binding:"max=100"`
}

// DraftDTO mirrors the in-flight draft
// DraftDTO 进行中的草稿
type DraftDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SessionDTO is the full view-state snapshot rendered by the frontend:
// machine state, selection, draft, filter and the derived note list.
// SessionDTO 前端渲染所需的完整视图状态快照
type SessionDTO struct {
	Mode       string     `json:"mode"`
	SelectedID string     `json:"selectedId,omitempty"`
	Draft      *DraftDTO  `json:"draft,omitempty"`
	Keyword    string     `json:"keyword"`
	Selected   *NoteDTO   `json:"selected,omitempty"`
	Notes      []*NoteDTO `json:"notes"`
}

// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/timex"
)

// NoteDTO Note data transfer object
// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Date    timex.Time `json:"date"`
}

// NoteGetRequest Request parameters for fetching a single note
// 用于获取单条笔记的请求参数
type NoteGetRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

// NoteCreateRequest Request parameters for creating a note
// 用于创建笔记的请求参数
type NoteCreateRequest struct {
	Title   string `json:"title" form:"title" binding:"required,notblank,max=100"`
	Content string `json:"content" form:"content" binding:"max=4000"`
}

// NoteUpdateRequest Request parameters for modifying a note
// 用于修改笔记的请求参数
type NoteUpdateRequest struct {
	ID      string `json:"id" form:"id" binding:"required"`
	Title   string `json:"title" form:"title" binding:"required,notblank,max=100"`
	Content string `json:"content" form:"content" binding:"max=4000"`
}

// NoteDeleteRequest Parameters required for deleting a note
// 删除笔记所需参数
type NoteDeleteRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

// NoteListRequest Parameters for listing notes with an optional filter
// 获取笔记列表的过滤参数
type NoteListRequest struct {
	Keyword string `json:"keyword" form:"keyword" binding:"max=100"`
}

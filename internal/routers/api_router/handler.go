// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/service"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/code"

	"github.com/pkg/errors"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// toCode maps a service or domain error to a registered business code.
// Unknown errors report false so callers can fall through to the unified
// error response.
// toCode 将服务层或领域层错误映射为已注册的业务码
func toCode(err error) (*code.Code, bool) {
	switch {
	case errors.Is(err, domain.ErrNoteNotFound):
		return code.ErrorNoteNotFound, true
	case errors.Is(err, domain.ErrTitleEmpty):
		return code.ErrorNoteTitleEmpty, true
	case errors.Is(err, service.ErrTitleTooLong):
		return code.ErrorNoteTitleTooLong, true
	case errors.Is(err, service.ErrContentTooLong):
		return code.ErrorNoteContentTooLong, true
	case errors.Is(err, domain.ErrSessionTransition):
		return code.ErrorSessionTransition, true
	case errors.Is(err, domain.ErrSessionNoSelection):
		return code.ErrorSessionNoSelection, true
	default:
		return nil, false
	}
}

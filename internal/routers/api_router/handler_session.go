package api_router

import (
	"context"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/dto"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/middleware"
	pkgapp "github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/code"
	apperrors "github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler 会话 API 路由处理器
// 驱动选择/编辑状态机，每个操作都返回完整的视图状态快照
type SessionHandler struct {
	*Handler
}

// NewSessionHandler 创建 SessionHandler 实例
func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{
		Handler: NewHandler(a),
	}
}

// Get 获取当前会话快照
// @Summary 获取会话快照
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	snap := h.App.SessionService.Snapshot(c.Request.Context())
	response.ToResponse(code.Success.WithData(snap))
}

// Compose 进入新建态
// @Summary 打开空白草稿
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/compose [post]
func (h *SessionHandler) Compose(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	snap := h.App.SessionService.Compose(c.Request.Context())
	response.ToResponse(code.Success.WithData(snap))
}

// Select 选中笔记用于详情展示
// @Summary 选中笔记
// @Accept json
// @Produce json
// @Param params body dto.SessionSelectRequest true "选中参数"
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/select [post]
func (h *SessionHandler) Select(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SessionSelectRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SessionHandler.Select.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	snap, err := h.App.SessionService.Select(ctx, params.ID)
	if err != nil {
		h.logError(ctx, "SessionHandler.Select", err)
		h.errResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(snap))
}

// Edit 对选中笔记进入编辑态
// @Summary 编辑选中笔记
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/edit [post]
func (h *SessionHandler) Edit(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	snap, err := h.App.SessionService.Edit(ctx)
	if err != nil {
		h.logError(ctx, "SessionHandler.Edit", err)
		h.errResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(snap))
}

// Save 提交草稿
// @Summary 保存草稿
// @Description 新建态创建、编辑态覆盖；标题为空时拒绝且表单保持打开
// @Accept json
// @Produce json
// @Param params body dto.SessionSaveRequest true "草稿内容"
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/save [post]
func (h *SessionHandler) Save(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SessionSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SessionHandler.Save.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	snap, err := h.App.SessionService.Save(ctx, params.Title, params.Content)
	if err != nil {
		h.logError(ctx, "SessionHandler.Save", err)
		h.errResponse(c, err)
		return
	}

	noteOpsTotal.WithLabelValues("save").Inc()
	response.ToResponse(code.Success.WithData(snap))
}

// Cancel 丢弃草稿
// @Summary 取消编辑或新建
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/cancel [post]
func (h *SessionHandler) Cancel(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	snap, err := h.App.SessionService.Cancel(ctx)
	if err != nil {
		h.logError(ctx, "SessionHandler.Cancel", err)
		h.errResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(snap))
}

// Delete 确认后删除选中笔记
// @Summary 删除选中笔记
// @Accept json
// @Produce json
// @Param params body dto.SessionDeleteRequest true "确认参数"
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/delete [post]
func (h *SessionHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SessionDeleteRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SessionHandler.Delete.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	snap, err := h.App.SessionService.Delete(ctx, params.Confirm)
	if err != nil {
		h.logError(ctx, "SessionHandler.Delete", err)
		h.errResponse(c, err)
		return
	}

	if params.Confirm {
		noteOpsTotal.WithLabelValues("delete").Inc()
	}
	response.ToResponse(code.Success.WithData(snap))
}

// Search 设置侧边栏过滤串
// @Summary 搜索笔记
// @Accept json
// @Produce json
// @Param params body dto.SessionSearchRequest true "过滤参数"
// @Success 200 {object} pkgapp.Res{data=dto.SessionDTO} "成功"
// @Router /api/session/search [post]
func (h *SessionHandler) Search(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SessionSearchRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SessionHandler.Search.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	snap := h.App.SessionService.Search(c.Request.Context(), params.Keyword)
	response.ToResponse(code.Success.WithData(snap))
}

// errResponse 将已知业务错误映射为业务码，未知错误走统一错误响应
func (h *SessionHandler) errResponse(c *gin.Context, err error) {
	if codeObj, ok := toCode(err); ok {
		pkgapp.NewResponse(c).ToResponse(codeObj)
		return
	}
	apperrors.ErrorResponse(c, err)
}

// logError 记录错误日志，包含 Trace ID
func (h *SessionHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}

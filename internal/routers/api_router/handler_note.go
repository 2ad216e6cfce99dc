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

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// Get 获取单条笔记详情
// @Summary 获取笔记详情
// @Produce json
// @Param params query dto.NoteGetRequest true "获取参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/note [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Get(ctx, params.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		h.errResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description 返回按集合顺序排列的笔记，可选关键字过滤
// @Produce json
// @Param params query dto.NoteListRequest true "查询参数"
// @Success 200 {object} pkgapp.Res{data=[]dto.NoteDTO} "成功"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	notes := h.App.NoteService.List(ctx, params.Keyword)
	response.ToResponseList(code.Success, notes, len(notes))
}

// Create 创建笔记
// @Summary 创建笔记
// @Description 新笔记插入集合头部
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "创建参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/note [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Create(ctx, params.Title, params.Content)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		h.errResponse(c, err)
		return
	}

	noteOpsTotal.WithLabelValues("create").Inc()
	response.ToResponse(code.Success.WithData(note))
}

// Update 修改笔记
// @Summary 修改笔记
// @Description 覆盖标题与内容，保留 ID 与集合位置
// @Accept json
// @Produce json
// @Param params body dto.NoteUpdateRequest true "修改参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/note [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Update(ctx, params.ID, params.Title, params.Content)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		h.errResponse(c, err)
		return
	}

	noteOpsTotal.WithLabelValues("update").Inc()
	response.ToResponse(code.Success.WithData(note))
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description 删除不存在的 ID 视为无操作
// @Produce json
// @Param params query dto.NoteDeleteRequest true "删除参数"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/note [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteDeleteRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Delete.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	removed, err := h.App.NoteService.Delete(ctx, params.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		h.errResponse(c, err)
		return
	}
	if removed {
		noteOpsTotal.WithLabelValues("delete").Inc()
	}

	response.ToResponse(code.Success.WithData(gin.H{"removed": removed}))
}

// errResponse 将已知业务错误映射为业务码，未知错误走统一错误响应
func (h *NoteHandler) errResponse(c *gin.Context, err error) {
	if codeObj, ok := toCode(err); ok {
		pkgapp.NewResponse(c).ToResponse(codeObj)
		return
	}
	apperrors.ErrorResponse(c, err)
}

// logError 记录错误日志，包含 Trace ID
func (h *NoteHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}

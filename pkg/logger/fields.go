package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldTitle 笔记标题字段
	FieldTitle = "title"

	// FieldKeyword 搜索关键字字段
	FieldKeyword = "keyword"

	// FieldMode 会话状态字段
	FieldMode = "mode"

	// FieldCount 集合大小字段
	FieldCount = "count"

	// FieldSlot 持久化槽名称字段
	FieldSlot = "slot"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldError 错误信息字段
	FieldError = "error"
)

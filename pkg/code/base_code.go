package code

// Common codes
// 通用状态码
var (
	Success = NewSuss(200, lang{
		en:    "Success",
		zh_cn: "成功",
	})
	Failed = NewError(1, lang{
		en:    "Failed",
		zh_cn: "失败",
	})
	ErrorServerInternal = NewError(10000, lang{
		en:    "Server internal error",
		zh_cn: "服务器内部错误",
	})
	ErrorInvalidParams = NewError(10001, lang{
		en:    "Invalid request parameters",
		zh_cn: "入参错误",
	})
	ErrorNotFoundAPI = NewError(10002, lang{
		en:    "API not found",
		zh_cn: "找不到对应接口",
	})
	ErrorTooManyRequests = NewError(10003, lang{
		en:    "Too many requests",
		zh_cn: "请求过多",
	})
)

// Note codes
// 笔记相关状态码
var (
	ErrorNoteNotFound = NewError(20001, lang{
		en:    "Note not found",
		zh_cn: "笔记不存在",
	})
	ErrorNoteTitleEmpty = NewError(20002, lang{
		en:    "Note title must not be empty",
		zh_cn: "笔记标题不能为空",
	})
	ErrorNoteTitleTooLong = NewError(20003, lang{
		en:    "Note title exceeds 100 characters",
		zh_cn: "笔记标题超过 100 字符",
	})
	ErrorNoteContentTooLong = NewError(20004, lang{
		en:    "Note content exceeds 4000 characters",
		zh_cn: "笔记内容超过 4000 字符",
	})
	ErrorNotePersist = NewError(20005, lang{
		en:    "Failed to persist note collection",
		zh_cn: "笔记集合持久化失败",
	})
)

// Session codes
// 会话相关状态码
var (
	ErrorSessionTransition = NewError(21001, lang{
		en:    "Operation not allowed in the current editing state",
		zh_cn: "当前编辑状态下不允许该操作",
	})
	ErrorSessionNoSelection = NewError(21002, lang{
		en:    "No note is selected",
		zh_cn: "当前没有选中的笔记",
	})
)

package routers

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/middleware"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/routers/api_router"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/session",
		FillInterval: time.Second,
		Capacity:     50,
		Quantum:      50,
	},
	limiter.BucketRule{
		Key:          "/api/note",
		FillInterval: time.Second,
		Capacity:     20,
		Quantum:      20,
	},
)

// NewRouter 创建公共路由：内嵌前端静态资源与 /api 业务接口
func NewRouter(frontendFiles embed.FS, appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	frontendAssets, _ := fs.Sub(frontendFiles, "frontend/assets")
	frontendIndexContent, _ := frontendFiles.ReadFile("frontend/index.html")

	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", frontendIndexContent)
	})

	cacheMiddleware := func(c *gin.Context) {
		// 设置强缓存，缓存一年
		c.Header("Cache-Control", "public, s-maxage=31536000, max-age=31536000, must-revalidate")
		c.Next()
	}

	r.Group("/assets", cacheMiddleware).StaticFS("/", http.FS(frontendAssets))

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		noteHandler := api_router.NewNoteHandler(appContainer)
		sessionHandler := api_router.NewSessionHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		// 服务端版本号接口
		api.GET("/version", versionHandler.ServerVersion)

		// 笔记 CRUD 与搜索
		api.GET("/note", noteHandler.Get)
		api.POST("/note", noteHandler.Create)
		api.PUT("/note", noteHandler.Update)
		api.DELETE("/note", noteHandler.Delete)
		api.GET("/notes", noteHandler.List)

		// 会话状态机：每个操作返回完整视图快照
		api.GET("/session", sessionHandler.Get)
		api.POST("/session/compose", sessionHandler.Compose)
		api.POST("/session/select", sessionHandler.Select)
		api.POST("/session/edit", sessionHandler.Edit)
		api.POST("/session/save", sessionHandler.Save)
		api.POST("/session/cancel", sessionHandler.Cancel)
		api.POST("/session/delete", sessionHandler.Delete)
		api.POST("/session/search", sessionHandler.Search)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}

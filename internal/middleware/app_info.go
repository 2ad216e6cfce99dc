package middleware

import (
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfoWithConfig injects application identity into the request context
// (supports dependency injection)
// AppInfoWithConfig 把应用标识注入请求上下文（支持依赖注入）
func AppInfoWithConfig(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}

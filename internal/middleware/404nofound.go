package middleware

import (
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorNotFoundAPI)
		c.Abort()
	}
}

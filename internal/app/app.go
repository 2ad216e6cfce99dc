// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/service"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/store"
	pkgapp "github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/app"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	store  *store.NoteStore

	// Service 层
	NoteService    *service.NoteService
	SessionService *service.SessionService

	// 关闭控制
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}

	// 初始化笔记存储（加载持久化槽）
	noteStore, err := store.NewNoteStore(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	a.store = noteStore

	// 初始化 Service 层（依赖注入）
	a.NoteService = service.NewNoteService(noteStore, logger)
	a.SessionService = service.NewSessionService(a.NoteService, logger)

	logger.Info("App container initialized successfully",
		zap.Int("noteCount", noteStore.Len(context.Background())))

	return a, nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Store 获取笔记存储，供快照任务使用
func (a *App) Store() *store.NoteStore {
	return a.store
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// Shutdown 优雅关闭应用容器
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	a.shutdownOnce.Do(func() {
		close(a.shutdownCh)
	})

	// 关闭持久化槽
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("note store close error", zap.Error(err))
			return fmt.Errorf("note store close: %w", err)
		}
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownCh 返回关闭信号通道（用于监听关闭事件）
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}

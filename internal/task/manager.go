package task

import (
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks(appContainer *app.App) error {
	// 创建并添加快照任务
	snapshotTask, err := NewSnapshotTask(appContainer)
	if err != nil {
		m.logger.Warn("failed to create snapshot task", zap.Error(err))
		return err
	}

	if snapshotTask != nil {
		if err := m.scheduler.AddTask(snapshotTask); err != nil {
			m.logger.Warn("failed to schedule snapshot task", zap.Error(err))
			return err
		}
	} else {
		m.logger.Info("snapshot task is disabled")
	}

	// 未来可以在这里添加更多任务
	// otherTask := NewOtherTask()
	// m.scheduler.AddTask(otherTask)

	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}

package task

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/app"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SnapshotTask 按计划把笔记集合的序列化形式复制到备份目录。
// 快照只是灾备副本，服务从不读取它；持久化槽始终是唯一的事实来源。
type SnapshotTask struct {
	app    *app.App
	logger *zap.Logger

	spec string
	dir  string
	keep int
}

// Name returns the task name
func (t *SnapshotTask) Name() string {
	return "NoteSnapshot"
}

// CronSpec returns the cron schedule
func (t *SnapshotTask) CronSpec() string {
	return t.spec
}

// IsStartupRun returns whether to run on startup
func (t *SnapshotTask) IsStartupRun() bool {
	return false
}

// Run writes one timestamped snapshot and prunes old ones
func (t *SnapshotTask) Run(ctx context.Context) error {
	data, err := t.app.Store().Serialized()
	if err != nil {
		return errors.Wrap(err, "serialize note collection failed")
	}

	name := "notes-" + time.Now().Format("20060102-150405") + ".json"
	path := filepath.Join(t.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "write snapshot failed")
	}

	t.logger.Info("note snapshot written",
		zap.String(logger.FieldSlot, path),
		zap.Int(logger.FieldCount, len(data)))

	return t.prune()
}

// prune keeps the newest `keep` snapshots and removes the rest
func (t *SnapshotTask) prune() error {
	matches, err := filepath.Glob(filepath.Join(t.dir, "notes-*.json"))
	if err != nil {
		return errors.Wrap(err, "list snapshots failed")
	}
	if t.keep <= 0 || len(matches) <= t.keep {
		return nil
	}

	// 文件名带时间戳，字典序即时间序
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-t.keep] {
		if err := os.Remove(old); err != nil {
			t.logger.Warn("remove old snapshot failed",
				zap.String(logger.FieldSlot, old), zap.Error(err))
		}
	}
	return nil
}

// NewSnapshotTask creates a new SnapshotTask instance.
// Returns nil when snapshots are disabled in config.
func NewSnapshotTask(appContainer *app.App) (Task, error) {
	cfg := appContainer.Config().Snapshot
	if !cfg.Enabled {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create snapshot directory failed")
	}

	return &SnapshotTask{
		app:    appContainer,
		logger: appContainer.Logger(),
		spec:   cfg.Cron,
		dir:    cfg.Dir,
		keep:   cfg.Keep,
	}, nil
}

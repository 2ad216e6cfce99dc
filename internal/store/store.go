package store

import (
	"context"
	"sync"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/domain"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config selects and locates the slot backend.
// Config 选择并定位槽后端
type Config struct {
	// Type 槽后端类型：file 或 sqlite
	Type string `yaml:"type" default:"file"`
	// Path 槽文件或 sqlite 数据库路径，留空时使用 data-dir 下的默认位置
	Path string `yaml:"path"`
	// DataDir 数据目录
	DataDir string `yaml:"data-dir" default:"storage/data"`
}

// NoteStore holds the canonical collection in memory and mirrors it into
// the slot synchronously after every mutation. The HTTP layer is
// concurrent, so all access goes through one mutex; the slot itself still
// sees a single logical writer.
// NoteStore 在内存中持有规范集合，每次变更后同步整体写入槽
type NoteStore struct {
	mu     sync.RWMutex
	notes  []*domain.Note
	slot   Slot
	logger *zap.Logger
}

// NewNoteStore builds the configured slot backend and loads the collection.
// Absent or unparsable slot content yields an empty collection and never
// fails startup.
// NewNoteStore 构建配置的槽后端并加载集合；槽内容缺失或损坏时以空集合启动
func NewNoteStore(cfg Config, logger *zap.Logger) (*NoteStore, error) {
	slot, err := newSlot(cfg)
	if err != nil {
		return nil, err
	}

	s := &NoteStore{
		slot:   slot,
		logger: logger,
	}
	s.load()
	return s, nil
}

func newSlot(cfg Config) (Slot, error) {
	switch cfg.Type {
	case "", "file":
		path := cfg.Path
		if path == "" {
			path = defaultFilePath(cfg.DataDir)
		}
		return NewFileSlot(path)
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = defaultFilePath(cfg.DataDir) + ".sqlite3"
		}
		return NewSQLiteSlot(path)
	default:
		return nil, errors.Errorf("unknown storage type %q", cfg.Type)
	}
}

// load reads the slot once. Malformed content is logged and treated as
// absent data.
func (s *NoteStore) load() {
	data, ok, err := s.slot.Read()
	if err != nil {
		s.logger.Warn("slot read failed, starting with empty collection",
			zap.String("slot", s.slot.Name()), zap.Error(err))
		s.notes = []*domain.Note{}
		return
	}
	if !ok || len(data) == 0 {
		s.notes = []*domain.Note{}
		return
	}

	var notes []*domain.Note
	if err := sonic.Unmarshal(data, &notes); err != nil {
		s.logger.Warn("slot content malformed, starting with empty collection",
			zap.String("slot", s.slot.Name()), zap.Error(err))
		s.notes = []*domain.Note{}
		return
	}
	s.notes = notes
	s.logger.Info("note collection loaded",
		zap.String("slot", s.slot.Name()), zap.Int("count", len(notes)))
}

// persist serializes and writes the whole collection. Caller holds the lock.
func (s *NoteStore) persist() error {
	data, err := sonic.Marshal(s.notes)
	if err != nil {
		return errors.Wrap(err, "marshal note collection failed")
	}
	if err := s.slot.Write(data); err != nil {
		return errors.Wrap(err, "persist note collection failed")
	}
	return nil
}

func (s *NoteStore) All(ctx context.Context) []*domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n.Clone())
	}
	return out
}

func (s *NoteStore) Find(ctx context.Context, id string) (*domain.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return nil, false
}

func (s *NoteStore) Create(ctx context.Context, title, content string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := &domain.Note{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		Date:    timex.Now(),
	}
	// Most-recent-created first
	// 最新创建的排在最前
	s.notes = append([]*domain.Note{note}, s.notes...)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return note.Clone(), nil
}

func (s *NoteStore) Update(ctx context.Context, id, title, content string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.ID != id {
			continue
		}
		// Position and id are preserved; only payload and date change.
		// 保留位置与 ID，只更新内容和时间
		n.Title = title
		n.Content = content
		n.Date = timex.Now()

		if err := s.persist(); err != nil {
			return nil, err
		}
		return n.Clone(), nil
	}
	return nil, domain.ErrNoteNotFound
}

func (s *NoteStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID != id {
			continue
		}
		s.notes = append(s.notes[:i], s.notes[i+1:]...)
		if err := s.persist(); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (s *NoteStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Serialized returns the collection exactly as it is written to the slot,
// used by the snapshot task.
// Serialized 返回与槽中一致的序列化集合，供快照任务使用
func (s *NoteStore) Serialized() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sonic.Marshal(s.notes)
}

// Close releases the slot backend.
func (s *NoteStore) Close() error {
	return s.slot.Close()
}

var _ domain.NoteStore = (*NoteStore)(nil)

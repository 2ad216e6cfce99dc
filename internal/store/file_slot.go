package store

import (
	"os"
	"path/filepath"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/fileurl"

	"github.com/pkg/errors"
)

// FileSlot persists the slot value as a single JSON document on disk.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated slot behind.
// FileSlot 把槽的值保存为磁盘上的单个 JSON 文件，通过临时文件加重命名写入
type FileSlot struct {
	path string
}

// NewFileSlot creates the parent directory and returns the slot.
func NewFileSlot(path string) (*FileSlot, error) {
	if err := fileurl.CreatePath(path, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create slot directory failed")
	}
	return &FileSlot{path: path}, nil
}

func (s *FileSlot) Name() string {
	return "file"
}

// Path returns the backing file location, used by the snapshot task.
func (s *FileSlot) Path() string {
	return s.path
}

func (s *FileSlot) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "read slot file failed")
	}
	return data, true, nil
}

func (s *FileSlot) Write(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "write slot temp file failed")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace slot file failed")
	}
	return nil
}

func (s *FileSlot) Close() error {
	return nil
}

var _ Slot = (*FileSlot)(nil)

// defaultFilePath joins the configured data directory with the slot key.
func defaultFilePath(dir string) string {
	return filepath.Join(dir, SlotKey+".json")
}

package store

import (
	"os"
	"time"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slotRecord is the single-row key/value table backing the sqlite slot.
// slotRecord 是 sqlite 槽背后的单行键值表
type slotRecord struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (slotRecord) TableName() string {
	return "slot"
}

// SQLiteSlot stores the slot value in a sqlite database through gorm with
// the pure-Go driver. The contract is identical to FileSlot: one key,
// wholesale reads and writes.
// SQLiteSlot 通过 gorm 纯 Go 驱动把槽的值保存在 sqlite 中
type SQLiteSlot struct {
	db *gorm.DB
}

// NewSQLiteSlot opens (and migrates) the database at path.
func NewSQLiteSlot(path string) (*SQLiteSlot, error) {
	if err := fileurl.CreatePath(path, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create database directory failed")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database failed")
	}
	if err := db.AutoMigrate(&slotRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate slot table failed")
	}
	return &SQLiteSlot{db: db}, nil
}

func (s *SQLiteSlot) Name() string {
	return "sqlite"
}

func (s *SQLiteSlot) Read() ([]byte, bool, error) {
	var rec slotRecord
	err := s.db.Where("key = ?", SlotKey).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "read slot record failed")
	}
	return rec.Value, true, nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	rec := slotRecord{Key: SlotKey, Value: data, UpdatedAt: time.Now()}
	// Single writer, last write wins; Save upserts on the primary key.
	// 单写者，最后写入生效；Save 基于主键执行 upsert
	if err := s.db.Save(&rec).Error; err != nil {
		return errors.Wrap(err, "write slot record failed")
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sqlite connection failed")
	}
	return sqlDB.Close()
}

var _ Slot = (*SQLiteSlot)(nil)

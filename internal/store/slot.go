// Package store implements the durable note collection: an in-memory
// ordered collection mirrored wholesale into a single named slot after
// every mutation.
// Package store 实现持久化笔记集合：内存有序集合在每次变更后整体写入单一命名槽
package store

// SlotKey is the single durable storage key holding the serialized
// note collection.
// SlotKey 保存序列化笔记集合的唯一持久化键
const SlotKey = "notes"

// Slot is one named durable storage location, read once at startup and
// written wholesale on every collection mutation. Implementations must
// treat a missing value as (nil, false, nil), not as an error.
// Slot 是一个命名持久化槽：启动时读取一次，每次集合变更时整体写入
type Slot interface {
	// Read returns the stored value and whether one exists.
	Read() (data []byte, ok bool, err error)
	// Write replaces the stored value wholesale.
	Write(data []byte) error
	// Name identifies the backend for logging.
	Name() string
	// Close releases backend resources.
	Close() error
}

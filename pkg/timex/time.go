// Package timex provides a JSON-friendly time type with a fixed wire layout.
// Package timex 提供固定序列化格式的时间类型
package timex

import (
	"fmt"
	"time"
)

// Layout is the wire format for all timestamps, ISO-8601 / RFC3339.
// Layout 是所有时间戳的序列化格式，ISO-8601 / RFC3339
const Layout = time.RFC3339

// Time wraps time.Time and always marshals using Layout.
type Time time.Time

// Now returns the current time as a timex.Time.
func Now() Time {
	return Time(time.Now())
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(Layout))), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time(time.Time{})
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(Layout, s)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

func (t Time) String() string {
	return time.Time(t).Format(Layout)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

// Equal compares two wrapped times.
func (t Time) Equal(u Time) bool {
	return time.Time(t).Equal(time.Time(u))
}

// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/internal/store"
	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File     string         `yaml:"-"` // 配置文件路径，不序列化
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Storage  store.Config   `yaml:"storage"`
	App      AppSettings    `yaml:"app"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
	// File 日志文件路径，默认为 stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址
	PrivateHttpListen string `yaml:"private-http-listen" default:":9001"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultContextTimeout 默认上下文超时时间（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// DefaultLang 默认响应语言
	DefaultLang string `yaml:"default-lang" default:"en"`
	// ShutdownTimeout 优雅关闭超时时间，支持格式：30s（秒）、1m（分钟）
	ShutdownTimeout string `yaml:"shutdown-timeout" default:"30s"`
}

// SnapshotConfig 快照任务配置
type SnapshotConfig struct {
	// Enabled 是否启用定时快照
	Enabled bool `yaml:"enabled" default:"false"`
	// Cron 快照计划，标准五字段 cron 表达式
	Cron string `yaml:"cron" default:"0 3 * * *"`
	// Dir 快照保存目录
	Dir string `yaml:"dir" default:"storage/backups"`
	// Keep 保留的快照数量
	Keep int `yaml:"keep" default:"7"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetContextTimeout 获取请求上下文超时时间
func (c *AppConfig) GetContextTimeout() time.Duration {
	if c.App.DefaultContextTimeout > 0 {
		return time.Duration(c.App.DefaultContextTimeout) * time.Second
	}
	return 60 * time.Second
}

// GetShutdownTimeout 获取优雅关闭超时时间
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	if d, err := util.ParseDuration(c.App.ShutdownTimeout); err == nil {
		return d
	}
	return 30 * time.Second // 理论上不会走到这里，因为有默认值
}

// GetReadTimeout 获取服务器读取超时时间
func (c *AppConfig) GetReadTimeout() time.Duration {
	return util.SecondsOrDefault(c.Server.ReadTimeout, 60*time.Second)
}

// GetWriteTimeout 获取服务器写入超时时间
func (c *AppConfig) GetWriteTimeout() time.Duration {
	return util.SecondsOrDefault(c.Server.WriteTimeout, 60*time.Second)
}

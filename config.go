package httpd

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config 服务器配置, 可以由 TOML 文件提供
type Config struct {
	Host        string        `toml:"host"`
	Port        int           `toml:"port"`
	Root        string        `toml:"root"`
	Backlog     int           `toml:"backlog"`
	ReadSize    int           `toml:"read_size"`
	ReadTimeout time.Duration `toml:"read_timeout"`
	LogLevel    string        `toml:"log_level"`
}

// DefaultConfig 默认配置: 只监听本机, 站点根目录为当前目录, 读取不设超时
func DefaultConfig() Config {
	return Config{
		Host:     "localhost",
		Root:     ".",
		Backlog:  defaultBacklog,
		ReadSize: defaultReadSize,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// LoadConfig 读取 TOML 文件, 未出现的字段保持默认值
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate 检查配置是否可用
func (c Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Backlog <= 0 {
		errs = append(errs, fmt.Errorf("backlog must be positive, got %d", c.Backlog))
	}
	if c.ReadSize <= 0 {
		errs = append(errs, fmt.Errorf("read_size must be positive, got %d", c.ReadSize))
	}
	if c.ReadTimeout < 0 {
		errs = append(errs, fmt.Errorf("read_timeout must not be negative, got %s", c.ReadTimeout))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

package explorer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultStatusAPI = "https://blockstream.info"
	defaultTimeout   = 15 * time.Second
	// about one status request every 0.3s
	defaultStatusRPS = 3
)

var defaultMirrors = []string{
	"https://mempool.space",
	"https://mempool.ninja",
	"https://node201.tk7.mempool.space",
	"https://node202.tk7.mempool.space",
	"https://node203.tk7.mempool.space",
	"https://node204.tk7.mempool.space",
	"https://node205.tk7.mempool.space",
	"https://node206.tk7.mempool.space",
	"https://node201.va1.mempool.space",
	"https://node202.va1.mempool.space",
	"https://node203.va1.mempool.space",
	"https://node204.va1.mempool.space",
	"https://node205.va1.mempool.space",
	"https://node206.va1.mempool.space",
	"https://node207.va1.mempool.space",
	"https://node208.va1.mempool.space",
	"https://node209.va1.mempool.space",
	"https://node210.va1.mempool.space",
	"https://node211.va1.mempool.space",
	"https://node212.va1.mempool.space",
	"https://node213.va1.mempool.space",
	"https://node214.va1.mempool.space",
	"https://node201.fra.mempool.space",
	"https://node202.fra.mempool.space",
	"https://node203.fra.mempool.space",
	"https://node204.fra.mempool.space",
	"https://node205.fra.mempool.space",
	"https://node206.fra.mempool.space",
	"https://node207.fra.mempool.space",
	"https://node208.fra.mempool.space",
	"https://node209.fra.mempool.space",
	"https://node210.fra.mempool.space",
	"https://node211.fra.mempool.space",
	"https://node212.fra.mempool.space",
	"https://node213.fra.mempool.space",
	"https://node214.fra.mempool.space",
	"https://node202.sv1.mempool.space",
	"https://node203.sv1.mempool.space",
	"https://node201.sg1.mempool.space",
	"https://node202.sg1.mempool.space",
	"https://node203.sg1.mempool.space",
	"https://node204.sg1.mempool.space",
	"https://node201.hnl.mempool.space",
	"https://node202.hnl.mempool.space",
	"https://node203.hnl.mempool.space",
}

// Config selects the explorer endpoints.
type Config struct {
	// Mirrors are mempool.space compatible base URLs, tried in order.
	Mirrors []string `yaml:"mirrors"`
	// StatusAPI is an esplora compatible base URL used for block status.
	StatusAPI string        `yaml:"status_api"`
	Timeout   time.Duration `yaml:"timeout"`
	StatusRPS int           `yaml:"status_rps"`
}

// DefaultConfig returns the built-in mirror list.
func DefaultConfig() Config {
	return Config{
		Mirrors:   append([]string(nil), defaultMirrors...),
		StatusAPI: defaultStatusAPI,
		Timeout:   defaultTimeout,
		StatusRPS: defaultStatusRPS,
	}
}

// LoadConfig reads a YAML config file. Empty path or a missing file yields
// the defaults; fields left out of the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read explorer config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse explorer config: %w", err)
	}
	if len(file.Mirrors) > 0 {
		cfg.Mirrors = file.Mirrors
	}
	if file.StatusAPI != "" {
		cfg.StatusAPI = file.StatusAPI
	}
	if file.Timeout > 0 {
		cfg.Timeout = file.Timeout
	}
	if file.StatusRPS > 0 {
		cfg.StatusRPS = file.StatusRPS
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	mirrors := make([]string, 0, len(c.Mirrors))
	for _, m := range c.Mirrors {
		m = strings.TrimRight(strings.TrimSpace(m), "/")
		if m != "" {
			mirrors = append(mirrors, m)
		}
	}
	c.Mirrors = mirrors
	c.StatusAPI = strings.TrimRight(c.StatusAPI, "/")
	return c
}

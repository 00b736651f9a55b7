package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"lintang/gridnavigatorx/pkg/datastructure"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr  string        `yaml:"listen_addr"`
	DBPath      string        `yaml:"db_path"`
	Workers     int           `yaml:"workers"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
	SwaggerHost string        `yaml:"swagger_host"`
	LogLevel    string        `yaml:"log_level"`
	DemoGrid    DemoGrid      `yaml:"demo_grid"`
}

// DemoGrid grid yang dibikin otomatis waktu server start kalau belum ada.
type DemoGrid struct {
	Name      string                 `yaml:"name"`
	RowLength int                    `yaml:"row_length"`
	Start     datastructure.Position `yaml:"start"`
	Target    datastructure.Position `yaml:"target"`
}

func Default() Config {
	return Config{
		ListenAddr:  ":5000",
		DBPath:      "gridnavigatorxDB",
		Workers:     4,
		SessionTTL:  30 * time.Minute,
		SwaggerHost: "localhost:5000",
		LogLevel:    "info",
		DemoGrid: DemoGrid{
			Name:      "demo",
			RowLength: 20,
			Start:     datastructure.NewPosition(17, 14),
			Target:    datastructure.NewPosition(6, 4),
		},
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Load baca file yaml di atas Default. path kosong = Default aja.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	bb, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(bb, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.DemoGrid.Name != "" && c.DemoGrid.RowLength < 1 {
		return fmt.Errorf("%w: demo_grid.row_length must be positive", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

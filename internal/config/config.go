package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/genart/internal/asparagus"
	"github.com/san-kum/genart/internal/bubblechamber"
	"github.com/san-kum/genart/internal/cloudscript"
	"github.com/san-kum/genart/internal/colorhoney"
	"github.com/san-kum/genart/internal/logging"
	"github.com/san-kum/genart/internal/selene"
	"github.com/san-kum/genart/internal/techniques"
	"github.com/san-kum/genart/internal/wael"
)

const (
	DefaultPath      = "genart.yaml"
	DefaultOutputDir = "output"
	DefaultSize      = "500x500"
	DefaultLogLevel  = "info"
	DefaultWorkers   = 4
	DefaultBatch     = 8
)

type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Size      string        `yaml:"size"`
	Seed      int64         `yaml:"seed"`
	Logging   LoggingConfig `yaml:"logging"`
	Batch     BatchConfig   `yaml:"batch"`

	Asparagus     asparagus.Config               `yaml:"asparagus"`
	BubbleChamber bubblechamber.Config           `yaml:"bubblechamber"`
	CloudScript   cloudscript.Config             `yaml:"cloudscript"`
	Selene        selene.Config                  `yaml:"selene"`
	Wael          wael.Config                    `yaml:"wael"`
	ColorHoney    colorhoney.Config              `yaml:"colorhoney"`
	CirclePacking techniques.CirclePackingConfig `yaml:"circlepacking"`
	Pointillism   techniques.PointillismConfig   `yaml:"pointillism"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type BatchConfig struct {
	Count   int `yaml:"count"`
	Workers int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Size:      DefaultSize,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: logging.FormatConsole,
		},
		Batch: BatchConfig{
			Count:   DefaultBatch,
			Workers: DefaultWorkers,
		},
		Asparagus:     asparagus.DefaultConfig(),
		BubbleChamber: bubblechamber.DefaultConfig(),
		CloudScript:   cloudscript.DefaultConfig(),
		Selene:        selene.DefaultConfig(),
		Wael:          wael.DefaultConfig(),
		ColorHoney:    colorhoney.DefaultConfig(),
		CirclePacking: techniques.DefaultCirclePackingConfig(),
		Pointillism:   techniques.DefaultPointillismConfig(),
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned and a warning is logged.
func Load(path string, logger *zap.Logger) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("config file not found, using defaults", zap.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

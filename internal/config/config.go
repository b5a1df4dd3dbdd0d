// Package config loads the application configuration from a YAML or JSON
// file, with FS_-prefixed environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/nivedh-m/FacultyScheduler/internal/scheduler"
)

type Config struct {
	Input   InputConfig      `json:"input"`
	Output  OutputConfig     `json:"output"`
	Engine  scheduler.Config `json:"engine"`
	Logging LoggingConfig    `json:"logging"`
}

// InputConfig names the roster CSV files.
type InputConfig struct {
	ClassroomsFile  string `json:"classrooms_file"`
	CoursesFile     string `json:"courses_file"`
	FacultiesFile   string `json:"faculties_file"`
	ObligationsFile string `json:"obligations_file"`
	// Delimiter is a single-character CSV field separator.
	Delimiter string `json:"delimiter"`
}

// OutputConfig names export targets. Empty paths disable the export.
type OutputConfig struct {
	CSVFile string `json:"csv_file"`
	PDFFile string `json:"pdf_file"`
	DOTFile string `json:"dot_file"`
}

// LoggingConfig selects the log verbosity.
type LoggingConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *InputConfig) SetDefaults() {
	if c.ClassroomsFile == "" {
		c.ClassroomsFile = "./res/classrooms.csv"
	}
	if c.CoursesFile == "" {
		c.CoursesFile = "./res/courses.csv"
	}
	if c.FacultiesFile == "" {
		c.FacultiesFile = "./res/faculties.csv"
	}
	if c.ObligationsFile == "" {
		c.ObligationsFile = "./res/obligations.csv"
	}
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c InputConfig) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.CSVFile == "" {
		c.CSVFile = "timetable.csv"
	}
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level is one zerolog understands.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	return nil
}

// ZerologLevel returns the parsed level.
func (c LoggingConfig) ZerologLevel() zerolog.Level {
	lvl, _ := zerolog.ParseLevel(c.Level)
	return lvl
}

// Load reads the config file at path, applies environment overrides and
// validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. FS_ENGINE__SLOTS_PER_DAY=7.
	// The callback emits dot-delimited keys, so the provider must split on
	// "." for them to nest.
	if err := k.Load(env.Provider("FS_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Input.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Engine.SetDefaults()
	if err := cfg.Input.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

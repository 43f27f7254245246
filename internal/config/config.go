// Package config loads and saves the tableview YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesen/tableview/internal/log"
	"github.com/wesen/tableview/pkg/tableview"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "TABLEVIEW_CONFIG"

const (
	DefaultMaxCellWidth = 40
	DefaultLogLevel     = "info"
)

type TableConfig struct {
	MultiSelect   bool `yaml:"multi_select"`
	FullRowSelect bool `yaml:"full_row_select"`
	ShowHeaders   bool `yaml:"show_headers"`
	MaxCellWidth  int  `yaml:"max_cell_width"`
	// PageScroll is the number of rows PgUp/PgDn move; 0 means one screen.
	PageScroll int `yaml:"page_scroll"`
}

// ColumnConfig styles the column whose header equals Name.
type ColumnConfig struct {
	Name     string `yaml:"name"`
	Align    string `yaml:"align,omitempty"`
	MinWidth int    `yaml:"min_width,omitempty"`
	MaxWidth int    `yaml:"max_width,omitempty"`
	// Format is a JavaScript expression over the raw cell value v.
	Format string `yaml:"format,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

type File struct {
	Table   TableConfig    `yaml:"table"`
	Columns []ColumnConfig `yaml:"columns,omitempty"`
	Log     LogConfig      `yaml:"log,omitempty"`
}

func Default() *File {
	return &File{
		Table: TableConfig{
			MultiSelect:  true,
			ShowHeaders:  true,
			MaxCellWidth: DefaultMaxCellWidth,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Dir is the directory holding the default config file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "tableview"), nil
}

// Path resolves the config file location: an explicit path wins, then
// $TABLEVIEW_CONFIG, then ~/.config/tableview/config.yaml.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("config file not found, using defaults", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path atomically, creating the directory if needed.
func (c *File) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename config file: %w", err)
	}
	return nil
}

// ValidationError reports one bad field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// Validate checks the ranges and enumerations the loader cannot express in
// YAML types.
func (c *File) Validate() error {
	if c.Table.MaxCellWidth < 0 {
		return &ValidationError{Field: "table.max_cell_width", Msg: "must not be negative"}
	}
	if c.Table.PageScroll < 0 {
		return &ValidationError{Field: "table.page_scroll", Msg: "must not be negative"}
	}
	seen := make(map[string]bool, len(c.Columns))
	for i, col := range c.Columns {
		field := fmt.Sprintf("columns[%d]", i)
		switch {
		case col.Name == "":
			return &ValidationError{Field: field + ".name", Msg: "is required"}
		case seen[col.Name]:
			return &ValidationError{Field: field + ".name", Msg: fmt.Sprintf("duplicate column %q", col.Name)}
		case col.MinWidth < 0:
			return &ValidationError{Field: field + ".min_width", Msg: "must not be negative"}
		case col.MaxWidth < 0:
			return &ValidationError{Field: field + ".max_width", Msg: "must not be negative"}
		case col.MaxWidth > 0 && col.MinWidth > col.MaxWidth:
			return &ValidationError{Field: field + ".min_width", Msg: "exceeds max_width"}
		}
		if _, err := ParseAlignment(col.Align); err != nil {
			return &ValidationError{Field: field + ".align", Msg: err.Error()}
		}
		seen[col.Name] = true
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Field: "log.level", Msg: err.Error()}
	}
	return nil
}

// ParseAlignment maps left, right or center to an Alignment. Empty means
// left.
func ParseAlignment(s string) (tableview.Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return tableview.AlignLeft, nil
	case "right":
		return tableview.AlignRight, nil
	case "center", "centre":
		return tableview.AlignCenter, nil
	default:
		return tableview.AlignLeft, fmt.Errorf("unknown alignment %q", s)
	}
}

// Alignment is the parsed Align field; invalid values fall back to left.
func (c ColumnConfig) Alignment() tableview.Alignment {
	a, _ := ParseAlignment(c.Align)
	return a
}

// Package config loads export settings from an optional YAML file.
// Values present in the file override tablebuilder.DefaultOptions; absent
// values keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder"
	"gopkg.in/yaml.v3"
)

// Config holds all settings the CLI reads from a config file.
type Config struct {
	Options tablebuilder.Options
	// OutputDir is where exports go when no explicit path is given.
	OutputDir string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Options:   tablebuilder.DefaultOptions(),
		OutputDir: ".",
	}
}

// yamlConfig mirrors the file layout. Pointer fields distinguish
// "not set" from zero values.
type yamlConfig struct {
	Page struct {
		Size        *string  `yaml:"size"`
		Orientation *string  `yaml:"orientation"`
		Left        *float64 `yaml:"left"`
		Top         *float64 `yaml:"top"`
		LineHeight  *float64 `yaml:"line_height"`
		Font        *string  `yaml:"font"`
		FontSize    *float64 `yaml:"font_size"`
		Compress    *bool    `yaml:"compress"`
	} `yaml:"page"`
	Sheet struct {
		Name *string `yaml:"name"`
	} `yaml:"sheet"`
	Flow struct {
		CellWidth         *int  `yaml:"cell_width"`
		TableWidthPercent *int  `yaml:"table_width_percent"`
		TrailingParagraph *bool `yaml:"trailing_paragraph"`
	} `yaml:"flow"`
	Output struct {
		Dir *string `yaml:"dir"`
	} `yaml:"output"`
}

// Load reads a YAML config file. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML config data on top of Default().
func Parse(data []byte) (Config, error) {
	var dto yamlConfig
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	page := &cfg.Options.Page
	setString(&page.Size, dto.Page.Size)
	setString(&page.Orientation, dto.Page.Orientation)
	setFloat(&page.Left, dto.Page.Left)
	setFloat(&page.Top, dto.Page.Top)
	setFloat(&page.LineHeight, dto.Page.LineHeight)
	setString(&page.FontFamily, dto.Page.Font)
	setFloat(&page.FontSize, dto.Page.FontSize)
	setBool(&page.Compress, dto.Page.Compress)

	setString(&cfg.Options.Sheet.Name, dto.Sheet.Name)

	flow := &cfg.Options.Flow
	setInt(&flow.CellWidth, dto.Flow.CellWidth)
	setInt(&flow.TableWidthPercent, dto.Flow.TableWidthPercent)
	setBool(&flow.TrailingParagraph, dto.Flow.TrailingParagraph)

	setString(&cfg.OutputDir, dto.Output.Dir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside an export.
func (c Config) Validate() error {
	var errs []error
	page := c.Options.Page
	if page.LineHeight <= 0 {
		errs = append(errs, errors.New("page.line_height must be positive"))
	}
	if page.FontSize <= 0 {
		errs = append(errs, errors.New("page.font_size must be positive"))
	}
	if page.Orientation != "P" && page.Orientation != "L" {
		errs = append(errs, fmt.Errorf("page.orientation must be P or L, got %q", page.Orientation))
	}
	if c.Options.Sheet.Name == "" {
		errs = append(errs, errors.New("sheet.name must not be empty"))
	}
	if c.Options.Flow.CellWidth <= 0 {
		errs = append(errs, errors.New("flow.cell_width must be positive"))
	}
	if p := c.Options.Flow.TableWidthPercent; p <= 0 || p > 100 {
		errs = append(errs, fmt.Errorf("flow.table_width_percent must be in (0, 100], got %d", p))
	}
	return errors.Join(errs...)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

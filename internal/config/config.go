package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/menta2k/aspect-normalizer/pkg/errors"
	"github.com/menta2k/aspect-normalizer/pkg/planner"
	"github.com/menta2k/aspect-normalizer/pkg/processing"
	"github.com/menta2k/aspect-normalizer/pkg/ratio"
)

// Config holds the application configuration
type Config struct {
	ReferenceRatio  string       `json:"reference_ratio" yaml:"reference_ratio"`
	InputExtensions []string     `json:"input_extensions" yaml:"input_extensions"`
	WideAnchors     []string     `json:"wide_anchors" yaml:"wide_anchors"`
	TallAnchors     []string     `json:"tall_anchors" yaml:"tall_anchors"`
	Output          OutputConfig `json:"output" yaml:"output"`
	Log             LogConfig    `json:"log" yaml:"log"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Prefix          string `json:"prefix" yaml:"prefix"`
	TimestampLayout string `json:"timestamp_layout" yaml:"timestamp_layout"`
	JPEGQuality     int    `json:"jpeg_quality" yaml:"jpeg_quality"`
	PadColor        string `json:"pad_color" yaml:"pad_color"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	// File, when set, receives the log through a rotating writer
	File string `json:"file" yaml:"file"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		ReferenceRatio:  "4:3",
		InputExtensions: []string{"jpeg", "jpg", "cr2"},
		WideAnchors:     []string{"left", "center", "right"},
		TallAnchors:     []string{"top", "center", "bottom"},
		Output: OutputConfig{
			Prefix:          "Output - ",
			TimestampLayout: "2006-01-02 15:04:05.000000",
			JPEGQuality:     75,
			PadColor:        "#000000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields missing
// from the file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read config file", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".json":
		err = json.Unmarshal(data, config)
	default:
		return nil, apperrors.NewConfigError(fmt.Sprintf("unknown config format %q", filepath.Ext(filename)), nil)
	}
	if err != nil {
		return nil, apperrors.NewConfigError("failed to parse config file", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML or JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. Unknown anchor names are
// not rejected here; they surface as warnings while planning.
func (c *Config) Validate() error {
	if _, err := c.Reference(); err != nil {
		return apperrors.NewConfigError("reference_ratio", err)
	}

	if len(c.InputExtensions) == 0 {
		return apperrors.NewConfigError("input_extensions cannot be empty", nil)
	}

	if len(c.WideAnchors) == 0 || len(c.TallAnchors) == 0 {
		return apperrors.NewConfigError("wide_anchors and tall_anchors cannot be empty", nil)
	}

	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return apperrors.NewConfigError("output.jpeg_quality must be between 1 and 100", nil)
	}

	if _, err := processing.ParseHexColor(c.Output.PadColor); err != nil {
		return apperrors.NewConfigError("output.pad_color", err)
	}

	if c.Output.TimestampLayout == "" {
		return apperrors.NewConfigError("output.timestamp_layout cannot be empty", nil)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return apperrors.NewConfigError(fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format), nil)
	}

	return nil
}

// Reference parses the reference ratio
func (c *Config) Reference() (ratio.AspectRatio, error) {
	return ratio.Parse(c.ReferenceRatio)
}

// PlannerConfig builds the planner policy
func (c *Config) PlannerConfig() (planner.Config, error) {
	ref, err := c.Reference()
	if err != nil {
		return planner.Config{}, err
	}
	return planner.Config{
		Reference:   ref,
		WideAnchors: append([]string{}, c.WideAnchors...),
		TallAnchors: append([]string{}, c.TallAnchors...),
	}, nil
}

// ProcessingOptions builds the image codec options
func (c *Config) ProcessingOptions() (processing.Options, error) {
	pad, err := processing.ParseHexColor(c.Output.PadColor)
	if err != nil {
		return processing.Options{}, err
	}
	return processing.Options{
		JPEGQuality: c.Output.JPEGQuality,
		PadColor:    pad,
	}, nil
}

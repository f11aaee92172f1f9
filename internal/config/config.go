package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Prompt string    `mapstructure:"prompt"`
	Debug  bool      `mapstructure:"debug"`
	Color  ColorMode `mapstructure:"color"`
	Format Format    `mapstructure:"format"`
}

func Default() Config {
	return Config{
		Prompt: "Enter Expression: ",
		Color:  ColorAuto,
		Format: FormatText,
	}
}

// Validate fills empty fields with defaults and rejects unknown values.
func (c *Config) Validate() error {
	def := Default()
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	if c.Color == "" {
		c.Color = def.Color
	}
	if c.Format == "" {
		c.Format = def.Format
	}

	if !lo.Contains([]ColorMode{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if !lo.Contains([]Format{FormatText, FormatJSON}, c.Format) {
		return fmt.Errorf("invalid format %q", c.Format)
	}
	return nil
}

func Load(filePath string) (Config, error) {
	var parse func(io.Reader) (Config, error)
	switch filepath.Ext(filePath) {
	case ".json":
		parse = ParseJSON
	case ".yaml", ".yml":
		parse = ParseYAML
	default:
		return Config{}, fmt.Errorf("unsupported file extension: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	return parse(f)
}

func ParseYAML(r io.Reader) (Config, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("io.ReadAll: %w", err)
	}
	if len(bytes.TrimSpace(yamlBytes)) == 0 {
		return Default(), nil
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return Config{}, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	return ParseJSON(bytes.NewReader(jsonBytes))
}

func ParseJSON(r io.Reader) (Config, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("json.Decode: %w", err)
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("mapstructure.NewDecoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("mapstructure.Decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

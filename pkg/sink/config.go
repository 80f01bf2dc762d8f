package sink

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	FormatConsole = "console"
	FormatSlog    = "slog"
	FormatYAML    = "yaml"
	FormatDiscard = "discard"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config selects and configures a sink.
type Config struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"`
	// Color applies to the console format only.
	Color string `yaml:"color" json:"color" mapstructure:"color"`
	// Level and Message apply to the slog format only.
	Level   string `yaml:"level" json:"level" mapstructure:"level"`
	Message string `yaml:"message" json:"message" mapstructure:"message"`
}

// DefaultConfig returns the configuration of the default sink: the console, with color auto-detected.
func DefaultConfig() Config {
	return Config{
		Format:  FormatConsole,
		Color:   ColorAuto,
		Level:   "debug",
		Message: "dump",
	}
}

// LoadConfig reads a configuration file, YAML or JSON by extension, over the defaults.
// A missing or empty file yields the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read sink config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a generic map, such as a section of a larger configuration, over the defaults.
// Unknown keys are rejected.
func DecodeConfig(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode sink config: %w", err)
	}
	return cfg, nil
}

// FromConfig builds the sink cfg describes, writing to w.
func FromConfig(cfg Config, w io.Writer) (Sink, error) {
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		profile, err := colorProfile(cfg.Color, w)
		if err != nil {
			return nil, err
		}
		return NewConsole(w, WithProfile(profile)), nil
	case FormatSlog:
		var level slog.Level
		if cfg.Level != "" {
			if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
				return nil, fmt.Errorf("invalid slog level: %w", err)
			}
		}
		logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
		return NewSlog(logger, level, cfg.Message), nil
	case FormatYAML:
		return NewYAML(w), nil
	case FormatDiscard:
		return Discard, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
}

func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case "", ColorAuto:
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) || termenv.EnvNoColor() {
			return termenv.Ascii, nil
		}
		return termenv.NewOutput(f).EnvColorProfile(), nil
	case ColorAlways:
		return termenv.ANSI, nil
	case ColorNever:
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("%w: %q", ErrUnknownColorMode, mode)
}

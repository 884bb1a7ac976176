// Package loader reads state machine configurations from YAML, JSON and TOML documents.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/comalice/fsm"
)

var (
	ErrLoadConfig        = errors.New("failed to load config")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Format identifies a config document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// FromFile loads and validates the configuration stored at path.
func FromFile(path string) (fsm.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return fsm.Config{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return fsm.Config{}, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	defer f.Close()

	cfg, err := FromReader(f, format)
	if err != nil {
		return fsm.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromReader decodes and validates a configuration document.
func FromReader(r io.Reader, format Format) (fsm.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return fsm.Config{}, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	var cfg fsm.Config
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &cfg)
	case JSON:
		err = json.Unmarshal(data, &cfg)
	case TOML:
		cfg, err = decodeTOML(data)
	default:
		return fsm.Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		if errors.Is(err, fsm.ErrConfiguration) {
			return fsm.Config{}, err
		}
		return fsm.Config{}, fmt.Errorf("%w: %s: %w", ErrLoadConfig, format, err)
	}

	if err := cfg.Validate(); err != nil {
		return fsm.Config{}, err
	}
	return cfg, nil
}

// tomlDocument is the TOML layout. TOML tables are unordered, so states are
// listed as an array of tables to keep their order:
//
//	initial = "idle"
//
//	[[states]]
//	name = "idle"
//	transitions = { start = "running" }
type tomlDocument struct {
	Initial string      `toml:"initial"`
	States  []tomlState `toml:"states"`
}

type tomlState struct {
	Name        string            `toml:"name"`
	Transitions map[string]string `toml:"transitions"`
}

func decodeTOML(data []byte) (fsm.Config, error) {
	var doc tomlDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return fsm.Config{}, err
	}

	cfg := fsm.Config{Initial: doc.Initial, States: fsm.NewTable()}
	for i, s := range doc.States {
		if cfg.States.Has(s.Name) {
			return fsm.Config{}, fmt.Errorf("%w: duplicate state %q (states[%d])", fsm.ErrConfiguration, s.Name, i)
		}
		cfg.States.Add(s.Name, s.Transitions)
	}
	return cfg, nil
}

// Encode writes cfg as a YAML document.
func Encode(w io.Writer, cfg fsm.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/tallyhq/tally/tally"
)

// Config collects all configuration options.
type Config struct {
	Accumulator int    `yaml:"accumulator"`
	Addend      Addend `yaml:"addend"`
}

// Default returns the built-in scenario: 42 plus Some(12).
func Default() Config {
	value := tally.DefaultAddend

	return Config{
		Accumulator: tally.DefaultInitial,
		Addend: Addend{
			Type:   "some",
			Config: &someAddend{Value: &value},
		},
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Addend.Type == "" || c.Addend.Config == nil {
		return fmt.Errorf("addend type is required")
	}

	if err := c.Addend.Config.Validate(); err != nil {
		return err
	}

	return nil
}

// NewRunner creates a tally.Runner for the configured scenario.
func (c Config) NewRunner() tally.Runner {
	return tally.Runner{
		Initial: c.Accumulator,
		Addend:  c.Addend.Config.CreateAddend(),
	}
}

// Load reads the configuration from a YAML file.
// An empty path returns the default configuration.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads the configuration from YAML.
// Options missing from the input keep their default values.
func Decode(r io.Reader) (Config, error) {
	config := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// rawConfig is a general struct to be used by other config structs to unmarshal yaml config first.
type rawConfig struct {
	Type   string                 `yaml:"type"`
	Config map[string]interface{} `yaml:"config"`
}

func decode(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      output,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

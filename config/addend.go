package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/tallyhq/tally/pkg/option"
)

var (
	addendFactoriesMu sync.RWMutex
	addendFactories   = make(map[string]AddendFactory)
)

// RegisterAddendFactory makes an AddendFactory available by the provided name in configuration.
//
// If RegisterAddendFactory is called twice with the same name or if factory is nil,
// it panics.
func RegisterAddendFactory(name string, factory AddendFactory) {
	addendFactoriesMu.Lock()
	defer addendFactoriesMu.Unlock()

	if factory == nil {
		panic("registering addend factory: factory is nil")
	}

	if _, dup := addendFactories[name]; dup {
		panic("registering addend factory: registration called twice for factory " + name)
	}

	addendFactories[name] = factory
}

func init() {
	RegisterAddendFactory("some", someAddend{})
	RegisterAddendFactory("none", noneAddend{})
}

// AddendTypes returns the sorted list of registered addend types.
func AddendTypes() []string {
	addendFactoriesMu.RLock()
	defer addendFactoriesMu.RUnlock()

	types := maps.Keys(addendFactories)
	sort.Strings(types)

	return types
}

// Addend is the configuration for the optional value added to the accumulator.
type Addend struct {
	Type   string
	Config AddendFactory
}

func (c *Addend) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	addendFactoriesMu.RLock()
	factory, ok := addendFactories[rawConfig.Type]
	addendFactoriesMu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown addend type: %q (expected one of: %s)", rawConfig.Type, strings.Join(AddendTypes(), ", "))
	}

	factory = factory.New()

	err = decode(rawConfig.Config, factory)
	if err != nil {
		return fmt.Errorf("addend: %s: %w", rawConfig.Type, err)
	}

	c.Type = rawConfig.Type
	c.Config = factory

	return nil
}

// AddendFactory creates the optional addend.
type AddendFactory interface {
	// New returns a pointer to an empty factory that configuration can be decoded into.
	New() AddendFactory
	CreateAddend() option.Option[int]
	Validate() error
}

type someAddend struct {
	Value *int `mapstructure:"value"`
}

func (c someAddend) New() AddendFactory {
	return &someAddend{}
}

func (c someAddend) CreateAddend() option.Option[int] {
	if c.Value == nil {
		return option.None[int]()
	}

	return option.Some(*c.Value)
}

func (c someAddend) Validate() error {
	if c.Value == nil {
		return fmt.Errorf("addend: some: value is required")
	}

	return nil
}

type noneAddend struct{}

func (c noneAddend) New() AddendFactory {
	return &noneAddend{}
}

func (c noneAddend) CreateAddend() option.Option[int] {
	return option.None[int]()
}

func (c noneAddend) Validate() error {
	return nil
}

package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

// Package category UUIDs of the upstream library the generated elements
// sort into.
const (
	categoryQFN  = "e077449f-2272-41ce-92ce-0cb99dfa0697"
	categoryDFN  = "88cbb15c-2b69-4612-8764-c5d323f88f13"
	categorySOIC = "a074fabf-4912-4c29-bc6b-451bf43c2193"
	categoryChip = "a20f0330-06d3-4bc2-a1fa-f8577deb6770"

	categoryResistorDevice = "1039f038-20a6-4bfe-89c1-99f34fbb45bd"
)

// RunConfig is the YAML run manifest consumed by the CLI. All fields are
// optional; the zero manifest generates every family into ./out.
type RunConfig struct {
	// Output is the library root the elements are written to.
	Output string `yaml:"output"`
	// Models is the directory for 3D models. Empty disables model output.
	Models string `yaml:"models"`
	// Author is recorded in the element headers.
	Author string `yaml:"author"`
	// Families restricts the run to a subset of qfn, dfn, soic, chip.
	Families []string `yaml:"families"`
}

// defaultFamilies is the generation order of a full run.
var defaultFamilies = []string{"qfn", "dfn", "soic", "chip"}

// LoadRunConfig reads and validates a run manifest. Unknown keys are
// rejected so typos do not silently disable parts of a run.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	cfg := &RunConfig{}
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("run config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate fills in the defaults and rejects unknown family names.
func (c *RunConfig) Validate() error {
	c.applyDefaults()
	for _, f := range c.Families {
		if !knownFamily(f) {
			return fmt.Errorf("unknown family %q", f)
		}
	}
	return nil
}

func unmarshalStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *RunConfig) applyDefaults() {
	if c.Output == "" {
		c.Output = "out"
	}
	if c.Author == "" {
		c.Author = "OpenTraceParts"
	}
	if len(c.Families) == 0 {
		c.Families = append([]string(nil), defaultFamilies...)
	}
}

func knownFamily(name string) bool {
	for _, f := range defaultFamilies {
		if f == name {
			return true
		}
	}
	return false
}

// Options returns the element options derived from the manifest.
func (c *RunConfig) Options() Options {
	return Options{
		Author: c.Author,
		Models: c.Models != "",
	}
}

// Items collects the build items of all selected families.
func (c *RunConfig) Items(cache *uuidcache.Cache) []Item {
	opts := c.Options()
	var items []Item
	for _, family := range c.Families {
		switch family {
		case "qfn":
			items = append(items, QfnItems(cache, opts)...)
		case "dfn":
			items = append(items, DfnItems(cache, opts)...)
		case "soic":
			items = append(items, SoicItems(cache, opts)...)
		case "chip":
			items = append(items, ChipItems(cache, opts)...)
		}
	}
	return items
}

// Package catalog loads item types and named item instances from YAML.
//
// It is a small host item model: instances implement core.Item together
// with the corpse, container and transform capabilities, which lets tools
// and tests drive the mark store without a game attached.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/memmark/pkg/core"
)

// ErrUnknownItem is returned when a name is neither an item nor a type.
var ErrUnknownItem = errors.New("unknown item")

// TypeDef describes an item kind.
type TypeDef struct {
	Name      string `yaml:"name"`
	Transform string `yaml:"transform,omitempty"`
}

// ItemDef describes a named item instance.
type ItemDef struct {
	Type     string   `yaml:"type"`
	Label    string   `yaml:"label,omitempty"`
	CorpseOf string   `yaml:"corpse_of,omitempty"`
	Contents []string `yaml:"contents,omitempty"`
}

// Catalog is a parsed catalog file.
type Catalog struct {
	Types map[string]TypeDef `yaml:"types"`
	Items map[string]ItemDef `yaml:"items"`
}

// Parse reads a catalog from r.
func Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid catalog yaml: %w", err)
	}
	if c.Types == nil {
		c.Types = make(map[string]TypeDef)
	}
	if c.Items == nil {
		c.Items = make(map[string]ItemDef)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog file. An empty path yields an empty catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(strings.NewReader(""))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (c *Catalog) validate() error {
	for name, def := range c.Items {
		if def.Type == "" {
			return fmt.Errorf("item %q: type is required", name)
		}
		for _, inner := range def.Contents {
			if _, ok := c.Items[inner]; !ok {
				if _, ok := c.Types[inner]; !ok {
					return fmt.Errorf("item %q: %w %q in contents", name, ErrUnknownItem, inner)
				}
			}
		}
	}
	return nil
}

// Names returns the named items in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Items))
	for name := range c.Items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the instance called name. Names not defined as items but
// defined as types yield a bare instance of that type. With allowBare, any
// other name is treated as a bare type identifier.
func (c *Catalog) Lookup(name string, allowBare bool) (*Instance, error) {
	if _, ok := c.Items[name]; ok {
		return c.build(name, map[string]bool{})
	}
	if _, ok := c.Types[name]; ok || allowBare {
		return c.bare(name), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

func (c *Catalog) bare(typeID string) *Instance {
	def := c.Types[typeID]
	label := def.Name
	if label == "" {
		label = typeID
	}
	return &Instance{typeID: typeID, label: label, transform: def.Transform}
}

func (c *Catalog) build(name string, visiting map[string]bool) (*Instance, error) {
	def, ok := c.Items[name]
	if !ok {
		return c.bare(name), nil
	}
	if visiting[name] {
		return nil, fmt.Errorf("item %q contains itself", name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	inst := c.bare(def.Type)
	if def.Label != "" {
		inst.label = def.Label
	}
	inst.corpseOf = def.CorpseOf

	for _, inner := range def.Contents {
		child, err := c.build(inner, visiting)
		if err != nil {
			return nil, err
		}
		inst.contents = append(inst.contents, child)
	}
	return inst, nil
}

var _ core.Item = (*Instance)(nil)

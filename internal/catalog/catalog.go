package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no guardian has the requested ID.
var ErrNotFound = errors.New("guardian not found")

//go:embed guardians.yaml
var embeddedGuardians []byte

// Catalog is a read-only registry of guardians keyed by ID.
type Catalog struct {
	guardians []Guardian
	byID      map[int]*Guardian
}

type catalogDoc struct {
	Guardians []Guardian `yaml:"guardians"`
}

// def is the package-level catalog, loaded from the embedded document.
var def *Catalog

func init() {
	c, err := Parse(embeddedGuardians)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded guardians: %v", err))
	}
	def = c
}

// Parse builds a Catalog from a YAML document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse guardians: %w", err)
	}
	return New(doc.Guardians)
}

// LoadFile reads and parses a guardian document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// New builds a Catalog from guardians in display order.
func New(guardians []Guardian) (*Catalog, error) {
	if err := validateGuardians(guardians); err != nil {
		return nil, err
	}
	c := &Catalog{
		guardians: guardians,
		byID:      make(map[int]*Guardian, len(guardians)),
	}
	for i := range c.guardians {
		c.byID[c.guardians[i].ID] = &c.guardians[i]
	}
	return c, nil
}

// Get returns the guardian with the given ID.
func (c *Catalog) Get(id int) (*Guardian, error) {
	g, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return g, nil
}

// All returns every guardian in display order.
func (c *Catalog) All() []Guardian {
	return c.guardians
}

// Len returns the number of guardians.
func (c *Catalog) Len() int {
	return len(c.guardians)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return def
}

// Get looks up a guardian in the embedded catalog.
func Get(id int) (*Guardian, error) {
	return def.Get(id)
}

// All returns every guardian of the embedded catalog.
func All() []Guardian {
	return def.All()
}

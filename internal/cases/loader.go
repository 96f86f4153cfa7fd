package cases

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"golang.org/x/mod/semver"
)

// PackSchemaVersion is the case-pack schema version this build understands.
// Packs with a greater major version are rejected.
const PackSchemaVersion = "v1.2.0"

//go:embed seed/cases.json
var seedPack []byte

// Pack is a loadable collection of cases.
type Pack struct {
	SchemaVersion string  `json:"schema_version"`
	Name          string  `json:"name"`
	Cases         []*Case `json:"cases"`
}

// ParsePack decodes and validates a case pack. The pack's schema_version
// must be valid semver with the same major version as PackSchemaVersion and
// must not be newer than it.
func ParsePack(data []byte) (*Pack, error) {
	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse case pack: %w", err)
	}

	if !semver.IsValid(p.SchemaVersion) {
		return nil, fmt.Errorf("case pack schema_version %q is not valid semver", p.SchemaVersion)
	}
	if semver.Major(p.SchemaVersion) != semver.Major(PackSchemaVersion) {
		return nil, fmt.Errorf("case pack schema %s is incompatible with supported %s",
			p.SchemaVersion, PackSchemaVersion)
	}
	if semver.Compare(p.SchemaVersion, PackSchemaVersion) > 0 {
		return nil, fmt.Errorf("case pack schema %s is newer than supported %s",
			p.SchemaVersion, PackSchemaVersion)
	}

	seen := make(map[string]bool, len(p.Cases))
	for i, c := range p.Cases {
		if !c.Valid() {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true
	}

	return &p, nil
}

// PackProvider is a Provider backed by an in-memory case pack.
type PackProvider struct {
	mu   sync.RWMutex
	byID map[string]*Case
}

// NewPackProvider builds a provider from an already-parsed pack.
func NewPackProvider(p *Pack) *PackProvider {
	byID := make(map[string]*Case, len(p.Cases))
	for _, c := range p.Cases {
		byID[c.ID] = c
	}
	return &PackProvider{byID: byID}
}

// LoadSeed returns a provider for the embedded seed pack.
func LoadSeed() (*PackProvider, error) {
	p, err := ParsePack(seedPack)
	if err != nil {
		return nil, fmt.Errorf("load seed pack: %w", err)
	}
	return NewPackProvider(p), nil
}

// LoadFile returns a provider for a case pack on disk.
func LoadFile(path string) (*PackProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case pack: %w", err)
	}
	p, err := ParsePack(data)
	if err != nil {
		return nil, err
	}
	return NewPackProvider(p), nil
}

func (p *PackProvider) GetCase(_ context.Context, id string) (*Case, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown case %q", id)
	}
	return c, nil
}

func (p *PackProvider) ListCases(_ context.Context) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.byID))
	for id := range p.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

package presets

import (
	"errors"
	"fmt"
	"sort"
)

// Registry holds loaded presets keyed by ID.
type Registry struct {
	byID map[string]*Preset
	all  []Preset
}

// NewRegistry creates a registry from loaded presets.
func NewRegistry(presets []Preset) *Registry {
	registry := &Registry{
		byID: make(map[string]*Preset),
		all:  presets,
	}
	for i := range presets {
		registry.byID[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and validates the embedded presets.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	for i := range presets {
		if err := presets[i].validate(); err != nil {
			return nil, err
		}
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Preset {
	return r.byID[id]
}

// All returns all presets in file order.
func (r *Registry) All() []Preset {
	return r.all
}

// IDs returns the preset IDs sorted alphabetically.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}

func (p *Preset) validate() error {
	if p.ID == "" {
		return errors.New("preset without id")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("preset %s: invalid size %dx%d", p.ID, p.Width, p.Height)
	}
	for _, xy := range []*[2]int{p.Start, p.Finish} {
		if xy == nil {
			continue
		}
		if xy[0] < 0 || xy[0] >= p.Width || xy[1] < 0 || xy[1] >= p.Height {
			return fmt.Errorf("preset %s: coordinate %v outside %dx%d", p.ID, *xy, p.Width, p.Height)
		}
	}
	return nil
}

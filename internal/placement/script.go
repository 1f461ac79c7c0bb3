package placement

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a complete scene description: the textures to load, the materials
// to define, and the ordered instances to draw. Draw order is script order.
type Script struct {
	Textures   []TextureRef  `yaml:"textures"`
	Materials  []MaterialDef `yaml:"materials"`
	Placements []Placement   `yaml:"placements"`
}

// Parse decodes a YAML script and validates that every placement's tags
// resolve against the script's own texture and material lists.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene script: %w", err)
	}
	return Parse(data)
}

// Validate checks that every material and texture tag referenced by a
// placement is declared before it is drawn. Unresolved tags only degrade the
// rendered image at draw time, so they are caught loudly here instead.
func (s *Script) Validate() error {
	textures := make(map[string]bool, len(s.Textures))
	for _, t := range s.Textures {
		textures[t.Tag] = true
	}
	materials := make(map[string]bool, len(s.Materials))
	for _, m := range s.Materials {
		materials[m.Tag] = true
	}

	var errs []error
	for i, p := range s.Placements {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("placement %d", i)
		}
		if p.Texture != "" && !textures[p.Texture] {
			errs = append(errs, fmt.Errorf("%s: texture tag %q not declared", name, p.Texture))
		}
		if p.Texture != "" && p.Color != nil {
			errs = append(errs, fmt.Errorf("%s: both texture and color set", name))
		}
		if p.Material != "" && !materials[p.Material] {
			errs = append(errs, fmt.Errorf("%s: material tag %q not declared", name, p.Material))
		}
	}
	return errors.Join(errs...)
}

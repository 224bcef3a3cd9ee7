package materials

import (
	"errors"
	"fmt"
)

var ErrMissingMaterial = errors.New("material not in set")

// Factory builds one material for a kind and algorithm.
type Factory func(Kind, Algorithm) (*Material, error)

// DefaultFactory returns a material carrying the embedded GLSL for the pair.
func DefaultFactory(kind Kind, alg Algorithm) (*Material, error) {
	key := Key{Kind: kind, Algorithm: alg}
	vert, frag, err := ShaderSource(key)
	if err != nil {
		return nil, err
	}
	return NewMaterial(key.String(), key, vert, frag), nil
}

// Set is the per-scene table of materials, one per (Kind, Algorithm).
type Set struct {
	materials map[Key]*Material
}

// NewSet builds every kind/algorithm combination with factory.
func NewSet(factory Factory) (*Set, error) {
	s := &Set{materials: make(map[Key]*Material, len(Kinds)*len(Algorithms))}
	for _, k := range Kinds {
		for _, a := range Algorithms {
			m, err := factory(k, a)
			if err != nil {
				return nil, fmt.Errorf("create %s material: %w", Key{k, a}, err)
			}
			s.materials[Key{k, a}] = m
		}
	}
	return s, nil
}

// Lookup returns the material for kind and alg.
func (s *Set) Lookup(kind Kind, alg Algorithm) (*Material, error) {
	m, ok := s.materials[Key{kind, alg}]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingMaterial, Key{kind, alg})
	}
	return m, nil
}

// All returns the materials of the set in Kind, Algorithm order.
func (s *Set) All() []*Material {
	out := make([]*Material, 0, len(s.materials))
	for _, k := range Kinds {
		for _, a := range Algorithms {
			if m, ok := s.materials[Key{k, a}]; ok {
				out = append(out, m)
			}
		}
	}
	return out
}

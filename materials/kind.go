package materials

import (
	"errors"
	"fmt"
	"strings"
)

// Kind distinguishes the heightmapped ground shaders from the ones used on
// ordinary lit models.
type Kind int

const (
	Ground Kind = iota
	Illum
)

var Kinds = []Kind{Ground, Illum}

func (k Kind) String() string {
	switch k {
	case Ground:
		return "ground"
	case Illum:
		return "illum"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Algorithm is the per-vertex or per-fragment lighting model.
type Algorithm int

const (
	Gouraud Algorithm = iota
	Phong
)

var Algorithms = []Algorithm{Gouraud, Phong}

var ErrUnknownAlgorithm = errors.New("unknown shading algorithm")

func (a Algorithm) String() string {
	switch a {
	case Gouraud:
		return "gouraud"
	case Phong:
		return "phong"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func (a Algorithm) Valid() bool {
	return a == Gouraud || a == Phong
}

// ParseAlgorithm accepts "gouraud" or "phong", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gouraud":
		return Gouraud, nil
	case "phong":
		return Phong, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Key identifies one material in a Set.
type Key struct {
	Kind      Kind
	Algorithm Algorithm
}

func (k Key) String() string {
	return k.Kind.String() + "_" + k.Algorithm.String()
}

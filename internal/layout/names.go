package layout

import (
	"fmt"
	"slices"
)

// binder associates names with children produced by a split.
type binder interface {
	bind(named map[string]*Node, children []*Node, constraints int) error
}

// positional binds names[i] to children[i]; empty names are skipped.
type positional []string

func (p positional) bind(named map[string]*Node, children []*Node, constraints int) error {
	if len(p) != constraints {
		return fmt.Errorf("%w: %d names for %d constraints", ErrNameSizeMismatch, len(p), constraints)
	}
	for i, name := range p {
		if name == "" {
			continue
		}
		named[name] = children[i]
	}
	return nil
}

// indexed binds the child at each index to its name. Indices are applied
// in ascending order, so a name given twice ends up on the higher index.
type indexed map[int]string

func (m indexed) bind(named map[string]*Node, children []*Node, _ int) error {
	keys := make([]int, 0, len(m))
	for i := range m {
		keys = append(keys, i)
	}
	slices.Sort(keys)

	for _, i := range keys {
		name := m[i]
		if i < 0 || i >= len(children) {
			return fmt.Errorf("%w: index %d for %q with %d children", ErrNameIndexOutOfRange, i, name, len(children))
		}
		named[name] = children[i]
	}
	return nil
}

package layout

// SplitOption configures a split.
type SplitOption func(*splitConfig)

type splitConfig struct {
	strict  bool
	binders []binder
	then    []func(children []*Node) error
}

// Strict makes the split fail with ErrRemainingSpace instead of creating a
// remaining child.
func Strict() SplitOption {
	return func(c *splitConfig) {
		c.strict = true
	}
}

// WithNames binds names to children by position. There must be exactly one
// name per constraint; use "" to leave a child unnamed.
func WithNames(names ...string) SplitOption {
	return func(c *splitConfig) {
		c.binders = append(c.binders, positional(names))
	}
}

// WithNameAt binds names to the children at the given indices. The remaining
// child, when present, can be addressed by the index after the last constraint.
func WithNameAt(names map[int]string) SplitOption {
	return func(c *splitConfig) {
		c.binders = append(c.binders, indexed(names))
	}
}

// Then registers a function called with the new children once they are
// created and bound, typically to split them further.
func Then(fn func(children []*Node) error) SplitOption {
	return func(c *splitConfig) {
		c.then = append(c.then, fn)
	}
}

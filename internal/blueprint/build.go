package blueprint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grindlemire/go-rayzer/internal/ctxlog"
	"github.com/grindlemire/go-rayzer/internal/layout"
)

// Build creates the layout tree described by bp.
func Build(ctx context.Context, bp *Blueprint) (*layout.Node, error) {
	root := layout.NewNode(bp.X, bp.Y, bp.Width, bp.Height)
	if bp.Split == nil {
		return root, nil
	}
	if err := apply(ctx, root, *bp.Split, bp.Name); err != nil {
		return nil, err
	}
	return root, nil
}

// apply splits node as s describes, then applies s's nested splits to the
// targeted children.
func apply(ctx context.Context, node *layout.Node, s Split, path string) error {
	logger := ctxlog.FromContext(ctx)

	axis, err := layout.ParseAxis(s.Axis)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var opts []layout.SplitOption
	if s.Strict {
		opts = append(opts, layout.Strict())
	}
	if len(s.Names) > 0 {
		opts = append(opts, layout.WithNames(s.Names...))
	}
	if len(s.NameAt) > 0 {
		opts = append(opts, layout.WithNameAt(s.NameAt))
	}

	// Errors from nested splits already carry their own path.
	var nestedErr error
	opts = append(opts, layout.Then(func([]*layout.Node) error {
		for _, sub := range s.Splits {
			target, err := resolveTarget(node, sub.Target)
			if err != nil {
				nestedErr = fmt.Errorf("%s: %w", path, err)
				return nestedErr
			}
			if err := apply(ctx, target, sub, path+"/"+sub.Target); err != nil {
				nestedErr = err
				return nestedErr
			}
		}
		return nil
	}))

	children, err := node.Split(axis, s.Constraints, opts...)
	if nestedErr != nil {
		return nestedErr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Applied split.", "path", path, "axis", axis.String(), "children", len(children))
	return nil
}

// resolveTarget finds the child of node addressed by target: a bound name
// first, then "remaining", then a decimal index.
func resolveTarget(node *layout.Node, target string) (*layout.Node, error) {
	if target == "" {
		return nil, fmt.Errorf("%w: nested split has no target", ErrUnknownTarget)
	}
	if child, ok := node.Child(target); ok {
		return child, nil
	}
	if target == "remaining" {
		if rem := node.Remaining(); rem != nil {
			return rem, nil
		}
		return nil, fmt.Errorf("%w: %q: split left no remaining space", ErrUnknownTarget, target)
	}
	if i, err := strconv.Atoi(target); err == nil {
		children := node.Children()
		if i >= 0 && i < len(children) {
			return children[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
}

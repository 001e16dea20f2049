// Package layout splits rectangles into trees of contiguous sub-rectangles.
//
// A [Node] starts as a [Leaf]. [Node.SplitRows] stacks children along its
// height and [Node.SplitCols] along its width; each child's extent on the
// split axis comes from the distribute package, and the cross axis is
// inherited unchanged. A node is split at most once, but its children stay
// independently splittable.
//
// Types are re-exported through the root rayzer package for public consumption.
package layout

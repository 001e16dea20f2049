package layout

import "errors"

var (
	// ErrAlreadySplit is returned when splitting a node that is not a leaf.
	ErrAlreadySplit = errors.New("node is already split")

	// ErrRemainingSpace is returned by strict splits whose constraints leave
	// space that would need an extra child.
	ErrRemainingSpace = errors.New("split leaves remaining space")

	// ErrNameSizeMismatch is returned when positional names and constraints differ in length.
	ErrNameSizeMismatch = errors.New("size of names and size of constraints mismatch")

	// ErrNameIndexOutOfRange is returned when an indexed name addresses no child.
	ErrNameIndexOutOfRange = errors.New("name index out of range")

	// ErrUnknownAxis is returned by ParseAxis for unrecognized axis names.
	ErrUnknownAxis = errors.New("unknown axis")
)

package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind. Parameterized failures are
// reported through the typed errors below, which unwrap to these
// sentinels so callers can match with errors.Is either way.
var (
	// ErrOverLayer is returned when a structural document nests deeper
	// than the id scheme can address.
	ErrOverLayer = errors.New("tree depth limit exceeded")

	// ErrNullInput is returned when a required node is missing.
	ErrNullInput = errors.New("required node missing")

	// ErrOverItem is returned when an item would receive more children
	// than the id scheme can address.
	ErrOverItem = errors.New("fan-out limit exceeded")

	// ErrMissingNode is returned when a level that must contain item
	// nodes contains none.
	ErrMissingNode = errors.New("expected node absent")

	// ErrMissingAttribute is returned when a required attribute is absent.
	ErrMissingAttribute = errors.New("expected attribute absent")

	// ErrIllegalIndex is returned for an out-of-range, malformed or
	// duplicated index attribute.
	ErrIllegalIndex = errors.New("illegal index")

	// ErrIllegalID is returned when a resolved item has no valid parent id.
	ErrIllegalID = errors.New("illegal item id")

	// ErrUsedIndex is returned when a batch already holds a value for
	// an item.
	ErrUsedIndex = errors.New("batch index already used for item")

	// ErrUnregisteredIndex is returned when a batch index is not known
	// to the registry.
	ErrUnregisteredIndex = errors.New("unregistered batch index")

	// ErrUnregisteredItem is returned when a name resolves to no item.
	ErrUnregisteredItem = errors.New("unregistered item")
)

// MissingAttributeError reports the attribute a node failed to carry.
type MissingAttributeError struct {
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("expected attribute %q absent", e.Attr)
}

func (e *MissingAttributeError) Unwrap() error { return ErrMissingAttribute }

// IllegalIndexError reports an index attribute that is out of range,
// unparsable or already taken by a sibling.
type IllegalIndexError struct {
	Raw       string
	Duplicate bool
}

func (e *IllegalIndexError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("illegal index %q: already used at this level", e.Raw)
	}
	return fmt.Sprintf("illegal index %q: out of range 1..%d", e.Raw, maxChildren)
}

func (e *IllegalIndexError) Unwrap() error { return ErrIllegalIndex }

// UsedIndexError reports a batch that already holds a value for an item.
type UsedIndexError struct {
	Batch uint32
	Item  string
}

func (e *UsedIndexError) Error() string {
	return fmt.Sprintf("batch %d already holds a value for item %q", e.Batch, e.Item)
}

func (e *UsedIndexError) Unwrap() error { return ErrUsedIndex }

// UnregisteredIndexError reports a batch index absent from the registry.
type UnregisteredIndexError struct {
	Index uint32
}

func (e *UnregisteredIndexError) Error() string {
	return fmt.Sprintf("batch index %d is not registered", e.Index)
}

func (e *UnregisteredIndexError) Unwrap() error { return ErrUnregisteredIndex }

// UnregisteredItemError reports a name that resolves to no item.
type UnregisteredItemError struct {
	Name string
}

func (e *UnregisteredItemError) Error() string {
	return fmt.Sprintf("no item named %q", e.Name)
}

func (e *UnregisteredItemError) Unwrap() error { return ErrUnregisteredItem }

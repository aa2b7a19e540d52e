// Package itemid implements the packed hierarchical item identifier.
//
// An ID subdivides a uint32 into eight 4-bit fields, one per tree level,
// least-significant field first. Each field holds the 1-based sibling
// position (1..15) of the item at that level; 0 marks an unused level.
// The ID is therefore the literal path of sibling positions from the root
// down to the item, and decoding is a plain nibble walk requiring no
// auxiliary index.
package itemid

const (
	// FieldBits is the width of one per-level field.
	FieldBits = 4
	// FieldMask extracts one field.
	FieldMask = 0xF
	// MaxIndex is the highest legal sibling position, capping fan-out
	// at 15 children per item.
	MaxIndex = 15
	// MaxLayers is the number of fields that fit in a 32-bit ID,
	// capping tree depth at 8 levels.
	MaxLayers = 32 / FieldBits
)

// ID is the packed identifier of an item within a tree.
type ID uint32

// Root is the reserved identifier of the tree root. It is never assigned
// to any other item.
const Root ID = 0

// Child returns the identifier of the child at 1-based sibling position
// index, placed at the given layer (the root's direct children are layer 0).
// The parent's own fields occupy strictly lower bit positions, so the OR
// is a concatenation.
func (id ID) Child(index uint32, layer int) ID {
	return ID(index<<(FieldBits*layer)) | id
}

// Field returns the sibling position stored at the given layer, or 0 when
// the layer is unused.
func (id ID) Field(layer int) uint32 {
	return uint32(id>>(FieldBits*layer)) & FieldMask
}

// Level returns the number of populated fields, i.e. the item's depth.
// The root has level 0.
func (id ID) Level() int {
	n := 0
	for id != 0 {
		n++
		id >>= FieldBits
	}
	return n
}

// Parent returns the identifier with the most-significant populated field
// cleared, i.e. the id of the item's parent. The root is its own parent.
func (id ID) Parent() ID {
	level := id.Level()
	if level == 0 {
		return Root
	}
	return id &^ (FieldMask << (FieldBits * (level - 1)))
}

// Path returns the sibling positions from the root down to the item.
func (id ID) Path() []uint32 {
	path := make([]uint32, 0, id.Level())
	for id != 0 {
		path = append(path, uint32(id)&FieldMask)
		id >>= FieldBits
	}
	return path
}

package engine

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/batchtree/document"
	"github.com/hupe1980/batchtree/itemid"
)

// maxChildren is the fan-out cap imposed by the 4-bit sibling field.
const maxChildren = itemid.MaxIndex

// Build constructs the item tree from a structural document. It is
// called exactly once per engine. On failure the first error encountered
// is returned; items allocated before the failure are not rolled back and
// stay reachable from the root.
func (e *Engine) Build(root document.Node) error {
	return e.makeItems(root, &e.root, 0)
}

// makeItems processes one structural node per target item. Children of
// node become children of parent, addressed at the given layer.
func (e *Engine) makeItems(node document.Node, parent *Item, layer int) error {
	if node == nil || parent == nil {
		return ErrNullInput
	}
	// A childless node below the top level is a leaf; a chain may occupy
	// all 8 addressable levels before the depth check trips.
	if node.FirstChild("") == nil && layer > 0 {
		return nil
	}
	if layer >= itemid.MaxLayers {
		return ErrOverLayer
	}

	var firstErr error
	count, legal := 0, 0
	seen := bitset.New(maxChildren + 1)
	for child := node.FirstChild(contentTag); child != nil; child = child.NextSibling(contentTag) {
		count++
		if count > maxChildren {
			return ErrOverItem
		}

		raw, ok := child.Attribute(attrIndex)
		if !ok {
			if firstErr == nil {
				firstErr = &MissingAttributeError{Attr: attrIndex}
			}
			continue
		}
		index, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || index == 0 || index > maxChildren {
			if firstErr == nil {
				firstErr = &IllegalIndexError{Raw: raw}
			}
			continue
		}
		if seen.Test(uint(index)) {
			if firstErr == nil {
				firstErr = &IllegalIndexError{Raw: raw, Duplicate: true}
			}
			continue
		}
		name, ok := child.Attribute(attrName)
		if !ok {
			if firstErr == nil {
				firstErr = &MissingAttributeError{Attr: attrName}
			}
			continue
		}

		seen.Set(uint(index))
		item := &Item{
			id:   parent.id.Child(uint32(index), layer),
			name: name,
		}
		parent.children = append(parent.children, item)
		legal++

		if err := e.makeItems(child, item, layer+1); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if count == 0 {
		return ErrMissingNode
	}
	if legal != count || firstErr != nil {
		return firstErr
	}
	return nil
}

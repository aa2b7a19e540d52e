package engine

import (
	"github.com/hupe1980/batchtree/itemid"
	"github.com/hupe1980/batchtree/value"
)

// findByID resolves an id by walking its sibling-position fields from the
// root. It fails when a field is out of range for the actual tree shape
// or the reconstructed id stops matching the target.
func (e *Engine) findByID(id itemid.ID) *Item {
	if id == itemid.Root {
		return &e.root
	}
	cur := &e.root
	rest := id
	for rest != 0 {
		index := rest.Field(0)
		if index == 0 || int(index) > len(cur.children) {
			return nil
		}
		cur = cur.children[index-1]
		if cur.id == id {
			return cur
		}
		rest >>= itemid.FieldBits
	}
	return nil
}

// findByName returns the first item with the given name in a pre-order
// depth-first traversal of the subtree, the subtree root excluded.
func (it *Item) findByName(name string) *Item {
	for _, child := range it.children {
		if child.name == name {
			return child
		}
		if found := child.findByName(name); found != nil {
			return found
		}
	}
	return nil
}

// ItemName resolves an id to its item's name. It reports false for ids
// that do not address a built item, and for items with an empty name
// (the root).
func (e *Engine) ItemName(id itemid.ID) (string, bool) {
	item := e.findByID(id)
	if item == nil || item.name == "" {
		return "", false
	}
	return item.name, true
}

// ItemByName returns the first item with the given name in a pre-order
// depth-first traversal of the whole tree.
func (e *Engine) ItemByName(name string) (*Item, bool) {
	item := e.root.findByName(name)
	return item, item != nil
}

// BatchIndices returns a snapshot of the registry in ascending order.
func (e *Engine) BatchIndices() []uint32 {
	return e.registry.ToArray()
}

// BatchValues projects one batch over the whole tree. The result has one
// entry per item, keyed by name: items without a value for this batch map
// to the "none" sentinel. When names collide, the first pre-order match
// wins. Returned values are independent copies.
func (e *Engine) BatchValues(batch uint32) (map[string]value.Value, error) {
	if !e.registry.Contains(batch) {
		return nil, &UnregisteredIndexError{Index: batch}
	}
	out := make(map[string]value.Value)
	var walk func(*Item)
	walk = func(it *Item) {
		if _, taken := out[it.name]; !taken {
			if v, ok := it.memberValue(batch); ok {
				out[it.name] = v.Clone()
			} else {
				out[it.name] = value.None()
			}
		}
		for _, c := range it.children {
			walk(c)
		}
	}
	walk(&e.root)
	return out, nil
}

// ItemValues returns every value the named item holds, keyed by batch
// index. A member shared by N batches contributes N entries with equal
// values. Returned values are independent copies.
func (e *Engine) ItemValues(name string) (map[uint32]value.Value, error) {
	item := e.root.findByName(name)
	if item == nil {
		return nil, &UnregisteredItemError{Name: name}
	}
	out := make(map[uint32]value.Value)
	for _, m := range item.members {
		it := m.batches.Iterator()
		for it.HasNext() {
			out[it.Next()] = m.val.Clone()
		}
	}
	return out, nil
}

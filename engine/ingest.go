package engine

import (
	"github.com/hupe1980/batchtree/document"
	"github.com/hupe1980/batchtree/value"
)

// AddBatch ingests a batch document. Each Batch block is processed in
// document order; a block's index joins the registry only once every one
// of its member entries has been stored. A failing block aborts the call
// with its already-inserted members left in place, while blocks committed
// earlier stay committed.
func (e *Engine) AddBatch(root document.Node) error {
	if root == nil {
		return ErrNullInput
	}
	for block := root.FirstChild(batchTag); block != nil; block = block.NextSibling(batchTag) {
		batch := batchIndex(block)
		if err := e.addMembers(block.FirstChild(""), batch); err != nil {
			return err
		}
		e.registry.Add(batch)
	}
	return nil
}

// batchIndex reads a block's decimal index attribute. Absent or garbage
// attributes yield 0, which addMembers rejects as illegal.
func batchIndex(block document.Node) uint32 {
	raw, ok := block.Attribute(attrIndex)
	if !ok {
		return 0
	}
	return uint32(value.Parse(value.KindInt, raw).I64)
}

// addMembers walks a block's member entries and attaches each value to
// its named item, deduplicating against the item's existing members.
func (e *Engine) addMembers(node document.Node, batch uint32) error {
	for ; node != nil; node = node.NextSibling("") {
		if batch == 0 {
			return &IllegalIndexError{Raw: "0"}
		}

		name, ok := node.Attribute(attrName)
		if !ok {
			return &MissingAttributeError{Attr: attrName}
		}
		item := e.root.findByName(name)
		if item == nil || e.findByID(item.id.Parent()) == nil {
			return ErrIllegalID
		}
		if _, exists := item.memberValue(batch); exists {
			return &UsedIndexError{Batch: batch, Item: name}
		}

		typ, ok := node.Attribute(attrType)
		if !ok {
			return &MissingAttributeError{Attr: attrType}
		}
		kind, ok := value.KindFromType(typ)
		if !ok {
			return &MissingAttributeError{Attr: attrType}
		}

		item.addValue(value.Parse(kind, node.Text()), batch)
	}
	return nil
}

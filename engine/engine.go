// Package engine implements the in-memory tree engine: tree construction
// from a structural document, batch ingestion with content-based value
// deduplication, id/name lookup, per-batch projection, and batch
// retirement with reference-counted member eviction.
//
// The engine is single-threaded by design. Callers needing concurrent
// access must serialize writers against all other operations.
package engine

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Document tags and attribute keys the engine expects from its input
// documents.
const (
	contentTag = "Content"
	batchTag   = "Batch"

	attrIndex = "index"
	attrName  = "name"
	attrType  = "type"
)

// Engine owns the item tree and the global batch registry. The registry
// is the single source of truth for which batches exist; per-member batch
// sets are reverse indices kept in sync with it.
type Engine struct {
	root     Item
	registry *roaring.Bitmap
}

// New returns an engine with an empty tree. Build must be called exactly
// once before any batch or query operation.
func New() *Engine {
	return &Engine{
		registry: roaring.New(),
	}
}

// Root returns the reserved root item (id 0).
func (e *Engine) Root() *Item {
	return &e.root
}

// ItemCount returns the number of items in the tree, the root excluded.
func (e *Engine) ItemCount() int {
	n := 0
	var walk func(*Item)
	walk = func(it *Item) {
		for _, c := range it.children {
			n++
			walk(c)
		}
	}
	walk(&e.root)
	return n
}

// BatchCount returns the number of registered batches.
func (e *Engine) BatchCount() int {
	return int(e.registry.GetCardinality())
}

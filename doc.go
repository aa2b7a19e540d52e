// Package batchtree maintains a hierarchical named-item tree whose items
// carry many alternative, versioned values ("batches") with automatic
// deduplication of repeated values across batches.
//
// The tree schema (item names and parent/child relationships) is built
// once from a structural document; independent batches of values for that
// schema are then ingested, queried and retired over time.
//
// # Quick Start
//
//	tree := batchtree.New()
//	if err := tree.BuildXML(schemaFile); err != nil { ... }
//	if err := tree.AddBatchXML(valuesFile); err != nil { ... }
//
//	vals, _ := tree.ItemValues("age")   // batch index -> value
//	batch, _ := tree.BatchValues(2)     // item name -> value
//	_ = tree.DeleteBatch(2)             // retire a batch
//
// # Identifier Scheme
//
// Every item has a packed uint32 id: one 4-bit field per tree level,
// least-significant first, holding the item's 1-based sibling position.
// This caps fan-out at 15 children per item and depth at 8 levels, and
// makes id lookup a plain nibble walk with no auxiliary index.
//
// # Deduplication
//
// Within one item, equal values from different batches share a single
// member; the member tracks the set of batches referencing it and is
// evicted as soon as the last one is retired.
//
// # Concurrency
//
// The engine is single-threaded and synchronous. Queries may run
// concurrently with each other, but Build, AddBatch and DeleteBatch
// require exclusive access.
package batchtree

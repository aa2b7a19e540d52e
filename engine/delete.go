package engine

// DeleteBatch retires a batch: the index is removed from every member's
// batch set, members whose set drains are unlinked, and the index leaves
// the registry once the sweep completes. Deleting an unknown batch is a
// no-op that reports the unregistered index.
func (e *Engine) DeleteBatch(batch uint32) error {
	if !e.registry.Contains(batch) {
		return &UnregisteredIndexError{Index: batch}
	}
	e.root.removeBatch(batch)
	e.registry.Remove(batch)
	return nil
}

// removeBatch sweeps the subtree, dropping the batch from member sets and
// evicting members left without a batch.
func (it *Item) removeBatch(batch uint32) {
	kept := it.members[:0]
	for _, m := range it.members {
		m.batches.Remove(batch)
		if !m.batches.IsEmpty() {
			kept = append(kept, m)
		}
	}
	// Release the tail so evicted members are collectable.
	for i := len(kept); i < len(it.members); i++ {
		it.members[i] = nil
	}
	it.members = kept

	for _, c := range it.children {
		c.removeBatch(batch)
	}
}

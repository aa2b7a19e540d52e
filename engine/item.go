package engine

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/batchtree/itemid"
	"github.com/hupe1980/batchtree/value"
)

// Item is a node of the structural tree. Structure is immutable once the
// build finishes; only the member list changes afterwards.
type Item struct {
	id       itemid.ID
	name     string
	children []*Item
	members  []*member
}

// ID returns the item's packed identifier.
func (it *Item) ID() itemid.ID { return it.id }

// Name returns the item's name from the structural document.
func (it *Item) Name() string { return it.name }

// Children returns the item's direct children in insertion order.
func (it *Item) Children() []*Item { return it.children }

// member is one deduplicated value attached to an item, together with the
// set of batches that carry it. The batch set is never empty; a member
// whose set drains is unlinked immediately.
type member struct {
	val     value.Value
	batches *roaring.Bitmap
}

func newMember(v value.Value, batch uint32) *member {
	m := &member{val: v, batches: roaring.New()}
	m.batches.Add(batch)
	return m
}

// memberValue returns the item's value for one batch, if any.
func (it *Item) memberValue(batch uint32) (value.Value, bool) {
	for _, m := range it.members {
		if m.batches.Contains(batch) {
			return m.val, true
		}
	}
	return value.Value{}, false
}

// addValue attaches a value for one batch, deduplicating against the
// item's existing members: an equal value only gains a batch reference.
func (it *Item) addValue(v value.Value, batch uint32) {
	for _, m := range it.members {
		if m.val.Equal(v) {
			m.batches.Add(batch)
			return
		}
	}
	it.members = append(it.members, newMember(v, batch))
}

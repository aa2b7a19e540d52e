// Package document defines the abstract node interface the tree engine
// consumes. The engine never sees a concrete markup format; any parser
// that can present a document as tagged nodes with attributes, ordered
// children and text content can feed it.
package document

// Node is one element of a parsed document tree.
//
// Traversal methods take a tag filter; the empty string matches any tag.
// A nil Node marks the end of traversal, so implementations must return
// an untyped nil rather than a typed nil pointer.
type Node interface {
	// Tag returns the element's tag name.
	Tag() string

	// Attribute returns the value of the named attribute and whether it
	// is present.
	Attribute(key string) (string, bool)

	// FirstChild returns the first child whose tag matches, or nil.
	FirstChild(tag string) Node

	// NextSibling returns the next sibling whose tag matches, or nil.
	NextSibling(tag string) Node

	// Text returns the element's own text content.
	Text() string
}

// Package xmldoc adapts XML input to the document.Node interface using
// encoding/xml. It materializes the element tree up front; documents are
// small schema and batch descriptions, not bulk data.
package xmldoc

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/hupe1980/batchtree/document"
)

// ErrNoRootElement is returned when the input contains no element at all.
var ErrNoRootElement = errors.New("xmldoc: no root element")

// Element is an XML element implementing document.Node.
type Element struct {
	tag      string
	attrs    map[string]string
	text     string
	children []*Element
	parent   *Element
	pos      int // position among parent's children
}

var _ document.Node = (*Element)(nil)

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var cur *Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				tag:    t.Name.Local,
				attrs:  make(map[string]string, len(t.Attr)),
				parent: cur,
			}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			if cur == nil {
				if root == nil {
					root = el
				}
			} else {
				el.pos = len(cur.children)
				cur.children = append(cur.children, el)
			}
			cur = el
		case xml.EndElement:
			if cur != nil {
				cur = cur.parent
			}
		case xml.CharData:
			if cur != nil {
				cur.text += string(t)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// ParseString parses an XML document held in a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Attribute returns the named attribute value and whether it is present.
func (e *Element) Attribute(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// FirstChild returns the first child element matching tag, or nil.
// The empty tag matches any child.
func (e *Element) FirstChild(tag string) document.Node {
	for _, c := range e.children {
		if tag == "" || c.tag == tag {
			return c
		}
	}
	return nil
}

// NextSibling returns the next sibling element matching tag, or nil.
// The empty tag matches any sibling.
func (e *Element) NextSibling(tag string) document.Node {
	if e.parent == nil {
		return nil
	}
	for _, c := range e.parent.children[e.pos+1:] {
		if tag == "" || c.tag == tag {
			return c
		}
	}
	return nil
}

// Text returns the element's own character data with surrounding
// whitespace trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.text)
}

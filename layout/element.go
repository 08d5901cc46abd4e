// This file is part of bin2rpk.
//
// bin2rpk is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bin2rpk is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bin2rpk.  If not, see <https://www.gnu.org/licenses/>.

package layout

// Attr is a single attribute of an Element.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the layout tree. Attributes and children are kept in
// the order they were added.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// NewElement creates an element with the tag and attributes. The attrs
// argument is a list of name, value pairs.
func NewElement(tag string, attrs ...string) *Element {
	e := &Element{Tag: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Attrs = append(e.Attrs, Attr{Name: attrs[i], Value: attrs[i+1]})
	}
	return e
}

// Add creates a new child element and returns it.
func (e *Element) Add(tag string, attrs ...string) *Element {
	c := NewElement(tag, attrs...)
	e.Children = append(e.Children, c)
	return c
}

// Attr returns the value of the named attribute. The empty string is
// returned if the element does not have the attribute.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Find returns the child elements with the tag.
func (e *Element) Find(tag string) []*Element {
	var f []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			f = append(f, c)
		}
	}
	return f
}

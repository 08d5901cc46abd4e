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

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/bin2rpk/curated"
)

// Sentinel error patterns. Test for them with curated.Is() or curated.Has().
const (
	// the program name contains a character that cannot appear in the
	// layout description. the first value is the offending character (or
	// byte, for invalid UTF-8) and the second value is its byte offset
	UnrepresentableName = "layout: unrepresentable character %q at byte %d of program name"

	// as above but for any other attribute. the third value is the element
	// and attribute name
	UnrepresentableAttr = "layout: unrepresentable character %q at byte %d of %s"
)

const (
	declaration = "<?xml version='1.0' encoding='utf-8'?>"
	indent      = "   "
)

// firstInvalid returns the first character in s that cannot appear in the
// layout description and its byte offset. The offset is -1 if every character
// is valid.
func firstInvalid(s string) (string, int) {
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz <= 1 {
			return s[i : i+1], i
		}
		if !isChar(r) {
			return string(r), i
		}
		i += sz
	}
	return "", -1
}

// ValidateName checks that every character in the name can be represented in
// the layout description. Names are never truncated or altered so a name that
// fails the check cannot be used.
func ValidateName(name string) error {
	if c, i := firstInvalid(name); i >= 0 {
		return curated.Errorf(UnrepresentableName, c, i)
	}
	return nil
}

// isChar returns true if the rune is a character allowed in an XML 1.0
// document.
func isChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		(r >= 0x20 && r <= 0xd7ff) ||
		(r >= 0xe000 && r <= 0xfffd) ||
		(r >= 0x10000 && r <= 0x10ffff)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"\r", "&#13;",
	"\n", "&#10;",
	"\t", "&#09;",
)

// Serialize the layout description. The output is terminated with a newline.
//
// Every attribute value in the tree is checked, including any added with
// Root() after the layout was built.
func Serialize(l *Layout) ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(declaration)
	b.WriteString("\n")
	if err := writeElement(b, l.root, 0); err != nil {
		return nil, err
	}
	b.WriteString("\n")

	return b.Bytes(), nil
}

// checkAttr returns an error if the attribute value cannot be written. the
// name attribute of the root element is the program name
func checkAttr(e *Element, a Attr, depth int) error {
	c, i := firstInvalid(a.Value)
	if i < 0 {
		return nil
	}
	if depth == 0 && a.Name == "name" {
		return curated.Errorf(UnrepresentableName, c, i)
	}
	return curated.Errorf(UnrepresentableAttr, c, i, e.Tag+"@"+a.Name)
}

// writeElement writes the element and all its children. The closing tag of e
// is not followed by a newline.
func writeElement(b *bytes.Buffer, e *Element, depth int) error {
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		if err := checkAttr(e, a, depth); err != nil {
			return err
		}
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=\"")
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteString("\"")
	}

	if len(e.Children) == 0 {
		b.WriteString(" />")
		return nil
	}

	b.WriteString(">")
	for _, c := range e.Children {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indent, depth+1))
		if err := writeElement(b, c, depth+1); err != nil {
			return err
		}
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">")

	return nil
}

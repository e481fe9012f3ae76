// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmlgen projects metadata documents and the issue
// configuration into the eLibrary delivery XML, and checks the result
// structurally.
package xmlgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// header is the declaration the delivery format expects.
const header = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"

const indentStep = "  "

// attr is one ordered XML attribute.
type attr struct {
	name  string
	value string
}

// element is a mutable XML element. Attribute and child order is
// exactly insertion order, which keeps the rendered output
// deterministic byte for byte.
type element struct {
	name     string
	attrs    []attr
	text     string
	children []*element
}

func newElement(name string) *element {
	return &element{name: name}
}

// attr appends an attribute and returns e for chaining.
func (e *element) attr(name, value string) *element {
	e.attrs = append(e.attrs, attr{name: name, value: value})
	return e
}

// child appends and returns a new child element.
func (e *element) child(name string) *element {
	c := newElement(name)
	e.children = append(e.children, c)
	return c
}

// textChild appends a child holding only character data.
func (e *element) textChild(name, text string) *element {
	c := e.child(name)
	c.text = text
	return c
}

// find returns the first direct child with the given name.
func (e *element) find(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// render serializes the tree with two-space indentation and the XML
// declaration on top.
func render(root *element) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	writeElement(&buf, root, 0)
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, e *element, depth int) {
	indent := indentString(depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(e.name)
	for _, a := range e.attrs {
		fmt.Fprintf(buf, " %s=\"%s\"", a.name, escape(a.value))
	}

	switch {
	case len(e.children) > 0:
		buf.WriteString(">\n")
		for _, c := range e.children {
			writeElement(buf, c, depth+1)
		}
		buf.WriteString(indent)
		buf.WriteString("</")
		buf.WriteString(e.name)
		buf.WriteString(">\n")
	case e.text != "":
		buf.WriteByte('>')
		buf.WriteString(escape(e.text))
		buf.WriteString("</")
		buf.WriteString(e.name)
		buf.WriteString(">\n")
	default:
		buf.WriteString("/>\n")
	}
}

var indentCache = map[int]string{}

func indentString(depth int) string {
	if s, ok := indentCache[depth]; ok {
		return s
	}
	var buf bytes.Buffer
	for i := 0; i < depth; i++ {
		buf.WriteString(indentStep)
	}
	indentCache[depth] = buf.String()
	return buf.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

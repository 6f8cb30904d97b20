// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Node is an element of the HTML tree, either a [*Leaf] or a [*Parent].
// The set of Node implementations is closed.
type Node interface {
	Render() (string, error)

	printHTML(*printer) error
	node()
}

// An Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered list of attributes.
// Attributes render in list order.
type Attrs []Attr

// printHTML writes each attribute as ` name="value"`.
func (a Attrs) printHTML(p *printer) {
	for _, x := range a {
		p.html(" ", x.Name, `="`, x.Value, `"`)
	}
}

// String returns the attributes as they appear inside an opening tag,
// each preceded by a space.
func (a Attrs) String() string {
	var p printer
	a.printHTML(&p)
	return p.buf.String()
}

// A Leaf is a [Node] holding text and no children.
// A Leaf with an empty Tag is raw text and renders as Value alone.
// Only an image leaf (Tag "img") may have an empty Value.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attrs
}

func (*Leaf) node() {}

func (x *Leaf) Render() (string, error) { return ToHTML(x) }

func (x *Leaf) printHTML(p *printer) error {
	if x.Value == "" && x.Tag != "img" {
		return &StructureError{Op: "render", Tag: x.Tag, Msg: "leaf has no value"}
	}
	if x.Tag == "" {
		p.html(x.Value)
		return nil
	}
	p.openTag(x.Tag, x.Attrs)
	p.html(x.Value)
	p.closeTag(x.Tag)
	return nil
}

// A Parent is a [Node] holding an ordered list of children.
// A Parent must have a Tag and at least one child to render.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attrs
}

func (*Parent) node() {}

func (x *Parent) Render() (string, error) { return ToHTML(x) }

func (x *Parent) printHTML(p *printer) error {
	if x.Tag == "" {
		return &StructureError{Op: "render", Msg: "parent has no tag"}
	}
	if len(x.Children) == 0 {
		return &StructureError{Op: "render", Tag: x.Tag, Msg: "parent has no children"}
	}
	p.openTag(x.Tag, x.Attrs)
	for _, c := range x.Children {
		if err := c.printHTML(p); err != nil {
			return err
		}
	}
	p.closeTag(x.Tag)
	return nil
}

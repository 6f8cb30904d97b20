// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "bytes"

type printer struct {
	buf bytes.Buffer
}

func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

func (p *printer) openTag(tag string, attrs Attrs) {
	p.html("<", tag)
	attrs.printHTML(p)
	p.html(">")
}

func (p *printer) closeTag(tag string) {
	p.html("</", tag, ">")
}

// ToHTML renders the tree rooted at n as HTML.
// If any node in the tree is malformed, ToHTML returns
// a [*StructureError] and no partial output.
func ToHTML(n Node) (string, error) {
	var p printer
	if err := n.printHTML(&p); err != nil {
		return "", err
	}
	return p.buf.String(), nil
}

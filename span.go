// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "fmt"

// A SpanKind is the kind of a [Span].
type SpanKind int

const (
	PlainSpan SpanKind = iota
	BoldSpan
	ItalicSpan
	CodeSpan
	LinkSpan
	ImageSpan
)

var spanKindNames = [...]string{
	PlainSpan:  "text",
	BoldSpan:   "bold",
	ItalicSpan: "italic",
	CodeSpan:   "code",
	LinkSpan:   "link",
	ImageSpan:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKindNames[k]
}

// A Span is a typed fragment of inline text.
// URL is set only for [LinkSpan] and [ImageSpan].
// Spans are comparable with ==.
type Span struct {
	Text string
	Kind SpanKind
	URL  string
}

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("Span(%q, %s, %q)", s.Text, s.Kind, s.URL)
	}
	return fmt.Sprintf("Span(%q, %s)", s.Text, s.Kind)
}

// SpanToNode converts a single span to a leaf node.
// Plain text becomes an untagged leaf.
// An image becomes an "img" leaf with an empty value
// and src and alt attributes.
func SpanToNode(s Span) *Leaf {
	switch s.Kind {
	case PlainSpan:
		return &Leaf{Value: s.Text}
	case BoldSpan:
		return &Leaf{Tag: "b", Value: s.Text}
	case ItalicSpan:
		return &Leaf{Tag: "i", Value: s.Text}
	case CodeSpan:
		return &Leaf{Tag: "code", Value: s.Text}
	case LinkSpan:
		return &Leaf{Tag: "a", Value: s.Text, Attrs: Attrs{{"href", s.URL}}}
	case ImageSpan:
		return &Leaf{Tag: "img", Attrs: Attrs{{"src", s.URL}, {"alt", s.Text}}}
	}
	panic(fmt.Sprintf("markdown: unknown span kind %v", s.Kind))
}

// inlineNodes tokenizes text and converts each span to a node.
func inlineNodes(text string) ([]Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(spans))
	for _, s := range spans {
		nodes = append(nodes, SpanToNode(s))
	}
	return nodes, nil
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown converts a small dialect of Markdown
// into a tree of HTML nodes and renders that tree as HTML.
//
// A document is split into blocks on blank lines.
// Each block is a heading ("# " through "###### "),
// a code block fenced by lines starting with ```,
// a quote (every line starts with >),
// an unordered list (every line starts with - or *),
// an ordered list (lines start with "1.", "2.", and so on),
// or else a paragraph.
//
// Inline text may contain `code`, **bold**, *italic*,
// [links](url), and ![images](url). Emphasis does not nest,
// and delimiters cannot be escaped: an unclosed delimiter
// is a [*SyntaxError].
//
// For example:
//
//	html, err := markdown.Convert("# Heading\n\nSome **bold** text.")
//	// html == "<div><h1>Heading</h1><p>Some <b>bold</b> text.</p></div>"
//
// Conversion and rendering are pure functions of their input
// and are safe to call concurrently.
package markdown

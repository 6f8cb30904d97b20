// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"fmt"
)

// ErrTitleNotFound is returned by [ExtractTitle] when the document
// has no line starting with "# ".
var ErrTitleNotFound = errors.New("markdown: title not found")

// A SyntaxError reports malformed inline Markdown,
// such as an unclosed delimiter.
type SyntaxError struct {
	Op   string // tokenizer pass that failed, like `split "**"`
	Text string // text being split
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markdown: %s: %s in %q", e.Op, e.Msg, e.Text)
}

// A StructureError reports a node or block that violates
// the structure required to build or render it.
type StructureError struct {
	Op  string // "render" or the block converter, like "code block"
	Tag string // tag of the offending node, if any
	Msg string
}

func (e *StructureError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("markdown: %s <%s>: %s", e.Op, e.Tag, e.Msg)
	}
	return fmt.Sprintf("markdown: %s: %s", e.Op, e.Msg)
}

// A BlockError records which block of a document failed to convert.
type BlockError struct {
	Index int // index of the block among the document's blocks
	Position
	Kind BlockKind
	Err  error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s, lines %d-%d): %v", e.Index, e.Kind, e.StartLine, e.EndLine, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

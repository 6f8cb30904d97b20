// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"unicode/utf8"
)

const fence = "```"

// isCode reports whether block has at least two lines
// and both its first and last lines start with a fence.
func isCode(block string) bool {
	lines := strings.Split(block, "\n")
	return len(lines) > 1 && strings.HasPrefix(lines[0], fence) && strings.HasPrefix(lines[len(lines)-1], fence)
}

// codeToNode removes the opening fence and the character after it
// (normally a newline) and the closing fence, and renders the text between them
// in <pre><code>...</code></pre> tags.
// The text is tokenized like any other inline text.
func codeToNode(block string) (Node, error) {
	if !strings.HasPrefix(block, fence) || !strings.HasSuffix(block, fence) {
		return nil, &StructureError{Op: "code block", Msg: "block must start and end with " + fence}
	}
	_, n := utf8.DecodeRuneInString(block[len(fence):])
	start, end := len(fence)+n, len(block)-len(fence)
	if start > end {
		return nil, &StructureError{Op: "code block", Msg: "block must start and end with " + fence}
	}
	code, err := inlineParent("code", block[start:end])
	if err != nil {
		return nil, err
	}
	return &Parent{Tag: "pre", Children: []Node{code}}, nil
}

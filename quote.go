// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// isQuote reports whether every line of block starts with '>'.
func isQuote(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, ">") {
			return false
		}
	}
	return true
}

// quoteToNode strips the '>' markers and surrounding space from each line,
// joins the lines with spaces, and renders them in
// <blockquote>...</blockquote> tags.
func quoteToNode(block string) (Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, ">") {
			return nil, &StructureError{Op: "quote block", Msg: "line does not start with >: " + line}
		}
		lines[i] = strings.TrimSpace(strings.TrimLeft(line, ">"))
	}
	return inlineParent("blockquote", strings.Join(lines, " "))
}

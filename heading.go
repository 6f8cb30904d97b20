// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "fmt"

const maxHeadingLevel = 6

// countHashes returns the number of leading '#' characters in s.
func countHashes(s string) int {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	return n
}

// isHeading reports whether block starts with 1 to 6 '#'s
// followed by a space, like "## Heading".
func isHeading(block string) bool {
	n := countHashes(block)
	return n >= 1 && n <= maxHeadingLevel && n < len(block) && block[n] == ' '
}

// headingLevel returns the number of leading '#'s in block.
func headingLevel(block string) (int, error) {
	n := countHashes(block)
	if n > maxHeadingLevel {
		return 0, &StructureError{Op: "heading", Msg: fmt.Sprintf("invalid heading level %d", n)}
	}
	return n, nil
}

// headingToNode strips the "#...# " prefix from block
// and renders the rest in <hN>...</hN> tags.
func headingToNode(block string) (Node, error) {
	level, err := headingLevel(block)
	if err != nil {
		return nil, err
	}
	if level == 0 || level >= len(block) {
		return nil, &StructureError{Op: "heading", Msg: "missing heading marker"}
	}
	return inlineParent(fmt.Sprintf("h%d", level), block[level+1:])
}

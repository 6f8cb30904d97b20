// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strconv"
	"strings"
)

// isUnorderedList reports whether every line of block
// starts with '-' or '*'.
func isUnorderedList(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*") {
			return false
		}
	}
	return true
}

// isOrderedList reports whether line i of block starts with "i+1."
// for every line: "1.", "2.", "3.", and so on, with no gaps.
func isOrderedList(block string) bool {
	for i, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, orderedMarker(i)) {
			return false
		}
	}
	return true
}

func orderedMarker(i int) string {
	return strconv.Itoa(i+1) + "."
}

// unorderedListToNode renders each line of block as a list item
// in <ul>...</ul> tags, after removing the bullet and one space.
func unorderedListToNode(block string) (Node, error) {
	return listToNode("ul", block, func(i int, line string) (string, bool) {
		if line == "" || (line[0] != '-' && line[0] != '*') {
			return "", false
		}
		return line[1:], true
	})
}

// orderedListToNode renders each line of block as a list item
// in <ol>...</ol> tags, after removing the "N." marker and one space.
func orderedListToNode(block string) (Node, error) {
	return listToNode("ol", block, func(i int, line string) (string, bool) {
		return strings.CutPrefix(line, orderedMarker(i))
	})
}

func listToNode(tag, block string, cut func(int, string) (string, bool)) (Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		text, ok := cut(i, line)
		if !ok {
			return nil, &StructureError{Op: "list block", Tag: tag, Msg: "line has no list marker: " + line}
		}
		item, err := inlineParent("li", strings.TrimPrefix(text, " "))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &Parent{Tag: tag, Children: items}, nil
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// paragraphToNode joins the lines of block with spaces
// and renders them in <p>...</p> tags.
func paragraphToNode(block string) (Node, error) {
	text := strings.Join(strings.Split(block, "\n"), " ")
	return inlineParent("p", text)
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "regexp"

var titleRE = regexp.MustCompile(`(?m)^# (.+)`)

// ExtractTitle returns the text after "# " on the first line
// of doc that starts with "# ". Deeper headings like "## Foo"
// do not count. If there is no such line, ExtractTitle
// returns [ErrTitleNotFound].
func ExtractTitle(doc string) (string, error) {
	m := titleRE.FindStringSubmatch(doc)
	if m == nil {
		return "", ErrTitleNotFound
	}
	return m[1], nil
}

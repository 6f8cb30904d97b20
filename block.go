// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
	"unicode"
)

// A Position records the 1-based line span of a block in its document.
type Position struct {
	StartLine int
	EndLine   int
}

// A Block is one blank-line-separated segment of a document,
// trimmed of surrounding whitespace.
type Block struct {
	Position
	Text string
}

// A BlockKind is the grammar a [Block] is classified as.
type BlockKind int

const (
	ParagraphBlock BlockKind = iota
	HeadingBlock
	CodeBlock
	QuoteBlock
	UnorderedListBlock
	OrderedListBlock
)

var blockKindNames = [...]string{
	ParagraphBlock:     "paragraph",
	HeadingBlock:       "heading",
	CodeBlock:          "code",
	QuoteBlock:         "quote",
	UnorderedListBlock: "unordered_list",
	OrderedListBlock:   "ordered_list",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockKindNames[k]
}

// SplitBlocks splits doc into blocks on blank lines ("\n\n").
// Each block is trimmed of leading and trailing whitespace,
// and blocks that are empty after trimming are dropped.
func SplitBlocks(doc string) []Block {
	var blocks []Block
	lineno := 1
	for _, piece := range strings.Split(doc, "\n\n") {
		start := lineno
		lineno += strings.Count(piece, "\n") + 2
		text := strings.TrimSpace(piece)
		if text == "" {
			continue
		}
		lead := len(piece) - len(strings.TrimLeftFunc(piece, unicode.IsSpace))
		start += strings.Count(piece[:lead], "\n")
		blocks = append(blocks, Block{
			Position{start, start + strings.Count(text, "\n")},
			text,
		})
	}
	return blocks
}

// matchers lists the block grammars in order of precedence.
// A block that matches none of them is a paragraph.
var matchers = []struct {
	kind  BlockKind
	match func(string) bool
}{
	{HeadingBlock, isHeading},
	{CodeBlock, isCode},
	{QuoteBlock, isQuote},
	{UnorderedListBlock, isUnorderedList},
	{OrderedListBlock, isOrderedList},
}

// Classify reports the kind of a trimmed block.
func Classify(block string) BlockKind {
	for _, m := range matchers {
		if m.match(block) {
			return m.kind
		}
	}
	return ParagraphBlock
}

// BlockToNode classifies block and converts it to a node subtree,
// tokenizing its inline content.
func BlockToNode(block string) (Node, error) {
	kind := Classify(block)
	switch kind {
	case ParagraphBlock:
		return paragraphToNode(block)
	case HeadingBlock:
		return headingToNode(block)
	case CodeBlock:
		return codeToNode(block)
	case QuoteBlock:
		return quoteToNode(block)
	case UnorderedListBlock:
		return unorderedListToNode(block)
	case OrderedListBlock:
		return orderedListToNode(block)
	}
	panic(fmt.Sprintf("markdown: unknown block kind %v", kind))
}

// ConvertDocument converts a Markdown document to a tree
// rooted at a "div" [Parent] with one child per block.
// The first block that fails to convert aborts the conversion;
// the error is a [*BlockError] wrapping the cause.
func ConvertDocument(doc string) (*Parent, error) {
	root := &Parent{Tag: "div"}
	for i, b := range SplitBlocks(doc) {
		n, err := BlockToNode(b.Text)
		if err != nil {
			return nil, &BlockError{Index: i, Position: b.Position, Kind: Classify(b.Text), Err: err}
		}
		root.Children = append(root.Children, n)
	}
	return root, nil
}

// Convert converts a Markdown document to HTML.
func Convert(doc string) (string, error) {
	root, err := ConvertDocument(doc)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// inlineParent tokenizes text and wraps the result in a tag.
func inlineParent(tag, text string) (*Parent, error) {
	children, err := inlineNodes(text)
	if err != nil {
		return nil, err
	}
	return &Parent{Tag: tag, Children: children}, nil
}

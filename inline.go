// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// delimiters lists the inline delimiters in the order they are split.
// "**" must be split before "*".
var delimiters = []struct {
	delim string
	kind  SpanKind
}{
	{"`", CodeSpan},
	{"**", BoldSpan},
	{"*", ItalicSpan},
}

// Tokenize splits a string of inline Markdown into spans.
// It splits code, bold, and italic delimiters, then extracts
// images, then links. An empty string yields no spans.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{{Text: text, Kind: PlainSpan}}
	var err error
	for _, d := range delimiters {
		spans, err = SplitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}
	if spans, err = SplitImages(spans); err != nil {
		return nil, err
	}
	if spans, err = SplitLinks(spans); err != nil {
		return nil, err
	}
	return spans, nil
}

// SplitDelimiter splits the text of every plain span on delim.
// Text between a pair of delimiters becomes a span of the given kind;
// text outside becomes plain. Empty pieces are dropped.
// Non-plain spans are passed through unchanged.
// A delimiter without a matching close is a [*SyntaxError].
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	switch kind {
	case BoldSpan, ItalicSpan, CodeSpan:
	default:
		return nil, fmt.Errorf("markdown: cannot split %q into %s spans", delim, kind)
	}

	var out []Span
	for _, s := range spans {
		if s.Kind != PlainSpan {
			out = append(out, s)
			continue
		}
		pieces := strings.Split(s.Text, delim)
		if len(pieces)%2 == 0 {
			return nil, &SyntaxError{Op: fmt.Sprintf("split %q", delim), Text: s.Text, Msg: "delimiter not closed"}
		}
		for i, piece := range pieces {
			if piece == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Span{Text: piece, Kind: PlainSpan})
			} else {
				out = append(out, Span{Text: piece, Kind: kind})
			}
		}
	}
	return out, nil
}

var (
	imageRE = regexp.MustCompile(`!\[(.*?)\]\((.+?)\)`)
	linkRE  = regexp.MustCompile(`\[(.*?)\]\((.+?)\)`)
)

// A marker is an image or link found in a string,
// along with its byte offsets.
type marker struct {
	start, end int
	span       Span
}

// findMarkers returns the non-overlapping matches of re in text,
// left to right. If noBang is set, a match immediately preceded
// by '!' is skipped.
func findMarkers(re *regexp.Regexp, kind SpanKind, text string, noBang bool) []marker {
	var list []marker
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if noBang && m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		list = append(list, marker{
			start: m[0],
			end:   m[1],
			span:  Span{Text: text[m[2]:m[3]], Kind: kind, URL: text[m[4]:m[5]]},
		})
	}
	return list
}

func spansOf(list []marker) []Span {
	spans := make([]Span, len(list))
	for i, m := range list {
		spans[i] = m.span
	}
	return spans
}

// ExtractImages returns the images of the form ![alt](url) in text,
// as [ImageSpan] spans with Text set to the alt text.
func ExtractImages(text string) []Span {
	return spansOf(findMarkers(imageRE, ImageSpan, text, false))
}

// ExtractLinks returns the links of the form [text](url) in text
// that are not preceded by '!', as [LinkSpan] spans.
func ExtractLinks(text string) []Span {
	return spansOf(findMarkers(linkRE, LinkSpan, text, true))
}

// SplitImages replaces every image in the plain spans
// with an [ImageSpan], keeping the text around it as plain spans.
func SplitImages(spans []Span) ([]Span, error) {
	return splitMarkers(spans, "split image", func(s string) []marker {
		return findMarkers(imageRE, ImageSpan, s, false)
	})
}

// SplitLinks replaces every link in the plain spans
// with a [LinkSpan], keeping the text around it as plain spans.
// It does not match image syntax.
func SplitLinks(spans []Span) ([]Span, error) {
	return splitMarkers(spans, "split link", func(s string) []marker {
		return findMarkers(linkRE, LinkSpan, s, true)
	})
}

func splitMarkers(spans []Span, op string, find func(string) []marker) ([]Span, error) {
	var out []Span
	for _, s := range spans {
		if s.Kind != PlainSpan {
			out = append(out, s)
			continue
		}
		list := find(s.Text)
		if len(list) == 0 {
			out = append(out, s)
			continue
		}
		i := 0
		for _, m := range list {
			if m.start < i || m.end > len(s.Text) {
				return nil, &SyntaxError{Op: op, Text: s.Text, Msg: "overlapping markers"}
			}
			if m.start > i {
				out = append(out, Span{Text: s.Text[i:m.start], Kind: PlainSpan})
			}
			out = append(out, m.span)
			i = m.end
		}
		if i < len(s.Text) {
			out = append(out, Span{Text: s.Text[i:], Kind: PlainSpan})
		}
	}
	return out, nil
}

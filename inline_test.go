// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func plain(s string) Span { return Span{Text: s, Kind: PlainSpan} }

var splitDelimiterTests = []struct {
	in    []Span
	delim string
	kind  SpanKind
	out   []Span
}{
	{
		[]Span{plain("This is text with a `code block` word")}, "`", CodeSpan,
		[]Span{plain("This is text with a "), {"code block", CodeSpan, ""}, plain(" word")},
	},
	{
		[]Span{plain("This is text with a `code block``code block 2`")}, "`", CodeSpan,
		[]Span{plain("This is text with a "), {"code block", CodeSpan, ""}, {"code block 2", CodeSpan, ""}},
	},
	{
		[]Span{plain("**bold** start")}, "**", BoldSpan,
		[]Span{{"bold", BoldSpan, ""}, plain(" start")},
	},
	{
		[]Span{plain("no delimiters")}, "*", ItalicSpan,
		[]Span{plain("no delimiters")},
	},
	{
		[]Span{{"a*b", CodeSpan, ""}, plain("*c*")}, "*", ItalicSpan,
		[]Span{{"a*b", CodeSpan, ""}, {"c", ItalicSpan, ""}},
	},
	{
		[]Span{plain("``")}, "`", CodeSpan,
		nil,
	},
	{
		[]Span{plain("")}, "`", CodeSpan,
		nil,
	},
}

func TestSplitDelimiter(t *testing.T) {
	for _, tt := range splitDelimiterTests {
		out, err := SplitDelimiter(tt.in, tt.delim, tt.kind)
		if err != nil {
			t.Errorf("SplitDelimiter(%v, %q): %v", tt.in, tt.delim, err)
			continue
		}
		if !reflect.DeepEqual(out, tt.out) {
			t.Errorf("SplitDelimiter(%v, %q):\nhave %v\nwant %v", tt.in, tt.delim, out, tt.out)
		}
	}
}

func TestSplitDelimiterUnclosed(t *testing.T) {
	for _, in := range []string{
		"This is text with a `code block word",
		"This is text with a `code block word``",
		"`",
	} {
		_, err := SplitDelimiter([]Span{plain(in)}, "`", CodeSpan)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("SplitDelimiter(%q) = %v, want *SyntaxError", in, err)
			continue
		}
		if serr.Text != in {
			t.Errorf("SyntaxError.Text = %q, want %q", serr.Text, in)
		}
	}
}

func TestSplitDelimiterBadKind(t *testing.T) {
	for _, kind := range []SpanKind{PlainSpan, LinkSpan, ImageSpan} {
		if _, err := SplitDelimiter([]Span{plain("a `b` c")}, "`", kind); err == nil {
			t.Errorf("SplitDelimiter(kind %v) succeeded, want error", kind)
		}
	}
}

// TestSplitDelimiterParity checks that an odd number of pieces
// (an even number of delimiters) splits into alternating spans
// and an even number of pieces fails.
func TestSplitDelimiterParity(t *testing.T) {
	for n := 1; n <= 8; n++ {
		parts := make([]string, n+1)
		for i := range parts {
			parts[i] = "x"
		}
		in := strings.Join(parts, "`")
		out, err := SplitDelimiter([]Span{plain(in)}, "`", CodeSpan)
		if n%2 == 1 {
			if err == nil {
				t.Errorf("%d delimiters in %q: no error", n, in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d delimiters in %q: %v", n, in, err)
			continue
		}
		if len(out) != n+1 {
			t.Errorf("%d delimiters in %q: %d spans, want %d", n, in, len(out), n+1)
			continue
		}
		for i, s := range out {
			want := PlainSpan
			if i%2 == 1 {
				want = CodeSpan
			}
			if s.Kind != want {
				t.Errorf("%q span %d kind %v, want %v", in, i, s.Kind, want)
			}
		}
	}
}

func TestExtractImages(t *testing.T) {
	text := "This is text with a ![rick roll](https://i.imgur.com/aKaOqIh.gif)\n" +
		" and ![obi wan](https://i.imgur.com/fJRm4Vk.jpeg)"
	want := []Span{
		{"rick roll", ImageSpan, "https://i.imgur.com/aKaOqIh.gif"},
		{"obi wan", ImageSpan, "https://i.imgur.com/fJRm4Vk.jpeg"},
	}
	if have := ExtractImages(text); !reflect.DeepEqual(have, want) {
		t.Errorf("ExtractImages:\nhave %v\nwant %v", have, want)
	}
	if have := ExtractImages("This is text with no images"); len(have) != 0 {
		t.Errorf("ExtractImages(no images) = %v, want none", have)
	}
}

func TestExtractLinks(t *testing.T) {
	text := "This is text with a [link](https://www.boot.dev)\n" +
		" and [another link](https://www.boot.dev)"
	want := []Span{
		{"link", LinkSpan, "https://www.boot.dev"},
		{"another link", LinkSpan, "https://www.boot.dev"},
	}
	if have := ExtractLinks(text); !reflect.DeepEqual(have, want) {
		t.Errorf("ExtractLinks:\nhave %v\nwant %v", have, want)
	}
	if have := ExtractLinks("This is text with no links"); len(have) != 0 {
		t.Errorf("ExtractLinks(no links) = %v, want none", have)
	}
}

func TestExtractSkipsImagesInLinks(t *testing.T) {
	text := "This is text with a [link](https://www.boot.dev) and ![image](https://i.imgur.com/aKaOqIh.gif)"
	images := ExtractImages(text)
	links := ExtractLinks(text)
	if want := []Span{{"image", ImageSpan, "https://i.imgur.com/aKaOqIh.gif"}}; !reflect.DeepEqual(images, want) {
		t.Errorf("images = %v, want %v", images, want)
	}
	if want := []Span{{"link", LinkSpan, "https://www.boot.dev"}}; !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestExtractAdjacentLinks(t *testing.T) {
	have := ExtractLinks("[a](x)[b](y)")
	want := []Span{{"a", LinkSpan, "x"}, {"b", LinkSpan, "y"}}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("ExtractLinks = %v, want %v", have, want)
	}
}

var splitMarkerTests = []struct {
	name  string
	split func([]Span) ([]Span, error)
	in    []Span
	out   []Span
}{
	{
		"links", SplitLinks,
		[]Span{plain("This is text with a link [to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev)")},
		[]Span{
			plain("This is text with a link "),
			{"to boot dev", LinkSpan, "https://www.boot.dev"},
			plain(" and "),
			{"to youtube", LinkSpan, "https://www.youtube.com/@bootdotdev"},
		},
	},
	{
		"no links", SplitLinks,
		[]Span{plain("This is text with no links")},
		[]Span{plain("This is text with no links")},
	},
	{
		"link at start", SplitLinks,
		[]Span{plain("[boot dev](https://www.boot.dev) is a great website")},
		[]Span{{"boot dev", LinkSpan, "https://www.boot.dev"}, plain(" is a great website")},
	},
	{
		"link only", SplitLinks,
		[]Span{plain("[boot dev](https://www.boot.dev)")},
		[]Span{{"boot dev", LinkSpan, "https://www.boot.dev"}},
	},
	{
		"link ignores image", SplitLinks,
		[]Span{plain("![alt](u) and [alt](u)")},
		[]Span{plain("![alt](u) and "), {"alt", LinkSpan, "u"}},
	},
	{
		"images", SplitImages,
		[]Span{plain("a ![one](1.png) b ![two](2.png)")},
		[]Span{plain("a "), {"one", ImageSpan, "1.png"}, plain(" b "), {"two", ImageSpan, "2.png"}},
	},
	{
		"image empty alt", SplitImages,
		[]Span{plain("![](x.png)")},
		[]Span{{"", ImageSpan, "x.png"}},
	},
	{
		"non-plain untouched", SplitImages,
		[]Span{{"![a](b)", CodeSpan, ""}},
		[]Span{{"![a](b)", CodeSpan, ""}},
	},
}

func TestSplitMarkers(t *testing.T) {
	for _, tt := range splitMarkerTests {
		out, err := tt.split(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(out, tt.out) {
			t.Errorf("%s:\nhave %v\nwant %v", tt.name, out, tt.out)
		}
	}
}

var tokenizeTests = []struct {
	in  string
	out []Span
}{
	{"", nil},
	{
		"This is text with a `code block` word",
		[]Span{plain("This is text with a "), {"code block", CodeSpan, ""}, plain(" word")},
	},
	{
		"This is **text** with an *italic* word and a `code block` and an ![obi wan image](https://i.imgur.com/fJRm4Vk.jpeg) and a [link](https://boot.dev)",
		[]Span{
			plain("This is "),
			{"text", BoldSpan, ""},
			plain(" with an "),
			{"italic", ItalicSpan, ""},
			plain(" word and a "),
			{"code block", CodeSpan, ""},
			plain(" and an "),
			{"obi wan image", ImageSpan, "https://i.imgur.com/fJRm4Vk.jpeg"},
			plain(" and a "),
			{"link", LinkSpan, "https://boot.dev"},
		},
	},
	{
		"![alt](u) and [alt](u)",
		[]Span{{"alt", ImageSpan, "u"}, plain(" and "), {"alt", LinkSpan, "u"}},
	},
	{
		"**bold**",
		[]Span{{"bold", BoldSpan, ""}},
	},
	{
		"`[not](a link)`",
		[]Span{{"[not](a link)", CodeSpan, ""}},
	},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTests {
		out, err := Tokenize(tt.in)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(out, tt.out) {
			t.Errorf("Tokenize(%q):\nhave %v\nwant %v", tt.in, out, tt.out)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, tt := range []struct {
		in string
		op string
	}{
		{"a `b", "split \"`\""},
		{"a **b", "split \"**\""},
		{"a *b", "split \"*\""},
		{"a ***b***", "split \"*\""},
	} {
		_, err := Tokenize(tt.in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Tokenize(%q) = %v, want *SyntaxError", tt.in, err)
			continue
		}
		if serr.Op != tt.op {
			t.Errorf("Tokenize(%q) failed in %s, want %s", tt.in, serr.Op, tt.op)
		}
	}
}

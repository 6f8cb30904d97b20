// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML.
//
// Usage:
//
//	md2html [-tabs] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML to standard output.
// CRLF line endings become LF and text is put in Unicode normal form C
// before conversion.
//
// The -tabs flag expands tabs to 4-space tab stops before conversion.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/mdsite/markdown"
	"github.com/mdsite/markdown/internal/site"
)

var (
	tabsFlag = flag.Bool("tabs", false, "expand tabs to 4-space tab stops")
	exit     = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: md2html [-tabs] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		convert(data, "stdin")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			convert(data, file)
		}
	}
	os.Exit(exit)
}

func convert(data []byte, name string) {
	html, err := toHTML(data)
	if err != nil {
		log.Printf("%s: %v", name, err)
		exit = 1
		return
	}
	os.Stdout.WriteString(html + "\n")
}

// toHTML converts Markdown to HTML.
// The input is normalized the same way sitegen normalizes pages.
func toHTML(md []byte) (string, error) {
	if *tabsFlag {
		md = replaceTabs(md)
	}
	return markdown.Convert(site.Normalize(md))
}

// replaceTabs replaces all tabs in text with spaces up to a 4-space tab stop.
//
// This function does not handle multi-codepoint Unicode sequences correctly.
func replaceTabs(text []byte) []byte {
	var buf bytes.Buffer
	col := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]

		switch r {
		case '\n':
			buf.WriteByte('\n')
			col = 0

		case '\t':
			buf.WriteByte(' ')
			col++
			for col%4 != 0 {
				buf.WriteByte(' ')
				col++
			}

		default:
			buf.WriteRune(r)
			col++
		}
	}
	return buf.Bytes()
}

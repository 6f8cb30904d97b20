// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sitegen builds a static web site from Markdown pages.
//
// Usage:
//
//	sitegen [flags]
//
// Sitegen replaces the output directory with a copy of the static directory,
// then converts every *.md file under the content directory to HTML,
// substituting the page title and content into the template's
// {{ Title }} and {{ Content }} placeholders.
//
// The flags are:
//
//	-c, --content dir     Markdown pages (default "content")
//	-s, --static dir      files copied as is (default "static")
//	-t, --template file   page template (default "template.html")
//	-o, --output dir      output directory (default "public")
//	-v, --verbose         log every file written
//	    --version         print version and exit
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"pkt.systems/version"

	"github.com/mdsite/markdown/internal/site"
)

func init() {
	version.SetDefaultModule("github.com/mdsite/markdown")
}

func main() {
	log.SetPrefix("sitegen: ")
	log.SetFlags(0)

	var (
		cfg         site.Config
		verbose     bool
		showVersion bool
	)
	flags := pflag.NewFlagSet("sitegen", pflag.ExitOnError)
	flags.StringVarP(&cfg.ContentDir, "content", "c", "content", "Directory of Markdown pages")
	flags.StringVarP(&cfg.StaticDir, "static", "s", "static", "Directory of static files")
	flags.StringVarP(&cfg.TemplatePath, "template", "t", "template.html", "Page template")
	flags.StringVarP(&cfg.OutputDir, "output", "o", "public", "Output directory (replaced)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every file written")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: sitegen [flags]\n\nFlags:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if flags.NArg() > 0 {
		flags.Usage()
		os.Exit(2)
	}

	if verbose {
		cfg.Logger = log.Default()
	}
	stats, err := site.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s to %s", stats, cfg.OutputDir)
}

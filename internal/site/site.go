// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package site generates a static web site from a tree of Markdown files.
//
// Every *.md file under the content directory becomes an .html file
// at the same relative path under the output directory. Each page is
// the template with {{ Title }} replaced by the document's title
// (its first "# " line) and {{ Content }} replaced by the rendered document.
// Files under the static directory are copied to the output directory as is.
package site

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/mdsite/markdown"
)

const (
	titleVar   = "{{ Title }}"
	contentVar = "{{ Content }}"
)

// Config configures a site build.
type Config struct {
	ContentDir   string // tree of Markdown pages
	StaticDir    string // tree copied verbatim; may be missing
	TemplatePath string // HTML template with {{ Title }} and {{ Content }}
	OutputDir    string // removed and recreated by Run

	// Logger receives one line per file written.
	// If nil, nothing is logged.
	Logger *log.Logger
}

func (c *Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// Stats summarizes a site build.
type Stats struct {
	Pages       int    // pages generated
	PageBytes   uint64 // bytes of HTML written
	StaticFiles int    // static files copied
	StaticBytes uint64 // bytes of static files copied
}

func (s Stats) String() string {
	return fmt.Sprintf("%d pages (%s), %d static files (%s)",
		s.Pages, humanize.Bytes(s.PageBytes), s.StaticFiles, humanize.Bytes(s.StaticBytes))
}

// Run copies the static files into a fresh output directory
// and then generates every page.
func Run(cfg Config) (Stats, error) {
	var stats Stats
	if err := CopyStatic(&cfg, &stats); err != nil {
		return stats, err
	}
	if err := GeneratePages(&cfg, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// CopyStatic removes cfg.OutputDir, recreates it,
// and copies the tree at cfg.StaticDir into it.
// A missing static directory leaves the output directory empty.
func CopyStatic(cfg *Config, stats *Stats) error {
	dst := filepath.Clean(cfg.OutputDir)
	if cfg.OutputDir == "" || dst == "." || dst == string(filepath.Separator) {
		return errors.Errorf("refusing to replace output directory %q", cfg.OutputDir)
	}
	if err := checkOutputDir(cfg); err != nil {
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		return errors.Wrap(err, "remove output directory")
	}
	if err := os.MkdirAll(dst, 0o777); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if cfg.StaticDir == "" {
		return nil
	}
	if _, err := os.Stat(cfg.StaticDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(cfg.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(cfg.StaticDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o777)
		}
		n, err := copyFile(path, target)
		if err != nil {
			return errors.Wrapf(err, "copy %s", path)
		}
		cfg.logf("copy %s -> %s", path, target)
		stats.StaticFiles++
		stats.StaticBytes += uint64(n)
		return nil
	})
}

// checkOutputDir refuses an output directory that is, or contains,
// the content directory, the static directory, or the template.
func checkOutputDir(cfg *Config) error {
	out, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return errors.Wrap(err, "output directory")
	}
	inputs := []struct{ name, path string }{
		{"content directory", cfg.ContentDir},
		{"static directory", cfg.StaticDir},
		{"template", cfg.TemplatePath},
	}
	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		p, err := filepath.Abs(in.path)
		if err != nil {
			return errors.Wrap(err, in.name)
		}
		if within(out, p) {
			return errors.Errorf("refusing to replace output directory %q: it holds the %s %q", cfg.OutputDir, in.name, in.path)
		}
	}
	return nil
}

// within reports whether path is dir or lies under it.
// Both must be absolute and clean.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// GeneratePages renders every *.md file under cfg.ContentDir
// into cfg.OutputDir using the template at cfg.TemplatePath.
// The first page that fails stops the build.
func GeneratePages(cfg *Config, stats *Stats) error {
	info, err := os.Stat(cfg.ContentDir)
	if err != nil {
		return errors.Wrap(err, "content directory")
	}
	if !info.IsDir() {
		return errors.Errorf("content directory %s: not a directory", cfg.ContentDir)
	}
	data, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return errors.Wrap(err, "template")
	}
	tmpl := string(data)

	return filepath.WalkDir(cfg.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(cfg.ContentDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(cfg.OutputDir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o777)
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		target = strings.TrimSuffix(target, ".md") + ".html"

		src, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		page, err := RenderPage(Normalize(src), tmpl)
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		if err := os.WriteFile(target, []byte(page), 0o666); err != nil {
			return errors.Wrapf(err, "write %s", target)
		}
		cfg.logf("generate %s -> %s", path, target)
		stats.Pages++
		stats.PageBytes += uint64(len(page))
		return nil
	})
}

// Normalize returns the Markdown source in src as a string
// with \r\n line endings replaced by \n, in Unicode normal form C.
func Normalize(src []byte) string {
	return norm.NFC.String(strings.ReplaceAll(string(src), "\r\n", "\n"))
}

// RenderPage fills in tmpl with the title and rendered HTML of doc.
func RenderPage(doc, tmpl string) (string, error) {
	title, err := markdown.ExtractTitle(doc)
	if err != nil {
		return "", err
	}
	html, err := markdown.Convert(doc)
	if err != nil {
		return "", errors.Wrap(err, "convert")
	}
	page := strings.ReplaceAll(tmpl, titleVar, title)
	page = strings.ReplaceAll(page, contentVar, html)
	return page, nil
}

// Copyright 2026 The flake8-plugins Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package checker runs a Python checking analyzer over files and directories
// outside of a Go package, one analysis pass per directory.
package checker

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
)

// ErrNoSources is returned when the given paths contain no Python files.
var ErrNoSources = errors.New("no Python sources")

// Finding is a diagnostic with a resolved source position.
type Finding struct {
	Path    string
	Line    int // starting at 1
	Column  int // byte column, starting at 0
	Message string
	Check   string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", f.Path, f.Line, f.Column+1, f.Message)
}

// Checker runs an analyzer over Python sources.
type Checker struct {
	analyzer *analysis.Analyzer
	logger   *slog.Logger
}

// New returns a [Checker] for a. A nil logger uses [slog.Default].
func New(a *analysis.Analyzer, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Checker{analyzer: a, logger: logger}
}

// Run checks the Python files given directly or found below the given directories.
//
// Sources are read concurrently. Directories are checked in path order with
// one shared file set, fixture names defined in an earlier directory are
// reported when defined again in a later one.
// Findings are sorted by path and position.
func (c *Checker) Run(ctx context.Context, paths ...string) ([]Finding, error) {
	groups, err := collect(paths)
	if err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		return nil, ErrNoSources
	}

	sources, err := readSources(ctx, groups)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()

	var findings []Finding
	for _, grp := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.logger.DebugContext(ctx, "Checking directory",
			slog.String("analyzer", c.analyzer.Name),
			slog.String("dir", grp.dir),
			slog.Int("files", len(grp.files)))

		found, err := c.pass(fset, grp.files, sources.readFile)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", grp.dir, err)
		}

		findings = append(findings, found...)
	}

	slices.SortFunc(findings, compareFindings)

	c.logger.DebugContext(ctx, "Check done",
		slog.Int("dirs", len(groups)),
		slog.Int("findings", len(findings)))

	return findings, nil
}

// contents maps file paths to their content.
type contents map[string][]byte

func (s contents) readFile(name string) ([]byte, error) {
	if src, ok := s[name]; ok {
		return src, nil
	}

	return os.ReadFile(name)
}

// readSources reads the files of all groups concurrently.
func readSources(ctx context.Context, groups []group) (contents, error) {
	var (
		mu      sync.Mutex
		sources = make(contents)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, grp := range groups {
		for _, path := range grp.files {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				src, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading sources: %w", err)
				}

				mu.Lock()
				sources[path] = src
				mu.Unlock()

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sources, nil
}

// pass runs the analyzer on the files of a single directory.
func (c *Checker) pass(fset *token.FileSet, files []string, readFile func(string) ([]byte, error)) ([]Finding, error) {
	var found []Finding

	p := &analysis.Pass{
		Analyzer:   c.analyzer,
		Fset:       fset,
		OtherFiles: files,
		ReadFile:   readFile,
		ResultOf:   make(map[*analysis.Analyzer]any),
		Report: func(d analysis.Diagnostic) {
			pos := fset.Position(d.Pos)
			found = append(found, Finding{
				Path:    pos.Filename,
				Line:    pos.Line,
				Column:  max(pos.Column-1, 0),
				Message: d.Message,
				Check:   d.Category,
			})
		},
	}

	if _, err := c.analyzer.Run(p); err != nil {
		return nil, fmt.Errorf("%s: %w", c.analyzer.Name, err)
	}

	return found, nil
}

func compareFindings(a, b Finding) int {
	return cmp.Or(
		strings.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		strings.Compare(a.Message, b.Message),
	)
}

type group struct {
	dir   string
	files []string
}

// collect groups the Python files of paths by directory.
func collect(paths []string) ([]group, error) {
	byDir := make(map[string][]string)
	add := func(path string) {
		dir := filepath.Dir(path)
		byDir[dir] = append(byDir[dir], path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("collecting sources: %w", err)
		}

		if !info.IsDir() {
			if isPython(root) {
				add(filepath.Clean(root))
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if isPython(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collecting sources: %w", err)
		}
	}

	groups := make([]group, 0, len(byDir))
	for dir, files := range byDir {
		slices.Sort(files)
		groups = append(groups, group{dir: dir, files: slices.Compact(files)})
	}

	slices.SortFunc(groups, func(a, b group) int { return strings.Compare(a.dir, b.dir) })

	return groups, nil
}

func isPython(path string) bool {
	return filepath.Ext(path) == ".py"
}

// skipDir reports whether a directory is hidden or holds build artifacts or virtual environments.
func skipDir(name string) bool {
	switch name {
	case "__pycache__", "node_modules", "venv":
		return true
	}

	return strings.HasPrefix(name, ".")
}

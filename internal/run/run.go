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

// Package run implements the pytestguard analysis pipeline.
package run

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"github.com/RedHatQE/flake8-plugins/internal/astutil"
	"github.com/RedHatQE/flake8-plugins/internal/builtins"
	"github.com/RedHatQE/flake8-plugins/internal/caseid"
	"github.com/RedHatQE/flake8-plugins/internal/config"
	"github.com/RedHatQE/flake8-plugins/internal/fixtures"
	"github.com/RedHatQE/flake8-plugins/internal/imports"
	"github.com/RedHatQE/flake8-plugins/internal/keywords"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/registry"
	"github.com/RedHatQE/flake8-plugins/internal/report"
)

const pythonExt = ".py"

// passState is the state used by the files of a pass. The fixture registry spans all passes sharing the file set.
type passState struct {
	exclude  builtins.ExclusionSet
	fixtures *registry.Registry
}

// Run executes the pytestguard pipeline over the Python sources of a pass.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "PytestGuard")
	defer task.End()

	sources := o.sources(p)
	if len(sources) == 0 {
		return nil, nil
	}

	state := passState{
		exclude:  builtins.NewExclusionSet(o.ExcludeFunctions...),
		fixtures: o.fixtures.For(p.Fset),
	}

	for _, src := range sources {
		if err := o.checkFile(ctx, p, src, state); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

type source struct {
	path       string
	discovered bool // found by scanning a package directory, not part of the pass
}

// sources returns the Python files of the pass, plus those in the package
// directories when [config.PackageDirs] is enabled.
func (o *Options) sources(p *analysis.Pass) []source {
	var result []source
	for _, name := range p.OtherFiles {
		if filepath.Ext(name) == pythonExt {
			result = append(result, source{path: name})
		}
	}

	if !o.Behavior.Enabled(config.PackageDirs) {
		return result
	}

	known := make(map[string]struct{}, len(result))
	for _, s := range result {
		known[s.path] = struct{}{}
	}

	var found []string
	for dir := range packageDirs(p) {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+pythonExt))
		if err != nil {
			continue
		}

		found = append(found, matches...)
	}

	slices.Sort(found)
	for _, name := range slices.Compact(found) {
		if _, ok := known[name]; ok {
			continue
		}

		result = append(result, source{path: name, discovered: true})
	}

	return result
}

// packageDirs yields the directories of the files in the pass, possibly with repetitions.
func packageDirs(p *analysis.Pass) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range p.Files {
			handle := p.Fset.File(f.FileStart)
			if handle == nil {
				continue
			}

			if !yield(filepath.Dir(handle.Name())) {
				return
			}
		}

		for _, name := range p.OtherFiles {
			if !yield(filepath.Dir(name)) {
				return
			}
		}
	}
}

func readFile(p *analysis.Pass, src source) ([]byte, error) {
	if src.discovered || p.ReadFile == nil {
		return os.ReadFile(src.path)
	}

	return p.ReadFile(src.path)
}

// checkFile parses a single Python file and runs the enabled checks on it.
func (o *Options) checkFile(ctx context.Context, p *analysis.Pass, src source, state passState) error {
	content, err := readFile(p, src)
	if err != nil {
		return fmt.Errorf("pytestguard: %w", err)
	}

	file, err := pyast.Parse(ctx, src.path, content)
	if err != nil {
		return fmt.Errorf("pytestguard: %w", err)
	}

	currentFile := astutil.NewCurrentFile(p.Fset, file)

	// Skip files with a file-level noqa comment
	if currentFile.Ignored() {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			astutil.InternalError(p, currentFile.Pos(0), "checking %s: %v", src.path, r)
		}
	}()

	for check, findings := range o.checks(file, state) {
		region := trace.StartRegion(ctx, check.Name())
		report.Report(p, currentFile, findings)
		region.End()
	}

	return nil
}

// checks yields the finding sequences of the enabled checks for file.
func (o *Options) checks(file *pyast.File, state passState) iter.Seq2[config.Checks, iter.Seq[report.Finding]] {
	return func(yield func(config.Checks, iter.Seq[report.Finding]) bool) {
		if o.Checks.Enabled(config.CallKeywords) {
			if !yield(config.CallKeywords, keywords.New(file, state.exclude).Findings()) {
				return
			}
		}

		if o.Checks.Enabled(config.CaseIDs) {
			validator := caseid.NewValidator(o.CaseIDPrefix, registry.New(), o.Behavior.Enabled(config.SkipDuplicateIDs))
			if !yield(config.CaseIDs, caseid.NewWalker(file, validator, o.CaseTag).Findings()) {
				return
			}
		}

		if o.Checks.Enabled(config.UniqueFixtures) {
			if !yield(config.UniqueFixtures, fixtures.Findings(file, state.fixtures)) {
				return
			}
		}

		if o.Checks.Enabled(config.ConftestImports) {
			if !yield(config.ConftestImports, imports.Conftest(file)) {
				return
			}
		}

		if o.Checks.Enabled(config.TestsImports) {
			yield(config.TestsImports, imports.Tests(file, o.ExcludeImports))
		}
	}
}

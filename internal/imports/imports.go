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

// Package imports reports imports from conftest modules and across test packages.
package imports

import (
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/report"
)

const (
	conftest   = "conftest"
	testsDir   = "tests"
	testPrefix = "test_"
)

// Conftest yields a NIC001 finding for every top-level import of a conftest module.
func Conftest(file *pyast.File) iter.Seq[report.Finding] {
	return func(yield func(report.Finding) bool) {
		for imp := range file.Imports() {
			if !importsConftest(imp) {
				continue
			}

			if !yield(report.At(imp, report.ConftestImport, "Import from conftest.py is not allowed.")) {
				return
			}
		}
	}
}

func importsConftest(imp *pyast.Import) bool {
	if imp.From && lastSegment(imp.Module) == conftest {
		return true
	}

	return slices.ContainsFunc(imp.Names, func(name string) bool {
		return lastSegment(name) == conftest
	})
}

// Tests yields a NIT001 finding for every top-level import reaching into another test package.
//
// An import of a test_* module or of anything below `tests` is reported when the
// importing file lives below the imported top-level directory and the import's
// second segment differs from the directory the file is in. Imports whose full
// name or second segment is in exclude are skipped.
func Tests(file *pyast.File, exclude []string) iter.Seq[report.Finding] {
	path := filepath.ToSlash(file.Path)

	return func(yield func(report.Finding) bool) {
		for imp := range file.Imports() {
			if !crossesTests(imp, path, exclude) {
				continue
			}

			if !yield(report.At(imp, report.TestsImport, "Import from tests is not allowed.")) {
				return
			}
		}
	}
}

func crossesTests(imp *pyast.Import, path string, exclude []string) bool {
	name := imp.Module
	if !imp.From || name == "" {
		if len(imp.Names) == 0 {
			return false
		}

		name = imp.Names[len(imp.Names)-1]
	}

	segments := strings.Split(name, ".")
	base, from := segments[0], segments[1:]

	if slices.Contains(exclude, name) || len(from) > 0 && slices.Contains(exclude, from[0]) {
		return false
	}

	rest, ok := below(path, base)
	if !ok {
		return false
	}

	if !strings.HasPrefix(segments[len(segments)-1], testPrefix) && base != testsDir {
		return false
	}

	dirs := strings.FieldsFunc(rest, func(r rune) bool { return r == '/' })
	if len(from) > 0 && len(dirs) > 0 {
		return from[0] != dirs[0]
	}

	return true
}

// below returns the part of path after the first directory named dir.
func below(path, dir string) (string, bool) {
	if _, rest, ok := strings.Cut(path, "/"+dir+"/"); ok {
		return rest, true
	}

	return strings.CutPrefix(path, dir+"/")
}

func lastSegment(name string) string {
	return name[strings.LastIndexByte(name, '.')+1:]
}

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

package testsource

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	"github.com/RedHatQE/flake8-plugins/checker"
)

// Run applies the analyzer to the Python files below dir and checks the
// reported diagnostics against the `# want` annotations in those files.
// It returns the findings for further inspection.
func Run(t *testing.T, a *analysis.Analyzer, dir string) []checker.Finding {
	t.Helper()

	want := make(Expectations)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".py" {
			return err
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		Want(t, path, src, want)

		return nil
	})
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}

	findings, err := checker.New(a, nil).Run(t.Context(), dir)
	if err != nil {
		t.Fatalf("Failed to run %s: %v", a.Name, err)
	}

	got := make(map[Key][]string)
	for _, f := range findings {
		key := Key{Path: f.Path, Line: f.Line}
		got[key] = append(got[key], f.Message)
	}

	Match(t, want, got)

	return findings
}

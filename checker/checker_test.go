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

package checker_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RedHatQE/flake8-plugins/analyzer"
	. "github.com/RedHatQE/flake8-plugins/checker"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatalf("Can't create directory for %s: %v", name, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return root
}

func TestRun(t *testing.T) {
	t.Parallel()

	// given
	root := writeFiles(t, map[string]string{
		"b/test_b.py":               "def test_b():\n    run(1)\n",
		"a/test_a.py":               "def test_a():\n    run(2)\n",
		"a/README.md":               "run(3)\n",
		".venv/lib/test_hidden.py":  "def test_hidden():\n    run(4)\n",
		"a/__pycache__/test_old.py": "def test_old():\n    run(5)\n",
	})

	c := New(analyzer.New(analyzer.WithCaseIDs(false)), nil)

	// when
	findings, err := c.Run(t.Context(), root)
	// then
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []Finding{
		{
			Path:    filepath.Join(root, "a", "test_a.py"),
			Line:    2,
			Column:  4,
			Message: "FCN001: [run] function should be called with keywords arguments. value: 2 (line:2 column:8)",
			Check:   "call-keywords",
		},
		{
			Path:    filepath.Join(root, "b", "test_b.py"),
			Line:    2,
			Column:  4,
			Message: "FCN001: [run] function should be called with keywords arguments. value: 1 (line:2 column:8)",
			Check:   "call-keywords",
		},
	}

	if len(findings) != len(want) {
		t.Fatalf("Got %d findings %v, want %d", len(findings), findings, len(want))
	}

	for i, f := range findings {
		if f != want[i] {
			t.Errorf("Finding %d = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestRunFixturesAcrossDirectories(t *testing.T) {
	t.Parallel()

	const fixture = "import pytest\n\n\n@pytest.fixture()\ndef vm():\n    pass\n"

	// given
	root := writeFiles(t, map[string]string{
		"tests/a/conftest.py": fixture,
		"tests/a/utils.py":    fixture,
		"tests/b/conftest.py": fixture,
	})

	c := New(analyzer.New(analyzer.WithCallKeywords(false), analyzer.WithCaseIDs(false)), nil)

	for range 2 {
		// when
		findings, err := c.Run(t.Context(), root)
		// then
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		want := []string{
			filepath.Join(root, "tests", "a", "utils.py"),
			filepath.Join(root, "tests", "b", "conftest.py"),
		}

		if len(findings) != len(want) {
			t.Fatalf("Got %d findings %v, want %d", len(findings), findings, len(want))
		}

		for i, f := range findings {
			if f.Path != want[i] || f.Line != 5 || f.Message != "UFN001: [vm], Fixture name is not unique." {
				t.Errorf("Finding %d = %v, want UFN001 in %s:5", i, f, want[i])
			}
		}
	}
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{
		"test_one.py": "def test_one():\n    pass\n",
		"test_two.py": "def test_two():\n    pass\n",
	})

	c := New(analyzer.New(analyzer.WithCallKeywords(false)), nil)

	findings, err := c.Run(t.Context(), filepath.Join(root, "test_two.py"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(findings) != 1 || filepath.Base(findings[0].Path) != "test_two.py" {
		t.Errorf("Got findings %v, want a single finding in test_two.py", findings)
	}
}

func TestRunNoSources(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{"main.go": "package main\n"})

	_, err := New(analyzer.Analyzer, nil).Run(t.Context(), root)
	if !errors.Is(err, ErrNoSources) {
		t.Errorf("Got error %v, want %v", err, ErrNoSources)
	}
}

func TestRunMissingPath(t *testing.T) {
	t.Parallel()

	_, err := New(analyzer.Analyzer, nil).Run(t.Context(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error for missing path")
	}
}

func TestFindingString(t *testing.T) {
	t.Parallel()

	f := Finding{Path: "tests/test_vm.py", Line: 3, Column: 4, Message: "FCN001: [run] function"}

	if got, want := f.String(), "tests/test_vm.py:3:5: FCN001: [run] function"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

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

// Package testsource provides utilities for parsing Python source code in tests.
//
// It handles the boilerplate of turning Python fragments into syntax trees and
// of comparing reported diagnostics against `# want "regexp"` annotations.
package testsource

import (
	"strings"
	"testing"

	"github.com/RedHatQE/flake8-plugins/internal/pyast"
)

const filename = "test_source.py"

// Parse parses a Python source fragment into a [pyast.File].
// A single leading newline is dropped so fragments can start on their own line
// inside a raw string literal.
func Parse(tb testing.TB, src string) *pyast.File {
	tb.Helper()

	return ParseFile(tb, filename, src)
}

// ParseFile is like [Parse] with an explicit file path.
func ParseFile(tb testing.TB, path, src string) *pyast.File {
	tb.Helper()

	src = strings.TrimPrefix(src, "\n")

	f, err := pyast.Parse(tb.Context(), path, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

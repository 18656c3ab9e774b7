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

// Package fixtures reports pytest fixtures whose names are defined more than once.
package fixtures

import (
	"fmt"
	"iter"
	"strings"

	"github.com/RedHatQE/flake8-plugins/internal/callsite"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/registry"
	"github.com/RedHatQE/flake8-plugins/internal/report"
)

const fixtureTag = "fixture"

// Findings yields an UFN001 finding for every top-level fixture of file
// whose name is already recorded in seen. New names are recorded.
func Findings(file *pyast.File, seen *registry.Registry) iter.Seq[report.Finding] {
	resolver := callsite.NewResolver(file)

	return func(yield func(report.Finding) bool) {
		for fn := range file.Functions() {
			if strings.HasPrefix(fn.Name, "test_") || !isFixture(resolver, fn) {
				continue
			}

			if seen.Add(fn.Name) {
				continue
			}

			if !yield(report.At(fn, report.DuplicateFixture, fmt.Sprintf("[%s], Fixture name is not unique.", fn.Name))) {
				return
			}
		}
	}
}

// isFixture reports whether fn is decorated with `@<...>.fixture` or `@<...>.fixture(...)`.
func isFixture(resolver callsite.Resolver, fn *pyast.FunctionDef) bool {
	for _, d := range fn.Decorators {
		switch d.(type) {
		case *pyast.Call, *pyast.Attribute, *pyast.Name:
			if name, _ := resolver.Name(d, callsite.PreferMember); name == fixtureTag {
				return true
			}
		}
	}

	return false
}

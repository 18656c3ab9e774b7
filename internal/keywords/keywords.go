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

// Package keywords reports calls that pass arguments positionally instead of by keyword.
package keywords

import (
	"fmt"
	"iter"

	"github.com/RedHatQE/flake8-plugins/internal/builtins"
	"github.com/RedHatQE/flake8-plugins/internal/callsite"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/report"
)

const unknownName = "<unknown>"

// Analyzer checks the calls of a single file.
type Analyzer struct {
	file     *pyast.File
	resolver callsite.Resolver
	exclude  builtins.ExclusionSet
}

// New returns an [Analyzer] for file, skipping calls matched by exclude.
func New(file *pyast.File, exclude builtins.ExclusionSet) *Analyzer {
	return &Analyzer{file: file, resolver: callsite.NewResolver(file), exclude: exclude}
}

// Findings yields one FCN001 finding per call site passing keywordable positional arguments.
func (a *Analyzer) Findings() iter.Seq[report.Finding] {
	return func(yield func(report.Finding) bool) {
		for s := range statements(a.file.Body) {
			if !a.check(s, yield) {
				return
			}
		}
	}
}

// statements yields the statements that may carry calls, nested ones before their parents.
// The else branch statements of an if statement are yielded, but not descended into.
func statements(body []pyast.Stmt) iter.Seq[pyast.Stmt] {
	return func(yield func(pyast.Stmt) bool) {
		walk(body, yield)
	}
}

func walk(body []pyast.Stmt, yield func(pyast.Stmt) bool) bool {
	for _, s := range body {
		if nested := pyast.Body(s); len(nested) > 0 && !walk(nested, yield) {
			return false
		}

		switch s := s.(type) {
		case *pyast.ExprStmt, *pyast.Assign, *pyast.With, *pyast.Return:
			if !yield(s) {
				return false
			}

		case *pyast.If:
			for _, e := range s.Orelse {
				if !yield(e) {
					return false
				}
			}
		}
	}

	return true
}

func (a *Analyzer) check(s pyast.Stmt, yield func(report.Finding) bool) bool {
	if a.excluded(s) {
		return true
	}

	for _, elt := range elements(s) {
		calls := callsite.Extract(elt)
		if len(calls) == 0 {
			continue
		}

		name, ok := a.resolver.Name(elt, callsite.PreferBase)
		if !ok {
			name = unknownName
		}

		for _, c := range calls {
			if a.excluded(c.Node) {
				continue
			}

			values := a.describe(c.Args)
			if values == "" {
				continue
			}

			f := report.At(c.Node, report.CallKeywords,
				fmt.Sprintf("[%s] function should be called with keywords arguments. %s", name, values))
			if !f.Pos.IsValid() {
				f = report.At(s, f.Code, f.Message)
			}

			if !yield(f) {
				return false
			}
		}
	}

	return true
}

// elements expands a statement whose value is a list display into the list elements.
func elements(s pyast.Stmt) []pyast.Node {
	if list, ok := pyast.WrappedValue(s).(*pyast.List); ok {
		nodes := make([]pyast.Node, 0, len(list.Elts))
		for _, e := range list.Elts {
			nodes = append(nodes, e)
		}

		return nodes
	}

	return []pyast.Node{s}
}

// excluded reports whether the call name of n, its dotted segments or its member name are excluded.
func (a *Analyzer) excluded(n pyast.Node) bool {
	if name, ok := a.resolver.Name(n, callsite.PreferBase); ok && a.exclude.Matches(name) {
		return true
	}

	name, ok := a.resolver.Name(n, callsite.PreferMember)

	return ok && a.exclude.Contains(name)
}

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

// Package callsite resolves display names of call sites and extracts the
// positional arguments passed at them.
package callsite

import (
	"regexp"
	"strings"

	"github.com/RedHatQE/flake8-plugins/internal/pyast"
)

// Preference selects which part of a dotted name is resolved first.
type Preference uint8

const (
	// PreferBase resolves `a.b.c` to the full dotted path.
	PreferBase Preference = iota

	// PreferMember resolves `a.b.c` to the trailing member `c`.
	PreferMember
)

// Opposite returns the other preference.
func (p Preference) Opposite() Preference {
	if p == PreferBase {
		return PreferMember
	}

	return PreferBase
}

// Resolver derives display names for nodes of a single file.
type Resolver struct {
	file *pyast.File
}

// NewResolver returns a [Resolver] for the given file.
func NewResolver(file *pyast.File) Resolver {
	return Resolver{file: file}
}

// Name returns the display name of n, trying pref first and its opposite second.
func (r Resolver) Name(n pyast.Node, pref Preference) (string, bool) {
	if name, ok := r.resolve(n, pref); ok {
		return name, true
	}

	return r.resolve(n, pref.Opposite())
}

func (r Resolver) resolve(n pyast.Node, pref Preference) (string, bool) {
	switch n := n.(type) {
	case nil:
		return "", false

	case *pyast.Attribute:
		if pref == PreferMember {
			return n.Attr, n.Attr != ""
		}

		base, ok := r.resolve(n.Value, pref)
		if !ok {
			return "", false
		}

		return base + "." + n.Attr, true

	case *pyast.Name:
		return n.ID, n.ID != ""

	case *pyast.Str:
		return n.Value, n.Value != ""

	case *pyast.Num:
		return n.Text, true

	case *pyast.Constant:
		return n.Text, true

	case *pyast.Call:
		return r.resolve(n.Func, pref)

	case *pyast.With:
		return r.with(n, pref)
	}

	if v := pyast.WrappedValue(n); v != nil {
		return r.resolve(v, pref)
	}

	return "", false
}

var callToken = regexp.MustCompile(`[A-Za-z_][\w.]*\s*\(`)

// with names a with statement by the first call token on its header line,
// falling back to the next line for parenthesized headers and then to the body.
func (r Resolver) with(w *pyast.With, pref Preference) (string, bool) {
	if r.file != nil {
		line := w.Pos().Line
		for _, l := range [...]int{line, line + 1} {
			header := strings.TrimSpace(r.file.Line(l))
			header = strings.TrimPrefix(header, "async ")
			header = strings.TrimPrefix(header, "with")

			if m := callToken.FindString(header); m != "" {
				return strings.TrimSpace(strings.TrimSuffix(m, "(")), true
			}
		}
	}

	for _, s := range w.Body {
		switch s.(type) {
		case *pyast.ExprStmt, *pyast.Assign:
			if name, ok := r.resolve(s, pref); ok {
				return name, true
			}
		}
	}

	return "", false
}

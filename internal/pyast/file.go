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

package pyast

import (
	"iter"
	"strings"
)

// File is a parsed Python source file. It is immutable once parsed.
type File struct {
	Path  string
	Src   []byte
	Lines []string
	Body  []Stmt
}

// Line returns the source line n, starting at 1, or "" when out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}

	return f.Lines[n-1]
}

// Text returns the source text of a node.
func (f *File) Text(n Node) string {
	start, end := n.Pos().Offset, n.End()
	if start < 0 || end > len(f.Src) || start > end {
		return ""
	}

	return string(f.Src[start:end])
}

// Functions yields the top-level function definitions.
func (f *File) Functions() iter.Seq[*FunctionDef] {
	return func(yield func(*FunctionDef) bool) {
		for _, s := range f.Body {
			fn, ok := s.(*FunctionDef)
			if !ok {
				continue
			}

			if !yield(fn) {
				return
			}
		}
	}
}

// Function returns the first top-level function with the given name, or nil.
func (f *File) Function(name string) *FunctionDef {
	for fn := range f.Functions() {
		if fn.Name == name {
			return fn
		}
	}

	return nil
}

// Imports yields the top-level import statements.
func (f *File) Imports() iter.Seq[*Import] {
	return func(yield func(*Import) bool) {
		for _, s := range f.Body {
			imp, ok := s.(*Import)
			if !ok {
				continue
			}

			if !yield(imp) {
				return
			}
		}
	}
}

func splitLines(src []byte) []string {
	lines := strings.Split(string(src), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

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

package pyast_test

import (
	"slices"
	"testing"

	. "github.com/RedHatQE/flake8-plugins/internal/pyast"
)

func parse(t *testing.T, src string) *File {
	t.Helper()

	f, err := Parse(t.Context(), "test.py", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return f
}

func TestParseFunction(t *testing.T) {
	t.Parallel()

	// given
	const src = `import pytest

@pytest.mark.polarion("CNV-1")
async def test_a(first, second: int, third=3, *args, fourth: str = "x", **kwargs):
    pass
`

	// when
	f := parse(t, src)

	// then
	fn := f.Function("test_a")
	if fn == nil {
		t.Fatal("Function test_a not found")
	}

	if !fn.Async {
		t.Error("Expected async function")
	}

	if got, want := fn.Pos().Line, 4; got != want {
		t.Errorf("Function line = %d, want %d", got, want)
	}

	if want := []string{"first", "second", "third", "fourth"}; !slices.Equal(fn.Params, want) {
		t.Errorf("Params = %v, want %v", fn.Params, want)
	}

	if len(fn.Decorators) != 1 {
		t.Fatalf("Got %d decorators, want 1", len(fn.Decorators))
	}

	call, ok := fn.Decorators[0].(*Call)
	if !ok {
		t.Fatalf("Decorator is %T, want *Call", fn.Decorators[0])
	}

	attr, ok := call.Func.(*Attribute)
	if !ok || attr.Attr != "polarion" {
		t.Errorf("Decorator function = %#v, want attribute polarion", call.Func)
	}

	if s, ok := call.Args[0].(*Str); !ok || s.Value != "CNV-1" {
		t.Errorf("Decorator argument = %#v, want string CNV-1", call.Args[0])
	}
}

func TestParseCall(t *testing.T) {
	t.Parallel()

	// given
	const src = `foo(1, "two", *rest, key=value, **extra)`

	// when
	f := parse(t, src)

	// then
	stmt, ok := f.Body[0].(*ExprStmt)
	if !ok {
		t.Fatalf("Statement is %T, want *ExprStmt", f.Body[0])
	}

	call, ok := stmt.Value.(*Call)
	if !ok {
		t.Fatalf("Value is %T, want *Call", stmt.Value)
	}

	if got := len(call.Args); got != 3 {
		t.Errorf("Got %d positional arguments, want 3", got)
	}

	if _, ok := call.Args[2].(*Starred); !ok {
		t.Errorf("Third argument is %T, want *Starred", call.Args[2])
	}

	if got := len(call.Keywords); got != 2 {
		t.Fatalf("Got %d keywords, want 2", got)
	}

	if call.Keywords[0].Arg != "key" || call.Keywords[1].Arg != "" {
		t.Errorf("Keyword names = %q, %q, want \"key\", \"\"", call.Keywords[0].Arg, call.Keywords[1].Arg)
	}

	if pos := call.Args[1].Pos(); pos.Line != 1 || pos.Column != 7 {
		t.Errorf("Second argument position = %v, want 1:7", pos)
	}
}

func TestParseStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, s Stmt)
	}{
		{
			name: "chained assignment",
			src:  "a = b = foo(1)",
			check: func(t *testing.T, s Stmt) {
				t.Helper()

				a, ok := s.(*Assign)
				if !ok {
					t.Fatalf("Statement is %T, want *Assign", s)
				}

				if len(a.Targets) != 2 {
					t.Errorf("Got %d targets, want 2", len(a.Targets))
				}

				if _, ok := a.Value.(*Call); !ok {
					t.Errorf("Value is %T, want *Call", a.Value)
				}
			},
		},
		{
			name: "with items",
			src:  "with open(a) as f, lock:\n    pass",
			check: func(t *testing.T, s Stmt) {
				t.Helper()

				w, ok := s.(*With)
				if !ok {
					t.Fatalf("Statement is %T, want *With", s)
				}

				if len(w.Items) != 2 {
					t.Fatalf("Got %d items, want 2", len(w.Items))
				}

				if _, ok := w.Items[0].(*Call); !ok {
					t.Errorf("First item is %T, want *Call", w.Items[0])
				}
			},
		},
		{
			name: "elif chain",
			src:  "if a:\n    x()\nelif b:\n    y()\nelse:\n    z()",
			check: func(t *testing.T, s Stmt) {
				t.Helper()

				i, ok := s.(*If)
				if !ok {
					t.Fatalf("Statement is %T, want *If", s)
				}

				if len(i.Orelse) != 1 {
					t.Fatalf("Got %d else statements, want 1", len(i.Orelse))
				}

				elif, ok := i.Orelse[0].(*If)
				if !ok {
					t.Fatalf("Else statement is %T, want *If", i.Orelse[0])
				}

				if len(elif.Orelse) != 1 {
					t.Errorf("Got %d nested else statements, want 1", len(elif.Orelse))
				}
			},
		},
		{
			name: "relative import",
			src:  "from ..utils.helpers import a, b as c",
			check: func(t *testing.T, s Stmt) {
				t.Helper()

				imp, ok := s.(*Import)
				if !ok {
					t.Fatalf("Statement is %T, want *Import", s)
				}

				if !imp.From || imp.Level != 2 || imp.Module != "utils.helpers" {
					t.Errorf("Import = %+v, want from-import level 2 of utils.helpers", imp)
				}

				if want := []string{"a", "b"}; !slices.Equal(imp.Names, want) {
					t.Errorf("Names = %v, want %v", imp.Names, want)
				}
			},
		},
		{
			name: "return yield",
			src:  "def f():\n    return (yield from g(1))",
			check: func(t *testing.T, s Stmt) {
				t.Helper()

				fn, ok := s.(*FunctionDef)
				if !ok {
					t.Fatalf("Statement is %T, want *FunctionDef", s)
				}

				r, ok := fn.Body[0].(*Return)
				if !ok {
					t.Fatalf("Body statement is %T, want *Return", fn.Body[0])
				}

				y, ok := r.Value.(*Yield)
				if !ok || !y.From {
					t.Errorf("Return value = %#v, want yield from", r.Value)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parse(t, tt.src)
			if len(f.Body) == 0 {
				t.Fatal("Empty body")
			}

			tt.check(t, f.Body[0])
		})
	}
}

func TestParseStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		value string
		parts int
	}{
		{name: "double quoted", src: `x = "abc"`, value: "abc"},
		{name: "single quoted raw", src: `x = r'a\d'`, value: `a\d`},
		{name: "hex escape", src: `x = "CNV-\x31"`, value: "CNV-1"},
		{name: "quote escape", src: `x = 'it\'s'`, value: "it's"},
		{name: "newline escape", src: `x = "a\nb"`, value: "a\nb"},
		{name: "unknown escape", src: `x = "a\d"`, value: `a\d`},
		{name: "raw keeps escapes", src: `x = r"CNV-\x31"`, value: `CNV-\x31`},
		{name: "triple quoted", src: `x = """doc"""`, value: "doc"},
		{name: "concatenated", src: `x = ("ab" "cd")`, value: "abcd"},
		{name: "f-string", src: `x = f"id-{n}-end"`, parts: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := parse(t, tt.src)
			a, ok := f.Body[0].(*Assign)
			if !ok {
				t.Fatalf("Statement is %T, want *Assign", f.Body[0])
			}

			switch v := a.Value.(type) {
			case *Str:
				if tt.parts != 0 || v.Value != tt.value {
					t.Errorf("Got string %q, want %q", v.Value, tt.value)
				}

			case *FString:
				if len(v.Parts) != tt.parts {
					t.Errorf("Got %d parts, want %d", len(v.Parts), tt.parts)
				}

			default:
				t.Errorf("Value is %T", a.Value)
			}
		})
	}
}

func TestFileText(t *testing.T) {
	t.Parallel()

	f := parse(t, "value = compute(1,\n    2)\n")

	a := f.Body[0].(*Assign)
	if got, want := f.Text(a.Value), "compute(1,\n    2)"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}

	if got, want := f.Line(2), "    2)"; got != want {
		t.Errorf("Line(2) = %q, want %q", got, want)
	}

	if got := f.Line(10); got != "" {
		t.Errorf("Line(10) = %q, want empty", got)
	}
}

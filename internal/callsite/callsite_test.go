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

package callsite_test

import (
	"testing"

	. "github.com/RedHatQE/flake8-plugins/internal/callsite"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/testsource"
)

func TestResolverName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		pref   Preference
		want   string
		wantOK bool
	}{
		{name: "attribute base", src: "x.y(1)", pref: PreferBase, want: "x.y", wantOK: true},
		{name: "attribute member", src: "x.y(1)", pref: PreferMember, want: "y", wantOK: true},
		{name: "dotted base", src: "a.b.c(1)", pref: PreferBase, want: "a.b.c", wantOK: true},
		{name: "plain name", src: "foo(1)", pref: PreferMember, want: "foo", wantOK: true},
		{name: "assignment", src: "v = foo(1)", pref: PreferBase, want: "foo", wantOK: true},
		{name: "return", src: "def f():\n    return foo(1)", pref: PreferBase, want: "", wantOK: false},
		{name: "call on call falls back", src: "foo(1)(2)", pref: PreferBase, want: "foo", wantOK: true},
		{name: "subscript base", src: "x[0].run(1)", pref: PreferBase, want: "x.run", wantOK: true},
		{name: "call base unresolved", src: "(a or b).run(1)", pref: PreferBase, want: "run", wantOK: true},
		{name: "await", src: "await client.get(1)", pref: PreferBase, want: "client.get", wantOK: true},
		{name: "string", src: `"text"`, pref: PreferBase, want: "text", wantOK: true},
		{name: "empty string", src: `""`, pref: PreferBase, want: "", wantOK: false},
		{name: "number", src: `42`, pref: PreferBase, want: "42", wantOK: true},
		{name: "with header", src: "with pytest.raises(ValueError):\n    pass", pref: PreferBase, want: "pytest.raises", wantOK: true},
		{name: "with next line", src: "with (\n    open(path) as f,\n):\n    pass", pref: PreferBase, want: "open", wantOK: true},
		{name: "with body fallback", src: "with lock:\n    value = compute(1)", pref: PreferBase, want: "compute", wantOK: true},
		{name: "lambda", src: "lambda: 0", pref: PreferBase, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			f := testsource.Parse(t, tt.src)
			r := NewResolver(f)

			// when
			got, ok := r.Name(f.Body[0], tt.pref)

			// then
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Name() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolverAsyncWith(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `
async def f():
    async with session.get(url) as r:
        pass
`)

	fn := f.Body[0].(*pyast.FunctionDef)

	got, ok := NewResolver(f).Name(fn.Body[0], PreferBase)
	if !ok || got != "session.get" {
		t.Errorf("Name() = %q, %v, want \"session.get\", true", got, ok)
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		calls []int
	}{
		{name: "positional", src: "foo(1, 2)", calls: []int{2}},
		{name: "keywords only", src: "foo(a=1, b=2)", calls: nil},
		{name: "no arguments", src: "foo()", calls: nil},
		{name: "starred dropped", src: "foo(*args, 1)", calls: []int{1}},
		{name: "only starred", src: "foo(*args)", calls: nil},
		{name: "f-string dropped", src: `foo(f"x{y}")`, calls: nil},
		{name: "assignment chain", src: "x = a(1).b", calls: []int{1}},
		{name: "outer call only", src: "outer(inner(1))", calls: []int{1}},
		{name: "empty outer", src: "x = get(1)()", calls: nil},
		{name: "with items", src: "with a(1) as x, b(c=d(2, 3)):\n    pass", calls: []int{1, 2}},
		{name: "with keyword call", src: "with a(c=d(2)):\n    pass", calls: []int{1}},
		{name: "with plain item", src: "with lock:\n    pass", calls: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			f := testsource.Parse(t, tt.src)

			// when
			calls := Extract(f.Body[0])

			// then
			if len(calls) != len(tt.calls) {
				t.Fatalf("Got %d call sites, want %d", len(calls), len(tt.calls))
			}

			for i, c := range calls {
				if len(c.Args) != tt.calls[i] {
					t.Errorf("Call %d has %d arguments, want %d", i, len(c.Args), tt.calls[i])
				}
			}
		})
	}
}

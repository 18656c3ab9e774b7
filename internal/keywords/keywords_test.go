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

package keywords_test

import (
	"slices"
	"testing"

	"github.com/RedHatQE/flake8-plugins/internal/builtins"
	. "github.com/RedHatQE/flake8-plugins/internal/keywords"
	"github.com/RedHatQE/flake8-plugins/internal/testsource"
)

const suffix = "] function should be called with keywords arguments. "

func TestFindings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		exclude []string
		want    []string
	}{
		{
			name: "positional arguments",
			src:  "create_vm(name, namespace)",
			want: []string{"FCN001: [create_vm" + suffix + "value: name (line:1 column:10), value: namespace (line:1 column:16)"},
		},
		{
			name: "builtin",
			src:  `print("x")`,
		},
		{
			name: "builtin member",
			src:  `items.append(value)`,
		},
		{
			name: "method call",
			src:  "vm.restart(wait)",
			want: []string{"FCN001: [vm.restart" + suffix + "value: wait (line:1 column:11)"},
		},
		{
			name: "builtin member method",
			src:  "vm.start(wait)",
		},
		{
			name: "keywords only",
			src:  "foo(a=1, **kwargs)",
		},
		{
			name: "starred only",
			src:  "foo(*args)",
		},
		{
			name: "f-string only",
			src:  `log(f"x{y}")`,
		},
		{
			name:    "excluded base",
			src:     "ssh.run(cmd)",
			exclude: []string{"ssh"},
		},
		{
			name:    "excluded member",
			src:     "client.ssh(cmd)",
			exclude: []string{"ssh"},
		},
		{
			name: "dict argument",
			src:  "foo({'a': 1})",
			want: []string{"FCN001: [foo" + suffix + "value: <dict> (line:1 column:4)"},
		},
		{
			name: "number argument",
			src:  "resize(2)",
			want: []string{"FCN001: [resize" + suffix + "value: 2 (line:1 column:7)"},
		},
		{
			name: "attribute argument",
			src:  "foo(self.value)",
			want: []string{"FCN001: [foo" + suffix + "value: value (line:1 column:4)"},
		},
		{
			name: "lambda argument",
			src:  "apply(lambda: 0)",
			want: []string{"FCN001: [apply" + suffix + "value: lambda: 0 (line:1 column:6)"},
		},
		{
			name: "list elements",
			src:  "items = [make(1), make(2)]",
			want: []string{
				"FCN001: [make" + suffix + "value: 1 (line:1 column:14)",
				"FCN001: [make" + suffix + "value: 2 (line:1 column:23)",
			},
		},
		{
			name: "nested before parent",
			src: `
def test_a():
    with timeout(10):
        create(1)
`,
			want: []string{
				"FCN001: [create" + suffix + "value: 1 (line:3 column:15)",
				"FCN001: [timeout" + suffix + "value: 10 (line:2 column:17)",
			},
		},
		{
			name: "if and else",
			src: `
if cond:
    a(1)
else:
    b(2)
`,
			want: []string{
				"FCN001: [a" + suffix + "value: 1 (line:2 column:6)",
				"FCN001: [b" + suffix + "value: 2 (line:4 column:6)",
			},
		},
		{
			name: "return value",
			src: `
def f():
    return make(1)
`,
			want: []string{"FCN001: [make" + suffix + "value: 1 (line:2 column:16)"},
		},
		{
			name: "with keyword call",
			src: `
with pool(size=make(3)):
    pass
`,
			want: []string{"FCN001: [pool" + suffix + "value: 3 (line:1 column:20)"},
		},
		{
			name: "excluded with statement",
			src: `
with open(path) as f:
    pass
`,
		},
		{
			name: "class body",
			src: `
class TestVM:
    vm = create(1)
`,
			want: []string{"FCN001: [create" + suffix + "value: 1 (line:2 column:16)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			f := testsource.Parse(t, tt.src)
			a := New(f, builtins.NewExclusionSet(tt.exclude...))

			// when
			var got []string
			for finding := range a.Findings() {
				got = append(got, finding.Text())
			}

			// then
			if !slices.Equal(got, tt.want) {
				t.Errorf("Got findings:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestFindingPosition(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `
def test_a():
    value = compute(1)
`)

	for finding := range New(f, builtins.NewExclusionSet()).Findings() {
		if finding.Pos.Line != 2 || finding.Pos.Column != 4 {
			t.Errorf("Position = %v, want 2:4", finding.Pos)
		}

		return
	}

	t.Error("No finding reported")
}

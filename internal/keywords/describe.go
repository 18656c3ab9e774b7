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

package keywords

import (
	"fmt"
	"strings"

	"github.com/RedHatQE/flake8-plugins/internal/callsite"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
)

const dictLabel = "<dict>"

// describe renders positional arguments as `value: <name> (line:L column:C)` entries.
func (a *Analyzer) describe(args []pyast.Expr) string {
	var b strings.Builder

	for _, arg := range args {
		switch arg := arg.(type) {
		case *pyast.Lambda:
			if a.excluded(arg) {
				continue
			}

			writeValue(&b, a.label(arg), arg.Pos())

		case *pyast.Dict:
			writeValue(&b, dictLabel, arg.Pos())

		default:
			writeValue(&b, a.label(arg), arg.Pos())
		}
	}

	return b.String()
}

// label names an argument by its member-preferred name, falling back to its source text.
func (a *Analyzer) label(arg pyast.Expr) string {
	if name, ok := a.resolver.Name(arg, callsite.PreferMember); ok {
		return name
	}

	return strings.Join(strings.Fields(a.file.Text(arg)), " ")
}

func writeValue(b *strings.Builder, name string, pos pyast.Position) {
	if b.Len() > 0 {
		b.WriteString(", ") // ignore error
	}

	fmt.Fprintf(b, "value: %s (line:%d column:%d)", name, pos.Line, pos.Column) // ignore error
}

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

// Package report turns check findings into analysis diagnostics.
package report

import (
	"iter"

	"golang.org/x/tools/go/analysis"

	"github.com/RedHatQE/flake8-plugins/internal/astutil"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
)

// Finding is a single issue found in a Python file.
type Finding struct {
	Pos     pyast.Position
	End     int // byte offset, 0 if unknown
	Code    Code
	Message string // message without the code prefix
}

// At returns a [Finding] spanning node n.
func At(n pyast.Node, code Code, message string) Finding {
	return Finding{Pos: n.Pos(), End: n.End(), Code: code, Message: message}
}

// Text returns the full diagnostic message, e.g. `PID001: [test_a ()], Polarion ID is missing`.
func (f Finding) Text() string {
	return f.Code.String() + ": " + f.Message
}

// Report emits the findings as diagnostics, honoring `# noqa` comments.
// It returns the number of diagnostics reported.
func Report(p *analysis.Pass, file astutil.CurrentFile, findings iter.Seq[Finding]) int {
	n := 0
	for f := range findings {
		code := f.Code.String()
		if file.NoQA(f.Pos.Line, code) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      file.Pos(f.Pos.Offset),
			Category: f.Code.Check().Name(),
			Message:  f.Text(),
		}

		if f.End > f.Pos.Offset {
			diagnostic.End = file.Pos(f.End)
		}

		p.Report(diagnostic)
		n++
	}

	return n
}

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

package astutil

import (
	"go/token"
	"regexp"
	"strings"

	"github.com/RedHatQE/flake8-plugins/internal/pyast"
)

// CurrentFile holds a parsed Python file and its position mapping.
type CurrentFile struct {
	file    *pyast.File
	handle  *token.File
	ignored bool
}

// NewCurrentFile registers file in fset and returns a [CurrentFile] for it.
func NewCurrentFile(fset *token.FileSet, file *pyast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.AddFile(file.Path, -1, len(file.Src))
	handle.SetLinesForContent(file.Src)

	return CurrentFile{file, handle, fileHasNoQA(file.Lines)}
}

// Valid returns true if the [CurrentFile] was successfully created.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// File returns the parsed file.
func (c CurrentFile) File() *pyast.File {
	return c.file
}

// Ignored returns true if the file carries a `# flake8: noqa` comment.
func (c CurrentFile) Ignored() bool {
	return c.ignored
}

// Pos converts a byte offset into a [token.Pos], clamping it to the file.
func (c CurrentFile) Pos(offset int) token.Pos {
	offset = min(max(offset, 0), c.handle.Size())

	return c.handle.Pos(offset)
}

// NoQA reports whether the source line carries a `# noqa` comment covering code.
func (c CurrentFile) NoQA(line int, code string) bool {
	if c.file == nil {
		return false
	}

	return LineHasNoQA(c.file.Line(line), code)
}

var (
	noqaPattern     = regexp.MustCompile(`(?i)#\s*noqa(?::[\s]?(?P<codes>[A-Z]+[0-9]*(?:[,\s]+[A-Z]+[0-9]*)*))?`)
	fileNoQAPattern = regexp.MustCompile(`(?i)^\s*#\s*flake8[:=]\s*noqa\s*$`)
)

// LineHasNoQA checks if a source line contains a `# noqa` directive suppressing code.
//
// A bare `# noqa` suppresses every code, `# noqa: PID001,FCN` suppresses the
// listed codes and code prefixes.
func LineHasNoQA(line, code string) bool {
	if !strings.Contains(line, "#") {
		return false
	}

	matches := noqaPattern.FindStringSubmatch(line)
	if matches == nil {
		return false
	}

	codes := matches[noqaPattern.SubexpIndex("codes")]
	if codes == "" {
		return true
	}

	for c := range strings.FieldsFuncSeq(codes, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		if strings.HasPrefix(code, strings.ToUpper(c)) {
			return true
		}
	}

	return false
}

func fileHasNoQA(lines []string) bool {
	for _, line := range lines {
		if fileNoQAPattern.MatchString(line) {
			return true
		}
	}

	return false
}

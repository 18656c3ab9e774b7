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

package testsource

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

const wantMarker = "# want "

// Key identifies a source line.
type Key struct {
	Path string
	Line int
}

func (k Key) String() string { return k.Path + ":" + strconv.Itoa(k.Line) }

// Expectations maps source lines to the diagnostic patterns expected there.
type Expectations map[Key][]*regexp.Regexp

// Want collects the `# want "regexp" ...` annotations of a Python source file.
// Patterns use Go string literal syntax, double-quoted or back-quoted.
func Want(tb testing.TB, path string, src []byte, into Expectations) {
	tb.Helper()

	for i, line := range strings.Split(string(src), "\n") {
		idx := strings.Index(line, wantMarker)
		if idx < 0 {
			continue
		}

		key := Key{Path: path, Line: i + 1}

		patterns, err := parsePatterns(line[idx+len(wantMarker):])
		if err != nil {
			tb.Fatalf("%s: %v", key, err)
		}

		into[key] = append(into[key], patterns...)
	}
}

func parsePatterns(s string) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp
	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q: %w", s, err)
		}

		text, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q: %w", quoted, err)
		}

		re, err := regexp.Compile(text)
		if err != nil {
			return nil, fmt.Errorf("invalid want pattern %q: %w", text, err)
		}

		patterns = append(patterns, re)
		s = s[len(quoted):]
	}

	return patterns, nil
}

// Match checks the reported messages against the expectations.
// Every message must match a distinct pattern on its line and every pattern must be consumed.
func Match(tb testing.TB, want Expectations, got map[Key][]string) {
	tb.Helper()

	remaining := make(Expectations, len(want))
	for k, v := range want {
		remaining[k] = append([]*regexp.Regexp(nil), v...)
	}

	for key, messages := range got {
	next:
		for _, msg := range messages {
			patterns := remaining[key]
			for i, re := range patterns {
				if re.MatchString(msg) {
					remaining[key] = append(patterns[:i], patterns[i+1:]...)

					continue next
				}
			}

			tb.Errorf("%s: unexpected diagnostic: %s", key, msg)
		}
	}

	for key, patterns := range remaining {
		for _, re := range patterns {
			tb.Errorf("%s: no diagnostic was reported matching %#q", key, re)
		}
	}
}

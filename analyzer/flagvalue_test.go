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

package analyzer_test

import (
	"flag"
	"log/slog"
	"slices"
	"strings"
	"testing"

	. "github.com/RedHatQE/flake8-plugins/analyzer"
	"github.com/RedHatQE/flake8-plugins/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Checks
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.CallKeywords,
			args:    []string{"-case-ids"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.CaseIDs,
			args:    []string{"-case-ids=false"},
			want:    false,
		},
		{
			name:    "Capitalized",
			initial: config.CallKeywords,
			args:    []string{"-case-ids=True"},
			want:    true,
		},
		{
			name:    "Word",
			initial: config.CaseIDs,
			args:    []string{"-case-ids=no"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var checks config.BitMask[config.Checks]
			checks.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.CaseIDs
			fv := NewCheckValue(&checks, value)
			fs.Var(fv, "case-ids", "report case identifiers")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if checks.Enabled(value) != tt.want {
				t.Errorf("CaseIDs enabled = %v, want %v", checks.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var behavior config.BitMask[config.Behavior]

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.PackageDirs), "package-dirs", "check package directories")

	if err := fs.Parse([]string{"-package-dirs=maybe"}); err == nil {
		t.Error("Expected parse error")
	}

	if !behavior.Empty() {
		t.Error("Expected no behavior set")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var checks config.BitMask[config.Checks]
	checks.Set(config.CaseIDs, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&checks, config.CaseIDs)
	fs.Var(fv, "case-ids", "report case identifiers")

	const expectedUsage = `
  -case-ids
    	report case identifiers (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithCallKeywords(false),
		nil,
		Options{WithCaseIDPrefix("CNV-"), WithExcludeFunctions("run_command")},
	}

	attrs := opts.LogValue().Group()

	keys := make([]string, 0, len(attrs))
	for _, a := range attrs {
		keys = append(keys, a.Key)
	}

	if want := []string{"call-keywords", "nil", "case-id-prefix", "exclude-functions"}; !slices.Equal(keys, want) {
		t.Errorf("Got keys %v, want %v", keys, want)
	}

	if got := attrs[0].Value; got.Kind() != slog.KindBool || got.Bool() {
		t.Errorf("Got call-keywords %v, want false", got)
	}
}

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

package caseid

import (
	"fmt"
	"regexp"

	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/registry"
	"github.com/RedHatQE/flake8-plugins/internal/report"
)

// Validator checks case identifiers against the required pattern and for duplicates.
type Validator struct {
	pattern        *regexp.Regexp
	seen           *registry.Registry
	skipDuplicates bool
}

// NewValidator returns a [Validator] accepting identifiers starting with prefix
// followed by digits. Well-formed identifiers are recorded in seen.
func NewValidator(prefix string, seen *registry.Registry, skipDuplicates bool) *Validator {
	return &Validator{
		pattern:        regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `\d+`),
		seen:           seen,
		skipDuplicates: skipDuplicates,
	}
}

// Validate checks the identifier id of test function fn.
//
// Malformed identifiers are reported at node at and never recorded.
// Repeated well-formed identifiers are reported at fn unless duplicates are skipped.
func (v *Validator) Validate(fn *pyast.FunctionDef, id string, at pyast.Node) (report.Finding, bool) {
	if !v.pattern.MatchString(id) {
		return report.At(at, report.WrongID, fmt.Sprintf("[%s %s], Polarion ID is wrong", fn.Name, id)), true
	}

	if v.skipDuplicates || v.seen.Add(id) {
		return report.Finding{}, false
	}

	return report.At(fn, report.DuplicateID, fmt.Sprintf("[%s %s], Polarion ID is duplicate", fn.Name, id)), true
}

// Missing returns the finding for a test case without identifier, reported at node at.
func Missing(fn *pyast.FunctionDef, label string, at pyast.Node) report.Finding {
	return report.At(at, report.MissingID, fmt.Sprintf("[%s (%s)], Polarion ID is missing", fn.Name, label))
}

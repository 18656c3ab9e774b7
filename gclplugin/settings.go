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

package gclplugin

import pytestguard "github.com/RedHatQE/flake8-plugins/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// CallKeywords enables the positional call argument check.
	CallKeywords *bool `json:"call-keywords,omitzero"`
	// CaseIDs enables the case identifier checks.
	CaseIDs *bool `json:"case-ids,omitzero"`
	// UniqueFixtures enables the fixture name check.
	UniqueFixtures *bool `json:"unique-fixtures,omitzero"`
	// ConftestImports enables the conftest import check.
	ConftestImports *bool `json:"conftest-imports,omitzero"`
	// TestsImports enables the cross-test import check.
	TestsImports *bool `json:"tests-imports,omitzero"`
	// ExcludeFunctions lists call names exempt from the positional argument check.
	ExcludeFunctions []string `json:"exclude-functions,omitzero"`
	// SkipDuplicateIDs disables duplicate case identifier detection.
	SkipDuplicateIDs *bool `json:"skip-duplicate-ids,omitzero"`
	// CaseTag sets the member name of the decorator carrying case identifiers.
	CaseTag *string `json:"case-tag,omitzero"`
	// CaseIDPrefix sets the required case identifier prefix.
	CaseIDPrefix *string `json:"case-id-prefix,omitzero"`
	// ExcludeImports lists imports exempt from the cross-test import check.
	ExcludeImports []string `json:"exclude-imports,omitzero"`
}

// Options converts [Settings] into a list of [pytestguard.Option] for the pytestguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []pytestguard.Option {
	var opts []pytestguard.Option

	opts = appendOption(opts, s.CallKeywords, pytestguard.WithCallKeywords)
	opts = appendOption(opts, s.CaseIDs, pytestguard.WithCaseIDs)
	opts = appendOption(opts, s.UniqueFixtures, pytestguard.WithUniqueFixtures)
	opts = appendOption(opts, s.ConftestImports, pytestguard.WithConftestImports)
	opts = appendOption(opts, s.TestsImports, pytestguard.WithTestsImports)
	opts = appendList(opts, s.ExcludeFunctions, pytestguard.WithExcludeFunctions)
	opts = appendOption(opts, s.SkipDuplicateIDs, pytestguard.WithSkipDuplicateIDs)
	opts = appendOption(opts, s.CaseTag, pytestguard.WithCaseTag)
	opts = appendOption(opts, s.CaseIDPrefix, pytestguard.WithCaseIDPrefix)
	opts = appendList(opts, s.ExcludeImports, pytestguard.WithExcludeImports)

	return opts
}

// appendOption appends a non-nil setting to a [pytestguard.Option] list.
func appendOption[T any](opts []pytestguard.Option, value *T, constructor func(T) pytestguard.Option) []pytestguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-empty list setting to a [pytestguard.Option] list.
func appendList(opts []pytestguard.Option, values []string, constructor func(...string) pytestguard.Option) []pytestguard.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values...))
}

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

package analyzer

import (
	"log/slog"
	"slices"

	"github.com/RedHatQE/flake8-plugins/internal/config"
	"github.com/RedHatQE/flake8-plugins/internal/run"
)

// Option configures specific behavior of a [New] pytestguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithCallKeywords is an [Option] to configure whether positional call arguments are reported (FCN001).
func WithCallKeywords(enabled bool) Option {
	return checkOption{check: config.CallKeywords, enabled: enabled}
}

// WithCaseIDs is an [Option] to configure whether case identifiers are checked (PID001-PID003).
func WithCaseIDs(enabled bool) Option {
	return checkOption{check: config.CaseIDs, enabled: enabled}
}

// WithUniqueFixtures is an [Option] to configure whether repeated fixture names are reported (UFN001).
func WithUniqueFixtures(enabled bool) Option {
	return checkOption{check: config.UniqueFixtures, enabled: enabled}
}

// WithConftestImports is an [Option] to configure whether imports from conftest are reported (NIC001).
func WithConftestImports(enabled bool) Option {
	return checkOption{check: config.ConftestImports, enabled: enabled}
}

// WithTestsImports is an [Option] to configure whether imports across test packages are reported (NIT001).
func WithTestsImports(enabled bool) Option {
	return checkOption{check: config.TestsImports, enabled: enabled}
}

type checkOption struct {
	check   config.Checks
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.check.Name(), o.enabled)
}

// WithSkipDuplicateIDs is an [Option] to disable duplicate case identifier detection.
func WithSkipDuplicateIDs(skip bool) Option {
	return behaviorOption{behavior: config.SkipDuplicateIDs, enabled: skip}
}

// WithPackageDirs is an [Option] to also check the Python files in the directories of analyzed packages.
func WithPackageDirs(enabled bool) Option {
	return behaviorOption{behavior: config.PackageDirs, enabled: enabled}
}

type behaviorOption struct {
	behavior config.Behavior
	enabled  bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.behavior, o.enabled)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.behavior.Name(), o.enabled)
}

// WithExcludeFunctions is an [Option] to exempt calls to the named functions from keyword checks.
// Python built-ins are always exempt.
func WithExcludeFunctions(names ...string) Option {
	return excludeFunctionsOption{names: slices.Clone(names)}
}

type excludeFunctionsOption struct{ names []string }

func (o excludeFunctionsOption) apply(r *run.Options) {
	r.ExcludeFunctions = append(r.ExcludeFunctions, o.names...)
}

func (o excludeFunctionsOption) LogAttr() slog.Attr {
	return slog.Any("exclude-functions", o.names)
}

// WithExcludeImports is an [Option] to exempt imports, by full name or second segment, from test import checks.
func WithExcludeImports(names ...string) Option {
	return excludeImportsOption{names: slices.Clone(names)}
}

type excludeImportsOption struct{ names []string }

func (o excludeImportsOption) apply(r *run.Options) {
	r.ExcludeImports = append(r.ExcludeImports, o.names...)
}

func (o excludeImportsOption) LogAttr() slog.Attr {
	return slog.Any("exclude-imports", o.names)
}

// WithCaseTag is an [Option] to configure the member name of the decorator carrying case identifiers.
func WithCaseTag(tag string) Option { return caseTagOption{tag: tag} }

type caseTagOption struct{ tag string }

func (o caseTagOption) apply(r *run.Options) {
	r.CaseTag = o.tag
}

func (o caseTagOption) LogAttr() slog.Attr {
	return slog.String("case-tag", o.tag)
}

// WithCaseIDPrefix is an [Option] to configure the required prefix of case identifiers.
func WithCaseIDPrefix(prefix string) Option { return caseIDPrefixOption{prefix: prefix} }

type caseIDPrefixOption struct{ prefix string }

func (o caseIDPrefixOption) apply(r *run.Options) {
	r.CaseIDPrefix = o.prefix
}

func (o caseIDPrefixOption) LogAttr() slog.Attr {
	return slog.String("case-id-prefix", o.prefix)
}

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

package run

import (
	"go/token"

	"github.com/RedHatQE/flake8-plugins/internal/caseid"
	"github.com/RedHatQE/flake8-plugins/internal/config"
	"github.com/RedHatQE/flake8-plugins/internal/registry"
)

// Options represent the configuration of the pytestguard analyzer.
type Options struct {
	// Checks represents the checks to be enabled.
	Checks config.BitMask[config.Checks]

	// Behavior holds behavioral switches.
	Behavior config.BitMask[config.Behavior]

	// ExcludeFunctions are call names never reported for positional arguments, in addition to Python built-ins.
	ExcludeFunctions []string

	// ExcludeImports are import names or second segments never reported as cross-test imports.
	ExcludeImports []string

	// CaseTag is the member name of the decorator carrying case identifiers.
	CaseTag string

	// CaseIDPrefix is the required prefix of case identifiers.
	CaseIDPrefix string

	// fixtures holds the fixture names seen per driver run. Drivers share
	// one file set across the passes of a run.
	fixtures registry.Scoped[token.FileSet]
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks:       config.NewBitMask(config.AllChecks),
		CaseTag:      caseid.DefaultCaseTag,
		CaseIDPrefix: caseid.DefaultIDPrefix,
	}
}

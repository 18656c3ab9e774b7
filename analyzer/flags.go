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
	"flag"

	"github.com/RedHatQE/flake8-plugins/internal/config"
	"github.com/RedHatQE/flake8-plugins/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, c := range []struct {
		check config.Checks
		usage string
	}{
		{config.CallKeywords, "report positional call arguments (FCN001)"},
		{config.CaseIDs, "report missing, wrong and duplicate case identifiers (PID001-PID003)"},
		{config.UniqueFixtures, "report fixture names defined more than once (UFN001)"},
		{config.ConftestImports, "report imports from conftest (NIC001)"},
		{config.TestsImports, "report imports across test packages (NIT001)"},
	} {
		flags.Var(NewCheckValue(&o.Checks, c.check), c.check.Name(), c.usage)
	}

	flags.Var(NewBehaviorValue(&o.Behavior, config.SkipDuplicateIDs), "skip-duplicate-polarion-ids-check", "skip check for duplicate case identifiers")
	flags.Var(NewBehaviorValue(&o.Behavior, config.PackageDirs), "package-dirs", "check the Python files in the package directories")
	flags.Var((*listValue)(&o.ExcludeFunctions), "fcn-exclude-functions", "comma-separated function names to exclude from keyword checks")
	flags.Var((*listValue)(&o.ExcludeImports), "nit-exclude-imports", "comma-separated imports to exclude from test import checks")
	flags.StringVar(&o.CaseTag, "case-tag", o.CaseTag, "member name of the decorator carrying case identifiers")
	flags.StringVar(&o.CaseIDPrefix, "case-id-prefix", o.CaseIDPrefix, "required prefix of case identifiers")
}

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

// Package analyzer implements the pytestguard static analysis pass.
//
// # Overview
//
// pytestguard checks Python test suites. The Python files of a pass are taken
// from [golang.org/x/tools/go/analysis.Pass.OtherFiles] and, with the
// -package-dirs flag, from the directories of the analyzed package. Use the
// [github.com/RedHatQE/flake8-plugins/checker] package to run it over
// arbitrary Python files and directories.
//
// # Checks
//
//   - FCN001: a call passes positional arguments. Python built-ins and the
//     names given with -fcn-exclude-functions are exempt.
//   - PID001: a test function has no case identifier.
//   - PID002: a case identifier does not match the required prefix and digits.
//   - PID003: a case identifier is used by more than one test in a file.
//   - UFN001: a fixture name is defined more than once.
//   - NIC001: a module imports from conftest.
//   - NIT001: a test module imports from another test package.
//
// # Example
//
//	@pytest.mark.parametrize(
//	    "vm",
//	    [
//	        pytest.param("fedora", marks=pytest.mark.polarion("CNV-1234")),
//	        pytest.param("rhel"),  # PID001
//	    ],
//	)
//	def test_start(vm):
//	    start_vm(vm)  # FCN001, use start_vm(vm=vm)
//
// A `# noqa` or `# noqa: CODE` comment on the reported line suppresses findings,
// a `# flake8: noqa` line skips the file.
package analyzer

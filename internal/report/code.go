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

package report

import "github.com/RedHatQE/flake8-plugins/internal/config"

//go:generate go tool stringer -type Code -linecomment

// Code identifies the kind of a finding. Its string form prefixes every message.
type Code uint8

const (
	CallKeywords     Code = iota // FCN001
	MissingID                    // PID001
	WrongID                      // PID002
	DuplicateID                  // PID003
	DuplicateFixture             // UFN001
	ConftestImport               // NIC001
	TestsImport                  // NIT001
)

// Check returns the check producing findings with this code.
func (c Code) Check() config.Checks {
	switch c {
	case CallKeywords:
		return config.CallKeywords
	case MissingID, WrongID, DuplicateID:
		return config.CaseIDs
	case DuplicateFixture:
		return config.UniqueFixtures
	case ConftestImport:
		return config.ConftestImports
	case TestsImport:
		return config.TestsImports
	default:
		return 0
	}
}

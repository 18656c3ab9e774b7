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

// Package config holds the check and behavior switches shared by the analyzer and its drivers.
package config

// Checks selects the checks a run performs.
type Checks uint8

const (
	// CallKeywords reports calls passing positional arguments (FCN001).
	CallKeywords Checks = 1 << iota

	// CaseIDs reports missing, malformed and duplicate test case identifiers (PID001-PID003).
	CaseIDs

	// UniqueFixtures reports fixture names defined more than once (UFN001).
	UniqueFixtures

	// ConftestImports reports imports from conftest modules (NIC001).
	ConftestImports

	// TestsImports reports imports across test packages (NIT001).
	TestsImports
)

// AllChecks enables every check.
const AllChecks = CallKeywords | CaseIDs | UniqueFixtures | ConftestImports | TestsImports

// Name returns the flag and diagnostic category name of a single check.
func (c Checks) Name() string {
	switch c {
	case CallKeywords:
		return "call-keywords"
	case CaseIDs:
		return "case-ids"
	case UniqueFixtures:
		return "unique-fixtures"
	case ConftestImports:
		return "conftest-imports"
	case TestsImports:
		return "tests-imports"
	default:
		return "unknown"
	}
}

// Behavior represents switches modifying how checks run.
type Behavior uint8

const (
	// SkipDuplicateIDs disables duplicate case identifier detection.
	SkipDuplicateIDs Behavior = 1 << iota

	// PackageDirs additionally checks the Python files found in the directories of analyzed packages.
	PackageDirs
)

// Name returns the flag name of a single behavior switch.
func (b Behavior) Name() string {
	switch b {
	case SkipDuplicateIDs:
		return "skip-duplicate-ids"
	case PackageDirs:
		return "package-dirs"
	default:
		return "unknown"
	}
}

// BitMask is a set of flags of type T.
type BitMask[T ~uint8 | ~uint16] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T ~uint8 | ~uint16](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.value |= flag
	}

	return b
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.value |= flag
	} else {
		b.value &^= flag
	}
}

// Enabled reports whether all bits of flag are set.
func (b BitMask[T]) Enabled(flag T) bool {
	return flag != 0 && b.value&flag == flag
}

// Empty reports whether no flag is set.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}

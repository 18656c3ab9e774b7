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

// Package caseid reports test functions without a well-formed, unique case identifier.
//
// A test function carries its identifier in a case tag decorator, e.g.
// `@pytest.mark.polarion("CNV-1234")`, in the marks of each `pytest.param`
// of a parametrize decorator, or in the marks of the params of a
// parametrized fixture it requests.
package caseid

import (
	"iter"
	"slices"
	"strings"

	"github.com/RedHatQE/flake8-plugins/internal/callsite"
	"github.com/RedHatQE/flake8-plugins/internal/pyast"
	"github.com/RedHatQE/flake8-plugins/internal/report"
)

const (
	// DefaultCaseTag is the member name of the case tag decorator.
	DefaultCaseTag = "polarion"

	// DefaultIDPrefix is the required prefix of case identifiers.
	DefaultIDPrefix = "CNV-"

	testPrefix     = "test_"
	parametrizeTag = "parametrize"
	fixtureTag     = "fixture"
	paramsKeyword  = "params"
	marksKeyword   = "marks"
)

// Walker finds the test functions of a file and checks their case identifiers.
type Walker struct {
	file      *pyast.File
	resolver  callsite.Resolver
	validator *Validator
	caseTag   string
}

// NewWalker returns a [Walker] for file. An empty caseTag selects [DefaultCaseTag].
func NewWalker(file *pyast.File, validator *Validator, caseTag string) *Walker {
	if caseTag == "" {
		caseTag = DefaultCaseTag
	}

	return &Walker{
		file:      file,
		resolver:  callsite.NewResolver(file),
		validator: validator,
		caseTag:   caseTag,
	}
}

// Findings yields the findings of all test functions in source order.
func (w *Walker) Findings() iter.Seq[report.Finding] {
	return func(yield func(report.Finding) bool) {
		for fn := range TestFunctions(w.file.Body) {
			for _, f := range w.checkFunction(fn) {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// TestFunctions yields the functions named test_* defined at the top level of
// body or inside classes, recursively.
func TestFunctions(body []pyast.Stmt) iter.Seq[*pyast.FunctionDef] {
	return func(yield func(*pyast.FunctionDef) bool) {
		testFunctions(body, yield)
	}
}

func testFunctions(body []pyast.Stmt, yield func(*pyast.FunctionDef) bool) bool {
	for _, s := range body {
		switch s := s.(type) {
		case *pyast.ClassDef:
			if !testFunctions(s.Body, yield) {
				return false
			}

		case *pyast.FunctionDef:
			if strings.HasPrefix(s.Name, testPrefix) && !yield(s) {
				return false
			}
		}
	}

	return true
}

// check accumulates the findings of a single test function.
type check struct {
	fn       *pyast.FunctionDef
	found    bool
	findings []report.Finding
}

func (c *check) add(f report.Finding, ok bool) {
	if ok {
		c.findings = append(c.findings, f)
	}
}

func (c *check) missing(label string, at pyast.Node) {
	c.findings = append(c.findings, Missing(c.fn, label, at))
}

func (w *Walker) checkFunction(fn *pyast.FunctionDef) []report.Finding {
	c := &check{fn: fn}

	if len(fn.Decorators) == 0 {
		w.checkFixtures(c)

		return c.findings
	}

	for _, tag := range w.tags(fn.Decorators) {
		if w.member(tag) == w.caseTag {
			c.found = true
			w.validateTag(c, tag)

			break
		}

		w.checkParametrize(c, tag)
	}

	if !c.found {
		c.missing("", fn)
	}

	return c.findings
}

// tags returns the case tag and parametrize decorator calls, case tags first.
func (w *Walker) tags(decorators []pyast.Expr) []*pyast.Call {
	var cases, params []*pyast.Call
	for _, d := range decorators {
		call, ok := d.(*pyast.Call)
		if !ok {
			continue
		}

		switch w.member(call) {
		case w.caseTag:
			cases = append(cases, call)

		case parametrizeTag:
			params = append(params, call)
		}
	}

	return slices.Concat(cases, params)
}

// member returns the trailing name of the called function, e.g. `polarion` for `pytest.mark.polarion(...)`.
func (w *Walker) member(call *pyast.Call) string {
	name, _ := w.resolver.Name(call.Func, callsite.PreferMember)

	return name
}

// caseTagCall returns e as a case tag call.
func (w *Walker) caseTagCall(e pyast.Expr) (*pyast.Call, bool) {
	call, ok := e.(*pyast.Call)
	if !ok || w.member(call) != w.caseTag {
		return nil, false
	}

	return call, true
}

// validateTag validates the first argument of a case tag decorator or mark.
func (w *Walker) validateTag(c *check, tag *pyast.Call) {
	if len(tag.Args) == 0 {
		c.missing("", c.fn)

		return
	}

	c.add(w.validator.Validate(c.fn, w.literal(tag.Args[0]), c.fn))
}

// checkParametrize checks the elements of the list arguments of a parametrize decorator.
func (w *Walker) checkParametrize(c *check, tag *pyast.Call) {
	for _, arg := range tag.Args {
		list, ok := arg.(*pyast.List)
		if !ok {
			continue
		}

		for _, elt := range list.Elts {
			switch elt := elt.(type) {
			case *pyast.Dict:
				continue

			case *pyast.Call:
				w.checkParam(c, elt)

			default:
				c.missing(w.literal(elt), elt)
			}
		}
	}
}

// checkParam checks a single `pytest.param(...)` element of a parametrize list.
func (w *Walker) checkParam(c *check, param *pyast.Call) {
	if len(param.Keywords) == 0 {
		c.missing("", param)

		return
	}

	marked := false
	for _, kw := range param.Keywords {
		if kw.Arg != marksKeyword {
			continue
		}

		for _, mark := range pyast.Elements(kw.Value) {
			tag, ok := w.caseTagCall(mark)
			if !ok {
				continue
			}

			marked = true
			c.found = true
			w.validateTag(c, tag)
		}
	}

	if !marked {
		c.missing(w.label(param), c.fn)
	}
}

// checkFixtures follows the parameters of an undecorated test function to
// same-named parametrized fixtures and checks the marks of their params.
func (w *Walker) checkFixtures(c *check) {
	exist := false
	for _, param := range c.fn.Params {
		fixture := w.file.Function(param)
		if fixture == nil {
			continue
		}

		for _, d := range fixture.Decorators {
			call, ok := d.(*pyast.Call)
			if !ok || w.member(call) != fixtureTag {
				continue
			}

			for _, kw := range call.Keywords {
				if kw.Arg != paramsKeyword {
					continue
				}

				for _, elt := range pyast.Elements(kw.Value) {
					exist = true
					w.checkFixtureParam(c, elt)
				}
			}
		}
	}

	if !exist {
		c.missing("", c.fn)
	}
}

func (w *Walker) checkFixtureParam(c *check, elt pyast.Expr) {
	marked := false
	if param, ok := elt.(*pyast.Call); ok {
		for _, kw := range param.Keywords {
			if kw.Arg != marksKeyword {
				continue
			}

			for _, mark := range pyast.Elements(kw.Value) {
				tag, ok := w.caseTagCall(mark)
				if !ok {
					continue
				}

				marked = true

				if len(tag.Args) == 0 {
					c.missing("", tag)

					continue
				}

				id := tag.Args[0]
				c.add(w.validator.Validate(c.fn, w.literal(id), id))
			}
		}
	}

	if !marked {
		c.missing(w.label(elt), elt)
	}
}

// literal returns the value of a string literal or the source text of any other expression.
func (w *Walker) literal(e pyast.Expr) string {
	if s, ok := e.(*pyast.Str); ok {
		return s.Value
	}

	return w.file.Text(e)
}

// label describes a test case by the literal of its first argument or the last string of a list argument.
func (w *Walker) label(e pyast.Expr) string {
	call, ok := e.(*pyast.Call)
	if !ok {
		return w.literal(e)
	}

	if len(call.Args) == 0 {
		return ""
	}

	switch arg := call.Args[0].(type) {
	case *pyast.List:
		for _, elt := range slices.Backward(arg.Elts) {
			if s, ok := elt.(*pyast.Str); ok {
				return s.Value
			}
		}

		return ""

	default:
		return w.literal(arg)
	}
}

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

package callsite

import "github.com/RedHatQE/flake8-plugins/internal/pyast"

// CallArgs is a call-like node together with the positional arguments that could be keywords.
type CallArgs struct {
	Node pyast.Node
	Args []pyast.Expr
}

// Extract returns the call sites of n that pass keywordable positional arguments.
//
// Positional arguments are taken from the first call reached by following
// wrapped values from n. For a with statement, each context expression call and
// the calls passed as its keyword values are included. Starred arguments and
// f-strings are dropped, and call sites left without arguments are omitted.
func Extract(n pyast.Node) []CallArgs {
	var calls []CallArgs

	add := func(n pyast.Node) {
		if args := keywordable(positional(n)); len(args) > 0 {
			calls = append(calls, CallArgs{Node: n, Args: args})
		}
	}

	add(n)

	w, ok := n.(*pyast.With)
	if !ok {
		return calls
	}

	for _, item := range w.Items {
		call, ok := item.(*pyast.Call)
		if !ok {
			continue
		}

		add(call)

		for _, kw := range call.Keywords {
			if c, ok := kw.Value.(*pyast.Call); ok {
				add(c)
			}
		}
	}

	return calls
}

func positional(n pyast.Node) []pyast.Expr {
	for n != nil {
		if call, ok := n.(*pyast.Call); ok {
			return call.Args
		}

		v := pyast.WrappedValue(n)
		if v == nil {
			break
		}

		n = v
	}

	return nil
}

func keywordable(args []pyast.Expr) []pyast.Expr {
	var result []pyast.Expr
	for _, arg := range args {
		switch arg.(type) {
		case *pyast.Starred, *pyast.FString:
			continue
		}

		result = append(result, arg)
	}

	return result
}

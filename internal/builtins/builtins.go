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

// Package builtins lists the Python built-in names that are never reported
// for positional call arguments.
package builtins

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Names are the names of Python's builtins module (CPython 3.12).
var Names = []string{
	"ArithmeticError", "AssertionError", "AttributeError", "BaseException",
	"BaseExceptionGroup", "BlockingIOError", "BrokenPipeError", "BufferError",
	"BytesWarning", "ChildProcessError", "ConnectionAbortedError", "ConnectionError",
	"ConnectionRefusedError", "ConnectionResetError", "DeprecationWarning", "EOFError",
	"Ellipsis", "EncodingWarning", "EnvironmentError", "Exception", "ExceptionGroup",
	"False", "FileExistsError", "FileNotFoundError", "FloatingPointError",
	"FutureWarning", "GeneratorExit", "IOError", "ImportError", "ImportWarning",
	"IndentationError", "IndexError", "InterruptedError", "IsADirectoryError",
	"KeyError", "KeyboardInterrupt", "LookupError", "MemoryError",
	"ModuleNotFoundError", "NameError", "None", "NotADirectoryError",
	"NotImplemented", "NotImplementedError", "OSError", "OverflowError",
	"PendingDeprecationWarning", "PermissionError", "ProcessLookupError",
	"RecursionError", "ReferenceError", "ResourceWarning", "RuntimeError",
	"RuntimeWarning", "StopAsyncIteration", "StopIteration", "SyntaxError",
	"SyntaxWarning", "SystemError", "SystemExit", "TabError", "TimeoutError", "True",
	"TypeError", "UnboundLocalError", "UnicodeDecodeError", "UnicodeEncodeError",
	"UnicodeError", "UnicodeTranslateError", "UnicodeWarning", "UserWarning",
	"ValueError", "Warning", "ZeroDivisionError",
	"__build_class__", "__debug__", "__doc__", "__import__", "__loader__",
	"__name__", "__package__", "__spec__",
	"abs", "aiter", "all", "anext", "any", "ascii", "bin", "bool", "breakpoint",
	"bytearray", "bytes", "callable", "chr", "classmethod", "compile", "complex",
	"copyright", "credits", "delattr", "dict", "dir", "divmod", "enumerate", "eval",
	"exec", "exit", "filter", "float", "format", "frozenset", "getattr", "globals",
	"hasattr", "hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "license", "list", "locals", "map", "max",
	"memoryview", "min", "next", "object", "oct", "open", "ord", "pow", "print",
	"property", "quit", "range", "repr", "reversed", "round", "set", "setattr",
	"slice", "sorted", "staticmethod", "str", "sum", "super", "tuple", "type", "vars",
	"zip",
}

var (
	strMethods = []string{
		"capitalize", "center", "count", "encode", "endswith", "expandtabs", "find",
		"index", "isalnum", "isalpha", "isascii", "isdigit", "islower", "isspace",
		"istitle", "isupper", "join", "ljust", "lower", "lstrip", "maketrans",
		"partition", "removeprefix", "removesuffix", "replace", "rfind", "rindex",
		"rjust", "rpartition", "rsplit", "rstrip", "split", "splitlines",
		"startswith", "strip", "swapcase", "title", "translate", "upper", "zfill",
	}

	exceptionMembers = []string{"add_note", "args", "with_traceback"}

	unicodeErrorMembers = []string{"encoding", "end", "object", "reason", "start"}
)

// members maps built-in names to the public attributes defined directly on them.
var members = map[string][]string{
	"BaseException":      exceptionMembers,
	"BaseExceptionGroup": {"derive", "exceptions", "message", "split", "subgroup"},
	"OSError":            {"characters_written", "errno", "filename", "filename2", "strerror"},
	"SyntaxError": {
		"end_lineno", "end_offset", "filename", "lineno", "msg", "offset",
		"print_file_and_line", "text",
	},
	"ImportError":           {"msg", "name", "path"},
	"AttributeError":        {"name", "obj"},
	"NameError":             {"name"},
	"StopIteration":         {"value"},
	"SystemExit":            {"code"},
	"UnicodeDecodeError":    unicodeErrorMembers,
	"UnicodeEncodeError":    unicodeErrorMembers,
	"UnicodeTranslateError": {"end", "object", "reason", "start"},
	"__loader__": {
		"create_module", "exec_module", "find_spec", "get_code", "get_source",
		"is_package", "load_module",
	},
	"__spec__": {"loader", "loader_state", "name", "origin", "submodule_search_locations"},
	"bytearray": append(slices.Clone(strMethods),
		"append", "clear", "copy", "decode", "extend", "fromhex", "hex", "insert",
		"pop", "remove", "reverse"),
	"bytes":   append(slices.Clone(strMethods), "decode", "fromhex", "hex"),
	"complex": {"conjugate", "imag", "real"},
	"dict": {
		"clear", "copy", "fromkeys", "get", "items", "keys", "pop", "popitem",
		"setdefault", "update", "values",
	},
	"exit": {"eof", "name"},
	"float": {
		"as_integer_ratio", "conjugate", "fromhex", "hex", "imag", "is_integer", "real",
	},
	"frozenset": {
		"copy", "difference", "intersection", "isdisjoint", "issubset", "issuperset",
		"symmetric_difference", "union",
	},
	"int": {
		"as_integer_ratio", "bit_count", "bit_length", "conjugate", "denominator",
		"from_bytes", "imag", "is_integer", "numerator", "real", "to_bytes",
	},
	"list": {
		"append", "clear", "copy", "count", "extend", "index", "insert", "pop",
		"remove", "reverse", "sort",
	},
	"memoryview": {
		"c_contiguous", "cast", "contiguous", "f_contiguous", "format", "hex",
		"itemsize", "nbytes", "ndim", "obj", "readonly", "release", "shape",
		"strides", "suboffsets", "tobytes", "tolist", "toreadonly",
	},
	"property": {"deleter", "fdel", "fget", "fset", "getter", "setter"},
	"quit":     {"eof", "name"},
	"range":    {"count", "index", "start", "step", "stop"},
	"set": {
		"add", "clear", "copy", "difference", "difference_update", "discard",
		"intersection", "intersection_update", "isdisjoint", "issubset",
		"issuperset", "pop", "remove", "symmetric_difference",
		"symmetric_difference_update", "union", "update",
	},
	"slice": {"indices", "start", "step", "stop"},
	"str": append(slices.Clone(strMethods),
		"casefold", "format", "format_map", "isdecimal", "isidentifier",
		"isnumeric", "isprintable"),
	"tuple": {"count", "index"},
	"type":  {"mro"},
}

// All yields the built-in names followed by their public members, possibly with repetitions.
func All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range Names {
			if !yield(name) {
				return
			}
		}

		for _, name := range slices.Sorted(maps.Keys(members)) {
			for _, member := range members[name] {
				if !yield(member) {
					return
				}
			}
		}
	}
}

// ExclusionSet is the set of call names never reported.
type ExclusionSet map[string]struct{}

// NewExclusionSet returns the union of the user supplied names and all built-in names.
func NewExclusionSet(names ...string) ExclusionSet {
	s := make(ExclusionSet, len(Names)+len(names)+256)
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			s[name] = struct{}{}
		}
	}

	for name := range All() {
		s[name] = struct{}{}
	}

	return s
}

// Contains reports whether name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[name]

	return ok
}

// Matches reports whether a dotted name or any of its segments is excluded.
func (s ExclusionSet) Matches(name string) bool {
	if s.Contains(name) {
		return true
	}

	for segment := range strings.SplitSeq(name, ".") {
		if s.Contains(segment) {
			return true
		}
	}

	return false
}

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

package pyast

import "strconv"

// Position is a location in a Python source file.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // byte column, starting at 0
}

// IsValid reports whether the position has been set.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span is the source range of a node. It is embedded in every node type.
type Span struct {
	Start Position
	Stop  int // byte offset just after the node
}

// Pos returns the start position of the node.
func (s Span) Pos() Position { return s.Start }

// End returns the byte offset just after the node.
func (s Span) End() int { return s.Stop }

// Node is a Python syntax tree node.
type Node interface {
	Pos() Position
	End() int
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Statements.
type (
	// FunctionDef is a (possibly decorated, possibly async) function definition.
	// Its position is the `def` keyword (or `async`), not the first decorator.
	FunctionDef struct {
		Span
		Name       string
		Async      bool
		Params     []string
		Decorators []Expr
		Body       []Stmt
	}

	// ClassDef is a class definition.
	ClassDef struct {
		Span
		Name       string
		Decorators []Expr
		Body       []Stmt
	}

	// ExprStmt is an expression used as a statement, including yield expressions.
	ExprStmt struct {
		Span
		Value Expr
	}

	// Assign is a plain, chained, augmented or annotated assignment.
	// Value is nil for a bare annotation.
	Assign struct {
		Span
		Targets []Expr
		Value   Expr
	}

	// Return is a return statement; Value is nil for a bare return.
	Return struct {
		Span
		Value Expr
	}

	// With is a with (or async with) statement. Items holds the context expressions.
	With struct {
		Span
		Items []Expr
		Body  []Stmt
	}

	// If is an if statement. An elif chain is represented as a nested [If]
	// being the only statement in Orelse.
	If struct {
		Span
		Test   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	// Compound is a for, while, try or match statement.
	// Body is the primary suite, Orelse the else suite, if any.
	Compound struct {
		Span
		Keyword string
		Body    []Stmt
		Orelse  []Stmt
	}

	// Import is an import or from-import statement.
	Import struct {
		Span
		From   bool
		Level  int    // number of leading dots of a relative import
		Module string // from-import module, empty for `from . import x`
		Names  []string
	}

	// SimpleStmt is any other statement (pass, raise, assert, del, ...).
	SimpleStmt struct {
		Span
		Keyword string
	}
)

// Expressions.
type (
	// Call is a call expression.
	Call struct {
		Span
		Func     Expr
		Args     []Expr
		Keywords []*Keyword
	}

	// Keyword is a keyword argument. Arg is empty for a `**mapping` argument.
	Keyword struct {
		Span
		Arg   string
		Value Expr
	}

	// Attribute is a member access `Value.Attr`.
	Attribute struct {
		Span
		Value Expr
		Attr  string
	}

	// Name is an identifier.
	Name struct {
		Span
		ID string
	}

	// Str is a string literal. Value is the text between the quotes.
	Str struct {
		Span
		Value string
	}

	// FString is an interpolated string literal. Parts holds literal segments
	// as [Str] and interpolations as [FormattedValue].
	FString struct {
		Span
		Parts []Expr
	}

	// FormattedValue is a replacement field of an [FString].
	FormattedValue struct {
		Span
	}

	// Num is an integer or float literal.
	Num struct {
		Span
		Text string
	}

	// Constant is True, False, None or Ellipsis.
	Constant struct {
		Span
		Text string
	}

	// Dict is a dictionary display or comprehension.
	Dict struct {
		Span
	}

	// List is a list display.
	List struct {
		Span
		Elts []Expr
	}

	// Tuple is a tuple display, with or without parentheses.
	Tuple struct {
		Span
		Elts []Expr
	}

	// Starred is `*Value`, or `**Value` when Double is set.
	Starred struct {
		Span
		Value  Expr
		Double bool
	}

	// Subscript is `Value[...]`.
	Subscript struct {
		Span
		Value Expr
	}

	// Await is `await Value`.
	Await struct {
		Span
		Value Expr
	}

	// Yield is `yield Value` or `yield from Value`.
	Yield struct {
		Span
		Value Expr
		From  bool
	}

	// Lambda is a lambda expression.
	Lambda struct {
		Span
	}

	// Other is any expression without a dedicated node type.
	Other struct {
		Span
		Kind string
	}
)

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*ExprStmt) stmtNode()    {}
func (*Assign) stmtNode()      {}
func (*Return) stmtNode()      {}
func (*With) stmtNode()        {}
func (*If) stmtNode()          {}
func (*Compound) stmtNode()    {}
func (*Import) stmtNode()      {}
func (*SimpleStmt) stmtNode()  {}

func (*Call) exprNode()           {}
func (*Keyword) exprNode()        {}
func (*Attribute) exprNode()      {}
func (*Name) exprNode()           {}
func (*Str) exprNode()            {}
func (*FString) exprNode()        {}
func (*FormattedValue) exprNode() {}
func (*Num) exprNode()            {}
func (*Constant) exprNode()       {}
func (*Dict) exprNode()           {}
func (*List) exprNode()           {}
func (*Tuple) exprNode()          {}
func (*Starred) exprNode()        {}
func (*Subscript) exprNode()      {}
func (*Await) exprNode()          {}
func (*Yield) exprNode()          {}
func (*Lambda) exprNode()         {}
func (*Other) exprNode()          {}

// Body returns the primary nested statement list of a compound statement.
func Body(s Stmt) []Stmt {
	switch s := s.(type) {
	case *FunctionDef:
		return s.Body
	case *ClassDef:
		return s.Body
	case *With:
		return s.Body
	case *If:
		return s.Body
	case *Compound:
		return s.Body
	}

	return nil
}

// WrappedValue returns the expression a node wraps, or nil.
// Following WrappedValue repeatedly walks from a statement to the expression
// it evaluates, e.g. `x = a(1).b` leads to the call `a(1)`.
func WrappedValue(n Node) Expr {
	switch n := n.(type) {
	case *ExprStmt:
		return n.Value
	case *Assign:
		return n.Value
	case *Return:
		return n.Value
	case *Keyword:
		return n.Value
	case *Attribute:
		return n.Value
	case *Starred:
		return n.Value
	case *Subscript:
		return n.Value
	case *Await:
		return n.Value
	case *Yield:
		return n.Value
	}

	return nil
}

// Elements returns the elements of a list or tuple display,
// or a single-element slice holding e otherwise.
func Elements(e Expr) []Expr {
	switch e := e.(type) {
	case *List:
		return e.Elts
	case *Tuple:
		return e.Elts
	case nil:
		return nil
	}

	return []Expr{e}
}

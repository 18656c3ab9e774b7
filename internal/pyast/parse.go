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

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrNoTree is returned when the parser produces no syntax tree.
var ErrNoTree = errors.New("no syntax tree")

// Parse parses Python source into a [File].
//
// Syntax errors do not fail the parse, the affected regions are skipped.
func Parse(ctx context.Context, path string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if tree == nil {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrNoTree)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrNoTree)
	}

	c := converter{src: src}

	return &File{
		Path:  path,
		Src:   src,
		Lines: splitLines(src),
		Body:  c.block(root),
	}, nil
}

// converter translates tree-sitter nodes into the package's node types.
type converter struct {
	src []byte
}

func (c converter) span(n *sitter.Node) Span {
	p := n.StartPoint()

	return Span{
		Start: Position{Offset: int(n.StartByte()), Line: int(p.Row) + 1, Column: int(p.Column)},
		Stop:  int(n.EndByte()),
	}
}

func (c converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(c.src)
}

// named yields the named children of n, skipping comments.
func named(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			ch := n.NamedChild(i)
			if ch == nil || ch.Type() == "comment" {
				continue
			}

			if !yield(ch) {
				return
			}
		}
	}
}

// first returns the first named child of n that is not a comment.
func first(n *sitter.Node) *sitter.Node {
	for ch := range named(n) {
		return ch
	}

	return nil
}

// hasToken reports whether n has an anonymous child of the given type.
func hasToken(n *sitter.Node, typ string) bool {
	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); ch != nil && !ch.IsNamed() && ch.Type() == typ {
			return true
		}
	}

	return false
}

func (c converter) block(n *sitter.Node) []Stmt {
	var body []Stmt
	for ch := range named(n) {
		if s := c.stmt(ch); s != nil {
			body = append(body, s)
		}
	}

	return body
}

func (c converter) stmt(n *sitter.Node) Stmt {
	switch n.Type() {
	case "function_definition":
		return c.function(n, nil)

	case "class_definition":
		return c.class(n, nil)

	case "decorated_definition":
		return c.decorated(n)

	case "expression_statement":
		return c.expressionStatement(n)

	case "return_statement":
		r := &Return{Span: c.span(n)}
		if v := first(n); v != nil {
			r.Value = c.expr(v)
		}

		return r

	case "with_statement":
		return c.with(n)

	case "if_statement":
		return c.ifStatement(n)

	case "for_statement", "while_statement", "try_statement", "match_statement":
		return &Compound{
			Span:    c.span(n),
			Keyword: strings.TrimSuffix(n.Type(), "_statement"),
			Body:    c.block(n.ChildByFieldName("body")),
			Orelse:  c.elseBody(n),
		}

	case "import_statement":
		return c.importStatement(n)

	case "import_from_statement", "future_import_statement":
		return c.importFrom(n)

	case "comment", "ERROR":
		return nil

	default:
		return &SimpleStmt{Span: c.span(n), Keyword: strings.TrimSuffix(n.Type(), "_statement")}
	}
}

func (c converter) decorated(n *sitter.Node) Stmt {
	var decorators []Expr
	for ch := range named(n) {
		if ch.Type() != "decorator" {
			continue
		}

		if e := first(ch); e != nil {
			decorators = append(decorators, c.expr(e))
		}
	}

	def := n.ChildByFieldName("definition")
	if def == nil {
		return nil
	}

	switch def.Type() {
	case "function_definition":
		return c.function(def, decorators)

	case "class_definition":
		return c.class(def, decorators)

	default:
		return nil
	}
}

func (c converter) function(n *sitter.Node, decorators []Expr) *FunctionDef {
	return &FunctionDef{
		Span:       c.span(n),
		Name:       c.text(n.ChildByFieldName("name")),
		Async:      hasToken(n, "async"),
		Params:     c.params(n.ChildByFieldName("parameters")),
		Decorators: decorators,
		Body:       c.block(n.ChildByFieldName("body")),
	}
}

// params returns the names of all named parameters, excluding *args and **kwargs.
func (c converter) params(n *sitter.Node) []string {
	var names []string
	for p := range named(n) {
		switch p.Type() {
		case "identifier":
			names = append(names, c.text(p))

		case "typed_parameter":
			if id := first(p); id != nil && id.Type() == "identifier" {
				names = append(names, c.text(id))
			}

		case "default_parameter", "typed_default_parameter":
			if id := p.ChildByFieldName("name"); id != nil && id.Type() == "identifier" {
				names = append(names, c.text(id))
			}
		}
	}

	return names
}

func (c converter) class(n *sitter.Node, decorators []Expr) *ClassDef {
	return &ClassDef{
		Span:       c.span(n),
		Name:       c.text(n.ChildByFieldName("name")),
		Decorators: decorators,
		Body:       c.block(n.ChildByFieldName("body")),
	}
}

func (c converter) expressionStatement(n *sitter.Node) Stmt {
	var exprs []*sitter.Node
	for ch := range named(n) {
		exprs = append(exprs, ch)
	}

	switch len(exprs) {
	case 0:
		return nil

	case 1:
		switch e := exprs[0]; e.Type() {
		case "assignment", "augmented_assignment":
			return c.assignment(n, e)

		default:
			return &ExprStmt{Span: c.span(n), Value: c.expr(e)}
		}

	default:
		t := &Tuple{Span: c.span(n)}
		for _, e := range exprs {
			t.Elts = append(t.Elts, c.expr(e))
		}

		return &ExprStmt{Span: t.Span, Value: t}
	}
}

// assignment flattens chained assignments like `a = b = f()`.
func (c converter) assignment(stmt, n *sitter.Node) *Assign {
	a := &Assign{Span: c.span(stmt)}
	for n != nil {
		if left := n.ChildByFieldName("left"); left != nil {
			a.Targets = append(a.Targets, c.expr(left))
		}

		right := n.ChildByFieldName("right")
		if right == nil {
			break
		}

		if right.Type() == "assignment" || right.Type() == "augmented_assignment" {
			n = right

			continue
		}

		a.Value = c.expr(right)

		break
	}

	return a
}

func (c converter) with(n *sitter.Node) *With {
	w := &With{Span: c.span(n), Body: c.block(n.ChildByFieldName("body"))}
	for clause := range named(n) {
		if clause.Type() != "with_clause" {
			continue
		}

		for item := range named(clause) {
			if item.Type() != "with_item" {
				continue
			}

			value := item.ChildByFieldName("value")
			if value == nil {
				value = first(item)
			}

			if value != nil {
				w.Items = append(w.Items, c.expr(value))
			}
		}
	}

	return w
}

func (c converter) ifStatement(n *sitter.Node) *If {
	s := &If{
		Span: c.span(n),
		Body: c.block(n.ChildByFieldName("consequence")),
	}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		s.Test = c.expr(cond)
	}

	tail := s
	for ch := range named(n) {
		switch ch.Type() {
		case "elif_clause":
			elif := &If{
				Span: c.span(ch),
				Body: c.block(ch.ChildByFieldName("consequence")),
			}
			if cond := ch.ChildByFieldName("condition"); cond != nil {
				elif.Test = c.expr(cond)
			}

			tail.Orelse = []Stmt{elif}
			tail = elif

		case "else_clause":
			tail.Orelse = c.block(ch.ChildByFieldName("body"))
		}
	}

	return s
}

func (c converter) elseBody(n *sitter.Node) []Stmt {
	for ch := range named(n) {
		if ch.Type() == "else_clause" {
			return c.block(ch.ChildByFieldName("body"))
		}
	}

	return nil
}

func (c converter) importStatement(n *sitter.Node) *Import {
	imp := &Import{Span: c.span(n)}
	for ch := range named(n) {
		if name := c.importName(ch); name != "" {
			imp.Names = append(imp.Names, name)
		}
	}

	return imp
}

func (c converter) importFrom(n *sitter.Node) *Import {
	imp := &Import{Span: c.span(n), From: true}

	module := n.ChildByFieldName("module_name")
	switch {
	case n.Type() == "future_import_statement":
		imp.Module = "__future__"

	case module == nil:

	case module.Type() == "relative_import":
		for ch := range named(module) {
			switch ch.Type() {
			case "import_prefix":
				imp.Level = strings.Count(c.text(ch), ".")

			case "dotted_name":
				imp.Module = c.text(ch)
			}
		}

	default:
		imp.Module = c.text(module)
	}

	for ch := range named(n) {
		if module != nil && ch.StartByte() == module.StartByte() {
			continue
		}

		if ch.Type() == "wildcard_import" {
			imp.Names = append(imp.Names, "*")

			continue
		}

		if name := c.importName(ch); name != "" {
			imp.Names = append(imp.Names, name)
		}
	}

	return imp
}

func (c converter) importName(n *sitter.Node) string {
	switch n.Type() {
	case "dotted_name":
		return c.text(n)

	case "aliased_import":
		return c.text(n.ChildByFieldName("name"))

	default:
		return ""
	}
}

func (c converter) exprs(n *sitter.Node) []Expr {
	var elts []Expr
	for ch := range named(n) {
		elts = append(elts, c.expr(ch))
	}

	return elts
}

func (c converter) expr(n *sitter.Node) Expr {
	switch n.Type() {
	case "call":
		return c.call(n)

	case "attribute":
		a := &Attribute{Span: c.span(n), Attr: c.text(n.ChildByFieldName("attribute"))}
		if obj := n.ChildByFieldName("object"); obj != nil {
			a.Value = c.expr(obj)
		}

		return a

	case "identifier":
		return &Name{Span: c.span(n), ID: c.text(n)}

	case "string":
		return c.str(n)

	case "concatenated_string":
		return c.concatenated(n)

	case "integer", "float":
		return &Num{Span: c.span(n), Text: c.text(n)}

	case "true", "false", "none", "ellipsis":
		return &Constant{Span: c.span(n), Text: c.text(n)}

	case "dictionary", "dictionary_comprehension":
		return &Dict{Span: c.span(n)}

	case "list":
		return &List{Span: c.span(n), Elts: c.exprs(n)}

	case "tuple", "expression_list":
		return &Tuple{Span: c.span(n), Elts: c.exprs(n)}

	case "parenthesized_expression", "as_pattern":
		if inner := first(n); inner != nil {
			return c.expr(inner)
		}

	case "list_splat", "dictionary_splat":
		s := &Starred{Span: c.span(n), Double: n.Type() == "dictionary_splat"}
		if v := first(n); v != nil {
			s.Value = c.expr(v)
		}

		return s

	case "subscript":
		s := &Subscript{Span: c.span(n)}
		if v := n.ChildByFieldName("value"); v != nil {
			s.Value = c.expr(v)
		}

		return s

	case "await":
		a := &Await{Span: c.span(n)}
		if v := first(n); v != nil {
			a.Value = c.expr(v)
		}

		return a

	case "yield":
		y := &Yield{Span: c.span(n), From: hasToken(n, "from")}
		if v := first(n); v != nil {
			y.Value = c.expr(v)
		}

		return y

	case "lambda":
		return &Lambda{Span: c.span(n)}
	}

	return &Other{Span: c.span(n), Kind: n.Type()}
}

func (c converter) call(n *sitter.Node) *Call {
	call := &Call{Span: c.span(n)}
	if fn := n.ChildByFieldName("function"); fn != nil {
		call.Func = c.expr(fn)
	}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return call
	}

	if args.Type() == "generator_expression" {
		call.Args = []Expr{&Other{Span: c.span(args), Kind: args.Type()}}

		return call
	}

	for arg := range named(args) {
		switch arg.Type() {
		case "keyword_argument":
			kw := &Keyword{Span: c.span(arg), Arg: c.text(arg.ChildByFieldName("name"))}
			if v := arg.ChildByFieldName("value"); v != nil {
				kw.Value = c.expr(v)
			}

			call.Keywords = append(call.Keywords, kw)

		case "dictionary_splat":
			kw := &Keyword{Span: c.span(arg)}
			if v := first(arg); v != nil {
				kw.Value = c.expr(v)
			}

			call.Keywords = append(call.Keywords, kw)

		default:
			call.Args = append(call.Args, c.expr(arg))
		}
	}

	return call
}

// stringPrefix returns the prefix letters and the quote length of a string literal.
func stringPrefix(raw string) (string, int) {
	i := strings.IndexAny(raw, `"'`)
	if i < 0 {
		return raw, 0
	}

	quote := 1
	if rest := raw[i:]; strings.HasPrefix(rest, `"""`) || strings.HasPrefix(rest, `'''`) {
		quote = 3
	}

	return raw[:i], quote
}

func (c converter) str(n *sitter.Node) Expr {
	span := c.span(n)
	prefix, quote := stringPrefix(c.text(n))

	start := span.Start.Offset + len(prefix) + quote
	end := max(span.Stop-quote, start)

	decode := unescape
	if strings.ContainsAny(prefix, "rR") {
		decode = func(s string) string { return s }
	}

	if !strings.ContainsAny(prefix, "fF") {
		return &Str{Span: span, Value: decode(string(c.src[start:end]))}
	}

	f := &FString{Span: span}
	cursor := start
	for ch := range named(n) {
		if ch.Type() != "interpolation" {
			continue
		}

		if from := int(ch.StartByte()); from > cursor {
			f.Parts = append(f.Parts, &Str{Span: span, Value: decode(string(c.src[cursor:from]))})
		}

		f.Parts = append(f.Parts, &FormattedValue{Span: c.span(ch)})
		cursor = int(ch.EndByte())
	}

	if end > cursor {
		f.Parts = append(f.Parts, &Str{Span: span, Value: decode(string(c.src[cursor:end]))})
	}

	return f
}

// unescape decodes the backslash escapes of a string literal body.
// Unknown escapes are kept verbatim, like Python does.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for {
		i := strings.IndexByte(s, '\\')
		if i < 0 || i == len(s)-1 {
			b.WriteString(s)

			return b.String()
		}

		b.WriteString(s[:i])
		s = s[i:]

		switch s[1] {
		case '\n': // line continuation
			s = s[2:]

			continue

		case '\'', '"':
			b.WriteByte(s[1])
			s = s[2:]

			continue
		}

		r, _, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			b.WriteString(s[:2])
			s = s[2:]

			continue
		}

		b.WriteRune(r)
		s = tail
	}
}

// concatenated joins implicitly concatenated literals; any f-string part makes the result an f-string.
func (c converter) concatenated(n *sitter.Node) Expr {
	var (
		parts      []Expr
		value      strings.Builder
		hasFString bool
	)

	for ch := range named(n) {
		switch s := c.expr(ch).(type) {
		case *Str:
			parts = append(parts, s)
			value.WriteString(s.Value)

		case *FString:
			parts = append(parts, s.Parts...)
			hasFString = true
		}
	}

	span := c.span(n)
	if hasFString {
		return &FString{Span: span, Parts: parts}
	}

	return &Str{Span: span, Value: value.String()}
}

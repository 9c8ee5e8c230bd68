// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package pie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/tactic"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/consensys/go-pie/pkg/util/source/sexp"
	"github.com/pkg/errors"
)

// ===================================================================
// Public
// ===================================================================

// ParseSourceFile parses the contents of a single Pie file into a sequence of
// top-level declarations.
func ParseSourceFile(srcfile *source.File) ([]Declaration, []source.SyntaxError) {
	terms, srcmap, err := sexp.ParseAll(srcfile)
	// Check file parsed ok
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	var (
		p      = NewParser(srcfile, srcmap)
		decls  []Declaration
		errors []source.SyntaxError
	)
	//
	for _, term := range terms {
		decl, errs := p.ParseDeclaration(term)
		errors = append(errors, errs...)
		//
		if len(errs) == 0 {
			decls = append(decls, decl)
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return decls, nil
}

// ParseExpression parses a file containing exactly one expression.
func ParseExpression(srcfile *source.File) (ast.Source, []source.SyntaxError) {
	term, srcmap, err := sexp.Parse(srcfile)
	// Check file parsed ok
	if err != nil {
		return nil, []source.SyntaxError{*err}
	} else if term == nil {
		return nil, []source.SyntaxError{*srcfile.SyntaxError(source.NewSpan(0, 0), "expected expression")}
	}
	//
	return NewParser(srcfile, srcmap).ParseExpression(term)
}

// ParseTactic parses a file containing exactly one tactic.
func ParseTactic(srcfile *source.File) (tactic.Tactic, []source.SyntaxError) {
	term, srcmap, err := sexp.Parse(srcfile)
	// Check file parsed ok
	if err != nil {
		return nil, []source.SyntaxError{*err}
	} else if term == nil {
		return nil, []source.SyntaxError{*srcfile.SyntaxError(source.NewSpan(0, 0), "expected tactic")}
	}
	//
	return NewParser(srcfile, srcmap).ParseTactic(term)
}

// Parser translates S-Expressions into Pie declarations, expressions and
// tactics.  The parser only packages up the surface syntax into its
// corresponding AST form, and leaves everything else (e.g. resolving names,
// or distinguishing constructors from functions) to the checker.
type Parser struct {
	translator *sexp.Translator[ast.Source]
}

// NewParser constructs a new parser using a given mapping from S-Expressions to
// spans in the underlying source file.
func NewParser(srcfile *source.File, srcmap *source.Map[sexp.SExp]) *Parser {
	t := sexp.NewTranslator[ast.Source](srcfile, srcmap)
	p := &Parser{t}
	// Symbols
	t.AddSymbolRule(numeralParserRule(p))
	t.AddSymbolRule(quoteParserRule(p))
	t.AddSymbolRule(constantParserRule(p))
	t.AddSymbolRule(varParserRule(p))
	// Binding forms
	t.AddListRule("λ", lambdaParserRule(p))
	t.AddListRule("lambda", lambdaParserRule(p))
	t.AddListRule("Π", telescopeParserRule(p, "Π", true))
	t.AddListRule("Pi", telescopeParserRule(p, "Π", true))
	t.AddListRule("Σ", telescopeParserRule(p, "Σ", false))
	t.AddListRule("Sigma", telescopeParserRule(p, "Σ", false))
	// Everything else
	for name, rule := range recursiveRules(p) {
		t.AddRecursiveListRule(name, rule)
	}
	//
	t.AddDefaultListRule(appParserRule(p))
	//
	return p
}

// ParseExpression translates an S-Expression into a source expression.
func (p *Parser) ParseExpression(s sexp.SExp) (ast.Source, []source.SyntaxError) {
	return p.translator.Translate(s)
}

// ParseDeclaration translates an S-Expression into a top-level declaration.
// Anything which is not recognised as a declaration form is an expression to
// be evaluated.
func (p *Parser) ParseDeclaration(s sexp.SExp) (Declaration, []source.SyntaxError) {
	l := s.AsList()
	//
	switch {
	case l == nil:
	case l.MatchSymbols(1, "claim"):
		return p.parseClaim(l)
	case l.MatchSymbols(1, "define"):
		return p.parseDefine(l)
	case l.MatchSymbols(1, "check-same"):
		return p.parseCheckSame(l)
	case l.MatchSymbols(1, "data"):
		return p.parseData(l)
	case l.MatchSymbols(1, "define-tactically"):
		return p.parseDefineTactically(l)
	}
	//
	expr, errs := p.translator.Translate(s)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &Expression{Where: expr.Loc(), Expr: expr}, nil
}

// ParseTactic translates an S-Expression into a tactic.
func (p *Parser) ParseTactic(s sexp.SExp) (tactic.Tactic, []source.SyntaxError) {
	l := s.AsList()
	//
	if l == nil || l.Len() == 0 || l.Get(0).AsSymbol() == nil {
		return nil, p.translator.SyntaxErrors(s, "malformed tactic")
	}
	//
	var (
		name   = l.Head()
		node   = tactic.Node{Where: p.translator.LocationOf(l)}
		args   = l.Elements[1:]
		errors []source.SyntaxError
	)
	//
	switch name {
	case "intro", "split", "left", "right":
		return p.parseSimpleTactic(l, node, name)
	case "exact", "apply":
		if len(args) != 1 {
			return nil, p.arity(l, "1")
		}
		//
		term, errs := p.translator.Translate(args[0])
		if name == "exact" {
			return &tactic.Exact{Node: node, Term: term}, errs
		}
		//
		return &tactic.Apply{Node: node, Fun: term}, errs
	case "exists":
		if len(args) != 1 && len(args) != 2 {
			return nil, p.arity(l, "1 or 2")
		}
		//
		term, errs := p.translator.Translate(args[0])
		t := &tactic.Exists{Node: node, Value: term}
		//
		if len(args) == 2 {
			b, err := p.parseName(args[1])
			t.Binder = b.Name
			//
			errs = append(errs, err...)
		}
		//
		return t, errs
	case "then":
		t := &tactic.Then{Node: node}
		//
		for _, arg := range args {
			ith, errs := p.ParseTactic(arg)
			errors = append(errors, errs...)
			t.Tactics = append(t.Tactics, ith)
		}
		//
		return t, errors
	}
	//
	if strings.HasPrefix(name, "elim-") {
		return p.parseEliminate(l, node, name)
	}
	//
	return nil, p.translator.SyntaxErrors(l, fmt.Sprintf("unknown tactic %s", name))
}

// ===================================================================
// Declarations
// ===================================================================

func (p *Parser) parseClaim(l *sexp.List) (Declaration, []source.SyntaxError) {
	if l.Len() != 3 {
		return nil, p.arity(l, "2")
	}
	//
	name, errs := p.parseName(l.Get(1))
	datatype, errs2 := p.translator.Translate(l.Get(2))
	//
	if errs = append(errs, errs2...); len(errs) > 0 {
		return nil, errs
	}
	//
	return &Claim{Where: p.translator.LocationOf(l), Name: name, Type: datatype}, nil
}

func (p *Parser) parseDefine(l *sexp.List) (Declaration, []source.SyntaxError) {
	if l.Len() != 3 {
		return nil, p.arity(l, "2")
	}
	//
	name, errs := p.parseName(l.Get(1))
	body, errs2 := p.translator.Translate(l.Get(2))
	//
	if errs = append(errs, errs2...); len(errs) > 0 {
		return nil, errs
	}
	//
	return &Define{Where: p.translator.LocationOf(l), Name: name, Body: body}, nil
}

func (p *Parser) parseCheckSame(l *sexp.List) (Declaration, []source.SyntaxError) {
	if l.Len() != 4 {
		return nil, p.arity(l, "3")
	}
	//
	args, errs := p.translator.TranslateAll(l.Elements[1:])
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &CheckSame{Where: p.translator.LocationOf(l), Type: args[0], Left: args[1], Right: args[2]}, nil
}

// Parse a datatype declaration of the form:
//
//	(data Name ((p P) ...) ((i I) ...) (ctor ((a A) ...) (Name p ... i ...)) ...)
func (p *Parser) parseData(l *sexp.List) (Declaration, []source.SyntaxError) {
	if l.Len() < 4 {
		return nil, p.translator.SyntaxErrors(l, "malformed data declaration")
	}
	//
	var (
		errors []source.SyntaxError
		def    = &ast.TypeDefinition{Where: p.translator.LocationOf(l)}
		errs   []source.SyntaxError
	)
	//
	def.Name, errs = p.parseName(l.Get(1))
	errors = append(errors, errs...)
	def.Parameters, errs = p.parseTypedBinders(l.Get(2))
	errors = append(errors, errs...)
	def.Indices, errs = p.parseTypedBinders(l.Get(3))
	errors = append(errors, errs...)
	//
	for _, s := range l.Elements[4:] {
		ctor, errs := p.parseConstructor(s)
		errors = append(errors, errs...)
		def.Constructors = append(def.Constructors, ctor)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &Data{Def: def}, nil
}

func (p *Parser) parseConstructor(s sexp.SExp) (ast.GeneralConstructor, []source.SyntaxError) {
	var ctor ast.GeneralConstructor
	//
	l := s.AsList()
	if l == nil || l.Len() != 3 {
		return ctor, p.translator.SyntaxErrors(s, "malformed constructor")
	}
	//
	name, errs := p.parseName(l.Get(0))
	args, errs2 := p.parseTypedBinders(l.Get(1))
	result, errs3 := p.translator.Translate(l.Get(2))
	//
	errs = append(append(errs, errs2...), errs3...)
	//
	return ast.GeneralConstructor{Name: name, Arguments: args, Result: result}, errs
}

// Parse a tactical definition of the form (define-tactically x (tactic ...)).
func (p *Parser) parseDefineTactically(l *sexp.List) (Declaration, []source.SyntaxError) {
	if l.Len() != 3 || l.Get(2).AsList() == nil {
		return nil, p.translator.SyntaxErrors(l, "malformed define-tactically")
	}
	//
	var (
		name, errors = p.parseName(l.Get(1))
		tactics      []tactic.Tactic
	)
	//
	for _, s := range l.Get(2).AsList().Elements {
		t, errs := p.ParseTactic(s)
		errors = append(errors, errs...)
		tactics = append(tactics, t)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &DefineTactically{Where: p.translator.LocationOf(l), Name: name, Tactics: tactics}, nil
}

// ===================================================================
// Tactics
// ===================================================================

func (p *Parser) parseSimpleTactic(l *sexp.List, node tactic.Node, name string) (tactic.Tactic,
	[]source.SyntaxError) {
	if name == "intro" && l.Len() <= 2 {
		t := &tactic.Intro{Node: node}
		//
		if l.Len() == 2 {
			b, errs := p.parseName(l.Get(1))
			t.Binder = b.Name
			//
			return t, errs
		}
		//
		return t, nil
	} else if name == "intro" {
		return nil, p.arity(l, "0 or 1")
	} else if l.Len() != 1 {
		return nil, p.arity(l, "0")
	}
	//
	switch name {
	case "split":
		return &tactic.Split{Node: node}, nil
	case "left":
		return &tactic.Left{Node: node}, nil
	default:
		return &tactic.Right{Node: node}, nil
	}
}

func (p *Parser) parseEliminate(l *sexp.List, node tactic.Node, name string) (tactic.Tactic,
	[]source.SyntaxError) {
	if l.Len() != 2 && l.Len() != 3 {
		return nil, p.arity(l, "1 or 2")
	}
	//
	args, errs := p.translator.TranslateAll(l.Elements[1:])
	if len(errs) > 0 {
		return nil, errs
	}
	//
	var target, motive ast.Source = args[0], nil
	if len(args) == 2 {
		motive = args[1]
	}
	//
	switch name {
	case "elim-Nat":
		return &tactic.EliminateNat{Node: node, Target: target, Motive: motive}, nil
	case "elim-List":
		return &tactic.EliminateList{Node: node, Target: target, Motive: motive}, nil
	case "elim-Vec":
		return &tactic.EliminateVec{Node: node, Target: target, Motive: motive}, nil
	case "elim-Equal":
		return &tactic.EliminateEqual{Node: node, Target: target, Motive: motive}, nil
	case "elim-Either":
		return &tactic.EliminateEither{Node: node, Target: target, Motive: motive}, nil
	case "elim-Absurd":
		return &tactic.EliminateAbsurd{Node: node, Target: target, Motive: motive}, nil
	}
	//
	return nil, p.translator.SyntaxErrors(l, fmt.Sprintf("unknown tactic %s", name))
}

// ===================================================================
// Binders
// ===================================================================

func (p *Parser) parseName(s sexp.SExp) (ast.SiteBinder, []source.SyntaxError) {
	symbol := s.AsSymbol()
	//
	if symbol == nil || !isIdentifier(symbol.Value) {
		return ast.SiteBinder{}, p.translator.SyntaxErrors(s, "invalid name")
	}
	//
	return ast.SiteBinder{Where: p.translator.LocationOf(s), Name: symbol.Value}, nil
}

// Parse a list of names, as found in a λ expression.
func (p *Parser) parseNames(s sexp.SExp) ([]ast.SiteBinder, []source.SyntaxError) {
	var (
		binders []ast.SiteBinder
		errors  []source.SyntaxError
	)
	//
	l := s.AsList()
	if l == nil || l.Len() == 0 {
		return nil, p.translator.SyntaxErrors(s, "expected one or more names")
	}
	//
	for _, e := range l.Elements {
		b, errs := p.parseName(e)
		binders = append(binders, b)
		errors = append(errors, errs...)
	}
	//
	return binders, errors
}

// Parse a list of typed binders, such as ((x Nat) (y Atom)).  The list may be
// empty.
func (p *Parser) parseTypedBinders(s sexp.SExp) ([]ast.TypedBinder, []source.SyntaxError) {
	var (
		binders []ast.TypedBinder
		errors  []source.SyntaxError
	)
	//
	l := s.AsList()
	if l == nil {
		return nil, p.translator.SyntaxErrors(s, "expected list of binders")
	}
	//
	for _, e := range l.Elements {
		if b := e.AsList(); b == nil || b.Len() != 2 {
			errors = append(errors, p.translator.SyntaxErrors(e, "malformed binder")...)
		} else {
			name, errs := p.parseName(b.Get(0))
			datatype, errs2 := p.translator.Translate(b.Get(1))
			//
			binders = append(binders, ast.TypedBinder{SiteBinder: name, Type: datatype})
			errors = append(append(errors, errs...), errs2...)
		}
	}
	//
	return binders, errors
}

func (p *Parser) arity(l *sexp.List, expected string) []source.SyntaxError {
	msg := fmt.Sprintf("expected %s arguments, found %d", expected, l.Len()-1)
	return p.translator.SyntaxErrors(l, msg)
}

// ===================================================================
// Translation Rules
// ===================================================================

func lambdaParserRule(p *Parser) sexp.ListRule[ast.Source] {
	return func(l *sexp.List) (ast.Source, []source.SyntaxError) {
		if l.Len() != 3 {
			return nil, p.arity(l, "2")
		}
		//
		binders, errs := p.parseNames(l.Get(1))
		body, errs2 := p.translator.Translate(l.Get(2))
		//
		if errs = append(errs, errs2...); len(errs) > 0 {
			return nil, errs
		}
		//
		return &ast.Lambda{Node: p.node(l), Binders: binders, Body: body}, nil
	}
}

func telescopeParserRule(p *Parser, name string, pi bool) sexp.ListRule[ast.Source] {
	return func(l *sexp.List) (ast.Source, []source.SyntaxError) {
		if l.Len() != 3 {
			return nil, p.arity(l, "2")
		}
		//
		binders, errs := p.parseTypedBinders(l.Get(1))
		body, errs2 := p.translator.Translate(l.Get(2))
		//
		if errs = append(errs, errs2...); len(errs) > 0 {
			return nil, errs
		} else if len(binders) == 0 {
			return nil, p.translator.SyntaxErrors(l, fmt.Sprintf("%s requires at least one binder", name))
		} else if pi {
			return &ast.Pi{Node: p.node(l), Binders: binders, Body: body}, nil
		}
		//
		return &ast.Sigma{Node: p.node(l), Binders: binders, Body: body}, nil
	}
}

func appParserRule(p *Parser) sexp.ListRule[ast.Source] {
	return func(l *sexp.List) (ast.Source, []source.SyntaxError) {
		if l.Len() < 2 {
			return nil, p.translator.SyntaxErrors(l, "application requires at least one argument")
		}
		//
		terms, errs := p.translator.TranslateAll(l.Elements)
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &ast.App{Node: p.node(l), Fun: terms[0], Args: terms[1:]}, nil
	}
}

// Forms whose arguments are all expressions, along with their arities.
func recursiveRules(p *Parser) map[string]sexp.RecursiveRule[ast.Source] {
	rules := make(map[string]sexp.RecursiveRule[ast.Source])
	//
	add := func(name string, arity int, build func(ast.Node, []ast.Source) ast.Source) {
		rules[name] = func(l *sexp.List, args []ast.Source) (ast.Source, error) {
			if len(args) != arity {
				return nil, errors.Errorf("%s expects %d arguments, found %d", name, arity, len(args))
			}
			//
			return build(p.node(l), args), nil
		}
	}
	//
	arrow := func(l *sexp.List, args []ast.Source) (ast.Source, error) {
		if len(args) < 2 {
			return nil, errors.New("→ requires at least two types")
		}
		//
		return &ast.Arrow{Node: p.node(l), Types: args}, nil
	}
	//
	rules["→"] = arrow
	rules["->"] = arrow
	//
	add("the", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.The{Node: n, Type: a[0], Expr: a[1]} })
	// Naturals
	add("add1", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Add1{Node: n, N: a[0]} })
	add("which-Nat", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.WhichNat{Node: n, Target: a[0], Base: a[1], Step: a[2]}
	})
	add("iter-Nat", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IterNat{Node: n, Target: a[0], Base: a[1], Step: a[2]}
	})
	add("rec-Nat", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.RecNat{Node: n, Target: a[0], Base: a[1], Step: a[2]}
	})
	add("ind-Nat", 4, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IndNat{Node: n, Target: a[0], Motive: a[1], Base: a[2], Step: a[3]}
	})
	// Pairs
	add("Pair", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Pair{Node: n, Car: a[0], Cdr: a[1]} })
	add("cons", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Cons{Node: n, Car: a[0], Cdr: a[1]} })
	add("car", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Car{Node: n, Pair: a[0]} })
	add("cdr", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Cdr{Node: n, Pair: a[0]} })
	// Absurdity
	add("ind-Absurd", 2, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IndAbsurd{Node: n, Target: a[0], Motive: a[1]}
	})
	// Lists
	add("List", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.List{Node: n, Entry: a[0]} })
	add("::", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.ListCons{Node: n, Head: a[0], Tail: a[1]} })
	add("rec-List", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.RecList{Node: n, Target: a[0], Base: a[1], Step: a[2]}
	})
	add("ind-List", 4, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IndList{Node: n, Target: a[0], Motive: a[1], Base: a[2], Step: a[3]}
	})
	// Vectors
	add("Vec", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Vec{Node: n, Entry: a[0], Length: a[1]} })
	add("vec::", 2, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.VecCons{Node: n, Head: a[0], Tail: a[1]}
	})
	add("head", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Head{Node: n, Vec: a[0]} })
	add("tail", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Tail{Node: n, Vec: a[0]} })
	add("ind-Vec", 5, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IndVec{Node: n, Length: a[0], Target: a[1], Motive: a[2], Base: a[3], Step: a[4]}
	})
	// Equality
	add("=", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.Equal{Node: n, Type: a[0], From: a[1], To: a[2]}
	})
	add("same", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Same{Node: n, Expr: a[0]} })
	add("replace", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.Replace{Node: n, Target: a[0], Motive: a[1], Base: a[2]}
	})
	add("trans", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Trans{Node: n, Left: a[0], Right: a[1]} })
	add("cong", 2, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Cong{Node: n, Target: a[0], Fun: a[1]} })
	add("symm", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Symm{Node: n, Expr: a[0]} })
	add("ind-=", 3, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IndEqual{Node: n, Target: a[0], Motive: a[1], Base: a[2]}
	})
	// Sums
	add("Either", 2, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.Either{Node: n, Left: a[0], Right: a[1]}
	})
	add("left", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Left{Node: n, Expr: a[0]} })
	add("right", 1, func(n ast.Node, a []ast.Source) ast.Source { return &ast.Right{Node: n, Expr: a[0]} })
	add("ind-Either", 4, func(n ast.Node, a []ast.Source) ast.Source {
		return &ast.IndEither{Node: n, Target: a[0], Motive: a[1], Left: a[2], Right: a[3]}
	})
	//
	return rules
}

func numeralParserRule(p *Parser) sexp.SymbolRule[ast.Source] {
	return func(s *sexp.Symbol) (ast.Source, bool, error) {
		if s.Value[0] < '0' || s.Value[0] > '9' {
			// Not applicable
			return nil, false, nil
		}
		//
		n, err := strconv.ParseUint(s.Value, 10, 64)
		if err != nil {
			return nil, true, errors.Errorf("invalid natural number %s", s.Value)
		}
		//
		return &ast.NatLiteral{Node: p.node(s), Value: n}, true, nil
	}
}

func quoteParserRule(p *Parser) sexp.SymbolRule[ast.Source] {
	return func(s *sexp.Symbol) (ast.Source, bool, error) {
		if !strings.HasPrefix(s.Value, "'") {
			return nil, false, nil
		} else if len(s.Value) == 1 {
			return nil, true, errors.New("empty atom")
		}
		//
		return &ast.Quote{Node: p.node(s), Symbol: s.Value[1:]}, true, nil
	}
}

func constantParserRule(p *Parser) sexp.SymbolRule[ast.Source] {
	return func(s *sexp.Symbol) (ast.Source, bool, error) {
		n := p.node(s)
		//
		switch s.Value {
		case "U":
			return &ast.Universe{Node: n}, true, nil
		case "Nat":
			return &ast.Nat{Node: n}, true, nil
		case "zero":
			return &ast.Zero{Node: n}, true, nil
		case "Atom":
			return &ast.Atom{Node: n}, true, nil
		case "Trivial":
			return &ast.Trivial{Node: n}, true, nil
		case "sole":
			return &ast.Sole{Node: n}, true, nil
		case "Absurd":
			return &ast.Absurd{Node: n}, true, nil
		case "nil":
			return &ast.Nil{Node: n}, true, nil
		case "vecnil":
			return &ast.VecNil{Node: n}, true, nil
		case "TODO":
			return &ast.TODO{Node: n}, true, nil
		}
		//
		return nil, false, nil
	}
}

func varParserRule(p *Parser) sexp.SymbolRule[ast.Source] {
	return func(s *sexp.Symbol) (ast.Source, bool, error) {
		if !isIdentifier(s.Value) {
			return nil, true, errors.Errorf("%s cannot be used as a variable", s.Value)
		}
		//
		return &ast.Var{Node: p.node(s), Name: s.Value}, true, nil
	}
}

func (p *Parser) node(s sexp.SExp) ast.Node {
	return ast.Node{Where: p.translator.LocationOf(s)}
}

// Keywords which cannot be used as names.
var keywords = map[string]bool{
	"U": true, "Nat": true, "zero": true, "Atom": true, "Trivial": true, "sole": true, "Absurd": true,
	"nil": true, "vecnil": true, "TODO": true, "λ": true, "lambda": true, "Π": true, "Pi": true, "Σ": true,
	"Sigma": true, "→": true, "->": true, "the": true, "add1": true, "which-Nat": true, "iter-Nat": true,
	"rec-Nat": true, "ind-Nat": true, "Pair": true, "cons": true, "car": true, "cdr": true, "ind-Absurd": true,
	"List": true, "::": true, "rec-List": true, "ind-List": true, "Vec": true, "vec::": true, "head": true,
	"tail": true, "ind-Vec": true, "=": true, "same": true, "replace": true, "trans": true, "cong": true,
	"symm": true, "ind-=": true, "Either": true, "left": true, "right": true, "ind-Either": true,
}

func isIdentifier(name string) bool {
	if name == "" || keywords[name] || strings.HasPrefix(name, "'") {
		return false
	}
	//
	return name[0] < '0' || name[0] > '9'
}

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
package core

import (
	"strconv"
	"strings"

	"github.com/consensys/go-pie/pkg/util/source/sexp"
)

// String renders a core term in Pie's concrete syntax, on a single line.
func String(term Core) string {
	return ToSExp(term).String(false)
}

// Pretty renders a core term in Pie's concrete syntax, breaking lines to fit
// within (roughly) the given width.
func Pretty(term Core, width uint) string {
	formatter := sexp.NewFormatter(width)
	//
	for _, head := range []string{"λ", "Π", "Σ"} {
		formatter.Add(&sexp.SFormatter{Head: head, Priority: 0})
	}
	//
	for _, head := range []string{"ind-Nat", "ind-List", "ind-Vec", "ind-Either", "ind-=", "rec-Nat", "rec-List",
		"iter-Nat", "which-Nat", "replace"} {
		formatter.Add(&sexp.SFormatter{Head: head, Priority: 1})
	}
	//
	formatter.Add(&sexp.IFormatter{Head: "→", Priority: 2})
	//
	return strings.TrimSuffix(formatter.Format(ToSExp(term)), "\n")
}

// ToSExp converts a core term into an S-Expression which reads back as the
// equivalent source term.  Binding forms are collapsed (e.g. nested lambdas
// print as one), non-dependent Π and Σ print as → and Pair, and closed
// natural numbers print as numerals.
func ToSExp(term Core) sexp.SExp {
	switch t := term.(type) {
	case *Var:
		return sexp.NewSymbol(t.Name)
	case *Quote:
		return sexp.NewSymbol("'" + t.Symbol)
	case *TODO:
		return sexp.NewSymbol("TODO")
	case *The:
		return list(sym("the"), ToSExp(t.Type), ToSExp(t.Expr))
	case *Add1:
		if n, ok := numeral(t); ok {
			return sexp.NewSymbol(strconv.FormatUint(n, 10))
		}
	case *Pi:
		return piToSExp(t)
	case *Sigma:
		return sigmaToSExp(t)
	case *Lambda:
		var names []sexp.SExp
		//
		body := Core(t)
		for l, ok := body.(*Lambda); ok; l, ok = body.(*Lambda) {
			names = append(names, sym(l.Name))
			body = l.Body
		}
		//
		return list(sym("λ"), sexp.NewList(names), ToSExp(body))
	case *App:
		var args []sexp.SExp
		//
		fun := Core(t)
		for a, ok := fun.(*App); ok; a, ok = fun.(*App) {
			args = append([]sexp.SExp{ToSExp(a.Arg)}, args...)
			fun = a.Fun
		}
		//
		return sexp.NewList(append([]sexp.SExp{ToSExp(fun)}, args...))
	case *WhichNat:
		return list(sym("which-Nat"), ToSExp(t.Target), list(sym("the"), ToSExp(t.BaseType), ToSExp(t.Base)),
			ToSExp(t.Step))
	case *IterNat:
		return list(sym("iter-Nat"), ToSExp(t.Target), list(sym("the"), ToSExp(t.BaseType), ToSExp(t.Base)),
			ToSExp(t.Step))
	case *RecNat:
		return list(sym("rec-Nat"), ToSExp(t.Target), list(sym("the"), ToSExp(t.BaseType), ToSExp(t.Base)),
			ToSExp(t.Step))
	case *RecList:
		return list(sym("rec-List"), ToSExp(t.Target), list(sym("the"), ToSExp(t.BaseType), ToSExp(t.Base)),
			ToSExp(t.Step))
	case *Cong:
		return list(sym("cong"), ToSExp(t.Target), ToSExp(t.Fun))
	case *InductiveType:
		return application(t.Def.Name, append(append([]Core{}, t.Parameters...), t.Indices...))
	case *Constructor:
		return application(t.Name(), t.Arguments)
	case *Eliminator:
		args := append([]Core{t.Target, t.Motive}, t.Methods...)
		return application(t.Def.EliminatorName(), args)
	}
	// Generic forms
	children, head := Children(term)
	//
	if head == "" {
		panic("unknown core term")
	} else if len(children) == 0 {
		return sym(head)
	}
	//
	return application(head, children)
}

func piToSExp(t *Pi) sexp.SExp {
	if !Occurs(t.Name, t.Result) {
		types := []sexp.SExp{sym("→"), ToSExp(t.Arg)}
		result := t.Result
		// Flatten arrows
		for p, ok := result.(*Pi); ok && !Occurs(p.Name, p.Result); p, ok = result.(*Pi) {
			types = append(types, ToSExp(p.Arg))
			result = p.Result
		}
		//
		return sexp.NewList(append(types, ToSExp(result)))
	}
	//
	var (
		binders []sexp.SExp
		result  Core = t
	)
	// Collapse dependent Π types
	for p, ok := result.(*Pi); ok && (len(binders) == 0 || Occurs(p.Name, p.Result)); p, ok = result.(*Pi) {
		binders = append(binders, list(sym(p.Name), ToSExp(p.Arg)))
		result = p.Result
	}
	//
	return list(sym("Π"), sexp.NewList(binders), ToSExp(result))
}

func sigmaToSExp(t *Sigma) sexp.SExp {
	if !Occurs(t.Name, t.Cdr) {
		return list(sym("Pair"), ToSExp(t.Car), ToSExp(t.Cdr))
	}
	//
	var (
		binders []sexp.SExp
		result  Core = t
	)
	// Collapse dependent Σ types
	for s, ok := result.(*Sigma); ok && (len(binders) == 0 || Occurs(s.Name, s.Cdr)); s, ok = result.(*Sigma) {
		binders = append(binders, list(sym(s.Name), ToSExp(s.Car)))
		result = s.Cdr
	}
	//
	return list(sym("Σ"), sexp.NewList(binders), ToSExp(result))
}

// Determine whether a given term is a closed natural number and, if so, its
// value.
func numeral(term Core) (uint64, bool) {
	var n uint64
	//
	for {
		switch t := term.(type) {
		case *Zero:
			return n, true
		case *Add1:
			n++
			term = t.N
		default:
			return 0, false
		}
	}
}

func application(head string, args []Core) sexp.SExp {
	if len(args) == 0 {
		return sym(head)
	}
	//
	elements := []sexp.SExp{sym(head)}
	//
	for _, arg := range args {
		elements = append(elements, ToSExp(arg))
	}
	//
	return sexp.NewList(elements)
}

func sym(name string) *sexp.Symbol {
	return sexp.NewSymbol(name)
}

func list(elements ...sexp.SExp) *sexp.List {
	return sexp.NewList(elements)
}

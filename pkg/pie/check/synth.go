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
package check

import (
	"unicode"

	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Synth elaborates a source term whose type can be determined from the term
// itself, returning the elaborated term annotated with its type.
func (c *Checker) Synth(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *source.Stop) {
	t, stop := c.synth(ctx, r, src)
	//
	if stop == nil {
		c.report(src.Loc(), HasType, func() core.Core { return t.Type })
	}
	//
	return t, stop
}

//nolint:gocyclo,maintidx
func (c *Checker) synth(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *source.Stop) {
	switch s := src.(type) {
	case *ast.The:
		t, stop := c.IsType(ctx, r, s.Type)
		if stop != nil {
			return nil, stop
		}
		//
		e, stop := c.Check(ctx, r, s.Expr, evaluate(ctx, t))
		//
		return the(t, e), stop
	case *ast.Var:
		return c.synthVar(ctx, r, s)
	case *ast.Universe:
		// U is its own type
		return the(&core.Universe{}, &core.Universe{}), nil
	case *ast.Nat, *ast.Atom, *ast.Trivial, *ast.Absurd, *ast.Arrow, *ast.Pi, *ast.Sigma, *ast.Pair, *ast.List,
		*ast.Vec, *ast.Equal, *ast.Either:
		t, stop := c.IsType(ctx, r, s)
		return the(&core.Universe{}, t), stop
	// Naturals
	case *ast.Zero:
		return the(&core.Nat{}, &core.Zero{}), nil
	case *ast.NatLiteral:
		var n core.Core = &core.Zero{}
		//
		for i := uint64(0); i < s.Value; i++ {
			n = &core.Add1{N: n}
		}
		//
		return the(&core.Nat{}, n), nil
	case *ast.Add1:
		n, stop := c.Check(ctx, r, s.N, &value.Nat{})
		return the(&core.Nat{}, &core.Add1{N: n}), stop
	case *ast.WhichNat:
		return c.synthNatEliminator(ctx, r, s.Target, s.Base, s.Step, func(bt value.Value) value.Value {
			return arrow(&value.Nat{}, bt)
		}, func(target, bt, base, step core.Core) core.Core {
			return &core.WhichNat{Target: target, BaseType: bt, Base: base, Step: step}
		})
	case *ast.IterNat:
		return c.synthNatEliminator(ctx, r, s.Target, s.Base, s.Step, func(bt value.Value) value.Value {
			return arrow(bt, bt)
		}, func(target, bt, base, step core.Core) core.Core {
			return &core.IterNat{Target: target, BaseType: bt, Base: base, Step: step}
		})
	case *ast.RecNat:
		return c.synthNatEliminator(ctx, r, s.Target, s.Base, s.Step, func(bt value.Value) value.Value {
			return arrow(&value.Nat{}, arrow(bt, bt))
		}, func(target, bt, base, step core.Core) core.Core {
			return &core.RecNat{Target: target, BaseType: bt, Base: base, Step: step}
		})
	case *ast.IndNat:
		return c.synthIndNat(ctx, r, s)
	// Functions
	case *ast.App:
		return c.synthApp(ctx, r, s)
	// Pairs
	case *ast.Car:
		p, sigma, stop := c.synthSigma(ctx, r, s.Pair)
		if stop != nil {
			return nil, stop
		}
		//
		return the(eval.ReadBackType(ctx, sigma.CarType), &core.Car{Pair: p.Expr}), nil
	case *ast.Cdr:
		p, sigma, stop := c.synthSigma(ctx, r, s.Pair)
		if stop != nil {
			return nil, stop
		}
		//
		cdr := sigma.CdrType.Apply(eval.DoCar(evaluate(ctx, p.Expr)))
		//
		return the(eval.ReadBackType(ctx, cdr), &core.Cdr{Pair: p.Expr}), nil
	// Atoms, unit and empty types
	case *ast.Quote:
		if !isAtom(s.Symbol) {
			return nil, source.Stopf(s.Loc(), "Invalid atom '%s: atoms consist of letters and hyphens", s.Symbol)
		}
		//
		return the(&core.Atom{}, &core.Quote{Symbol: s.Symbol}), nil
	case *ast.Sole:
		return the(&core.Trivial{}, &core.Sole{}), nil
	case *ast.IndAbsurd:
		target, stop := c.Check(ctx, r, s.Target, &value.Absurd{})
		if stop != nil {
			return nil, stop
		}
		//
		motive, stop := c.Check(ctx, r, s.Motive, &value.Universe{})
		//
		return the(motive, &core.IndAbsurd{Target: target, Motive: motive}), stop
	// Lists
	case *ast.ListCons:
		head, stop := c.Synth(ctx, r, s.Head)
		if stop != nil {
			return nil, stop
		}
		//
		tail, stop := c.Check(ctx, r, s.Tail, &value.List{Entry: evaluate(ctx, head.Type)})
		//
		return the(&core.List{Entry: head.Type}, &core.ListCons{Head: head.Expr, Tail: tail}), stop
	case *ast.RecList:
		return c.synthRecList(ctx, r, s)
	case *ast.IndList:
		return c.synthIndList(ctx, r, s)
	// Vectors
	case *ast.Head:
		v, vec, stop := c.synthNonEmptyVec(ctx, r, s.Vec)
		if stop != nil {
			return nil, stop
		}
		//
		return the(eval.ReadBackType(ctx, vec.Entry), &core.Head{Vec: v.Expr}), nil
	case *ast.Tail:
		v, vec, stop := c.synthNonEmptyVec(ctx, r, s.Vec)
		if stop != nil {
			return nil, stop
		}
		//
		smaller := value.Now(vec.Length).(*value.Add1).Smaller
		tail := &value.Vec{Entry: vec.Entry, Length: smaller}
		//
		return the(eval.ReadBackType(ctx, tail), &core.Tail{Vec: v.Expr}), nil
	case *ast.IndVec:
		return c.synthIndVec(ctx, r, s)
	// Equality
	case *ast.Replace:
		return c.synthReplace(ctx, r, s)
	case *ast.Trans:
		return c.synthTrans(ctx, r, s)
	case *ast.Cong:
		return c.synthCong(ctx, r, s)
	case *ast.Symm:
		p, eq, stop := c.synthEqual(ctx, r, s.Expr)
		if stop != nil {
			return nil, stop
		}
		//
		symm := &value.Equal{Type: eq.Type, From: eq.To, To: eq.From}
		//
		return the(eval.ReadBackType(ctx, symm), &core.Symm{Expr: p.Expr}), nil
	case *ast.IndEqual:
		return c.synthIndEqual(ctx, r, s)
	// Sums
	case *ast.IndEither:
		return c.synthIndEither(ctx, r, s)
	default:
		return nil, source.Stopf(src.Loc(), "Can't determine the type of %s; try adding a type annotation with the",
			describe(src))
	}
}

func (c *Checker) synthVar(ctx env.Context, r env.Renaming, s *ast.Var) (*core.The, *source.Stop) {
	name := r.Rename(s.Name)
	//
	if t, ok := ctx.VarType(name); ok {
		return the(eval.ReadBackType(ctx, t), &core.Var{Name: name}), nil
	}
	//
	b, _ := ctx.Lookup(name)
	//
	switch b := b.(type) {
	case *env.InductiveDatatype:
		return c.synthDatatype(ctx, r, s.Loc(), b.Def, nil)
	case *env.ConstructorType:
		return c.synthConstructor(ctx, r, s.Loc(), b.Def, b.Index, nil)
	case *env.Eliminator:
		return nil, source.Stopf(s.Loc(), "%s must be applied to a target, a motive and methods", name)
	case *env.Claim:
		return nil, source.Stopf(s.Loc(), "%s is claimed but not yet defined", name)
	default:
		return nil, source.Stopf(s.Loc(), "Unknown variable %s", name)
	}
}

func (c *Checker) synthApp(ctx env.Context, r env.Renaming, s *ast.App) (*core.The, *source.Stop) {
	if b := c.resolveHead(ctx, r, s.Fun); b != nil {
		switch b := b.(type) {
		case *env.InductiveDatatype:
			return c.synthDatatype(ctx, r, s.Loc(), b.Def, s.Args)
		case *env.ConstructorType:
			return c.synthConstructor(ctx, r, s.Loc(), b.Def, b.Index, s.Args)
		case *env.Eliminator:
			return c.synthEliminator(ctx, r, s, b.Def)
		}
	}
	//
	f, stop := c.Synth(ctx, r, s.Fun)
	if stop != nil {
		return nil, stop
	}
	//
	var (
		fun      = f.Expr
		datatype = evaluate(ctx, f.Type)
	)
	//
	for _, arg := range s.Args {
		pi, ok := value.Now(datatype).(*value.Pi)
		if !ok {
			return nil, source.Stopf(arg.Loc(), "Not a function type: %s", show(ctx, datatype))
		}
		//
		a, stop := c.Check(ctx, r, arg, pi.ArgType)
		if stop != nil {
			return nil, stop
		}
		//
		fun = &core.App{Fun: fun, Arg: a}
		datatype = pi.Result.Apply(evaluate(ctx, a))
	}
	//
	return the(eval.ReadBackType(ctx, datatype), fun), nil
}

// Determine whether the head of an application refers to a datatype, one of its
// constructors or its eliminator, returning the corresponding binder (or nil).
func (c *Checker) resolveHead(ctx env.Context, r env.Renaming, fun ast.Source) env.Binder {
	v, ok := fun.(*ast.Var)
	if !ok {
		return nil
	}
	//
	b, _ := ctx.Lookup(r.Rename(v.Name))
	//
	switch b.(type) {
	case *env.InductiveDatatype, *env.ConstructorType, *env.Eliminator:
		return b
	default:
		return nil
	}
}

type natStep func(baseType value.Value) value.Value

type natEliminator func(target, baseType, base, step core.Core) core.Core

// which-Nat, iter-Nat and rec-Nat differ only in the type of their step.
func (c *Checker) synthNatEliminator(ctx env.Context, r env.Renaming, target, base, step ast.Source,
	stepType natStep, build natEliminator) (*core.The, *source.Stop) {
	t, stop := c.Check(ctx, r, target, &value.Nat{})
	if stop != nil {
		return nil, stop
	}
	//
	b, stop := c.Synth(ctx, r, base)
	if stop != nil {
		return nil, stop
	}
	//
	s, stop := c.Check(ctx, r, step, stepType(evaluate(ctx, b.Type)))
	//
	return the(b.Type, build(t, b.Type, b.Expr, s)), stop
}

func (c *Checker) synthIndNat(ctx env.Context, r env.Renaming, s *ast.IndNat) (*core.The, *source.Stop) {
	target, stop := c.Check(ctx, r, s.Target, &value.Nat{})
	if stop != nil {
		return nil, stop
	}
	//
	motive, stop := c.Check(ctx, r, s.Motive, arrow(&value.Nat{}, &value.Universe{}))
	if stop != nil {
		return nil, stop
	}
	//
	mv := evaluate(ctx, motive)
	//
	base, stop := c.Check(ctx, r, s.Base, eval.DoApp(mv, &value.Zero{}))
	if stop != nil {
		return nil, stop
	}
	//
	step, stop := c.Check(ctx, r, s.Step, eval.IndNatStepType(mv))
	if stop != nil {
		return nil, stop
	}
	//
	datatype := eval.DoApp(mv, evaluate(ctx, target))
	term := &core.IndNat{Target: target, Motive: motive, Base: base, Step: step}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

func (c *Checker) synthRecList(ctx env.Context, r env.Renaming, s *ast.RecList) (*core.The, *source.Stop) {
	target, list, stop := c.synthList(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	base, stop := c.Synth(ctx, r, s.Base)
	if stop != nil {
		return nil, stop
	}
	//
	bt := evaluate(ctx, base.Type)
	stepType := arrow(list.Entry, arrow(list, arrow(bt, bt)))
	//
	step, stop := c.Check(ctx, r, s.Step, stepType)
	term := &core.RecList{Target: target.Expr, BaseType: base.Type, Base: base.Expr, Step: step}
	//
	return the(base.Type, term), stop
}

func (c *Checker) synthIndList(ctx env.Context, r env.Renaming, s *ast.IndList) (*core.The, *source.Stop) {
	target, list, stop := c.synthList(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	motive, stop := c.Check(ctx, r, s.Motive, arrow(list, &value.Universe{}))
	if stop != nil {
		return nil, stop
	}
	//
	mv := evaluate(ctx, motive)
	//
	base, stop := c.Check(ctx, r, s.Base, eval.DoApp(mv, &value.Nil{}))
	if stop != nil {
		return nil, stop
	}
	//
	step, stop := c.Check(ctx, r, s.Step, eval.IndListStepType(list.Entry, mv))
	if stop != nil {
		return nil, stop
	}
	//
	datatype := eval.DoApp(mv, evaluate(ctx, target.Expr))
	term := &core.IndList{Target: target.Expr, Motive: motive, Base: base, Step: step}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

func (c *Checker) synthIndVec(ctx env.Context, r env.Renaming, s *ast.IndVec) (*core.The, *source.Stop) {
	length, stop := c.Check(ctx, r, s.Length, &value.Nat{})
	if stop != nil {
		return nil, stop
	}
	//
	target, vec, stop := c.synthVec(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	lv := evaluate(ctx, length)
	//
	if stop := eval.Convert(ctx, s.Target.Loc(), &value.Nat{}, lv, vec.Length); stop != nil {
		return nil, stop
	}
	//
	motive, stop := c.Check(ctx, r, s.Motive, eval.IndVecMotiveType(vec.Entry))
	if stop != nil {
		return nil, stop
	}
	//
	mv := evaluate(ctx, motive)
	//
	base, stop := c.Check(ctx, r, s.Base, eval.DoApp(eval.DoApp(mv, &value.Zero{}), &value.VecNil{}))
	if stop != nil {
		return nil, stop
	}
	//
	step, stop := c.Check(ctx, r, s.Step, eval.IndVecStepType(vec.Entry, mv))
	if stop != nil {
		return nil, stop
	}
	//
	datatype := eval.DoApp(eval.DoApp(mv, lv), evaluate(ctx, target.Expr))
	term := &core.IndVec{Length: length, Target: target.Expr, Motive: motive, Base: base, Step: step}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

func (c *Checker) synthReplace(ctx env.Context, r env.Renaming, s *ast.Replace) (*core.The, *source.Stop) {
	target, eq, stop := c.synthEqual(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	motive, stop := c.Check(ctx, r, s.Motive, arrow(eq.Type, &value.Universe{}))
	if stop != nil {
		return nil, stop
	}
	//
	mv := evaluate(ctx, motive)
	//
	base, stop := c.Check(ctx, r, s.Base, eval.DoApp(mv, eq.From))
	if stop != nil {
		return nil, stop
	}
	//
	term := &core.Replace{Target: target.Expr, Motive: motive, Base: base}
	//
	return the(eval.ReadBackType(ctx, eval.DoApp(mv, eq.To)), term), nil
}

func (c *Checker) synthTrans(ctx env.Context, r env.Renaming, s *ast.Trans) (*core.The, *source.Stop) {
	left, leq, stop := c.synthEqual(ctx, r, s.Left)
	if stop != nil {
		return nil, stop
	}
	//
	right, req, stop := c.synthEqual(ctx, r, s.Right)
	if stop != nil {
		return nil, stop
	}
	//
	if stop := eval.SameType(ctx, s.Right.Loc(), leq.Type, req.Type); stop != nil {
		return nil, stop
	} else if stop := eval.Convert(ctx, s.Right.Loc(), leq.Type, leq.To, req.From); stop != nil {
		return nil, stop
	}
	//
	datatype := &value.Equal{Type: leq.Type, From: leq.From, To: req.To}
	//
	return the(eval.ReadBackType(ctx, datatype), &core.Trans{Left: left.Expr, Right: right.Expr}), nil
}

func (c *Checker) synthCong(ctx env.Context, r env.Renaming, s *ast.Cong) (*core.The, *source.Stop) {
	target, eq, stop := c.synthEqual(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	f, stop := c.Synth(ctx, r, s.Fun)
	if stop != nil {
		return nil, stop
	}
	//
	pi, ok := value.Now(evaluate(ctx, f.Type)).(*value.Pi)
	if !ok {
		return nil, source.Stopf(s.Fun.Loc(), "Not a function type: %s", core.String(f.Type))
	} else if stop := eval.SameType(ctx, s.Fun.Loc(), pi.ArgType, eq.Type); stop != nil {
		return nil, stop
	}
	// The function must not be dependent
	x := env.Fresh(ctx, pi.ArgName)
	result := eval.ReadBackType(ctx.BindFree(x, pi.ArgType), pi.Result.Apply(value.Variable(x, pi.ArgType)))
	//
	if core.Occurs(x, result) {
		return nil, source.Stopf(s.Fun.Loc(), "cong requires a non-dependent function, but given %s",
			core.String(f.Type))
	}
	//
	var (
		fv       = evaluate(ctx, f.Expr)
		rv       = evaluate(ctx, result)
		datatype = &value.Equal{Type: rv, From: eval.DoApp(fv, eq.From), To: eval.DoApp(fv, eq.To)}
		term     = &core.Cong{Target: target.Expr, Result: result, Fun: f.Expr}
	)
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

func (c *Checker) synthIndEqual(ctx env.Context, r env.Renaming, s *ast.IndEqual) (*core.The, *source.Stop) {
	target, eq, stop := c.synthEqual(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	motive, stop := c.Check(ctx, r, s.Motive, eval.IndEqualMotiveType(eq.Type, eq.From))
	if stop != nil {
		return nil, stop
	}
	//
	mv := evaluate(ctx, motive)
	//
	base, stop := c.Check(ctx, r, s.Base, eval.DoApp(eval.DoApp(mv, eq.From), &value.Same{Value: eq.From}))
	if stop != nil {
		return nil, stop
	}
	//
	datatype := eval.DoApp(eval.DoApp(mv, eq.To), evaluate(ctx, target.Expr))
	term := &core.IndEqual{Target: target.Expr, Motive: motive, Base: base}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

func (c *Checker) synthIndEither(ctx env.Context, r env.Renaming, s *ast.IndEither) (*core.The, *source.Stop) {
	target, stop := c.Synth(ctx, r, s.Target)
	if stop != nil {
		return nil, stop
	}
	//
	either, ok := value.Now(evaluate(ctx, target.Type)).(*value.Either)
	if !ok {
		return nil, source.Stopf(s.Target.Loc(), "Expected an Either, but given %s", core.String(target.Type))
	}
	//
	motive, stop := c.Check(ctx, r, s.Motive, arrow(either, &value.Universe{}))
	if stop != nil {
		return nil, stop
	}
	//
	mv := evaluate(ctx, motive)
	//
	left, stop := c.Check(ctx, r, s.Left, eval.IndEitherMethodType(either.Left, mv, true))
	if stop != nil {
		return nil, stop
	}
	//
	right, stop := c.Check(ctx, r, s.Right, eval.IndEitherMethodType(either.Right, mv, false))
	if stop != nil {
		return nil, stop
	}
	//
	datatype := eval.DoApp(mv, evaluate(ctx, target.Expr))
	term := &core.IndEither{Target: target.Expr, Motive: motive, Left: left, Right: right}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

// ============================================================================
// Eliminee shapes
// ============================================================================

func (c *Checker) synthSigma(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *value.Sigma,
	*source.Stop) {
	t, stop := c.Synth(ctx, r, src)
	if stop != nil {
		return nil, nil, stop
	}
	//
	if sigma, ok := value.Now(evaluate(ctx, t.Type)).(*value.Sigma); ok {
		return t, sigma, nil
	}
	//
	return nil, nil, source.Stopf(src.Loc(), "Expected a Σ type, but given %s", core.String(t.Type))
}

func (c *Checker) synthList(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *value.List,
	*source.Stop) {
	t, stop := c.Synth(ctx, r, src)
	if stop != nil {
		return nil, nil, stop
	}
	//
	if list, ok := value.Now(evaluate(ctx, t.Type)).(*value.List); ok {
		return t, list, nil
	}
	//
	return nil, nil, source.Stopf(src.Loc(), "Expected a List, but given %s", core.String(t.Type))
}

func (c *Checker) synthVec(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *value.Vec,
	*source.Stop) {
	t, stop := c.Synth(ctx, r, src)
	if stop != nil {
		return nil, nil, stop
	}
	//
	if vec, ok := value.Now(evaluate(ctx, t.Type)).(*value.Vec); ok {
		return t, vec, nil
	}
	//
	return nil, nil, source.Stopf(src.Loc(), "Expected a Vec, but given %s", core.String(t.Type))
}

func (c *Checker) synthNonEmptyVec(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *value.Vec,
	*source.Stop) {
	t, vec, stop := c.synthVec(ctx, r, src)
	if stop != nil {
		return nil, nil, stop
	}
	//
	if _, ok := value.Now(vec.Length).(*value.Add1); !ok {
		return nil, nil, source.Stopf(src.Loc(), "Expected a Vec with add1 at the top of the length, but given %s",
			core.String(t.Type))
	}
	//
	return t, vec, nil
}

func (c *Checker) synthEqual(ctx env.Context, r env.Renaming, src ast.Source) (*core.The, *value.Equal,
	*source.Stop) {
	t, stop := c.Synth(ctx, r, src)
	if stop != nil {
		return nil, nil, stop
	}
	//
	if eq, ok := value.Now(evaluate(ctx, t.Type)).(*value.Equal); ok {
		return t, eq, nil
	}
	//
	return nil, nil, source.Stopf(src.Loc(), "Expected an = type, but given %s", core.String(t.Type))
}

// ============================================================================
// Helpers
// ============================================================================

func the(datatype core.Core, expr core.Core) *core.The {
	return &core.The{Type: datatype, Expr: expr}
}

// Atoms consist of one or more letters and hyphens.
func isAtom(symbol string) bool {
	for _, c := range symbol {
		if c != '-' && !unicode.IsLetter(c) {
			return false
		}
	}
	//
	return symbol != ""
}

// Describe a source term which cannot be synthesised.
func describe(src ast.Source) string {
	switch src.(type) {
	case *ast.Lambda:
		return "a λ-expression"
	case *ast.Cons:
		return "cons"
	case *ast.Nil:
		return "nil"
	case *ast.VecNil:
		return "vecnil"
	case *ast.VecCons:
		return "vec::"
	case *ast.Same:
		return "same"
	case *ast.Left:
		return "left"
	case *ast.Right:
		return "right"
	case *ast.TODO:
		return "TODO"
	default:
		return "this expression"
	}
}

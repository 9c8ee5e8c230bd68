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
	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Check elaborates a source term against an expected type.  Forms whose type
// cannot be synthesised (such as λ-expressions and cons) are only accepted
// here.  For all other forms, the type is synthesised and then compared with
// the expected type.
//
//nolint:gocyclo
func (c *Checker) Check(ctx env.Context, r env.Renaming, src ast.Source, expected value.Value) (core.Core,
	*source.Stop) {
	switch s := src.(type) {
	case *ast.Lambda:
		return c.checkLambda(ctx, r, s.Binders, s.Body, expected)
	case *ast.Cons:
		sigma, ok := value.Now(expected).(*value.Sigma)
		if !ok {
			return nil, c.mismatch(ctx, s, "a Σ type", expected)
		}
		//
		car, stop := c.Check(ctx, r, s.Car, sigma.CarType)
		if stop != nil {
			return nil, stop
		}
		//
		cdr, stop := c.Check(ctx, r, s.Cdr, sigma.CdrType.Apply(evaluate(ctx, car)))
		//
		return &core.Cons{Car: car, Cdr: cdr}, stop
	case *ast.Nil:
		if _, ok := value.Now(expected).(*value.List); !ok {
			return nil, c.mismatch(ctx, s, "a List type", expected)
		}
		//
		return &core.Nil{}, nil
	case *ast.VecNil:
		vec, ok := value.Now(expected).(*value.Vec)
		if !ok {
			return nil, c.mismatch(ctx, s, "a Vec type", expected)
		} else if stop := eval.Convert(ctx, s.Loc(), &value.Nat{}, vec.Length, &value.Zero{}); stop != nil {
			return nil, source.Stopf(s.Loc(), "vecnil requires a Vec of length zero, but was used as a %s",
				show(ctx, expected))
		}
		//
		return &core.VecNil{}, nil
	case *ast.VecCons:
		return c.checkVecCons(ctx, r, s, expected)
	case *ast.Same:
		eq, ok := value.Now(expected).(*value.Equal)
		if !ok {
			return nil, c.mismatch(ctx, s, "an = type", expected)
		}
		//
		e, stop := c.Check(ctx, r, s.Expr, eq.Type)
		if stop != nil {
			return nil, stop
		}
		//
		ev := evaluate(ctx, e)
		//
		if stop := eval.Convert(ctx, s.Loc(), eq.Type, eq.From, ev); stop != nil {
			return nil, stop
		} else if stop := eval.Convert(ctx, s.Loc(), eq.Type, ev, eq.To); stop != nil {
			return nil, stop
		}
		//
		return &core.Same{Expr: e}, nil
	case *ast.Left:
		either, ok := value.Now(expected).(*value.Either)
		if !ok {
			return nil, c.mismatch(ctx, s, "an Either type", expected)
		}
		//
		e, stop := c.Check(ctx, r, s.Expr, either.Left)
		//
		return &core.Left{Expr: e}, stop
	case *ast.Right:
		either, ok := value.Now(expected).(*value.Either)
		if !ok {
			return nil, c.mismatch(ctx, s, "an Either type", expected)
		}
		//
		e, stop := c.Check(ctx, r, s.Expr, either.Right)
		//
		return &core.Right{Expr: e}, stop
	case *ast.TODO:
		return c.checkTODO(ctx, r, s.Loc(), expected), nil
	case *ast.Var:
		if b, ok := c.resolveHead(ctx, r, s).(*env.ConstructorType); ok {
			return c.checkConstructor(ctx, r, s.Loc(), b.Def, b.Index, nil, expected)
		}
	case *ast.App:
		if b, ok := c.resolveHead(ctx, r, s.Fun).(*env.ConstructorType); ok {
			return c.checkConstructor(ctx, r, s.Loc(), b.Def, b.Index, s.Args, expected)
		}
	}
	// Switch direction
	t, stop := c.Synth(ctx, r, src)
	if stop != nil {
		return nil, stop
	} else if stop := eval.SameType(ctx, src.Loc(), expected, evaluate(ctx, t.Type)); stop != nil {
		return nil, stop
	}
	//
	return t.Expr, nil
}

func (c *Checker) checkLambda(ctx env.Context, r env.Renaming, binders []ast.SiteBinder, body ast.Source,
	expected value.Value) (core.Core, *source.Stop) {
	if len(binders) == 0 {
		return c.Check(ctx, r, body, expected)
	}
	//
	pi, ok := value.Now(expected).(*value.Pi)
	if !ok {
		return nil, source.Stopf(binders[0].Where, "λ requires a Π type, but was used as a %s", show(ctx, expected))
	}
	//
	var (
		b     = binders[0]
		scope = &ast.Lambda{Binders: binders[1:], Body: body}
		x     = env.FreshBinder(ctx, scope, b.Name)
	)
	//
	c.reportBinding(ctx, b.Where, pi.ArgType)
	//
	result := pi.Result.Apply(value.Variable(x, pi.ArgType))
	e, stop := c.checkLambda(ctx.BindFree(x, pi.ArgType), r.Extend(b.Name, x), binders[1:], body, result)
	//
	return &core.Lambda{Name: x, Body: e}, stop
}

func (c *Checker) checkVecCons(ctx env.Context, r env.Renaming, s *ast.VecCons, expected value.Value) (core.Core,
	*source.Stop) {
	vec, ok := value.Now(expected).(*value.Vec)
	if !ok {
		return nil, c.mismatch(ctx, s, "a Vec type", expected)
	}
	//
	length, ok := value.Now(vec.Length).(*value.Add1)
	if !ok {
		return nil, source.Stopf(s.Loc(), "vec:: requires a Vec with add1 at the top of the length, but was used as a %s",
			show(ctx, expected))
	}
	//
	head, stop := c.Check(ctx, r, s.Head, vec.Entry)
	if stop != nil {
		return nil, stop
	}
	//
	tail, stop := c.Check(ctx, r, s.Tail, &value.Vec{Entry: vec.Entry, Length: length.Smaller})
	//
	return &core.VecCons{Head: head, Tail: tail}, stop
}

// TODO holes are accepted at any type, and are reported to any info hook and
// recorded with any hole service.
func (c *Checker) checkTODO(ctx env.Context, r env.Renaming, where source.Location, expected value.Value) core.Core {
	datatype := eval.ReadBackType(ctx, expected)
	//
	if c.info != nil && where.ForInfo {
		c.info(where, Info{Kind: Hole, Term: datatype, Context: eval.ReadBackContext(ctx)})
	}
	//
	if c.holes != nil {
		c.holes.Record(ctx, r, where, datatype)
	}
	//
	return &core.TODO{Where: where, Type: datatype}
}

func (c *Checker) mismatch(ctx env.Context, src ast.Source, required string, expected value.Value) *source.Stop {
	return source.Stopf(src.Loc(), "%s requires %s, but was used as a %s", describe(src), required,
		show(ctx, expected))
}

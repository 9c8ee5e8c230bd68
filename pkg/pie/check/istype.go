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
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// IsType checks that a source term describes a type, and elaborates it.
func (c *Checker) IsType(ctx env.Context, r env.Renaming, src ast.Source) (core.Core, *source.Stop) {
	t, stop := c.isType(ctx, r, src)
	//
	if stop == nil {
		c.report(src.Loc(), IsType, func() core.Core { return t })
	}
	//
	return t, stop
}

func (c *Checker) isType(ctx env.Context, r env.Renaming, src ast.Source) (core.Core, *source.Stop) {
	switch s := src.(type) {
	case *ast.Universe:
		return &core.Universe{}, nil
	case *ast.Nat:
		return &core.Nat{}, nil
	case *ast.Atom:
		return &core.Atom{}, nil
	case *ast.Trivial:
		return &core.Trivial{}, nil
	case *ast.Absurd:
		return &core.Absurd{}, nil
	case *ast.Arrow:
		return c.arrowType(ctx, r, s.Types)
	case *ast.Pi:
		return c.piType(ctx, r, s.Binders, s.Body)
	case *ast.Sigma:
		return c.sigmaType(ctx, r, s.Binders, s.Body)
	case *ast.Pair:
		car, stop := c.IsType(ctx, r, s.Car)
		if stop != nil {
			return nil, stop
		}
		//
		x := env.FreshBinder(ctx, s.Cdr, "x")
		cdr, stop := c.IsType(ctx.BindFree(x, evaluate(ctx, car)), r, s.Cdr)
		//
		return &core.Sigma{Name: x, Car: car, Cdr: cdr}, stop
	case *ast.List:
		entry, stop := c.IsType(ctx, r, s.Entry)
		return &core.List{Entry: entry}, stop
	case *ast.Vec:
		entry, stop := c.IsType(ctx, r, s.Entry)
		if stop != nil {
			return nil, stop
		}
		//
		length, stop := c.Check(ctx, r, s.Length, &value.Nat{})
		//
		return &core.Vec{Entry: entry, Length: length}, stop
	case *ast.Equal:
		datatype, stop := c.IsType(ctx, r, s.Type)
		if stop != nil {
			return nil, stop
		}
		//
		tv := evaluate(ctx, datatype)
		//
		from, stop := c.Check(ctx, r, s.From, tv)
		if stop != nil {
			return nil, stop
		}
		//
		to, stop := c.Check(ctx, r, s.To, tv)
		//
		return &core.Equal{Type: datatype, From: from, To: to}, stop
	case *ast.Either:
		left, stop := c.IsType(ctx, r, s.Left)
		if stop != nil {
			return nil, stop
		}
		//
		right, stop := c.IsType(ctx, r, s.Right)
		//
		return &core.Either{Left: left, Right: right}, stop
	default:
		return c.Check(ctx, r, src, &value.Universe{})
	}
}

// (→ A B ... Z) is (Π ((x A)) (→ B ... Z)) for some x which does not occur.
func (c *Checker) arrowType(ctx env.Context, r env.Renaming, types []ast.Source) (core.Core, *source.Stop) {
	if len(types) == 1 {
		return c.IsType(ctx, r, types[0])
	}
	//
	arg, stop := c.IsType(ctx, r, types[0])
	if stop != nil {
		return nil, stop
	}
	//
	x := freshFor(ctx, "x", types[1:]...)
	result, stop := c.arrowType(ctx.BindFree(x, evaluate(ctx, arg)), r, types[1:])
	//
	return &core.Pi{Name: x, Arg: arg, Result: result}, stop
}

func (c *Checker) piType(ctx env.Context, r env.Renaming, binders []ast.TypedBinder,
	body ast.Source) (core.Core, *source.Stop) {
	if len(binders) == 0 {
		return c.IsType(ctx, r, body)
	}
	//
	x, arg, ctx2, r2, stop := c.bindType(ctx, r, binders[0], &ast.Pi{Binders: binders[1:], Body: body})
	if stop != nil {
		return nil, stop
	}
	//
	result, stop := c.piType(ctx2, r2, binders[1:], body)
	//
	return &core.Pi{Name: x, Arg: arg, Result: result}, stop
}

func (c *Checker) sigmaType(ctx env.Context, r env.Renaming, binders []ast.TypedBinder,
	body ast.Source) (core.Core, *source.Stop) {
	if len(binders) == 0 {
		return c.IsType(ctx, r, body)
	}
	//
	x, car, ctx2, r2, stop := c.bindType(ctx, r, binders[0], &ast.Sigma{Binders: binders[1:], Body: body})
	if stop != nil {
		return nil, stop
	}
	//
	cdr, stop := c.sigmaType(ctx2, r2, binders[1:], body)
	//
	return &core.Sigma{Name: x, Car: car, Cdr: cdr}, stop
}

// Elaborate the type of a binder, and then bind it under a fresh name which
// cannot capture anything in the scope of the binder.
func (c *Checker) bindType(ctx env.Context, r env.Renaming, binder ast.TypedBinder,
	scope ast.Source) (string, core.Core, env.Context, env.Renaming, *source.Stop) {
	t, stop := c.IsType(ctx, r, binder.Type)
	if stop != nil {
		return "", nil, ctx, r, stop
	}
	//
	tv := evaluate(ctx, t)
	x := env.FreshBinder(ctx, scope, binder.Name)
	c.reportBinding(ctx, binder.Where, tv)
	//
	return x, t, ctx.BindFree(x, tv), r.Extend(binder.Name, x), nil
}

// Choose a fresh name which is not bound in a given context, and does not
// occur in any of a number of terms.
func freshFor(ctx env.Context, name string, terms ...ast.Source) string {
	used := ctx.Names()
	//
	for _, t := range terms {
		used = append(used, ast.OccurringNames(t)...)
	}
	//
	return env.FreshAvoiding(used, name)
}

func arrow(from value.Value, to value.Value) value.Value {
	return &value.Pi{ArgName: "x", ArgType: from, Result: value.Constant(to)}
}

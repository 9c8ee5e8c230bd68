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

// Datatype elaborates the declaration of an inductive family.  The types of
// parameters and indices are checked in turn, followed by the arguments of
// each constructor and the instance of the family it constructs.  Only if all
// of this succeeds are the family, its constructors and its eliminator added
// to the context together.  Otherwise, the context is returned unchanged.
func (c *Checker) Datatype(ctx env.Context, def *ast.TypeDefinition) (env.Context, *core.Datatype, *source.Stop) {
	if stop := checkFreshNames(ctx, def); stop != nil {
		return ctx, nil, stop
	}
	// Names which binders should avoid
	avoid := []string{def.Name.Name, def.EliminatorName()}
	for _, ctor := range def.Constructors {
		avoid = append(avoid, ctor.Name.Name)
	}
	// Parameters and indices cannot refer to the family itself.
	params, local, r, stop := c.datatypeBinders(ctx, env.Renaming{}, def.Parameters, avoid)
	if stop != nil {
		return ctx, nil, stop
	}
	//
	indices, _, _, stop := c.datatypeBinders(local, r, def.Indices, avoid)
	if stop != nil {
		return ctx, nil, stop
	}
	//
	dt := &core.Datatype{Name: def.Name.Name, Parameters: params, Indices: indices}
	declared := ctx.Extend(dt.Name, &env.InductiveDatatype{Def: dt})
	// Constructors are checked with the parameters in scope, under the same
	// names as above.
	withParams := declared
	//
	for _, p := range params {
		withParams = withParams.BindFree(p.Name, evaluate(withParams, p.Type))
	}
	//
	ctors := make([]core.DatatypeConstructor, len(def.Constructors))
	//
	for i, ctor := range def.Constructors {
		if ctors[i], stop = c.datatypeConstructor(withParams, r, dt, ctor, avoid); stop != nil {
			return ctx, nil, stop
		}
	}
	//
	dt.Constructors = ctors
	// Admit everything at once
	result := declared
	//
	for i, ctor := range ctors {
		result = result.Extend(ctor.Name, &env.ConstructorType{Def: dt, Index: i})
	}
	//
	result = result.Extend(dt.EliminatorName(), &env.Eliminator{Def: dt})
	//
	e := env.ContextToEnvironment(result)
	c.ReportDefinition(result, def.Name.Where, eval.DatatypeType(e, dt))
	//
	for i, ctor := range def.Constructors {
		c.ReportDefinition(result, ctor.Name.Where, eval.ConstructorType(e, dt, i))
	}
	//
	return result, dt, nil
}

// The name of the family, its constructors and its eliminator must all be
// distinct and not already in use.
func checkFreshNames(ctx env.Context, def *ast.TypeDefinition) *source.Stop {
	var (
		names = []ast.SiteBinder{def.Name, {Where: def.Name.Where, Name: def.EliminatorName()}}
		seen  = make(map[string]bool)
	)
	//
	for _, ctor := range def.Constructors {
		names = append(names, ctor.Name)
	}
	//
	for _, n := range names {
		if ctx.Bound(n.Name) || seen[n.Name] {
			return source.Stopf(n.Where, "The name %s is already in use", n.Name)
		}
		//
		seen[n.Name] = true
	}
	//
	return nil
}

// Elaborate a sequence of binders, each of which is in scope of those before.
func (c *Checker) datatypeBinders(ctx env.Context, r env.Renaming, binders []ast.TypedBinder,
	avoid []string) ([]core.Binder, env.Context, env.Renaming, *source.Stop) {
	elaborated := make([]core.Binder, len(binders))
	//
	for i, b := range binders {
		t, stop := c.IsType(ctx, r, b.Type)
		if stop != nil {
			return nil, ctx, r, stop
		}
		//
		tv := evaluate(ctx, t)
		x := env.FreshAvoiding(append(ctx.Names(), avoid...), b.Name)
		c.reportBinding(ctx, b.Where, tv)
		//
		elaborated[i] = core.Binder{Name: x, Type: t}
		ctx = ctx.BindFree(x, tv)
		r = r.Extend(b.Name, x)
	}
	//
	return elaborated, ctx, r, nil
}

func (c *Checker) datatypeConstructor(ctx env.Context, r env.Renaming, dt *core.Datatype,
	ctor ast.GeneralConstructor, avoid []string) (core.DatatypeConstructor, *source.Stop) {
	var empty core.DatatypeConstructor
	//
	args, local, r, stop := c.datatypeBinders(ctx, r, ctor.Arguments, avoid)
	if stop != nil {
		return empty, stop
	}
	//
	for i, arg := range args {
		if stop := checkPositive(dt, ctor.Arguments[i].Type.Loc(), arg.Type); stop != nil {
			return empty, stop
		}
	}
	//
	indices, stop := c.checkValid(local, r, dt, ctor.Result)
	if stop != nil {
		return empty, stop
	}
	//
	return core.DatatypeConstructor{Name: ctor.Name.Name, Arguments: args, Indices: indices}, nil
}

// Check that the declared result of a constructor is an instance of the family
// being declared, with its parameters passed unchanged, and elaborate its
// indices.
func (c *Checker) checkValid(ctx env.Context, r env.Renaming, dt *core.Datatype, result ast.Source) ([]core.Core,
	*source.Stop) {
	var (
		head ast.Source = result
		args []ast.Source
	)
	//
	if app, ok := result.(*ast.App); ok {
		head, args = app.Fun, app.Args
	}
	//
	if v, ok := head.(*ast.Var); !ok || r.Rename(v.Name) != dt.Name {
		return nil, source.Stopf(result.Loc(), "A constructor of %s must construct a %s", dt.Name, dt.Name)
	} else if n := len(dt.Parameters) + len(dt.Indices); len(args) != n {
		return nil, source.Stopf(result.Loc(), "%s expects %d arguments, but was given %d", dt.Name, n, len(args))
	}
	//
	for i, p := range dt.Parameters {
		if v, ok := args[i].(*ast.Var); !ok || r.Rename(v.Name) != p.Name {
			return nil, source.Stopf(args[i].Loc(), "The parameters of %s must be passed unchanged", dt.Name)
		}
	}
	// Index types are evaluated with earlier indices bound, whilst the indices
	// themselves are evaluated with constructor arguments bound.
	var (
		args0   = args[len(dt.Parameters):]
		indices = make([]core.Core, len(dt.Indices))
		argEnv  = env.ContextToEnvironment(ctx)
		typeEnv = argEnv
	)
	//
	for i, b := range dt.Indices {
		index, stop := c.Check(ctx, r, args0[i], eval.ValOf(typeEnv, b.Type))
		if stop != nil {
			return nil, stop
		}
		//
		indices[i] = index
		typeEnv = typeEnv.Extend(b.Name, eval.ValOf(argEnv, index))
	}
	//
	return indices, nil
}

// A constructor argument may be an instance of the family being declared (at
// the same parameters), or else may not mention the family at all.
func checkPositive(dt *core.Datatype, where source.Location, datatype core.Core) *source.Stop {
	if t, ok := datatype.(*core.InductiveType); ok && t.Def == dt {
		for i, p := range t.Parameters {
			if v, ok := p.(*core.Var); !ok || v.Name != dt.Parameters[i].Name {
				return source.Stopf(where, "Recursive uses of %s must pass its parameters unchanged", dt.Name)
			}
		}
		//
		if mentionsAny(dt, t.Indices) {
			return source.Stopf(where, "The indices of %s cannot mention %s", dt.Name, dt.Name)
		}
		//
		return nil
	} else if mentions(dt, datatype) {
		return source.Stopf(where, "%s can only be used as the whole type of a constructor argument", dt.Name)
	}
	//
	return nil
}

// Determine whether a given term refers to a given family.
func mentions(dt *core.Datatype, term core.Core) bool {
	switch t := term.(type) {
	case *core.InductiveType:
		return t.Def == dt || mentionsAny(dt, t.Parameters) || mentionsAny(dt, t.Indices)
	case *core.Constructor:
		return t.Def == dt || mentionsAny(dt, t.Arguments)
	case *core.Eliminator:
		return t.Def == dt || mentions(dt, t.Target) || mentions(dt, t.Motive) || mentionsAny(dt, t.Methods)
	case *core.Pi:
		return mentions(dt, t.Arg) || mentions(dt, t.Result)
	case *core.Sigma:
		return mentions(dt, t.Car) || mentions(dt, t.Cdr)
	case *core.Lambda:
		return mentions(dt, t.Body)
	case *core.The:
		return mentions(dt, t.Type) || mentions(dt, t.Expr)
	case *core.TODO:
		return mentions(dt, t.Type)
	}
	//
	children, _ := core.Children(term)
	//
	return mentionsAny(dt, children)
}

func mentionsAny(dt *core.Datatype, terms []core.Core) bool {
	for _, t := range terms {
		if mentions(dt, t) {
			return true
		}
	}
	//
	return false
}

// ============================================================================
// Applications of families, constructors and eliminators
// ============================================================================

func (c *Checker) synthDatatype(ctx env.Context, r env.Renaming, where source.Location, dt *core.Datatype,
	args []ast.Source) (*core.The, *source.Stop) {
	n := len(dt.Parameters) + len(dt.Indices)
	//
	if len(args) != n {
		return nil, source.Stopf(where, "%s expects %d arguments, but was given %d", dt.Name, n, len(args))
	}
	//
	terms, _, stop := c.checkSpine(ctx, r, args, eval.DatatypeType(env.ContextToEnvironment(ctx), dt))
	if stop != nil {
		return nil, stop
	}
	//
	np := len(dt.Parameters)
	//
	return the(&core.Universe{}, &core.InductiveType{Def: dt, Parameters: terms[:np], Indices: terms[np:]}), nil
}

func (c *Checker) synthConstructor(ctx env.Context, r env.Renaming, where source.Location, dt *core.Datatype,
	index int, args []ast.Source) (*core.The, *source.Stop) {
	if len(dt.Parameters) != 0 {
		return nil, source.Stopf(where, "Can't determine the parameters of %s; try adding a type annotation with the",
			dt.Constructors[index].Name)
	}
	//
	term, datatype, stop := c.constructor(ctx, r, where, dt, index, nil, args)
	if stop != nil {
		return nil, stop
	}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

func (c *Checker) checkConstructor(ctx env.Context, r env.Renaming, where source.Location, dt *core.Datatype,
	index int, args []ast.Source, expected value.Value) (core.Core, *source.Stop) {
	name := dt.Constructors[index].Name
	//
	instance, ok := value.Now(expected).(*value.InductiveType)
	if !ok || instance.Def != dt {
		return nil, source.Stopf(where, "%s constructs a %s, but was used as a %s", name, dt.Name, show(ctx, expected))
	}
	//
	term, datatype, stop := c.constructor(ctx, r, where, dt, index, instance.Parameters, args)
	if stop != nil {
		return nil, stop
	} else if stop := eval.SameType(ctx, where, expected, datatype); stop != nil {
		return nil, stop
	}
	//
	return term, nil
}

// Elaborate the arguments of a constructor for a given instantiation of the
// parameters, returning the constructor application and its type.
func (c *Checker) constructor(ctx env.Context, r env.Renaming, where source.Location, dt *core.Datatype, index int,
	params []value.Value, args []ast.Source) (core.Core, value.Value, *source.Stop) {
	ctor := &dt.Constructors[index]
	//
	if len(args) != len(ctor.Arguments) {
		return nil, nil, source.Stopf(where, "%s expects %d arguments, but was given %d", ctor.Name,
			len(ctor.Arguments), len(args))
	}
	//
	datatype := eval.ConstructorArgumentsType(env.ContextToEnvironment(ctx), dt, params, index)
	//
	terms, result, stop := c.checkSpine(ctx, r, args, datatype)
	if stop != nil {
		return nil, nil, stop
	}
	//
	return &core.Constructor{Def: dt, Index: index, Arguments: terms}, result, nil
}

func (c *Checker) synthEliminator(ctx env.Context, r env.Renaming, s *ast.App, dt *core.Datatype) (*core.The,
	*source.Stop) {
	name := dt.EliminatorName()
	//
	if n := 2 + len(dt.Constructors); len(s.Args) != n {
		return nil, source.Stopf(s.Loc(), "%s expects %d arguments, but was given %d", name, n, len(s.Args))
	}
	//
	target, stop := c.Synth(ctx, r, s.Args[0])
	if stop != nil {
		return nil, stop
	}
	//
	instance, ok := value.Now(evaluate(ctx, target.Type)).(*value.InductiveType)
	if !ok || instance.Def != dt {
		return nil, source.Stopf(s.Args[0].Loc(), "Expected a %s, but given %s", dt.Name, core.String(target.Type))
	}
	//
	e := env.ContextToEnvironment(ctx)
	//
	motive, stop := c.Check(ctx, r, s.Args[1], eval.MotiveType(e, dt, instance.Parameters))
	if stop != nil {
		return nil, stop
	}
	//
	var (
		mv      = evaluate(ctx, motive)
		methods = make([]core.Core, len(dt.Constructors))
	)
	//
	for i := range dt.Constructors {
		expected := eval.MethodType(e, dt, instance.Parameters, mv, i)
		//
		if methods[i], stop = c.Check(ctx, r, s.Args[2+i], expected); stop != nil {
			return nil, stop
		}
	}
	//
	datatype := eval.ApplyMotive(mv, instance.Indices, evaluate(ctx, target.Expr))
	term := &core.Eliminator{Def: dt, Target: target.Expr, Motive: motive, Methods: methods}
	//
	return the(eval.ReadBackType(ctx, datatype), term), nil
}

// Check a sequence of arguments against a Π type, returning the elaborated
// arguments and the final result type.
func (c *Checker) checkSpine(ctx env.Context, r env.Renaming, args []ast.Source,
	datatype value.Value) ([]core.Core, value.Value, *source.Stop) {
	terms := make([]core.Core, len(args))
	//
	for i, arg := range args {
		pi, ok := value.Now(datatype).(*value.Pi)
		if !ok {
			return nil, nil, source.Stopf(arg.Loc(), "Too many arguments")
		}
		//
		term, stop := c.Check(ctx, r, arg, pi.ArgType)
		if stop != nil {
			return nil, nil, stop
		}
		//
		terms[i] = term
		datatype = pi.Result.Apply(evaluate(ctx, term))
	}
	//
	return terms, datatype, nil
}

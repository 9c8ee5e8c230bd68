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
package eval

import (
	"fmt"

	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/value"
)

// FirstOrderClosure is a closure represented by the environment in which it
// was created, along with the name it binds and the body to be evaluated.
type FirstOrderClosure struct {
	Env  env.Environment
	Name string
	Body core.Core
}

// Apply implementation for the value.Closure interface.
func (p FirstOrderClosure) Apply(arg value.Value) value.Value {
	return ValOf(p.Env.Extend(p.Name, arg), p.Body)
}

// ValOfClosure instantiates a closure (of either representation) with a given
// argument.
func ValOfClosure(c value.Closure, arg value.Value) value.Value {
	return c.Apply(arg)
}

// ValOf evaluates a core term in a given environment.  Every variable
// referenced by the term must be bound in the environment.
//
//nolint:gocyclo
func ValOf(e env.Environment, term core.Core) value.Value {
	switch t := term.(type) {
	case *core.The:
		return ValOf(e, t.Expr)
	case *core.Var:
		return e.Lookup(t.Name)
	case *core.Universe:
		return &value.Universe{}
	case *core.TODO:
		datatype := ValOf(e, t.Type)
		return &value.Neutral{Type: datatype, Ne: &value.NeTODO{Where: t.Where, Type: datatype}}
	// Naturals
	case *core.Nat:
		return &value.Nat{}
	case *core.Zero:
		return &value.Zero{}
	case *core.Add1:
		return &value.Add1{Smaller: ValOf(e, t.N)}
	case *core.WhichNat:
		return DoWhichNat(ValOf(e, t.Target), ValOf(e, t.BaseType), ValOf(e, t.Base), ValOf(e, t.Step))
	case *core.IterNat:
		return DoIterNat(ValOf(e, t.Target), ValOf(e, t.BaseType), ValOf(e, t.Base), ValOf(e, t.Step))
	case *core.RecNat:
		return DoRecNat(ValOf(e, t.Target), ValOf(e, t.BaseType), ValOf(e, t.Base), ValOf(e, t.Step))
	case *core.IndNat:
		return DoIndNat(ValOf(e, t.Target), ValOf(e, t.Motive), ValOf(e, t.Base), ValOf(e, t.Step))
	// Functions
	case *core.Pi:
		return &value.Pi{ArgName: t.Name, ArgType: ValOf(e, t.Arg), Result: FirstOrderClosure{e, t.Name, t.Result}}
	case *core.Lambda:
		return &value.Lambda{ArgName: t.Name, Body: FirstOrderClosure{e, t.Name, t.Body}}
	case *core.App:
		return DoApp(ValOf(e, t.Fun), ValOf(e, t.Arg))
	// Pairs
	case *core.Sigma:
		return &value.Sigma{CarName: t.Name, CarType: ValOf(e, t.Car), CdrType: FirstOrderClosure{e, t.Name, t.Cdr}}
	case *core.Cons:
		return &value.Cons{Car: ValOf(e, t.Car), Cdr: ValOf(e, t.Cdr)}
	case *core.Car:
		return DoCar(ValOf(e, t.Pair))
	case *core.Cdr:
		return DoCdr(ValOf(e, t.Pair))
	// Atoms, unit and empty types
	case *core.Atom:
		return &value.Atom{}
	case *core.Quote:
		return &value.Quote{Symbol: t.Symbol}
	case *core.Trivial:
		return &value.Trivial{}
	case *core.Sole:
		return &value.Sole{}
	case *core.Absurd:
		return &value.Absurd{}
	case *core.IndAbsurd:
		return DoIndAbsurd(ValOf(e, t.Target), ValOf(e, t.Motive))
	// Lists
	case *core.List:
		return &value.List{Entry: ValOf(e, t.Entry)}
	case *core.Nil:
		return &value.Nil{}
	case *core.ListCons:
		return &value.ListCons{Head: ValOf(e, t.Head), Tail: ValOf(e, t.Tail)}
	case *core.RecList:
		return DoRecList(ValOf(e, t.Target), ValOf(e, t.BaseType), ValOf(e, t.Base), ValOf(e, t.Step))
	case *core.IndList:
		return DoIndList(ValOf(e, t.Target), ValOf(e, t.Motive), ValOf(e, t.Base), ValOf(e, t.Step))
	// Vectors
	case *core.Vec:
		return &value.Vec{Entry: ValOf(e, t.Entry), Length: ValOf(e, t.Length)}
	case *core.VecNil:
		return &value.VecNil{}
	case *core.VecCons:
		return &value.VecCons{Head: ValOf(e, t.Head), Tail: ValOf(e, t.Tail)}
	case *core.Head:
		return DoHead(ValOf(e, t.Vec))
	case *core.Tail:
		return DoTail(ValOf(e, t.Vec))
	case *core.IndVec:
		return DoIndVec(ValOf(e, t.Length), ValOf(e, t.Target), ValOf(e, t.Motive), ValOf(e, t.Base),
			ValOf(e, t.Step))
	// Equality
	case *core.Equal:
		return &value.Equal{Type: ValOf(e, t.Type), From: ValOf(e, t.From), To: ValOf(e, t.To)}
	case *core.Same:
		return &value.Same{Value: ValOf(e, t.Expr)}
	case *core.Replace:
		return DoReplace(ValOf(e, t.Target), ValOf(e, t.Motive), ValOf(e, t.Base))
	case *core.Trans:
		return DoTrans(ValOf(e, t.Left), ValOf(e, t.Right))
	case *core.Cong:
		return DoCong(ValOf(e, t.Target), ValOf(e, t.Result), ValOf(e, t.Fun))
	case *core.Symm:
		return DoSymm(ValOf(e, t.Expr))
	case *core.IndEqual:
		return DoIndEqual(ValOf(e, t.Target), ValOf(e, t.Motive), ValOf(e, t.Base))
	// Sums
	case *core.Either:
		return &value.Either{Left: ValOf(e, t.Left), Right: ValOf(e, t.Right)}
	case *core.Left:
		return &value.Left{Value: ValOf(e, t.Expr)}
	case *core.Right:
		return &value.Right{Value: ValOf(e, t.Expr)}
	case *core.IndEither:
		return DoIndEither(ValOf(e, t.Target), ValOf(e, t.Motive), ValOf(e, t.Left), ValOf(e, t.Right))
	// User-declared families
	case *core.InductiveType:
		return &value.InductiveType{Def: t.Def, Parameters: valOfAll(e, t.Parameters), Indices: valOfAll(e, t.Indices)}
	case *core.Constructor:
		return &value.Constructor{Def: t.Def, Index: t.Index, Arguments: valOfAll(e, t.Arguments)}
	case *core.Eliminator:
		return DoEliminator(e, t.Def, ValOf(e, t.Target), ValOf(e, t.Motive), valOfAll(e, t.Methods))
	default:
		panic(fmt.Sprintf("unknown core term %T", term))
	}
}

func valOfAll(e env.Environment, terms []core.Core) []value.Value {
	values := make([]value.Value, len(terms))
	//
	for i, t := range terms {
		values[i] = ValOf(e, t)
	}
	//
	return values
}

// Normalize evaluates a term of a given type under a given context, and reads
// the result back as a term in normal form.
func Normalize(ctx env.Context, datatype value.Value, term core.Core) core.Core {
	return ReadBack(ctx, datatype, ValOf(env.ContextToEnvironment(ctx), term))
}

// Evaluate evaluates a term under a given context.
func Evaluate(ctx env.Context, term core.Core) value.Value {
	return ValOf(env.ContextToEnvironment(ctx), term)
}

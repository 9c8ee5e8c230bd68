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

// ReadBack converts a value of a given type into a core term in normal form.
// The result is eta-long: functions are always read back as lambdas, pairs as
// cons and inhabitants of Trivial as sole, regardless of whether the value
// itself is neutral.  Consequently, two values are definitionally equal
// exactly when their read backs are alpha-equivalent.
//
//nolint:gocyclo
func ReadBack(ctx env.Context, datatype value.Value, v value.Value) core.Core {
	v = value.Now(v)
	//
	switch t := value.Now(datatype).(type) {
	case *value.Universe:
		return ReadBackType(ctx, v)
	case *value.Pi:
		name := t.ArgName
		if l, ok := v.(*value.Lambda); ok {
			name = l.ArgName
		}
		//
		x := env.Fresh(ctx, name)
		arg := value.Variable(x, t.ArgType)
		body := ReadBack(ctx.BindFree(x, t.ArgType), t.Result.Apply(arg), DoApp(v, arg))
		//
		return &core.Lambda{Name: x, Body: body}
	case *value.Sigma:
		car := DoCar(v)
		cdr := DoCdr(v)
		//
		return &core.Cons{Car: ReadBack(ctx, t.CarType, car), Cdr: ReadBack(ctx, t.CdrType.Apply(car), cdr)}
	case *value.Trivial:
		return &core.Sole{}
	case *value.Absurd:
		if n, ok := v.(*value.Neutral); ok {
			return &core.The{Type: &core.Absurd{}, Expr: ReadBackNeutral(ctx, n.Ne)}
		}
	}
	// Neutral values of any other type
	if n, ok := v.(*value.Neutral); ok {
		return ReadBackNeutral(ctx, n.Ne)
	}
	//
	switch t := value.Now(datatype).(type) {
	case *value.Nat:
		switch n := v.(type) {
		case *value.Zero:
			return &core.Zero{}
		case *value.Add1:
			return &core.Add1{N: ReadBack(ctx, t, n.Smaller)}
		}
	case *value.Atom:
		if q, ok := v.(*value.Quote); ok {
			return &core.Quote{Symbol: q.Symbol}
		}
	case *value.List:
		switch l := v.(type) {
		case *value.Nil:
			return &core.Nil{}
		case *value.ListCons:
			return &core.ListCons{Head: ReadBack(ctx, t.Entry, l.Head), Tail: ReadBack(ctx, t, l.Tail)}
		}
	case *value.Vec:
		switch l := v.(type) {
		case *value.VecNil:
			return &core.VecNil{}
		case *value.VecCons:
			tail := &value.Vec{Entry: t.Entry, Length: predecessor(t.Length)}
			return &core.VecCons{Head: ReadBack(ctx, t.Entry, l.Head), Tail: ReadBack(ctx, tail, l.Tail)}
		}
	case *value.Equal:
		if s, ok := v.(*value.Same); ok {
			return &core.Same{Expr: ReadBack(ctx, t.Type, s.Value)}
		}
	case *value.Either:
		switch s := v.(type) {
		case *value.Left:
			return &core.Left{Expr: ReadBack(ctx, t.Left, s.Value)}
		case *value.Right:
			return &core.Right{Expr: ReadBack(ctx, t.Right, s.Value)}
		}
	case *value.InductiveType:
		if c, ok := v.(*value.Constructor); ok {
			e := env.ContextToEnvironment(ctx)
			types := ConstructorArgumentTypes(e, t.Def, t.Parameters, c.Index, c.Arguments)
			//
			return &core.Constructor{Def: c.Def, Index: c.Index, Arguments: readBackAll(ctx, types, c.Arguments)}
		}
	}
	//
	panic(fmt.Sprintf("cannot read back %T as %T", v, datatype))
}

// ReadBackTyped reads back a value paired with its type.
func ReadBackTyped(ctx env.Context, tv value.TypedValue) core.Core {
	return ReadBack(ctx, tv.Type, tv.Value)
}

// ReadBackType converts a value representing a type into a core term in
// normal form.
//
//nolint:gocyclo
func ReadBackType(ctx env.Context, v value.Value) core.Core {
	switch t := value.Now(v).(type) {
	case *value.Universe:
		return &core.Universe{}
	case *value.Nat:
		return &core.Nat{}
	case *value.Atom:
		return &core.Atom{}
	case *value.Trivial:
		return &core.Trivial{}
	case *value.Absurd:
		return &core.Absurd{}
	case *value.Pi:
		x := env.Fresh(ctx, t.ArgName)
		result := t.Result.Apply(value.Variable(x, t.ArgType))
		//
		return &core.Pi{Name: x, Arg: ReadBackType(ctx, t.ArgType), Result: ReadBackType(ctx.BindFree(x, t.ArgType), result)}
	case *value.Sigma:
		x := env.Fresh(ctx, t.CarName)
		cdr := t.CdrType.Apply(value.Variable(x, t.CarType))
		//
		return &core.Sigma{Name: x, Car: ReadBackType(ctx, t.CarType), Cdr: ReadBackType(ctx.BindFree(x, t.CarType), cdr)}
	case *value.List:
		return &core.List{Entry: ReadBackType(ctx, t.Entry)}
	case *value.Vec:
		return &core.Vec{Entry: ReadBackType(ctx, t.Entry), Length: ReadBack(ctx, &value.Nat{}, t.Length)}
	case *value.Equal:
		return &core.Equal{Type: ReadBackType(ctx, t.Type), From: ReadBack(ctx, t.Type, t.From),
			To: ReadBack(ctx, t.Type, t.To)}
	case *value.Either:
		return &core.Either{Left: ReadBackType(ctx, t.Left), Right: ReadBackType(ctx, t.Right)}
	case *value.InductiveType:
		var (
			e       = env.ContextToEnvironment(ctx)
			params  = readBackBinders(ctx, e, t.Def.Parameters, t.Parameters)
			indices = readBackBinders(ctx, bindAll(e, t.Def.Parameters, t.Parameters), t.Def.Indices, t.Indices)
		)
		//
		return &core.InductiveType{Def: t.Def, Parameters: params, Indices: indices}
	case *value.Neutral:
		return ReadBackNeutral(ctx, t.Ne)
	default:
		panic(fmt.Sprintf("cannot read back %T as a type", t))
	}
}

// ReadBackNeutral converts a neutral computation into a core term.
//
//nolint:gocyclo
func ReadBackNeutral(ctx env.Context, ne value.Ne) core.Core {
	switch n := ne.(type) {
	case *value.NeVar:
		return &core.Var{Name: n.Name}
	case *value.NeTODO:
		return &core.TODO{Where: n.Where, Type: ReadBackType(ctx, n.Type)}
	case *value.NeApp:
		return &core.App{Fun: ReadBackNeutral(ctx, n.Fun), Arg: ReadBackTyped(ctx, n.Arg)}
	case *value.NeWhichNat:
		return &core.WhichNat{Target: ReadBackNeutral(ctx, n.Target), BaseType: ReadBackType(ctx, n.Base.Type),
			Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeIterNat:
		return &core.IterNat{Target: ReadBackNeutral(ctx, n.Target), BaseType: ReadBackType(ctx, n.Base.Type),
			Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeRecNat:
		return &core.RecNat{Target: ReadBackNeutral(ctx, n.Target), BaseType: ReadBackType(ctx, n.Base.Type),
			Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeIndNat:
		return &core.IndNat{Target: ReadBackNeutral(ctx, n.Target), Motive: ReadBackTyped(ctx, n.Motive),
			Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeCar:
		return &core.Car{Pair: ReadBackNeutral(ctx, n.Pair)}
	case *value.NeCdr:
		return &core.Cdr{Pair: ReadBackNeutral(ctx, n.Pair)}
	case *value.NeRecList:
		return &core.RecList{Target: ReadBackNeutral(ctx, n.Target), BaseType: ReadBackType(ctx, n.Base.Type),
			Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeIndList:
		return &core.IndList{Target: ReadBackNeutral(ctx, n.Target), Motive: ReadBackTyped(ctx, n.Motive),
			Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeHead:
		return &core.Head{Vec: ReadBackNeutral(ctx, n.Vec)}
	case *value.NeTail:
		return &core.Tail{Vec: ReadBackNeutral(ctx, n.Vec)}
	case *value.NeIndVec:
		return &core.IndVec{Length: ReadBackTyped(ctx, n.Length), Target: ReadBackNeutral(ctx, n.Target),
			Motive: ReadBackTyped(ctx, n.Motive), Base: ReadBackTyped(ctx, n.Base), Step: ReadBackTyped(ctx, n.Step)}
	case *value.NeReplace:
		return &core.Replace{Target: ReadBackNeutral(ctx, n.Target), Motive: ReadBackTyped(ctx, n.Motive),
			Base: ReadBackTyped(ctx, n.Base)}
	case *value.NeTrans:
		return &core.Trans{Left: ReadBackTyped(ctx, n.Left), Right: ReadBackTyped(ctx, n.Right)}
	case *value.NeCong:
		return &core.Cong{Target: ReadBackNeutral(ctx, n.Target), Result: ReadBackType(ctx, n.Result),
			Fun: ReadBackTyped(ctx, n.Fun)}
	case *value.NeSymm:
		return &core.Symm{Expr: ReadBackNeutral(ctx, n.Target)}
	case *value.NeIndEqual:
		return &core.IndEqual{Target: ReadBackNeutral(ctx, n.Target), Motive: ReadBackTyped(ctx, n.Motive),
			Base: ReadBackTyped(ctx, n.Base)}
	case *value.NeIndEither:
		return &core.IndEither{Target: ReadBackNeutral(ctx, n.Target), Motive: ReadBackTyped(ctx, n.Motive),
			Left: ReadBackTyped(ctx, n.Left), Right: ReadBackTyped(ctx, n.Right)}
	case *value.NeIndAbsurd:
		target := &core.The{Type: &core.Absurd{}, Expr: ReadBackNeutral(ctx, n.Target)}
		return &core.IndAbsurd{Target: target, Motive: ReadBackTyped(ctx, n.Motive)}
	case *value.NeEliminator:
		methods := make([]core.Core, len(n.Methods))
		//
		for i, m := range n.Methods {
			methods[i] = ReadBackTyped(ctx, m)
		}
		//
		return &core.Eliminator{Def: n.Def, Target: ReadBackNeutral(ctx, n.Target),
			Motive: ReadBackTyped(ctx, n.Motive), Methods: methods}
	default:
		panic(fmt.Sprintf("unknown neutral term %T", ne))
	}
}

func readBackAll(ctx env.Context, types []value.Value, values []value.Value) []core.Core {
	terms := make([]core.Core, len(values))
	//
	for i, v := range values {
		terms[i] = ReadBack(ctx, types[i], v)
	}
	//
	return terms
}

// readBackBinders reads back the values given for a sequence of binders,
// where the type of each binder may refer to those before it.
func readBackBinders(ctx env.Context, e env.Environment, binders []core.Binder, values []value.Value) []core.Core {
	terms := make([]core.Core, len(values))
	//
	for i, b := range binders {
		terms[i] = ReadBack(ctx, ValOf(e, b.Type), values[i])
		e = e.Extend(b.Name, values[i])
	}
	//
	return terms
}

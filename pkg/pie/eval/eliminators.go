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

	"github.com/consensys/go-pie/pkg/pie/value"
)

// Each eliminator either performs its computation rule, when its target is
// constructor-shaped, or builds a larger neutral term when its target is
// neutral.  In the latter case, the types of the remaining arguments are
// recorded so that the neutral term can be read back later.  Recursive
// unfoldings (i.e. induction hypotheses) are delayed.

// DoApp applies a function.
func DoApp(fun value.Value, arg value.Value) value.Value {
	switch f := value.Now(fun).(type) {
	case *value.Lambda:
		return f.Body.Apply(arg)
	case *value.Neutral:
		pi := asPi(f.Type)
		//
		return &value.Neutral{
			Type: pi.Result.Apply(arg),
			Ne:   &value.NeApp{Fun: f.Ne, Arg: value.TypedValue{Type: pi.ArgType, Value: arg}},
		}
	default:
		panic(fmt.Sprintf("cannot apply %T", f))
	}
}

// DoCar projects the first component of a pair.
func DoCar(pair value.Value) value.Value {
	switch p := value.Now(pair).(type) {
	case *value.Cons:
		return p.Car
	case *value.Neutral:
		sigma := asSigma(p.Type)
		return &value.Neutral{Type: sigma.CarType, Ne: &value.NeCar{Pair: p.Ne}}
	default:
		panic(fmt.Sprintf("cannot take car of %T", p))
	}
}

// DoCdr projects the second component of a pair.
func DoCdr(pair value.Value) value.Value {
	switch p := value.Now(pair).(type) {
	case *value.Cons:
		return p.Cdr
	case *value.Neutral:
		sigma := asSigma(p.Type)
		return &value.Neutral{Type: sigma.CdrType.Apply(DoCar(p)), Ne: &value.NeCdr{Pair: p.Ne}}
	default:
		panic(fmt.Sprintf("cannot take cdr of %T", p))
	}
}

// DoWhichNat eliminates a natural number without recursion.
func DoWhichNat(target, baseType, base, step value.Value) value.Value {
	switch n := value.Now(target).(type) {
	case *value.Zero:
		return base
	case *value.Add1:
		return DoApp(step, n.Smaller)
	case *value.Neutral:
		return &value.Neutral{Type: baseType, Ne: &value.NeWhichNat{
			Target: n.Ne,
			Base:   value.TypedValue{Type: baseType, Value: base},
			Step:   value.TypedValue{Type: arrow("n-1", &value.Nat{}, baseType), Value: step},
		}}
	default:
		panic(fmt.Sprintf("which-Nat on %T", n))
	}
}

// DoIterNat iterates a step function.
func DoIterNat(target, baseType, base, step value.Value) value.Value {
	switch n := value.Now(target).(type) {
	case *value.Zero:
		return base
	case *value.Add1:
		return DoApp(step, value.NewDelay(func() value.Value {
			return DoIterNat(n.Smaller, baseType, base, step)
		}))
	case *value.Neutral:
		return &value.Neutral{Type: baseType, Ne: &value.NeIterNat{
			Target: n.Ne,
			Base:   value.TypedValue{Type: baseType, Value: base},
			Step:   value.TypedValue{Type: arrow("almost", baseType, baseType), Value: step},
		}}
	default:
		panic(fmt.Sprintf("iter-Nat on %T", n))
	}
}

// DoRecNat performs primitive recursion over a natural number.
func DoRecNat(target, baseType, base, step value.Value) value.Value {
	switch n := value.Now(target).(type) {
	case *value.Zero:
		return base
	case *value.Add1:
		ih := value.NewDelay(func() value.Value {
			return DoRecNat(n.Smaller, baseType, base, step)
		})
		//
		return DoApp(DoApp(step, n.Smaller), ih)
	case *value.Neutral:
		stepType := arrow("n-1", &value.Nat{}, arrow("almost", baseType, baseType))
		//
		return &value.Neutral{Type: baseType, Ne: &value.NeRecNat{
			Target: n.Ne,
			Base:   value.TypedValue{Type: baseType, Value: base},
			Step:   value.TypedValue{Type: stepType, Value: step},
		}}
	default:
		panic(fmt.Sprintf("rec-Nat on %T", n))
	}
}

// DoIndNat performs induction over a natural number.
func DoIndNat(target, motive, base, step value.Value) value.Value {
	switch n := value.Now(target).(type) {
	case *value.Zero:
		return base
	case *value.Add1:
		ih := value.NewDelay(func() value.Value {
			return DoIndNat(n.Smaller, motive, base, step)
		})
		//
		return DoApp(DoApp(step, n.Smaller), ih)
	case *value.Neutral:
		return &value.Neutral{Type: DoApp(motive, n), Ne: &value.NeIndNat{
			Target: n.Ne,
			Motive: value.TypedValue{Type: arrow("n", &value.Nat{}, &value.Universe{}), Value: motive},
			Base:   value.TypedValue{Type: DoApp(motive, &value.Zero{}), Value: base},
			Step:   value.TypedValue{Type: IndNatStepType(motive), Value: step},
		}}
	default:
		panic(fmt.Sprintf("ind-Nat on %T", n))
	}
}

// IndNatStepType constructs the type of the step of ind-Nat for a given
// motive, i.e. (Π ((n-1 Nat)) (→ (motive n-1) (motive (add1 n-1)))).
func IndNatStepType(motive value.Value) value.Value {
	return &value.Pi{ArgName: "n-1", ArgType: &value.Nat{}, Result: value.HigherOrderClosure{
		Fn: func(smaller value.Value) value.Value {
			return arrow("ih", DoApp(motive, smaller), DoApp(motive, &value.Add1{Smaller: smaller}))
		}}}
}

// DoIndAbsurd eliminates the empty type, which can only ever be neutral.
func DoIndAbsurd(target, motive value.Value) value.Value {
	switch n := value.Now(target).(type) {
	case *value.Neutral:
		return &value.Neutral{Type: motive, Ne: &value.NeIndAbsurd{
			Target: n.Ne,
			Motive: value.TypedValue{Type: &value.Universe{}, Value: motive},
		}}
	default:
		panic(fmt.Sprintf("ind-Absurd on %T", n))
	}
}

// DoRecList performs primitive recursion over a list.
func DoRecList(target, baseType, base, step value.Value) value.Value {
	switch l := value.Now(target).(type) {
	case *value.Nil:
		return base
	case *value.ListCons:
		ih := value.NewDelay(func() value.Value {
			return DoRecList(l.Tail, baseType, base, step)
		})
		//
		return DoApp(DoApp(DoApp(step, l.Head), l.Tail), ih)
	case *value.Neutral:
		entry := asList(l.Type).Entry
		stepType := arrow("e", entry, arrow("es", &value.List{Entry: entry}, arrow("almost", baseType, baseType)))
		//
		return &value.Neutral{Type: baseType, Ne: &value.NeRecList{
			Target: l.Ne,
			Base:   value.TypedValue{Type: baseType, Value: base},
			Step:   value.TypedValue{Type: stepType, Value: step},
		}}
	default:
		panic(fmt.Sprintf("rec-List on %T", l))
	}
}

// DoIndList performs induction over a list.
func DoIndList(target, motive, base, step value.Value) value.Value {
	switch l := value.Now(target).(type) {
	case *value.Nil:
		return base
	case *value.ListCons:
		ih := value.NewDelay(func() value.Value {
			return DoIndList(l.Tail, motive, base, step)
		})
		//
		return DoApp(DoApp(DoApp(step, l.Head), l.Tail), ih)
	case *value.Neutral:
		entry := asList(l.Type).Entry
		//
		return &value.Neutral{Type: DoApp(motive, l), Ne: &value.NeIndList{
			Target: l.Ne,
			Motive: value.TypedValue{Type: arrow("xs", &value.List{Entry: entry}, &value.Universe{}), Value: motive},
			Base:   value.TypedValue{Type: DoApp(motive, &value.Nil{}), Value: base},
			Step:   value.TypedValue{Type: IndListStepType(entry, motive), Value: step},
		}}
	default:
		panic(fmt.Sprintf("ind-List on %T", l))
	}
}

// IndListStepType constructs the type of the step of ind-List for a given
// entry type and motive.
func IndListStepType(entry, motive value.Value) value.Value {
	return &value.Pi{ArgName: "e", ArgType: entry, Result: value.HigherOrderClosure{Fn: func(e value.Value) value.Value {
		return &value.Pi{ArgName: "es", ArgType: &value.List{Entry: entry}, Result: value.HigherOrderClosure{
			Fn: func(es value.Value) value.Value {
				return arrow("ih", DoApp(motive, es), DoApp(motive, &value.ListCons{Head: e, Tail: es}))
			}}}
	}}}
}

// DoHead projects the first entry of a non-empty vector.
func DoHead(vec value.Value) value.Value {
	switch v := value.Now(vec).(type) {
	case *value.VecCons:
		return v.Head
	case *value.Neutral:
		return &value.Neutral{Type: asVec(v.Type).Entry, Ne: &value.NeHead{Vec: v.Ne}}
	default:
		panic(fmt.Sprintf("head on %T", v))
	}
}

// DoTail projects the remaining entries of a non-empty vector.
func DoTail(vec value.Value) value.Value {
	switch v := value.Now(vec).(type) {
	case *value.VecCons:
		return v.Tail
	case *value.Neutral:
		t := asVec(v.Type)
		length := &value.Vec{Entry: t.Entry, Length: predecessor(t.Length)}
		//
		return &value.Neutral{Type: length, Ne: &value.NeTail{Vec: v.Ne}}
	default:
		panic(fmt.Sprintf("tail on %T", v))
	}
}

// DoIndVec performs induction over a vector.  The computation is directed by
// the target, whose length must agree with the given length.
func DoIndVec(length, target, motive, base, step value.Value) value.Value {
	switch v := value.Now(target).(type) {
	case *value.VecNil:
		return base
	case *value.VecCons:
		smaller := predecessor(length)
		ih := value.NewDelay(func() value.Value {
			return DoIndVec(smaller, v.Tail, motive, base, step)
		})
		//
		return DoApp(DoApp(DoApp(DoApp(step, smaller), v.Head), v.Tail), ih)
	case *value.Neutral:
		entry := asVec(v.Type).Entry
		//
		return &value.Neutral{Type: DoApp(DoApp(motive, length), v), Ne: &value.NeIndVec{
			Length: value.TypedValue{Type: &value.Nat{}, Value: length},
			Target: v.Ne,
			Motive: value.TypedValue{Type: IndVecMotiveType(entry), Value: motive},
			Base:   value.TypedValue{Type: DoApp(DoApp(motive, &value.Zero{}), &value.VecNil{}), Value: base},
			Step:   value.TypedValue{Type: IndVecStepType(entry, motive), Value: step},
		}}
	default:
		panic(fmt.Sprintf("ind-Vec on %T", v))
	}
}

// IndVecMotiveType constructs the type of the motive of ind-Vec, i.e.
// (Π ((k Nat)) (→ (Vec E k) U)).
func IndVecMotiveType(entry value.Value) value.Value {
	return &value.Pi{ArgName: "k", ArgType: &value.Nat{}, Result: value.HigherOrderClosure{Fn: func(k value.Value) value.Value {
		return arrow("es", &value.Vec{Entry: entry, Length: k}, &value.Universe{})
	}}}
}

// IndVecStepType constructs the type of the step of ind-Vec for a given entry
// type and motive.
func IndVecStepType(entry, motive value.Value) value.Value {
	return &value.Pi{ArgName: "k", ArgType: &value.Nat{}, Result: value.HigherOrderClosure{Fn: func(k value.Value) value.Value {
		return &value.Pi{ArgName: "e", ArgType: entry, Result: value.HigherOrderClosure{Fn: func(e value.Value) value.Value {
			vec := &value.Vec{Entry: entry, Length: k}
			//
			return &value.Pi{ArgName: "es", ArgType: vec, Result: value.HigherOrderClosure{Fn: func(es value.Value) value.Value {
				conclusion := DoApp(DoApp(motive, &value.Add1{Smaller: k}), &value.VecCons{Head: e, Tail: es})
				return arrow("ih", DoApp(DoApp(motive, k), es), conclusion)
			}}}
		}}}
	}}}
}

// DoReplace transports a value along an equality.
func DoReplace(target, motive, base value.Value) value.Value {
	switch p := value.Now(target).(type) {
	case *value.Same:
		return base
	case *value.Neutral:
		eq := asEqual(p.Type)
		//
		return &value.Neutral{Type: DoApp(motive, eq.To), Ne: &value.NeReplace{
			Target: p.Ne,
			Motive: value.TypedValue{Type: arrow("x", eq.Type, &value.Universe{}), Value: motive},
			Base:   value.TypedValue{Type: DoApp(motive, eq.From), Value: base},
		}}
	default:
		panic(fmt.Sprintf("replace on %T", p))
	}
}

// DoTrans composes two equalities.
func DoTrans(left, right value.Value) value.Value {
	l, r := value.Now(left), value.Now(right)
	ls, lok := l.(*value.Same)
	rs, rok := r.(*value.Same)
	//
	switch {
	case lok && rok:
		return &value.Same{Value: ls.Value}
	case lok:
		eq := asEqual(r.(*value.Neutral).Type)
		ltype := &value.Equal{Type: eq.Type, From: ls.Value, To: ls.Value}
		//
		return &value.Neutral{Type: &value.Equal{Type: eq.Type, From: ls.Value, To: eq.To}, Ne: &value.NeTrans{
			Left:  value.TypedValue{Type: ltype, Value: l},
			Right: value.TypedValue{Type: eq, Value: r},
		}}
	case rok:
		eq := asEqual(l.(*value.Neutral).Type)
		rtype := &value.Equal{Type: eq.Type, From: rs.Value, To: rs.Value}
		//
		return &value.Neutral{Type: &value.Equal{Type: eq.Type, From: eq.From, To: rs.Value}, Ne: &value.NeTrans{
			Left:  value.TypedValue{Type: eq, Value: l},
			Right: value.TypedValue{Type: rtype, Value: r},
		}}
	default:
		leq := asEqual(l.(*value.Neutral).Type)
		req := asEqual(r.(*value.Neutral).Type)
		//
		return &value.Neutral{Type: &value.Equal{Type: leq.Type, From: leq.From, To: req.To}, Ne: &value.NeTrans{
			Left:  value.TypedValue{Type: leq, Value: l},
			Right: value.TypedValue{Type: req, Value: r},
		}}
	}
}

// DoCong applies a function across an equality.
func DoCong(target, result, fun value.Value) value.Value {
	switch p := value.Now(target).(type) {
	case *value.Same:
		return &value.Same{Value: DoApp(fun, p.Value)}
	case *value.Neutral:
		eq := asEqual(p.Type)
		datatype := &value.Equal{Type: result, From: DoApp(fun, eq.From), To: DoApp(fun, eq.To)}
		//
		return &value.Neutral{Type: datatype, Ne: &value.NeCong{
			Target: p.Ne,
			Result: result,
			Fun:    value.TypedValue{Type: arrow("x", eq.Type, result), Value: fun},
		}}
	default:
		panic(fmt.Sprintf("cong on %T", p))
	}
}

// DoSymm swaps the sides of an equality.
func DoSymm(target value.Value) value.Value {
	switch p := value.Now(target).(type) {
	case *value.Same:
		return p
	case *value.Neutral:
		eq := asEqual(p.Type)
		datatype := &value.Equal{Type: eq.Type, From: eq.To, To: eq.From}
		//
		return &value.Neutral{Type: datatype, Ne: &value.NeSymm{Target: p.Ne}}
	default:
		panic(fmt.Sprintf("symm on %T", p))
	}
}

// DoIndEqual performs induction over an equality proof.
func DoIndEqual(target, motive, base value.Value) value.Value {
	switch p := value.Now(target).(type) {
	case *value.Same:
		return base
	case *value.Neutral:
		eq := asEqual(p.Type)
		//
		return &value.Neutral{Type: DoApp(DoApp(motive, eq.To), p), Ne: &value.NeIndEqual{
			Target: p.Ne,
			Motive: value.TypedValue{Type: IndEqualMotiveType(eq.Type, eq.From), Value: motive},
			Base:   value.TypedValue{Type: DoApp(DoApp(motive, eq.From), &value.Same{Value: eq.From}), Value: base},
		}}
	default:
		panic(fmt.Sprintf("ind-= on %T", p))
	}
}

// IndEqualMotiveType constructs the type of the motive of ind-= for an
// equality starting at a given value, i.e. (Π ((to A)) (→ (= A from to) U)).
func IndEqualMotiveType(datatype, from value.Value) value.Value {
	return &value.Pi{ArgName: "to", ArgType: datatype, Result: value.HigherOrderClosure{Fn: func(to value.Value) value.Value {
		return arrow("p", &value.Equal{Type: datatype, From: from, To: to}, &value.Universe{})
	}}}
}

// DoIndEither eliminates a sum.
func DoIndEither(target, motive, left, right value.Value) value.Value {
	switch p := value.Now(target).(type) {
	case *value.Left:
		return DoApp(left, p.Value)
	case *value.Right:
		return DoApp(right, p.Value)
	case *value.Neutral:
		either := asEither(p.Type)
		//
		return &value.Neutral{Type: DoApp(motive, p), Ne: &value.NeIndEither{
			Target: p.Ne,
			Motive: value.TypedValue{Type: arrow("x", either, &value.Universe{}), Value: motive},
			Left:   value.TypedValue{Type: IndEitherMethodType(either.Left, motive, true), Value: left},
			Right:  value.TypedValue{Type: IndEitherMethodType(either.Right, motive, false), Value: right},
		}}
	default:
		panic(fmt.Sprintf("ind-Either on %T", p))
	}
}

// IndEitherMethodType constructs the type of the left (or right) method of
// ind-Either.
func IndEitherMethodType(datatype, motive value.Value, left bool) value.Value {
	return &value.Pi{ArgName: "x", ArgType: datatype, Result: value.HigherOrderClosure{Fn: func(x value.Value) value.Value {
		if left {
			return DoApp(motive, &value.Left{Value: x})
		}
		//
		return DoApp(motive, &value.Right{Value: x})
	}}}
}

// ============================================================================
// Helpers
// ============================================================================

// arrow constructs a non-dependent function type.
func arrow(name string, from value.Value, to value.Value) value.Value {
	return &value.Pi{ArgName: name, ArgType: from, Result: value.Constant(to)}
}

func predecessor(n value.Value) value.Value {
	if m, ok := value.Now(n).(*value.Add1); ok {
		return m.Smaller
	}
	//
	panic(fmt.Sprintf("expected successor, found %T", n))
}

func asPi(v value.Value) *value.Pi {
	if t, ok := value.Now(v).(*value.Pi); ok {
		return t
	}
	//
	panic(fmt.Sprintf("expected Π type, found %T", v))
}

func asSigma(v value.Value) *value.Sigma {
	if t, ok := value.Now(v).(*value.Sigma); ok {
		return t
	}
	//
	panic(fmt.Sprintf("expected Σ type, found %T", v))
}

func asList(v value.Value) *value.List {
	if t, ok := value.Now(v).(*value.List); ok {
		return t
	}
	//
	panic(fmt.Sprintf("expected List type, found %T", v))
}

func asVec(v value.Value) *value.Vec {
	if t, ok := value.Now(v).(*value.Vec); ok {
		return t
	}
	//
	panic(fmt.Sprintf("expected Vec type, found %T", v))
}

func asEqual(v value.Value) *value.Equal {
	if t, ok := value.Now(v).(*value.Equal); ok {
		return t
	}
	//
	panic(fmt.Sprintf("expected = type, found %T", v))
}

func asEither(v value.Value) *value.Either {
	if t, ok := value.Now(v).(*value.Either); ok {
		return t
	}
	//
	panic(fmt.Sprintf("expected Either type, found %T", v))
}

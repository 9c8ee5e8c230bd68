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
package tactic

import (
	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Each elimination tactic emits one pending goal per method of the eliminator,
// and assembles the eliminator itself once they are solved.

func (p *ProofState) eliminateNat(goal Goal, t *EliminateNat) *source.Stop {
	target, datatype, stop := p.target(goal, t, t.Target)
	if stop != nil {
		return stop
	} else if _, ok := value.Now(datatype).(*value.Nat); !ok {
		return p.eliminee(goal, t, "Nat", datatype)
	}
	//
	motive, mv, stop := p.motive(goal, t, t.Motive, arrow(&value.Nat{}, &value.Universe{}),
		[]core.Core{target}, []value.Value{eval.Evaluate(goal.Context, target)})
	if stop != nil {
		return stop
	}
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.IndNat{Target: target, Motive: motive, Base: terms[0], Step: terms[1]}
	}, goal.child(eval.DoApp(mv, &value.Zero{})), goal.child(eval.IndNatStepType(mv)))
	//
	return nil
}

func (p *ProofState) eliminateList(goal Goal, t *EliminateList) *source.Stop {
	target, datatype, stop := p.target(goal, t, t.Target)
	if stop != nil {
		return stop
	}
	//
	list, ok := value.Now(datatype).(*value.List)
	if !ok {
		return p.eliminee(goal, t, "List", datatype)
	}
	//
	motive, mv, stop := p.motive(goal, t, t.Motive, arrow(list, &value.Universe{}),
		[]core.Core{target}, []value.Value{eval.Evaluate(goal.Context, target)})
	if stop != nil {
		return stop
	}
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.IndList{Target: target, Motive: motive, Base: terms[0], Step: terms[1]}
	}, goal.child(eval.DoApp(mv, &value.Nil{})), goal.child(eval.IndListStepType(list.Entry, mv)))
	//
	return nil
}

func (p *ProofState) eliminateVec(goal Goal, t *EliminateVec) *source.Stop {
	target, datatype, stop := p.target(goal, t, t.Target)
	if stop != nil {
		return stop
	}
	//
	vec, ok := value.Now(datatype).(*value.Vec)
	if !ok {
		return p.eliminee(goal, t, "Vec", datatype)
	}
	//
	length := eval.ReadBack(goal.Context, &value.Nat{}, vec.Length)
	motive, mv, stop := p.motive(goal, t, t.Motive, eval.IndVecMotiveType(vec.Entry),
		[]core.Core{length, target}, []value.Value{vec.Length, eval.Evaluate(goal.Context, target)})
	//
	if stop != nil {
		return stop
	}
	//
	base := eval.DoApp(eval.DoApp(mv, &value.Zero{}), &value.VecNil{})
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.IndVec{Length: length, Target: target, Motive: motive, Base: terms[0], Step: terms[1]}
	}, goal.child(base), goal.child(eval.IndVecStepType(vec.Entry, mv)))
	//
	return nil
}

func (p *ProofState) eliminateEqual(goal Goal, t *EliminateEqual) *source.Stop {
	target, datatype, stop := p.target(goal, t, t.Target)
	if stop != nil {
		return stop
	}
	//
	eq, ok := value.Now(datatype).(*value.Equal)
	if !ok {
		return p.eliminee(goal, t, "=", datatype)
	}
	//
	to := eval.ReadBack(goal.Context, eq.Type, eq.To)
	motive, mv, stop := p.motive(goal, t, t.Motive, eval.IndEqualMotiveType(eq.Type, eq.From),
		[]core.Core{to, target}, []value.Value{eq.To, eval.Evaluate(goal.Context, target)})
	//
	if stop != nil {
		return stop
	}
	//
	base := eval.DoApp(eval.DoApp(mv, eq.From), &value.Same{Value: eq.From})
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.IndEqual{Target: target, Motive: motive, Base: terms[0]}
	}, goal.child(base))
	//
	return nil
}

func (p *ProofState) eliminateEither(goal Goal, t *EliminateEither) *source.Stop {
	target, datatype, stop := p.target(goal, t, t.Target)
	if stop != nil {
		return stop
	}
	//
	either, ok := value.Now(datatype).(*value.Either)
	if !ok {
		return p.eliminee(goal, t, "Either", datatype)
	}
	//
	motive, mv, stop := p.motive(goal, t, t.Motive, arrow(either, &value.Universe{}),
		[]core.Core{target}, []value.Value{eval.Evaluate(goal.Context, target)})
	if stop != nil {
		return stop
	}
	//
	left := eval.IndEitherMethodType(either.Left, mv, true)
	right := eval.IndEitherMethodType(either.Right, mv, false)
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.IndEither{Target: target, Motive: motive, Left: terms[0], Right: terms[1]}
	}, goal.child(left), goal.child(right))
	//
	return nil
}

// Absurd has no constructors, so the goal is solved outright.  The motive of
// ind-Absurd is a type rather than a function.
func (p *ProofState) eliminateAbsurd(goal Goal, t *EliminateAbsurd) *source.Stop {
	target, datatype, stop := p.target(goal, t, t.Target)
	if stop != nil {
		return stop
	} else if _, ok := value.Now(datatype).(*value.Absurd); !ok {
		return p.eliminee(goal, t, "Absurd", datatype)
	}
	//
	motive := eval.ReadBackType(goal.Context, goal.Type)
	//
	if t.Motive != nil {
		if motive, stop = p.checker.IsType(goal.Context, goal.Renaming, t.Motive); stop != nil {
			return stop
		} else if stop = eval.SameType(goal.Context, t.Motive.Loc(), goal.Type,
			eval.Evaluate(goal.Context, motive)); stop != nil {
			return stop
		}
	}
	//
	p.refine(func([]core.Core) core.Core {
		return &core.IndAbsurd{Target: target, Motive: motive}
	})
	//
	return nil
}

// Synthesize the target of an elimination, returning its type.
func (p *ProofState) target(goal Goal, t Tactic, target ast.Source) (core.Core, value.Value, *source.Stop) {
	if target == nil {
		return nil, nil, source.Stopf(t.Loc(), "%s requires a target", t.Name())
	}
	//
	the, stop := p.checker.Synth(goal.Context, goal.Renaming, target)
	if stop != nil {
		return nil, nil, stop
	}
	//
	return the.Expr, eval.Evaluate(goal.Context, the.Type), nil
}

func (p *ProofState) eliminee(goal Goal, t Tactic, required string, datatype value.Value) *source.Stop {
	return source.Stopf(t.Loc(), "%s requires a target of type %s, but was given a %s", t.Name(), required,
		core.String(eval.ReadBackType(goal.Context, datatype)))
}

// Determine the motive of an elimination, either by checking the one given or
// by abstracting the goal over the targets (i.e. the indices followed by the
// eliminee itself).  Either way, the goal must be the motive's conclusion for
// the targets.
func (p *ProofState) motive(goal Goal, t Tactic, given ast.Source, motiveType value.Value, targets []core.Core,
	values []value.Value) (core.Core, value.Value, *source.Stop) {
	var motive core.Core
	//
	if given != nil {
		m, stop := p.checker.Check(goal.Context, goal.Renaming, given, motiveType)
		if stop != nil {
			return nil, nil, stop
		}
		//
		motive = m
	} else if m, ok := abstract(goal, targets); ok {
		motive = m
	} else {
		return nil, nil, source.Stopf(t.Loc(), "%s cannot determine a motive for this goal; supply one explicitly",
			t.Name())
	}
	//
	mv := eval.Evaluate(goal.Context, motive)
	conclusion := mv
	//
	for _, v := range values {
		conclusion = eval.DoApp(conclusion, v)
	}
	//
	if stop := eval.SameType(goal.Context, t.Loc(), goal.Type, conclusion); stop != nil {
		return nil, nil, stop
	}
	//
	return motive, mv, nil
}

// Abstract a goal over a number of targets.  This is only possible when every
// target is a variable, or when the goal mentions none of them.
func abstract(goal Goal, targets []core.Core) (core.Core, bool) {
	var (
		body  = eval.ReadBackType(goal.Context, goal.Type)
		names = make([]string, len(targets))
		vars  = true
	)
	//
	for i, target := range targets {
		if v, ok := target.(*core.Var); ok {
			names[i] = v.Name
		} else {
			vars = false
		}
	}
	//
	if !vars {
		for i, target := range targets {
			if mentions(body, target) {
				return nil, false
			}
			//
			names[i] = env.Fresh(goal.Context, "x")
		}
	}
	//
	for i := len(names) - 1; i >= 0; i-- {
		body = &core.Lambda{Name: names[i], Body: body}
	}
	//
	return body, true
}

// Determine whether a term contains a given subterm.
func mentions(term core.Core, sub core.Core) bool {
	if core.AlphaEquivalent(term, sub) {
		return true
	}
	//
	switch t := term.(type) {
	case *core.Pi:
		return mentions(t.Arg, sub) || mentions(t.Result, sub)
	case *core.Sigma:
		return mentions(t.Car, sub) || mentions(t.Cdr, sub)
	case *core.Lambda:
		return mentions(t.Body, sub)
	}
	//
	children, _ := core.Children(term)
	for _, child := range children {
		if mentions(child, sub) {
			return true
		}
	}
	//
	return false
}

func (p Goal) child(datatype value.Value) Goal {
	return Goal{Type: datatype, Context: p.Context, Renaming: p.Renaming}
}

func arrow(from value.Value, to value.Value) value.Value {
	return &value.Pi{ArgName: "x", ArgType: from, Result: value.Constant(to)}
}

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
	"testing"

	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Intro
// ============================================================================

func Test_Intro_01(t *testing.T) {
	// (Π ((n Nat)) Nat)
	state := initialize(pi("n", &value.Nat{}, &value.Nat{}))
	next := run(t, state, &Intro{})
	//
	require.Len(t, next.OpenGoals(), 1)
	goal, ok := next.Focus()
	require.True(t, ok)
	assert.IsType(t, &value.Nat{}, value.Now(goal.Type))
	//
	datatype, ok := goal.Context.VarType("n")
	require.True(t, ok)
	assert.IsType(t, &value.Nat{}, value.Now(datatype))
	// The root now has exactly one child.
	assert.Len(t, next.Node(0).Children, 1)
}

func Test_Intro_02(t *testing.T) {
	state := initialize(&value.Nat{})
	_, stop := state.Apply(&Intro{})
	//
	require.NotNil(t, stop)
	assert.Contains(t, stop.Message, "intro requires a Π type")
	// The original state is unaffected.
	assert.Len(t, state.Node(0).Children, 0)
	assert.False(t, state.IsComplete())
}

func Test_Intro_03(t *testing.T) {
	state := initialize(pi("n", &value.Nat{}, &value.Nat{}))
	next := run(t, state, &Intro{Binder: "m"})
	next = run(t, next, &Exact{Term: &ast.Add1{N: variable("m")}})
	//
	require.True(t, next.IsComplete())
	checkAlpha(t, lambda("k", &core.Add1{N: &core.Var{Name: "k"}}), next.Term())
}

// ============================================================================
// Exact
// ============================================================================

func Test_Exact_01(t *testing.T) {
	state := initialize(&value.Nat{})
	next := run(t, state, &Exact{Term: &ast.NatLiteral{Value: 1}})
	//
	assert.True(t, next.IsComplete())
	assert.False(t, state.IsComplete())
	checkAlpha(t, &core.Add1{N: &core.Zero{}}, next.Term())
	//
	_, ok := next.Focus()
	assert.False(t, ok)
}

func Test_Exact_02(t *testing.T) {
	state := initialize(&value.Atom{})
	_, stop := state.Apply(&Exact{Term: &ast.Zero{}})
	//
	require.NotNil(t, stop)
}

func Test_Exact_03(t *testing.T) {
	state := run(t, initialize(&value.Nat{}), &Exact{Term: &ast.Zero{}})
	_, stop := state.Apply(&Exact{Term: &ast.Zero{}})
	//
	require.NotNil(t, stop)
	assert.Contains(t, stop.Message, "No goals remain")
}

// ============================================================================
// Elimination
// ============================================================================

func Test_EliminateNat_01(t *testing.T) {
	state := initialize(pi("n", &value.Nat{}, &value.Nat{}))
	state = run(t, state, &Intro{})
	state = run(t, state, &EliminateNat{Target: variable("n")})
	// Exactly two pending goals: the base and the step.
	goals := state.OpenGoals()
	require.Len(t, goals, 2)
	assert.Len(t, state.Node(1).Children, 2)
	assert.IsType(t, &value.Nat{}, value.Now(goals[0].Type))
	assert.IsType(t, &value.Pi{}, value.Now(goals[1].Type))
	//
	state = run(t, state, &Then{Tactics: []Tactic{&Exact{Term: &ast.Zero{}}}})
	require.False(t, state.IsComplete())
	state = run(t, state, &Then{Tactics: []Tactic{
		&Exact{Term: &ast.Lambda{Binders: binders("k", "ih"), Body: &ast.Add1{N: variable("ih")}}},
	}})
	//
	require.True(t, state.IsComplete())
	require.NotNil(t, state.Root().Term)
	// The proof doubles as the identity on natural numbers.
	fun := eval.Evaluate(env.Context{}, state.Term())
	result := eval.ReadBack(env.Context{}, &value.Nat{}, eval.DoApp(fun, natValue(3)))
	checkAlpha(t, nat(3), result)
}

func Test_EliminateNat_02(t *testing.T) {
	state := initialize(&value.Nat{})
	_, stop := state.Apply(&EliminateNat{Target: &ast.Quote{Symbol: "a"}})
	//
	require.NotNil(t, stop)
	assert.Contains(t, stop.Message, "requires a target of type Nat")
}

func Test_EliminateNat_03(t *testing.T) {
	// The goal does not mention the target, so a constant motive suffices.
	state := initialize(&value.Atom{})
	state = run(t, state, &EliminateNat{Target: &ast.NatLiteral{Value: 2}})
	state = run(t, state, &Then{Tactics: []Tactic{&Exact{Term: &ast.Quote{Symbol: "zero"}}}})
	state = run(t, state, &Then{Tactics: []Tactic{
		&Intro{}, &Intro{}, &Exact{Term: &ast.Quote{Symbol: "more"}},
	}})
	//
	require.True(t, state.IsComplete())
	result := eval.ReadBack(env.Context{}, &value.Atom{}, eval.Evaluate(env.Context{}, state.Term()))
	checkAlpha(t, &core.Quote{Symbol: "more"}, result)
}

func Test_EliminateList_01(t *testing.T) {
	// (Π ((xs (List Atom))) Nat), computing the length.
	state := initialize(pi("xs", &value.List{Entry: &value.Atom{}}, &value.Nat{}))
	state = run(t, state, &Intro{})
	state = run(t, state, &EliminateList{Target: variable("xs")})
	require.Len(t, state.OpenGoals(), 2)
	state = run(t, state, &Then{Tactics: []Tactic{&Exact{Term: &ast.Zero{}}}})
	state = run(t, state, &Then{Tactics: []Tactic{
		&Exact{Term: &ast.Lambda{Binders: binders("e", "es", "n"), Body: &ast.Add1{N: variable("n")}}},
	}})
	//
	require.True(t, state.IsComplete())
}

func Test_EliminateAbsurd_01(t *testing.T) {
	state := initialize(pi("x", &value.Absurd{}, &value.Nat{}))
	state = run(t, state, &Intro{})
	state = run(t, state, &EliminateAbsurd{Target: variable("x")})
	//
	require.True(t, state.IsComplete())
	body := state.Term().(*core.Lambda).Body
	assert.IsType(t, &core.IndAbsurd{}, body, spew.Sdump(body))
}

func Test_EliminateEither_01(t *testing.T) {
	// (Π ((e (Either Nat Nat))) Nat)
	either := &value.Either{Left: &value.Nat{}, Right: &value.Nat{}}
	state := initialize(pi("e", either, &value.Nat{}))
	state = run(t, state, &Intro{})
	state = run(t, state, &EliminateEither{Target: variable("e")})
	require.Len(t, state.OpenGoals(), 2)
	state = run(t, state, &Then{Tactics: []Tactic{&Intro{Binder: "l"}, &Exact{Term: variable("l")}}})
	state = run(t, state, &Then{Tactics: []Tactic{&Intro{Binder: "r"}, &Exact{Term: &ast.Add1{N: variable("r")}}}})
	//
	require.True(t, state.IsComplete())
}

// ============================================================================
// Pairs and sums
// ============================================================================

func Test_Split_01(t *testing.T) {
	state := initialize(reflexive())
	state = run(t, state, &Split{})
	require.Len(t, state.OpenGoals(), 2)
	// The second component is solved for an opaque first component.
	state = run(t, state, &Then{Tactics: []Tactic{&Exact{Term: &ast.Zero{}}}})
	state = run(t, state, &Then{Tactics: []Tactic{&Exact{Term: &ast.Same{Expr: variable("n")}}}})
	//
	require.True(t, state.IsComplete())
	pair := eval.Evaluate(env.Context{}, state.Term())
	checkAlpha(t, &core.Zero{}, eval.ReadBack(env.Context{}, &value.Nat{}, eval.DoCar(pair)))
}

func Test_Exists_01(t *testing.T) {
	state := initialize(reflexive())
	state = run(t, state, &Exists{Value: &ast.NatLiteral{Value: 2}})
	// There is no goal for the first component.
	goals := state.OpenGoals()
	require.Len(t, goals, 1)
	checkAlpha(t, &core.Equal{Type: &core.Nat{}, From: nat(2), To: nat(2)},
		eval.ReadBackType(goals[0].Context, goals[0].Type))
	//
	state = run(t, state, &Exact{Term: &ast.Same{Expr: &ast.NatLiteral{Value: 2}}})
	require.True(t, state.IsComplete())
}

func Test_Exists_02(t *testing.T) {
	state := initialize(reflexive())
	state = run(t, state, &Exists{Value: &ast.NatLiteral{Value: 2}, Binder: "two"})
	state = run(t, state, &Exact{Term: &ast.Same{Expr: variable("two")}})
	//
	require.True(t, state.IsComplete())
	pair := eval.Evaluate(env.Context{}, state.Term())
	checkAlpha(t, nat(2), eval.ReadBack(env.Context{}, &value.Nat{}, eval.DoCar(pair)))
}

func Test_Left_01(t *testing.T) {
	state := initialize(&value.Either{Left: &value.Nat{}, Right: &value.Atom{}})
	next := run(t, state, &Right{})
	next = run(t, next, &Exact{Term: &ast.Quote{Symbol: "b"}})
	//
	require.True(t, next.IsComplete())
	checkAlpha(t, &core.Right{Expr: &core.Quote{Symbol: "b"}}, next.Term())
	//
	_, stop := state.Apply(&Left{})
	require.Nil(t, stop)
	_, stop = initialize(&value.Nat{}).Apply(&Left{})
	require.NotNil(t, stop)
}

func Test_Apply_01(t *testing.T) {
	// (Π ((f (→ Atom Nat))) Nat)
	state := initialize(pi("f", pi("a", &value.Atom{}, &value.Nat{}), &value.Nat{}))
	state = run(t, state, &Intro{})
	state = run(t, state, &Apply{Fun: variable("f")})
	//
	goal, ok := state.Focus()
	require.True(t, ok)
	assert.IsType(t, &value.Atom{}, value.Now(goal.Type))
	//
	state = run(t, state, &Exact{Term: &ast.Quote{Symbol: "a"}})
	require.True(t, state.IsComplete())
	checkAlpha(t, lambda("g", &core.App{Fun: &core.Var{Name: "g"}, Arg: &core.Quote{Symbol: "a"}}), state.Term())
}

func Test_Apply_02(t *testing.T) {
	state := initialize(pi("f", pi("a", &value.Atom{}, &value.Atom{}), &value.Nat{}))
	state = run(t, state, &Intro{})
	_, stop := state.Apply(&Apply{Fun: variable("f")})
	//
	require.NotNil(t, stop)
}

// ============================================================================
// Navigation and history
// ============================================================================

func Test_Then_01(t *testing.T) {
	_, stop := initialize(&value.Nat{}).Apply(&Then{Tactics: []Tactic{&Exact{Term: &ast.Zero{}}}})
	//
	require.NotNil(t, stop)
	assert.Contains(t, stop.Message, "pending branch")
}

func Test_Then_02(t *testing.T) {
	// A failing tactic within then discards the whole step.
	state := run(t, initialize(reflexive()), &Split{})
	_, stop := state.Apply(&Then{Tactics: []Tactic{&Exact{Term: &ast.Zero{}}, &Intro{}}})
	//
	require.NotNil(t, stop)
	assert.Len(t, state.OpenGoals(), 2)
}

func Test_Navigation_01(t *testing.T) {
	state := run(t, initialize(reflexive()), &Split{})
	first, _ := state.Focus()
	//
	next := state.NextGoal()
	second, _ := next.Focus()
	assert.NotEqual(t, first.ID, second.ID)
	//
	wrapped, _ := next.NextGoal().Focus()
	assert.Equal(t, first.ID, wrapped.ID)
	//
	previous, _ := state.PreviousGoal().Focus()
	assert.Equal(t, second.ID, previous.ID)
	// Navigation does not change the logical state.
	assert.Len(t, next.OpenGoals(), 2)
}

func Test_Undo_01(t *testing.T) {
	state := initialize(pi("n", &value.Nat{}, &value.Nat{}))
	next := run(t, state, &Intro{})
	//
	previous, ok := next.Undo()
	require.True(t, ok)
	assert.Same(t, state, previous)
	//
	_, ok = state.Undo()
	assert.False(t, ok)
}

func Test_Session_01(t *testing.T) {
	session := NewSession("test", initialize(pi("n", &value.Nat{}, &value.Nat{})))
	//
	require.Nil(t, session.Run(&Intro{}))
	require.NotNil(t, session.Run(&Intro{}))
	require.True(t, session.Undo())
	assert.Len(t, session.State().Node(0).Children, 0)
	require.True(t, session.Redo())
	assert.False(t, session.Redo())
	require.Nil(t, session.Run(&Exact{Term: variable("n")}))
	//
	assert.True(t, session.State().IsComplete())
}

// ============================================================================
// Helpers
// ============================================================================

func initialize(theorem value.Value) *ProofState {
	return Initialize(check.NewChecker(), env.Context{}, theorem)
}

func run(t *testing.T, state *ProofState, tactic Tactic) *ProofState {
	t.Helper()
	//
	next, stop := state.Apply(tactic)
	require.Nil(t, stop, "%s failed: %v", tactic.Name(), stop)
	//
	return next
}

func pi(name string, from value.Value, to value.Value) value.Value {
	return &value.Pi{ArgName: name, ArgType: from, Result: value.Constant(to)}
}

// (Σ ((n Nat)) (= Nat n n))
func reflexive() value.Value {
	return &value.Sigma{CarName: "n", CarType: &value.Nat{}, CdrType: value.HigherOrderClosure{
		Fn: func(n value.Value) value.Value {
			return &value.Equal{Type: &value.Nat{}, From: n, To: n}
		}}}
}

func variable(name string) ast.Source {
	return &ast.Var{Name: name}
}

func binders(names ...string) []ast.SiteBinder {
	result := make([]ast.SiteBinder, len(names))
	//
	for i, n := range names {
		result[i] = ast.SiteBinder{Name: n}
	}
	//
	return result
}

func lambda(name string, body core.Core) core.Core {
	return &core.Lambda{Name: name, Body: body}
}

func nat(n uint) core.Core {
	var term core.Core = &core.Zero{}
	//
	for ; n > 0; n-- {
		term = &core.Add1{N: term}
	}
	//
	return term
}

func natValue(n uint) value.Value {
	return eval.Evaluate(env.Context{}, nat(n))
}

func checkAlpha(t *testing.T, expected core.Core, actual core.Core) {
	t.Helper()
	//
	if !core.AlphaEquivalent(expected, actual) {
		t.Errorf("expected %s, got %s\n%s", core.String(expected), core.String(actual), spew.Sdump(actual))
	}
}

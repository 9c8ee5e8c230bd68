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
package check_test

import (
	"context"
	"testing"

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Check
// ============================================================================

func Test_Check_01(t *testing.T) {
	var (
		checker = check.NewChecker()
		ctx     env.Context
	)
	//
	term, stop := checker.Check(ctx, env.Renaming{}, parse(t, "(add1 (add1 zero))"), &value.Nat{})
	require.Nil(t, stop)
	checkAlpha(t, &core.Add1{N: &core.Add1{N: &core.Zero{}}}, term)
	//
	expected := &value.Add1{Smaller: &value.Add1{Smaller: &value.Zero{}}}
	assert.Equal(t, expected, value.Now(eval.Evaluate(ctx, term)))
}

func Test_Check_02(t *testing.T) {
	checker := check.NewChecker()
	_, stop := checker.Check(env.Context{}, env.Renaming{}, parse(t, "(add1 (add1 zero))"), &value.Atom{})
	//
	require.NotNil(t, stop)
	assert.Equal(t, "Expected Atom but given Nat", stop.Message)
	assert.Equal(t, 1, stop.Where.StartLine)
	assert.Equal(t, 1, stop.Where.StartColumn)
}

func Test_Check_03(t *testing.T) {
	checker := check.NewChecker()
	// λ against something other than a Π type
	_, stop := checker.Check(env.Context{}, env.Renaming{}, parse(t, "(λ (x) x)"), &value.Nat{})
	//
	require.NotNil(t, stop)
	assert.Contains(t, stop.Message, "λ requires a Π type")
}

func Test_Check_04(t *testing.T) {
	var (
		checker = check.NewChecker()
		ctx     = env.Context{}.BindFree("x", &value.Nat{})
		nat2nat = &value.Pi{ArgName: "y", ArgType: &value.Nat{}, Result: value.Constant(&value.Nat{})}
	)
	// The binder is renamed away from the x already in scope.
	term, stop := checker.Check(ctx, env.Renaming{}, parse(t, "(λ (x) x)"), nat2nat)
	require.Nil(t, stop)
	//
	lambda, ok := term.(*core.Lambda)
	require.True(t, ok)
	assert.Equal(t, "x₁", lambda.Name)
	assert.Equal(t, &core.Var{Name: "x₁"}, lambda.Body)
}

func Test_Check_05(t *testing.T) {
	checker := check.NewChecker()
	// (the (Pair Nat Atom) (cons 1 'a))
	term, stop := checker.Check(env.Context{}, env.Renaming{}, parse(t, "(cons 1 'a)"), &value.Sigma{
		CarName: "x",
		CarType: &value.Nat{},
		CdrType: value.Constant(&value.Atom{}),
	})
	//
	require.Nil(t, stop)
	checkAlpha(t, &core.Cons{Car: &core.Add1{N: &core.Zero{}}, Cdr: &core.Quote{Symbol: "a"}}, term)
}

// ============================================================================
// Synth
// ============================================================================

func Test_Synth_01(t *testing.T) {
	checker := check.NewChecker()
	_, stop := checker.Synth(env.Context{}, env.Renaming{}, parse(t, "(λ (x) x)"))
	//
	require.NotNil(t, stop)
	assert.Contains(t, stop.Message, "Can't determine the type of")
}

func Test_Synth_02(t *testing.T) {
	checker := check.NewChecker()
	_, stop := checker.Synth(env.Context{}, env.Renaming{}, parse(t, "foo"))
	//
	require.NotNil(t, stop)
	assert.Equal(t, "Unknown variable foo", stop.Message)
}

func Test_Synth_03(t *testing.T) {
	checker := check.NewChecker()
	the, stop := checker.Synth(env.Context{}, env.Renaming{}, parse(t, "U"))
	//
	require.Nil(t, stop)
	assert.Equal(t, &core.Universe{}, the.Type)
}

func Test_Synth_04(t *testing.T) {
	checker := check.NewChecker()
	the, stop := checker.Synth(env.Context{}, env.Renaming{}, parse(t, "(the (→ Nat Nat) (λ (x) (add1 x)))"))
	//
	require.Nil(t, stop)
	checkAlpha(t, &core.Pi{Name: "x", Arg: &core.Nat{}, Result: &core.Nat{}}, the.Type)
	checkAlpha(t, &core.Lambda{Name: "x", Body: &core.Add1{N: &core.Var{Name: "x"}}}, the.Expr)
}

func Test_Synth_05(t *testing.T) {
	program := declare(t, `(claim five Nat)`)
	_, stop := program.Checker().Synth(program.Context(), env.Renaming{}, parse(t, "five"))
	//
	require.NotNil(t, stop)
	assert.Equal(t, "five is claimed but not yet defined", stop.Message)
}

func Test_Synth_06(t *testing.T) {
	program := declare(t, `
(claim + (→ Nat Nat Nat))
(define + (λ (n m) (iter-Nat n m (λ (k) (add1 k)))))`)
	//
	the, stop := program.Normalize(parse(t, "(+ 2 3)"))
	require.Nil(t, stop)
	assert.Equal(t, "(the Nat 5)", core.String(the))
}

func Test_IsType_01(t *testing.T) {
	checker := check.NewChecker()
	_, stop := checker.IsType(env.Context{}, env.Renaming{}, parse(t, "zero"))
	//
	require.NotNil(t, stop)
}

func Test_IsType_02(t *testing.T) {
	checker := check.NewChecker()
	datatype, stop := checker.IsType(env.Context{}, env.Renaming{}, parse(t, "(Π ((n Nat)) (= Nat n n))"))
	//
	require.Nil(t, stop)
	checkAlpha(t, &core.Pi{Name: "k", Arg: &core.Nat{}, Result: &core.Equal{
		Type: &core.Nat{}, From: &core.Var{Name: "k"}, To: &core.Var{Name: "k"}}}, datatype)
}

// ============================================================================
// Info Hook
// ============================================================================

func Test_InfoHook_01(t *testing.T) {
	var (
		kinds   []check.InfoKind
		hook    = func(_ source.Location, info check.Info) { kinds = append(kinds, info.Kind) }
		checker = check.NewChecker(check.WithInfoHook(hook))
	)
	//
	_, stop := checker.Synth(env.Context{}, env.Renaming{}, parse(t, "(the (→ Nat Nat) (λ (k) k))"))
	require.Nil(t, stop)
	assert.Contains(t, kinds, check.BindingSite)
}

func Test_InfoHook_02(t *testing.T) {
	var (
		holes []check.Info
		hook  = func(_ source.Location, info check.Info) {
			if info.Kind == check.Hole {
				holes = append(holes, info)
			}
		}
		program = pie.NewProgram(pie.DefaultConfig(), check.WithInfoHook(hook))
	)
	//
	process(t, program, `
(claim f (→ Nat Nat))
(define f (λ (n) TODO))`)
	//
	require.Len(t, holes, 1)
	assert.Equal(t, &core.Nat{}, holes[0].Term)
	assert.Equal(t, "n", holes[0].Context[len(holes[0].Context)-1].Name)
	assert.Equal(t, "TODO", check.Hole.String())
}

// ============================================================================
// Holes
// ============================================================================

func Test_Holes_01(t *testing.T) {
	var (
		holes   = check.NewHoleService()
		program = pie.NewProgram(pie.DefaultConfig(), check.WithHoles(holes))
	)
	//
	process(t, program, `
(claim f (→ Nat Nat))
(define f (λ (n) TODO))`)
	//
	require.Equal(t, 1, holes.Len())
	hole := holes.Holes()[0]
	assert.Equal(t, &core.Nat{}, hole.ExpectedType)
	assert.Equal(t, 3, hole.Where.StartLine)
	//
	var names []string
	for _, b := range hole.Context {
		names = append(names, b.Name)
	}
	//
	assert.Equal(t, []string{"f", "n"}, names)
	assert.Equal(t, eval.KindFree, hole.Context[1].Kind)
}

func Test_Holes_02(t *testing.T) {
	var (
		holes   = check.NewHoleService()
		program = pie.NewProgram(pie.DefaultConfig(), check.WithHoles(holes))
	)
	//
	process(t, program, `
(claim f (→ Nat Nat))
(define f (λ (n) TODO))
(claim g Atom)
(define g (add1 TODO))`)
	// The failed definition of g discards its hole.
	require.Equal(t, 1, holes.Len())
	assert.True(t, program.Context().Bound("f"))
	//
	_, isClaim := lookup(program.Context(), "g").(*env.Claim)
	assert.True(t, isClaim)
}

func Test_Holes_03(t *testing.T) {
	var (
		holes   = check.NewHoleService()
		program = pie.NewProgram(pie.DefaultConfig(), check.WithHoles(holes))
	)
	//
	process(t, program, `
(claim f (→ Nat Atom Nat))
(define f (λ (n a) TODO))
(claim g Atom)
(define g TODO)`)
	//
	solver := check.SolverFunc(func(_ context.Context, hole check.HoleInfo) (string, error) {
		if _, ok := hole.ExpectedType.(*core.Atom); ok {
			return "", errors.New("no atoms today")
		}
		//
		return hole.Context[len(hole.Context)-2].Name, nil
	})
	//
	suggestions := holes.Solve(context.Background(), solver)
	require.Len(t, suggestions, 1)
	assert.Equal(t, holes.Holes()[0].ID, suggestions[0].Hole)
	assert.Equal(t, "n", suggestions[0].Term)
}

func Test_Holes_04(t *testing.T) {
	var (
		holes   = check.NewHoleService()
		program = pie.NewProgram(pie.DefaultConfig(), check.WithHoles(holes))
		calls   int
	)
	//
	process(t, program, `
(claim f Nat)
(define f TODO)`)
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	suggestions := holes.Solve(ctx, check.SolverFunc(func(context.Context, check.HoleInfo) (string, error) {
		calls++
		return "zero", nil
	}))
	//
	assert.Empty(t, suggestions)
	assert.Equal(t, 0, calls)
	// Truncation beyond the end is harmless
	holes.Truncate(5)
	assert.Equal(t, 1, holes.Len())
	holes.Truncate(0)
	assert.Equal(t, 0, holes.Len())
}

// ============================================================================
// Helpers
// ============================================================================

func parse(t *testing.T, text string) ast.Source {
	expr, errs := pie.ParseExpression(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	return expr
}

// Construct a program by processing some declarations, all of which must
// succeed.
func declare(t *testing.T, text string) *pie.Program {
	program := pie.NewProgram(pie.DefaultConfig())
	//
	decls, errs := pie.ParseSourceFile(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	_, stop := program.Process(decls)
	require.Nil(t, stop)
	//
	return program
}

// Process declarations one at a time, ignoring those which fail.
func process(t *testing.T, program *pie.Program, text string) {
	decls, errs := pie.ParseSourceFile(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	for _, decl := range decls {
		_, _ = program.Declare(decl)
	}
}

func lookup(ctx env.Context, name string) env.Binder {
	b, _ := ctx.Lookup(name)
	return b
}

func checkAlpha(t *testing.T, expected core.Core, actual core.Core) {
	t.Helper()
	//
	if !core.AlphaEquivalent(expected, actual) {
		t.Errorf("expected %s, got %s", core.String(expected), core.String(actual))
	}
}

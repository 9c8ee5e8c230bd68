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
package pie

import (
	"testing"

	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/tactic"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Expressions
// ============================================================================

func Test_ParseExpression_01(t *testing.T) {
	expr := parseExpression(t, "(λ (x y) x)")
	//
	lambda, ok := expr.(*ast.Lambda)
	require.True(t, ok)
	require.Len(t, lambda.Binders, 2)
	assert.Equal(t, "x", lambda.Binders[0].Name)
	assert.Equal(t, "y", lambda.Binders[1].Name)
	assert.Equal(t, "x", lambda.Body.(*ast.Var).Name)
}

func Test_ParseExpression_02(t *testing.T) {
	expr := parseExpression(t, "(Pi ((n Nat) (m Nat)) (= Nat n m))")
	//
	pi, ok := expr.(*ast.Pi)
	require.True(t, ok)
	require.Len(t, pi.Binders, 2)
	assert.IsType(t, &ast.Nat{}, pi.Binders[1].Type)
	assert.IsType(t, &ast.Equal{}, pi.Body)
}

func Test_ParseExpression_03(t *testing.T) {
	assert.Equal(t, uint64(42), parseExpression(t, "42").(*ast.NatLiteral).Value)
	assert.Equal(t, "abc", parseExpression(t, "'abc").(*ast.Quote).Symbol)
	assert.IsType(t, &ast.Universe{}, parseExpression(t, "U"))
	assert.IsType(t, &ast.TODO{}, parseExpression(t, "TODO"))
	assert.IsType(t, &ast.Arrow{}, parseExpression(t, "(-> Nat Nat Atom)"))
	assert.IsType(t, &ast.Sigma{}, parseExpression(t, "(Σ ((x Nat)) Atom)"))
}

func Test_ParseExpression_04(t *testing.T) {
	expr := parseExpression(t, "(f 1 'a)")
	//
	app, ok := expr.(*ast.App)
	require.True(t, ok)
	assert.Equal(t, "f", app.Fun.(*ast.Var).Name)
	assert.Len(t, app.Args, 2)
}

func Test_ParseExpression_05(t *testing.T) {
	expr := parseExpression(t, "\n  (add1\n    zero)")
	where := expr.Loc()
	//
	assert.Equal(t, 2, where.StartLine)
	assert.Equal(t, 3, where.StartColumn)
	assert.Equal(t, 3, where.EndLine)
}

func Test_ParseExpression_Invalid_01(t *testing.T) {
	checkSyntaxError(t, "(add1 zero zero)", "add1 expects 1 arguments, found 2")
	checkSyntaxError(t, "(f)", "application requires at least one argument")
	checkSyntaxError(t, "'", "empty atom")
	checkSyntaxError(t, "(λ (add1) zero)", "invalid name")
	checkSyntaxError(t, "(→ Nat)", "→ requires at least two types")
	checkSyntaxError(t, "(Π () Nat)", "Π requires at least one binder")
	checkSyntaxError(t, "(λ (x))", "expected 2 arguments, found 1")
}

// ============================================================================
// Declarations
// ============================================================================

func Test_ParseSourceFile_01(t *testing.T) {
	decls := parseSourceFile(t, `
(claim two Nat)
(define two 2)
(check-same Nat two (add1 1))
(data Bool () () (true () Bool) (false () Bool))
(claim id (→ Nat Nat))
(define-tactically id ((intro n) (exact n)))
(add1 two)`)
	//
	require.Len(t, decls, 7)
	assert.IsType(t, &Claim{}, decls[0])
	assert.IsType(t, &Define{}, decls[1])
	assert.IsType(t, &CheckSame{}, decls[2])
	assert.IsType(t, &Data{}, decls[3])
	assert.IsType(t, &DefineTactically{}, decls[5])
	assert.IsType(t, &Expression{}, decls[6])
	//
	data := decls[3].(*Data)
	assert.Equal(t, "Bool", data.Def.Name.Name)
	assert.Equal(t, "elim-Bool", data.Def.EliminatorName())
	assert.Len(t, data.Def.Constructors, 2)
	//
	proof := decls[5].(*DefineTactically)
	require.Len(t, proof.Tactics, 2)
	assert.Equal(t, "n", proof.Tactics[0].(*tactic.Intro).Binder)
}

func Test_ParseSourceFile_02(t *testing.T) {
	decls := parseSourceFile(t, `
(data Less-Than () ((j Nat) (k Nat))
  (zero-smallest ((n Nat)) (Less-Than zero (add1 n)))
  (add1-smaller ((j Nat) (k Nat) (j<k (Less-Than j k))) (Less-Than (add1 j) (add1 k))))`)
	//
	require.Len(t, decls, 1)
	def := decls[0].(*Data).Def
	//
	assert.Empty(t, def.Parameters)
	assert.Len(t, def.Indices, 2)
	assert.Len(t, def.Constructors[1].Arguments, 3)
	assert.Equal(t, "j<k", def.Constructors[1].Arguments[2].Name)
}

func Test_ParseSourceFile_Invalid_01(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("(claim x)\n(define y (add1))"))
	_, errs := ParseSourceFile(srcfile)
	// Both errors are reported
	require.Len(t, errs, 2)
	assert.Equal(t, "expected 2 arguments, found 1", errs[0].Message())
	assert.Equal(t, "add1 expects 1 arguments, found 0", errs[1].Message())
}

func Test_ParseSourceFile_Invalid_02(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("(data Bool () () (true Bool))"))
	_, errs := ParseSourceFile(srcfile)
	//
	require.Len(t, errs, 1)
	assert.Equal(t, "malformed constructor", errs[0].Message())
}

// ============================================================================
// Tactics
// ============================================================================

func Test_ParseTactic_01(t *testing.T) {
	elim, ok := parseTactic(t, "(elim-Nat n)").(*tactic.EliminateNat)
	//
	require.True(t, ok)
	assert.Equal(t, "n", elim.Target.(*ast.Var).Name)
	assert.Nil(t, elim.Motive)
	assert.Equal(t, "elim-Nat", elim.Name())
}

func Test_ParseTactic_02(t *testing.T) {
	then, ok := parseTactic(t, "(then (intro) (exact zero))").(*tactic.Then)
	//
	require.True(t, ok)
	require.Len(t, then.Tactics, 2)
	assert.IsType(t, &tactic.Intro{}, then.Tactics[0])
	assert.IsType(t, &tactic.Exact{}, then.Tactics[1])
}

func Test_ParseTactic_03(t *testing.T) {
	exists, ok := parseTactic(t, "(exists 2 n)").(*tactic.Exists)
	//
	require.True(t, ok)
	assert.Equal(t, "n", exists.Binder)
	assert.IsType(t, &tactic.Split{}, parseTactic(t, "(split)"))
	assert.IsType(t, &tactic.Left{}, parseTactic(t, "(left)"))
	assert.IsType(t, &tactic.Right{}, parseTactic(t, "(right)"))
	assert.IsType(t, &tactic.Apply{}, parseTactic(t, "(apply f)"))
	assert.IsType(t, &tactic.EliminateAbsurd{}, parseTactic(t, "(elim-Absurd x Nat)"))
}

func Test_ParseTactic_Invalid_01(t *testing.T) {
	checkTacticError(t, "(frobnicate)", "unknown tactic frobnicate")
	checkTacticError(t, "(elim-Foo x)", "unknown tactic elim-Foo")
	checkTacticError(t, "(intro a b)", "expected 0 or 1 arguments, found 2")
	checkTacticError(t, "(split x)", "expected 0 arguments, found 1")
	checkTacticError(t, "(exact)", "expected 1 arguments, found 0")
	checkTacticError(t, "intro", "malformed tactic")
}

// ============================================================================
// Helpers
// ============================================================================

func parseExpression(t *testing.T, text string) ast.Source {
	expr, errs := ParseExpression(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	return expr
}

func parseSourceFile(t *testing.T, text string) []Declaration {
	decls, errs := ParseSourceFile(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	return decls
}

func parseTactic(t *testing.T, text string) tactic.Tactic {
	tac, errs := ParseTactic(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	return tac
}

func checkSyntaxError(t *testing.T, text string, msg string) {
	t.Helper()
	//
	_, errs := ParseExpression(source.NewSourceFile("test", []byte(text)))
	if assert.NotEmpty(t, errs, text) {
		assert.Equal(t, msg, errs[0].Message(), text)
	}
}

func checkTacticError(t *testing.T, text string, msg string) {
	t.Helper()
	//
	_, errs := ParseTactic(source.NewSourceFile("test", []byte(text)))
	if assert.NotEmpty(t, errs, text) {
		assert.Equal(t, msg, errs[0].Message(), text)
	}
}

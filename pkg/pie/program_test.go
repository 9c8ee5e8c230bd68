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

	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plus = `
(claim + (→ Nat Nat Nat))
(define + (λ (n m) (iter-Nat n m (λ (k) (add1 k)))))`

func Test_Program_01(t *testing.T) {
	outputs := checkOutputs(t, plus+`
(+ 2 3)
(the Atom 'hello)`, "(the Nat 5)", "(the Atom 'hello)")
	// Outputs record where they came from
	assert.Equal(t, 4, outputs[0].Where.StartLine)
}

func Test_Program_02(t *testing.T) {
	// Definitions without a claim have their type synthesized
	checkOutputs(t, `
(define two (the Nat 2))
(add1 two)`, "(the Nat 3)")
}

func Test_Program_03(t *testing.T) {
	checkOutputs(t, plus+`
(check-same Nat (+ 2 2) 4)
(check-same (→ Nat Nat) (+ 0) (λ (x) x))`)
}

func Test_Program_04(t *testing.T) {
	// The step of rec-Nat sees the smaller number.
	checkOutputs(t, `
(claim pred (→ Nat Nat))
(define pred (λ (n) (rec-Nat n 0 (λ (k pk) k))))
(pred 7)
(pred 0)`, "(the Nat 6)", "(the Nat zero)")
}

func Test_Program_05(t *testing.T) {
	// Normal forms are eta-long
	checkOutputs(t, `
(claim f (Π ((n Nat)) (→ Nat Nat)))
(define f (λ (n) (λ (m) (add1 m))))
f`, "(the (→ Nat Nat Nat) (λ (n m) (add1 m)))")
}

func Test_Program_06(t *testing.T) {
	checkOutputs(t, `
(claim id (→ Nat Nat))
(define-tactically id ((intro n) (exact n)))
(id 4)`, "(the Nat 4)")
}

func Test_Program_07(t *testing.T) {
	// Proof that every number equals itself, by induction.
	checkOutputs(t, `
(claim refl (Π ((n Nat)) (= Nat n n)))
(define-tactically refl
  ((intro n)
   (elim-Nat n)
   (then (exact (same zero)))
   (then (intro k) (intro ih) (exact (same (add1 k))))))
(refl 2)`, "(the (= Nat 2 2) (same 2))")
}

// ============================================================================
// Failures
// ============================================================================

func Test_Program_Invalid_01(t *testing.T) {
	checkFailure(t, `
(claim x Nat)
(claim x Atom)`, 3, "The name x is already in use")
}

func Test_Program_Invalid_02(t *testing.T) {
	checkFailure(t, `
(define x 1)
(define x 2)`, 3, "The name x is already in use")
}

func Test_Program_Invalid_03(t *testing.T) {
	checkFailure(t, `(check-same Nat 1 2)`, 1, "The expressions 1 and 2 are not the same Nat")
}

func Test_Program_Invalid_04(t *testing.T) {
	checkFailure(t, `
(claim f (→ Nat Nat))
(define-tactically f ((intro n)))`, 3, "Proof of f is incomplete: 1 goals remain")
}

func Test_Program_Invalid_05(t *testing.T) {
	checkFailure(t, `(define-tactically f ((intro n)))`, 1, "f must be claimed before it is defined")
}

func Test_Program_Invalid_06(t *testing.T) {
	checkFailure(t, `
(define x 1)
(define-tactically x ((exact 1)))`, 3, "The name x is already defined")
}

func Test_Program_Invalid_07(t *testing.T) {
	checkFailure(t, `
(claim x Nat)
(add1 x)`, 3, "x is claimed but not yet defined")
}

func Test_Program_Invalid_08(t *testing.T) {
	// Processing stops at the first failure
	program := NewProgram(DefaultConfig())
	decls := parseSourceFile(t, `
(the Nat 1)
(the Nat 'a)
(the Nat 2)`)
	//
	outputs, stop := program.Process(decls)
	require.NotNil(t, stop)
	assert.Len(t, outputs, 1)
	assert.Equal(t, "Expected Nat but given Atom", stop.Message)
}

func Test_Program_Invalid_09(t *testing.T) {
	// A failed declaration leaves the program unchanged
	program := NewProgram(DefaultConfig())
	_, stop := program.Process(parseSourceFile(t, `(claim x Nat)`))
	require.Nil(t, stop)
	//
	before := program.Context()
	_, stop = program.Process(parseSourceFile(t, `(define x 'a)`))
	//
	require.NotNil(t, stop)
	assert.Equal(t, before.Len(), program.Context().Len())
	//
	b, _ := program.Context().Lookup("x")
	assert.IsType(t, &env.Claim{}, b)
}

// ============================================================================
// Proving
// ============================================================================

func Test_Prove_01(t *testing.T) {
	program := NewProgram(DefaultConfig(), check.WithHoles(check.NewHoleService()))
	_, stop := program.Process(parseSourceFile(t, `(claim id (→ Atom Atom))`))
	require.Nil(t, stop)
	//
	state, stop := program.Prove("id", source.NoLocation)
	require.Nil(t, stop)
	assert.Len(t, state.OpenGoals(), 1)
	//
	goal, ok := state.Focus()
	require.True(t, ok)
	assert.Equal(t, "  ⊢ (→ Atom Atom)", goal.String())
}

func Test_Prove_02(t *testing.T) {
	program := NewProgram(DefaultConfig())
	_, stop := program.Prove("nothing", source.NoLocation)
	//
	require.NotNil(t, stop)
	assert.Equal(t, "nothing must be claimed before it is defined", stop.Message)
}

// ============================================================================
// Helpers
// ============================================================================

// Process some declarations which should all succeed, checking the printed
// form of what they output.
func checkOutputs(t *testing.T, text string, expected ...string) []Output {
	t.Helper()
	//
	program := NewProgram(DefaultConfig())
	outputs, stop := program.Process(parseSourceFile(t, text))
	//
	require.Nil(t, stop)
	require.Len(t, outputs, len(expected))
	//
	for i, output := range outputs {
		assert.Equal(t, expected[i], core.String(output.Term))
	}
	//
	return outputs
}

func checkFailure(t *testing.T, text string, line int, msg string) {
	t.Helper()
	//
	program := NewProgram(DefaultConfig())
	_, stop := program.Process(parseSourceFile(t, text))
	//
	require.NotNil(t, stop)
	assert.Equal(t, msg, stop.Message)
	assert.Equal(t, line, stop.Where.StartLine)
}

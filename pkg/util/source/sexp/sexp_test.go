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
package sexp

import (
	"reflect"
	"testing"

	"github.com/consensys/go-pie/pkg/util/source"
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestSexp_00(t *testing.T) {
	CheckOk(t, nil, "")
}

func TestSexp_01(t *testing.T) {
	e1 := List{nil}
	CheckOk(t, &e1, "()")
}

func TestSexp_02(t *testing.T) {
	e1 := List{nil}
	e2 := List{[]SExp{&e1}}
	CheckOk(t, &e2, "(())")
}

func TestSexp_03(t *testing.T) {
	e1 := List{nil}
	CheckOk(t, &e1, "[]")
}

func TestSexp_04(t *testing.T) {
	e1 := Symbol{"λ"}
	e2 := Symbol{"x"}
	e3 := List{[]SExp{&e2}}
	e4 := List{[]SExp{&e1, &e3, &e2}}
	CheckOk(t, &e4, "(λ [x] x)")
}

func TestSexp_05(t *testing.T) {
	e1 := Symbol{"'atom"}
	CheckOk(t, &e1, "'atom")
}

func TestSexp_06(t *testing.T) {
	e1 := Symbol{"add1"}
	e2 := Symbol{"zero"}
	e3 := List{[]SExp{&e1, &e2}}
	CheckOk(t, &e3, "; a comment\n(add1 zero) ; another\n")
}

func TestSexp_07(t *testing.T) {
	e1 := Symbol{"vec::"}
	e2 := Symbol{"'a"}
	e3 := Symbol{"vecnil"}
	e4 := List{[]SExp{&e1, &e2, &e3}}
	CheckOk(t, &e4, "(vec:: 'a\n\tvecnil)")
}

func TestSexp_08(t *testing.T) {
	terms := CheckAllOk(t, "(claim x Nat) (define x 1)")
	//
	if len(terms) != 2 {
		t.Errorf("expected 2 terms, got %d", len(terms))
	}
}

func TestSexp_09(t *testing.T) {
	e1 := Symbol{"add1"}
	e2 := Symbol{"zero"}
	e3 := List{[]SExp{&e1, &e2}}
	CheckOk(t, &e3, "#| outer #| inner |# still outer |#\n(#| head |# add1 zero #||#)")
}

func TestSexp_10(t *testing.T) {
	terms := CheckAllOk(t, "(claim x Nat)\n#| (define x 1)\n")
	//
	if len(terms) != 1 {
		t.Errorf("expected 1 term, got %d", len(terms))
	}
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestSexp_Err_01(t *testing.T) {
	CheckErr(t, "(")
}

func TestSexp_Err_02(t *testing.T) {
	CheckErr(t, ")")
}

func TestSexp_Err_03(t *testing.T) {
	CheckErr(t, "(x))")
}

func TestSexp_Err_04(t *testing.T) {
	CheckErr(t, "(x]")
}

func TestSexp_Err_05(t *testing.T) {
	CheckErr(t, "x y")
}

// ============================================================================
// Formatting Tests
// ============================================================================

func TestFormat_01(t *testing.T) {
	formatter := NewFormatter(80)
	formatter.Add(&SFormatter{Head: "λ", Priority: 0})
	//
	CheckFormat(t, formatter, "(λ (x) x)", "(λ (x) x)\n")
}

func TestFormat_02(t *testing.T) {
	formatter := NewFormatter(10)
	formatter.Add(&SFormatter{Head: "λ", Priority: 0})
	//
	CheckFormat(t, formatter, "(λ (x) (add1 x))", "(λ (x)\n  (add1 x))\n")
}

func TestFormat_03(t *testing.T) {
	// λ is one column wide, though two bytes long
	formatter := NewFormatter(9)
	formatter.Add(&SFormatter{Head: "λ", Priority: 0})
	//
	CheckFormat(t, formatter, "(λ (x) x)", "(λ (x) x)\n")
}

func TestFormat_04(t *testing.T) {
	formatter := NewFormatter(12)
	formatter.Add(&IFormatter{Head: "→", Priority: 0})
	//
	CheckFormat(t, formatter, "(→ Nat Nat Atom Atom)", "(→\n  Nat\n  Nat\n  Atom\n  Atom)\n")
}

// ============================================================================
// Helpers
// ============================================================================

func CheckOk(t *testing.T, sexp1 SExp, input string) {
	sexp2, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(sexp1, sexp2) {
		t.Errorf("%v != %v", sexp1, sexp2)
	}
}

func CheckAllOk(t *testing.T, input string) []SExp {
	terms, _, err := ParseAll(source.NewSourceFile("test", []byte(input)))
	//
	if err != nil {
		t.Error(err)
	}
	//
	return terms
}

func CheckErr(t *testing.T, input string) {
	_, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err == nil {
		t.Errorf("input should not have parsed!")
	}
}

func CheckFormat(t *testing.T, formatter *Formatter, input string, expected string) {
	term, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err != nil {
		t.Fatal(err)
	} else if actual := formatter.Format(term); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

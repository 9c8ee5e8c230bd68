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
	"testing"

	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MotiveType_01(t *testing.T) {
	def, ctx := boolean()
	// (→ Bool U)
	actual := ReadBackType(ctx, MotiveType(env.ContextToEnvironment(ctx), def, nil))
	expected := &core.Pi{Name: "target", Arg: &core.InductiveType{Def: def}, Result: &core.Universe{}}
	//
	checkAlpha(t, expected, actual)
}

func Test_MethodType_01(t *testing.T) {
	def, ctx := boolean()
	ctx = bindMotive(ctx, def, nil)
	motive := Evaluate(ctx, v("mot"))
	// (mot true)
	actual := ReadBackType(ctx, MethodType(env.ContextToEnvironment(ctx), def, nil, motive, 0))
	checkAlpha(t, app(v("mot"), &core.Constructor{Def: def, Index: 0}), actual)
}

func Test_MethodType_02(t *testing.T) {
	def, ctx := natural()
	ctx = bindMotive(ctx, def, nil)
	motive := Evaluate(ctx, v("mot"))
	// (Π ((n MyNat)) (→ (mot n) (mot (s n))))
	actual := ReadBackType(ctx, MethodType(env.ContextToEnvironment(ctx), def, nil, motive, 1))
	expected := &core.Pi{Name: "n", Arg: &core.InductiveType{Def: def}, Result: &core.Pi{
		Name:   "ih",
		Arg:    app(v("mot"), v("n")),
		Result: app(v("mot"), &core.Constructor{Def: def, Index: 1, Arguments: []core.Core{v("n")}}),
	}}
	//
	checkAlpha(t, expected, actual)
	// Exactly one induction hypothesis, immediately after its argument
	args, _ := piBinders(actual)
	require.Len(t, args, 2)
	assert.True(t, core.AlphaEquivalent(&core.InductiveType{Def: def}, args[0]))
}

func Test_MotiveType_02(t *testing.T) {
	def, ctx := lessThan()
	// (Π ((j Nat) (k Nat)) (→ (LT j k) U))
	actual := ReadBackType(ctx, MotiveType(env.ContextToEnvironment(ctx), def, nil))
	expected := &core.Pi{Name: "j", Arg: &core.Nat{}, Result: &core.Pi{Name: "k", Arg: &core.Nat{}, Result: &core.Pi{
		Name:   "target",
		Arg:    &core.InductiveType{Def: def, Indices: []core.Core{v("j"), v("k")}},
		Result: &core.Universe{}}}}
	//
	checkAlpha(t, expected, actual)
}

func Test_MethodType_03(t *testing.T) {
	def, ctx := lessThan()
	ctx = bindMotive(ctx, def, nil)
	motive := Evaluate(ctx, v("mot"))
	// (Π ((j Nat) (k Nat) (j<k (LT j k))) (→ (mot j k j<k) (mot (add1 j) (add1 k) (add1-smaller j k j<k))))
	actual := ReadBackType(ctx, MethodType(env.ContextToEnvironment(ctx), def, nil, motive, 1))
	ctor := &core.Constructor{Def: def, Index: 1, Arguments: []core.Core{v("j"), v("k"), v("j<k")}}
	expected := &core.Pi{Name: "j", Arg: &core.Nat{}, Result: &core.Pi{Name: "k", Arg: &core.Nat{}, Result: &core.Pi{
		Name: "j<k",
		Arg:  &core.InductiveType{Def: def, Indices: []core.Core{v("j"), v("k")}},
		Result: &core.Pi{
			Name:   "ih",
			Arg:    app(v("mot"), v("j"), v("k"), v("j<k")),
			Result: app(v("mot"), &core.Add1{N: v("j")}, &core.Add1{N: v("k")}, ctor),
		}}}}
	//
	checkAlpha(t, expected, actual)
}

func Test_MethodType_04(t *testing.T) {
	def, ctx := vect()
	atom := []value.Value{&value.Atom{}}
	ctx = bindMotive(ctx, def, atom)
	motive := Evaluate(ctx, v("mot"))
	// (Π ((k Nat) (e Atom) (es (Vect Atom k))) (→ (mot k es) (mot (add1 k) (vcons k e es))))
	actual := ReadBackType(ctx, MethodType(env.ContextToEnvironment(ctx), def, atom, motive, 1))
	ctor := &core.Constructor{Def: def, Index: 1, Arguments: []core.Core{v("k"), v("e"), v("es")}}
	expected := &core.Pi{Name: "k", Arg: &core.Nat{}, Result: &core.Pi{Name: "e", Arg: &core.Atom{}, Result: &core.Pi{
		Name: "es",
		Arg:  &core.InductiveType{Def: def, Parameters: []core.Core{&core.Atom{}}, Indices: []core.Core{v("k")}},
		Result: &core.Pi{
			Name:   "ih",
			Arg:    app(v("mot"), v("k"), v("es")),
			Result: app(v("mot"), &core.Add1{N: v("k")}, ctor),
		}}}}
	//
	checkAlpha(t, expected, actual)
}

func Test_DoEliminator_01(t *testing.T) {
	def, ctx := natural()
	// (elim-MyNat (s (s z)) (λ (t) Nat) 0 (λ (n ih) (add1 ih))) = 2
	two := &core.Constructor{Def: def, Index: 1, Arguments: []core.Core{
		&core.Constructor{Def: def, Index: 1, Arguments: []core.Core{&core.Constructor{Def: def, Index: 0}}}}}
	term := &core.Eliminator{Def: def, Target: two, Motive: lam("t", &core.Nat{}),
		Methods: []core.Core{nat(0), lam("n", lam("ih", &core.Add1{N: v("ih")}))}}
	//
	checkNormal(t, ctx, &value.Nat{}, term, nat(2))
}

func Test_DoEliminator_02(t *testing.T) {
	def, ctx := natural()
	ctx = ctx.BindFree("m", &value.InductiveType{Def: def})
	// Stuck on m
	term := &core.Eliminator{Def: def, Target: v("m"), Motive: lam("t", &core.Nat{}),
		Methods: []core.Core{nat(0), lam("n", lam("ih", &core.Add1{N: v("ih")}))}}
	//
	checkNormal(t, ctx, &value.Nat{}, term, term)
	checkIdempotent(t, ctx, &value.Nat{}, term)
}

func Test_ConstructorType_01(t *testing.T) {
	def, ctx := vect()
	// (Π ((E U) (k Nat) (e E) (es (Vect E k))) (Vect E (add1 k)))
	actual := ReadBackType(ctx, ConstructorType(env.ContextToEnvironment(ctx), def, 1))
	args, result := piBinders(actual)
	//
	require.Len(t, args, 4)
	checkAlpha(t, &core.InductiveType{Def: def, Parameters: []core.Core{v("E")},
		Indices: []core.Core{&core.Add1{N: v("k")}}}, result)
}

// ============================================================================
// Datatypes
// ============================================================================

func boolean() (*core.Datatype, env.Context) {
	def := &core.Datatype{Name: "Bool"}
	def.Constructors = []core.DatatypeConstructor{{Name: "true"}, {Name: "false"}}
	//
	return def, declare(def)
}

func natural() (*core.Datatype, env.Context) {
	def := &core.Datatype{Name: "MyNat"}
	def.Constructors = []core.DatatypeConstructor{
		{Name: "z"},
		{Name: "s", Arguments: []core.Binder{{Name: "n", Type: &core.InductiveType{Def: def}}}},
	}
	//
	return def, declare(def)
}

func lessThan() (*core.Datatype, env.Context) {
	def := &core.Datatype{Name: "LT", Indices: []core.Binder{{Name: "j", Type: &core.Nat{}}, {Name: "k", Type: &core.Nat{}}}}
	def.Constructors = []core.DatatypeConstructor{
		{
			Name:      "zero-smallest",
			Arguments: []core.Binder{{Name: "n", Type: &core.Nat{}}},
			Indices:   []core.Core{&core.Zero{}, &core.Add1{N: v("n")}},
		},
		{
			Name: "add1-smaller",
			Arguments: []core.Binder{
				{Name: "j", Type: &core.Nat{}},
				{Name: "k", Type: &core.Nat{}},
				{Name: "j<k", Type: &core.InductiveType{Def: def, Indices: []core.Core{v("j"), v("k")}}},
			},
			Indices: []core.Core{&core.Add1{N: v("j")}, &core.Add1{N: v("k")}},
		},
	}
	//
	return def, declare(def)
}

func vect() (*core.Datatype, env.Context) {
	def := &core.Datatype{Name: "Vect",
		Parameters: []core.Binder{{Name: "E", Type: &core.Universe{}}},
		Indices:    []core.Binder{{Name: "n", Type: &core.Nat{}}}}
	def.Constructors = []core.DatatypeConstructor{
		{Name: "vnil", Indices: []core.Core{&core.Zero{}}},
		{
			Name: "vcons",
			Arguments: []core.Binder{
				{Name: "k", Type: &core.Nat{}},
				{Name: "e", Type: v("E")},
				{Name: "es", Type: &core.InductiveType{Def: def, Parameters: []core.Core{v("E")},
					Indices: []core.Core{v("k")}}},
			},
			Indices: []core.Core{&core.Add1{N: v("k")}},
		},
	}
	//
	return def, declare(def)
}

func declare(def *core.Datatype) env.Context {
	var ctx env.Context
	//
	ctx = ctx.Extend(def.Name, &env.InductiveDatatype{Def: def})
	//
	for i, c := range def.Constructors {
		ctx = ctx.Extend(c.Name, &env.ConstructorType{Def: def, Index: i})
	}
	//
	return ctx.Extend(def.EliminatorName(), &env.Eliminator{Def: def})
}

// Bind a free variable "mot" to serve as the motive.
func bindMotive(ctx env.Context, def *core.Datatype, params []value.Value) env.Context {
	return ctx.BindFree("mot", MotiveType(env.ContextToEnvironment(ctx), def, params))
}

// Split a Π type into its argument types and final result.
func piBinders(term core.Core) ([]core.Core, core.Core) {
	var args []core.Core
	//
	for p, ok := term.(*core.Pi); ok; p, ok = term.(*core.Pi) {
		args = append(args, p.Arg)
		term = p.Result
	}
	//
	return args, term
}

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
package env

import (
	"testing"

	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Environment_01(t *testing.T) {
	var empty Environment
	//
	env := empty.Extend("x", &value.Zero{}).Extend("y", &value.Nat{})
	assert.IsType(t, &value.Zero{}, env.Lookup("x"))
	assert.IsType(t, &value.Nat{}, env.Lookup("y"))
	assert.Equal(t, uint(2), env.Len())
	// Extension is non-destructive
	assert.Equal(t, uint(0), empty.Len())
	assert.Panics(t, func() { empty.Lookup("x") })
}

func Test_Environment_02(t *testing.T) {
	var env Environment
	// Shadowing
	env = env.Extend("x", &value.Zero{}).Extend("x", &value.Sole{})
	assert.IsType(t, &value.Sole{}, env.Lookup("x"))
}

func Test_Context_01(t *testing.T) {
	var ctx Context
	//
	c1 := ctx.Extend("n", &Claim{Type: &value.Nat{}})
	// Claims cannot be referred to
	_, ok := c1.VarType("n")
	assert.False(t, ok)
	// Defining replaces the claim
	c2 := c1.Rebind("n", &Define{Type: &value.Nat{}, Value: &value.Zero{}})
	ty, ok := c2.VarType("n")
	require.True(t, ok)
	assert.IsType(t, &value.Nat{}, ty)
	assert.Equal(t, uint(1), c2.Len())
	// Earlier snapshots are unchanged
	b, _ := c1.Lookup("n")
	assert.IsType(t, &Claim{}, b)
	assert.Panics(t, func() { c2.Extend("n", &Free{Type: &value.Atom{}}) })
}

func Test_Context_02(t *testing.T) {
	var ctx Context
	//
	ctx = ctx.Extend("a", &Free{Type: &value.Nat{}})
	ctx = ctx.Extend("b", &Claim{Type: &value.Atom{}})
	ctx = ctx.Extend("c", &Free{Type: &value.Atom{}})
	ctx = ctx.Remove("b")
	//
	assert.Equal(t, []string{"a", "c"}, ctx.Names())
	assert.False(t, ctx.Bound("b"))
}

func Test_ContextToEnvironment_01(t *testing.T) {
	var ctx Context
	//
	ctx = ctx.Extend("a", &Free{Type: &value.Nat{}})
	ctx = ctx.Extend("b", &Claim{Type: &value.Atom{}})
	ctx = ctx.Extend("c", &Define{Type: &value.Atom{}, Value: &value.Quote{Symbol: "x"}})
	env := ContextToEnvironment(ctx)
	//
	assert.Equal(t, uint(2), env.Len())
	assert.Equal(t, &value.Quote{Symbol: "x"}, env.Lookup("c"))
	//
	a, ok := env.Lookup("a").(*value.Neutral)
	require.True(t, ok)
	assert.Equal(t, &value.NeVar{Name: "a"}, a.Ne)
	assert.Panics(t, func() { env.Lookup("b") })
}

func Test_Renaming_01(t *testing.T) {
	var r Renaming
	//
	r = r.Extend("x", "x₁").Extend("y", "y₂")
	assert.Equal(t, "x₁", r.Rename("x"))
	assert.Equal(t, "y₂", r.Rename("y"))
	assert.Equal(t, "z", r.Rename("z"))
	assert.Equal(t, [][2]string{{"x", "x₁"}, {"y", "y₂"}}, r.Pairs())
}

func Test_Fresh_01(t *testing.T) {
	assert.Equal(t, "x", FreshAvoiding(nil, "x"))
	assert.Equal(t, "x₁", FreshAvoiding([]string{"x"}, "x"))
	assert.Equal(t, "x₂", FreshAvoiding([]string{"x", "x₁"}, "x"))
	assert.Equal(t, "x₁", FreshAvoiding([]string{"x₃"}, "x₃"))
	assert.Equal(t, "n₁₀", FreshAvoiding([]string{"n", "n₁", "n₂", "n₃", "n₄", "n₅", "n₆", "n₇", "n₈", "n₉"}, "n"))
}

func Test_Fresh_02(t *testing.T) {
	var ctx Context
	//
	ctx = ctx.Extend("x", &Free{Type: &value.Nat{}})
	assert.Equal(t, "x₁", Fresh(ctx, "x"))
	assert.Equal(t, "y", Fresh(ctx, "y"))
}

func Test_FreshBinder_01(t *testing.T) {
	var ctx Context
	// Names occurring in the term are avoided
	term := &ast.App{Fun: &ast.Var{Name: "y"}, Args: []ast.Source{&ast.Var{Name: "y₁"}}}
	assert.Equal(t, "y₂", FreshBinder(ctx, term, "y"))
	assert.Equal(t, "z", FreshBinder(ctx, term, "z"))
}

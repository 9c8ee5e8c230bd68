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
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Delay_01(t *testing.T) {
	var count int
	//
	d := NewDelay(func() Value {
		count++
		return &Zero{}
	})
	// Nothing happens until forced
	assert.Equal(t, 0, count)
	assert.IsType(t, &Zero{}, Now(d))
	assert.IsType(t, &Zero{}, Now(d))
	assert.Equal(t, 1, count)
}

func Test_Delay_02(t *testing.T) {
	inner := NewDelay(func() Value { return &Add1{Smaller: &Zero{}} })
	outer := NewDelay(func() Value { return inner })
	// Chains of delays are forced completely
	v, ok := Now(outer).(*Add1)
	require.True(t, ok)
	assert.IsType(t, &Zero{}, v.Smaller)
}

func Test_Now_01(t *testing.T) {
	v := &Nat{}
	assert.Same(t, v, Now(v))
}

func Test_Closure_01(t *testing.T) {
	c := HigherOrderClosure{func(v Value) Value { return &Add1{Smaller: v} }}
	//
	v, ok := c.Apply(&Zero{}).(*Add1)
	require.True(t, ok)
	assert.IsType(t, &Zero{}, v.Smaller)
	// Constant closures ignore their argument
	assert.IsType(t, &Atom{}, Constant(&Atom{}).Apply(&Zero{}))
}

func Test_Variable_01(t *testing.T) {
	v, ok := Variable("x", &Nat{}).(*Neutral)
	require.True(t, ok)
	assert.IsType(t, &Nat{}, v.Type)
	assert.Equal(t, &NeVar{Name: "x"}, v.Ne)
}

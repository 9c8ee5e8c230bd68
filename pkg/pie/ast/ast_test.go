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
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccurringNames_01(t *testing.T) {
	// (λ (x) (f x y))
	term := &Lambda{
		Binders: []SiteBinder{{Name: "x"}},
		Body: &App{
			Fun:  &Var{Name: "f"},
			Args: []Source{&Var{Name: "x"}, &Var{Name: "y"}},
		},
	}
	//
	assert.Equal(t, []string{"x", "f", "x", "y"}, OccurringNames(term))
}

func TestOccurringNames_02(t *testing.T) {
	// (Π ((n Nat) (v (Vec Atom n))) (= Nat n m))
	term := &Pi{
		Binders: []TypedBinder{
			{SiteBinder{Name: "n"}, &Nat{}},
			{SiteBinder{Name: "v"}, &Vec{Entry: &Atom{}, Length: &Var{Name: "n"}}},
		},
		Body: &Equal{Type: &Nat{}, From: &Var{Name: "n"}, To: &Var{Name: "m"}},
	}
	//
	assert.ElementsMatch(t, []string{"n", "v", "n", "n", "m"}, OccurringNames(term))
}

func TestOccurringNames_03(t *testing.T) {
	assert.Empty(t, OccurringNames(&Universe{}))
}

func TestEliminatorName(t *testing.T) {
	def := TypeDefinition{Name: SiteBinder{Name: "Bool"}}
	assert.Equal(t, "elim-Bool", def.EliminatorName())
}

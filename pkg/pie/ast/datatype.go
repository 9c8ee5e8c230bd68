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

import "github.com/consensys/go-pie/pkg/util/source"

// TypeDefinition describes a user-declared inductive family, such as:
//
//	(data Less-Than () ((j Nat) (k Nat))
//	  (zero-smallest ((n Nat)) (Less-Than zero (add1 n)))
//	  (add1-smaller ((j Nat) (k Nat) (j<k (Less-Than j k)))
//	    (Less-Than (add1 j) (add1 k))))
//
// Parameters are fixed across the whole family, whilst indices may vary between
// constructors.
type TypeDefinition struct {
	Where        source.Location
	Name         SiteBinder
	Parameters   []TypedBinder
	Indices      []TypedBinder
	Constructors []GeneralConstructor
}

// EliminatorName returns the name under which the eliminator for this family
// is registered.
func (p *TypeDefinition) EliminatorName() string {
	return "elim-" + p.Name.Name
}

// GeneralConstructor describes one constructor of a datatype: its arguments,
// and the instance of the family which it constructs.
type GeneralConstructor struct {
	Name      SiteBinder
	Arguments []TypedBinder
	Result    Source
}

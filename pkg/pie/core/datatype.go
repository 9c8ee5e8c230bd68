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
package core

// Binder associates a name with its (elaborated) type.  The type of a binder
// may refer to the names of any binders preceding it.
type Binder struct {
	Name string
	Type Core
}

// Datatype is the elaborated form of a user-declared inductive family.  The
// types of parameters are in scope of earlier parameters; the types of
// indices are in scope of all parameters and earlier indices; the arguments
// of a constructor are in scope of all parameters and earlier arguments.
// Datatypes are immutable once admitted and are shared (by pointer) between
// the core terms, values and context entries which refer to them.
type Datatype struct {
	Name         string
	Parameters   []Binder
	Indices      []Binder
	Constructors []DatatypeConstructor
}

// EliminatorName returns the name under which the eliminator for this family
// is registered.
func (p *Datatype) EliminatorName() string {
	return "elim-" + p.Name
}

// Constructor looks up a constructor by name, returning its index (or -1 if
// there is no such constructor).
func (p *Datatype) Constructor(name string) int {
	for i, c := range p.Constructors {
		if c.Name == name {
			return i
		}
	}
	//
	return -1
}

// DatatypeConstructor describes a single constructor.  Indices gives the
// indices of the family instance constructed, in scope of the parameters and
// all arguments.
type DatatypeConstructor struct {
	Name      string
	Arguments []Binder
	Indices   []Core
}

// IsRecursive determines whether the ith argument of this constructor is an
// instance of the enclosing family, and hence receives an induction
// hypothesis.
func (p *DatatypeConstructor) IsRecursive(def *Datatype, i int) bool {
	t, ok := p.Arguments[i].Type.(*InductiveType)
	return ok && t.Def == def
}

// Recursive returns the number of recursive arguments for this constructor.
func (p *DatatypeConstructor) Recursive(def *Datatype) uint {
	var count uint
	//
	for i := range p.Arguments {
		if p.IsRecursive(def, i) {
			count++
		}
	}
	//
	return count
}

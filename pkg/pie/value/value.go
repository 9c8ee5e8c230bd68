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

import "github.com/consensys/go-pie/pkg/pie/core"

// Value is the semantic counterpart of a core term.  Values are produced only
// by evaluation and are never mutated once constructed; the single exception
// is the memo cell of a Delay, which is written at most once.  Any value may be
// a Delay, hence code which inspects the shape of a value must first force it
// using Now.
type Value interface {
	isValue()
}

type node struct{}

func (node) isValue() {}

// Universe is the type of types.
type Universe struct{ node }

// Nat is the type of natural numbers.
type Nat struct{ node }

// Zero is the natural number 0.
type Zero struct{ node }

// Add1 is the successor of a natural number.
type Add1 struct {
	node
	Smaller Value
}

// Pi is a dependent function type.  The name of the argument is retained only
// for read back.
type Pi struct {
	node
	ArgName string
	ArgType Value
	Result  Closure
}

// Lambda is a function value.
type Lambda struct {
	node
	ArgName string
	Body    Closure
}

// Sigma is a dependent pair type.
type Sigma struct {
	node
	CarName string
	CarType Value
	CdrType Closure
}

// Cons is a pair.
type Cons struct {
	node
	Car Value
	Cdr Value
}

// Atom is the type of atoms.
type Atom struct{ node }

// Quote is an atom.
type Quote struct {
	node
	Symbol string
}

// Trivial is the unit type.
type Trivial struct{ node }

// Sole is the only inhabitant of Trivial.
type Sole struct{ node }

// Absurd is the empty type.
type Absurd struct{ node }

// List is the type of lists with a given entry type.
type List struct {
	node
	Entry Value
}

// Nil is the empty list.
type Nil struct{ node }

// ListCons extends a list.
type ListCons struct {
	node
	Head Value
	Tail Value
}

// Vec is the type of lists with a given entry type and length.
type Vec struct {
	node
	Entry  Value
	Length Value
}

// VecNil is the empty vector.
type VecNil struct{ node }

// VecCons extends a vector.
type VecCons struct {
	node
	Head Value
	Tail Value
}

// Equal is the type of equality proofs between two values of a type.
type Equal struct {
	node
	Type Value
	From Value
	To   Value
}

// Same is the canonical equality proof.
type Same struct {
	node
	Value Value
}

// Either is the sum type.
type Either struct {
	node
	Left  Value
	Right Value
}

// Left injects into a sum.
type Left struct {
	node
	Value Value
}

// Right injects into a sum.
type Right struct {
	node
	Value Value
}

// Neutral is a computation which cannot proceed because it is blocked on a
// free variable (or hole).  Its type is retained so that it can be read back
// in eta-long form.
type Neutral struct {
	node
	Type Value
	Ne   Ne
}

// InductiveType is an instance of a user-declared family.
type InductiveType struct {
	node
	Def        *core.Datatype
	Parameters []Value
	Indices    []Value
}

// Constructor is an application of a constructor of a user-declared family.
type Constructor struct {
	node
	Def       *core.Datatype
	Index     int
	Arguments []Value
}

// Name returns the name of the constructor.
func (p *Constructor) Name() string {
	return p.Def.Constructors[p.Index].Name
}

// Variable constructs a neutral variable of a given type.
func Variable(name string, datatype Value) Value {
	return &Neutral{Type: datatype, Ne: &NeVar{Name: name}}
}

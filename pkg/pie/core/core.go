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

import "github.com/consensys/go-pie/pkg/util/source"

// Core represents a fully elaborated term.  Core terms are only ever produced
// by the elaborator, and are the only input accepted by the evaluator.  Unlike
// source terms, every binder has been given a name which cannot capture, and
// every eliminator is annotated with whatever is needed to compute with it.
type Core interface {
	isCore()
}

type node struct{}

func (node) isCore() {}

// The ascribes a type to a term.
type The struct {
	node
	Type Core
	Expr Core
}

// Var is a variable reference.
type Var struct {
	node
	Name string
}

// Universe is the type of types.
type Universe struct{ node }

// TODO is an unsolved hole of a given type.
type TODO struct {
	node
	Where source.Location
	Type  Core
}

// Nat is the type of natural numbers.
type Nat struct{ node }

// Zero is the natural number 0.
type Zero struct{ node }

// Add1 is the successor of a natural number.
type Add1 struct {
	node
	N Core
}

// WhichNat distinguishes zero from add1 without recursion.  The type of the
// base is retained for read back.
type WhichNat struct {
	node
	Target, BaseType, Base, Step Core
}

// IterNat iterates a step function.
type IterNat struct {
	node
	Target, BaseType, Base, Step Core
}

// RecNat is primitive recursion over naturals.
type RecNat struct {
	node
	Target, BaseType, Base, Step Core
}

// IndNat is induction over naturals.
type IndNat struct {
	node
	Target, Motive, Base, Step Core
}

// Pi is a dependent function type.
type Pi struct {
	node
	Name   string
	Arg    Core
	Result Core
}

// Lambda is a function of one argument.
type Lambda struct {
	node
	Name string
	Body Core
}

// App applies a function to one argument.
type App struct {
	node
	Fun Core
	Arg Core
}

// Sigma is a dependent pair type.
type Sigma struct {
	node
	Name string
	Car  Core
	Cdr  Core
}

// Cons constructs a pair.
type Cons struct {
	node
	Car, Cdr Core
}

// Car projects the first component of a pair.
type Car struct {
	node
	Pair Core
}

// Cdr projects the second component of a pair.
type Cdr struct {
	node
	Pair Core
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

// IndAbsurd eliminates the empty type.
type IndAbsurd struct {
	node
	Target, Motive Core
}

// List is the type of lists.
type List struct {
	node
	Entry Core
}

// Nil is the empty list.
type Nil struct{ node }

// ListCons extends a list.
type ListCons struct {
	node
	Head, Tail Core
}

// RecList is primitive recursion over lists.
type RecList struct {
	node
	Target, BaseType, Base, Step Core
}

// IndList is induction over lists.
type IndList struct {
	node
	Target, Motive, Base, Step Core
}

// Vec is the type of length-indexed lists.
type Vec struct {
	node
	Entry, Length Core
}

// VecNil is the empty vector.
type VecNil struct{ node }

// VecCons extends a vector.
type VecCons struct {
	node
	Head, Tail Core
}

// Head projects the first entry of a vector.
type Head struct {
	node
	Vec Core
}

// Tail projects the remaining entries of a vector.
type Tail struct {
	node
	Vec Core
}

// IndVec is induction over vectors.
type IndVec struct {
	node
	Length, Target, Motive, Base, Step Core
}

// Equal is the equality type.
type Equal struct {
	node
	Type, From, To Core
}

// Same is reflexivity.
type Same struct {
	node
	Expr Core
}

// Replace transports along an equality.
type Replace struct {
	node
	Target, Motive, Base Core
}

// Trans composes equalities.
type Trans struct {
	node
	Left, Right Core
}

// Cong applies a function across an equality.  Result is the (non-dependent)
// codomain of the function.
type Cong struct {
	node
	Target, Result, Fun Core
}

// Symm swaps the sides of an equality.
type Symm struct {
	node
	Expr Core
}

// IndEqual is induction over equality proofs.
type IndEqual struct {
	node
	Target, Motive, Base Core
}

// Either is the sum type.
type Either struct {
	node
	Left, Right Core
}

// Left injects into a sum.
type Left struct {
	node
	Expr Core
}

// Right injects into a sum.
type Right struct {
	node
	Expr Core
}

// IndEither eliminates a sum.
type IndEither struct {
	node
	Target, Motive, Left, Right Core
}

// InductiveType is an instance of a user-declared family.
type InductiveType struct {
	node
	Def        *Datatype
	Parameters []Core
	Indices    []Core
}

// Constructor applies one of the constructors of a user-declared family.
// Parameters are not recorded, since they are determined by the expected
// type.
type Constructor struct {
	node
	Def       *Datatype
	Index     int
	Arguments []Core
}

// Name returns the name of the constructor being applied.
func (p *Constructor) Name() string {
	return p.Def.Constructors[p.Index].Name
}

// Eliminator eliminates a value of a user-declared family, with one method
// per constructor.
type Eliminator struct {
	node
	Def     *Datatype
	Target  Core
	Motive  Core
	Methods []Core
}

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
	"github.com/consensys/go-pie/pkg/util/source"
)

// Source represents a term written by the user, before elaboration.  Source
// terms are immutable and every node records where it originated.  The set of
// implementations is closed: new forms must be handled by the elaborator, and
// by OccurringNames.
type Source interface {
	// Loc returns the location of this term.
	Loc() source.Location
	// Children returns the immediate subterms of this term, in order.
	Children() []Source
	isSource()
}

// Node provides the location shared by all source terms.
type Node struct {
	Where source.Location
}

// Loc implementation for the Source interface.
func (p *Node) Loc() source.Location { return p.Where }

func (p *Node) isSource() {}

// SiteBinder identifies the site at which a variable is bound.
type SiteBinder struct {
	Where source.Location
	Name  string
}

// TypedBinder is a binding site which is annotated with a type.
type TypedBinder struct {
	SiteBinder
	Type Source
}

// ============================================================================
// Basics
// ============================================================================

// The ascribes a type to an expression, e.g. (the Nat 1).
type The struct {
	Node
	Type Source
	Expr Source
}

// Var is a variable reference.
type Var struct {
	Node
	Name string
}

// Universe is the type of types, U.
type Universe struct{ Node }

// TODO is a hole standing for a term which has yet to be written.
type TODO struct{ Node }

// ============================================================================
// Natural numbers
// ============================================================================

// Nat is the type of natural numbers.
type Nat struct{ Node }

// Zero is the natural number 0.
type Zero struct{ Node }

// Add1 is the successor of a natural number.
type Add1 struct {
	Node
	N Source
}

// NatLiteral is a numeral, standing for a tower of add1s around zero.
type NatLiteral struct {
	Node
	Value uint64
}

// WhichNat distinguishes zero from add1 without recursion.
type WhichNat struct {
	Node
	Target, Base, Step Source
}

// IterNat iterates a step function.
type IterNat struct {
	Node
	Target, Base, Step Source
}

// RecNat is primitive recursion over naturals.
type RecNat struct {
	Node
	Target, Base, Step Source
}

// IndNat is induction over naturals.
type IndNat struct {
	Node
	Target, Motive, Base, Step Source
}

// ============================================================================
// Functions
// ============================================================================

// Arrow is a non-dependent function type (→ A B ... R).
type Arrow struct {
	Node
	Types []Source
}

// Pi is a dependent function type.
type Pi struct {
	Node
	Binders []TypedBinder
	Body    Source
}

// Lambda is an anonymous function of one or more arguments.
type Lambda struct {
	Node
	Binders []SiteBinder
	Body    Source
}

// App applies a function to one or more arguments.  Applications whose head
// names a datatype, constructor or eliminator are disambiguated during
// elaboration.
type App struct {
	Node
	Fun  Source
	Args []Source
}

// ============================================================================
// Pairs
// ============================================================================

// Sigma is a dependent pair type.
type Sigma struct {
	Node
	Binders []TypedBinder
	Body    Source
}

// Pair is a non-dependent pair type.
type Pair struct {
	Node
	Car, Cdr Source
}

// Cons constructs a pair.
type Cons struct {
	Node
	Car, Cdr Source
}

// Car projects the first component of a pair.
type Car struct {
	Node
	Pair Source
}

// Cdr projects the second component of a pair.
type Cdr struct {
	Node
	Pair Source
}

// ============================================================================
// Atoms, Trivial & Absurd
// ============================================================================

// Atom is the type of atoms.
type Atom struct{ Node }

// Quote is an atom, written 'name.
type Quote struct {
	Node
	Symbol string
}

// Trivial is the unit type.
type Trivial struct{ Node }

// Sole is the only inhabitant of Trivial.
type Sole struct{ Node }

// Absurd is the empty type.
type Absurd struct{ Node }

// IndAbsurd eliminates a value of the empty type.
type IndAbsurd struct {
	Node
	Target, Motive Source
}

// ============================================================================
// Lists
// ============================================================================

// List is the type of lists.
type List struct {
	Node
	Entry Source
}

// Nil is the empty list.
type Nil struct{ Node }

// ListCons extends a list with a new head, written (:: e es).
type ListCons struct {
	Node
	Head, Tail Source
}

// RecList is primitive recursion over lists.
type RecList struct {
	Node
	Target, Base, Step Source
}

// IndList is induction over lists.
type IndList struct {
	Node
	Target, Motive, Base, Step Source
}

// ============================================================================
// Vectors
// ============================================================================

// Vec is the type of length-indexed lists.
type Vec struct {
	Node
	Entry, Length Source
}

// VecNil is the empty vector.
type VecNil struct{ Node }

// VecCons extends a vector with a new head.
type VecCons struct {
	Node
	Head, Tail Source
}

// Head projects the first entry of a non-empty vector.
type Head struct {
	Node
	Vec Source
}

// Tail projects all but the first entry of a non-empty vector.
type Tail struct {
	Node
	Vec Source
}

// IndVec is induction over vectors.
type IndVec struct {
	Node
	Length, Target, Motive, Base, Step Source
}

// ============================================================================
// Equality
// ============================================================================

// Equal is the equality type (= X from to).
type Equal struct {
	Node
	Type, From, To Source
}

// Same is the proof of reflexivity.
type Same struct {
	Node
	Expr Source
}

// Replace transports a value along an equality.
type Replace struct {
	Node
	Target, Motive, Base Source
}

// Trans composes two equalities.
type Trans struct {
	Node
	Left, Right Source
}

// Cong applies a function to both sides of an equality.
type Cong struct {
	Node
	Target, Fun Source
}

// Symm swaps the sides of an equality.
type Symm struct {
	Node
	Expr Source
}

// IndEqual is induction over equality proofs.
type IndEqual struct {
	Node
	Target, Motive, Base Source
}

// ============================================================================
// Sums
// ============================================================================

// Either is the sum type.
type Either struct {
	Node
	Left, Right Source
}

// Left injects into the left of a sum.
type Left struct {
	Node
	Expr Source
}

// Right injects into the right of a sum.
type Right struct {
	Node
	Expr Source
}

// IndEither eliminates a sum.
type IndEither struct {
	Node
	Target, Motive, Left, Right Source
}

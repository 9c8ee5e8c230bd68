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
package tactic

import (
	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Tactic is a single step of interactive proof construction.  Tactics form a
// closed set, and are interpreted by ProofState.Apply.
type Tactic interface {
	// Loc returns the location of this tactic.
	Loc() source.Location
	// Name returns the surface keyword for this tactic.
	Name() string
	isTactic()
}

// Node holds the location of a tactic.
type Node struct {
	Where source.Location
}

// Loc returns the location of this tactic.
func (p *Node) Loc() source.Location { return p.Where }

func (p *Node) isTactic() {}

// Intro introduces the argument of a Π goal, optionally under a given name.
type Intro struct {
	Node
	Binder string
}

// Exact solves a goal outright with a given term.
type Exact struct {
	Node
	Term ast.Source
}

// Exists solves the first component of a Σ goal with a given value, leaving
// the second.  If Binder is given, the value is available under that name.
type Exists struct {
	Node
	Value  ast.Source
	Binder string
}

// Split divides a Σ goal into its two components.
type Split struct{ Node }

// Left chooses the left side of an Either goal.
type Left struct{ Node }

// Right chooses the right side of an Either goal.
type Right struct{ Node }

// Apply reasons backwards through a function whose result is the goal.
type Apply struct {
	Node
	Fun ast.Source
}

// EliminateNat performs induction on a natural number.
type EliminateNat struct {
	Node
	Target, Motive ast.Source
}

// EliminateList performs induction on a list.
type EliminateList struct {
	Node
	Target, Motive ast.Source
}

// EliminateVec performs induction on a vector.
type EliminateVec struct {
	Node
	Target, Motive ast.Source
}

// EliminateEqual performs induction on an equality proof.
type EliminateEqual struct {
	Node
	Target, Motive ast.Source
}

// EliminateEither performs case analysis on a sum.
type EliminateEither struct {
	Node
	Target, Motive ast.Source
}

// EliminateAbsurd solves any goal from a proof of Absurd.
type EliminateAbsurd struct {
	Node
	Target, Motive ast.Source
}

// Then applies a sequence of tactics to the next pending branch.
type Then struct {
	Node
	Tactics []Tactic
}

// Name returns the surface keyword for this tactic.
func (p *Intro) Name() string { return "intro" }

// Name returns the surface keyword for this tactic.
func (p *Exact) Name() string { return "exact" }

// Name returns the surface keyword for this tactic.
func (p *Exists) Name() string { return "exists" }

// Name returns the surface keyword for this tactic.
func (p *Split) Name() string { return "split" }

// Name returns the surface keyword for this tactic.
func (p *Left) Name() string { return "left" }

// Name returns the surface keyword for this tactic.
func (p *Right) Name() string { return "right" }

// Name returns the surface keyword for this tactic.
func (p *Apply) Name() string { return "apply" }

// Name returns the surface keyword for this tactic.
func (p *EliminateNat) Name() string { return "elim-Nat" }

// Name returns the surface keyword for this tactic.
func (p *EliminateList) Name() string { return "elim-List" }

// Name returns the surface keyword for this tactic.
func (p *EliminateVec) Name() string { return "elim-Vec" }

// Name returns the surface keyword for this tactic.
func (p *EliminateEqual) Name() string { return "elim-Equal" }

// Name returns the surface keyword for this tactic.
func (p *EliminateEither) Name() string { return "elim-Either" }

// Name returns the surface keyword for this tactic.
func (p *EliminateAbsurd) Name() string { return "elim-Absurd" }

// Name returns the surface keyword for this tactic.
func (p *Then) Name() string { return "then" }

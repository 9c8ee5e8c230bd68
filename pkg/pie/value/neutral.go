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
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Ne is the spine of a neutral computation: an eliminator (or a sequence of
// eliminators) applied to a free variable.  Every argument which is not itself
// the blocked target is recorded together with its type, so that the whole
// spine can be read back into a core term once it is known that no further
// computation is possible.
type Ne interface {
	isNe()
}

type ne struct{}

func (ne) isNe() {}

// TypedValue pairs a value with its type.
type TypedValue struct {
	Type  Value
	Value Value
}

// NeVar is a free variable.
type NeVar struct {
	ne
	Name string
}

// NeTODO is an unsolved hole.
type NeTODO struct {
	ne
	Where source.Location
	Type  Value
}

// NeApp applies a neutral function.
type NeApp struct {
	ne
	Fun Ne
	Arg TypedValue
}

// NeWhichNat is which-Nat stuck on its target.
type NeWhichNat struct {
	ne
	Target Ne
	Base   TypedValue
	Step   TypedValue
}

// NeIterNat is iter-Nat stuck on its target.
type NeIterNat struct {
	ne
	Target Ne
	Base   TypedValue
	Step   TypedValue
}

// NeRecNat is rec-Nat stuck on its target.
type NeRecNat struct {
	ne
	Target Ne
	Base   TypedValue
	Step   TypedValue
}

// NeIndNat is ind-Nat stuck on its target.
type NeIndNat struct {
	ne
	Target Ne
	Motive TypedValue
	Base   TypedValue
	Step   TypedValue
}

// NeCar projects from a neutral pair.
type NeCar struct {
	ne
	Pair Ne
}

// NeCdr projects from a neutral pair.
type NeCdr struct {
	ne
	Pair Ne
}

// NeRecList is rec-List stuck on its target.
type NeRecList struct {
	ne
	Target Ne
	Base   TypedValue
	Step   TypedValue
}

// NeIndList is ind-List stuck on its target.
type NeIndList struct {
	ne
	Target Ne
	Motive TypedValue
	Base   TypedValue
	Step   TypedValue
}

// NeHead projects from a neutral vector.
type NeHead struct {
	ne
	Vec Ne
}

// NeTail projects from a neutral vector.
type NeTail struct {
	ne
	Vec Ne
}

// NeIndVec is ind-Vec stuck on its length, its target or both.  The length is
// recorded with its type (Nat) since it need not be neutral.
type NeIndVec struct {
	ne
	Length TypedValue
	Target Ne
	Motive TypedValue
	Base   TypedValue
	Step   TypedValue
}

// NeReplace is replace stuck on its target.
type NeReplace struct {
	ne
	Target Ne
	Motive TypedValue
	Base   TypedValue
}

// NeTrans is trans where at least one side is neutral.
type NeTrans struct {
	ne
	Left  TypedValue
	Right TypedValue
}

// NeCong is cong stuck on its target.  Result is the codomain of the
// function.
type NeCong struct {
	ne
	Target Ne
	Result Value
	Fun    TypedValue
}

// NeSymm is symm stuck on its target.
type NeSymm struct {
	ne
	Target Ne
}

// NeIndEqual is ind-= stuck on its target.
type NeIndEqual struct {
	ne
	Target Ne
	Motive TypedValue
	Base   TypedValue
}

// NeIndEither is ind-Either stuck on its target.
type NeIndEither struct {
	ne
	Target Ne
	Motive TypedValue
	Left   TypedValue
	Right  TypedValue
}

// NeIndAbsurd is ind-Absurd stuck on its target (which is always the case).
type NeIndAbsurd struct {
	ne
	Target Ne
	Motive TypedValue
}

// NeEliminator is the eliminator of a user-declared family stuck on its
// target.
type NeEliminator struct {
	ne
	Def     *core.Datatype
	Target  Ne
	Motive  TypedValue
	Methods []TypedValue
}

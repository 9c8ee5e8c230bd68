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
package eval

import (
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Convert checks whether two values of a given type are definitionally equal,
// by comparing their normal forms up to alpha-equivalence.
func Convert(ctx env.Context, where source.Location, datatype value.Value, lhs, rhs value.Value) *source.Stop {
	l := ReadBack(ctx, datatype, lhs)
	r := ReadBack(ctx, datatype, rhs)
	//
	if !core.AlphaEquivalent(l, r) {
		return source.Stopf(where, "The expressions %s and %s are not the same %s", core.String(l), core.String(r),
			core.String(ReadBackType(ctx, datatype)))
	}
	//
	return nil
}

// SameType checks whether the type given for some term is definitionally
// equal to the type expected of it.
func SameType(ctx env.Context, where source.Location, expected, given value.Value) *source.Stop {
	e := ReadBackType(ctx, expected)
	g := ReadBackType(ctx, given)
	//
	if !core.AlphaEquivalent(e, g) {
		return source.Stopf(where, "Expected %s but given %s", core.String(e), core.String(g))
	}
	//
	return nil
}

// Binder kinds for serialised contexts.
const (
	// KindFree identifies a free variable.
	KindFree = "free"
	// KindDef identifies a definition.
	KindDef = "def"
	// KindClaim identifies a claim.
	KindClaim = "claim"
)

// SerializedBinder is a context entry which has been read back into core
// terms, such that it can be displayed or passed to external tools.  Value is
// nil except for definitions.
type SerializedBinder struct {
	Name  string
	Kind  string
	Type  core.Core
	Value core.Core
}

// ReadBackContext serialises the free variables, definitions and claims of a
// given context, oldest first.  Each entry is read back in the context which
// precedes it.  Datatype declarations are omitted.
func ReadBackContext(ctx env.Context) []SerializedBinder {
	var (
		prefix  env.Context
		entries []SerializedBinder
	)
	//
	for _, e := range ctx.Entries() {
		switch b := e.Binder.(type) {
		case *env.Free:
			entries = append(entries, SerializedBinder{e.Name, KindFree, ReadBackType(prefix, b.Type), nil})
		case *env.Define:
			t := ReadBackType(prefix, b.Type)
			entries = append(entries, SerializedBinder{e.Name, KindDef, t, ReadBack(prefix, b.Type, b.Value)})
		case *env.Claim:
			entries = append(entries, SerializedBinder{e.Name, KindClaim, ReadBackType(prefix, b.Type), nil})
		}
		//
		prefix = prefix.Extend(e.Name, e.Binder)
	}
	//
	return entries
}

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
package env

import (
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/value"
)

// Binder describes what a name in a context stands for.
type Binder interface {
	isBinder()
}

type binder struct{}

func (binder) isBinder() {}

// Claim records the type of a name which has yet to be defined.  Claimed names
// cannot be referred to until they are defined.
type Claim struct {
	binder
	Type value.Value
}

// Define records a name which has both a type and a value.
type Define struct {
	binder
	Type  value.Value
	Value value.Value
}

// Free records a variable whose value is unknown, such as the argument of a
// function whilst its body is being checked.
type Free struct {
	binder
	Type value.Value
}

// InductiveDatatype records the name of a user-declared family.
type InductiveDatatype struct {
	binder
	Def *core.Datatype
}

// ConstructorType records the name of a constructor of a user-declared family.
type ConstructorType struct {
	binder
	Def   *core.Datatype
	Index int
}

// Eliminator records the name of the eliminator of a user-declared family.
type Eliminator struct {
	binder
	Def *core.Datatype
}

// Entry is a single named binder in a context.
type Entry struct {
	Name   string
	Binder Binder
}

// Context maps names to binders, and is used during elaboration.  A context
// is persistent: every operation which changes it produces a new context and
// leaves the original untouched.  Names are unique within any one context.
// The zero value is the empty context.
type Context struct {
	head *ctxEntry
}

type ctxEntry struct {
	parent *ctxEntry
	Entry
}

// Extend returns a new context which additionally binds a given name.  The
// name must not already be bound (use Rebind to replace a binding).
func (p Context) Extend(name string, b Binder) Context {
	if p.Bound(name) {
		panic("context already binds " + name)
	}
	//
	return Context{&ctxEntry{p.head, Entry{name, b}}}
}

// Rebind returns a new context in which any binding for a given name is
// removed, and the given binder is added in its place (at the end).
func (p Context) Rebind(name string, b Binder) Context {
	return p.Remove(name).Extend(name, b)
}

// Remove returns a new context without any binding for a given name.
func (p Context) Remove(name string) Context {
	if !p.Bound(name) {
		return p
	}
	// Copy entries up to the removed one
	var (
		above []Entry
		e     = p.head
	)
	//
	for ; e.Name != name; e = e.parent {
		above = append(above, e.Entry)
	}
	//
	result := Context{e.parent}
	//
	for i := len(above) - 1; i >= 0; i-- {
		result = Context{&ctxEntry{result.head, above[i]}}
	}
	//
	return result
}

// Lookup returns the binder for a given name, if one exists.
func (p Context) Lookup(name string) (Binder, bool) {
	for e := p.head; e != nil; e = e.parent {
		if e.Name == name {
			return e.Binder, true
		}
	}
	//
	return nil, false
}

// Bound determines whether a name is bound in this context.
func (p Context) Bound(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// VarType returns the type of a variable which may be referred to by name.
// Only definitions and free variables qualify: claims, and the names of
// datatypes, constructors and eliminators, do not.
func (p Context) VarType(name string) (value.Value, bool) {
	b, _ := p.Lookup(name)
	//
	switch b := b.(type) {
	case *Define:
		return b.Type, true
	case *Free:
		return b.Type, true
	default:
		return nil, false
	}
}

// Entries returns the bindings of this context, oldest first.
func (p Context) Entries() []Entry {
	var entries []Entry
	//
	for e := p.head; e != nil; e = e.parent {
		entries = append(entries, e.Entry)
	}
	// Reverse
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	//
	return entries
}

// Names returns the names bound in this context, oldest first.
func (p Context) Names() []string {
	var names []string
	//
	for _, e := range p.Entries() {
		names = append(names, e.Name)
	}
	//
	return names
}

// Len returns the number of bindings in this context.
func (p Context) Len() uint {
	var n uint
	//
	for e := p.head; e != nil; e = e.parent {
		n++
	}
	//
	return n
}

// BindFree returns a new context in which a given name is a free variable of
// a given type.  Free variables may shadow earlier bindings of the same name,
// though since binders are always freshened first this only arises for
// datatype declarations.
func (p Context) BindFree(name string, datatype value.Value) Context {
	return p.Rebind(name, &Free{Type: datatype})
}

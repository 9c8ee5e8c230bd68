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
	"fmt"

	"github.com/consensys/go-pie/pkg/pie/value"
)

// Environment maps names to values, and is used to evaluate core terms.  An
// environment is persistent: extending it produces a new environment and
// leaves the original untouched.  The zero value is the empty environment.
type Environment struct {
	head *envEntry
}

type envEntry struct {
	parent *envEntry
	name   string
	value  value.Value
}

// Extend returns a new environment which additionally binds a given name.
// The new binding shadows any existing binding of that name.
func (p Environment) Extend(name string, v value.Value) Environment {
	return Environment{&envEntry{p.head, name, v}}
}

// Lookup returns the value bound to a given name.  Since the evaluator only
// ever sees well-typed terms, a missing name indicates an internal failure and
// results in a panic.
func (p Environment) Lookup(name string) value.Value {
	for e := p.head; e != nil; e = e.parent {
		if e.name == name {
			return e.value
		}
	}
	//
	panic(fmt.Sprintf("unbound variable %s in environment", name))
}

// Len returns the number of bindings in this environment.
func (p Environment) Len() uint {
	var n uint
	//
	for e := p.head; e != nil; e = e.parent {
		n++
	}
	//
	return n
}

// ContextToEnvironment constructs the environment in which terms elaborated
// under a given context are evaluated.  Free variables are bound to neutral
// values of their type, whilst definitions are bound to their values.  Claims
// and datatype declarations have no runtime presence.
func ContextToEnvironment(ctx Context) Environment {
	var env Environment
	//
	for _, entry := range ctx.Entries() {
		switch b := entry.Binder.(type) {
		case *Free:
			env = env.Extend(entry.Name, value.Variable(entry.Name, b.Type))
		case *Define:
			env = env.Extend(entry.Name, b.Value)
		}
	}
	//
	return env
}

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

import "sync"

// Closure is a value which is awaiting one further argument, such as the body
// of a function or the result type of a Pi.  There are two representations: a
// first-order closure which pairs an environment with a core term (provided by
// the evaluator), and a higher-order closure which wraps a native function.
type Closure interface {
	// Apply instantiates the closure with a given argument.
	Apply(arg Value) Value
}

// HigherOrderClosure is a closure backed by a native function.  These are
// used when the implementation constructs types itself, such as the motive
// and method types of an eliminator.
type HigherOrderClosure struct {
	Fn func(Value) Value
}

// Apply implementation for the Closure interface.
func (p HigherOrderClosure) Apply(arg Value) Value {
	return p.Fn(arg)
}

// Constant constructs a closure which ignores its argument.
func Constant(v Value) Closure {
	return HigherOrderClosure{func(Value) Value { return v }}
}

// Delay is a suspended computation whose result is computed at most once.
type Delay struct {
	node
	once  sync.Once
	thunk func() Value
	value Value
}

// NewDelay suspends a given computation.
func NewDelay(thunk func() Value) *Delay {
	return &Delay{thunk: thunk}
}

// Force evaluates the suspended computation (if it has not already been
// evaluated) and returns its result.
func (p *Delay) Force() Value {
	p.once.Do(func() {
		p.value = Now(p.thunk())
		p.thunk = nil
	})
	//
	return p.value
}

// Now forces a value until it is no longer delayed.
func Now(v Value) Value {
	if d, ok := v.(*Delay); ok {
		return d.Force()
	}
	//
	return v
}

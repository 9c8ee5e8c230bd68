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
package check

import (
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// InfoKind identifies the kind of information reported to an InfoHook.
type InfoKind uint

const (
	// Definition marks the name of a top-level definition.
	Definition InfoKind = iota
	// BindingSite marks a variable binding, along with the variable's type.
	BindingSite
	// IsType marks a term which was checked to be a type.
	IsType
	// HasType marks a term which was found to have a given type.
	HasType
	// Hole marks an unsolved TODO, along with its expected type and the
	// context in which it appears.
	Hole
)

func (p InfoKind) String() string {
	switch p {
	case Definition:
		return "definition"
	case BindingSite:
		return "binding-site"
	case IsType:
		return "is-type"
	case HasType:
		return "has-type"
	case Hole:
		return "TODO"
	}
	//
	return "unknown"
}

// Info is reported to an InfoHook for each relevant node of a term.  Term is
// the type of the node (or the elaborated type itself, for IsType), and
// Context is only present for holes.
type Info struct {
	Kind    InfoKind
	Term    core.Core
	Context []eval.SerializedBinder
}

// InfoHook receives information about elaborated terms, for use by editor
// tooling.  No assumption is made about what the hook does with it.
type InfoHook func(source.Location, Info)

// Checker elaborates source terms into core terms, whilst checking they are
// well-typed.  A checker holds no state of its own beyond the services it is
// configured with, and every operation is parameterised by the context in
// which it takes place.
type Checker struct {
	info  InfoHook
	holes *HoleService
}

// Option configures a Checker.
type Option func(*Checker)

// WithInfoHook configures the hook to which information about elaborated
// terms is reported.
func WithInfoHook(hook InfoHook) Option {
	return func(c *Checker) {
		c.info = hook
	}
}

// WithHoles configures the service with which TODO holes are recorded.
func WithHoles(holes *HoleService) Option {
	return func(c *Checker) {
		c.holes = holes
	}
}

// NewChecker constructs a new checker with the given options.
func NewChecker(options ...Option) *Checker {
	c := &Checker{}
	//
	for _, option := range options {
		option(c)
	}
	//
	return c
}

// Holes returns the hole service used by this checker (which may be nil).
func (c *Checker) Holes() *HoleService {
	return c.holes
}

// Report information to the hook (if there is one), provided the location is
// to be reported.  The term is computed lazily, since there is no need to read
// back types when no one is listening.
func (c *Checker) report(where source.Location, kind InfoKind, term func() core.Core) {
	if c.info != nil && where.ForInfo {
		c.info(where, Info{Kind: kind, Term: term()})
	}
}

// ReportDefinition reports the name of a top-level definition.
func (c *Checker) ReportDefinition(ctx env.Context, where source.Location, datatype value.Value) {
	c.report(where, Definition, func() core.Core { return eval.ReadBackType(ctx, datatype) })
}

func (c *Checker) reportBinding(ctx env.Context, where source.Location, datatype value.Value) {
	c.report(where, BindingSite, func() core.Core { return eval.ReadBackType(ctx, datatype) })
}

// Evaluate a term in the environment corresponding to a given context.
func evaluate(ctx env.Context, term core.Core) value.Value {
	return eval.Evaluate(ctx, term)
}

// Print a type for use in an error message.
func show(ctx env.Context, datatype value.Value) string {
	return core.String(eval.ReadBackType(ctx, datatype))
}

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
	"strings"

	"github.com/consensys/go-pie/pkg/pie/ast"
)

// Renaming maps the names bound in source terms to the fresh names chosen for
// them during elaboration.  The zero value is the empty renaming.
type Renaming struct {
	head *renaming
}

type renaming struct {
	parent *renaming
	from   string
	to     string
}

// Extend returns a new renaming which additionally maps one name to another.
func (p Renaming) Extend(from string, to string) Renaming {
	return Renaming{&renaming{p.head, from, to}}
}

// Rename determines the name to use for a given source name.  Names which
// have not been renamed are unchanged.
func (p Renaming) Rename(name string) string {
	for r := p.head; r != nil; r = r.parent {
		if r.from == name {
			return r.to
		}
	}
	//
	return name
}

// Pairs returns the mappings of this renaming, oldest first.
func (p Renaming) Pairs() [][2]string {
	var pairs [][2]string
	//
	for r := p.head; r != nil; r = r.parent {
		pairs = append([][2]string{{r.from, r.to}}, pairs...)
	}
	//
	return pairs
}

var subscripts = []rune("₀₁₂₃₄₅₆₇₈₉")

// Fresh chooses a name, based on a given name, which is not bound in a given
// context.
func Fresh(ctx Context, name string) string {
	return FreshAvoiding(ctx.Names(), name)
}

// FreshBinder chooses a name, based on a given name, which is neither bound in
// a given context nor occurs in a given source term.  This is used when
// elaborating binders, such that the chosen name cannot capture any name the
// term refers to.
func FreshBinder(ctx Context, term ast.Source, name string) string {
	return FreshAvoiding(append(ctx.Names(), ast.OccurringNames(term)...), name)
}

// FreshAvoiding chooses a name, based on a given name, which does not clash
// with any of the given names.  A clash is resolved by replacing any existing
// subscript of the name with the smallest subscript which avoids all others.
func FreshAvoiding(used []string, name string) string {
	taken := make(map[string]bool, len(used))
	//
	for _, n := range used {
		taken[n] = true
	}
	//
	if !taken[name] {
		return name
	}
	//
	base := strings.TrimRightFunc(name, isSubscript)
	if base == "" {
		base = "x"
	}
	//
	for i := 1; ; i++ {
		if candidate := base + subscript(i); !taken[candidate] {
			return candidate
		}
	}
}

func isSubscript(r rune) bool {
	return r >= subscripts[0] && r <= subscripts[9]
}

func subscript(n int) string {
	var digits []rune
	//
	for ; n > 0; n /= 10 {
		digits = append([]rune{subscripts[n%10]}, digits...)
	}
	//
	return string(digits)
}

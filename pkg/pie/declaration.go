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
package pie

import (
	"github.com/consensys/go-pie/pkg/pie/ast"
	"github.com/consensys/go-pie/pkg/pie/tactic"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Declaration is a top-level item of a Pie program.
type Declaration interface {
	Loc() source.Location
	isDeclaration()
}

// Claim declares the type of a name, ahead of its definition.
type Claim struct {
	Where source.Location
	Name  ast.SiteBinder
	Type  ast.Source
}

// Define gives a name a value.  If the name was claimed, the value is checked
// against the claimed type.  Otherwise, its type is synthesized.
type Define struct {
	Where source.Location
	Name  ast.SiteBinder
	Body  ast.Source
}

// CheckSame asserts that two expressions are the same value of a given type.
type CheckSame struct {
	Where       source.Location
	Type        ast.Source
	Left, Right ast.Source
}

// Expression is evaluated, with its normal form and type being output.
type Expression struct {
	Where source.Location
	Expr  ast.Source
}

// Data declares an inductive family.
type Data struct {
	Def *ast.TypeDefinition
}

// DefineTactically defines a claimed name by constructing its value with a
// sequence of tactics.
type DefineTactically struct {
	Where   source.Location
	Name    ast.SiteBinder
	Tactics []tactic.Tactic
}

// Loc returns the location of this declaration.
func (p *Claim) Loc() source.Location { return p.Where }

// Loc returns the location of this declaration.
func (p *Define) Loc() source.Location { return p.Where }

// Loc returns the location of this declaration.
func (p *CheckSame) Loc() source.Location { return p.Where }

// Loc returns the location of this declaration.
func (p *Expression) Loc() source.Location { return p.Where }

// Loc returns the location of this declaration.
func (p *Data) Loc() source.Location { return p.Def.Where }

// Loc returns the location of this declaration.
func (p *DefineTactically) Loc() source.Location { return p.Where }

func (p *Claim) isDeclaration()            {}
func (p *Define) isDeclaration()           {}
func (p *CheckSame) isDeclaration()        {}
func (p *Expression) isDeclaration()       {}
func (p *Data) isDeclaration()             {}
func (p *DefineTactically) isDeclaration() {}

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
package core

// AlphaEquivalent determines whether two core terms are the same, up to the
// consistent renaming of bound variables.  Two free variables are equivalent
// only when they have the same name.  Two neutral terms of type Absurd are
// always equivalent, since Absurd has no observable structure.
func AlphaEquivalent(lhs Core, rhs Core) bool {
	return alphaEquiv(lhs, rhs, nil, nil, 0)
}

// binding records the depth at which some name was bound.
type binding struct {
	name  string
	depth int
}

// bindings is a persistent association list, where later bindings shadow
// earlier ones.
type bindings []binding

func (p bindings) extend(name string, depth int) bindings {
	// Clip capacity so that appending never mutates a shared backing array.
	n := len(p)
	//
	return append(p[:n:n], binding{name, depth})
}

func (p bindings) lookup(name string) (int, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].name == name {
			return p[i].depth, true
		}
	}
	//
	return 0, false
}

//nolint:gocyclo
func alphaEquiv(lhs Core, rhs Core, lb bindings, rb bindings, depth int) bool {
	switch l := lhs.(type) {
	case *Var:
		r, ok := rhs.(*Var)
		if !ok {
			return false
		}
		//
		ld, lbound := lb.lookup(l.Name)
		rd, rbound := rb.lookup(r.Name)
		//
		if lbound && rbound {
			return ld == rd
		}
		//
		return !lbound && !rbound && l.Name == r.Name
	case *Pi:
		r, ok := rhs.(*Pi)
		//
		return ok && alphaEquiv(l.Arg, r.Arg, lb, rb, depth) &&
			alphaEquiv(l.Result, r.Result, lb.extend(l.Name, depth), rb.extend(r.Name, depth), depth+1)
	case *Sigma:
		r, ok := rhs.(*Sigma)
		//
		return ok && alphaEquiv(l.Car, r.Car, lb, rb, depth) &&
			alphaEquiv(l.Cdr, r.Cdr, lb.extend(l.Name, depth), rb.extend(r.Name, depth), depth+1)
	case *Lambda:
		r, ok := rhs.(*Lambda)
		//
		return ok && alphaEquiv(l.Body, r.Body, lb.extend(l.Name, depth), rb.extend(r.Name, depth), depth+1)
	case *The:
		r, ok := rhs.(*The)
		if !ok {
			return false
		} else if _, absurd := l.Type.(*Absurd); absurd {
			// Any two neutral inhabitants of Absurd are the same.
			_, absurd = r.Type.(*Absurd)
			return absurd
		}
		//
		return alphaEquiv(l.Type, r.Type, lb, rb, depth) && alphaEquiv(l.Expr, r.Expr, lb, rb, depth)
	case *Quote:
		r, ok := rhs.(*Quote)
		return ok && l.Symbol == r.Symbol
	case *TODO:
		// Holes are only the same as themselves.
		r, ok := rhs.(*TODO)
		return ok && l.Where == r.Where && alphaEquiv(l.Type, r.Type, lb, rb, depth)
	case *InductiveType:
		r, ok := rhs.(*InductiveType)
		//
		return ok && l.Def == r.Def && alphaEquivAll(l.Parameters, r.Parameters, lb, rb, depth) &&
			alphaEquivAll(l.Indices, r.Indices, lb, rb, depth)
	case *Constructor:
		r, ok := rhs.(*Constructor)
		//
		return ok && l.Def == r.Def && l.Index == r.Index && alphaEquivAll(l.Arguments, r.Arguments, lb, rb, depth)
	case *Eliminator:
		r, ok := rhs.(*Eliminator)
		//
		return ok && l.Def == r.Def && alphaEquiv(l.Target, r.Target, lb, rb, depth) &&
			alphaEquiv(l.Motive, r.Motive, lb, rb, depth) && alphaEquivAll(l.Methods, r.Methods, lb, rb, depth)
	}
	// Everything else is compared structurally.
	lchildren, ltag := Children(lhs)
	rchildren, rtag := Children(rhs)
	//
	return ltag == rtag && alphaEquivAll(lchildren, rchildren, lb, rb, depth)
}

func alphaEquivAll(lhs []Core, rhs []Core, lb bindings, rb bindings, depth int) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !alphaEquiv(lhs[i], rhs[i], lb, rb, depth) {
			return false
		}
	}
	//
	return true
}

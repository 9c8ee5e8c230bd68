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

// Children decomposes a term which binds no variables into its immediate
// subterms, along with a head symbol identifying its form.  Variables, binding
// forms, atoms, holes and terms over user-declared families have no generic
// decomposition, and return an empty head.
//
//nolint:gocyclo
func Children(term Core) ([]Core, string) {
	switch t := term.(type) {
	case *Universe:
		return nil, "U"
	case *Nat:
		return nil, "Nat"
	case *Zero:
		return nil, "zero"
	case *Add1:
		return []Core{t.N}, "add1"
	case *WhichNat:
		return []Core{t.Target, t.BaseType, t.Base, t.Step}, "which-Nat"
	case *IterNat:
		return []Core{t.Target, t.BaseType, t.Base, t.Step}, "iter-Nat"
	case *RecNat:
		return []Core{t.Target, t.BaseType, t.Base, t.Step}, "rec-Nat"
	case *IndNat:
		return []Core{t.Target, t.Motive, t.Base, t.Step}, "ind-Nat"
	case *App:
		return []Core{t.Fun, t.Arg}, "#app"
	case *Cons:
		return []Core{t.Car, t.Cdr}, "cons"
	case *Car:
		return []Core{t.Pair}, "car"
	case *Cdr:
		return []Core{t.Pair}, "cdr"
	case *Atom:
		return nil, "Atom"
	case *Trivial:
		return nil, "Trivial"
	case *Sole:
		return nil, "sole"
	case *Absurd:
		return nil, "Absurd"
	case *IndAbsurd:
		return []Core{t.Target, t.Motive}, "ind-Absurd"
	case *List:
		return []Core{t.Entry}, "List"
	case *Nil:
		return nil, "nil"
	case *ListCons:
		return []Core{t.Head, t.Tail}, "::"
	case *RecList:
		return []Core{t.Target, t.BaseType, t.Base, t.Step}, "rec-List"
	case *IndList:
		return []Core{t.Target, t.Motive, t.Base, t.Step}, "ind-List"
	case *Vec:
		return []Core{t.Entry, t.Length}, "Vec"
	case *VecNil:
		return nil, "vecnil"
	case *VecCons:
		return []Core{t.Head, t.Tail}, "vec::"
	case *Head:
		return []Core{t.Vec}, "head"
	case *Tail:
		return []Core{t.Vec}, "tail"
	case *IndVec:
		return []Core{t.Length, t.Target, t.Motive, t.Base, t.Step}, "ind-Vec"
	case *Equal:
		return []Core{t.Type, t.From, t.To}, "="
	case *Same:
		return []Core{t.Expr}, "same"
	case *Replace:
		return []Core{t.Target, t.Motive, t.Base}, "replace"
	case *Trans:
		return []Core{t.Left, t.Right}, "trans"
	case *Cong:
		return []Core{t.Target, t.Result, t.Fun}, "cong"
	case *Symm:
		return []Core{t.Expr}, "symm"
	case *IndEqual:
		return []Core{t.Target, t.Motive, t.Base}, "ind-="
	case *Either:
		return []Core{t.Left, t.Right}, "Either"
	case *Left:
		return []Core{t.Expr}, "left"
	case *Right:
		return []Core{t.Expr}, "right"
	case *IndEither:
		return []Core{t.Target, t.Motive, t.Left, t.Right}, "ind-Either"
	}
	//
	return nil, ""
}

// Occurs determines whether a given name occurs free in a term.
func Occurs(name string, term Core) bool {
	switch t := term.(type) {
	case *Var:
		return t.Name == name
	case *Pi:
		return Occurs(name, t.Arg) || (t.Name != name && Occurs(name, t.Result))
	case *Sigma:
		return Occurs(name, t.Car) || (t.Name != name && Occurs(name, t.Cdr))
	case *Lambda:
		return t.Name != name && Occurs(name, t.Body)
	case *The:
		return Occurs(name, t.Type) || Occurs(name, t.Expr)
	case *TODO:
		return Occurs(name, t.Type)
	case *Quote:
		return false
	case *InductiveType:
		return occursAny(name, t.Parameters) || occursAny(name, t.Indices)
	case *Constructor:
		return occursAny(name, t.Arguments)
	case *Eliminator:
		return Occurs(name, t.Target) || Occurs(name, t.Motive) || occursAny(name, t.Methods)
	}
	//
	children, head := Children(term)
	//
	if head == "" {
		panic("unknown core term")
	}
	//
	return occursAny(name, children)
}

func occursAny(name string, terms []Core) bool {
	for _, t := range terms {
		if Occurs(name, t) {
			return true
		}
	}
	//
	return false
}

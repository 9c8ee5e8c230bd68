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
package ast

// Children implementations.  Leaves have no children.

// Children of a leaf.
func (p *Universe) Children() []Source { return nil }

// Children of a leaf.
func (p *TODO) Children() []Source { return nil }

// Children of a leaf.
func (p *Var) Children() []Source { return nil }

// Children of a leaf.
func (p *Nat) Children() []Source { return nil }

// Children of a leaf.
func (p *Zero) Children() []Source { return nil }

// Children of a leaf.
func (p *NatLiteral) Children() []Source { return nil }

// Children of a leaf.
func (p *Atom) Children() []Source { return nil }

// Children of a leaf.
func (p *Quote) Children() []Source { return nil }

// Children of a leaf.
func (p *Trivial) Children() []Source { return nil }

// Children of a leaf.
func (p *Sole) Children() []Source { return nil }

// Children of a leaf.
func (p *Absurd) Children() []Source { return nil }

// Children of a leaf.
func (p *Nil) Children() []Source { return nil }

// Children of a leaf.
func (p *VecNil) Children() []Source { return nil }

// Children of an ascription.
func (p *The) Children() []Source { return []Source{p.Type, p.Expr} }

// Children of add1.
func (p *Add1) Children() []Source { return []Source{p.N} }

// Children of which-Nat.
func (p *WhichNat) Children() []Source { return []Source{p.Target, p.Base, p.Step} }

// Children of iter-Nat.
func (p *IterNat) Children() []Source { return []Source{p.Target, p.Base, p.Step} }

// Children of rec-Nat.
func (p *RecNat) Children() []Source { return []Source{p.Target, p.Base, p.Step} }

// Children of ind-Nat.
func (p *IndNat) Children() []Source { return []Source{p.Target, p.Motive, p.Base, p.Step} }

// Children of an arrow.
func (p *Arrow) Children() []Source { return p.Types }

// Children of a Pi type, including binder types.
func (p *Pi) Children() []Source { return append(binderTypes(p.Binders), p.Body) }

// Children of a lambda.
func (p *Lambda) Children() []Source { return []Source{p.Body} }

// Children of an application.
func (p *App) Children() []Source { return append([]Source{p.Fun}, p.Args...) }

// Children of a Sigma type, including binder types.
func (p *Sigma) Children() []Source { return append(binderTypes(p.Binders), p.Body) }

// Children of a Pair type.
func (p *Pair) Children() []Source { return []Source{p.Car, p.Cdr} }

// Children of cons.
func (p *Cons) Children() []Source { return []Source{p.Car, p.Cdr} }

// Children of car.
func (p *Car) Children() []Source { return []Source{p.Pair} }

// Children of cdr.
func (p *Cdr) Children() []Source { return []Source{p.Pair} }

// Children of ind-Absurd.
func (p *IndAbsurd) Children() []Source { return []Source{p.Target, p.Motive} }

// Children of a List type.
func (p *List) Children() []Source { return []Source{p.Entry} }

// Children of ::.
func (p *ListCons) Children() []Source { return []Source{p.Head, p.Tail} }

// Children of rec-List.
func (p *RecList) Children() []Source { return []Source{p.Target, p.Base, p.Step} }

// Children of ind-List.
func (p *IndList) Children() []Source { return []Source{p.Target, p.Motive, p.Base, p.Step} }

// Children of a Vec type.
func (p *Vec) Children() []Source { return []Source{p.Entry, p.Length} }

// Children of vec::.
func (p *VecCons) Children() []Source { return []Source{p.Head, p.Tail} }

// Children of head.
func (p *Head) Children() []Source { return []Source{p.Vec} }

// Children of tail.
func (p *Tail) Children() []Source { return []Source{p.Vec} }

// Children of ind-Vec.
func (p *IndVec) Children() []Source {
	return []Source{p.Length, p.Target, p.Motive, p.Base, p.Step}
}

// Children of an equality type.
func (p *Equal) Children() []Source { return []Source{p.Type, p.From, p.To} }

// Children of same.
func (p *Same) Children() []Source { return []Source{p.Expr} }

// Children of replace.
func (p *Replace) Children() []Source { return []Source{p.Target, p.Motive, p.Base} }

// Children of trans.
func (p *Trans) Children() []Source { return []Source{p.Left, p.Right} }

// Children of cong.
func (p *Cong) Children() []Source { return []Source{p.Target, p.Fun} }

// Children of symm.
func (p *Symm) Children() []Source { return []Source{p.Expr} }

// Children of ind-=.
func (p *IndEqual) Children() []Source { return []Source{p.Target, p.Motive, p.Base} }

// Children of an Either type.
func (p *Either) Children() []Source { return []Source{p.Left, p.Right} }

// Children of left.
func (p *Left) Children() []Source { return []Source{p.Expr} }

// Children of right.
func (p *Right) Children() []Source { return []Source{p.Expr} }

// Children of ind-Either.
func (p *IndEither) Children() []Source { return []Source{p.Target, p.Motive, p.Left, p.Right} }

func binderTypes(binders []TypedBinder) []Source {
	types := make([]Source, len(binders))
	//
	for i, b := range binders {
		types[i] = b.Type
	}
	//
	return types
}

// OccurringNames returns every name which occurs in a given term, whether as a
// variable reference or as a binding site.  This is used when choosing fresh
// names, such that a freshly chosen name cannot capture anything in the term.
func OccurringNames(term Source) []string {
	var names []string
	//
	Walk(term, func(node Source) {
		switch t := node.(type) {
		case *Var:
			names = append(names, t.Name)
		case *Pi:
			for _, b := range t.Binders {
				names = append(names, b.Name)
			}
		case *Sigma:
			for _, b := range t.Binders {
				names = append(names, b.Name)
			}
		case *Lambda:
			for _, b := range t.Binders {
				names = append(names, b.Name)
			}
		}
	})
	//
	return names
}

// Walk visits every node of a term in pre-order.
func Walk(term Source, visit func(Source)) {
	visit(term)
	//
	for _, child := range term.Children() {
		Walk(child, visit)
	}
}

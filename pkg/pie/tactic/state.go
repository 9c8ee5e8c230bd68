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
package tactic

import (
	"strings"

	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/value"
	"github.com/consensys/go-pie/pkg/util/source"
)

// Goal is an obligation to construct a term of a given type in a given
// context.  Term is nil until the goal is solved.
type Goal struct {
	ID       int
	Type     value.Value
	Context  env.Context
	Renaming env.Renaming
	Term     core.Core
}

// String renders a goal as its hypotheses, one per line, followed by its
// type.
func (p Goal) String() string {
	var builder strings.Builder
	//
	for _, b := range eval.ReadBackContext(p.Context) {
		if b.Kind == eval.KindFree {
			builder.WriteString("  " + b.Name + " : " + core.String(b.Type) + "\n")
		}
	}
	//
	builder.WriteString("  ⊢ " + core.String(eval.ReadBackType(p.Context, p.Type)))
	//
	return builder.String()
}

// GoalNode is a node in the goal tree.  Nodes are held in an arena, such that
// parent and children are indices into the arena rather than pointers.  A
// node which has been refined by a tactic assembles its term from those of its
// children once they are all complete.
type GoalNode struct {
	Goal     Goal
	Parent   int
	Children []int
	Complete bool
	// Active is the first child branch not yet consumed by then.
	Active   int
	assemble func([]core.Core) core.Core
}

// ProofState is a goal tree, along with the goal currently in focus.  A proof
// state is never modified once constructed: applying a tactic produces a new
// state, and leaves the original untouched.  Each state remembers the state
// from which it was produced, so that tactics can be undone.
type ProofState struct {
	checker *check.Checker
	nodes   []GoalNode
	// focus is the open goal to which the next tactic applies, or -1 when the
	// proof is complete.
	focus    int
	previous *ProofState
}

// Initialize constructs the proof state for a theorem of a given type in a
// given (global) context.  The state has a single goal.
func Initialize(checker *check.Checker, ctx env.Context, theorem value.Value) *ProofState {
	root := GoalNode{Goal: Goal{ID: 0, Type: theorem, Context: ctx}, Parent: -1}
	//
	return &ProofState{checker: checker, nodes: []GoalNode{root}, focus: 0}
}

// IsComplete determines whether every goal in the tree has been solved.
func (p *ProofState) IsComplete() bool {
	return p.nodes[0].Complete
}

// Term returns the term constructed by a complete proof, or nil.
func (p *ProofState) Term() core.Core {
	return p.nodes[0].Goal.Term
}

// Root returns the goal at the root of the tree.
func (p *ProofState) Root() Goal {
	return p.nodes[0].Goal
}

// Node returns the node with a given identifier.
func (p *ProofState) Node(id int) GoalNode {
	return p.nodes[id]
}

// Focus returns the goal currently in focus, or false if the proof is
// complete.
func (p *ProofState) Focus() (Goal, bool) {
	if p.focus < 0 {
		return Goal{}, false
	}
	//
	return p.nodes[p.focus].Goal, true
}

// OpenGoals returns every unsolved goal, in tree order.
func (p *ProofState) OpenGoals() []Goal {
	var goals []Goal
	//
	for _, id := range p.open(0) {
		goals = append(goals, p.nodes[id].Goal)
	}
	//
	return goals
}

// Undo returns the state from which this state was produced, or false if this
// is an initial state.
func (p *ProofState) Undo() (*ProofState, bool) {
	return p.previous, p.previous != nil
}

// NextGoal moves focus to the next open goal in tree order, wrapping around at
// the end.  This does not change the logical state of the proof.
func (p *ProofState) NextGoal() *ProofState {
	return p.move(1)
}

// PreviousGoal moves focus to the previous open goal in tree order, wrapping
// around at the start.
func (p *ProofState) PreviousGoal() *ProofState {
	return p.move(-1)
}

func (p *ProofState) move(delta int) *ProofState {
	goals := p.open(0)
	//
	if len(goals) <= 1 {
		return p
	}
	//
	for i, id := range goals {
		if id == p.focus {
			next := *p
			next.focus = goals[(i+len(goals)+delta)%len(goals)]
			//
			return &next
		}
	}
	// Focus was not open, which cannot happen for a well-formed state.
	panic("focused goal is not open")
}

// Apply a tactic to this state, producing a new state in which this one is
// recorded as the previous state.  On failure, this state is unaffected.
func (p *ProofState) Apply(t Tactic) (*ProofState, *source.Stop) {
	if p.focus < 0 {
		return nil, source.Stopf(t.Loc(), "No goals remain for %s", t.Name())
	}
	// Tactics are applied to a private copy, which is discarded on failure.
	next := &ProofState{
		checker:  p.checker,
		nodes:    append([]GoalNode(nil), p.nodes...),
		focus:    p.focus,
		previous: p,
	}
	//
	if stop := next.apply(t); stop != nil {
		return nil, stop
	}
	//
	return next, nil
}

//nolint:gocyclo
func (p *ProofState) apply(t Tactic) *source.Stop {
	goal := p.nodes[p.focus].Goal
	//
	switch t := t.(type) {
	case *Intro:
		return p.intro(goal, t)
	case *Exact:
		term, stop := p.checker.Check(goal.Context, goal.Renaming, t.Term, goal.Type)
		if stop == nil {
			p.solve(p.focus, term)
		}
		//
		return stop
	case *Exists:
		return p.exists(goal, t)
	case *Split:
		return p.split(goal, t)
	case *Left:
		return p.inject(goal, t.Where, true)
	case *Right:
		return p.inject(goal, t.Where, false)
	case *Apply:
		return p.applyFun(goal, t)
	case *EliminateNat:
		return p.eliminateNat(goal, t)
	case *EliminateList:
		return p.eliminateList(goal, t)
	case *EliminateVec:
		return p.eliminateVec(goal, t)
	case *EliminateEqual:
		return p.eliminateEqual(goal, t)
	case *EliminateEither:
		return p.eliminateEither(goal, t)
	case *EliminateAbsurd:
		return p.eliminateAbsurd(goal, t)
	case *Then:
		return p.then(t)
	}
	//
	panic("unknown tactic")
}

func (p *ProofState) intro(goal Goal, t *Intro) *source.Stop {
	pi, ok := value.Now(goal.Type).(*value.Pi)
	if !ok {
		return p.shape(goal, t, "a Π type")
	}
	//
	name := t.Binder
	if name == "" {
		name = pi.ArgName
	}
	//
	x := env.Fresh(goal.Context, name)
	child := Goal{
		Type:     pi.Result.Apply(value.Variable(x, pi.ArgType)),
		Context:  goal.Context.Extend(x, &env.Free{Type: pi.ArgType}),
		Renaming: goal.Renaming.Extend(name, x),
	}
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.Lambda{Name: x, Body: terms[0]}
	}, child)
	//
	return nil
}

func (p *ProofState) exists(goal Goal, t *Exists) *source.Stop {
	sigma, ok := value.Now(goal.Type).(*value.Sigma)
	if !ok {
		return p.shape(goal, t, "a Σ type")
	}
	//
	car, stop := p.checker.Check(goal.Context, goal.Renaming, t.Value, sigma.CarType)
	if stop != nil {
		return stop
	}
	//
	v := eval.Evaluate(goal.Context, car)
	child := Goal{Type: sigma.CdrType.Apply(v), Context: goal.Context, Renaming: goal.Renaming}
	//
	if t.Binder == "" {
		p.refine(func(terms []core.Core) core.Core {
			return &core.Cons{Car: car, Cdr: terms[0]}
		}, child)
		//
		return nil
	}
	// The witness is available by name whilst solving the second component.
	x := env.Fresh(goal.Context, t.Binder)
	child.Context = goal.Context.Extend(x, &env.Define{Type: sigma.CarType, Value: v})
	child.Renaming = goal.Renaming.Extend(t.Binder, x)
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.Cons{Car: car, Cdr: &core.App{Fun: &core.Lambda{Name: x, Body: terms[0]}, Arg: car}}
	}, child)
	//
	return nil
}

func (p *ProofState) split(goal Goal, t *Split) *source.Stop {
	sigma, ok := value.Now(goal.Type).(*value.Sigma)
	if !ok {
		return p.shape(goal, t, "a Σ type")
	}
	// The second component is solved for an opaque first component.
	x := env.Fresh(goal.Context, sigma.CarName)
	first := Goal{Type: sigma.CarType, Context: goal.Context, Renaming: goal.Renaming}
	second := Goal{
		Type:     sigma.CdrType.Apply(value.Variable(x, sigma.CarType)),
		Context:  goal.Context.Extend(x, &env.Free{Type: sigma.CarType}),
		Renaming: goal.Renaming.Extend(sigma.CarName, x),
	}
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.Cons{Car: terms[0], Cdr: &core.App{Fun: &core.Lambda{Name: x, Body: terms[1]}, Arg: terms[0]}}
	}, first, second)
	//
	return nil
}

func (p *ProofState) inject(goal Goal, where source.Location, left bool) *source.Stop {
	either, ok := value.Now(goal.Type).(*value.Either)
	if !ok && left {
		return source.Stopf(where, "left requires an Either type, but the goal is %s", show(goal))
	} else if !ok {
		return source.Stopf(where, "right requires an Either type, but the goal is %s", show(goal))
	}
	//
	child := Goal{Type: either.Right, Context: goal.Context, Renaming: goal.Renaming}
	assemble := func(terms []core.Core) core.Core { return &core.Right{Expr: terms[0]} }
	//
	if left {
		child.Type = either.Left
		assemble = func(terms []core.Core) core.Core { return &core.Left{Expr: terms[0]} }
	}
	//
	p.refine(assemble, child)
	//
	return nil
}

func (p *ProofState) applyFun(goal Goal, t *Apply) *source.Stop {
	fun, stop := p.checker.Synth(goal.Context, goal.Renaming, t.Fun)
	if stop != nil {
		return stop
	}
	//
	pi, ok := value.Now(eval.Evaluate(goal.Context, fun.Type)).(*value.Pi)
	if !ok {
		return source.Stopf(t.Where, "apply requires a function, but was given a %s", core.String(fun.Type))
	}
	// Only non-dependent functions can be applied backwards, since the
	// argument is not known yet.
	if datatype, ok := eval.ReadBackType(goal.Context, pi).(*core.Pi); ok && core.Occurs(datatype.Name, datatype.Result) {
		return source.Stopf(t.Where, "apply requires a non-dependent function, but was given a %s",
			core.String(datatype))
	}
	//
	result := pi.Result.Apply(value.Variable(pi.ArgName, pi.ArgType))
	if stop := eval.SameType(goal.Context, t.Where, goal.Type, result); stop != nil {
		return stop
	}
	//
	p.refine(func(terms []core.Core) core.Core {
		return &core.App{Fun: fun.Expr, Arg: terms[0]}
	}, Goal{Type: pi.ArgType, Context: goal.Context, Renaming: goal.Renaming})
	//
	return nil
}

// Apply a tactic sequence to the first branch not yet consumed, beneath the
// nearest ancestor of the focus which has more than one branch.
func (p *ProofState) then(t *Then) *source.Stop {
	branch, index, ok := p.pending()
	if !ok {
		return source.NewStop(t.Where, "then requires a pending branch")
	}
	//
	child := p.nodes[branch].Children[index]
	p.nodes[branch].Active = index + 1
	//
	for _, tactic := range t.Tactics {
		if p.focus = p.first(child); p.focus < 0 {
			return source.Stopf(tactic.Loc(), "No goals remain in this branch for %s", tactic.Name())
		}
		//
		if stop := p.apply(tactic); stop != nil {
			return stop
		}
	}
	//
	p.focus = p.first(0)
	//
	return nil
}

func (p *ProofState) pending() (int, int, bool) {
	for n := p.nodes[p.focus].Parent; n >= 0; n = p.nodes[n].Parent {
		node := p.nodes[n]
		//
		if len(node.Children) < 2 {
			continue
		}
		//
		for i := node.Active; i < len(node.Children); i++ {
			if !p.nodes[node.Children[i]].Complete {
				return n, i, true
			}
		}
	}
	//
	return 0, 0, false
}

// Replace the focused goal with zero or more child goals, from whose terms the
// focused goal's term is later assembled.  Focus moves to the first open goal.
func (p *ProofState) refine(assemble func([]core.Core) core.Core, children ...Goal) {
	var (
		parent = p.focus
		ids    = make([]int, len(children))
	)
	//
	for i, goal := range children {
		goal.ID = len(p.nodes)
		ids[i] = goal.ID
		p.nodes = append(p.nodes, GoalNode{Goal: goal, Parent: parent})
	}
	//
	p.nodes[parent].Children = ids
	p.nodes[parent].assemble = assemble
	//
	if len(ids) == 0 {
		p.solve(parent, assemble(nil))
	} else {
		p.focus = p.first(0)
	}
}

// Solve a goal with a given term, and then complete every ancestor whose
// children are now all complete.
func (p *ProofState) solve(id int, term core.Core) {
	for {
		node := &p.nodes[id]
		node.Goal.Term = term
		node.Complete = true
		//
		if node.Parent < 0 {
			break
		}
		//
		parent := &p.nodes[node.Parent]
		terms := make([]core.Core, len(parent.Children))
		//
		for i, c := range parent.Children {
			if !p.nodes[c].Complete {
				p.focus = p.first(0)
				return
			}
			//
			terms[i] = p.nodes[c].Goal.Term
		}
		//
		id, term = node.Parent, parent.assemble(terms)
	}
	//
	p.focus = p.first(0)
}

// Determine the first open goal beneath a given node, or -1 if there is none.
func (p *ProofState) first(id int) int {
	if goals := p.open(id); len(goals) > 0 {
		return goals[0]
	}
	//
	return -1
}

// Determine all open goals beneath a given node, in tree order.
func (p *ProofState) open(id int) []int {
	node := p.nodes[id]
	//
	if node.Complete {
		return nil
	} else if len(node.Children) == 0 {
		return []int{id}
	}
	//
	var goals []int
	for _, c := range node.Children {
		goals = append(goals, p.open(c)...)
	}
	//
	return goals
}

func (p *ProofState) shape(goal Goal, t Tactic, required string) *source.Stop {
	return source.Stopf(t.Loc(), "%s requires %s, but the goal is %s", t.Name(), required, show(goal))
}

func show(goal Goal) string {
	return core.String(eval.ReadBackType(goal.Context, goal.Type))
}

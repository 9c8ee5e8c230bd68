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
	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/pie/tactic"
	"github.com/consensys/go-pie/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Config packages up options which affect how programs are processed and
// reported.
type Config struct {
	// Width of the page when pretty printing terms.
	Width uint
	// Debug enables dumping of elaborated terms.
	Debug bool
}

// DefaultConfig returns the configuration used in the absence of any other.
func DefaultConfig() Config {
	return Config{Width: 80}
}

// Output is produced for each expression evaluated at the top level of a
// program.  The term is always of the form (the T e), where e is in normal
// form.
type Output struct {
	Where source.Location
	Term  *core.The
}

// Program processes a sequence of declarations against a growing context.
// Each declaration either succeeds, extending the context, or fails leaving
// it exactly as it was.
type Program struct {
	config  Config
	checker *check.Checker
	ctx     env.Context
}

// NewProgram constructs an empty program whose checker is configured with the
// given options.
func NewProgram(config Config, options ...check.Option) *Program {
	return &Program{config: config, checker: check.NewChecker(options...)}
}

// Config returns the configuration of this program.
func (p *Program) Config() Config {
	return p.config
}

// Context returns the context established by the declarations processed so
// far.
func (p *Program) Context() env.Context {
	return p.ctx
}

// Checker returns the checker used for this program.
func (p *Program) Checker() *check.Checker {
	return p.checker
}

// Process a sequence of declarations in order, stopping at the first which
// fails.
func (p *Program) Process(decls []Declaration) ([]Output, *source.Stop) {
	var outputs []Output
	//
	for _, decl := range decls {
		output, stop := p.Declare(decl)
		if stop != nil {
			return outputs, stop
		} else if output != nil {
			outputs = append(outputs, *output)
		}
	}
	//
	return outputs, nil
}

// Declare processes a single declaration.  On failure, the program is
// unchanged and any holes recorded whilst checking the declaration are
// discarded.
func (p *Program) Declare(decl Declaration) (*Output, *source.Stop) {
	var (
		holes = p.checker.Holes()
		n     int
	)
	//
	if holes != nil {
		n = holes.Len()
	}
	//
	ctx, output, stop := p.declare(decl)
	//
	if stop != nil {
		log.Debugf("declaration at %s failed: %s", decl.Loc(), stop.Message)
		//
		if holes != nil {
			holes.Truncate(n)
		}
		//
		return nil, stop
	}
	//
	log.Debugf("declaration at %s ok (%d names bound)", decl.Loc(), ctx.Len())
	p.ctx = ctx
	//
	return output, nil
}

// Normalize an expression in the context of this program, producing its type
// and normal form.
func (p *Program) Normalize(expr ast.Source) (*core.The, *source.Stop) {
	the, stop := p.checker.Synth(p.ctx, env.Renaming{}, expr)
	if stop != nil {
		return nil, stop
	}
	//
	datatype := eval.Evaluate(p.ctx, the.Type)
	//
	return &core.The{
		Type: eval.ReadBackType(p.ctx, datatype),
		Expr: eval.Normalize(p.ctx, datatype, the.Expr),
	}, nil
}

// Prove begins a proof of a name which has been claimed but not yet defined.
func (p *Program) Prove(name string, where source.Location) (*tactic.ProofState, *source.Stop) {
	claim, stop := p.claim(name, where)
	if stop != nil {
		return nil, stop
	}
	//
	return tactic.Initialize(p.checker, p.ctx, claim.Type), nil
}

//nolint:gocyclo
func (p *Program) declare(decl Declaration) (env.Context, *Output, *source.Stop) {
	var (
		ctx = p.ctx
		r   env.Renaming
	)
	//
	switch d := decl.(type) {
	case *Claim:
		if ctx.Bound(d.Name.Name) {
			return ctx, nil, source.Stopf(d.Name.Where, "The name %s is already in use", d.Name.Name)
		}
		//
		t, stop := p.checker.IsType(ctx, r, d.Type)
		if stop != nil {
			return ctx, nil, stop
		}
		//
		datatype := eval.Evaluate(ctx, t)
		p.checker.ReportDefinition(ctx, d.Name.Where, datatype)
		//
		return ctx.Extend(d.Name.Name, &env.Claim{Type: datatype}), nil, nil
	case *Define:
		b, ok := ctx.Lookup(d.Name.Name)
		//
		if claim, isClaim := b.(*env.Claim); isClaim {
			e, stop := p.checker.Check(ctx, r, d.Body, claim.Type)
			if stop != nil {
				return ctx, nil, stop
			}
			//
			return ctx.Rebind(d.Name.Name, &env.Define{Type: claim.Type, Value: eval.Evaluate(ctx, e)}), nil, nil
		} else if ok {
			return ctx, nil, source.Stopf(d.Name.Where, "The name %s is already in use", d.Name.Name)
		}
		//
		the, stop := p.checker.Synth(ctx, r, d.Body)
		if stop != nil {
			return ctx, nil, stop
		}
		//
		datatype := eval.Evaluate(ctx, the.Type)
		p.checker.ReportDefinition(ctx, d.Name.Where, datatype)
		//
		return ctx.Extend(d.Name.Name, &env.Define{Type: datatype, Value: eval.Evaluate(ctx, the.Expr)}), nil, nil
	case *CheckSame:
		t, stop := p.checker.IsType(ctx, r, d.Type)
		if stop != nil {
			return ctx, nil, stop
		}
		//
		datatype := eval.Evaluate(ctx, t)
		//
		lhs, stop := p.checker.Check(ctx, r, d.Left, datatype)
		if stop != nil {
			return ctx, nil, stop
		}
		//
		rhs, stop := p.checker.Check(ctx, r, d.Right, datatype)
		if stop != nil {
			return ctx, nil, stop
		}
		//
		return ctx, nil, eval.Convert(ctx, d.Where, datatype, eval.Evaluate(ctx, lhs), eval.Evaluate(ctx, rhs))
	case *Expression:
		the, stop := p.Normalize(d.Expr)
		if stop != nil {
			return ctx, nil, stop
		}
		//
		return ctx, &Output{Where: d.Where, Term: the}, nil
	case *Data:
		ctx, _, stop := p.checker.Datatype(ctx, d.Def)
		return ctx, nil, stop
	case *DefineTactically:
		return p.defineTactically(d)
	}
	//
	panic("unknown declaration")
}

func (p *Program) defineTactically(d *DefineTactically) (env.Context, *Output, *source.Stop) {
	claim, stop := p.claim(d.Name.Name, d.Name.Where)
	if stop != nil {
		return p.ctx, nil, stop
	}
	//
	session := tactic.NewSession(d.Name.Name, tactic.Initialize(p.checker, p.ctx, claim.Type))
	//
	for _, t := range d.Tactics {
		if stop := session.Run(t); stop != nil {
			return p.ctx, nil, stop
		}
	}
	//
	state := session.State()
	if !state.IsComplete() {
		return p.ctx, nil, source.Stopf(d.Where, "Proof of %s is incomplete: %d goals remain", d.Name.Name,
			len(state.OpenGoals()))
	}
	//
	value := eval.Evaluate(p.ctx, state.Term())
	//
	return p.ctx.Rebind(d.Name.Name, &env.Define{Type: claim.Type, Value: value}), nil, nil
}

func (p *Program) claim(name string, where source.Location) (*env.Claim, *source.Stop) {
	b, ok := p.ctx.Lookup(name)
	//
	if claim, isClaim := b.(*env.Claim); isClaim {
		return claim, nil
	} else if ok {
		return nil, source.Stopf(where, "The name %s is already defined", name)
	}
	//
	return nil, source.Stopf(where, "%s must be claimed before it is defined", name)
}

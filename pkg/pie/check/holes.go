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
	"context"

	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/eval"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// HoleInfo describes an unsolved TODO: where it is, what is in scope and what
// type of term is expected there.
type HoleInfo struct {
	ID           uuid.UUID
	Where        source.Location
	Context      []eval.SerializedBinder
	ExpectedType core.Core
	Renaming     [][2]string
}

// Solver suggests terms to fill holes.  Solvers are external collaborators
// which may be slow, non-deterministic or unavailable, hence their suggestions
// are only ever advisory.
type Solver interface {
	Suggest(ctx context.Context, hole HoleInfo) (string, error)
}

// SolverFunc adapts a function into a Solver.
type SolverFunc func(ctx context.Context, hole HoleInfo) (string, error)

// Suggest implementation for the Solver interface.
func (f SolverFunc) Suggest(ctx context.Context, hole HoleInfo) (string, error) {
	return f(ctx, hole)
}

// Suggestion is a term suggested by a solver for a given hole.
type Suggestion struct {
	Hole uuid.UUID
	Term string
}

// HoleService records the holes encountered during elaboration.  A service is
// passed explicitly to each checker which should use it, and is not safe for
// concurrent use.
type HoleService struct {
	holes []HoleInfo
}

// NewHoleService constructs an empty hole service.
func NewHoleService() *HoleService {
	return &HoleService{}
}

// Record a hole of a given type in a given context.
func (p *HoleService) Record(ctx env.Context, r env.Renaming, where source.Location, expected core.Core) HoleInfo {
	hole := HoleInfo{
		ID:           uuid.New(),
		Where:        where,
		Context:      eval.ReadBackContext(ctx),
		ExpectedType: expected,
		Renaming:     r.Pairs(),
	}
	//
	p.holes = append(p.holes, hole)
	//
	return hole
}

// Holes returns the holes recorded so far, in the order encountered.
func (p *HoleService) Holes() []HoleInfo {
	return p.holes
}

// Len returns the number of holes recorded so far.
func (p *HoleService) Len() int {
	return len(p.holes)
}

// Truncate discards all holes recorded after the first n.  This is used to
// forget the holes of a declaration which was subsequently rejected.
func (p *HoleService) Truncate(n int) {
	if n < len(p.holes) {
		p.holes = p.holes[:n]
	}
}

// Solve asks a solver for suggestions for every recorded hole.  Holes for which
// the solver fails are logged and skipped.
func (p *HoleService) Solve(ctx context.Context, solver Solver) []Suggestion {
	var suggestions []Suggestion
	//
	for _, hole := range p.holes {
		if ctx.Err() != nil {
			log.Debugf("hole solving cancelled (%s)", ctx.Err())
			break
		}
		//
		term, err := solver.Suggest(ctx, hole)
		//
		if err != nil {
			log.Warnf("no suggestion for hole at %s: %s", hole.Where.String(), err)
			continue
		}
		//
		suggestions = append(suggestions, Suggestion{hole.ID, term})
	}
	//
	return suggestions
}

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
	"github.com/consensys/go-pie/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Session drives a proof interactively.  Unlike a proof state, a session is
// mutable: it tracks the current state, along with any undone states which
// can be redone.
type Session struct {
	name  string
	state *ProofState
	redo  []*ProofState
}

// NewSession begins a session for a named theorem from a given initial state.
func NewSession(name string, state *ProofState) *Session {
	return &Session{name: name, state: state}
}

// State returns the current proof state.
func (s *Session) State() *ProofState {
	return s.state
}

// Run applies a tactic to the current state.  On failure, the current state is
// unchanged.
func (s *Session) Run(t Tactic) *source.Stop {
	next, stop := s.state.Apply(t)
	//
	if stop != nil {
		log.Debugf("%s: %s failed: %s", s.name, t.Name(), stop.Message)
		return stop
	}
	//
	log.Debugf("%s: applied %s (%d goals remain)", s.name, t.Name(), len(next.OpenGoals()))
	s.state = next
	s.redo = nil
	//
	return nil
}

// Undo the most recent tactic, returning false if there is nothing to undo.
func (s *Session) Undo() bool {
	previous, ok := s.state.Undo()
	//
	if ok {
		s.redo = append(s.redo, s.state)
		s.state = previous
	}
	//
	return ok
}

// Redo the most recently undone tactic, returning false if there is nothing to
// redo.
func (s *Session) Redo() bool {
	n := len(s.redo)
	//
	if n == 0 {
		return false
	}
	//
	s.state = s.redo[n-1]
	s.redo = s.redo[:n-1]
	//
	return true
}

// Next moves focus to the next open goal.
func (s *Session) Next() {
	s.state = s.state.NextGoal()
}

// Previous moves focus to the previous open goal.
func (s *Session) Previous() {
	s.state = s.state.PreviousGoal()
}

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
package cmd

import (
	"strings"
	"testing"

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/tactic"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/consensys/go-pie/pkg/util/termio"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_Holes_01(t *testing.T) {
	holes := check.NewHoleService()
	process(t, `
(claim f (→ Nat Nat))
(define f (λ (n) TODO))`, check.WithHoles(holes))
	//
	records := holeRecords(holes.Holes())
	require.Len(t, records, 1)
	assert.Equal(t, "Nat", records[0].Expected)
	assert.Equal(t, []BinderRecord{
		{Name: "f", Kind: "claim", Type: "(→ Nat Nat)"},
		{Name: "n", Kind: "free", Type: "Nat"},
	}, records[0].Context)
	//
	text, err := encodeHoles(records, "json")
	require.NoError(t, err)
	//
	var decoded []HoleRecord
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, records, decoded)
}

func Test_Holes_02(t *testing.T) {
	holes := check.NewHoleService()
	process(t, `
(claim x Atom)
(define x TODO)`, check.WithHoles(holes))
	//
	records := holeRecords(holes.Holes())
	suggest(records, []check.Suggestion{{Hole: holes.Holes()[0].ID, Term: "'hello"}})
	//
	text, err := encodeHoles(records, "yaml")
	require.NoError(t, err)
	//
	var decoded []HoleRecord
	require.NoError(t, yaml.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, records, decoded)
	assert.Equal(t, "'hello", decoded[0].Suggestion)
}

func Test_Holes_03(t *testing.T) {
	_, err := encodeHoles(nil, "xml")
	assert.EqualError(t, err, "unknown format \"xml\" (expected json or yaml)")
}

func Test_Prover_01(t *testing.T) {
	repl, console := prove(t, "(claim id (→ Nat Nat))", "id")
	//
	assert.False(t, repl.execute("(intro n)"))
	assert.Contains(t, console.text(), "n : Nat")
	assert.False(t, repl.execute("(exact n)"))
	assert.Contains(t, console.text(), "Proof complete:")
	assert.Contains(t, console.text(), "(λ (n) n)")
	assert.True(t, repl.execute(":quit"))
}

func Test_Prover_02(t *testing.T) {
	repl, console := prove(t, "(claim id (→ Nat Nat))", "id")
	//
	repl.execute(":undo")
	assert.Equal(t, termio.RED, console.colours[len(console.colours)-1])
	assert.Contains(t, console.text(), "nothing to undo")
	//
	repl.execute("(intro n)")
	repl.execute(":undo")
	assert.Len(t, repl.session.State().Node(0).Children, 0)
	repl.execute(":redo")
	assert.Len(t, repl.session.State().Node(0).Children, 1)
}

func Test_Prover_03(t *testing.T) {
	repl, console := prove(t, "(claim n Nat)", "n")
	// Failures leave the session unchanged
	repl.execute("(intro x)")
	assert.Contains(t, console.text(), "intro requires a Π type, but the goal is Nat")
	repl.execute("(frobnicate)")
	assert.Contains(t, console.text(), "unknown tactic frobnicate")
	assert.False(t, repl.session.State().IsComplete())
}

// ============================================================================
// Helpers
// ============================================================================

type recordingConsole struct {
	lines   []string
	colours []termio.Colour
}

func (p *recordingConsole) ReadLine() (string, error) {
	panic("unreachable")
}

func (p *recordingConsole) Println(colour termio.Colour, text string) {
	p.lines = append(p.lines, text)
	p.colours = append(p.colours, colour)
}

func (p *recordingConsole) Close() error {
	return nil
}

func (p *recordingConsole) text() string {
	return strings.Join(p.lines, "\n")
}

func process(t *testing.T, text string, options ...check.Option) *pie.Program {
	program := pie.NewProgram(pie.DefaultConfig(), options...)
	//
	decls, errs := pie.ParseSourceFile(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	_, stop := program.Process(decls)
	require.Nil(t, stop)
	//
	return program
}

func prove(t *testing.T, text string, name string) (*prover, *recordingConsole) {
	program := process(t, text)
	//
	state, stop := program.Prove(name, source.NoLocation)
	require.Nil(t, stop)
	//
	console := &recordingConsole{}
	//
	return &prover{program.Config(), tactic.NewSession(name, state), console}, console
}

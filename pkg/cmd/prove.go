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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/pie/tactic"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/consensys/go-pie/pkg/util/termio"
	"github.com/spf13/cobra"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove [flags] file.pie name",
	Short: "Interactively prove a claim.",
	Long: `Check a Pie file and then begin an interactive proof of a name which it
	claims but does not define.  Each line of input is either a tactic, such as
	(intro n) or (elim-Nat n), or one of the following commands:

	:goals  show the open goals
	:next   focus on the next open goal
	:prev   focus on the previous open goal
	:undo   undo the last tactic
	:redo   redo the last undone tactic
	:quit   abandon the proof`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config := getConfig(cmd)
		//
		program, _, err := loadProgram(args[0], config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		state, stop := program.Prove(args[1], source.NoLocation)
		if stop != nil {
			fmt.Println(stop.Message)
			os.Exit(1)
		}
		//
		console, err := termio.NewConsole(os.Stdin, os.Stdout, args[1]+"> ")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		repl := &prover{config, tactic.NewSession(args[1], state), console}
		err = repl.run()
		//
		if cerr := console.Close(); err == nil {
			err = cerr
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// prover reads tactics and commands from a console and applies them to a proof
// session.
type prover struct {
	config  pie.Config
	session *tactic.Session
	console termio.Console
}

func (p *prover) run() error {
	p.showGoals()
	//
	for {
		line, err := p.console.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		//
		if quit := p.execute(strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

// Execute a single line of input, returning true if the session is over.
func (p *prover) execute(line string) bool {
	switch line {
	case "":
		return false
	case ":quit":
		return true
	case ":goals":
	case ":next":
		p.session.Next()
	case ":prev":
		p.session.Previous()
	case ":undo":
		if !p.session.Undo() {
			p.console.Println(termio.RED, "nothing to undo")
			return false
		}
	case ":redo":
		if !p.session.Redo() {
			p.console.Println(termio.RED, "nothing to redo")
			return false
		}
	default:
		if !p.apply(line) {
			return false
		}
	}
	//
	p.showGoals()
	//
	return false
}

// Parse and apply a tactic, reporting any failure.
func (p *prover) apply(line string) bool {
	srcfile := source.NewSourceFile("<input>", []byte(line))
	//
	t, errs := pie.ParseTactic(srcfile)
	for _, err := range errs {
		p.console.Println(termio.RED, err.Message())
	}
	//
	if len(errs) > 0 {
		return false
	} else if stop := p.session.Run(t); stop != nil {
		p.console.Println(termio.RED, stop.Error())
		return false
	}
	//
	return true
}

func (p *prover) showGoals() {
	state := p.session.State()
	//
	if state.IsComplete() {
		p.console.Println(termio.GREEN, "Proof complete:")
		p.console.Println(termio.PLAIN, prettyPrint(p.config, state.Term()))
		//
		return
	}
	//
	var (
		goals    = state.OpenGoals()
		focus, _ = state.Focus()
	)
	//
	p.console.Println(termio.PLAIN, fmt.Sprintf("%d goal(s) remain", len(goals)))
	//
	for i, goal := range goals {
		colour := termio.PLAIN
		if goal.ID == focus.ID {
			colour = termio.YELLOW
		}
		//
		p.console.Println(colour, fmt.Sprintf("Goal %d:", i+1))
		p.console.Println(colour, goal.String())
	}
}

func init() {
	rootCmd.AddCommand(proveCmd)
}

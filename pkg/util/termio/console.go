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
package termio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Colour identifies one of the colours used to highlight console output.
type Colour uint

const (
	// PLAIN leaves text as is.
	PLAIN Colour = iota
	// RED is used for errors.
	RED
	// GREEN is used for completed proofs.
	GREEN
	// YELLOW is used for the goal in focus.
	YELLOW
)

// Console reads lines of input and writes lines of output for an interactive
// session.  When attached to a terminal, the console supports line editing and
// history.  Otherwise, it degrades to reading a plain stream.
type Console interface {
	// ReadLine reads a line of input, returning io.EOF when none remain.
	ReadLine() (string, error)
	// Println writes a line of output, in a given colour where supported.
	Println(colour Colour, text string)
	// Close restores the underlying terminal (if any).
	Close() error
}

// NewConsole constructs a console reading from a given input and writing to a
// given output.
func NewConsole(in *os.File, out io.Writer, prompt string) (Console, error) {
	fd := int(in.Fd())
	//
	if !term.IsTerminal(fd) {
		return &streamConsole{bufio.NewScanner(in), out}, nil
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{in, out}
	//
	return &terminalConsole{fd, term.NewTerminal(screen, prompt), state}, nil
}

type terminalConsole struct {
	fd    int
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

func (p *terminalConsole) ReadLine() (string, error) {
	return p.xterm.ReadLine()
}

func (p *terminalConsole) Println(colour Colour, text string) {
	var escape []byte
	//
	switch colour {
	case RED:
		escape = p.xterm.Escape.Red
	case GREEN:
		escape = p.xterm.Escape.Green
	case YELLOW:
		escape = p.xterm.Escape.Yellow
	}
	// Errors writing to the terminal are not recoverable here.
	if escape != nil {
		_, _ = fmt.Fprintf(p.xterm, "%s%s%s\n", escape, text, p.xterm.Escape.Reset)
	} else {
		_, _ = fmt.Fprintln(p.xterm, text)
	}
}

func (p *terminalConsole) Close() error {
	return term.Restore(p.fd, p.state)
}

type streamConsole struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *streamConsole) ReadLine() (string, error) {
	if p.in.Scan() {
		return p.in.Text(), nil
	} else if err := p.in.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

func (p *streamConsole) Println(_ Colour, text string) {
	_, _ = fmt.Fprintln(p.out, text)
}

func (p *streamConsole) Close() error {
	return nil
}

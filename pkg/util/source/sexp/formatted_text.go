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
package sexp

import (
	"strings"
	"unicode/utf8"
)

// Number of spaces making up one level of indentation.
const indentWidth = 2

// FormattedText accumulates the lines produced by a Formatter.  Widths are
// measured in runes, since terms routinely contain symbols such as λ, Π and →
// which occupy a single column but several bytes.
type FormattedText struct {
	// Current indent level
	indent int
	// Lines written so far
	lines []string
	// Width (in runes) of each line
	widths []uint
}

func (p *FormattedText) String() string {
	var builder strings.Builder
	//
	for i := range p.lines {
		builder.WriteString(strings.TrimRight(p.lines[i], " "))
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// Indent increases or decreases the current indent level.
func (p *FormattedText) Indent(delta int) {
	p.indent = max(0, p.indent+delta)
}

// NewLine starts a new line at the current indent level.
func (p *FormattedText) NewLine() {
	width := uint(p.indent * indentWidth)
	//
	p.lines = append(p.lines, strings.Repeat(" ", int(width)))
	p.widths = append(p.widths, width)
}

// LineWidth returns the width of the current line.
func (p *FormattedText) LineWidth() uint {
	if len(p.widths) == 0 {
		return 0
	}
	//
	return p.widths[len(p.widths)-1]
}

// MaxWidth returns the maximum width of any line in this formatted text block.
func (p *FormattedText) MaxWidth() uint {
	var width uint
	//
	for _, w := range p.widths {
		width = max(width, w)
	}
	//
	return width
}

// WriteString appends a string to the current line.
func (p *FormattedText) WriteString(str string) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, "")
		p.widths = append(p.widths, 0)
	}
	//
	n := len(p.lines) - 1
	p.lines[n] += str
	p.widths[n] += uint(utf8.RuneCountInString(str))
}

// Width returns the number of columns needed to display a string.
func Width(str string) uint {
	return uint(utf8.RuneCountInString(str))
}

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
package source

import (
	"fmt"
	"sort"
)

// Span represents a contiguous slice of the original string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows us to do certain things, such as determine the
// enclosing line, etc.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the original
// string.
func (p *Span) Length() int {
	return p.end - p.start
}

// Map records, for each node of a parse tree, the span of text from which it
// was parsed.  Elaboration attaches a Location to every term it produces, so
// locations are computed from a precomputed index of line starts rather than by
// rescanning the file each time.
type Map[T comparable] struct {
	// Span of each registered node.
	spans map[T]Span
	// Enclosing source file
	srcfile File
	// Offset of the first character of each line.
	lineStarts []int
}

// NewSourceMap constructs an initially empty source map for a given file.
func NewSourceMap[T comparable](srcfile File) *Map[T] {
	lineStarts := []int{0}
	//
	for i, c := range srcfile.contents {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	//
	return &Map[T]{make(map[T]Span), srcfile, lineStarts}
}

// Source returns the underlying source file on which this map operates.
func (p *Map[T]) Source() File {
	return p.srcfile
}

// Put registers the span of a node.  Registering the same node twice indicates
// a bug in the parser, and panics.
func (p *Map[T]) Put(item T, span Span) {
	if _, ok := p.spans[item]; ok {
		panic(fmt.Sprintf("node already has a span: %v", any(item)))
	}
	//
	p.spans[item] = span
}

// Lookup returns the span of a given node, if it has one.
func (p *Map[T]) Lookup(item T) (Span, bool) {
	span, ok := p.spans[item]
	return span, ok
}

// Has checks whether a given node has a span.
func (p *Map[T]) Has(item T) bool {
	_, ok := p.spans[item]
	return ok
}

// Get returns the span of a node known to be registered.
func (p *Map[T]) Get(item T) Span {
	if span, ok := p.spans[item]; ok {
		return span
	}
	//
	panic(fmt.Sprintf("node has no span: %v", any(item)))
}

// Location returns the line/column location of a registered node.  This agrees
// with File.Location on the node's span.
func (p *Map[T]) Location(item T) Location {
	var (
		span           = p.Get(item)
		last           = max(span.start, span.end-1)
		sline, scolumn = p.position(span.start)
		eline, ecolumn = p.position(last)
	)
	//
	return Location{
		Source:      p.srcfile.filename,
		StartLine:   sline,
		StartColumn: scolumn,
		EndLine:     eline,
		EndColumn:   ecolumn,
		ForInfo:     true,
	}
}

// Line and column (both from 1) of a given character offset.
func (p *Map[T]) position(offset int) (int, int) {
	// Index of the last line starting at or before the offset
	line := sort.Search(len(p.lineStarts), func(i int) bool { return p.lineStarts[i] > offset }) - 1
	//
	return line + 1, 1 + offset - p.lineStarts[line]
}

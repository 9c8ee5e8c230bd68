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

import "fmt"

// Location identifies a region of some named source text.  Unlike a Span, a
// location is self-contained and survives after the originating file has been
// discarded.  This makes it suitable for attaching to elaborated terms, holes
// and error messages.
type Location struct {
	// Name of the originating source (e.g. a filename).
	Source string
	// First line of the region (counting from 1).
	StartLine int
	// First column of the region (counting from 1).
	StartColumn int
	// Last line of the region (counting from 1).
	EndLine int
	// Last column of the region (counting from 1).
	EndColumn int
	// Indicates whether information about this location should be reported
	// to editor tooling.  Locations synthesised by the implementation itself
	// are not reported.
	ForInfo bool
}

// NoLocation is used for terms which do not originate from any source text.
var NoLocation = Location{Source: "<generated>"}

// NotForInfo returns a copy of this location which is hidden from editor
// tooling.
func (p Location) NotForInfo() Location {
	p.ForInfo = false
	return p
}

func (p Location) String() string {
	if p.StartLine == 0 {
		return p.Source
	}
	//
	return fmt.Sprintf("%s:%d.%d-%d.%d", p.Source, p.StartLine, p.StartColumn, p.EndLine, p.EndColumn)
}

// Stop signals that elaboration (or a tactic) failed at a given location.  A
// nil stop indicates success, such that functions return a pair (T, *Stop) in
// much the same way as (T, error).
type Stop struct {
	// Where the failure was detected.
	Where Location
	// Message describing the failure.
	Message string
}

// NewStop constructs a new failure at a given location.
func NewStop(where Location, msg string) *Stop {
	return &Stop{where, msg}
}

// Stopf constructs a new failure at a given location with a formatted message.
func Stopf(where Location, format string, args ...any) *Stop {
	return &Stop{where, fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (p *Stop) Error() string {
	return fmt.Sprintf("%s at %s", p.Message, p.Where.String())
}

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
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-pie/pkg/util/source"
)

// Diagnostic is an error reported against a single line of a source file.  The
// columns count from 1, and the end column is exclusive.
type Diagnostic struct {
	Line    int
	Start   int
	End     int
	Message string
}

func (p Diagnostic) String() string {
	return fmt.Sprintf("%d:%d-%d %s", p.Line, p.Start, p.End, p.Message)
}

// Matches ";;error:LINE:START-END:message" header lines.
var expectedError = Attribute[Diagnostic]{"error", parseExpectedError}

func parseExpectedError(value string, lines []source.Line) (Diagnostic, error) {
	diagnostic, err := parseExpectedErrorLine(value)
	//
	if err == nil {
		err = checkExpectedErrorSpan(diagnostic, lines)
	}
	//
	return diagnostic, err
}

func parseExpectedErrorLine(contents string) (Diagnostic, error) {
	var (
		splits = strings.SplitN(contents, ":", 3)
		d      Diagnostic
		err    error
	)
	//
	if len(splits) < 3 {
		return d, fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:msg\"", contents)
	}
	// Parse line number
	if d.Line, err = strconv.Atoi(splits[0]); err != nil {
		return d, fmt.Errorf("invalid span \"%s:%s\" (%s)", splits[0], splits[1], err.Error())
	} else if d.Line == 0 {
		return d, fmt.Errorf("invalid span \"%s:%s\" (lines numbered from 1)", splits[0], splits[1])
	}
	// Parse split
	if d.Start, d.End, err = parseExpectedErrorSpan(splits[1]); err != nil {
		return d, err
	}
	// Messages can themselves contain colons
	d.Message = splits[2]
	//
	return d, nil
}

func parseExpectedErrorSpan(span_str string) (start, end int, err error) {
	var (
		// Split the span
		span_splits = strings.Split(span_str, "-")
	)
	//
	if len(span_splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", span_str)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(span_splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span_str, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", span_str)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(span_splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span_str, err.Error())
	}
	//
	return start, end, err
}

// Sanity check that an expected error refers to an existing part of the file.
func checkExpectedErrorSpan(d Diagnostic, lines []source.Line) error {
	if d.Line > len(lines) {
		return fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", d.Line, d.Start, d.End)
	}
	//
	line := lines[d.Line-1]
	//
	if d.Start > line.Length() || d.End > line.Length()+1 {
		return fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", d.Line, d.Start, d.End)
	}
	//
	return nil
}

// Convert a syntax error into a diagnostic, truncating it at the end of its
// first line.
func syntaxErrorToDiagnostic(err source.SyntaxError) Diagnostic {
	var (
		span   = err.Span()
		line   = err.FirstEnclosingLine()
		offset = span.Start() - line.Start()
		// Calculate length (ensures don't overflow line)
		length = min(line.Length()-offset, span.Length())
	)
	//
	return Diagnostic{line.Number(), 1 + offset, 1 + offset + length, err.Message()}
}

// Convert a checking failure into a diagnostic, again truncating it at the end
// of its first line.
func stopToDiagnostic(stop *source.Stop, lines []source.Line) Diagnostic {
	var (
		where = stop.Where
		end   = where.EndColumn + 1
	)
	//
	if where.EndLine != where.StartLine && where.StartLine <= len(lines) {
		end = lines[where.StartLine-1].Length() + 1
	}
	//
	return Diagnostic{where.StartLine, where.StartColumn, end, stop.Message}
}

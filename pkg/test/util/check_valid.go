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
	"testing"

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/kylelemons/godebug/diff"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the pie test files are found.
const TestDir = "../../testdata"

// Extension of pie test files.
const Extension = "pie"

// CheckValid checks that a given Pie file is accepted.  The normal forms of
// the expressions it evaluates are expected to match lines of the form
// ";;output:(the T e)" at the start of the file, in order.  Each file is
// checked with a hole service attached, so any TODO in a valid file must be
// accounted for by a ";;holes:N" line.
func CheckValid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, Extension)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	expected, errs := ExtractAttributes(srcfile, expectedOutput, expectedHoles)
	//
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	//
	decls, synErrs := pie.ParseSourceFile(srcfile)
	for _, err := range synErrs {
		t.Errorf("%s:%s", filename, syntaxErrorToDiagnostic(err))
	}
	//
	if len(synErrs) > 0 {
		t.FailNow()
	}
	//
	var (
		holes   = check.NewHoleService()
		program = pie.NewProgram(pie.DefaultConfig(), check.WithHoles(holes))
	)
	//
	outputs, stop := program.Process(decls)
	if stop != nil {
		t.Fatalf("%s:%s", filename, stopToDiagnostic(stop, srcfile.Lines()))
	}
	//
	var actual []string
	//
	for _, output := range outputs {
		actual = append(actual, core.String(output.Term))
	}
	//
	actual = append(actual, fmt.Sprintf("holes %d", holes.Len()))
	//
	if d := diff.Diff(strings.Join(expectedOutputs(expected), "\n"), strings.Join(actual, "\n")); d != "" {
		t.Errorf("%s: unexpected output\n%s", filename, d)
	}
}

// Expectation is an output line or hole count expected of a valid file.
type Expectation struct {
	Output string
	Holes  string
}

// Header lines giving the expected outputs and hole count.
var (
	expectedOutput = Attribute[Expectation]{"output", func(value string, _ []source.Line) (Expectation, error) {
		return Expectation{Output: value}, nil
	}}
	expectedHoles = Attribute[Expectation]{"holes", func(value string, _ []source.Line) (Expectation, error) {
		if _, err := strconv.ParseUint(value, 10, 32); err != nil {
			return Expectation{}, fmt.Errorf("invalid hole count \"%s\"", value)
		}
		//
		return Expectation{Holes: value}, nil
	}}
)

// Flatten expectations into the lines expected, where the hole count (which
// defaults to zero) comes last.
func expectedOutputs(expectations []Expectation) []string {
	var (
		lines []string
		holes = "0"
	)
	//
	for _, e := range expectations {
		if e.Holes != "" {
			holes = e.Holes
		} else {
			lines = append(lines, e.Output)
		}
	}
	//
	return append(lines, fmt.Sprintf("holes %s", holes))
}

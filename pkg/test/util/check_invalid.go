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
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/util/source"
)

// CheckInvalid checks that a given Pie file is rejected, either because it
// fails to parse or because one of its declarations fails to check.  The
// errors expected are given by lines of the form ";;error:X:Y-Z:msg" at the
// start of the file.
func CheckInvalid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, Extension)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Check source file to produce errors
	actual := checkSourceFile(srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, expectedError)
	// For now.
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	// Check program did not check!
	checkExpectedErrors(t, srcfile, actual, expected)
}

// Parse and check a given source file, producing the resulting diagnostics.
// Syntax errors are reported all together, whereas checking stops at the first
// declaration which fails.
func checkSourceFile(srcfile *source.File) []Diagnostic {
	var diagnostics []Diagnostic
	//
	decls, errs := pie.ParseSourceFile(srcfile)
	//
	for _, err := range errs {
		diagnostics = append(diagnostics, syntaxErrorToDiagnostic(err))
	}
	//
	if len(errs) == 0 {
		program := pie.NewProgram(pie.DefaultConfig())
		//
		if _, stop := program.Process(decls); stop != nil {
			diagnostics = append(diagnostics, stopToDiagnostic(stop, srcfile.Lines()))
		}
	}
	//
	return diagnostics
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []Diagnostic) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have checked\n", srcfile.Filename())
	} else {
		error := false
		// Construct initial message
		msg := fmt.Sprintf("Error %s\n", srcfile.Filename())
		// Pad out with what received
		for i := 0; i < max(len(actual), len(expected)); i++ {
			if i < len(actual) && i < len(expected) && actual[i] == expected[i] {
				continue
			}
			// Indicate error arose
			error = true
			// actual
			if i < len(actual) {
				msg = fmt.Sprintf("%s unexpected error %s:%s\n", msg, srcfile.Filename(), actual[i])
			}
			// expected
			if i < len(expected) {
				msg = fmt.Sprintf("%s   expected error %s:%s\n", msg, srcfile.Filename(), expected[i])
			}
		}
		//
		if error {
			t.Fatal(msg)
		}
	}
}

func readSourceFile(t *testing.T, filename string) *source.File {
	// Read pie file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

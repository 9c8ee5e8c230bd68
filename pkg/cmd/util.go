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
	"os"
	"strings"

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Gather the persistent flags into a program configuration.
func getConfig(cmd *cobra.Command) pie.Config {
	config := pie.DefaultConfig()
	config.Width = getUint(cmd, "width")
	config.Debug = getFlag(cmd, "debug")
	//
	return config
}

// Read, parse and check a given Pie file.  The program is returned even when
// checking fails part way, in which case it reflects the declarations which
// succeeded.  Any errors are printed as they are found.
func loadProgram(filename string, config pie.Config, options ...check.Option) (*pie.Program, []pie.Output, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s", filename)
	}
	//
	var (
		srcfile = source.NewSourceFile(filename, bytes)
		program = pie.NewProgram(config, options...)
	)
	//
	decls, errs := pie.ParseSourceFile(srcfile)
	if len(errs) > 0 {
		for i := range errs {
			printSyntaxError(&errs[i])
		}
		//
		return program, nil, errors.Errorf("%s: %d syntax error(s)", filename, len(errs))
	}
	//
	outputs, stop := program.Process(decls)
	if stop != nil {
		printStop(srcfile, stop)
		return program, outputs, errors.Wrap(stop, filename)
	}
	//
	return program, outputs, nil
}

// Print the outputs of a program, dumping their internal structure as well in
// debug mode.
func printOutputs(config pie.Config, outputs []pie.Output) {
	for _, output := range outputs {
		fmt.Println(prettyPrint(config, output.Term))
		//
		if config.Debug {
			debugConfig.Dump(output.Term)
		}
	}
}

var debugConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	//
	printHighlight(line.String(), lineOffset, length)
}

// Print a checking failure, highlighting the first line of the offending term.
func printStop(srcfile *source.File, stop *source.Stop) {
	var (
		where = stop.Where
		lines = srcfile.Lines()
	)
	//
	fmt.Printf("%s:%d:%d %s\n", srcfile.Filename(), where.StartLine, where.StartColumn, stop.Message)
	//
	if where.StartLine < 1 || where.StartLine > len(lines) {
		return
	}
	//
	line := lines[where.StartLine-1]
	length := line.Length() - where.StartColumn + 1
	//
	if where.EndLine == where.StartLine {
		length = where.EndColumn - where.StartColumn + 1
	}
	//
	printHighlight(line.String(), where.StartColumn-1, length)
}

func printHighlight(line string, offset int, length int) {
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line)
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", offset))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, length)))
}

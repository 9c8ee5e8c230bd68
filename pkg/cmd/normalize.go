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

	"github.com/consensys/go-pie/pkg/pie"
	"github.com/consensys/go-pie/pkg/util/source"
	"github.com/spf13/cobra"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] file.pie expr",
	Short: "Normalize an expression in the context of a Pie file.",
	Long: `Check a Pie file and then normalize a given expression against the
	names it defines, printing the normal form along with its type.`,
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
		srcfile := source.NewSourceFile("<expr>", []byte(args[1]))
		//
		expr, errs := pie.ParseExpression(srcfile)
		if len(errs) > 0 {
			for i := range errs {
				printSyntaxError(&errs[i])
			}
			//
			os.Exit(1)
		}
		//
		the, stop := program.Normalize(expr)
		if stop != nil {
			printStop(srcfile, stop)
			os.Exit(1)
		}
		//
		printOutputs(config, []pie.Output{{Where: expr.Loc(), Term: the}})
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

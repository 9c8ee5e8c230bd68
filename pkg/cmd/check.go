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
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.pie file2.pie ...",
	Short: "Check one or more Pie files.",
	Long: `Check that every declaration in one or more Pie files is well-typed.
	The normal form of each top-level expression is printed along with its type.
	Files are checked independently of each other.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			config = getConfig(cmd)
			result *multierror.Error
		)
		//
		for _, filename := range args {
			program, outputs, err := loadProgram(filename, config)
			printOutputs(config, outputs)
			//
			if err == nil {
				log.Debugf("%s: ok (%d names bound)", filename, program.Context().Len())
			}
			//
			result = multierror.Append(result, err)
		}
		//
		if err := result.ErrorOrNil(); err != nil {
			fmt.Println()
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Pretty print a term within the configured page width.
func prettyPrint(config pie.Config, term core.Core) string {
	return core.Pretty(term, config.Width)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

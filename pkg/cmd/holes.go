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
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/consensys/go-pie/pkg/pie/check"
	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// holesCmd represents the holes command
var holesCmd = &cobra.Command{
	Use:   "holes [flags] file.pie",
	Short: "Export the unsolved TODOs of a Pie file.",
	Long: `Check a Pie file and export every TODO it contains, along with the type
	expected there and the names in scope.  Optionally, an external solver
	command can be asked to suggest a term for each hole.  The solver is given
	the hole (as JSON) on its standard input, and should print its suggestion.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			config  = getConfig(cmd)
			format  = getString(cmd, "format")
			solver  = getString(cmd, "solver")
			holes   = check.NewHoleService()
			timeout = getDuration(cmd, "timeout")
		)
		// Holes are exported for whatever checked successfully.
		if _, _, err := loadProgram(args[0], config, check.WithHoles(holes)); err != nil {
			log.Warn(err)
		}
		//
		records := holeRecords(holes.Holes())
		//
		if solver != "" {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			//
			suggest(records, holes.Solve(ctx, commandSolver(solver)))
		}
		//
		text, err := encodeHoles(records, format)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Print(text)
	},
}

// HoleRecord is the exported form of a hole.
type HoleRecord struct {
	ID         string         `json:"id" yaml:"id"`
	Location   string         `json:"location" yaml:"location"`
	Expected   string         `json:"expected" yaml:"expected"`
	Context    []BinderRecord `json:"context" yaml:"context"`
	Suggestion string         `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// BinderRecord is the exported form of a name in scope at a hole.
type BinderRecord struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

func holeRecords(holes []check.HoleInfo) []HoleRecord {
	records := make([]HoleRecord, len(holes))
	//
	for i, hole := range holes {
		records[i] = HoleRecord{
			ID:       hole.ID.String(),
			Location: hole.Where.String(),
			Expected: core.String(hole.ExpectedType),
		}
		//
		for _, b := range hole.Context {
			binder := BinderRecord{Name: b.Name, Kind: b.Kind, Type: core.String(b.Type)}
			if b.Value != nil {
				binder.Value = core.String(b.Value)
			}
			//
			records[i].Context = append(records[i].Context, binder)
		}
	}
	//
	return records
}

// Attach suggestions to the holes they were made for.
func suggest(records []HoleRecord, suggestions []check.Suggestion) {
	for _, s := range suggestions {
		for i := range records {
			if records[i].ID == s.Hole.String() {
				records[i].Suggestion = s.Term
			}
		}
	}
}

func encodeHoles(records []HoleRecord, format string) (string, error) {
	switch format {
	case "json":
		bytes, err := json.MarshalIndent(records, "", "  ")
		return string(bytes) + "\n", err
	case "yaml":
		bytes, err := yaml.Marshal(records)
		return string(bytes), err
	}
	//
	return "", errors.Errorf("unknown format \"%s\" (expected json or yaml)", format)
}

// Construct a solver which runs a shell command for each hole.
func commandSolver(command string) check.Solver {
	return check.SolverFunc(func(ctx context.Context, hole check.HoleInfo) (string, error) {
		var stdout bytes.Buffer
		//
		input, err := json.Marshal(holeRecords([]check.HoleInfo{hole})[0])
		if err != nil {
			return "", err
		}
		//
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		cmd.Stdin = bytes.NewReader(input)
		cmd.Stdout = &stdout
		//
		if err := cmd.Run(); err != nil {
			return "", errors.Wrapf(err, "running %s", command)
		} else if suggestion := strings.TrimSpace(stdout.String()); suggestion != "" {
			return suggestion, nil
		}
		//
		return "", errors.New("solver made no suggestion")
	})
}

// Get an expected duration, or panic if an error arises.
func getDuration(cmd *cobra.Command, flag string) time.Duration {
	r, err := cmd.Flags().GetDuration(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func init() {
	rootCmd.AddCommand(holesCmd)
	holesCmd.Flags().String("format", "json", "output format (json or yaml)")
	holesCmd.Flags().String("solver", "", "shell command which suggests terms for holes")
	holesCmd.Flags().Duration("timeout", 10*time.Second, "time allowed for the solver across all holes")
}

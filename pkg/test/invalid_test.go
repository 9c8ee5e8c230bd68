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
package test

import (
	"testing"

	"github.com/consensys/go-pie/pkg/test/util"
)

func Test_Invalid_Syntax_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/syntax_01")
}

func Test_Invalid_UnknownVariable_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/unknown_variable_01")
}

func Test_Invalid_Mismatch_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/mismatch_01")
}

func Test_Invalid_Claim_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/claim_01")
}

func Test_Invalid_Claimed_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/claimed_01")
}

func Test_Invalid_Define_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/define_01")
}

func Test_Invalid_Define_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/define_02")
}

func Test_Invalid_Lambda_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/lambda_01")
}

func Test_Invalid_CheckSame_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/check_same_01")
}

func Test_Invalid_Atom_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/atom_01")
}

func Test_Invalid_Apply_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/apply_01")
}

func Test_Invalid_Data_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/data_01")
}

func Test_Invalid_Data_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/data_02")
}

func Test_Invalid_Tactic_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/tactic_01")
}

func Test_Invalid_Tactic_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/tactic_02")
}

func Test_Invalid_Tactic_03(t *testing.T) {
	util.CheckInvalid(t, "invalid/tactic_03")
}

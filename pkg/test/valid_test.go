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

// ===================================================================
// Basic Tests
// ===================================================================

func Test_Valid_Nat(t *testing.T) {
	util.CheckValid(t, "valid/nat")
}

func Test_Valid_Pairs(t *testing.T) {
	util.CheckValid(t, "valid/pairs")
}

func Test_Valid_Lists(t *testing.T) {
	util.CheckValid(t, "valid/lists")
}

func Test_Valid_Vectors(t *testing.T) {
	util.CheckValid(t, "valid/vectors")
}

func Test_Valid_Either(t *testing.T) {
	util.CheckValid(t, "valid/either")
}

func Test_Valid_Absurd(t *testing.T) {
	util.CheckValid(t, "valid/absurd")
}

// ===================================================================
// Proofs
// ===================================================================

func Test_Valid_Equality(t *testing.T) {
	util.CheckValid(t, "valid/equality")
}

func Test_Valid_Datatypes(t *testing.T) {
	util.CheckValid(t, "valid/datatypes")
}

func Test_Valid_Tactics(t *testing.T) {
	util.CheckValid(t, "valid/tactics")
}

func Test_Valid_Holes(t *testing.T) {
	util.CheckValid(t, "valid/holes")
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SourceMap_01(t *testing.T) {
	var (
		file   = NewSourceFile("test", []byte("(claim x\n  Nat)\n(λ (x) x)"))
		srcmap = NewSourceMap[string](*file)
	)
	//
	srcmap.Put("claim", NewSpan(0, 15))
	srcmap.Put("Nat", NewSpan(11, 14))
	srcmap.Put("λ", NewSpan(16, 25))
	srcmap.Put("empty", NewSpan(9, 9))
	//
	for _, key := range []string{"claim", "Nat", "λ", "empty"} {
		assert.Equal(t, file.Location(srcmap.Get(key)), srcmap.Location(key), key)
	}
	//
	loc := srcmap.Location("claim")
	assert.Equal(t, Location{"test", 1, 1, 2, 6, true}, loc)
	// Columns count runes rather than bytes
	assert.Equal(t, Location{"test", 3, 1, 3, 9, true}, srcmap.Location("λ"))
}

func Test_SourceMap_02(t *testing.T) {
	srcmap := NewSourceMap[int](*NewSourceFile("test", []byte("abc")))
	srcmap.Put(1, NewSpan(0, 1))
	//
	span, ok := srcmap.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 1, span.Length())
	//
	_, ok = srcmap.Lookup(2)
	assert.False(t, ok)
	assert.Panics(t, func() { srcmap.Put(1, NewSpan(1, 2)) })
	assert.Panics(t, func() { srcmap.Get(2) })
}

func Test_Lines_01(t *testing.T) {
	lines := NewSourceFile("test", []byte("a\nbc\n")).Lines()
	//
	require.Len(t, lines, 3)
	assert.Equal(t, "bc", lines[1].String())
	assert.Equal(t, 2, lines[1].Number())
	assert.Equal(t, 0, lines[2].Length())
}

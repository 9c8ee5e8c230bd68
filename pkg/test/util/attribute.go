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
	"strings"

	"github.com/consensys/go-pie/pkg/util/source"
)

// Attribute describes one kind of ";;key:value" line which may appear in the
// header of a test file.  The parse function receives the value (i.e. the text
// following "key:") along with every line of the file, so that it can sanity
// check references into the file itself.
type Attribute[T any] struct {
	Key   string
	Parse func(value string, lines []source.Line) (T, error)
}

// ExtractAttributes extracts all attributes from the header of a test file.
// The header consists of the leading lines which begin with ";;".  Header
// lines whose key is not recognised are treated as ordinary comments.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines  = srcfile.Lines()
		items  []T
		errors []error
	)
	//
	for _, line := range lines {
		contents := line.String()
		//
		if !strings.HasPrefix(contents, ";;") {
			break
		}
		//
		key, value, ok := strings.Cut(strings.TrimPrefix(contents, ";;"), ":")
		if !ok {
			continue
		}
		//
		for _, attribute := range attributes {
			if attribute.Key != key {
				continue
			} else if item, err := attribute.Parse(value, lines); err != nil {
				errors = append(errors, err)
			} else {
				items = append(items, item)
			}
		}
	}
	//
	return items, errors
}

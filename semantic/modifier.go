// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semantic

import "strings"

// Modifiers is a set of semantic token modifiers.
type Modifiers uint32

const (
	Deprecated Modifiers = 1 << iota
	Readonly
	DefaultLibrary
	Definition

	allModifiers = Deprecated | Readonly | DefaultLibrary | Definition
)

var modifierNames = [...]string{
	"deprecated",
	"readonly",
	"defaultLibrary",
	"definition",
}

// Has returns whether every modifier in m2 is in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// String implements [fmt.Stringer].
func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

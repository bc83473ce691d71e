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

// Legend names the types and modifiers that appear in an encoded stream: a
// type index is an index into TokenTypes, and bit i of a modifier set is
// TokenModifiers[i].
//
// Its JSON form is the one LSP clients expect during initialization.
type Legend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

// DefaultLegend returns the legend for every stream produced by this package.
func DefaultLegend() Legend {
	legend := Legend{TokenModifiers: append([]string(nil), modifierNames[:]...)}
	for t := range Type(totalTypes) {
		legend.TokenTypes = append(legend.TokenTypes, t.String())
	}
	return legend
}

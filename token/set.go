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

package token

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/craftblock/cbls/internal"
)

// Set is a set of [Kind] values, implicitly ordered by the kinds' intrinsic
// order.
//
// A zero Set is empty and ready to use.
type Set struct {
	bits [(total + 63) / 64]uint64
}

// NewSet returns a new [Set] with the given values set.
//
// Panics if any value is not one of the constants in this package.
func NewSet(kinds ...Kind) Set {
	return Set{}.With(kinds...)
}

// Len returns the number of values in the set.
func (s Set) Len() int {
	var n int
	for _, v := range s.bits {
		n += bits.OnesCount64(v)
	}
	return n
}

// Has checks whether k is present in this set.
func (s Set) Has(k Kind) bool {
	if int(k) >= total {
		return false
	}

	has := s.bits[int(k)/64] & (uint64(1) << (int(k) % 64))
	return has != 0
}

// With returns a new Set with the given values inserted.
//
// Panics if any value is not one of the constants in this package.
func (s Set) With(kinds ...Kind) Set {
	for _, v := range kinds {
		if int(v) >= total {
			panic(fmt.Sprintf("cbls/token: inserted invalid value %d", v))
		}

		s.bits[int(v)/64] |= uint64(1) << (int(v) % 64)
	}
	return s
}

// Union returns the union of s and every set in others.
func (s Set) Union(others ...Set) Set {
	for _, o := range others {
		for i := range s.bits {
			s.bits[i] |= o.bits[i]
		}
	}
	return s
}

// Without returns a new Set with the given values removed.
func (s Set) Without(kinds ...Kind) Set {
	for _, v := range kinds {
		if int(v) < total {
			s.bits[int(v)/64] &^= uint64(1) << (int(v) % 64)
		}
	}
	return s
}

// All returns an iterator over the elements in the set.
func (s Set) All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for i, word := range s.bits {
			next := i * 64
			for word != 0 {
				if word&1 == 1 && !yield(Kind(next)) {
					return
				}

				word >>= 1
				next++
			}
		}
	}
}

// Join returns a comma-delimited string containing the descriptions of the
// elements of this set, using the given conjunction as the final separator,
// and taking care to include an Oxford comma only when necessary.
//
// For example, NewSet(Ident, End, Newline).Join("or") will produce the string
// `newline, identifier, or "end"`.
//
// If the set is empty, returns the empty string.
func (s Set) Join(conj string) string {
	var elems []string
	for k := range s.All() {
		elems = append(elems, k.Describe())
	}

	return fmt.Sprint(internal.Oxford[string]{Conjunction: conj, Elements: elems})
}

// Slice returns the elements of this set in order.
func (s Set) Slice() []Kind {
	return slices.Collect(s.All())
}

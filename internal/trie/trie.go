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

// Package trie provides a prefix trie used for longest-match lexing of
// operators.
package trie

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use.
type Trie[V any] struct {
	root node[V]
	len  int
}

type node[V any] struct {
	// Children, sorted by edge byte.
	edges []byte
	next  []*node[V]

	value    V
	hasValue bool
}

// Len returns the number of keys in this trie.
func (t *Trie[V]) Len() int {
	return t.len
}

// Get returns the value corresponding to the longest prefix of key present
// in the trie. The match is exact when len(key) == len(prefix).
//
// If no key in the trie is a prefix of key, returns "" and the zero value of v.
func (t *Trie[V]) Get(key string) (prefix string, value V) {
	for p, v := range t.Prefixes(key) {
		prefix, value = p, v
	}
	return prefix, value
}

// Prefixes returns an iterator over every key in the trie that is a prefix
// of key, in ascending order of length.
func (t *Trie[V]) Prefixes(key string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		n := &t.root
		if n.hasValue && !yield("", n.value) {
			return
		}

		for i := range len(key) {
			n = n.child(key[i])
			if n == nil {
				return
			}
			if n.hasValue && !yield(key[:i+1], n.value) {
				return
			}
		}
	}
}

// Insert adds a new value to this trie, replacing any existing value for key.
func (t *Trie[V]) Insert(key string, value V) {
	n := &t.root
	for i := range len(key) {
		b := key[i]
		idx, found := slices.BinarySearch(n.edges, b)
		if !found {
			n.edges = slices.Insert(n.edges, idx, b)
			n.next = slices.Insert(n.next, idx, &node[V]{})
		}
		n = n.next[idx]
	}

	if !n.hasValue {
		t.len++
	}
	n.value = value
	n.hasValue = true
}

// Dump returns a human-readable representation of the trie's structure, for
// debugging.
func (t *Trie[V]) Dump() string {
	var buf strings.Builder
	t.root.dump(&buf, "")
	return buf.String()
}

func (n *node[V]) child(b byte) *node[V] {
	idx, found := slices.BinarySearch(n.edges, b)
	if !found {
		return nil
	}
	return n.next[idx]
}

func (n *node[V]) dump(buf *strings.Builder, path string) {
	if n.hasValue {
		fmt.Fprintf(buf, "%q: %v\n", path, n.value)
	}
	for i, b := range n.edges {
		n.next[i].dump(buf, path+string(b))
	}
}

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

package source

import (
	"fmt"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

const (
	UTF16     Unit = iota // UTF-16 code units, as used by LSP clients.
	Bytes                 // UTF-8 bytes.
	Runes                 // Unicode code points.
	TermWidth             // Monospace terminal cells.
)

// Unit is a unit of measurement for column numbers and lengths.
type Unit int8

// ParseUnit parses the name of a unit, as it appears in configuration files.
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "", "utf16", "utf-16":
		return UTF16, nil
	case "bytes", "utf8", "utf-8":
		return Bytes, nil
	case "runes", "codepoints":
		return Runes, nil
	case "width", "term":
		return TermWidth, nil
	default:
		return 0, fmt.Errorf("unknown column unit %q", name)
	}
}

// Measure returns the length of text in this unit.
func (u Unit) Measure(text string) int {
	switch u {
	case Bytes:
		return len(text)
	case Runes:
		var n int
		for range text {
			n++
		}
		return n
	case TermWidth:
		return uniseg.StringWidth(text)
	default:
		var n int
		for _, r := range text {
			n += utf16.RuneLen(r)
		}
		return n
	}
}

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case UTF16:
		return "utf16"
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	case TermWidth:
		return "width"
	default:
		return fmt.Sprintf("source.Unit(%d)", int(u))
	}
}

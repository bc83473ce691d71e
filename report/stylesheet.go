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

package report

// ANSI color codes. Blue is for gutters and line numbers.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "31m"
	ansiYellow = "33m"
	ansiCyan   = "36m"
	ansiBlue   = "34m"
)

// styleSheet holds the escapes a [Renderer] writes around each part of a
// diagnostic. All of them are empty when color is off.
type styleSheet struct {
	reset string

	// Indexed by [Level]; a warning that counts as an error is colored red.
	normal, bold [Remark + 1]string

	nAccent, bAccent string
	bError, bWarning string
}

func newStyleSheet(r Renderer) styleSheet {
	var c styleSheet
	if !r.Colorize {
		return c
	}

	warning := ansiYellow
	if r.WarningsAreErrors {
		warning = ansiRed
	}
	for level, color := range map[Level]string{Error: ansiRed, Warning: warning, Remark: ansiCyan} {
		c.normal[level] = "\033[0;" + color
		c.bold[level] = "\033[1;" + color
	}

	c.reset = ansiReset
	c.nAccent, c.bAccent = "\033[0;"+ansiBlue, "\033[1;"+ansiBlue
	c.bError, c.bWarning = c.bold[Error], "\033[1;"+ansiYellow
	return c
}

// ColorForLevel returns the escape for text annotated at level l.
func (c styleSheet) ColorForLevel(l Level) string {
	if l < Error || l > Remark {
		return ""
	}
	return c.normal[l]
}

// BoldForLevel is like [styleSheet.ColorForLevel], but bold.
func (c styleSheet) BoldForLevel(l Level) string {
	if l < Error || l > Remark {
		return ""
	}
	return c.bold[l]
}

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

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when decoding a stream that could not have been
// produced by [Encode] or [AppendPacked].
var ErrMalformed = errors.New("malformed semantic token stream")

// Encode encodes tokens as five integers each: the line delta, the column
// delta, the length, the type index, and the modifier bits.
//
// Lines and columns are made 0-based. The line delta is relative to the
// previous token's line. The column delta is relative to the previous
// token's column if both are on the same line, and is otherwise the column
// itself.
//
// tokens should be in source order. A token that does not come strictly
// after the one before it cannot be encoded, and is skipped.
func Encode(tokens []Token) []uint32 {
	data := make([]uint32, 0, 5*len(tokens))
	var prevLine, prevColumn int
	for i, tok := range tokens {
		line, column := tok.Line-1, tok.Column-1
		if line < 0 || column < 0 {
			continue
		}

		deltaLine := line - prevLine
		deltaColumn := column
		if deltaLine == 0 {
			deltaColumn = column - prevColumn
		}
		if deltaLine < 0 || (deltaLine == 0 && deltaColumn <= 0 && i > 0) {
			continue
		}

		data = append(data,
			uint32(deltaLine),
			uint32(deltaColumn),
			uint32(tok.Length),
			uint32(tok.Type),
			uint32(tok.Modifiers),
		)
		prevLine, prevColumn = line, column
	}
	return data
}

// Decode reverses [Encode], producing tokens with 1-based positions.
func Decode(data []uint32) ([]Token, error) {
	if len(data)%5 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 5", ErrMalformed, len(data))
	}

	tokens := make([]Token, 0, len(data)/5)
	var line, column int
	for i := 0; i < len(data); i += 5 {
		deltaLine, deltaColumn, length, typ, mods := data[i], data[i+1], data[i+2], data[i+3], data[i+4]
		if int(typ) >= totalTypes {
			return nil, fmt.Errorf("%w: token %d has type index %d", ErrMalformed, i/5, typ)
		}
		if Modifiers(mods)&^allModifiers != 0 {
			return nil, fmt.Errorf("%w: token %d has unknown modifiers %#x", ErrMalformed, i/5, mods)
		}

		if deltaLine != 0 {
			line += int(deltaLine)
			column = int(deltaColumn)
		} else {
			column += int(deltaColumn)
		}

		tokens = append(tokens, Token{
			Line:      line + 1,
			Column:    column + 1,
			Length:    int(length),
			Type:      Type(typ),
			Modifiers: Modifiers(mods),
		})
	}
	return tokens, nil
}

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
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// streamField is the field number the packed stream is written under, as if
// it were field 1 of a message with a single packed repeated uint32 field.
const streamField protowire.Number = 1

// AppendPacked appends an encoded stream to b as a length-delimited field of
// packed varints.
func AppendPacked(b []byte, data []uint32) []byte {
	var size int
	for _, v := range data {
		size += protowire.SizeVarint(uint64(v))
	}

	b = protowire.AppendTag(b, streamField, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(size))
	for _, v := range data {
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

// ConsumePacked parses a stream written by [AppendPacked] from the start of
// b. Returns the stream and the number of bytes consumed.
func ConsumePacked(b []byte) ([]uint32, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
	}
	if num != streamField || typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("%w: unexpected field %d of wire type %d", ErrMalformed, num, typ)
	}

	payload, m := protowire.ConsumeBytes(b[n:])
	if m < 0 {
		return nil, 0, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(m))
	}

	var data []uint32
	for len(payload) > 0 {
		v, k := protowire.ConsumeVarint(payload)
		if k < 0 {
			return nil, 0, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(k))
		}
		if v > math.MaxUint32 {
			return nil, 0, fmt.Errorf("%w: value %d overflows uint32", ErrMalformed, v)
		}
		data = append(data, uint32(v))
		payload = payload[k:]
	}
	return data, n + m, nil
}

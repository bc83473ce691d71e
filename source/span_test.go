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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftblock/cbls/source"
)

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "clock main\n  x += 2\nend\n")
	span := file.Span(6, 10)

	assert.Equal(t, "main", span.Text())
	assert.Equal(t, 4, span.Len())
	assert.Equal(t, "clock ", span.Before())
	assert.Equal(t, source.Location{Offset: 6, Line: 1, Column: 7}, span.StartLoc())
	assert.Equal(t, source.Location{Offset: 10, Line: 1, Column: 11}, span.EndLoc())
	assert.Equal(t, "ai", span.Range(1, 3).Text())
	assert.Equal(t, "in", span.Range(-2, 100).Text())
	assert.True(t, span.Adjacent(file.Span(10, 11)))
	assert.False(t, span.Adjacent(file.Span(11, 12)))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "abcdefghij")
	joined := source.Join(file.Span(5, 7), source.Span{}, file.Span(1, 3))
	assert.Equal(t, file.Span(1, 7), joined)

	assert.True(t, source.Join().IsZero())
	assert.True(t, source.Join(source.Span{}, nil).IsZero())

	other := source.NewFile("other", "abc")
	assert.Panics(t, func() {
		source.Join(file.Span(0, 1), other.Span(0, 1))
	})
}

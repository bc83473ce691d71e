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

// Package semantic classifies tokens for syntax highlighting and encodes
// them in the relative form used by the Language Server Protocol.
//
// [Classify] maps lexed tokens to [Token]s, each with a [Type] and a set of
// [Modifiers]. [Encode] turns them into the flat stream of five integers per
// token that editors expect, and [Decode] reverses it. [Legend] names the
// indices that appear in the stream.
package semantic

//go:generate go run github.com/craftblock/cbls/internal/enum type.yaml

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

// Package token provides the lexical vocabulary of CraftBlock: the [Kind]
// of every token, the [Token] values the lexer produces, and [Set]s of kinds
// used to describe what the grammar expects at a given point.
//
// Reserved words are not lexed by separate rules; an identifier is lexed
// first and then looked up with [Lookup]. Operators are matched by longest
// prefix with [Prefix].
package token

//go:generate go run github.com/craftblock/cbls/internal/enum kind.yaml

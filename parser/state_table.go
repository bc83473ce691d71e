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

package parser

import "github.com/craftblock/cbls/token"

// Expected returns the set of tokens the grammar accepts in this state.
func (s State) Expected() token.Set {
	if int(s) < len(expected) {
		return expected[s]
	}
	return token.Set{}
}

var (
	declStart = token.NewSet(
		token.Import, token.Dollar, token.Advancement, token.Predicate,
		token.ItemModifier, token.LootTable, token.Array, token.Define,
		token.AtIdent, token.Reset, token.Clock, token.Function, token.Macro,
	)

	itemStart = token.NewSet(
		token.If, token.Unless, token.As, token.At, token.Facing,
		token.Rotated, token.On, token.Align, token.In,
	)

	stmtStart = token.NewSet(
		token.Command, token.Dollar, token.Return, token.Define, token.AtIdent,
		token.For, token.While, token.Remove, token.Tell, token.Title,
		token.Subtitle, token.Actionbar, token.Ident, token.Colon, token.Amp,
		token.Less,
	).Union(itemStart)

	intStart = token.NewSet(token.Minus, token.Decimal, token.Hex, token.Binary)

	exprStart = token.NewSet(
		token.Float, token.String, token.Dollar, token.Ident, token.Colon,
		token.Amp, token.AtIdent, token.Less, token.LParen, token.Success,
		token.Result, token.True, token.False,
	).Union(intStart)

	constStart = token.NewSet(
		token.Float, token.String, token.Dollar, token.True, token.False,
		token.LBracket, token.LParen, token.Not,
	).Union(intStart)

	valueStart = token.NewSet(
		token.Dollar, token.NBTNumber, token.Float, token.String, token.LBrace,
		token.LBracket, token.True, token.False,
	).Union(intStart)

	compareOps = token.NewSet(
		token.EqEq, token.Less, token.LessEq, token.Greater, token.GreaterEq,
	)
)

// expected is the static table behind [State.Expected].
var expected = [...]token.Set{
	StateStart:          declStart.With(token.Dir, token.Newline, token.EOF),
	StateTopLevel:       declStart.With(token.Newline),
	StateDirValue:       token.NewSet(token.String),
	StateDescValue:      token.NewSet(token.String),
	StateFileParamValue: intStart,
	StateImportPath:     token.NewSet(token.Ident, token.Dot, token.Newline),
	StateResource:       token.NewSet(token.Ident, token.LBrace),
	StateArrayDecl:      constStart.With(token.Ident, token.LBracket, token.RBracket, token.To),
	StateSelectorDef: intStart.With(
		token.AtIdent, token.Eq, token.Colon, token.LParen, token.RParen,
	),
	StateSelectorItem: token.NewSet(
		token.Ident, token.Less, token.Greater, token.Eq, token.Colon,
		token.AtIdent, token.Create, token.End, token.Newline,
	),
	StateSectionHeader: token.NewSet(
		token.Ident, token.Dollar, token.LParen, token.RParen, token.Newline,
	),
	StateSectionBody: stmtStart.With(token.End, token.Newline),
	StateStatement:   stmtStart.With(token.Newline),
	StateDefineName: token.NewSet(
		token.Name, token.AtIdent, token.Ident, token.Eq, token.String,
	),
	StateForLoop:     constStart.With(token.Ident, token.In, token.To, token.By, token.Newline),
	StateExecuteItem: itemStart,
	StateExecuteBody: itemStart.With(token.Do, token.Then, token.Newline),
	StateDimension: token.NewSet(
		token.Overworld, token.TheEnd, token.TheNether, token.Ident, token.String,
	),
	StateCondition: exprStart.With(token.Not, token.Predicate, token.Block),
	StateSelector:  token.NewSet(token.AtIdent, token.LBracket, token.RBracket),
	StateQualifier: token.NewSet(
		token.Ident, token.Name, token.Predicate, token.Block, token.Facing,
		token.Comma, token.And, token.RBracket,
	),
	StateQualifierValue: intStart.Union(compareOps).With(
		token.Bang, token.Not, token.DotDot, token.Ident, token.String,
		token.LBrace, token.Eq,
	),
	StateRange:           intStart.With(token.DotDot),
	StateExpression:      exprStart,
	StateConstExpression: constStart,
	StateAssignment: token.NewSet(
		token.Eq, token.PlusEq, token.MinusEq, token.StarEq, token.PercentEq,
		token.PlusPlus, token.MinusMinus, token.LParen, token.Dot, token.LBracket,
	),
	StateMessage: exprStart,
	StateObjectKey: token.NewSet(
		token.Ident, token.String, token.Facing, token.Block, token.Predicate,
		token.Name, token.Colon, token.Comma, token.RBrace, token.Newline,
	),
	StateObjectValue: valueStart,
	StateArrayValue:  valueStart.With(token.Comma, token.RBracket, token.Newline),
	StateLiteralArray: intStart.With(
		token.Ident, token.Semi, token.Dollar, token.Float, token.NBTNumber,
		token.Comma, token.RBracket,
	),
	StateDataPath:      token.NewSet(token.Ident, token.Facing, token.Dot, token.LBrace, token.LBracket),
	StateDataType:      token.NewSet(token.Ident),
	StateCoordinate:    intStart.With(token.Tilde, token.TildeEmpty, token.Caret, token.Float),
	StateParameters:    token.NewSet(token.Dollar, token.Ident, token.Comma, token.RParen),
	StateArguments:     exprStart.With(token.Comma, token.RParen),
	StateVector:        exprStart.With(token.Comma, token.Greater),
	StateCommandResult: token.NewSet(token.Newline, token.Command),
	StateEndOfLine:     token.NewSet(token.Newline, token.EOF),
}

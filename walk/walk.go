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

// Package walk provides helper functions for traversing CraftBlock syntax
// trees.
package walk

import (
	"errors"
	"reflect"

	"github.com/craftblock/cbls/ast"
)

// SkipChildren may be returned by an enter function to stop the walk from
// descending into the current node. The exit function is still called.
var SkipChildren = errors.New("skip children")

// Nodes walks all nodes reachable from root, in source order, calling fn for
// each one. Iteration stops at the first error, which is returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks all nodes reachable from root. The enter function
// is called before a node's children are visited, and exit afterwards. The
// exit function may be nil.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	w := walker{enter: enter, exit: exit}
	err := w.node(root)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

type walker struct {
	enter, exit func(ast.Node) error
}

func (w *walker) node(n ast.Node) error {
	if isNil(n) {
		return nil
	}

	err := w.enter(n)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		if err := w.children(n); err != nil {
			return err
		}
	}

	if w.exit != nil {
		return w.exit(n)
	}
	return nil
}

func (w *walker) nodes(ns ...ast.Node) error {
	for _, n := range ns {
		if err := w.node(n); err != nil {
			return err
		}
	}
	return nil
}

//nolint:gocyclo // One case per node type.
func (w *walker) children(n ast.Node) error {
	switch n := n.(type) {
	case *ast.File:
		if err := w.nodes(n.Dir, n.Desc); err != nil {
			return err
		}
		for _, p := range n.Params {
			if err := w.node(p); err != nil {
				return err
			}
		}
		return each(w, n.Decls)

	case *ast.Resource:
		return w.node(n.Body)
	case *ast.ConstAssign:
		return w.node(n.Value)
	case *ast.ArrayDecl:
		return w.nodes(n.From, n.To)
	case *ast.SelectorDef:
		if err := w.nodes(n.UUID, n.Base); err != nil {
			return err
		}
		for i := range n.Body {
			if err := w.node(&n.Body[i]); err != nil {
				return err
			}
		}
	case *ast.SelectorItem:
		return w.nodes(n.Selector, n.Path, n.Scale, n.Create)
	case *ast.SelectorAssign:
		return w.node(n.Value)
	case *ast.Section:
		for i := range n.Params {
			if err := w.node(&n.Params[i]); err != nil {
				return err
			}
		}
		return each(w, n.Body)

	case *ast.Return:
		return w.node(n.Value)
	case *ast.For:
		if err := w.nodes(n.From, n.To, n.By); err != nil {
			return err
		}
		return each(w, n.Body)
	case *ast.While:
		if err := w.node(n.Cond); err != nil {
			return err
		}
		return each(w, n.Body)
	case *ast.Chain:
		if err := each(w, n.Items); err != nil {
			return err
		}
		if err := w.node(n.Action); err != nil {
			return err
		}
		if err := each(w, n.Body); err != nil {
			return err
		}
		return each(w, n.Else)
	case *ast.Else:
		if err := each(w, n.Items); err != nil {
			return err
		}
		return each(w, n.Body)
	case *ast.ExecItem:
		return w.nodes(n.Cond, n.Selector, n.Coords)
	case *ast.Remove:
		return w.node(n.Target)
	case *ast.Message:
		return w.nodes(n.Target, n.Value)
	case *ast.Assign:
		return w.nodes(n.Target, n.Value)
	case *ast.IncDec:
		return w.node(n.Target)
	case *ast.ExprStmt:
		return w.node(n.X)

	case *ast.Storage:
		return w.node(n.Path)
	case *ast.Ref:
		return w.node(n.Target)
	case *ast.Selector:
		if err := w.node(n.Count); err != nil {
			return err
		}
		return each(w, n.Qualifiers)
	case *ast.Qualifier:
		return w.node(n.Value)
	case *ast.Range:
		return w.nodes(n.Lo, n.Hi)
	case *ast.Vector:
		return w.nodes(n.X, n.Y, n.Z)
	case *ast.Binary:
		return w.nodes(n.Left, n.Right)
	case *ast.Unary:
		return w.node(n.X)
	case *ast.Member:
		return w.node(n.X)
	case *ast.Index:
		return w.nodes(n.X, n.Index)
	case *ast.Call:
		if err := w.node(n.Fn); err != nil {
			return err
		}
		return each(w, n.Args)
	case *ast.Paren:
		return each(w, n.Elems)
	case *ast.List:
		return each(w, n.Elems)
	case *ast.Create:
		return w.nodes(n.Count, n.Body)
	case *ast.Object:
		return each(w, n.Pairs)
	case *ast.Pair:
		return w.node(n.Value)
	case *ast.Array:
		return each(w, n.Elems)
	case *ast.LiteralArray:
		return each(w, n.Elems)
	case *ast.DataPath:
		return each(w, n.Parts)
	case *ast.PathPart:
		return w.nodes(n.Filter, n.Index)
	case *ast.Coords:
		return w.nodes(n.Parts[0], n.Parts[1], n.Parts[2])
	case *ast.Coord:
		return w.node(n.Offset)

	case *ast.Not:
		return w.node(n.Cond)
	case *ast.Logical:
		return w.nodes(n.Left, n.Right)
	case *ast.BlockCond:
		return w.node(n.Coords)
	case *ast.Compare:
		return w.nodes(n.Left, n.Right)
	}
	return nil
}

func each[N ast.Node](w *walker, ns []N) error {
	for _, n := range ns {
		if err := w.node(n); err != nil {
			return err
		}
	}
	return nil
}

// isNil returns whether n is nil, including a typed nil pointer.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

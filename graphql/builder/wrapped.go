/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package builder

import (
	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
)

// UnwrapToNamed strips list and non-null wrappers from node and returns the innermost NamedType. It
// returns a zero NamedType if node does not end in one.
func UnwrapToNamed(node ast.Type) ast.NamedType {
	for {
		switch t := node.(type) {
		case ast.NamedType:
			return t
		case *ast.ListType:
			if t == nil {
				return ast.NamedType{}
			}
			node = t.ItemType
		case *ast.NonNullType:
			if t == nil {
				return ast.NamedType{}
			}
			node = t.Type
		default:
			return ast.NamedType{}
		}
	}
}

// Rewrap applies the list and non-null wrappers described by node around inner, which is the type
// resolved for the innermost NamedType of node.
func Rewrap(inner graphql.Type, node ast.Type) (graphql.Type, error) {
	switch t := node.(type) {
	case *ast.ListType:
		elementType, err := Rewrap(inner, t.ItemType)
		if err != nil {
			return nil, err
		}
		return graphql.NewListOf(elementType)

	case *ast.NonNullType:
		innerType, err := Rewrap(inner, t.Type)
		if err != nil {
			return nil, err
		}
		if graphql.IsNonNullType(innerType) {
			return nil, newInvariantViolationError("builder.Rewrap", "nullable type", innerType, node)
		}
		return graphql.NewNonNullOf(innerType)
	}

	return inner, nil
}

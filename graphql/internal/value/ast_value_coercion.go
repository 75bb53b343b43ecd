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

package value

import (
	"fmt"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
)

// CoerceFromAST produces a Go value given a constant GraphQL Value AST.
//
// A GraphQL type must be provided, which will be used to interpret different GraphQL Value
// literals. Schema documents only allow constant values so a variable reference fails the coercion.
//
// | GraphQL Value        | Go Value                 |
// | -------------------- | ------------------------ |
// | Input Object         | map[string]interface{}   |
// | List                 | []interface{}            |
// | Boolean              | bool                     |
// | String               | string                   |
// | Int / Float          | int / float64            |
// | Enum Value           | internal value           |
// | NullValue            | nil                      |
func CoerceFromAST(node ast.Value, t graphql.Type) (interface{}, error) {
	if node == nil {
		// When there is no node, then there is also no value.
		return nil, graphql.NewCoercionError("Expected a value of type %s but got nothing.", t)
	}

	_, isNullValue := node.(ast.NullValue)
	if t, isNonNullType := t.(graphql.NonNull); isNonNullType {
		if isNullValue {
			return nil, newCoercionError(node, "Expected non-null value of type %s but got null.", t)
		}
		return CoerceFromAST(node, t.InnerType())
	}

	if isNullValue {
		// This is explicitly returning the value null.
		return nil, nil
	}

	if variable, isVariable := node.(ast.Variable); isVariable {
		return nil, newCoercionError(node,
			"Variable \"$%s\" is not allowed in a constant value.", variable.Name.Value())
	}

	switch ttype := t.(type) {
	case graphql.List:
		elementType := ttype.ElementType()

		if listValue, isListValue := node.(ast.ListValue); isListValue {
			coercedValues := make([]interface{}, len(listValue.Values))
			for i, elementNode := range listValue.Values {
				elementValue, err := CoerceFromAST(elementNode, elementType)
				if err != nil {
					return nil, err
				}
				coercedValues[i] = elementValue
			}
			return coercedValues, nil
		}

		// A single value is coerced with the element type and then wrapped in a list.
		coercedValue, err := CoerceFromAST(node, elementType)
		if err != nil {
			return nil, err
		}
		return []interface{}{coercedValue}, nil

	case graphql.InputObject:
		objectValue, isObjectValue := node.(ast.ObjectValue)
		if !isObjectValue {
			return nil, newCoercionError(node, "Expected type %s to be an object but got: %s.",
				t, ast.Print(node))
		}

		fields, err := ttype.Fields()
		if err != nil {
			return nil, err
		}

		// fieldNodes maps field name to ast.ObjectField.
		fieldNodes := make(map[string]*ast.ObjectField, len(objectValue.Fields))
		for _, fieldNode := range objectValue.Fields {
			name := fieldNode.Name.Value()
			if fields.Lookup(name) == nil {
				return nil, newCoercionError(fieldNode, "Field \"%s\" is not defined by type %s.", name, t)
			}
			fieldNodes[name] = fieldNode
		}

		coercedValues := make(map[string]interface{}, len(fields))
		for _, name := range fields.Names() {
			field := fields[name]
			fieldNode, exists := fieldNodes[name]
			if !exists {
				if field.HasDefaultValue() {
					coercedValues[name] = field.DefaultValue()
				} else if graphql.IsNonNullType(field.Type()) {
					return nil, newCoercionError(node, "Field %s.%s of required type %s was not provided.",
						t, name, field.Type())
				}
				continue
			}

			fieldValue, err := CoerceFromAST(fieldNode.Value, field.Type())
			if err != nil {
				return nil, err
			}
			coercedValues[name] = fieldValue
		}
		return coercedValues, nil

	case graphql.LeafType:
		return ttype.CoerceArgumentValue(node)
	}

	return nil, graphql.NewCoercionError("%s is not a valid input type", graphql.Inspect(t))
}

func newCoercionError(node ast.Node, format string, args ...interface{}) error {
	return graphql.NewError(fmt.Sprintf(format, args...),
		graphql.ErrorLocationsOfASTNodes(node),
		graphql.ErrKindCoercion)
}

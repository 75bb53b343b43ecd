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

// DirectiveValues prepares an object map of argument values given a directive definition and the
// directives applied to an AST node. If the directive does not exist on the node, returns nil.
func DirectiveValues(
	directiveDef *graphql.Directive,
	nodeDirectives ast.Directives) (map[string]interface{}, error) {

	// Find the directive specified by the node that matches the name of directiveDef.
	directiveNode := nodeDirectives.Lookup(directiveDef.Name())

	// Quick return if there's no such directive.
	if directiveNode == nil {
		return nil, nil
	}

	return ArgumentValues(directiveDef.Args(), directiveNode)
}

// ArgumentValues prepares an object map of argument values given the argument definitions and the
// directive node that supplies the argument literals. Defaults are applied to the arguments that
// are not given.
func ArgumentValues(argDefs graphql.ArgumentMap, node *ast.Directive) (map[string]interface{}, error) {
	// argNodes maps argument name to ast.Argument.
	argNodes := make(map[string]*ast.Argument, len(node.Arguments))
	for _, argNode := range node.Arguments {
		argNodes[argNode.Name.Value()] = argNode
	}

	coercedValues := make(map[string]interface{}, len(argDefs))
	for _, argName := range argDefs.Names() {
		argDef := argDefs[argName]
		argType := argDef.Type()
		argNode, hasValue := argNodes[argName]

		if !hasValue {
			if argDef.HasDefaultValue() {
				// If no argument was provided where the definition has a default value, use the default
				// value.
				coercedValues[argName] = argDef.DefaultValue()
			} else if graphql.IsNonNullType(argType) {
				// No argument was provided to an argument with a non-null type (required).
				return nil, graphql.NewError(
					fmt.Sprintf(`Argument "%s" of required type "%s" was not provided.`, argName, argType),
					graphql.ErrorLocationsOfASTNodes(node),
					graphql.ErrKindCoercion)
			}
			continue
		}

		coercedValue, err := CoerceFromAST(argNode.Value, argType)
		if err != nil {
			return nil, graphql.NewError(
				fmt.Sprintf(`Argument "%s" has invalid value %s.`, argName, ast.Print(argNode.Value)),
				graphql.ErrorLocationsOfASTNodes(argNode.Value),
				err)
		}
		coercedValues[argName] = coercedValue
	}

	return coercedValues, nil
}

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
	"fmt"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
)

// BuildInputValues creates arguments from their definitions. They are also used as the fields of an
// input object.
func (b *Builder) BuildInputValues(nodes []*ast.InputValueDefinition) (graphql.ArgumentMap, error) {
	args := make(graphql.ArgumentMap, len(nodes))
	for _, node := range nodes {
		name := node.Name.Value()
		if _, exists := args[name]; exists {
			continue
		}

		t, err := b.BuildInputType(node.Type)
		if err != nil {
			return nil, err
		}

		// A nil DefaultValue in ArgumentConfig means no default value.
		var defaultValue interface{}
		if node.DefaultValue != nil {
			defaultValue, err = b.options.CoerceDefaultValue(node.DefaultValue, t)
			if err != nil {
				return nil, newError("builder.BuildInputValues",
					fmt.Sprintf(`Argument "%s" has invalid default value %s.`, name, ast.Print(node.DefaultValue)),
					err,
					node.DefaultValue)
			}
			if defaultValue == nil {
				defaultValue = graphql.NilArgumentDefaultValue
			}
		}

		description, _ := b.Description(node)
		arg, err := graphql.NewArgument(name, &graphql.ArgumentConfig{
			Description:  description,
			Type:         t,
			DefaultValue: defaultValue,
			ASTNode:      node,
		})
		if err != nil {
			return nil, err
		}
		args[name] = arg
	}
	return args, nil
}

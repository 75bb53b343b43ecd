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
	"sort"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"

	"go.uber.org/zap"
)

// Definitions contains the definitions collected from a document.
type Definitions struct {
	// Types maps type name to its definition.
	Types DefinitionMap

	// Directives in the order of their appearance in the document
	Directives []*ast.DirectiveDefinition

	// Schema is the schema definition in the document or nil if there's none.
	Schema *ast.SchemaDefinition
}

// CollectDefinitions sorts the definitions in doc by their kind. Each name can only be defined once.
func CollectDefinitions(doc *ast.Document) (*Definitions, error) {
	var (
		errs        graphql.Errors
		definitions = &Definitions{
			Types: DefinitionMap{},
		}
		directiveNodes = map[string]*ast.DirectiveDefinition{}
	)

	for _, definition := range doc.Definitions {
		switch definition := definition.(type) {
		// DirectiveDefinition also has a name and a description so it must be matched first.
		case *ast.DirectiveDefinition:
			name := definition.Name
			if prev, exists := directiveNodes[name.Value()]; exists {
				errs.Emplace(fmt.Sprintf(`There can be only one directive named "@%s".`, name.Value()),
					graphql.ErrorLocationsOfASTNodes(prev.Name, name),
					graphql.ErrKindSchema)
				continue
			}
			directiveNodes[name.Value()] = definition
			definitions.Directives = append(definitions.Directives, definition)

		case ast.TypeDefinition:
			name := definition.GetName()
			if prev, exists := definitions.Types[name.Value()]; exists {
				errs.Emplace(fmt.Sprintf(`There can be only one type named "%s".`, name.Value()),
					graphql.ErrorLocationsOfASTNodes(prev.(ast.TypeDefinition).GetName(), name),
					graphql.ErrKindSchema)
				continue
			}
			definitions.Types[name.Value()] = definition

		case *ast.SchemaDefinition:
			if definitions.Schema != nil {
				errs.Emplace("Must provide only one schema definition.",
					graphql.ErrorLocationsOfASTNodes(definitions.Schema, definition),
					graphql.ErrKindSchema)
				continue
			}
			definitions.Schema = definition

		default:
			errs.Emplace(fmt.Sprintf(`Unsupported definition kind "%s".`, definition.Kind()),
				graphql.ErrorLocationsOfASTNodes(definition),
				graphql.ErrKindSchema)
		}
	}

	if errs.HaveOccurred() {
		return nil, errs
	}
	return definitions, nil
}

// DefinitionMapOf collects the type definitions in doc.
func DefinitionMapOf(doc *ast.Document) (DefinitionMap, error) {
	definitions, err := CollectDefinitions(doc)
	if err != nil {
		return nil, err
	}
	return definitions.Types, nil
}

// BuildDocument builds every type and directive defined in doc into a schema. Fields and interfaces
// of all types are evaluated so errors in any definition are reported.
func BuildDocument(doc *ast.Document, options Options, resolver TypeResolver) (*graphql.Schema, error) {
	definitions, err := CollectDefinitions(doc)
	if err != nil {
		return nil, err
	}

	var (
		b    = New(definitions.Types, options, resolver)
		errs graphql.Errors
	)

	names := make([]string, 0, len(definitions.Types))
	for name := range definitions.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	types := make([]graphql.Type, 0, len(names))
	for _, name := range names {
		t, err := b.ResolveType(name)
		if err != nil {
			b.logger.Warn("failed to build type", zap.String("type", name), zap.Error(err))
			errs.Append(err)
			continue
		}
		types = append(types, t)
	}

	directives := make(graphql.DirectiveList, 0, len(definitions.Directives))
	for _, node := range definitions.Directives {
		directive, err := b.BuildDirective(node)
		if err != nil {
			b.logger.Warn("failed to build directive",
				zap.String("directive", node.Name.Value()),
				zap.Error(err))
			errs.Append(err)
			continue
		}
		directives = append(directives, directive)
	}

	roots, err := b.buildRootTypes(definitions.Schema)
	if err != nil {
		b.logger.Warn("failed to build root operation types", zap.Error(err))
		errs.Append(err)
	}

	if errs.HaveOccurred() {
		return nil, errs
	}

	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query:        roots[ast.OperationTypeQuery],
		Mutation:     roots[ast.OperationTypeMutation],
		Subscription: roots[ast.OperationTypeSubscription],
		Types:        types,
		Directives:   directives,
		ASTNode:      definitions.Schema,
	})
	if err != nil {
		b.logger.Warn("failed to build schema", zap.Error(err))
		return nil, err
	}
	return schema, nil
}

// buildRootTypes resolves the root operation types declared by schemaNode. Without a schema
// definition, the types named "Query", "Mutation" and "Subscription" are used if exist.
func (b *Builder) buildRootTypes(schemaNode *ast.SchemaDefinition) (map[ast.OperationType]graphql.Object, error) {
	roots := map[ast.OperationType]graphql.Object{}

	if schemaNode == nil {
		operations := []ast.OperationType{
			ast.OperationTypeQuery,
			ast.OperationTypeMutation,
			ast.OperationTypeSubscription,
		}
		conventionalNames := []string{"Query", "Mutation", "Subscription"}
		for i, operation := range operations {
			name := conventionalNames[i]
			if _, exists := b.definitions[name]; !exists {
				continue
			}
			object, err := b.BuildObjectType(name)
			if err != nil {
				return nil, err
			}
			roots[operation] = object
		}
		return roots, nil
	}

	for _, node := range schemaNode.OperationTypes {
		operation := node.OperationType()
		if _, exists := roots[operation]; exists {
			return nil, newError("builder.BuildDocument",
				fmt.Sprintf("Must provide only one %s type in schema.", operation),
				nil,
				node)
		}
		object, err := b.BuildObjectTypeRef(node.Type)
		if err != nil {
			return nil, err
		}
		roots[operation] = object
	}

	if _, exists := roots[ast.OperationTypeQuery]; !exists {
		return nil, newError("builder.BuildDocument", "Must provide schema definition with query type.",
			nil, schemaNode)
	}

	return roots, nil
}

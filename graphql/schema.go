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

package graphql

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/botobag/sdlgraph/graphql/ast"
)

// Contains interfaces and definitions for a GraphQL schema.

// TypeMap keeps track of all named types referenced within the schema.
type TypeMap struct {
	types map[string]Type
}

// Add a type into the map. This is only used by NewSchema to initialize type map incrementally.
// Lazy fields and interfaces of the visited types are evaluated here and their errors are returned.
func (typeMap TypeMap) add(t Type) error {
	// stack contains types to be added to the map.
	stack := []Type{t}

	for len(stack) > 0 {
		// Pop a type from stack.
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Skip nil type quickly. Before validation, we may have nil Type or nil type instance wrapped
		// in a Type.
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}

		// Map type name to corresponding Type.
		if namedType, ok := t.(TypeWithName); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				// Add the type into typeMap.
				typeMap.types[name] = t
			} else {
				if prev != t {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %s.", name),
						ErrKindSchema)
				}
				// Skip t which has been processed.
				continue
			}
		}

		// Add types referenced by t to stack.
		switch t := t.(type) {
		case Scalar, Enum:
			// Nothing to to.

		case Object:
			// Add interfaces.
			interfaces, err := t.Interfaces()
			if err != nil {
				return err
			}
			for _, iface := range interfaces {
				stack = append(stack, iface)
			}

			// Add field type and arg type.
			fields, err := t.Fields()
			if err != nil {
				return err
			}
			stack = appendFieldTypes(stack, fields)

		case Interface:
			// Add field type and arg type.
			fields, err := t.Fields()
			if err != nil {
				return err
			}
			stack = appendFieldTypes(stack, fields)

		case Union:
			for _, possibleType := range t.PossibleTypes() {
				stack = append(stack, possibleType)
			}

		case InputObject:
			// Add field type.
			fields, err := t.Fields()
			if err != nil {
				return err
			}
			for _, field := range fields {
				stack = append(stack, field.Type())
			}

		case List:
			stack = append(stack, t.ElementType())

		case NonNull:
			stack = append(stack, t.InnerType())

		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t))
		}
	}

	return nil
}

func appendFieldTypes(stack []Type, fields FieldMap) []Type {
	for _, field := range fields {
		stack = append(stack, field.Type())
		for _, arg := range field.Args() {
			stack = append(stack, arg.Type())
		}
	}
	return stack
}

// Lookup finds a type with given name.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Len returns the number of types in the map.
func (typeMap TypeMap) Len() int {
	return len(typeMap.types)
}

// Names returns names of the types in the map in sorted order.
func (typeMap TypeMap) Names() []string {
	names := make([]string, 0, len(typeMap.types))
	for name := range typeMap.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Query, Mutation and Subscription returns GraphQL Root Operation defined by the schema.
	Query        Object
	Mutation     Object
	Subscription Object

	// List of types that are declared in the schema.
	Types []Type

	// List of directives to be added to the schema.
	Directives DirectiveList

	// If true, the standard directives such as @skip will not be incldued in the defining schema. The
	// directives provided in Directives will be the exact list of directives represented and allowed.
	ExcludeStandardDirectives bool

	// ASTNode is the schema definition that the schema is built from (optional).
	ASTNode *ast.SchemaDefinition
}

// Schema Definition
//
// A GraphQL service’s collective type system capabilities are referred to as that service’s
// “schema”. A schema is defined in terms of the types and directives it supports as well as the
// root operation types for each kind of operation: query, mutation, and subscription; this
// determines the place in the type system where those operations begin.
//
// Definitions including types and directives in schema are assumed to be immutable after creation.
// This allows us to cache the results for some operations such as PossibleTypes.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	// query, mutation and subscription are root operation objects.
	query        Object
	mutation     Object
	subscription Object

	// typeMap contains all named type defined in the schema.
	typeMap TypeMap

	// directives contains all directives defined in the schema.
	directives DirectiveList

	// implementations keeps track of all implementations by interface.
	implementations map[Interface][]Object

	astNode *ast.SchemaDefinition
}

// NewSchema initializes a Schema from the given config. All types reachable from the config are
// visited which forces evaluation of their fields and interfaces.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	schema := &Schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
		astNode:      config.ASTNode,
	}

	// Add standard directives.
	numDirectives := len(config.Directives)
	if config.ExcludeStandardDirectives {
		schema.directives = make(DirectiveList, numDirectives)
		// Make a copy.
		copy(schema.directives, config.Directives)
	} else {
		standardDirectives := StandardDirectives()
		schema.directives = make(DirectiveList, numDirectives, numDirectives+len(standardDirectives))
		// Make a copy.
		copy(schema.directives, config.Directives)
		// Append standard directives that are not overridden.
		for _, directive := range standardDirectives {
			if schema.directives.Lookup(directive.Name()) == nil {
				schema.directives = append(schema.directives, directive)
			}
		}
	}

	// Build type map now to detect any errors within this schema.
	typeMap := TypeMap{
		types: map[string]Type{},
	}

	initialTypes := []Type{
		// Root operation types
		config.Query,
		config.Mutation,
		config.Subscription,
		// Introspection
		_schema,
	}

	// Built-in types
	for _, t := range SpecifiedScalarTypes() {
		initialTypes = append(initialTypes, t)
	}

	// Enumerated types in config
	initialTypes = append(initialTypes, config.Types...)

	for _, t := range initialTypes {
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}
		if err := typeMap.add(t); err != nil {
			return nil, err
		}
	}

	// Visit types referenced by directives.
	for _, directive := range schema.directives {
		for _, arg := range directive.Args() {
			if err := typeMap.add(arg.Type()); err != nil {
				return nil, err
			}
		}
	}

	// Storing the resulting map for reference by the schema.
	schema.typeMap = typeMap

	// Keep track of all implementations by interface name.
	implementations := map[Interface][]Object{}
	for _, name := range typeMap.Names() {
		// Find all Object types.
		if t, ok := typeMap.types[name].(Object); ok {
			interfaces, err := t.Interfaces()
			if err != nil {
				return nil, err
			}
			// Create a reverse link from the Interface to the Objects that implement it.
			for _, iface := range interfaces {
				implementations[iface] = append(implementations[iface], t)
			}
		}
	}
	schema.implementations = implementations

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead of
// returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Directives keeps track of all valid directives within the schema.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() Object {
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Mutation() Object {
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Subscription() Object {
	return schema.subscription
}

// ASTNode returns the schema definition that the schema is built from.
func (schema *Schema) ASTNode() *ast.SchemaDefinition {
	return schema.astNode
}

// PossibleTypes returns concrete types for an abstract type in the schema. For Interface, this is
// the list of Object type that implement it. For Union, this is the list of its member types.
func (schema *Schema) PossibleTypes(t AbstractType) []Object {
	switch t := t.(type) {
	case Union:
		return t.PossibleTypes()
	case Interface:
		return schema.implementations[t]
	default:
		return nil
	}
}

// TypeFromAST returns a graphql.Type that applies to the ast.Type in the given schema For example,
// if provided the parsed AST node for `[User]`, a graphql.List instance will be returned,
// containing the type called "User" found in the schema. If a type called "User" is not found in
// the schema, then nil will be returned.
func (schema *Schema) TypeFromAST(t ast.Type) Type {
	// Find the innermost ast.NamedType. Memoize what type we've went through.
	var (
		typeName string
		typePath []ast.Type
	)

	for len(typeName) == 0 {
		switch ttype := t.(type) {
		case ast.NamedType:
			typeName = ttype.Name.Value()

		case *ast.ListType:
			// Append current type to typePath.
			typePath = append(typePath, t)
			// Continue on inner type.
			t = ttype.ItemType

		case *ast.NonNullType:
			typePath = append(typePath, t)
			t = ttype.Type

		default:
			return nil
		}
	}

	// Find the graphql.Type for the name.
	result := schema.TypeMap().Lookup(typeName)
	if result == nil {
		return nil
	}

	// Go through typePath backward to build wrapping type.
	for len(typePath) > 0 {
		t, typePath = typePath[len(typePath)-1], typePath[:len(typePath)-1]
		var err error
		if _, ok := t.(*ast.ListType); ok {
			result, err = NewListOf(result)
		} else {
			// Must be a NonNullType.
			result, err = NewNonNullOf(result)
		}
		if err != nil {
			return nil
		}
	}

	return result
}

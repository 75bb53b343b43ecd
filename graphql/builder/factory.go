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

// BuildType creates a named type from its definition. The fields and the interfaces of the
// returned type are built when they are first requested so definitions can refer to each other.
// The result is not cached; Use ResolveType to get the shared instance of a type.
func (b *Builder) BuildType(definition ast.Definition) (graphql.Type, error) {
	if isNil(definition) {
		err := &MissingDefinitionError{}
		return nil, newError("builder.BuildType", err.Error(), err)
	}

	switch definition := definition.(type) {
	case *ast.ObjectTypeDefinition:
		return b.buildObject(definition)
	case *ast.InterfaceTypeDefinition:
		return b.buildInterface(definition)
	case *ast.UnionTypeDefinition:
		return b.buildUnion(definition)
	case *ast.EnumTypeDefinition:
		return b.buildEnum(definition)
	case *ast.ScalarTypeDefinition:
		return b.buildScalar(definition)
	case *ast.InputObjectTypeDefinition:
		return b.buildInputObject(definition)
	}

	// Directives are not types. They are built with BuildDirective.
	err := &UnsupportedDefinitionKindError{
		Kind: string(definition.Kind()),
	}
	return nil, newError("builder.BuildType", err.Error(), err, definition)
}

func (b *Builder) buildObject(definition *ast.ObjectTypeDefinition) (graphql.Object, error) {
	description, _ := b.Description(definition)
	return graphql.NewObject(&graphql.ObjectConfig{
		Name:        definition.Name.Value(),
		Description: description,
		Interfaces: func() ([]graphql.Interface, error) {
			interfaces := make([]graphql.Interface, 0, len(definition.Interfaces))
			for _, node := range definition.Interfaces {
				iface, err := b.BuildInterfaceTypeRef(node)
				if err != nil {
					return nil, err
				}
				interfaces = append(interfaces, iface)
			}
			return interfaces, nil
		},
		Fields:  b.fieldMapThunk(definition.Fields),
		ASTNode: definition,
	})
}

func (b *Builder) buildInterface(definition *ast.InterfaceTypeDefinition) (graphql.Interface, error) {
	description, _ := b.Description(definition)
	return graphql.NewInterface(&graphql.InterfaceConfig{
		Name:        definition.Name.Value(),
		Description: description,
		Fields:      b.fieldMapThunk(definition.Fields),
		ASTNode:     definition,
	})
}

func (b *Builder) fieldMapThunk(nodes []*ast.FieldDefinition) graphql.FieldMapThunk {
	return func() (graphql.FieldMap, error) {
		fields := make(graphql.FieldMap, len(nodes))
		for _, node := range nodes {
			name := node.Name.Value()
			if _, exists := fields[name]; exists {
				continue
			}
			field, err := b.BuildField(node)
			if err != nil {
				return nil, err
			}
			fields[name] = field
		}
		return fields, nil
	}
}

func (b *Builder) buildUnion(definition *ast.UnionTypeDefinition) (graphql.Union, error) {
	description, _ := b.Description(definition)

	// Member types are resolved now. Only fields can refer back to the union.
	possibleTypes := make([]graphql.Object, 0, len(definition.Types))
	for _, node := range definition.Types {
		object, err := b.BuildObjectTypeRef(node)
		if err != nil {
			return nil, err
		}
		possibleTypes = append(possibleTypes, object)
	}

	return graphql.NewUnion(&graphql.UnionConfig{
		Name:          definition.Name.Value(),
		Description:   description,
		PossibleTypes: possibleTypes,
		ASTNode:       definition,
	})
}

func (b *Builder) buildEnum(definition *ast.EnumTypeDefinition) (graphql.Enum, error) {
	values := make(graphql.EnumValueConfigMap, len(definition.Values))
	for _, node := range definition.Values {
		name := node.Value.Value()
		if _, exists := values[name]; exists {
			continue
		}

		deprecation, err := b.DeprecationReason(node.Directives)
		if err != nil {
			return nil, err
		}

		description, _ := b.Description(node)
		values[name] = graphql.EnumValueConfig{
			Description: description,
			Value:       name,
			Deprecation: deprecation,
			ASTNode:     node,
		}
	}

	description, _ := b.Description(definition)
	return graphql.NewEnum(&graphql.EnumConfig{
		Name:        definition.Name.Value(),
		Description: description,
		Values:      values,
		ASTNode:     definition,
	})
}

func identity(value interface{}) (interface{}, error) {
	return value, nil
}

func (b *Builder) buildScalar(definition *ast.ScalarTypeDefinition) (graphql.Scalar, error) {
	description, _ := b.Description(definition)
	return graphql.NewScalar(&graphql.ScalarConfig{
		Name:          definition.Name.Value(),
		Description:   description,
		ResultCoercer: graphql.CoerceScalarResultFunc(identity),
		InputCoercer: graphql.ScalarInputCoercerFuncs{
			CoerceVariableValueFunc: identity,
			CoerceArgumentValueFunc: func(value ast.Value) (interface{}, error) {
				return value.Interface(), nil
			},
		},
		ASTNode: definition,
	})
}

func (b *Builder) buildInputObject(definition *ast.InputObjectTypeDefinition) (graphql.InputObject, error) {
	description, _ := b.Description(definition)
	return graphql.NewInputObject(&graphql.InputObjectConfig{
		Name:        definition.Name.Value(),
		Description: description,
		Fields: func() (graphql.InputFieldMap, error) {
			return b.BuildInputValues(definition.Fields)
		},
		ASTNode: definition,
	})
}

// BuildField creates a field from its definition.
func (b *Builder) BuildField(node *ast.FieldDefinition) (*graphql.Field, error) {
	t, err := b.BuildOutputType(node.Type)
	if err != nil {
		return nil, err
	}

	args, err := b.BuildInputValues(node.Arguments)
	if err != nil {
		return nil, err
	}

	deprecation, err := b.DeprecationReason(node.Directives)
	if err != nil {
		return nil, err
	}

	description, _ := b.Description(node)
	return graphql.NewField(node.Name.Value(), &graphql.FieldConfig{
		Description: description,
		Type:        t,
		Args:        args,
		Deprecation: deprecation,
		ASTNode:     node,
	})
}

// BuildDirective creates a directive from its definition. Locations are copied without
// validation.
func (b *Builder) BuildDirective(node *ast.DirectiveDefinition) (*graphql.Directive, error) {
	if node == nil {
		err := &MissingDefinitionError{}
		return nil, newError("builder.BuildDirective", err.Error(), err)
	}

	locations := make([]graphql.DirectiveLocation, len(node.Locations))
	for i, location := range node.Locations {
		locations[i] = graphql.DirectiveLocation(location.Value())
	}

	var args graphql.ArgumentMap
	if len(node.Arguments) > 0 {
		var err error
		args, err = b.BuildInputValues(node.Arguments)
		if err != nil {
			return nil, err
		}
	}

	description, _ := b.Description(node)
	return graphql.NewDirective(&graphql.DirectiveConfig{
		Name:        node.Name.Value(),
		Description: description,
		Locations:   locations,
		Args:        args,
		ASTNode:     node,
	})
}

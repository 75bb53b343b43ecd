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

package ast

import (
	"github.com/botobag/sdlgraph/graphql/token"
)

// DefinitionKind tags the kind of a Definition.
type DefinitionKind string

// Enumeration of DefinitionKind
const (
	KindSchemaDefinition          DefinitionKind = "SchemaDefinition"
	KindScalarTypeDefinition      DefinitionKind = "ScalarTypeDefinition"
	KindObjectTypeDefinition      DefinitionKind = "ObjectTypeDefinition"
	KindInterfaceTypeDefinition   DefinitionKind = "InterfaceTypeDefinition"
	KindUnionTypeDefinition       DefinitionKind = "UnionTypeDefinition"
	KindEnumTypeDefinition        DefinitionKind = "EnumTypeDefinition"
	KindInputObjectTypeDefinition DefinitionKind = "InputObjectTypeDefinition"
	KindDirectiveDefinition       DefinitionKind = "DirectiveDefinition"
)

// Definition represents a GraphQL Definition. Only type system definitions are supported.
//
// Reference: https://facebook.github.io/graphql/June2018/#TypeSystemDefinition
type Definition interface {
	Node

	// Kind returns the tag of the definition.
	Kind() DefinitionKind

	// Directives applied to the definition. (Prepend "Get" to avoid name collision with the fields in
	// derived class.)
	GetDirectives() Directives

	// definitionNode is a special mark to indicate a Definition node.
	definitionNode()
}

// DescribableNode is a node that may carry a description.
type DescribableNode interface {
	Node

	// GetDescription returns the description given to the node. The returned StringValue has a nil
	// token if there's no description.
	GetDescription() StringValue
}

// TypeDefinition is a Definition that defines a named type.
//
// Reference: https://facebook.github.io/graphql/June2018/#TypeDefinition
type TypeDefinition interface {
	Definition
	DescribableNode

	// GetName returns the name of the defining type.
	GetName() Name
}

var (
	_ TypeDefinition  = (*ScalarTypeDefinition)(nil)
	_ TypeDefinition  = (*ObjectTypeDefinition)(nil)
	_ TypeDefinition  = (*InterfaceTypeDefinition)(nil)
	_ TypeDefinition  = (*UnionTypeDefinition)(nil)
	_ TypeDefinition  = (*EnumTypeDefinition)(nil)
	_ TypeDefinition  = (*InputObjectTypeDefinition)(nil)
	_ Definition      = (*DirectiveDefinition)(nil)
	_ Definition      = (*SchemaDefinition)(nil)
	_ DescribableNode = (*DirectiveDefinition)(nil)
	_ DescribableNode = (*FieldDefinition)(nil)
	_ DescribableNode = (*InputValueDefinition)(nil)
	_ DescribableNode = (*EnumValueDefinition)(nil)
)

// DefinitionBase is a common base that is embedded in Definition implementation.
type DefinitionBase struct {
	// Loc spans from the description (or the keyword if there's no description) to the last token
	// of the definition.
	Loc token.Range

	// Directives that are applied to the definition
	Directives Directives
}

// TokenRange implements Node.
func (base *DefinitionBase) TokenRange() token.Range {
	return base.Loc
}

// GetDirectives implements Definition.
func (base *DefinitionBase) GetDirectives() Directives {
	return base.Directives
}

// definitionNode implements Definition.
func (*DefinitionBase) definitionNode() {}

// TypeDefinitionBase is embedded in definitions of named types.
type TypeDefinitionBase struct {
	DefinitionBase

	// Description of the type
	Description StringValue

	// Name of the type
	Name Name
}

// GetDescription implements DescribableNode.
func (base *TypeDefinitionBase) GetDescription() StringValue {
	return base.Description
}

// GetName implements TypeDefinition.
func (base *TypeDefinitionBase) GetName() Name {
	return base.Name
}

//===----------------------------------------------------------------------------------------====//
// Schema
//===----------------------------------------------------------------------------------------====//

// OperationType specifies the type of operation model.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// SchemaDefinition declares the root operation types of a schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaDefinition
type SchemaDefinition struct {
	DefinitionBase

	// OperationTypes contains root operation type definitions.
	OperationTypes []*OperationTypeDefinition
}

// Kind implements Definition.
func (*SchemaDefinition) Kind() DefinitionKind {
	return KindSchemaDefinition
}

// OperationTypeDefinition maps an operation to its root type.
//
// Reference: https://facebook.github.io/graphql/June2018/#RootOperationTypeDefinition
type OperationTypeDefinition struct {
	// Operation is the name token of the operation type.
	Operation *token.Token

	// Type is the root type for the operation.
	Type NamedType
}

// TokenRange implements Node.
func (node *OperationTypeDefinition) TokenRange() token.Range {
	return token.Range{
		First: node.Operation,
		Last:  node.Type.Name.Token,
	}
}

// OperationType returns the operation type of the node.
func (node *OperationTypeDefinition) OperationType() OperationType {
	return OperationType(node.Operation.Value)
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition defines a custom scalar type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	TypeDefinitionBase
}

// Kind implements Definition.
func (*ScalarTypeDefinition) Kind() DefinitionKind {
	return KindScalarTypeDefinition
}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// ObjectTypeDefinition defines an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	TypeDefinitionBase

	// Interfaces implemented by the object
	Interfaces []NamedType

	// Fields of the object
	Fields []*FieldDefinition
}

// Kind implements Definition.
func (*ObjectTypeDefinition) Kind() DefinitionKind {
	return KindObjectTypeDefinition
}

// FieldDefinition defines a field in an object or an interface.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type FieldDefinition struct {
	// Loc spans from the description (or the name) to the last token of the definition.
	Loc token.Range

	// Description of the field
	Description StringValue

	// Name of the field
	Name Name

	// Arguments accepted by the field
	Arguments []*InputValueDefinition

	// Type of the field value
	Type Type

	// Directives applied to the field
	Directives Directives
}

// TokenRange implements Node.
func (node *FieldDefinition) TokenRange() token.Range {
	return node.Loc
}

// GetDescription implements DescribableNode.
func (node *FieldDefinition) GetDescription() StringValue {
	return node.Description
}

// InputValueDefinition defines an argument or a field in an input object.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	// Loc spans from the description (or the name) to the last token of the definition.
	Loc token.Range

	// Description of the input value
	Description StringValue

	// Name of the input value
	Name Name

	// Type of the input value
	Type Type

	// DefaultValue is nil if no default value is given. Note that an explicit "null" default value is
	// represented by a NullValue.
	DefaultValue Value

	// Directives applied to the input value
	Directives Directives
}

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range {
	return node.Loc
}

// GetDescription implements DescribableNode.
func (node *InputValueDefinition) GetDescription() StringValue {
	return node.Description
}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition defines an interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	TypeDefinitionBase

	// Fields of the interface
	Fields []*FieldDefinition
}

// Kind implements Definition.
func (*InterfaceTypeDefinition) Kind() DefinitionKind {
	return KindInterfaceTypeDefinition
}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition defines a union type.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	TypeDefinitionBase

	// Types are the members of the union.
	Types []NamedType
}

// Kind implements Definition.
func (*UnionTypeDefinition) Kind() DefinitionKind {
	return KindUnionTypeDefinition
}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumTypeDefinition defines an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	TypeDefinitionBase

	// Values of the enum
	Values []*EnumValueDefinition
}

// Kind implements Definition.
func (*EnumTypeDefinition) Kind() DefinitionKind {
	return KindEnumTypeDefinition
}

// EnumValueDefinition defines a value in an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	// Loc spans from the description (or the value) to the last token of the definition.
	Loc token.Range

	// Description of the value
	Description StringValue

	// Value is the name of the enum value.
	Value Name

	// Directives applied to the value
	Directives Directives
}

// TokenRange implements Node.
func (node *EnumValueDefinition) TokenRange() token.Range {
	return node.Loc
}

// GetDescription implements DescribableNode.
func (node *EnumValueDefinition) GetDescription() StringValue {
	return node.Description
}

//===----------------------------------------------------------------------------------------====//
// Input Object
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition defines an input object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	TypeDefinitionBase

	// Fields of the input object
	Fields []*InputValueDefinition
}

// Kind implements Definition.
func (*InputObjectTypeDefinition) Kind() DefinitionKind {
	return KindInputObjectTypeDefinition
}

//===----------------------------------------------------------------------------------------====//
// Directive
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition defines a directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	DefinitionBase

	// Description of the directive
	Description StringValue

	// Name of the directive (without "@")
	Name Name

	// Arguments accepted by the directive
	Arguments []*InputValueDefinition

	// Locations where the directive can be applied
	Locations []Name
}

// Kind implements Definition.
func (*DirectiveDefinition) Kind() DefinitionKind {
	return KindDirectiveDefinition
}

// GetDescription implements DescribableNode.
func (definition *DirectiveDefinition) GetDescription() StringValue {
	return definition.Description
}

// GetName returns the name of the directive.
func (definition *DirectiveDefinition) GetName() Name {
	return definition.Name
}

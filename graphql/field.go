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
	"sort"

	"github.com/botobag/sdlgraph/graphql/ast"
)

// FieldConfig provides definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Description of the defining field
	Description string

	// Type of the value yielded by the field; Must be an output type.
	Type Type

	// Arguments of the field
	Args ArgumentMap

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// ASTNode is the definition that the field is built from (optional).
	ASTNode *ast.FieldDefinition
}

// Field representing a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field struct {
	name   string
	config FieldConfig
}

// NewField creates a Field with the given name from config.
func NewField(name string, config *FieldConfig) (*Field, error) {
	if len(name) == 0 {
		return nil, NewError("Must provide name for Field.")
	}
	if config.Type == nil {
		return nil, NewError(fmt.Sprintf("Must provide type for field %s.", name))
	}
	if !IsOutputType(config.Type) {
		return nil, NewError(fmt.Sprintf("The type of field %s must be Output Type but got: %s.",
			name, Inspect(config.Type)))
	}
	return &Field{
		name:   name,
		config: *config,
	}, nil
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.config.Description
}

// Type of value yielded by the field
func (f *Field) Type() Type {
	return f.config.Type
}

// Args specifies the definitions of arguments being taken when querying this field.
func (f *Field) Args() ArgumentMap {
	return f.config.Args
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// ASTNode returns the definition that the field is built from.
func (f *Field) ASTNode() *ast.FieldDefinition {
	return f.config.ASTNode
}

// FieldMap maps field name to the Field.
type FieldMap map[string]*Field

// Lookup finds the field with given name or return nil if there's no such one.
func (m FieldMap) Lookup(name string) *Field {
	return m[name]
}

// Names returns the field names in sorted order.
func (m FieldMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// An intentionally internal type for marking a "null" as default value for an argument
type argumentNilValueType int

// NilArgumentDefaultValue is a value that has a special meaning when it is given to the
// DefaultValue in ArgumentConfig. It sets the argument with default value set to "null". While
// setting DefaultValue to "nil" or not giving it a value means there's no default value. We need
// this trick because using only "nil" cannot tells whether it's an "undefined" or a "null"
// DefaultValue. The constant has an internal type, therefore there's no way to create one outside
// the package.
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig provides definition for defining an argument in a field, a directive or an input
// object.
type ArgumentConfig struct {
	// Description fo the argument
	Description string

	// Type of the value that can be given to the argument; Must be an input type.
	Type Type

	// DefaultValue specified the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}

	// ASTNode is the definition that the argument is built from (optional).
	ASTNode *ast.InputValueDefinition
}

// Argument is accepted in querying a field to further specify the return value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name   string
	config ArgumentConfig
}

// NewArgument creates an Argument with the given name from config.
func NewArgument(name string, config *ArgumentConfig) (*Argument, error) {
	if len(name) == 0 {
		return nil, NewError("Must provide name for Argument.")
	}
	if config.Type == nil {
		return nil, NewError(fmt.Sprintf("Must provide type for argument %s.", name))
	}
	if !IsInputType(config.Type) {
		return nil, NewError(fmt.Sprintf("The type of argument %s must be Input Type but got: %s.",
			name, Inspect(config.Type)))
	}
	return &Argument{
		name:   name,
		config: *config,
	}, nil
}

// MustNewArgument is a convenience function equivalent to NewArgument but panics on failure instead
// of returning an error.
func MustNewArgument(name string, config *ArgumentConfig) *Argument {
	arg, err := NewArgument(name, config)
	if err != nil {
		panic(err)
	}
	return arg
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.config.Description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.config.Type
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.config.DefaultValue != nil
}

// DefaultValue specifies the value to be assigned to the argument when no value is provided.
func (arg *Argument) DefaultValue() interface{} {
	// Deal with NilArgumentDefaultValue specially.
	if _, ok := arg.config.DefaultValue.(argumentNilValueType); ok {
		// We have default value which is "null".
		return nil
	}
	return arg.config.DefaultValue
}

// ASTNode returns the definition that the argument is built from.
func (arg *Argument) ASTNode() *ast.InputValueDefinition {
	return arg.config.ASTNode
}

// IsRequiredArgument returns true if value must be provided to the argument for execution.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

// ArgumentMap maps argument name to the Argument.
type ArgumentMap map[string]*Argument

// Lookup finds the argument with given name or return nil if there's no such one.
func (m ArgumentMap) Lookup(name string) *Argument {
	return m[name]
}

// Names returns the argument names in sorted order.
func (m ArgumentMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

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
	"sort"

	"github.com/botobag/sdlgraph/graphql/ast"
)

// An intentionally internal type for marking a "nil" internal value for an enum value
type enumNilValueType int

// NilEnumInternalValue is used to set the internal value of an enum value to nil. Leaving Value nil
// in EnumValueConfig makes the name of the enum value its internal value.
const NilEnumInternalValue enumNilValueType = 0

// EnumValueConfig provides definition for a value in enum.
type EnumValueConfig struct {
	// Description of the enum value
	Description string

	// Value is the internal value to be used when the enum value is read from input. The name of
	// the value is used when it is nil.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// ASTNode is the definition that the value is built from (optional).
	ASTNode *ast.EnumValueDefinition
}

// EnumValueConfigMap maps value names to their configurations.
type EnumValueConfigMap map[string]EnumValueConfig

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values to be defined in the Enum type
	Values EnumValueConfigMap

	// ASTNode is the definition that the enum is built from (optional).
	ASTNode *ast.EnumTypeDefinition
}

// enumValue is our built-in implementation for EnumValue.
type enumValue struct {
	name   string
	config EnumValueConfig
}

var _ EnumValue = (*enumValue)(nil)

// Name implements EnumValue.
func (value *enumValue) Name() string {
	return value.name
}

// Description implements EnumValue.
func (value *enumValue) Description() string {
	return value.config.Description
}

// Value implements EnumValue.
func (value *enumValue) Value() interface{} {
	return value.config.Value
}

// Deprecation implements EnumValue.
func (value *enumValue) Deprecation() *Deprecation {
	return value.config.Deprecation
}

// ASTNode implements EnumValue.
func (value *enumValue) ASTNode() *ast.EnumValueDefinition {
	return value.config.ASTNode
}

// enum is our built-in implementation for Enum. It is configured with and built from EnumConfig.
type enum struct {
	ThisIsEnumType
	name        string
	description string
	astNode     *ast.EnumTypeDefinition
	values      EnumValueMap
	// valueMap maps internal values to the enum values for result coercion; Internal values that
	// are not hashable cannot be looked up.
	valueMap map[interface{}]EnumValue
}

var _ Enum = (*enum)(nil)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (Enum, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	e := &enum{
		name:        config.Name,
		description: config.Description,
		astNode:     config.ASTNode,
		values:      make(EnumValueMap, len(config.Values)),
		valueMap:    make(map[interface{}]EnumValue, len(config.Values)),
	}

	for name, valueConfig := range config.Values {
		value := &enumValue{
			name:   name,
			config: valueConfig,
		}
		if value.config.Value == nil {
			value.config.Value = name
		} else if _, ok := value.config.Value.(enumNilValueType); ok {
			value.config.Value = nil
		}
		e.values[name] = value
		if isHashable(value.config.Value) {
			e.valueMap[value.config.Value] = value
		}
	}

	return e, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// isHashable returns true if v can be used as a map key.
func isHashable(v interface{}) (hashable bool) {
	defer func() {
		if recover() != nil {
			hashable = false
		}
	}()
	_ = map[interface{}]bool{v: true}
	return true
}

// Name implements TypeWithName.
func (e *enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *enum) Description() string {
	return e.description
}

// String implements fmt.Stringer.
func (e *enum) String() string {
	return e.name
}

// ASTNode implements Enum.
func (e *enum) ASTNode() *ast.EnumTypeDefinition {
	return e.astNode
}

// Values implements Enum.
func (e *enum) Values() EnumValueMap {
	return e.values
}

// ValueNames returns names of the enum values in sorted order.
func ValueNames(e Enum) []string {
	values := e.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CoerceResultValue implements LeafType. It finds the enum value whose internal value equals to the
// given value and returns its name.
func (e *enum) CoerceResultValue(value interface{}) (interface{}, error) {
	if isHashable(value) {
		if enumValue, exists := e.valueMap[value]; exists {
			return enumValue.Name(), nil
		}
	}
	return nil, NewCoercionError("Enum %s cannot represent value: %s", e.name, Inspect(value))
}

// CoerceVariableValue coerces the name of an enum value into its internal value.
func (e *enum) CoerceVariableValue(value interface{}) (interface{}, error) {
	if name, ok := value.(string); ok {
		if enumValue := e.values.Lookup(name); enumValue != nil {
			return enumValue.Value(), nil
		}
	}
	return nil, NewCoercionError("Enum %s cannot represent value: %s", e.name, Inspect(value))
}

// CoerceArgumentValue implements LeafType.
func (e *enum) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.EnumValue); ok {
		if enumValue := e.values.Lookup(v.Value()); enumValue != nil {
			return enumValue.Value(), nil
		}
	}
	return nil, NewCoercionError("Enum %s cannot represent value: %s", e.name, ast.Print(value))
}

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
	"github.com/botobag/sdlgraph/graphql/ast"
)

// ObjectConfig provides specification to define a Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces computes the interfaces implemented by the defining Object (optional).
	Interfaces InterfacesThunk

	// Fields computes the fields in the object.
	Fields FieldMapThunk

	// ASTNode is the definition that the object is built from (optional).
	ASTNode *ast.ObjectTypeDefinition
}

// object is our built-in implementation for Object. It is configured with and built from
// ObjectConfig.
type object struct {
	ThisIsObjectType
	config     ObjectConfig
	fields     lazyValue
	interfaces lazyValue
}

var _ Object = (*object)(nil)

// NewObject defines an Object type from a ObjectConfig. Neither thunk in the config is called until
// the corresponding accessor is.
func NewObject(config *ObjectConfig) (Object, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}

	if config.Fields == nil {
		return nil, NewError(config.Name + " fields must be a function that returns a FieldMap.")
	}

	return &object{
		config: *config,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// Name implements TypeWithName.
func (o *object) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *object) Description() string {
	return o.config.Description
}

// String implements fmt.Stringer.
func (o *object) String() string {
	return o.config.Name
}

// ASTNode implements Object.
func (o *object) ASTNode() *ast.ObjectTypeDefinition {
	return o.config.ASTNode
}

// Fields implements Object.
func (o *object) Fields() (FieldMap, error) {
	fields, err := o.fields.get(func() string {
		return "fields of " + o.config.Name
	}, func() (interface{}, error) {
		return o.config.Fields()
	})
	if err != nil {
		return nil, err
	}
	return fields.(FieldMap), nil
}

// Interfaces implements Object.
func (o *object) Interfaces() ([]Interface, error) {
	if o.config.Interfaces == nil {
		return []Interface{}, nil
	}

	interfaces, err := o.interfaces.get(func() string {
		return "interfaces of " + o.config.Name
	}, func() (interface{}, error) {
		return o.config.Interfaces()
	})
	if err != nil {
		return nil, err
	}
	return interfaces.([]Interface), nil
}

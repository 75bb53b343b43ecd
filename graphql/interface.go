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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields computes the fields that implementing objects must provide.
	Fields FieldMapThunk

	// ASTNode is the definition that the interface is built from (optional).
	ASTNode *ast.InterfaceTypeDefinition
}

// iface is our built-in implementation for Interface. It is configured with and built from
// InterfaceConfig.
type iface struct {
	ThisIsInterfaceType
	config InterfaceConfig
	fields lazyValue
}

var _ Interface = (*iface)(nil)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (Interface, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}

	if config.Fields == nil {
		return nil, NewError(config.Name + " fields must be a function that returns a FieldMap.")
	}

	return &iface{
		config: *config,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) Interface {
	t, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return t
}

// Name implements TypeWithName.
func (t *iface) Name() string {
	return t.config.Name
}

// Description implements TypeWithDescription.
func (t *iface) Description() string {
	return t.config.Description
}

// String implements fmt.Stringer.
func (t *iface) String() string {
	return t.config.Name
}

// ASTNode implements Interface.
func (t *iface) ASTNode() *ast.InterfaceTypeDefinition {
	return t.config.ASTNode
}

// Fields implements Interface.
func (t *iface) Fields() (FieldMap, error) {
	fields, err := t.fields.get(func() string {
		return "fields of " + t.config.Name
	}, func() (interface{}, error) {
		return t.config.Fields()
	})
	if err != nil {
		return nil, err
	}
	return fields.(FieldMap), nil
}

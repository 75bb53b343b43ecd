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

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields computes the fields in the input object.
	Fields InputFieldMapThunk

	// ASTNode is the definition that the input object is built from (optional).
	ASTNode *ast.InputObjectTypeDefinition
}

// inputObject is our built-in implementation for InputObject. It is configured with and built from
// InputObjectConfig.
type inputObject struct {
	ThisIsInputObjectType
	config InputObjectConfig
	fields lazyValue
}

var _ InputObject = (*inputObject)(nil)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (InputObject, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}

	if config.Fields == nil {
		return nil, NewError(config.Name + " fields must be a function that returns an InputFieldMap.")
	}

	return &inputObject{
		config: *config,
	}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) InputObject {
	t, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return t
}

// Name implements TypeWithName.
func (t *inputObject) Name() string {
	return t.config.Name
}

// Description implements TypeWithDescription.
func (t *inputObject) Description() string {
	return t.config.Description
}

// String implements fmt.Stringer.
func (t *inputObject) String() string {
	return t.config.Name
}

// ASTNode implements InputObject.
func (t *inputObject) ASTNode() *ast.InputObjectTypeDefinition {
	return t.config.ASTNode
}

// Fields implements InputObject.
func (t *inputObject) Fields() (InputFieldMap, error) {
	fields, err := t.fields.get(func() string {
		return "fields of " + t.config.Name
	}, func() (interface{}, error) {
		return t.config.Fields()
	})
	if err != nil {
		return nil, err
	}
	return fields.(InputFieldMap), nil
}

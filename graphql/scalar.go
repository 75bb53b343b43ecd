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

	"github.com/botobag/sdlgraph/graphql/ast"
)

// defaultScalarInputCoercer is used for scalar that doesn't provide coercer for processing input values.
type defaultScalarInputCoercer struct {
	scalar *scalar
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return value, nil
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return nil, NewError(fmt.Sprintf("coercer for the input type %s was not provided", coercer.scalar.Name()))
}

// ScalarConfig provides specification to define a scalar type.
type ScalarConfig struct {
	// Name of the scalar type
	Name string

	// Description of the scalar type
	Description string

	// ResultCoercer serializes value for return in execution result
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input value given to the scalar field (optional)
	InputCoercer ScalarInputCoercer

	// ASTNode is the definition that the scalar is built from (optional).
	ASTNode *ast.ScalarTypeDefinition
}

// scalar is our built-in implementation for Scalar. It is configured with and built from
// ScalarConfig.
type scalar struct {
	ThisIsScalarType
	config       ScalarConfig
	inputCoercer ScalarInputCoercer
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (Scalar, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}

	if config.ResultCoercer == nil {
		return nil, NewError(fmt.Sprintf(
			`%v must provide ResultCoercer. If this custom Scalar is also used as an input type, `+
				`ensure InputCoercer is also provided.`, config.Name))
	}

	s := &scalar{
		config:       *config,
		inputCoercer: config.InputCoercer,
	}
	if s.inputCoercer == nil {
		s.inputCoercer = &defaultScalarInputCoercer{s}
	}

	return s, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.config.Name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.config.Description
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.Name()
}

// ASTNode implements Scalar.
func (s *scalar) ASTNode() *ast.ScalarTypeDefinition {
	return s.config.ASTNode
}

// CoerceResultValue implements LeafType.
func (s *scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.config.ResultCoercer.CoerceResultValue(value)
}

// CoerceVariableValue implements Scalar.
func (s *scalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceVariableValue(value)
}

// CoerceArgumentValue implements LeafType.
func (s *scalar) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return s.inputCoercer.CoerceArgumentValue(value)
}

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

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
const (
	// Executable directive location
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type system directive location
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveLocations lists all valid directive locations in the order of their declaration.
var DirectiveLocations = []DirectiveLocation{
	DirectiveLocationQuery,
	DirectiveLocationMutation,
	DirectiveLocationSubscription,
	DirectiveLocationField,
	DirectiveLocationFragmentDefinition,
	DirectiveLocationFragmentSpread,
	DirectiveLocationInlineFragment,
	DirectiveLocationVariableDefinition,
	DirectiveLocationSchema,
	DirectiveLocationScalar,
	DirectiveLocationObject,
	DirectiveLocationFieldDefinition,
	DirectiveLocationArgumentDefinition,
	DirectiveLocationInterface,
	DirectiveLocationUnion,
	DirectiveLocationEnum,
	DirectiveLocationEnumValue,
	DirectiveLocationInputObject,
	DirectiveLocationInputFieldDefinition,
}

// IsValid returns true if the location is one of the known directive locations.
func (location DirectiveLocation) IsValid() bool {
	for _, l := range DirectiveLocations {
		if l == location {
			return true
		}
	}
	return false
}

// DirectiveConfig provides definition for creating a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive type
	Description string

	// Locations in the schema where the defining directive can appear
	Locations []DirectiveLocation

	// Arguments to be provided when using the directive
	Args ArgumentMap

	// ASTNode is the definition that the directive is built from (optional).
	ASTNode *ast.DirectiveDefinition
}

// Directive are used by the GraphQL runtime as a way of modifying a validator, execution or client
// tool behavior.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type Directive struct {
	config DirectiveConfig
}

// NewDirective creates a Directive from a DirectiveConfig. Locations are copied verbatim; Their
// validity is not checked.
func NewDirective(config *DirectiveConfig) (*Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}

	d := &Directive{
		config: *config,
	}
	if len(config.Locations) > 0 {
		d.config.Locations = make([]DirectiveLocation, len(config.Locations))
		copy(d.config.Locations, config.Locations)
	}

	return d, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on failure
// instead of returning an error.
func MustNewDirective(config *DirectiveConfig) *Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name of the directive
func (d *Directive) Name() string {
	return d.config.Name
}

// Description provides documentation for the directive.
func (d *Directive) Description() string {
	return d.config.Description
}

// Locations specifies the places where the directive must only be used.
func (d *Directive) Locations() []DirectiveLocation {
	return d.config.Locations
}

// Args indicates the arguments taken by the directive. It is nil if the directive takes no
// arguments.
func (d *Directive) Args() ArgumentMap {
	return d.config.Args
}

// ASTNode returns the definition that the directive is built from.
func (d *Directive) ASTNode() *ast.DirectiveDefinition {
	return d.config.ASTNode
}

// String implemennts fmt.Stringer.
func (d *Directive) String() string {
	return "@" + d.config.Name
}

// DirectiveList is a list of Directive.
type DirectiveList []*Directive

// Lookup finds a directive with given name in the list.
func (directiveList DirectiveList) Lookup(name string) *Directive {
	for _, directive := range directiveList {
		if directive.Name() == name {
			return directive
		}
	}
	return nil
}

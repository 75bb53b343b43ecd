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
	"fmt"
	"reflect"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
	"github.com/botobag/sdlgraph/internal/util"
)

// UndefinedTypeError is returned when a type name is neither defined in the DefinitionMap nor
// resolvable by the fallback TypeResolver.
type UndefinedTypeError struct {
	// Name of the type that cannot be resolved
	Name string

	// Suggestions are known type names that are close to Name.
	Suggestions []string

	// Err is the error returned from the fallback TypeResolver if any.
	Err error
}

// Error implements Go's error interface.
func (e *UndefinedTypeError) Error() string {
	message := fmt.Sprintf(`Unknown type "%s".`, e.Name)
	if len(e.Suggestions) > 0 {
		message += " Did you mean " + util.OrList(e.Suggestions, 5, true) + "?"
	}
	return message
}

// Unwrap returns the error from the fallback TypeResolver.
func (e *UndefinedTypeError) Unwrap() error {
	return e.Err
}

// UnsupportedDefinitionKindError is returned when a definition cannot be built into a type.
type UnsupportedDefinitionKindError struct {
	Kind string
}

// Error implements Go's error interface.
func (e *UnsupportedDefinitionKindError) Error() string {
	return fmt.Sprintf(`Unsupported definition kind "%s".`, e.Kind)
}

// CyclicTypeError is returned when a type requires itself to be built before it can be built,
// such as a union that lists itself as a member directly or through other unions.
type CyclicTypeError struct {
	// Name of the type
	Name string
}

// Error implements Go's error interface.
func (e *CyclicTypeError) Error() string {
	return fmt.Sprintf(`Type "%s" refers to itself before it is built.`, e.Name)
}

// MissingDefinitionError is returned when a nil definition is given to the builder.
type MissingDefinitionError struct{}

// Error implements Go's error interface.
func (e *MissingDefinitionError) Error() string {
	return "Missing definition."
}

// InvariantViolationError is returned when a built type is not of the kind required by its
// reference.
type InvariantViolationError struct {
	// Expected describes the kind of type that was required.
	Expected string

	// Actual is the kind of the type that was built.
	Actual string
}

// Error implements Go's error interface.
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("Expected %s but got %s.", e.Expected, e.Actual)
}

// newError wraps err in a graphql.Error with the locations of the given nodes.
func newError(op graphql.Op, message string, err error, nodes ...ast.Node) error {
	args := []interface{}{op, graphql.ErrKindSchema}
	if locations := graphql.ErrorLocationsOfASTNodes(nodes...); len(locations) > 0 {
		args = append(args, locations)
	}
	if err != nil {
		args = append(args, err)
	}
	return graphql.NewError(message, args...)
}

func newInvariantViolationError(op graphql.Op, expected string, t graphql.Type, node ast.Node) error {
	err := &InvariantViolationError{
		Expected: expected,
		Actual:   kindOf(t),
	}
	return newError(op,
		fmt.Sprintf("Expected %s but got %s %s.", expected, err.Actual, graphql.Inspect(t)),
		err,
		node)
}

// kindOf returns a name for the kind of t to be used in error messages.
func kindOf(t graphql.Type) string {
	switch t.(type) {
	case graphql.Scalar:
		return "Scalar"
	case graphql.Object:
		return "Object"
	case graphql.Interface:
		return "Interface"
	case graphql.Union:
		return "Union"
	case graphql.Enum:
		return "Enum"
	case graphql.InputObject:
		return "InputObject"
	case graphql.List:
		return "List"
	case graphql.NonNull:
		return "NonNull"
	case nil:
		return "nil"
	}
	return fmt.Sprintf("%T", t)
}

// isNil returns true for a nil interface or an interface holding a nil pointer.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	return value.Kind() == reflect.Ptr && value.IsNil()
}

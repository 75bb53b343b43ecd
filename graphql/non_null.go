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
)

// nonNull is our built-in implementation for NonNull.
type nonNull struct {
	ThisIsNonNullType
	innerType Type
}

var _ NonNull = (*nonNull)(nil)

// NewNonNullOf defines a NonNull type wrapping the given type. The given type must be nullable.
func NewNonNullOf(innerType Type) (NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide an non-nil inner type for NonNull.")
	}
	if !IsNullableType(innerType) {
		return nil, NewError(fmt.Sprintf("Expected a nullable type for NonNull but got an %s.",
			Inspect(innerType)))
	}
	return &nonNull{
		innerType: innerType,
	}, nil
}

// MustNewNonNullOf is a convenience function equivalent to NewNonNullOf but panics on failure
// instead of returning an error.
func MustNewNonNullOf(innerType Type) NonNull {
	t, err := NewNonNullOf(innerType)
	if err != nil {
		panic(err)
	}
	return t
}

// String implements fmt.Stringer.
func (t *nonNull) String() string {
	return t.innerType.String() + "!"
}

// InnerType implements NonNull.
func (t *nonNull) InnerType() Type {
	return t.innerType
}

// UnwrappedType implements WrappingType.
func (t *nonNull) UnwrappedType() Type {
	return t.InnerType()
}

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

// list is our built-in implementation for List.
type list struct {
	ThisIsListType
	elementType Type
}

var _ List = (*list)(nil)

// NewListOf defines a List type with the given element type.
func NewListOf(elementType Type) (List, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for List.")
	}
	return &list{
		elementType: elementType,
	}, nil
}

// MustNewListOf is a convenience function equivalent to NewListOf but panics on failure instead of
// returning an error.
func MustNewListOf(elementType Type) List {
	l, err := NewListOf(elementType)
	if err != nil {
		panic(err)
	}
	return l
}

// String implements fmt.Stringer.
func (l *list) String() string {
	return "[" + l.elementType.String() + "]"
}

// ElementType implements List.
func (l *list) ElementType() Type {
	return l.elementType
}

// UnwrappedType implements WrappingType.
func (l *list) UnwrappedType() Type {
	return l.ElementType()
}

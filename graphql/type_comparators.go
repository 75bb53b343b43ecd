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

// IsEqualType returns true if both types are the same named type or are wrapping types of equal
// types. Wrapping types are compared structurally since each NewListOf and NewNonNullOf call creates
// a new instance.
func IsEqualType(typeA Type, typeB Type) bool {
	// Equivalent types are equal.
	if typeA == typeB {
		return true
	}

	switch typeA := typeA.(type) {
	case NonNull:
		// If either type is non-null, the other must also be non-null.
		if typeB, ok := typeB.(NonNull); ok {
			return IsEqualType(typeA.InnerType(), typeB.InnerType())
		}

	case List:
		// If either type is a list, the other must also be a list.
		if typeB, ok := typeB.(List); ok {
			return IsEqualType(typeA.ElementType(), typeB.ElementType())
		}
	}

	// Otherwise the types are not equal.
	return false
}

// IsTypeSubTypeOf returns true if Provided a type and a super type, return true if the first type is either
// equal or a subset of the second super type (covariant).
func IsTypeSubTypeOf(schema *Schema, maybeSubType Type, superType Type) bool {
	// Equivalent type is a valid subtype
	if IsEqualType(maybeSubType, superType) {
		return true
	}

	switch superType := superType.(type) {
	case NonNull:
		// If superType is non-null, maybeSubType must also be non-null.
		if maybeSubType, ok := maybeSubType.(NonNull); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType.InnerType())
		}
		return false

	case List:
		// If superType type is a list, maybeSubType type must also be a list.
		if maybeSubType, ok := maybeSubType.(List); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.ElementType(), superType.ElementType())
		}
		return false

	case AbstractType:
		// If superType type is an abstract type, maybeSubType type may be a currently possible object
		// type.
		if maybeSubType, ok := maybeSubType.(Object); ok {
			for _, possibleType := range schema.PossibleTypes(superType) {
				if possibleType == maybeSubType {
					return true
				}
			}
		}
		return false

	default:
		if maybeSubType, ok := maybeSubType.(NonNull); ok {
			// If superType is nullable, maybeSubType may be non-null or nullable.
			return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType)
		}

		// Otherwise, the child type is not a valid subtype of the parent type.
		return false
	}
}

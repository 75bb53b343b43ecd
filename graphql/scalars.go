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
	"math"
	"strconv"
	"strings"

	"github.com/botobag/sdlgraph/graphql/ast"
)

// The "type of internal value" for each built-in scalar are listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | boolean                         |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by CoerceArgumentValue and
// CoerceVariableValue are fixed to the one given in the table for each type.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger      = "not an integer"
	coercionErrorIntegerTooLarge = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric      = "not a numeric value"
	coercionErrorNonString       = "not a string value"
	coercionErrorNonBoolean      = "not a boolean value"
)

// builtinScalarCoercer implements ScalarResultCoercer and ScalarInputCoercer for built-in scalars.
// The variable and result coercions share the same rules.
type builtinScalarCoercer struct {
	typeName      string
	coerceValue   func(value interface{}) (interface{}, string)
	coerceLiteral func(value ast.Value) (interface{}, string, bool)
}

func (coercer *builtinScalarCoercer) raiseError(value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		// Quote the string for pretty printing.
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", coercer.typeName, value, reason)
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *builtinScalarCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	result, reason := coercer.coerceValue(value)
	if len(reason) > 0 {
		return nil, coercer.raiseError(value, reason)
	}
	return result, nil
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *builtinScalarCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.CoerceResultValue(value)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *builtinScalarCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	result, reason, ok := coercer.coerceLiteral(value)
	if !ok {
		return nil, NewCoercionError("%s cannot represent %v: unexpected argument node type `%T`",
			coercer.typeName, ast.Print(value), value)
	}
	if len(reason) > 0 {
		return nil, NewCoercionError("%s cannot represent %s: %s", coercer.typeName, ast.Print(value), reason)
	}
	return result, nil
}

func newBuiltinScalar(name string, description string, coercer *builtinScalarCoercer) Scalar {
	coercer.typeName = name
	return MustNewScalar(&ScalarConfig{
		Name:          name,
		Description:   description,
		ResultCoercer: coercer,
		InputCoercer:  coercer,
	})
}

// coerceInt converts a Go integer or an integral float into an int in 32-bit range.
func coerceInt(value interface{}) (interface{}, string) {
	var v int64
	switch value := value.(type) {
	case int:
		v = int64(value)
	case int8:
		v = int64(value)
	case int16:
		v = int64(value)
	case int32:
		v = int64(value)
	case int64:
		v = value
	case uint8:
		v = int64(value)
	case uint16:
		v = int64(value)
	case uint32:
		v = int64(value)
	case float32:
		return coerceInt(float64(value))
	case float64:
		if value != math.Trunc(value) || math.IsInf(value, 0) || math.IsNaN(value) {
			return nil, coercionErrorNonInteger
		}
		if value > math.MaxInt32 {
			return nil, coercionErrorIntegerTooLarge
		} else if value < math.MinInt32 {
			return nil, coercionErrorIntegerTooSmall
		}
		return int(value), ""
	default:
		return nil, coercionErrorNonInteger
	}

	if v > math.MaxInt32 {
		return nil, coercionErrorIntegerTooLarge
	} else if v < math.MinInt32 {
		return nil, coercionErrorIntegerTooSmall
	}
	return int(v), ""
}

func coerceFloat(value interface{}) (interface{}, string) {
	switch value := value.(type) {
	case float32:
		return float64(value), ""
	case float64:
		return value, ""
	case int:
		return float64(value), ""
	case int8:
		return float64(value), ""
	case int16:
		return float64(value), ""
	case int32:
		return float64(value), ""
	case int64:
		return float64(value), ""
	case uint8:
		return float64(value), ""
	case uint16:
		return float64(value), ""
	case uint32:
		return float64(value), ""
	}
	return nil, coercionErrorNonNumeric
}

var (
	intType = newBuiltinScalar("Int",
		"The `Int` scalar type represents non-fractional signed whole numeric values. "+
			"Int can represent values between -(2^31) and 2^31 - 1. ",
		&builtinScalarCoercer{
			coerceValue: coerceInt,
			coerceLiteral: func(value ast.Value) (interface{}, string, bool) {
				v, ok := value.(ast.IntValue)
				if !ok {
					return nil, "", false
				}
				i, err := v.Int64Value()
				if err != nil {
					if strings.HasPrefix(v.String(), "-") {
						return nil, coercionErrorIntegerTooSmall, true
					}
					return nil, coercionErrorIntegerTooLarge, true
				}
				if i > math.MaxInt32 {
					return nil, coercionErrorIntegerTooLarge, true
				} else if i < math.MinInt32 {
					return nil, coercionErrorIntegerTooSmall, true
				}
				return int(i), "", true
			},
		})

	floatType = newBuiltinScalar("Float",
		"The `Float` scalar type represents signed double-precision fractional values as specified "+
			"by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point). ",
		&builtinScalarCoercer{
			coerceValue: coerceFloat,
			coerceLiteral: func(value ast.Value) (interface{}, string, bool) {
				var (
					f   float64
					err error
				)
				switch v := value.(type) {
				case ast.IntValue:
					var i int64
					i, err = v.Int64Value()
					f = float64(i)
				case ast.FloatValue:
					f, err = v.FloatValue()
				default:
					return nil, "", false
				}
				if err != nil {
					return nil, coercionErrorNonNumeric, true
				}
				return f, "", true
			},
		})

	stringType = newBuiltinScalar("String",
		"The `String` scalar type represents textual data, represented as UTF-8 character "+
			"sequences. The String type is most often used by GraphQL to represent free-form "+
			"human-readable text.",
		&builtinScalarCoercer{
			coerceValue: func(value interface{}) (interface{}, string) {
				switch v := value.(type) {
				case string:
					return v, ""
				case fmt.Stringer:
					return v.String(), ""
				}
				return nil, coercionErrorNonString
			},
			coerceLiteral: func(value ast.Value) (interface{}, string, bool) {
				v, ok := value.(ast.StringValue)
				if !ok {
					return nil, "", false
				}
				return v.Value(), "", true
			},
		})

	booleanType = newBuiltinScalar("Boolean",
		"The `Boolean` scalar type represents `true` or `false`.",
		&builtinScalarCoercer{
			coerceValue: func(value interface{}) (interface{}, string) {
				if v, ok := value.(bool); ok {
					return v, ""
				}
				return nil, coercionErrorNonBoolean
			},
			coerceLiteral: func(value ast.Value) (interface{}, string, bool) {
				v, ok := value.(ast.BooleanValue)
				if !ok {
					return nil, "", false
				}
				return v.Value(), "", true
			},
		})

	idType = newBuiltinScalar("ID",
		"The `ID` scalar type represents a unique identifier, often used to refetch an object or "+
			"as key for a cache. The ID type appears in a JSON response as a String; however, it "+
			"is not intended to be human-readable. When expected as an input type, any string "+
			"(such as `\"4\"`) or integer (such as `4`) input value will be accepted as an ID.",
		&builtinScalarCoercer{
			coerceValue: func(value interface{}) (interface{}, string) {
				switch v := value.(type) {
				case string:
					return v, ""
				case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
					return fmt.Sprint(v), ""
				}
				return nil, coercionErrorNonString
			},
			coerceLiteral: func(value ast.Value) (interface{}, string, bool) {
				switch v := value.(type) {
				case ast.StringValue:
					return v.Value(), "", true
				case ast.IntValue:
					return v.String(), "", true
				}
				return nil, "", false
			},
		})
)

// Int returns the GraphQL builtin Int type definition.
func Int() Scalar {
	return intType
}

// Float returns the GraphQL builtin Float type definition.
func Float() Scalar {
	return floatType
}

// String returns the GraphQL builtin String type definition.
func String() Scalar {
	return stringType
}

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() Scalar {
	return booleanType
}

// ID returns the GraphQL builtin ID type definition.
func ID() Scalar {
	return idType
}

// SpecifiedScalarTypes returns the list of built-in scalars in a fixed order.
func SpecifiedScalarTypes() []Scalar {
	return []Scalar{
		stringType,
		intType,
		floatType,
		booleanType,
		idType,
	}
}

// IsSpecifiedScalarType returns true if the given type is one of the built-in scalars.
func IsSpecifiedScalarType(t Type) bool {
	switch t {
	case intType, floatType, stringType, booleanType, idType:
		return true
	}
	return false
}

// StandardTypes returns a new map from names to the built-in scalars and the introspection types.
// Each call returns a fresh map so callers are free to add entries to it.
func StandardTypes() map[string]Type {
	types := make(map[string]Type, 5+len(introspectionTypes()))
	for _, t := range SpecifiedScalarTypes() {
		types[t.Name()] = t
	}
	for _, t := range introspectionTypes() {
		types[t.(TypeWithName).Name()] = t
	}
	return types
}

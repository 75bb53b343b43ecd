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

// The types in this file describe the introspection system. They carry no resolvers since the type
// graph is never executed; They are available so schema documents may refer to them and so they
// appear in the type map of a Schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema-Introspection

var (
	_schema            Object
	_directive         Object
	_directiveLocation Enum
	_type              Object
	_field             Object
	_inputValue        Object
	_enumValue         Object
	_typeKind          Enum
)

// TypeKind is the value of the "kind" field in __Type.
type TypeKind string

// Enumeration of TypeKind
const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

// TypeKindOf returns the TypeKind of the given type or an empty string for an unknown type.
func TypeKindOf(t Type) TypeKind {
	switch t.(type) {
	case Scalar:
		return TypeKindScalar
	case Object:
		return TypeKindObject
	case Interface:
		return TypeKindInterface
	case Union:
		return TypeKindUnion
	case Enum:
		return TypeKindEnum
	case InputObject:
		return TypeKindInputObject
	case List:
		return TypeKindList
	case NonNull:
		return TypeKindNonNull
	}
	return ""
}

// metaField is a shorthand for creating fields of the introspection types.
func metaField(name string, description string, t Type, args ...*Argument) *Field {
	config := &FieldConfig{
		Description: description,
		Type:        t,
	}
	if len(args) > 0 {
		config.Args = make(ArgumentMap, len(args))
		for _, arg := range args {
			config.Args[arg.Name()] = arg
		}
	}
	field, err := NewField(name, config)
	if err != nil {
		panic(err)
	}
	return field
}

// metaFields builds a FieldMapThunk that returns the given fields.
func metaFields(build func() []*Field) FieldMapThunk {
	return func() (FieldMap, error) {
		fields := build()
		fieldMap := make(FieldMap, len(fields))
		for _, field := range fields {
			fieldMap[field.Name()] = field
		}
		return fieldMap, nil
	}
}

// nonNullListOfNonNull returns [t!]!.
func nonNullListOfNonNull(t Type) Type {
	return MustNewNonNullOf(MustNewListOf(MustNewNonNullOf(t)))
}

// listOfNonNull returns [t!].
func listOfNonNull(t Type) Type {
	return MustNewListOf(MustNewNonNullOf(t))
}

func includeDeprecatedArg() *Argument {
	return MustNewArgument("includeDeprecated", &ArgumentConfig{
		Type:         Boolean(),
		DefaultValue: false,
	})
}

func init() {
	//===--------------------------------------------------------------------------------------====//
	// __Schema
	//===--------------------------------------------------------------------------------------====//
	_schema = MustNewObject(&ObjectConfig{
		Name: "__Schema",
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes all " +
			"available types and directives on the server, as well as the entry points for query, " +
			"mutation, and subscription operations.",
		Fields: metaFields(func() []*Field {
			return []*Field{
				metaField("types", "A list of all types supported by this server.",
					nonNullListOfNonNull(_type)),
				metaField("queryType", "The type that query operations will be rooted at.",
					MustNewNonNullOf(_type)),
				metaField("mutationType", "If this server supports mutation, the type that mutation "+
					"operations will be rooted at.", _type),
				metaField("subscriptionType", "If this server support subscription, the type that "+
					"subscription operations will be rooted at.", _type),
				metaField("directives", "A list of all directives supported by this server.",
					nonNullListOfNonNull(_directive)),
			}
		}),
	})

	//===--------------------------------------------------------------------------------------====//
	// __Directive
	//===--------------------------------------------------------------------------------------====//
	_directive = MustNewObject(&ObjectConfig{
		Name: "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and type " +
			"validation behavior in a GraphQL document.\n\nIn some cases, you need to provide options " +
			"to alter GraphQL's execution behavior in ways field arguments will not suffice, such as " +
			"conditionally including or skipping a field. Directives provide this by describing " +
			"additional information to the executor.",
		Fields: metaFields(func() []*Field {
			return []*Field{
				metaField("name", "", MustNewNonNullOf(String())),
				metaField("description", "", String()),
				metaField("locations", "", nonNullListOfNonNull(_directiveLocation)),
				metaField("args", "", nonNullListOfNonNull(_inputValue)),
			}
		}),
	})

	//===--------------------------------------------------------------------------------------====//
	// __DirectiveLocation
	//===--------------------------------------------------------------------------------------====//
	locationDescriptions := map[DirectiveLocation]string{
		DirectiveLocationQuery:                "Location adjacent to a query operation.",
		DirectiveLocationMutation:             "Location adjacent to a mutation operation.",
		DirectiveLocationSubscription:         "Location adjacent to a subscription operation.",
		DirectiveLocationField:                "Location adjacent to a field.",
		DirectiveLocationFragmentDefinition:   "Location adjacent to a fragment definition.",
		DirectiveLocationFragmentSpread:       "Location adjacent to a fragment spread.",
		DirectiveLocationInlineFragment:       "Location adjacent to an inline fragment.",
		DirectiveLocationVariableDefinition:   "Location adjacent to a variable definition.",
		DirectiveLocationSchema:               "Location adjacent to a schema definition.",
		DirectiveLocationScalar:               "Location adjacent to a scalar definition.",
		DirectiveLocationObject:               "Location adjacent to an object type definition.",
		DirectiveLocationFieldDefinition:      "Location adjacent to a field definition.",
		DirectiveLocationArgumentDefinition:   "Location adjacent to an argument definition.",
		DirectiveLocationInterface:            "Location adjacent to an interface definition.",
		DirectiveLocationUnion:                "Location adjacent to a union definition.",
		DirectiveLocationEnum:                 "Location adjacent to an enum definition.",
		DirectiveLocationEnumValue:            "Location adjacent to an enum value definition.",
		DirectiveLocationInputObject:          "Location adjacent to an input object type definition.",
		DirectiveLocationInputFieldDefinition: "Location adjacent to an input object field definition.",
	}
	locationValues := make(EnumValueConfigMap, len(DirectiveLocations))
	for _, location := range DirectiveLocations {
		locationValues[string(location)] = EnumValueConfig{
			Value:       location,
			Description: locationDescriptions[location],
		}
	}
	_directiveLocation = MustNewEnum(&EnumConfig{
		Name: "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the GraphQL language, a " +
			"__DirectiveLocation describes one such possible adjacencies.",
		Values: locationValues,
	})

	//===--------------------------------------------------------------------------------------====//
	// __Type
	//===--------------------------------------------------------------------------------------====//
	_type = MustNewObject(&ObjectConfig{
		Name: "__Type",
		Description: "The fundamental unit of any GraphQL Schema is the type. There are many kinds " +
			"of types in GraphQL as represented by the `__TypeKind` enum.\n\nDepending on the kind " +
			"of a type, certain fields describe information about that type. Scalar types provide " +
			"no information beyond a name and description, while Enum types provide their values. " +
			"Object and Interface types provide the fields they describe. Abstract types, Union and " +
			"Interface, provide the Object types possible at runtime. List and NonNull types " +
			"compose other types.",
		Fields: metaFields(func() []*Field {
			return []*Field{
				metaField("kind", "", MustNewNonNullOf(_typeKind)),
				metaField("name", "", String()),
				metaField("description", "", String()),
				metaField("fields", "", listOfNonNull(_field), includeDeprecatedArg()),
				metaField("interfaces", "", listOfNonNull(_type)),
				metaField("possibleTypes", "", listOfNonNull(_type)),
				metaField("enumValues", "", listOfNonNull(_enumValue), includeDeprecatedArg()),
				metaField("inputFields", "", listOfNonNull(_inputValue)),
				metaField("ofType", "", _type),
			}
		}),
	})

	//===--------------------------------------------------------------------------------------====//
	// __Field
	//===--------------------------------------------------------------------------------------====//
	_field = MustNewObject(&ObjectConfig{
		Name: "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of which " +
			"has a name, potentially a list of arguments, and a return type.",
		Fields: metaFields(func() []*Field {
			return []*Field{
				metaField("name", "", MustNewNonNullOf(String())),
				metaField("description", "", String()),
				metaField("args", "", nonNullListOfNonNull(_inputValue)),
				metaField("type", "", MustNewNonNullOf(_type)),
				metaField("isDeprecated", "", MustNewNonNullOf(Boolean())),
				metaField("deprecationReason", "", String()),
			}
		}),
	})

	//===--------------------------------------------------------------------------------------====//
	// __InputValue
	//===--------------------------------------------------------------------------------------====//
	_inputValue = MustNewObject(&ObjectConfig{
		Name: "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an " +
			"InputObject are represented as Input Values which describe their type and optionally " +
			"a default value.",
		Fields: metaFields(func() []*Field {
			return []*Field{
				metaField("name", "", MustNewNonNullOf(String())),
				metaField("description", "", String()),
				metaField("type", "", MustNewNonNullOf(_type)),
				metaField("defaultValue", "A GraphQL-formatted string representing the default value "+
					"for this input value.", String()),
			}
		}),
	})

	//===--------------------------------------------------------------------------------------====//
	// __EnumValue
	//===--------------------------------------------------------------------------------------====//
	_enumValue = MustNewObject(&ObjectConfig{
		Name: "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not a " +
			"placeholder for a string or numeric value. However an Enum value is returned in a " +
			"JSON response as a string.",
		Fields: metaFields(func() []*Field {
			return []*Field{
				metaField("name", "", MustNewNonNullOf(String())),
				metaField("description", "", String()),
				metaField("isDeprecated", "", MustNewNonNullOf(Boolean())),
				metaField("deprecationReason", "", String()),
			}
		}),
	})

	//===--------------------------------------------------------------------------------------====//
	// __TypeKind
	//===--------------------------------------------------------------------------------------====//
	_typeKind = MustNewEnum(&EnumConfig{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: EnumValueConfigMap{
			"SCALAR": {
				Value:       TypeKindScalar,
				Description: "Indicates this type is a scalar.",
			},
			"OBJECT": {
				Value:       TypeKindObject,
				Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields.",
			},
			"INTERFACE": {
				Value:       TypeKindInterface,
				Description: "Indicates this type is an interface. `fields` and `possibleTypes` are valid fields.",
			},
			"UNION": {
				Value:       TypeKindUnion,
				Description: "Indicates this type is a union. `possibleTypes` is a valid field.",
			},
			"ENUM": {
				Value:       TypeKindEnum,
				Description: "Indicates this type is an enum. `enumValues` is a valid field.",
			},
			"INPUT_OBJECT": {
				Value:       TypeKindInputObject,
				Description: "Indicates this type is an input object. `inputFields` is a valid field.",
			},
			"LIST": {
				Value:       TypeKindList,
				Description: "Indicates this type is a list. `ofType` is a valid field.",
			},
			"NON_NULL": {
				Value:       TypeKindNonNull,
				Description: "Indicates this type is a non-null. `ofType` is a valid field.",
			},
		},
	})
}

// introspectionTypes returns the introspection types in a fixed order.
func introspectionTypes() []Type {
	return []Type{
		_schema,
		_directive,
		_directiveLocation,
		_type,
		_field,
		_inputValue,
		_enumValue,
		_typeKind,
	}
}

// IntrospectionTypes returns the types used by the introspection system.
func IntrospectionTypes() []Type {
	return introspectionTypes()
}

// IsIntrospectionType returns true if the given type is one of the introspection types.
func IsIntrospectionType(t Type) bool {
	for _, introspectionType := range introspectionTypes() {
		if t == introspectionType {
			return true
		}
	}
	return false
}

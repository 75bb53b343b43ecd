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

package ast

import (
	"strconv"

	"github.com/botobag/sdlgraph/graphql/token"
)

// Node represents a node in an AST tree from parsing GraphQL language.
type Node interface {
	// TokenRange indicates the region of the Node in the source. Nodes that are constructed in code
	// instead of from parsing may return a range with nil tokens.
	TokenRange() token.Range
}

// Name represents a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	// Token is the lexical token that contains the name (usually scanned by lexer) and also
	// indicates the location in the source; Its kind must be an token.KindName.
	Token *token.Token
}

var _ Node = Name{}

// NewName creates a Name with a synthesized token that doesn't exist in any source.
func NewName(value string) Name {
	return Name{
		Token: &token.Token{
			Kind:  token.KindName,
			Value: value,
		},
	}
}

// Value returns the name in string.
func (node Name) Value() string {
	if node.Token == nil {
		return ""
	}
	return node.Token.Value
}

// IsNil returns true if the name doesn't have a token.
func (node Name) IsNil() bool {
	return node.Token == nil
}

// TokenRange implements Node.
func (node Name) TokenRange() token.Range {
	return token.Range{
		First: node.Token,
		Last:  node.Token,
	}
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

// Document represents a GraphQL Document.
//
// Reference: https://facebook.github.io/graphql/June2018/#Document
type Document struct {
	// Definitions defined in the document.
	Definitions Definitions
}

var _ Node = (*Document)(nil)

// TokenRange implements Node.
func (node *Document) TokenRange() token.Range {
	if len(node.Definitions) == 0 {
		return token.Range{}
	}
	return token.Range{
		First: node.Definitions[0].TokenRange().First,
		Last:  node.Definitions[len(node.Definitions)-1].TokenRange().Last,
	}
}

// Definitions is a list of Definition.
type Definitions []Definition

//===----------------------------------------------------------------------------------------====//
// Input Values
//===----------------------------------------------------------------------------------------====//
// Field and directive arguments accept input values of various literal primitives; input values can
// be scalars, enumeration values, lists, or input objects.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Values

// Value represents a node containing a value.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface returns the value in Go representation without type information.
	Interface() interface{}

	// valueNode is a special mark to indicate a Value node.
	valueNode()
}

var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// singleTokenRange returns a range that starts and ends at tok.
func singleTokenRange(tok *token.Token) token.Range {
	return token.Range{
		First: tok,
		Last:  tok,
	}
}

// IntValue represents a value node containing an integer.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
type IntValue struct {
	// Token is the lexical token that contains the value; Its kind must be an token.KindInt.
	Token *token.Token
}

// TokenRange implements Node.
func (value IntValue) TokenRange() token.Range {
	return singleTokenRange(value.Token)
}

// Interface implements Value. It returns an int64, or the literal string if the value overflows.
func (value IntValue) Interface() interface{} {
	v, err := value.Int64Value()
	if err != nil {
		return value.String()
	}
	return v
}

// valueNode implements Value.
func (IntValue) valueNode() {}

// String return the literal in string that specifies the integer value.
func (value IntValue) String() string {
	return value.Token.Value
}

// Int32Value parses literal into an int32.
func (value IntValue) Int32Value() (int32, error) {
	v, err := strconv.ParseInt(value.String(), 10, 32)
	return int32(v), err
}

// Int64Value parses literal into an int64.
func (value IntValue) Int64Value() (int64, error) {
	return strconv.ParseInt(value.String(), 10, 64)
}

// FloatValue represents a value node containing a float.
//
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type FloatValue struct {
	// Token is the lexical token that contains the value; Its kind must be an token.KindFloat.
	Token *token.Token
}

// TokenRange implements Node.
func (value FloatValue) TokenRange() token.Range {
	return singleTokenRange(value.Token)
}

// Interface implements Value. It returns a float64, or the literal string if the value cannot be
// represented.
func (value FloatValue) Interface() interface{} {
	v, err := value.FloatValue()
	if err != nil {
		return value.String()
	}
	return v
}

// valueNode implements Value.
func (FloatValue) valueNode() {}

// String return the literal in string that specifies the float value.
func (value FloatValue) String() string {
	return value.Token.Value
}

// FloatValue parses literal into a float64.
func (value FloatValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.String(), 64)
}

// StringValue represents a value node containing a string. It is also used for descriptions where a
// nil Token means no description.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	// Token is the lexical token that contains the value; Its kind must be an token.KindString or
	// token.KindBlockString.
	Token *token.Token
}

// TokenRange implements Node.
func (value StringValue) TokenRange() token.Range {
	return singleTokenRange(value.Token)
}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value()
}

// valueNode implements Value.
func (StringValue) valueNode() {}

// Value returns the string value.
func (value StringValue) Value() string {
	if value.Token == nil {
		return ""
	}
	return value.Token.Value
}

// IsNil returns true if the string value is absent.
func (value StringValue) IsNil() bool {
	return value.Token == nil
}

// IsBlockString returns true if the value was written as a block string.
func (value StringValue) IsBlockString() bool {
	return value.Token != nil && value.Token.Kind == token.KindBlockString
}

// BooleanValue represents a value node containing a boolean.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	// Token is a token.KindName containing either "true" or "false".
	Token *token.Token
}

// TokenRange implements Node.
func (value BooleanValue) TokenRange() token.Range {
	return singleTokenRange(value.Token)
}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value()
}

// Value returns true if the token contains "true".
func (value BooleanValue) Value() bool {
	return value.Token.Value == "true"
}

// valueNode implements Value.
func (BooleanValue) valueNode() {}

// NullValue represents the keyword "null".
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	// Token is a token.KindName containing "null".
	Token *token.Token
}

// TokenRange implements Node.
func (value NullValue) TokenRange() token.Range {
	return singleTokenRange(value.Token)
}

// Interface implements Value.
func (value NullValue) Interface() interface{} {
	return nil
}

// valueNode implements Value.
func (NullValue) valueNode() {}

// EnumValue represents a value node containing an enum value.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	// Token is the lexical token that contains the value; Its kind must be an token.KindName.
	Token *token.Token
}

// TokenRange implements Node.
func (value EnumValue) TokenRange() token.Range {
	return singleTokenRange(value.Token)
}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Value()
}

// valueNode implements Value.
func (EnumValue) valueNode() {}

// Value returns the enum value.
func (value EnumValue) Value() string {
	return value.Token.Value
}

// ListValue represents a value node containing list of values.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	// The brackets that enclose the list
	LBracket *token.Token
	RBracket *token.Token

	// Values in the list
	Values []Value
}

// TokenRange implements Node.
func (value ListValue) TokenRange() token.Range {
	return token.Range{
		First: value.LBracket,
		Last:  value.RBracket,
	}
}

// Interface implements Value.
func (value ListValue) Interface() interface{} {
	result := make([]interface{}, len(value.Values))
	for i, v := range value.Values {
		result[i] = v.Interface()
	}
	return result
}

// valueNode implements Value.
func (ListValue) valueNode() {}

// ObjectValue represents a value node containing an input object.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	// The braces that enclose the object
	LBrace *token.Token
	RBrace *token.Token

	// Fields in the object
	Fields []*ObjectField
}

// TokenRange implements Node.
func (value ObjectValue) TokenRange() token.Range {
	return token.Range{
		First: value.LBrace,
		Last:  value.RBrace,
	}
}

// Interface implements Value.
func (value ObjectValue) Interface() interface{} {
	result := make(map[string]interface{}, len(value.Fields))
	for _, field := range value.Fields {
		result[field.Name.Value()] = field.Value.Interface()
	}
	return result
}

// valueNode implements Value.
func (ObjectValue) valueNode() {}

// ObjectField represent a node that assigns a value to an object field.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	// Name of the field being assigned
	Name Name

	// Value that is assigned to the field
	Value Value
}

// TokenRange implements Node.
func (node *ObjectField) TokenRange() token.Range {
	return token.Range{
		First: node.Name.Token,
		Last:  node.Value.TokenRange().Last,
	}
}

// Variable refers to a variable with a name. Schema documents only allow constant values; The
// parser produces Variable so it can report a meaningful error when building default values.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	// Dollar is the "$" token that starts the variable.
	Dollar *token.Token

	// Name of the reference
	Name Name
}

// TokenRange implements Node.
func (value Variable) TokenRange() token.Range {
	return token.Range{
		First: value.Dollar,
		Last:  value.Name.Token,
	}
}

// Interface implements Value. It returns the name of the variable.
func (value Variable) Interface() interface{} {
	return value.Name.Value()
}

// valueNode implements Value.
func (Variable) valueNode() {}

//===----------------------------------------------------------------------------------------====//
// Type Reference
//===----------------------------------------------------------------------------------------====//

// Type describes a reference to a type.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// typeNode is a special mark to indicate a Type node.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)

// NamedType refers to a named type.
type NamedType struct {
	// Name of the type referred by this node
	Name Name
}

// NewNamedType creates a NamedType with a synthesized name token.
func NewNamedType(name string) NamedType {
	return NamedType{
		Name: NewName(name),
	}
}

// TokenRange implements Node.
func (t NamedType) TokenRange() token.Range {
	return t.Name.TokenRange()
}

// typeNode implements Type.
func (NamedType) typeNode() {}

// ListType refers to a list type of an item type.
type ListType struct {
	// The brackets that enclose the item type
	LBracket *token.Token
	RBracket *token.Token

	// ItemType specifies the type of item in the list.
	ItemType Type
}

// TokenRange implements Node.
func (t *ListType) TokenRange() token.Range {
	return token.Range{
		First: t.LBracket,
		Last:  t.RBracket,
	}
}

// typeNode implements Type
func (*ListType) typeNode() {}

// NonNullType refers to a type that doesn't accept null value. The grammar only allows a NamedType
// or a ListType as the wrapped type. The field is declared with Type so that invalid trees can still
// be represented and rejected when a type is built from them.
type NonNullType struct {
	// Type wrapped in this non-null type
	Type Type

	// Bang is the "!" token that ends the type.
	Bang *token.Token
}

// TokenRange implements Node.
func (t *NonNullType) TokenRange() token.Range {
	return token.Range{
		First: t.Type.TokenRange().First,
		Last:  t.Bang,
	}
}

// typeNode implements Type.
func (*NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// Directives and Arguments
//===----------------------------------------------------------------------------------------====//

// Arguments is a list of Argument.
type Arguments []*Argument

// Argument assigns a value to a field or directive argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	// Name of the argument
	Name Name

	// Value assigned to the argument
	Value Value
}

var _ Node = (*Argument)(nil)

// TokenRange implements Node.
func (node *Argument) TokenRange() token.Range {
	return token.Range{
		First: node.Name.Token,
		Last:  node.Value.TokenRange().Last,
	}
}

// Directives specifies a list of directives
type Directives []*Directive

// Directive applies a GraphQL directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Directives
type Directive struct {
	// Loc spans from "@" to the name or the closing parenthesis of the arguments.
	Loc token.Range

	// Name of the directive
	Name Name

	// Arguments taken by the directive
	Arguments Arguments
}

var _ Node = (*Directive)(nil)

// TokenRange implements Node.
func (node *Directive) TokenRange() token.Range {
	return node.Loc
}

// Lookup returns the directive with the given name or nil if there's no such one.
func (nodes Directives) Lookup(name string) *Directive {
	for _, node := range nodes {
		if node.Name.Value() == name {
			return node
		}
	}
	return nil
}

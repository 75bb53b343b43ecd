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

package parser

import (
	"fmt"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
	"github.com/botobag/sdlgraph/graphql/lexer"
	"github.com/botobag/sdlgraph/graphql/token"
)

// parser is a recursive descent parser over the token stream produced by a lexer.
type parser struct {
	lexer *lexer.Lexer
}

func newParser(source *token.Source) (*parser, error) {
	if source == nil {
		return nil, newParserSourceError()
	}
	return &parser{
		lexer: lexer.New(source),
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// Helper functions
//===----------------------------------------------------------------------------------------====//

// peek determines if the next token is of a given kind.
func (p *parser) peek(kind token.Kind) bool {
	return p.lexer.Token().Kind == kind
}

// peekKeyword determines if the next token is a name token with the given value.
func (p *parser) peekKeyword(value string) bool {
	tok := p.lexer.Token()
	return tok.Kind == token.KindName && tok.Value == value
}

// peekDescription determines if the next token starts a description.
func (p *parser) peekDescription() bool {
	return p.peek(token.KindString) || p.peek(token.KindBlockString)
}

// skip advances the lexer and returns true if the next token is of the given kind. Otherwise, do not
// change the parser state and return false.
func (p *parser) skip(kind token.Kind) (bool, error) {
	if p.lexer.Token().Kind != kind {
		return false, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// expect advances the lexer and returns the consumed token if the next token is of the given kind.
// Otherwise, do not change the parser state and return an error.
func (p *parser) expect(kind token.Kind) (*token.Token, error) {
	tok := p.lexer.Token()
	if tok.Kind != kind {
		return nil, p.syntaxError(tok, fmt.Sprintf("Expected %s, found %s", kind, tok.Description()))
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// expectKeyword advances the lexer and returns the consumed token if the next token is a name token
// with the given value. Otherwise, do not change the parser state and return an error.
func (p *parser) expectKeyword(value string) (*token.Token, error) {
	tok := p.lexer.Token()
	if tok.Kind != token.KindName || tok.Value != value {
		return nil, p.syntaxError(tok, fmt.Sprintf(`Expected "%s", found %s`, value, tok.Description()))
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// unexpected creates an error for reporting an unexpected token. If tok is nil, current token is
// used.
func (p *parser) unexpected(tok *token.Token) error {
	if tok == nil {
		tok = p.lexer.Token()
	}
	return p.syntaxError(tok, fmt.Sprintf("Unexpected %s", tok.Description()))
}

func (p *parser) syntaxError(tok *token.Token, description string) error {
	return graphql.NewSyntaxError(p.lexer.Source(), tok.Location, description)
}

// tokenRange returns a range that starts at first and ends at the last consumed token.
func (p *parser) tokenRange(first *token.Token) token.Range {
	return token.Range{
		First: first,
		Last:  p.lexer.LastToken(),
	}
}

//===----------------------------------------------------------------------------------------====//
// 2.1.9 Names
//===----------------------------------------------------------------------------------------====//

// Converts a name lex token into a name parse node.
func (p *parser) parseName() (ast.Name, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Token: tok}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//

// Document : Definition+
func (p *parser) parseDocument() (*ast.Document, error) {
	if _, err := p.expect(token.KindSOF); err != nil {
		return nil, err
	}

	var definitions ast.Definitions
	for {
		definition, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)

		if p.peek(token.KindEOF) {
			break
		}
	}

	return &ast.Document{
		Definitions: definitions,
	}, nil
}

// Definition :
//   - TypeSystemDefinition
//
// TypeSystemDefinition :
//   - SchemaDefinition
//   - TypeDefinition
//   - DirectiveDefinition
//
// TypeDefinition :
//   - ScalarTypeDefinition
//   - ObjectTypeDefinition
//   - InterfaceTypeDefinition
//   - UnionTypeDefinition
//   - EnumTypeDefinition
//   - InputObjectTypeDefinition
func (p *parser) parseDefinition() (ast.Definition, error) {
	// Many definitions begin with a description and require a lookahead.
	keywordToken := p.lexer.Token()
	if p.peekDescription() {
		var err error
		keywordToken, err = p.lexer.Lookahead()
		if err != nil {
			return nil, err
		}
	}

	if keywordToken.Kind == token.KindName {
		switch keywordToken.Value {
		case "schema":
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition()
		case "type":
			return p.parseObjectTypeDefinition()
		case "interface":
			return p.parseInterfaceTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		case "enum":
			return p.parseEnumTypeDefinition()
		case "input":
			return p.parseInputObjectTypeDefinition()
		case "directive":
			return p.parseDirectiveDefinition()
		}
	}

	return nil, p.unexpected(keywordToken)
}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//

// Value[Const] :
//   - [~Const] Variable
//   - IntValue
//   - FloatValue
//   - StringValue
//   - BooleanValue
//   - NullValue
//   - EnumValue
//   - ListValue[?Const]
//   - ObjectValue[?Const]
//
// BooleanValue : one of `true` `false`
//
// NullValue : `null`
//
// EnumValue : Name but not `true`, `false` or `null`
func (p *parser) parseValue(isConst bool) (ast.Value, error) {
	tok := p.lexer.Token()
	switch tok.Kind {
	case token.KindLeftBracket:
		return p.parseList(isConst)

	case token.KindLeftBrace:
		return p.parseObject(isConst)

	case token.KindInt:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return ast.IntValue{Token: tok}, nil

	case token.KindFloat:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return ast.FloatValue{Token: tok}, nil

	case token.KindString, token.KindBlockString:
		return p.parseStringLiteral()

	case token.KindName:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		switch tok.Value {
		case "true", "false":
			return ast.BooleanValue{Token: tok}, nil
		case "null":
			return ast.NullValue{Token: tok}, nil
		default:
			return ast.EnumValue{Token: tok}, nil
		}

	case token.KindDollar:
		if !isConst {
			return p.parseVariable()
		}
	}

	return nil, p.unexpected(nil)
}

func (p *parser) parseStringLiteral() (ast.StringValue, error) {
	tok := p.lexer.Token()
	if _, err := p.lexer.Advance(); err != nil {
		return ast.StringValue{}, err
	}
	return ast.StringValue{Token: tok}, nil
}

// Variable : $ Name
func (p *parser) parseVariable() (ast.Variable, error) {
	dollar, err := p.expect(token.KindDollar)
	if err != nil {
		return ast.Variable{}, err
	}

	name, err := p.parseName()
	if err != nil {
		return ast.Variable{}, err
	}

	return ast.Variable{
		Dollar: dollar,
		Name:   name,
	}, nil
}

// ListValue[Const] :
//   - [ ]
//   - [ Value[?Const]+ ]
func (p *parser) parseList(isConst bool) (ast.ListValue, error) {
	lbracket, err := p.expect(token.KindLeftBracket)
	if err != nil {
		return ast.ListValue{}, err
	}

	values := []ast.Value{}
	for !p.peek(token.KindRightBracket) {
		value, err := p.parseValue(isConst)
		if err != nil {
			return ast.ListValue{}, err
		}
		values = append(values, value)
	}

	rbracket, err := p.expect(token.KindRightBracket)
	if err != nil {
		return ast.ListValue{}, err
	}

	return ast.ListValue{
		LBracket: lbracket,
		RBracket: rbracket,
		Values:   values,
	}, nil
}

// ObjectValue[Const] :
//   - { }
//   - { ObjectField[?Const]+ }
func (p *parser) parseObject(isConst bool) (ast.ObjectValue, error) {
	lbrace, err := p.expect(token.KindLeftBrace)
	if err != nil {
		return ast.ObjectValue{}, err
	}

	fields := []*ast.ObjectField{}
	for !p.peek(token.KindRightBrace) {
		field, err := p.parseObjectField(isConst)
		if err != nil {
			return ast.ObjectValue{}, err
		}
		fields = append(fields, field)
	}

	rbrace, err := p.expect(token.KindRightBrace)
	if err != nil {
		return ast.ObjectValue{}, err
	}

	return ast.ObjectValue{
		LBrace: lbrace,
		RBrace: rbrace,
		Fields: fields,
	}, nil
}

// ObjectField[Const] : Name : Value[?Const]
func (p *parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.ObjectField{
		Name:  name,
		Value: value,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//

// Directives[Const] : Directive[?Const]+
func (p *parser) parseDirectives(isConst bool) (ast.Directives, error) {
	var directives ast.Directives
	for p.peek(token.KindAt) {
		directive, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

// Directive[Const] : @ Name Arguments[?Const]?
func (p *parser) parseDirective(isConst bool) (*ast.Directive, error) {
	at, err := p.expect(token.KindAt)
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArguments(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.Directive{
		Loc:       p.tokenRange(at),
		Name:      name,
		Arguments: arguments,
	}, nil
}

// Arguments[Const] : ( Argument[?Const]+ )
func (p *parser) parseArguments(isConst bool) (ast.Arguments, error) {
	if !p.peek(token.KindLeftParen) {
		return nil, nil
	}

	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	var arguments ast.Arguments
	for {
		argument, err := p.parseArgument(isConst)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		if found, err := p.skip(token.KindRightParen); err != nil {
			return nil, err
		} else if found {
			break
		}
	}

	return arguments, nil
}

// Argument[Const] : Name : Value[?Const]
func (p *parser) parseArgument(isConst bool) (*ast.Argument, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.Argument{
		Name:  name,
		Value: value,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.11 Type
//===----------------------------------------------------------------------------------------====//

// Type :
//   - NamedType
//   - ListType
//   - NonNullType
func (p *parser) parseType() (ast.Type, error) {
	var t ast.Type

	if p.peek(token.KindLeftBracket) {
		lbracket := p.lexer.Token()
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}

		itemType, err := p.parseType()
		if err != nil {
			return nil, err
		}

		rbracket, err := p.expect(token.KindRightBracket)
		if err != nil {
			return nil, err
		}

		t = &ast.ListType{
			LBracket: lbracket,
			RBracket: rbracket,
			ItemType: itemType,
		}
	} else {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		t = namedType
	}

	if p.peek(token.KindBang) {
		bang := p.lexer.Token()
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return &ast.NonNullType{
			Type: t,
			Bang: bang,
		}, nil
	}

	return t, nil
}

// NamedType : Name
func (p *parser) parseNamedType() (ast.NamedType, error) {
	name, err := p.parseName()
	if err != nil {
		return ast.NamedType{}, err
	}
	return ast.NamedType{Name: name}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3 Type System
//===----------------------------------------------------------------------------------------====//

// Description : StringValue
func (p *parser) parseDescription() (ast.StringValue, error) {
	if p.peekDescription() {
		return p.parseStringLiteral()
	}
	return ast.StringValue{}, nil
}

// SchemaDefinition : schema Directives[Const]? { RootOperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	start, err := p.expectKeyword("schema")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)

		if found, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if found {
			break
		}
	}

	return &ast.SchemaDefinition{
		DefinitionBase: ast.DefinitionBase{
			Loc:        p.tokenRange(start),
			Directives: directives,
		},
		OperationTypes: operationTypes,
	}, nil
}

// RootOperationTypeDefinition : OperationType : NamedType
//
// OperationType : one of query mutation subscription
func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	operation := p.lexer.Token()
	if operation.Kind != token.KindName {
		return nil, p.unexpected(operation)
	}
	switch ast.OperationType(operation.Value) {
	case ast.OperationTypeQuery, ast.OperationTypeMutation, ast.OperationTypeSubscription:
	default:
		return nil, p.unexpected(operation)
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	t, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		Operation: operation,
		Type:      t,
	}, nil
}

// parseTypeDefinitionHead parses the common leading part of type definitions:
//
//	Description? keyword Name
func (p *parser) parseTypeDefinitionHead(keyword string) (*token.Token, ast.StringValue, ast.Name, error) {
	start := p.lexer.Token()

	description, err := p.parseDescription()
	if err != nil {
		return nil, ast.StringValue{}, ast.Name{}, err
	}

	if _, err := p.expectKeyword(keyword); err != nil {
		return nil, ast.StringValue{}, ast.Name{}, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, ast.StringValue{}, ast.Name{}, err
	}

	return start, description, name, nil
}

// ScalarTypeDefinition : Description? scalar Name Directives[Const]?
func (p *parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	start, description, name, err := p.parseTypeDefinitionHead("scalar")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			DefinitionBase: ast.DefinitionBase{
				Loc:        p.tokenRange(start),
				Directives: directives,
			},
			Description: description,
			Name:        name,
		},
	}, nil
}

// ObjectTypeDefinition :
//   - Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	start, description, name, err := p.parseTypeDefinitionHead("type")
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			DefinitionBase: ast.DefinitionBase{
				Loc:        p.tokenRange(start),
				Directives: directives,
			},
			Description: description,
			Name:        name,
		},
		Interfaces: interfaces,
		Fields:     fields,
	}, nil
}

// ImplementsInterfaces :
//   - implements `&`? NamedType
//   - ImplementsInterfaces & NamedType
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	if !p.peekKeyword("implements") {
		return nil, nil
	}

	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	// Optional leading ampersand
	if _, err := p.skip(token.KindAmp); err != nil {
		return nil, err
	}

	var types []ast.NamedType
	for {
		t, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		if found, err := p.skip(token.KindAmp); err != nil {
			return nil, err
		} else if !found {
			break
		}
	}

	return types, nil
}

// FieldsDefinition : { FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if !p.peek(token.KindLeftBrace) {
		return nil, nil
	}

	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		if found, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if found {
			break
		}
	}

	return fields, nil
}

// FieldDefinition : Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.lexer.Token()

	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentDefs()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		Loc:         p.tokenRange(start),
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        t,
		Directives:  directives,
	}, nil
}

// ArgumentsDefinition : ( InputValueDefinition+ )
func (p *parser) parseArgumentDefs() ([]*ast.InputValueDefinition, error) {
	return p.parseInputValueDefs(token.KindLeftParen, token.KindRightParen)
}

// parseInputValueDefs parses one or more InputValueDefinition enclosed by open and close tokens. It
// returns nil if the next token is not open.
func (p *parser) parseInputValueDefs(open token.Kind, close token.Kind) ([]*ast.InputValueDefinition, error) {
	if !p.peek(open) {
		return nil, nil
	}

	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	var values []*ast.InputValueDefinition
	for {
		value, err := p.parseInputValueDef()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		if found, err := p.skip(close); err != nil {
			return nil, err
		} else if found {
			break
		}
	}

	return values, nil
}

// InputValueDefinition : Description? Name : Type DefaultValue? Directives[Const]?
//
// DefaultValue : = Value[Const]
func (p *parser) parseInputValueDef() (*ast.InputValueDefinition, error) {
	start := p.lexer.Token()

	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if found, err := p.skip(token.KindEquals); err != nil {
		return nil, err
	} else if found {
		defaultValue, err = p.parseValue(true)
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.InputValueDefinition{
		Loc:          p.tokenRange(start),
		Description:  description,
		Name:         name,
		Type:         t,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

// InterfaceTypeDefinition : Description? interface Name Directives[Const]? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	start, description, name, err := p.parseTypeDefinitionHead("interface")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			DefinitionBase: ast.DefinitionBase{
				Loc:        p.tokenRange(start),
				Directives: directives,
			},
			Description: description,
			Name:        name,
		},
		Fields: fields,
	}, nil
}

// UnionTypeDefinition : Description? union Name Directives[Const]? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	start, description, name, err := p.parseTypeDefinitionHead("union")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	return &ast.UnionTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			DefinitionBase: ast.DefinitionBase{
				Loc:        p.tokenRange(start),
				Directives: directives,
			},
			Description: description,
			Name:        name,
		},
		Types: types,
	}, nil
}

// UnionMemberTypes :
//   - = `|`? NamedType
//   - UnionMemberTypes | NamedType
func (p *parser) parseUnionMemberTypes() ([]ast.NamedType, error) {
	if found, err := p.skip(token.KindEquals); err != nil {
		return nil, err
	} else if !found {
		return nil, nil
	}

	// Optional leading pipe
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var types []ast.NamedType
	for {
		t, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		if found, err := p.skip(token.KindPipe); err != nil {
			return nil, err
		} else if !found {
			break
		}
	}

	return types, nil
}

// EnumTypeDefinition : Description? enum Name Directives[Const]? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	start, description, name, err := p.parseTypeDefinitionHead("enum")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.EnumTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			DefinitionBase: ast.DefinitionBase{
				Loc:        p.tokenRange(start),
				Directives: directives,
			},
			Description: description,
			Name:        name,
		},
		Values: values,
	}, nil
}

// EnumValuesDefinition : { EnumValueDefinition+ }
func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.peek(token.KindLeftBrace) {
		return nil, nil
	}

	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}

	var values []*ast.EnumValueDefinition
	for {
		value, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		if found, err := p.skip(token.KindRightBrace); err != nil {
			return nil, err
		} else if found {
			break
		}
	}

	return values, nil
}

// EnumValueDefinition : Description? EnumValue Directives[Const]?
//
// EnumValue : Name but not `true`, `false` or `null`
func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.lexer.Token()

	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	valueToken := p.lexer.Token()
	if valueToken.Kind == token.KindName {
		switch valueToken.Value {
		case "true", "false", "null":
			return nil, p.syntaxError(valueToken,
				fmt.Sprintf("%s is reserved and cannot be used for an enum value", valueToken.Description()))
		}
	}

	value, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.EnumValueDefinition{
		Loc:         p.tokenRange(start),
		Description: description,
		Value:       value,
		Directives:  directives,
	}, nil
}

// InputObjectTypeDefinition :
//   - Description? input Name Directives[Const]? InputFieldsDefinition?
//
// InputFieldsDefinition : { InputValueDefinition+ }
func (p *parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	start, description, name, err := p.parseTypeDefinitionHead("input")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := p.parseInputValueDefs(token.KindLeftBrace, token.KindRightBrace)
	if err != nil {
		return nil, err
	}

	return &ast.InputObjectTypeDefinition{
		TypeDefinitionBase: ast.TypeDefinitionBase{
			DefinitionBase: ast.DefinitionBase{
				Loc:        p.tokenRange(start),
				Directives: directives,
			},
			Description: description,
			Name:        name,
		},
		Fields: fields,
	}, nil
}

// DirectiveDefinition :
//   - Description? directive @ Name ArgumentsDefinition? on DirectiveLocations
func (p *parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	start := p.lexer.Token()

	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentDefs()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return &ast.DirectiveDefinition{
		DefinitionBase: ast.DefinitionBase{
			Loc: p.tokenRange(start),
		},
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Locations:   locations,
	}, nil
}

// DirectiveLocations :
//   - `|`? DirectiveLocation
//   - DirectiveLocations | DirectiveLocation
func (p *parser) parseDirectiveLocations() ([]ast.Name, error) {
	// Optional leading pipe
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var locations []ast.Name
	for {
		location, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)

		if found, err := p.skip(token.KindPipe); err != nil {
			return nil, err
		} else if !found {
			break
		}
	}

	return locations, nil
}

// DirectiveLocation : one of the names in graphql.DirectiveLocation
func (p *parser) parseDirectiveLocation() (ast.Name, error) {
	start := p.lexer.Token()

	name, err := p.parseName()
	if err != nil {
		return ast.Name{}, err
	}

	if !graphql.DirectiveLocation(name.Value()).IsValid() {
		return ast.Name{}, p.unexpected(start)
	}

	return name, nil
}

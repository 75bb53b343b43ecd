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
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// stringEncoder encodes string values in the GraphQL string syntax (which shares the escape rules
// with JSON). HTML characters are left intact.
var stringEncoder = jsoniter.Config{
	EscapeHTML: false,
}.Froze()

// Print converts an AST node into a string in a format compatible with graphql-js printer.
func Print(node Node) string {
	p := &printer{}
	p.printNode(node)
	return p.String()
}

type printer struct {
	strings.Builder
	indentLevel int
}

func (p *printer) writeNewLineWithIndent() {
	p.WriteString("\n")
	p.WriteString(strings.Repeat("  ", p.indentLevel))
}

func (p *printer) printNode(node Node) {
	switch node := node.(type) {
	case Name:
		p.WriteString(node.Value())
	case *Document:
		p.printDocument(node)
	case Definition:
		p.printDefinition(node)
	case *FieldDefinition:
		p.printFieldDefinition(node)
	case *InputValueDefinition:
		p.printInputValueDefinition(node)
	case *EnumValueDefinition:
		p.printEnumValueDefinition(node)
	case *OperationTypeDefinition:
		p.printOperationTypeDefinition(node)
	case *Directive:
		p.printDirective(node)
	case *Argument:
		p.printArgument(node)
	case *ObjectField:
		p.printObjectField(node)
	case Type:
		p.printType(node)
	case Value:
		p.printValue(node)
	default:
		panic(fmt.Sprintf("unsupported node type %T to print", node))
	}
}

func (p *printer) printDocument(document *Document) {
	for i, definition := range document.Definitions {
		if i > 0 {
			p.WriteString("\n\n")
		}
		p.printDefinition(definition)
	}
	if len(document.Definitions) > 0 {
		p.WriteString("\n")
	}
}

func (p *printer) printDescription(description StringValue) {
	if description.IsNil() {
		return
	}

	value := description.Value()
	if description.IsBlockString() {
		p.WriteString(`"""`)
		for _, line := range strings.Split(strings.Replace(value, `"""`, `\"""`, -1), "\n") {
			p.writeNewLineWithIndent()
			p.WriteString(line)
		}
		p.writeNewLineWithIndent()
		p.WriteString(`"""`)
	} else {
		p.printString(value)
	}
	p.writeNewLineWithIndent()
}

func (p *printer) printString(value string) {
	encoded, err := stringEncoder.MarshalToString(value)
	if err != nil {
		// Encoding a string value never fails.
		panic(err)
	}
	p.WriteString(encoded)
}

func (p *printer) printDirectives(directives Directives) {
	for _, directive := range directives {
		p.WriteString(" ")
		p.printDirective(directive)
	}
}

func (p *printer) printDirective(directive *Directive) {
	p.WriteString("@")
	p.WriteString(directive.Name.Value())
	if len(directive.Arguments) > 0 {
		p.WriteString("(")
		for i, arg := range directive.Arguments {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printArgument(arg)
		}
		p.WriteString(")")
	}
}

func (p *printer) printArgument(arg *Argument) {
	p.WriteString(arg.Name.Value())
	p.WriteString(": ")
	p.printValue(arg.Value)
}

func (p *printer) printObjectField(field *ObjectField) {
	p.WriteString(field.Name.Value())
	p.WriteString(": ")
	p.printValue(field.Value)
}

func (p *printer) printValue(value Value) {
	switch value := value.(type) {
	case IntValue:
		p.WriteString(value.String())
	case FloatValue:
		p.WriteString(value.String())
	case StringValue:
		p.printString(value.Value())
	case BooleanValue:
		if value.Value() {
			p.WriteString("true")
		} else {
			p.WriteString("false")
		}
	case NullValue:
		p.WriteString("null")
	case EnumValue:
		p.WriteString(value.Value())
	case Variable:
		p.WriteString("$")
		p.WriteString(value.Name.Value())
	case ListValue:
		p.WriteString("[")
		for i, v := range value.Values {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printValue(v)
		}
		p.WriteString("]")
	case ObjectValue:
		p.WriteString("{")
		for i, field := range value.Fields {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printObjectField(field)
		}
		p.WriteString("}")
	default:
		panic(fmt.Sprintf("unsupported value node %T to print", value))
	}
}

func (p *printer) printType(t Type) {
	switch t := t.(type) {
	case NamedType:
		p.WriteString(t.Name.Value())
	case *ListType:
		p.WriteString("[")
		p.printType(t.ItemType)
		p.WriteString("]")
	case *NonNullType:
		p.printType(t.Type)
		p.WriteString("!")
	default:
		panic(fmt.Sprintf("unsupported type node %T to print", t))
	}
}

func (p *printer) printNamedTypes(types []NamedType, separator string) {
	for i, t := range types {
		if i > 0 {
			p.WriteString(separator)
		}
		p.WriteString(t.Name.Value())
	}
}

func (p *printer) printDefinition(definition Definition) {
	switch definition := definition.(type) {
	case *SchemaDefinition:
		p.WriteString("schema")
		p.printDirectives(definition.Directives)
		p.WriteString(" {")
		p.indentLevel++
		for _, operationType := range definition.OperationTypes {
			p.writeNewLineWithIndent()
			p.printOperationTypeDefinition(operationType)
		}
		p.indentLevel--
		p.writeNewLineWithIndent()
		p.WriteString("}")

	case *ScalarTypeDefinition:
		p.printDescription(definition.Description)
		p.WriteString("scalar ")
		p.WriteString(definition.Name.Value())
		p.printDirectives(definition.Directives)

	case *ObjectTypeDefinition:
		p.printDescription(definition.Description)
		p.WriteString("type ")
		p.WriteString(definition.Name.Value())
		if len(definition.Interfaces) > 0 {
			p.WriteString(" implements ")
			p.printNamedTypes(definition.Interfaces, " & ")
		}
		p.printDirectives(definition.Directives)
		p.printFieldDefinitions(definition.Fields)

	case *InterfaceTypeDefinition:
		p.printDescription(definition.Description)
		p.WriteString("interface ")
		p.WriteString(definition.Name.Value())
		p.printDirectives(definition.Directives)
		p.printFieldDefinitions(definition.Fields)

	case *UnionTypeDefinition:
		p.printDescription(definition.Description)
		p.WriteString("union ")
		p.WriteString(definition.Name.Value())
		p.printDirectives(definition.Directives)
		if len(definition.Types) > 0 {
			p.WriteString(" = ")
			p.printNamedTypes(definition.Types, " | ")
		}

	case *EnumTypeDefinition:
		p.printDescription(definition.Description)
		p.WriteString("enum ")
		p.WriteString(definition.Name.Value())
		p.printDirectives(definition.Directives)
		if len(definition.Values) > 0 {
			p.WriteString(" {")
			p.indentLevel++
			for _, value := range definition.Values {
				p.writeNewLineWithIndent()
				p.printEnumValueDefinition(value)
			}
			p.indentLevel--
			p.writeNewLineWithIndent()
			p.WriteString("}")
		}

	case *InputObjectTypeDefinition:
		p.printDescription(definition.Description)
		p.WriteString("input ")
		p.WriteString(definition.Name.Value())
		p.printDirectives(definition.Directives)
		if len(definition.Fields) > 0 {
			p.WriteString(" {")
			p.indentLevel++
			for _, field := range definition.Fields {
				p.writeNewLineWithIndent()
				p.printInputValueDefinition(field)
			}
			p.indentLevel--
			p.writeNewLineWithIndent()
			p.WriteString("}")
		}

	case *DirectiveDefinition:
		p.printDescription(definition.Description)
		p.WriteString("directive @")
		p.WriteString(definition.Name.Value())
		p.printArgumentDefinitions(definition.Arguments)
		p.WriteString(" on ")
		for i, location := range definition.Locations {
			if i > 0 {
				p.WriteString(" | ")
			}
			p.WriteString(location.Value())
		}

	default:
		panic(fmt.Sprintf("unsupported definition %T to print", definition))
	}
}

func (p *printer) printOperationTypeDefinition(node *OperationTypeDefinition) {
	p.WriteString(string(node.OperationType()))
	p.WriteString(": ")
	p.WriteString(node.Type.Name.Value())
}

func (p *printer) printFieldDefinitions(fields []*FieldDefinition) {
	if len(fields) == 0 {
		return
	}
	p.WriteString(" {")
	p.indentLevel++
	for _, field := range fields {
		p.writeNewLineWithIndent()
		p.printFieldDefinition(field)
	}
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString("}")
}

func (p *printer) printFieldDefinition(field *FieldDefinition) {
	p.printDescription(field.Description)
	p.WriteString(field.Name.Value())
	p.printArgumentDefinitions(field.Arguments)
	p.WriteString(": ")
	p.printType(field.Type)
	p.printDirectives(field.Directives)
}

// printArgumentDefinitions prints arguments on a single line unless any of them has a description.
func (p *printer) printArgumentDefinitions(args []*InputValueDefinition) {
	if len(args) == 0 {
		return
	}

	multiline := false
	for _, arg := range args {
		if !arg.Description.IsNil() {
			multiline = true
			break
		}
	}

	p.WriteString("(")
	if multiline {
		p.indentLevel++
		for _, arg := range args {
			p.writeNewLineWithIndent()
			p.printInputValueDefinition(arg)
		}
		p.indentLevel--
		p.writeNewLineWithIndent()
	} else {
		for i, arg := range args {
			if i > 0 {
				p.WriteString(", ")
			}
			p.printInputValueDefinition(arg)
		}
	}
	p.WriteString(")")
}

func (p *printer) printInputValueDefinition(value *InputValueDefinition) {
	p.printDescription(value.Description)
	p.WriteString(value.Name.Value())
	p.WriteString(": ")
	p.printType(value.Type)
	if value.DefaultValue != nil {
		p.WriteString(" = ")
		p.printValue(value.DefaultValue)
	}
	p.printDirectives(value.Directives)
}

func (p *printer) printEnumValueDefinition(value *EnumValueDefinition) {
	p.printDescription(value.Description)
	p.WriteString(value.Value.Value())
	p.printDirectives(value.Directives)
}

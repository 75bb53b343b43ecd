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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/botobag/sdlgraph/graphql"

	jsoniter "github.com/json-iterator/go"
)

var dumpJSONConfig = jsoniter.Config{
	IndentionStep: 2,
	SortMapKeys:   true,
}.Froze()

// dumpTypes returns the types defined by the schema in sorted order. Built-in scalars and
// introspection types are excluded.
func dumpTypes(schema *graphql.Schema) []graphql.Type {
	typeMap := schema.TypeMap()
	names := typeMap.Names()
	types := make([]graphql.Type, 0, len(names))
	for _, name := range names {
		t := typeMap.Lookup(name)
		if graphql.IsSpecifiedScalarType(t) || graphql.IsIntrospectionType(t) {
			continue
		}
		types = append(types, t)
	}
	return types
}

// dumpDirectives returns the directives defined by the schema. Standard directives are excluded.
func dumpDirectives(schema *graphql.Schema) []*graphql.Directive {
	var directives []*graphql.Directive
	for _, directive := range schema.Directives() {
		if !graphql.IsStandardDirective(directive) {
			directives = append(directives, directive)
		}
	}
	return directives
}

// Dump writes the type graph of schema to w in the given format.
func Dump(w io.Writer, schema *graphql.Schema, format string) error {
	switch format {
	case FormatJSON:
		return dumpJSON(w, schema)
	case FormatText:
		return dumpText(w, schema)
	}
	return fmt.Errorf("unknown output format %q", format)
}

//===----------------------------------------------------------------------------------------====//
// JSON
//===----------------------------------------------------------------------------------------====//

func dumpJSON(w io.Writer, schema *graphql.Schema) error {
	stream := jsoniter.NewStream(dumpJSONConfig, w, 4096)

	stream.WriteObjectStart()

	writeRootType(stream, "query", schema.Query())
	stream.WriteMore()
	writeRootType(stream, "mutation", schema.Mutation())
	stream.WriteMore()
	writeRootType(stream, "subscription", schema.Subscription())
	stream.WriteMore()

	stream.WriteObjectField("types")
	stream.WriteArrayStart()
	for i, t := range dumpTypes(schema) {
		if i > 0 {
			stream.WriteMore()
		}
		if err := writeType(stream, t); err != nil {
			return err
		}
	}
	stream.WriteArrayEnd()
	stream.WriteMore()

	stream.WriteObjectField("directives")
	stream.WriteArrayStart()
	for i, directive := range dumpDirectives(schema) {
		if i > 0 {
			stream.WriteMore()
		}
		writeDirective(stream, directive)
	}
	stream.WriteArrayEnd()

	stream.WriteObjectEnd()
	stream.WriteRaw("\n")

	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

func writeRootType(stream *jsoniter.Stream, field string, object graphql.Object) {
	stream.WriteObjectField(field)
	if object == nil {
		stream.WriteNil()
		return
	}
	stream.WriteString(object.Name())
}

func writeDescription(stream *jsoniter.Stream, description string) {
	if len(description) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("description")
		stream.WriteString(description)
	}
}

func writeDeprecation(stream *jsoniter.Stream, deprecation *graphql.Deprecation) {
	if deprecation != nil {
		stream.WriteMore()
		stream.WriteObjectField("deprecationReason")
		stream.WriteString(deprecation.Reason)
	}
}

func writeNames(stream *jsoniter.Stream, field string, names []string) {
	stream.WriteMore()
	stream.WriteObjectField(field)
	stream.WriteArrayStart()
	for i, name := range names {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(name)
	}
	stream.WriteArrayEnd()
}

func writeType(stream *jsoniter.Stream, t graphql.Type) error {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(graphql.NamedTypeOf(t).(graphql.TypeWithName).Name())
	stream.WriteMore()
	stream.WriteObjectField("kind")
	stream.WriteString(string(graphql.TypeKindOf(t)))

	if t, ok := t.(graphql.TypeWithDescription); ok {
		writeDescription(stream, t.Description())
	}

	switch t := t.(type) {
	case graphql.Object:
		interfaces, err := t.Interfaces()
		if err != nil {
			return err
		}
		names := make([]string, len(interfaces))
		for i, iface := range interfaces {
			names[i] = iface.Name()
		}
		writeNames(stream, "interfaces", names)

		fields, err := t.Fields()
		if err != nil {
			return err
		}
		writeFields(stream, fields)

	case graphql.Interface:
		fields, err := t.Fields()
		if err != nil {
			return err
		}
		writeFields(stream, fields)

	case graphql.Union:
		possibleTypes := t.PossibleTypes()
		names := make([]string, len(possibleTypes))
		for i, possibleType := range possibleTypes {
			names[i] = possibleType.Name()
		}
		writeNames(stream, "possibleTypes", names)

	case graphql.Enum:
		values := t.Values()
		stream.WriteMore()
		stream.WriteObjectField("values")
		stream.WriteArrayStart()
		for i, name := range graphql.ValueNames(t) {
			value := values.Lookup(name)
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("name")
			stream.WriteString(name)
			writeDescription(stream, value.Description())
			writeDeprecation(stream, value.Deprecation())
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()

	case graphql.InputObject:
		fields, err := t.Fields()
		if err != nil {
			return err
		}
		writeArgs(stream, "fields", fields)
	}

	stream.WriteObjectEnd()
	return nil
}

func writeFields(stream *jsoniter.Stream, fields graphql.FieldMap) {
	stream.WriteMore()
	stream.WriteObjectField("fields")
	stream.WriteArrayStart()
	for i, name := range fields.Names() {
		field := fields.Lookup(name)
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		stream.WriteObjectField("name")
		stream.WriteString(name)
		stream.WriteMore()
		stream.WriteObjectField("type")
		stream.WriteString(graphql.Inspect(field.Type()))
		writeDescription(stream, field.Description())
		if len(field.Args()) > 0 {
			writeArgs(stream, "args", field.Args())
		}
		writeDeprecation(stream, field.Deprecation())
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()
}

func writeArgs(stream *jsoniter.Stream, field string, args graphql.ArgumentMap) {
	stream.WriteMore()
	stream.WriteObjectField(field)
	stream.WriteArrayStart()
	for i, name := range args.Names() {
		arg := args.Lookup(name)
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		stream.WriteObjectField("name")
		stream.WriteString(name)
		stream.WriteMore()
		stream.WriteObjectField("type")
		stream.WriteString(graphql.Inspect(arg.Type()))
		writeDescription(stream, arg.Description())
		if arg.HasDefaultValue() {
			stream.WriteMore()
			stream.WriteObjectField("defaultValue")
			stream.WriteVal(arg.DefaultValue())
		}
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()
}

func writeDirective(stream *jsoniter.Stream, directive *graphql.Directive) {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(directive.Name())
	writeDescription(stream, directive.Description())

	locations := make([]string, len(directive.Locations()))
	for i, location := range directive.Locations() {
		locations[i] = string(location)
	}
	writeNames(stream, "locations", locations)

	if len(directive.Args()) > 0 {
		writeArgs(stream, "args", directive.Args())
	}
	stream.WriteObjectEnd()
}

//===----------------------------------------------------------------------------------------====//
// Text
//===----------------------------------------------------------------------------------------====//

// textWriter prints the type graph in a form that resembles the schema language.
type textWriter struct {
	w   *bufio.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) description(indent string, description string) {
	if len(description) == 0 {
		return
	}
	for _, line := range strings.Split(description, "\n") {
		tw.printf("%s# %s\n", indent, line)
	}
}

func (tw *textWriter) deprecation(deprecation *graphql.Deprecation) {
	if deprecation != nil {
		tw.printf(" @deprecated(reason: %q)", deprecation.Reason)
	}
}

func (tw *textWriter) args(args graphql.ArgumentMap) {
	if len(args) == 0 {
		return
	}
	tw.printf("(")
	for i, name := range args.Names() {
		if i > 0 {
			tw.printf(", ")
		}
		tw.inputValue(args.Lookup(name))
	}
	tw.printf(")")
}

func (tw *textWriter) inputValue(arg *graphql.Argument) {
	tw.printf("%s: %s", arg.Name(), graphql.Inspect(arg.Type()))
	if arg.HasDefaultValue() {
		value, err := jsoniter.MarshalToString(arg.DefaultValue())
		if err != nil {
			tw.err = err
			return
		}
		tw.printf(" = %s", value)
	}
}

func (tw *textWriter) fields(fields graphql.FieldMap) {
	tw.printf(" {\n")
	for _, name := range fields.Names() {
		field := fields.Lookup(name)
		tw.description("  ", field.Description())
		tw.printf("  %s", name)
		tw.args(field.Args())
		tw.printf(": %s", graphql.Inspect(field.Type()))
		tw.deprecation(field.Deprecation())
		tw.printf("\n")
	}
	tw.printf("}\n")
}

func (tw *textWriter) namedType(t graphql.Type) error {
	if t, ok := t.(graphql.TypeWithDescription); ok {
		tw.description("", t.Description())
	}

	switch t := t.(type) {
	case graphql.Scalar:
		tw.printf("scalar %s\n", t.Name())

	case graphql.Object:
		tw.printf("type %s", t.Name())
		interfaces, err := t.Interfaces()
		if err != nil {
			return err
		}
		for i, iface := range interfaces {
			if i == 0 {
				tw.printf(" implements %s", iface.Name())
			} else {
				tw.printf(" & %s", iface.Name())
			}
		}
		fields, err := t.Fields()
		if err != nil {
			return err
		}
		tw.fields(fields)

	case graphql.Interface:
		tw.printf("interface %s", t.Name())
		fields, err := t.Fields()
		if err != nil {
			return err
		}
		tw.fields(fields)

	case graphql.Union:
		names := make([]string, len(t.PossibleTypes()))
		for i, possibleType := range t.PossibleTypes() {
			names[i] = possibleType.Name()
		}
		tw.printf("union %s = %s\n", t.Name(), strings.Join(names, " | "))

	case graphql.Enum:
		tw.printf("enum %s {\n", t.Name())
		values := t.Values()
		for _, name := range graphql.ValueNames(t) {
			value := values.Lookup(name)
			tw.description("  ", value.Description())
			tw.printf("  %s", name)
			tw.deprecation(value.Deprecation())
			tw.printf("\n")
		}
		tw.printf("}\n")

	case graphql.InputObject:
		tw.printf("input %s {\n", t.Name())
		fields, err := t.Fields()
		if err != nil {
			return err
		}
		for _, name := range fields.Names() {
			field := fields.Lookup(name)
			tw.description("  ", field.Description())
			tw.printf("  ")
			tw.inputValue(field)
			tw.printf("\n")
		}
		tw.printf("}\n")
	}

	return tw.err
}

func dumpText(w io.Writer, schema *graphql.Schema) error {
	tw := &textWriter{
		w: bufio.NewWriter(w),
	}

	tw.printf("schema {\n")
	for _, root := range []struct {
		operation string
		object    graphql.Object
	}{
		{"query", schema.Query()},
		{"mutation", schema.Mutation()},
		{"subscription", schema.Subscription()},
	} {
		if root.object != nil {
			tw.printf("  %s: %s\n", root.operation, root.object.Name())
		}
	}
	tw.printf("}\n")

	for _, t := range dumpTypes(schema) {
		tw.printf("\n")
		if err := tw.namedType(t); err != nil {
			return err
		}
	}

	for _, directive := range dumpDirectives(schema) {
		tw.printf("\n")
		tw.description("", directive.Description())
		tw.printf("directive @%s", directive.Name())
		tw.args(directive.Args())
		locations := make([]string, len(directive.Locations()))
		for i, location := range directive.Locations() {
			locations[i] = string(location)
		}
		tw.printf(" on %s\n", strings.Join(locations, " | "))
	}

	if tw.err != nil {
		return tw.err
	}
	return tw.w.Flush()
}

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

package value_test

import (
	"math"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/internal/value"
	"github.com/botobag/sdlgraph/graphql/parser"
	"github.com/botobag/sdlgraph/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func valueFromAST(t graphql.Type, valueText string) (interface{}, error) {
	// Parse value.
	astValue, err := parser.ParseValue(token.NewSource(&token.SourceConfig{
		Body: token.SourceBody(valueText),
	}))
	Expect(err).ShouldNot(HaveOccurred())

	return value.CoerceFromAST(astValue, t)
}

type testCase struct {
	valueText     string
	hasError      bool
	expectedValue interface{}
}

func runTestCasesForType(t graphql.Type, tests []testCase) {
	for _, test := range tests {
		if test.hasError {
			_, err := valueFromAST(t, test.valueText)
			Expect(err).Should(HaveOccurred(), "value = %s", test.valueText)
		} else if test.expectedValue == nil {
			// Gomega: Refusing to compare <nil> to <nil>. Be explicit and use BeNil() instead.
			Expect(valueFromAST(t, test.valueText)).Should(BeNil(), "value = %s", test.valueText)
		} else {
			Expect(valueFromAST(t, test.valueText)).Should(Equal(test.expectedValue), "value = %s", test.valueText)
		}
	}
}

var _ = Describe("CoerceFromAST", func() {
	It("rejects empty input", func() {
		_, err := value.CoerceFromAST(nil, graphql.Boolean())
		Expect(err).Should(HaveOccurred())
	})

	It("converts according to input coercion rules", func() {
		Expect(valueFromAST(graphql.Boolean(), "true")).Should(Equal(true))
		Expect(valueFromAST(graphql.Boolean(), "false")).Should(Equal(false))
		Expect(valueFromAST(graphql.Int(), "123")).Should(Equal(123))
		Expect(valueFromAST(graphql.Float(), "123")).Should(Equal(123.0))
		Expect(valueFromAST(graphql.Float(), "123.456")).Should(Equal(123.456))
		Expect(valueFromAST(graphql.String(), `"abc123"`)).Should(Equal("abc123"))
		Expect(valueFromAST(graphql.ID(), "123456")).Should(Equal("123456"))
		Expect(valueFromAST(graphql.ID(), `"123456"`)).Should(Equal("123456"))
	})

	It("does not convert when input coercion rules reject a value", func() {
		tests := []struct {
			t         graphql.Type
			valueText string
		}{
			{graphql.Boolean(), "123"},
			{graphql.Int(), "123.456"},
			{graphql.Int(), "true"},
			{graphql.Int(), `"123"`},
			{graphql.Int(), "2147483648"},
			{graphql.Float(), `"123"`},
			{graphql.String(), "123"},
			{graphql.String(), "true"},
			{graphql.ID(), "123.456"},
		}

		for _, test := range tests {
			_, err := valueFromAST(test.t, test.valueText)
			Expect(err).Should(HaveOccurred(), "type = %v, value = %s", test.t, test.valueText)
		}
	})

	It("converts enum values according to input coercion rules", func() {
		testEnum, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "TestColor",
			Values: graphql.EnumValueConfigMap{
				"RED":   {Value: 1},
				"GREEN": {Value: 2},
				"BLUE":  {Value: 3},
				"NULL":  {Value: graphql.NilEnumInternalValue},
				"NAN":   {Value: math.NaN()},
				"NAMED": {},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(valueFromAST(testEnum, "RED")).Should(Equal(1))
		Expect(valueFromAST(testEnum, "BLUE")).Should(Equal(3))
		Expect(valueFromAST(testEnum, "NAMED")).Should(Equal("NAMED"))
		Expect(valueFromAST(testEnum, "null")).Should(BeNil())
		Expect(valueFromAST(testEnum, "NULL")).Should(BeNil())

		v, err := valueFromAST(testEnum, "NAN")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(math.IsNaN(v.(float64))).Should(BeTrue())

		_, err = valueFromAST(testEnum, "3")
		Expect(err).Should(HaveOccurred())
		_, err = valueFromAST(testEnum, `"BLUE"`)
		Expect(err).Should(HaveOccurred())
		_, err = valueFromAST(testEnum, "UNDEFINED")
		Expect(err).Should(HaveOccurred())
	})

	var (
		// Boolean!
		nonNullBool graphql.Type
		// [Boolean]
		listOfBool graphql.Type
		// [Boolean!]
		listOfNonNullBool graphql.Type
		// [Boolean]!
		nonNullListOfBool graphql.Type
		// [Boolean!]!
		nonNullListOfNonNullBool graphql.Type

		testInputObj graphql.Type
	)

	BeforeEach(func() {
		nonNullBool = graphql.MustNewNonNullOf(graphql.Boolean())
		listOfBool = graphql.MustNewListOf(graphql.Boolean())
		listOfNonNullBool = graphql.MustNewListOf(nonNullBool)
		nonNullListOfBool = graphql.MustNewNonNullOf(listOfBool)
		nonNullListOfNonNullBool = graphql.MustNewNonNullOf(listOfNonNullBool)

		testInputObj = graphql.MustNewInputObject(&graphql.InputObjectConfig{
			Name: "TestInput",
			Fields: func() (graphql.InputFieldMap, error) {
				return graphql.InputFieldMap{
					"int": graphql.MustNewArgument("int", &graphql.ArgumentConfig{
						Type:         graphql.Int(),
						DefaultValue: 42,
					}),
					"bool": graphql.MustNewArgument("bool", &graphql.ArgumentConfig{
						Type: graphql.Boolean(),
					}),
					"requiredBool": graphql.MustNewArgument("requiredBool", &graphql.ArgumentConfig{
						Type: nonNullBool,
					}),
				}, nil
			},
		})
	})

	It("coerces to null unless non-null", func() {
		Expect(valueFromAST(graphql.Boolean(), "null")).Should(BeNil())

		_, err := valueFromAST(nonNullBool, "null")
		Expect(err).Should(HaveOccurred())
	})

	It("coerces lists of values", func() {
		runTestCasesForType(listOfBool, []testCase{
			{"true", false, []interface{}{true}},
			{"123", true, nil},
			{"null", false, nil},
			{"[true, false]", false, []interface{}{true, false}},
			{"[true, 123]", true, nil},
			{"[true, null]", false, []interface{}{true, nil}},
			{"{ true: true }", true, nil},
		})
	})

	It("coerces non-null lists of values", func() {
		runTestCasesForType(nonNullListOfBool, []testCase{
			{"true", false, []interface{}{true}},
			{"123", true, nil},
			{"null", true, nil},
			{"[true, false]", false, []interface{}{true, false}},
			{"[true, 123]", true, nil},
			{"[true, null]", false, []interface{}{true, nil}},
		})
	})

	It("coerces lists of non-null values", func() {
		runTestCasesForType(listOfNonNullBool, []testCase{
			{"true", false, []interface{}{true}},
			{"123", true, nil},
			{"null", false, nil},
			{"[true, false]", false, []interface{}{true, false}},
			{"[true, 123]", true, nil},
			{"[true, null]", true, nil},
		})
	})

	It("coerces non-null lists of non-null values", func() {
		runTestCasesForType(nonNullListOfNonNullBool, []testCase{
			{"true", false, []interface{}{true}},
			{"123", true, nil},
			{"null", true, nil},
			{"[true, false]", false, []interface{}{true, false}},
			{"[true, 123]", true, nil},
			{"[true, null]", true, nil},
		})
	})

	It("coerces input objects according to input coercion rules", func() {
		runTestCasesForType(testInputObj, []testCase{
			{"null", false, nil},
			{"123", true, nil},
			{"[]", true, nil},
			{
				valueText: "{ int: 123, requiredBool: false }",
				hasError:  false,
				expectedValue: map[string]interface{}{
					"int":          123,
					"requiredBool": false,
				},
			},
			{
				valueText: "{ bool: true, requiredBool: false }",
				hasError:  false,
				expectedValue: map[string]interface{}{
					"int":          42,
					"bool":         true,
					"requiredBool": false,
				},
			},
			{"{ int: true, requiredBool: true }", true, nil},
			{"{ requiredBool: null }", true, nil},
			{"{ bool: true }", true, nil},
			{"{ requiredBool: true, unknown: 1 }", true, nil},
		})
	})

	It("rejects variables", func() {
		tests := []struct {
			t         graphql.Type
			valueText string
		}{
			{graphql.Boolean(), "$var"},
			{listOfBool, "[ $var ]"},
			{testInputObj, "{ requiredBool: $var }"},
		}

		for _, test := range tests {
			_, err := valueFromAST(test.t, test.valueText)
			Expect(err).Should(HaveOccurred(), "type = %v, value = %s", test.t, test.valueText)
		}

		_, err := valueFromAST(graphql.Boolean(), "$var")
		var e *graphql.Error
		Expect(err).Should(BeAssignableToTypeOf(e))
		e = err.(*graphql.Error)
		Expect(e.Message).Should(Equal(`Variable "$var" is not allowed in a constant value.`))
		Expect(e.Kind).Should(Equal(graphql.ErrKindCoercion))
		Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{{Line: 1, Column: 1}}))
	})

	It("rejects non-input type", func() {
		testObject := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "TestObject",
			Fields: func() (graphql.FieldMap, error) {
				field, err := graphql.NewField("int", &graphql.FieldConfig{
					Type: graphql.Int(),
				})
				if err != nil {
					return nil, err
				}
				return graphql.FieldMap{"int": field}, nil
			},
		})

		_, err := valueFromAST(testObject, "{ int: 2 }")
		Expect(err).Should(HaveOccurred())
	})
})

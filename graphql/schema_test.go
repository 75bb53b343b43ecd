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

package graphql_test

import (
	"errors"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
	"github.com/botobag/sdlgraph/graphql/parser"
	"github.com/botobag/sdlgraph/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func interfacesOf(interfaces ...graphql.Interface) graphql.InterfacesThunk {
	return func() ([]graphql.Interface, error) {
		return interfaces, nil
	}
}

func emptyInputFields() (graphql.InputFieldMap, error) {
	return graphql.InputFieldMap{}, nil
}

var _ = Describe("Type System: Schema", func() {
	Describe("Type Map", func() {
		It("includes interface possible types in the type map", func() {
			SomeInterface := graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name:   "SomeInterface",
				Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
			})

			SomeSubType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:       "SomeSubType",
				Interfaces: interfacesOf(SomeInterface),
				Fields:     fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name:       "Query",
					Interfaces: interfacesOf(SomeInterface),
					Fields:     fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
				}),
				Types: []graphql.Type{SomeSubType},
			})

			Expect(schema.TypeMap().Lookup("SomeInterface")).Should(Equal(SomeInterface))
			Expect(schema.TypeMap().Lookup("SomeSubType")).Should(Equal(SomeSubType))
			Expect(schema.PossibleTypes(SomeInterface)).Should(ConsistOf(
				schema.Query(),
				SomeSubType,
			))
		})

		It("includes nested input objects in the map", func() {
			NestedInputObject := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name:   "NestedInputObject",
				Fields: emptyInputFields,
			})

			SomeInputObject := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name: "SomeInputObject",
				Fields: func() (graphql.InputFieldMap, error) {
					return graphql.InputFieldMap{
						"nested": graphql.MustNewArgument("nested", &graphql.ArgumentConfig{
							Type: NestedInputObject,
						}),
					}, nil
				},
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: func() (graphql.FieldMap, error) {
						field, err := graphql.NewField("something", &graphql.FieldConfig{
							Type: graphql.String(),
							Args: graphql.ArgumentMap{
								"input": graphql.MustNewArgument("input", &graphql.ArgumentConfig{
									Type: SomeInputObject,
								}),
							},
						})
						if err != nil {
							return nil, err
						}
						return graphql.FieldMap{"something": field}, nil
					},
				}),
			})

			Expect(schema.TypeMap().Lookup("SomeInputObject")).Should(Equal(SomeInputObject))
			Expect(schema.TypeMap().Lookup("NestedInputObject")).Should(Equal(NestedInputObject))
		})

		It("includes input types only used in directives", func() {
			Foo := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name:   "Foo",
				Fields: emptyInputFields,
			})
			Bar := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name:   "Bar",
				Fields: emptyInputFields,
			})

			directive := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name: "dir",
				Locations: []graphql.DirectiveLocation{
					graphql.DirectiveLocationObject,
				},
				Args: graphql.ArgumentMap{
					"arg": graphql.MustNewArgument("arg", &graphql.ArgumentConfig{
						Type: Foo,
					}),
					"argList": graphql.MustNewArgument("argList", &graphql.ArgumentConfig{
						Type: graphql.MustNewListOf(Bar),
					}),
				},
			})

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Directives: graphql.DirectiveList{directive},
			})

			Expect(schema.TypeMap().Lookup("Foo")).Should(Equal(Foo))
			Expect(schema.TypeMap().Lookup("Bar")).Should(Equal(Bar))
		})

		It("contains the specified scalars and the introspection types", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{})

			for _, scalar := range graphql.SpecifiedScalarTypes() {
				Expect(schema.TypeMap().Lookup(scalar.Name())).Should(Equal(scalar))
			}
			for _, t := range graphql.IntrospectionTypes() {
				Expect(schema.TypeMap().Lookup(t.(graphql.TypeWithName).Name())).Should(Equal(t))
			}
			Expect(schema.TypeMap().Len()).Should(Equal(13))
			Expect(schema.TypeMap().Names()).Should(Equal([]string{
				"Boolean",
				"Float",
				"ID",
				"Int",
				"String",
				"__Directive",
				"__DirectiveLocation",
				"__EnumValue",
				"__Field",
				"__InputValue",
				"__Schema",
				"__Type",
				"__TypeKind",
			}))
		})

		It("reports the errors from lazy fields", func() {
			Broken := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Broken",
				Fields: func() (graphql.FieldMap, error) {
					return nil, graphql.NewError("Unknown type \"Missing\".")
				},
			})

			_, err := graphql.NewSchema(&graphql.SchemaConfig{
				Query: Broken,
			})
			Expect(err).Should(MatchError(`Unknown type "Missing".`))
		})
	})

	Describe("A Schema must contain uniquely named types", func() {
		It("rejects a Schema which redefines a built-in type", func() {
			FakeString := graphql.MustNewScalar(&graphql.ScalarConfig{
				Name: "String",
				ResultCoercer: graphql.CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
					return nil, nil
				}),
			})

			QueryType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: fieldMapOf(map[string]graphql.Type{
					"normal": graphql.String(),
					"fake":   FakeString,
				}),
			})

			_, err := graphql.NewSchema(&graphql.SchemaConfig{
				Query: QueryType,
			})
			Expect(err).Should(HaveOccurred())

			var e *graphql.Error
			Expect(errors.As(err, &e)).Should(BeTrue())
			Expect(e.Message).Should(Equal(
				"Schema must contain unique named types but contains multiple types named String."))
			Expect(e.Kind).Should(Equal(graphql.ErrKindSchema))
		})

		It("rejects a Schema which defines an object type twice", func() {
			A := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:   "SameName",
				Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
			})
			B := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:   "SameName",
				Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
			})

			_, err := graphql.NewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: fieldMapOf(map[string]graphql.Type{
						"a": A,
						"b": B,
					}),
				}),
			})

			var e *graphql.Error
			Expect(errors.As(err, &e)).Should(BeTrue())
			Expect(e.Message).Should(Equal(
				"Schema must contain unique named types but contains multiple types named SameName."))
		})
	})

	Describe("Directives", func() {
		It("adds the standard directives by default", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{})
			Expect(schema.Directives()).Should(Equal(graphql.StandardDirectives()))
		})

		It("keeps a directive that overrides a standard one", func() {
			deprecated := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name: "deprecated",
				Locations: []graphql.DirectiveLocation{
					graphql.DirectiveLocationFieldDefinition,
				},
			})
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Directives: graphql.DirectiveList{deprecated},
			})
			Expect(schema.Directives()).Should(HaveLen(3))
			Expect(schema.Directives().Lookup("deprecated")).Should(BeIdenticalTo(deprecated))
			Expect(schema.Directives().Lookup("skip")).Should(BeIdenticalTo(graphql.SkipDirective()))
		})

		It("excludes the standard directives on request", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				ExcludeStandardDirectives: true,
			})
			Expect(schema.Directives()).Should(BeEmpty())
		})
	})

	Describe("TypeFromAST", func() {
		var schema *graphql.Schema

		BeforeEach(func() {
			schema = graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name:   "Query",
					Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
				}),
			})
		})

		parseType := func(s string) ast.Type {
			t, err := parser.ParseType(token.NewSource(&token.SourceConfig{
				Body: token.SourceBody(s),
			}))
			Expect(err).ShouldNot(HaveOccurred())
			return t
		}

		It("resolves wrapped named types", func() {
			tests := []struct {
				typeRef  string
				expected string
			}{
				{"Query", "Query"},
				{"[String]", "[String]"},
				{"[Int!]!", "[Int!]!"},
				{"[[Boolean]!]", "[[Boolean]!]"},
			}

			for _, test := range tests {
				t := schema.TypeFromAST(parseType(test.typeRef))
				Expect(t).ShouldNot(BeNil(), "%s", test.typeRef)
				Expect(t.String()).Should(Equal(test.expected))
			}

			Expect(schema.TypeFromAST(parseType("String"))).Should(BeIdenticalTo(graphql.String()))
		})

		It("returns nil for an unknown type", func() {
			Expect(schema.TypeFromAST(parseType("[Unknown!]"))).Should(BeNil())
		})
	})
})

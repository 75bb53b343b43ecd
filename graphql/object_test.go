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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Object", func() {
	var InterfaceType graphql.Interface

	BeforeEach(func() {
		var err error
		InterfaceType, err = graphql.NewInterface(&graphql.InterfaceConfig{
			Name:   "Interface",
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
		Expect(err).ShouldNot(HaveOccurred())
	})

	// graphql-js/src/type/__tests__/definition-test.js
	It("defines an object type with deprecated field", func() {
		TypeWithDeprecatedField, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "foo",
			Fields: func() (graphql.FieldMap, error) {
				bar, err := graphql.NewField("bar", &graphql.FieldConfig{
					Type: graphql.String(),
					Deprecation: &graphql.Deprecation{
						Reason: "A terrible reason",
					},
				})
				if err != nil {
					return nil, err
				}
				return graphql.FieldMap{"bar": bar}, nil
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		fields, err := TypeWithDeprecatedField.Fields()
		Expect(err).ShouldNot(HaveOccurred())

		bar := fields.Lookup("bar")
		Expect(bar).ShouldNot(BeNil())
		Expect(bar.Type()).Should(Equal(graphql.String()))
		Expect(bar.Deprecation()).Should(Equal(&graphql.Deprecation{
			Reason: "A terrible reason",
		}))
		Expect(bar.Deprecation().Defined()).Should(BeTrue())
		Expect(bar.Name()).Should(Equal("bar"))
		Expect(bar.Args()).Should(BeEmpty())
	})

	It("accepts an Object type with interfaces", func() {
		objType, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "SomeObject",
			Interfaces: func() ([]graphql.Interface, error) {
				return []graphql.Interface{InterfaceType}, nil
			},
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objType.Interfaces()).Should(Equal([]graphql.Interface{InterfaceType}))
	})

	It("accepts empty interfaces", func() {
		objType, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "SomeObjectWithoutInterfaces",
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
		Expect(err).ShouldNot(HaveOccurred())

		interfaces, err := objType.Interfaces()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(interfaces).ShouldNot(BeNil())
		Expect(interfaces).Should(BeEmpty())
	})

	It("rejects an Object type without name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
		Expect(err).Should(MatchError("Must provide name for Object."))
	})

	It("rejects an Object type without fields thunk", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "SomeObject",
		})
		Expect(err).Should(MatchError("SomeObject fields must be a function that returns a FieldMap."))
	})

	It("rejects a field with an input type", func() {
		input := graphql.MustNewInputObject(&graphql.InputObjectConfig{
			Name: "Input",
			Fields: func() (graphql.InputFieldMap, error) {
				return graphql.InputFieldMap{}, nil
			},
		})
		_, err := graphql.NewField("f", &graphql.FieldConfig{Type: input})
		Expect(err).Should(MatchError("The type of field f must be Output Type but got: Input."))
	})

	Describe("lazy fields", func() {
		It("does not evaluate fields until requested", func() {
			calls := 0
			objType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Lazy",
				Fields: func() (graphql.FieldMap, error) {
					calls++
					return fieldMapOf(map[string]graphql.Type{"f": graphql.String()})()
				},
			})
			Expect(calls).Should(Equal(0))

			fields1, err := objType.Fields()
			Expect(err).ShouldNot(HaveOccurred())
			fields2, err := objType.Fields()
			Expect(err).ShouldNot(HaveOccurred())

			Expect(calls).Should(Equal(1))
			Expect(fields1.Lookup("f")).Should(BeIdenticalTo(fields2.Lookup("f")))
		})

		It("allows a field to refer to its own type", func() {
			var objType graphql.Object
			objType = graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Dog",
				Fields: func() (graphql.FieldMap, error) {
					return fieldMapOf(map[string]graphql.Type{"bestFriend": objType})()
				},
			})

			fields, err := objType.Fields()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields.Lookup("bestFriend").Type()).Should(BeIdenticalTo(objType))
		})

		It("memoizes the error", func() {
			calls := 0
			objType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Broken",
				Fields: func() (graphql.FieldMap, error) {
					calls++
					return nil, errors.New("cannot build fields")
				},
			})

			_, err := objType.Fields()
			Expect(err).Should(MatchError("cannot build fields"))
			_, err = objType.Fields()
			Expect(err).Should(MatchError("cannot build fields"))
			Expect(calls).Should(Equal(1))
		})

		It("returns an error on reentrant evaluation", func() {
			var (
				objType      graphql.Object
				reentrantErr error
			)
			objType = graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Cyclic",
				Fields: func() (graphql.FieldMap, error) {
					_, reentrantErr = objType.Fields()
					return fieldMapOf(map[string]graphql.Type{"f": graphql.String()})()
				},
			})

			fields, err := objType.Fields()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields).Should(HaveKey("f"))
			Expect(reentrantErr).Should(HaveOccurred())

			var e *graphql.Error
			Expect(errors.As(reentrantErr, &e)).Should(BeTrue())
			Expect(e.Message).Should(Equal("Cyclic evaluation of fields of Cyclic."))
			Expect(e.Kind).Should(Equal(graphql.ErrKindInternal))
		})
	})
})

var _ = Describe("Interface", func() {
	It("defines an interface with lazy fields", func() {
		var iface graphql.Interface
		iface = graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name:        "Node",
			Description: "An object with an ID",
			Fields: func() (graphql.FieldMap, error) {
				return fieldMapOf(map[string]graphql.Type{
					"id":     graphql.MustNewNonNullOf(graphql.ID()),
					"parent": iface,
				})()
			},
		})

		Expect(iface.Name()).Should(Equal("Node"))
		Expect(iface.Description()).Should(Equal("An object with an ID"))
		Expect(iface.String()).Should(Equal("Node"))
		Expect(iface.ASTNode()).Should(BeNil())
		Expect(graphql.IsAbstractType(iface)).Should(BeTrue())

		fields, err := iface.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields.Names()).Should(Equal([]string{"id", "parent"}))
		Expect(fields.Lookup("parent").Type()).Should(BeIdenticalTo(iface))
	})

	It("rejects an Interface type without name", func() {
		_, err := graphql.NewInterface(&graphql.InterfaceConfig{
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
		Expect(err).Should(MatchError("Must provide name for Interface."))
	})
})

var _ = Describe("Union", func() {
	var objectType graphql.Object

	BeforeEach(func() {
		objectType = graphql.MustNewObject(&graphql.ObjectConfig{
			Name:   "Object",
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
	})

	It("accepts a Union type with possible types", func() {
		unionType, err := graphql.NewUnion(&graphql.UnionConfig{
			Name:          "SomeUnion",
			PossibleTypes: []graphql.Object{objectType},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(unionType.PossibleTypes()).Should(Equal([]graphql.Object{objectType}))
		Expect(unionType.String()).Should(Equal("SomeUnion"))
	})

	It("rejects a nil member", func() {
		_, err := graphql.NewUnion(&graphql.UnionConfig{
			Name:          "SomeUnion",
			PossibleTypes: []graphql.Object{objectType, nil},
		})
		Expect(err).Should(MatchError("Union SomeUnion may only contain Object types, it cannot contain: nil."))
	})
})

var _ = Describe("InputObject", func() {
	It("defines an input object with lazy fields", func() {
		var input graphql.InputObject
		input = graphql.MustNewInputObject(&graphql.InputObjectConfig{
			Name: "Filter",
			Fields: func() (graphql.InputFieldMap, error) {
				and, err := graphql.NewArgument("and", &graphql.ArgumentConfig{
					Type: graphql.MustNewListOf(graphql.MustNewNonNullOf(input)),
				})
				if err != nil {
					return nil, err
				}
				limit, err := graphql.NewArgument("limit", &graphql.ArgumentConfig{
					Type:         graphql.Int(),
					DefaultValue: 10,
				})
				if err != nil {
					return nil, err
				}
				return graphql.InputFieldMap{"and": and, "limit": limit}, nil
			},
		})

		Expect(graphql.IsInputType(input)).Should(BeTrue())
		Expect(graphql.IsOutputType(input)).Should(BeFalse())

		fields, err := input.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields.Names()).Should(Equal([]string{"and", "limit"}))
		Expect(fields.Lookup("and").Type().String()).Should(Equal("[Filter!]"))
		Expect(fields.Lookup("and").HasDefaultValue()).Should(BeFalse())
		Expect(fields.Lookup("limit").HasDefaultValue()).Should(BeTrue())
		Expect(fields.Lookup("limit").DefaultValue()).Should(Equal(10))
	})

	It("rejects an argument with an output type", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:   "Object",
			Fields: fieldMapOf(map[string]graphql.Type{"f": graphql.String()}),
		})
		_, err := graphql.NewArgument("a", &graphql.ArgumentConfig{Type: object})
		Expect(err).Should(MatchError("The type of argument a must be Input Type but got: Object."))
	})
})

var _ = Describe("Argument", func() {
	It("distinguishes null default value from no default value", func() {
		noDefault := graphql.MustNewArgument("a", &graphql.ArgumentConfig{
			Type: graphql.Int(),
		})
		Expect(noDefault.HasDefaultValue()).Should(BeFalse())
		Expect(noDefault.DefaultValue()).Should(BeNil())

		nullDefault := graphql.MustNewArgument("b", &graphql.ArgumentConfig{
			Type:         graphql.Int(),
			DefaultValue: graphql.NilArgumentDefaultValue,
		})
		Expect(nullDefault.HasDefaultValue()).Should(BeTrue())
		Expect(nullDefault.DefaultValue()).Should(BeNil())
	})

	It("is required when non-null without default value", func() {
		Expect(graphql.IsRequiredArgument(graphql.MustNewArgument("a", &graphql.ArgumentConfig{
			Type: graphql.MustNewNonNullOf(graphql.Int()),
		}))).Should(BeTrue())

		Expect(graphql.IsRequiredArgument(graphql.MustNewArgument("a", &graphql.ArgumentConfig{
			Type:         graphql.MustNewNonNullOf(graphql.Int()),
			DefaultValue: 1,
		}))).Should(BeFalse())

		Expect(graphql.IsRequiredArgument(graphql.MustNewArgument("a", &graphql.ArgumentConfig{
			Type: graphql.Int(),
		}))).Should(BeFalse())
	})
})

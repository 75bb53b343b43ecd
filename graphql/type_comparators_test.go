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
	"github.com/botobag/sdlgraph/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// graphql-js/src/utilities/__tests__/typeComparators-test.js@8c96dc8
var _ = Describe("TypeComparators", func() {
	Describe("graphql.IsEqualType", func() {
		It("same reference are equal", func() {
			Expect(graphql.IsEqualType(graphql.String(), graphql.String())).Should(BeTrue())
		})

		It("int and float are not equal", func() {
			Expect(graphql.IsEqualType(graphql.Int(), graphql.Float())).Should(BeFalse())
		})

		It("lists of same type are equal", func() {
			Expect(graphql.IsEqualType(
				graphql.MustNewListOf(graphql.Int()),
				graphql.MustNewListOf(graphql.Int()),
			)).Should(BeTrue())
		})

		It("lists is not equal to item", func() {
			Expect(graphql.IsEqualType(graphql.MustNewListOf(graphql.Int()), graphql.Int())).Should(BeFalse())
		})

		It("non-null of same type are equal", func() {
			Expect(graphql.IsEqualType(
				graphql.MustNewNonNullOf(graphql.Int()),
				graphql.MustNewNonNullOf(graphql.Int()),
			)).Should(BeTrue())
		})

		It("non-null is not equal to nullable", func() {
			Expect(graphql.IsEqualType(graphql.MustNewNonNullOf(graphql.Int()), graphql.Int())).Should(BeFalse())
		})
	})

	Describe("graphql.IsTypeSubTypeOf", func() {
		testSchema := func(fieldType graphql.Type) *graphql.Schema {
			return graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name:   "Query",
					Fields: fieldMapOf(map[string]graphql.Type{"field": fieldType}),
				}),
			})
		}

		It("same reference is subtype", func() {
			schema := testSchema(graphql.String())
			Expect(graphql.IsTypeSubTypeOf(schema, graphql.String(), graphql.String())).Should(BeTrue())
		})

		It("int is not subtype of float", func() {
			schema := testSchema(graphql.String())
			Expect(graphql.IsTypeSubTypeOf(schema, graphql.Int(), graphql.Float())).Should(BeFalse())
		})

		It("non-null is subtype of nullable", func() {
			schema := testSchema(graphql.String())
			Expect(
				graphql.IsTypeSubTypeOf(schema, graphql.MustNewNonNullOf(graphql.Int()), graphql.Int()),
			).Should(BeTrue())
		})

		It("nullable is not subtype of non-null", func() {
			schema := testSchema(graphql.String())
			Expect(
				graphql.IsTypeSubTypeOf(schema, graphql.Int(), graphql.MustNewNonNullOf(graphql.Int())),
			).Should(BeFalse())
		})

		It("item is not subtype of list", func() {
			schema := testSchema(graphql.String())
			Expect(
				graphql.IsTypeSubTypeOf(schema, graphql.Int(), graphql.MustNewListOf(graphql.Int())),
			).Should(BeFalse())
		})

		It("list is not subtype of item", func() {
			schema := testSchema(graphql.String())
			Expect(
				graphql.IsTypeSubTypeOf(schema, graphql.MustNewListOf(graphql.Int()), graphql.Int()),
			).Should(BeFalse())
		})

		It("member is subtype of union", func() {
			member := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:   "Object",
				Fields: fieldMapOf(map[string]graphql.Type{"field": graphql.String()}),
			})
			union := graphql.MustNewUnion(&graphql.UnionConfig{
				Name:          "Union",
				PossibleTypes: []graphql.Object{member},
			})
			schema := testSchema(union)
			Expect(graphql.IsTypeSubTypeOf(schema, member, union)).Should(BeTrue())
		})

		It("implementation is subtype of interface", func() {
			iface := graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name:   "Interface",
				Fields: fieldMapOf(map[string]graphql.Type{"field": graphql.String()}),
			})
			impl := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Object",
				Interfaces: func() ([]graphql.Interface, error) {
					return []graphql.Interface{iface}, nil
				},
				Fields: fieldMapOf(map[string]graphql.Type{"field": graphql.String()}),
			})
			schema := testSchema(impl)
			Expect(graphql.IsTypeSubTypeOf(schema, impl, iface)).Should(BeTrue())
		})
	})
})

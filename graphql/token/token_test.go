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

package token_test

import (
	"github.com/botobag/sdlgraph/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	It("accepts nil Body", func() {
		source := token.NewSource(&token.SourceConfig{})
		Expect(source).ShouldNot(BeNil())
		Expect(source.Name()).Should(Equal(token.DefaultSourceName))
	})

	It("converts offset into SourceLocation", func() {
		source := token.NewSourceFromString("test", "hello")

		locations := map[token.SourceLocation]bool{}
		for pos := uint(0); pos <= 5; pos++ {
			location := source.LocationFromPos(pos)
			Expect(location.IsValid()).Should(BeTrue())
			Expect(locations).ShouldNot(HaveKey(location))
			locations[location] = true
			Expect(source.PosFromLocation(location)).Should(Equal(pos))
		}

		Expect(func() {
			source.LocationFromPos(6)
		}).Should(Panic())

		Expect(func() {
			source.PosFromLocation(token.NoSourceLocation)
		}).Should(Panic())
	})

	Describe("converts SourceLocation into line and column", func() {
		tests := []struct {
			name   string
			body   string
			pos    uint
			line   uint
			column uint
		}{
			{"first byte", "abc", 0, 1, 1},
			{"end of source", "abc", 3, 1, 4},
			{"after line feed", "a\nbc", 3, 2, 2},
			{"line feed belongs to its line", "a\nbc", 1, 1, 2},
			{"carriage return as newline", "a\rb", 2, 2, 1},
			{"carriage return with line feed as one newline", "a\r\nb", 3, 2, 1},
			{"line feed of CRLF stays on its line", "a\r\nb", 2, 1, 3},
			{"line feed with carriage return as two newlines", "a\n\rb", 3, 3, 1},
			{"many empty lines", "\n\n\n\n", 4, 5, 1},
		}

		for _, test := range tests {
			test := test
			It(test.name, func() {
				source := token.NewSourceFromString("test", test.body)
				Expect(source.LocationInfoOf(source.LocationFromPos(test.pos))).Should(Equal(token.SourceLocationInfo{
					Name:   "test",
					Line:   test.line,
					Column: test.column,
				}))
			})
		}
	})

	It("applies line and column offsets", func() {
		source := token.NewSource(&token.SourceConfig{
			Name:         "Foo.graphql",
			Body:         token.SourceBody("abc\ndef"),
			LineOffset:   40,
			ColumnOffset: 10,
		})
		Expect(source.LocationInfoOf(source.LocationFromPos(5))).Should(Equal(token.SourceLocationInfo{
			Name:   "Foo.graphql",
			Line:   42,
			Column: 12,
		}))
	})

	It("accepts invalid SourceLocation", func() {
		source := token.NewSourceFromString("test", "test source")
		Expect(source.LocationInfoOf(token.NoSourceLocation)).Should(Equal(token.SourceLocationInfo{
			Name: "test",
		}))
	})
})

var _ = Describe("Token", func() {
	It("describes itself", func() {
		Expect((&token.Token{Kind: token.KindName, Value: "foo"}).Description()).Should(Equal(`Name "foo"`))
		Expect((&token.Token{Kind: token.KindBang}).Description()).Should(Equal("!"))
		Expect((&token.Token{Kind: token.KindComment, Value: " note"}).Description()).Should(Equal("Comment"))
	})

	It("prints kind names", func() {
		Expect(token.KindSOF.String()).Should(Equal("<SOF>"))
		Expect(token.KindBlockString.String()).Should(Equal("BlockString"))
		Expect(token.Kind(0).String()).Should(Equal("<unknown token kind 0>"))
	})

	It("identifies comment", func() {
		var tok *token.Token
		Expect(tok.IsComment()).Should(BeFalse())
		Expect((&token.Token{Kind: token.KindComment}).IsComment()).Should(BeTrue())
	})
})

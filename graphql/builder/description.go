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

package builder

import (
	"strings"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
	"github.com/botobag/sdlgraph/graphql/token"
)

// Description returns the description of node. The explicit description always wins. Otherwise,
// when LegacyCommentDescriptions is enabled, the block of comments right before the node is used.
// The second result is false if the node has no description.
func (b *Builder) Description(node ast.DescribableNode) (string, bool) {
	if isNil(node) {
		return "", false
	}

	if description := node.GetDescription(); !description.IsNil() {
		return description.Value(), true
	}

	if !b.options.LegacyCommentDescriptions {
		return "", false
	}

	rawValue, ok := leadingCommentBlock(node.TokenRange().First)
	if !ok {
		return "", false
	}

	description := b.options.Dedent("\n" + rawValue)
	if len(description) == 0 {
		return "", false
	}
	return description, true
}

// leadingCommentBlock collects the comments on the lines right before first. A blank line ends the
// block and so does a comment that shares its line with a preceding token.
func leadingCommentBlock(first *token.Token) (string, bool) {
	if first == nil {
		return "", false
	}

	var comments []string
	for tok := first.Prev; tok.IsComment() &&
		tok.Next != nil &&
		tok.Prev != nil &&
		tok.Line+1 == tok.Next.Line &&
		tok.Line != tok.Prev.Line; tok = tok.Prev {
		comments = append(comments, tok.Value)
	}

	if len(comments) == 0 {
		return "", false
	}

	// Restore source order.
	for i, j := 0, len(comments)-1; i < j; i, j = i+1, j-1 {
		comments[i], comments[j] = comments[j], comments[i]
	}
	return strings.Join(comments, "\n"), true
}

// DeprecationReason returns the deprecation specified by the @deprecated directive in directives
// or nil if there's none.
func (b *Builder) DeprecationReason(directives ast.Directives) (*graphql.Deprecation, error) {
	values, err := b.options.DirectiveValues(graphql.DeprecatedDirective(), directives)
	if err != nil {
		return nil, newError("builder.DeprecationReason", "Invalid @deprecated directive.", err,
			directives.Lookup(graphql.DeprecatedDirective().Name()))
	}
	if values == nil {
		return nil, nil
	}

	deprecation := &graphql.Deprecation{}
	if reason, ok := values["reason"].(string); ok {
		deprecation.Reason = reason
	}
	return deprecation, nil
}

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

// Package graphql provides the GraphQL type model that schema documents are built into: named types
// (Scalar, Object, Interface, Union, Enum and InputObject), the wrapping types List and NonNull,
// fields, arguments and directives. It also provides the built-in scalars, the standard
// directives, the introspection types, a Schema that collects all of them, and the Error type shared
// by the other packages in the module.
//
// Lazy Fields
//
// Object, Interface and InputObject take their fields (and an Object its interfaces) as thunks.
// A thunk runs when the fields are first requested rather than when the type is created, so a
// type can be created before the types its fields refer to exist. This is how types that depend on
// each other, or on themselves, are defined. A thunk runs at most once. Its result, including an
// error, is memoized. A thunk that ends up requesting its own result gets an error instead of
// recursing forever.
package graphql

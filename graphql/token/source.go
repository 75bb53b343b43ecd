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

package token

import (
	"sort"
	"sync"
	"unicode/utf8"
)

// SourceBody contains contents of a GraphQL document in a byte sequence.
type SourceBody []byte

// RuneAt decodes a rune at given pos. It also returns the number of bytes occupied by the rune.
// Return -1 as the rune when pos is at or beyond the end of body.
func (body SourceBody) RuneAt(pos uint) (rune, uint) {
	if uint(len(body)) <= pos {
		return -1, 0
	}

	// Fast path: characters below Runeself are represented as themselves in a single byte.
	c := body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}

	r, n := utf8.DecodeRune(body[pos:])
	return r, uint(n)
}

// At returns the byte in the source at given position. Return 0 if the given position is out of
// body's range.
func (body SourceBody) At(pos uint) byte {
	if body.Size() <= pos {
		return 0
	}
	return body[pos]
}

// Size returns the body size in bytes.
func (body SourceBody) Size() uint {
	return uint(len(body))
}

// SourceConfig specifies configuration of a Source.
type SourceConfig struct {
	Body SourceBody

	// `Name`, `LineOffset` and `ColumnOffset` are optional. They are useful for clients who store
	// GraphQL documents in source files. For example, if the GraphQL input starts at line 40 in a
	// file named Foo.graphql, it might be useful for `Name` to be "Foo.graphql" with location
	// information `LineOffset: 40` and `ColumnOffset: 0`. Both offsets are 0-indexed.
	Name         string
	LineOffset   uint
	ColumnOffset uint
}

// Source represent a GraphQL source text.
type Source struct {
	config SourceConfig

	// Byte positions at which each line begins. Computed on the first call to LocationInfoOf.
	lineStartsOnce sync.Once
	lineStarts     []uint
}

// DefaultSourceName is used when SourceConfig doesn't specify a name.
const DefaultSourceName = "GraphQL SDL"

// NewSource initializes a Source instance from given config.
func NewSource(config *SourceConfig) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = DefaultSourceName
	}
	return source
}

// NewSourceFromString is a shorthand to create a Source with the given name and body.
func NewSourceFromString(name string, body string) *Source {
	return NewSource(&SourceConfig{
		Name: name,
		Body: SourceBody(body),
	})
}

// Body returns source.config.Body.
func (source *Source) Body() SourceBody {
	return source.config.Body
}

// Name returns source.config.Name.
func (source *Source) Name() string {
	return source.config.Name
}

// LineOffset returns source.config.LineOffset.
func (source *Source) LineOffset() uint {
	return source.config.LineOffset
}

// ColumnOffset returns source.config.ColumnOffset.
func (source *Source) ColumnOffset() uint {
	return source.config.ColumnOffset
}

// LocationFromPos returns a SourceLocation that represent the location for given position in the
// body.
func (source *Source) LocationFromPos(bytePos uint) SourceLocation {
	if bytePos > source.Body().Size() {
		panic("illegal byte position value")
	}
	return SourceLocation(bytePos + 1)
}

// PosFromLocation is a reverse operation of LocationFromPos. It converts the given SourceLocation
// to the byte position in the source which is a 0-based offset relative to the beginning of the
// source body.
func (source *Source) PosFromLocation(location SourceLocation) uint {
	if !location.IsValid() || uint(location) > (source.Body().Size()+1) {
		panic("illegal location value")
	}
	return uint(location) - 1
}

// computeLineStarts scans the body once for line terminators ("\r\n", "\r" or "\n").
func (source *Source) computeLineStarts() {
	body := source.Body()
	size := body.Size()
	lineStarts := []uint{0}
	for i := uint(0); i < size; i++ {
		switch body[i] {
		case '\r':
			if i+1 < size && body[i+1] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, i+1)
		case '\n':
			lineStarts = append(lineStarts, i+1)
		}
	}
	source.lineStarts = lineStarts
}

// LocationInfoOf computes and returns a SourceLocationInfo for a given SourceLocation. A byte that
// is part of a line terminator belongs to the line it terminates.
func (source *Source) LocationInfoOf(loc SourceLocation) SourceLocationInfo {
	// Handle invalid SourceLocation (NoSourceLocation). This may happen when querying location for
	// special token like SOF which inherently has no source location.
	if !loc.IsValid() {
		return SourceLocationInfo{
			Name: source.Name(),
		}
	}

	source.lineStartsOnce.Do(source.computeLineStarts)

	position := uint(loc) - 1
	if size := source.Body().Size(); position > size {
		position = size
	}

	// Find the last line that starts at or before position.
	lineStarts := source.lineStarts
	line := sort.Search(len(lineStarts), func(i int) bool {
		return lineStarts[i] > position
	}) - 1

	return SourceLocationInfo{
		Name:   source.Name(),
		Line:   source.LineOffset() + uint(line) + 1,
		Column: source.ColumnOffset() + position - lineStarts[line] + 1,
	}
}

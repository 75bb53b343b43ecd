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

package lexer

import (
	"regexp"
	"strings"
)

var lineTerminatorRegexp = regexp.MustCompile("\r\n|[\n\r]")

// BlockStringValue produces the value of a block string from its raw value by removing the common
// indentation of all lines but the first and stripping leading and trailing blank lines. The same
// transformation is applied to the text collected from comment descriptions.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#BlockStringValue()
func BlockStringValue(raw string) string {
	lines := lineTerminatorRegexp.Split(raw, -1)

	if indent := commonIndent(lines); indent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < indent {
				lines[i] = ""
			} else {
				lines[i] = lines[i][indent:]
			}
		}
	}

	first, last := 0, len(lines)
	for first < last && isBlank(lines[first]) {
		first++
	}
	for last > first && isBlank(lines[last-1]) {
		last--
	}

	return strings.Join(lines[first:last], "\n")
}

// commonIndent returns the smallest indentation among lines (except the first one) that contain
// non-whitespace characters. Return 0 if there's no such line.
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines[1:] {
		n := leadingWhitespaceLen(line)
		if n == len(line) {
			continue
		}
		if indent == -1 || n < indent {
			indent = n
			if indent == 0 {
				break
			}
		}
	}
	if indent < 0 {
		return 0
	}
	return indent
}

func leadingWhitespaceLen(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlank(line string) bool {
	return leadingWhitespaceLen(line) == len(line)
}

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
	"fmt"
	"strings"

	"github.com/botobag/sdlgraph/graphql"
	lexerinternal "github.com/botobag/sdlgraph/graphql/internal/lexer"
	"github.com/botobag/sdlgraph/graphql/token"
)

// Lexer is a stateful stream generator that produces tokens from a Source. Every time it is
// advanced, it returns the next non-ignored token. Comment tokens are linked into the token list so
// later passes (e.g., comment descriptions) can walk them through Token.Prev, but Advance and
// Lookahead never stop at them.
type Lexer struct {
	source *token.Source

	// The previously focused non-ignored token
	lastToken *token.Token

	// The currently focused token
	token *token.Token

	// Current offset into the source body; Moved by only consume() and consumeWhitespace().
	bytePos uint

	// This caches the value of source.Body().Size().
	bodySize uint

	// The 1-indexed line number of bytePos and the byte position at which that line begins.
	line      uint
	lineStart uint

	// Position of the token being lexed
	tokenStart  uint
	tokenLine   uint
	tokenColumn uint
}

// New initializes a Lexer for given Source object. Assuming the source lexes, the final Token
// emitted by the lexer will be of kind EOF, after which the lexer will repeatedly return the same
// EOF token whenever called.
func New(source *token.Source) *Lexer {
	startOfFileToken := &token.Token{
		Kind: token.KindSOF,
	}
	return &Lexer{
		source:    source,
		lastToken: startOfFileToken,
		token:     startOfFileToken,
		bodySize:  source.Body().Size(),
		line:      1,
	}
}

// Source returns the source being lexed.
func (lexer *Lexer) Source() *token.Source {
	return lexer.source
}

// Token returns current token.
func (lexer *Lexer) Token() *token.Token {
	return lexer.token
}

// LastToken returns the non-ignored token that was current before the last call to Advance.
func (lexer *Lexer) LastToken() *token.Token {
	return lexer.lastToken
}

// Advance the token stream to the next non-ignored token.
func (lexer *Lexer) Advance() (*token.Token, error) {
	nextToken, err := lexer.Lookahead()
	if err != nil {
		return nil, err
	}
	lexer.lastToken, lexer.token = lexer.token, nextToken
	return nextToken, nil
}

// Lookahead looks ahead and returns the next non-ignored token, but does not switch current token.
func (lexer *Lexer) Lookahead() (*token.Token, error) {
	tok := lexer.token
	if tok.Kind == token.KindEOF {
		return tok, nil
	}

	for {
		if tok.Next == nil {
			nextToken, err := lexer.lexToken(tok)
			if err != nil {
				return nil, err
			}
			tok.Next = nextToken
		}
		tok = tok.Next
		if tok.Kind != token.KindComment {
			return tok, nil
		}
	}
}

// location returns SourceLocation for the specified position in the source.
func (lexer *Lexer) location(bytePos uint) token.SourceLocation {
	return lexer.source.LocationFromPos(bytePos)
}

// peek peeks the byte at bytePos without consume it.
func (lexer *Lexer) peek() byte {
	return lexer.source.Body().At(lexer.bytePos)
}

// consume reads a byte at current bytePos and then advances the bytePos. Return the byte.
func (lexer *Lexer) consume() byte {
	b := lexer.source.Body().At(lexer.bytePos)
	if lexer.bytePos < lexer.bodySize {
		lexer.bytePos++
	}
	return b
}

// consumeLineTerminator consumes "\n", "\r" or "\r\n" at bytePos and starts a new line.
func (lexer *Lexer) consumeLineTerminator() {
	if lexer.consume() == '\r' && lexer.peek() == '\n' {
		lexer.consume()
	}
	lexer.line++
	lexer.lineStart = lexer.bytePos
}

// consumeWhitespace consumes bytes from body starting at current bytePos until it finds a
// non-whitespace character.
func (lexer *Lexer) consumeWhitespace() {
	body := lexer.source.Body()

	// Skip BOM at the beginning of source.
	if lexer.bytePos == 0 && lexer.bodySize >= 3 &&
		body[0] == '\xEF' && body[1] == '\xBB' && body[2] == '\xBF' {
		lexer.bytePos = 3
		lexer.lineStart = 3
	}

	for lexer.bytePos < lexer.bodySize {
		switch body[lexer.bytePos] {
		case '\t', ' ', ',':
			lexer.bytePos++
		case '\n', '\r':
			lexer.consumeLineTerminator()
		default:
			return
		}
	}
}

// consumeDigits consumes bytes that represent a digit (i.e., from "0" to "9"). Return the first
// non-digit byte.
func (lexer *Lexer) consumeDigits() byte {
	for {
		char := lexer.peek()
		if char < '0' || char > '9' {
			return char
		}
		lexer.consume()
	}
}

func (lexer *Lexer) charAtPosToStr(bytePos uint) string {
	if bytePos >= lexer.bodySize {
		return "<EOF>"
	}

	r, _ := lexer.source.Body().RuneAt(bytePos)

	// Print as ASCII for printable range.
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}

	// Print the escaped form. e.g. `"\\u0007"`
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (lexer *Lexer) syntaxError(bytePos uint, format string, args ...interface{}) error {
	return graphql.NewSyntaxError(lexer.source, lexer.location(bytePos), fmt.Sprintf(format, args...))
}

// newUnexpectedCharacterError creates a syntax error to indicate an unexpected character at the
// given offset was encountered.
func (lexer *Lexer) newUnexpectedCharacterError(bytePos uint) error {
	char := lexer.source.Body().At(bytePos)
	switch {
	case char < 0x0020 && char != '\t' && char != '\n' && char != '\r':
		return lexer.syntaxError(bytePos, "Cannot contain the invalid character %s.", lexer.charAtPosToStr(bytePos))
	case char == '\'':
		return lexer.syntaxError(bytePos, `Unexpected single quote character ('), did you mean to use a double quote (")?`)
	default:
		return lexer.syntaxError(bytePos, "Cannot parse the unexpected character %s.", lexer.charAtPosToStr(bytePos))
	}
}

// makeToken creates a token that spans from tokenStart to the current position.
func (lexer *Lexer) makeToken(kind token.Kind, value string, prev *token.Token) *token.Token {
	return &token.Token{
		Kind:     kind,
		Location: lexer.location(lexer.tokenStart),
		Length:   lexer.bytePos - lexer.tokenStart,
		Line:     lexer.tokenLine,
		Column:   lexer.tokenColumn,
		Value:    value,
		Prev:     prev,
	}
}

// lexToken gets the next token that follows prev from the source. This skips over whitespaces
// until it finds the next lexable token, then lexes punctuators immediately or calls the
// appropriate helper function for more complicated tokens.
func (lexer *Lexer) lexToken(prev *token.Token) (*token.Token, error) {
	lexer.consumeWhitespace()

	lexer.tokenStart = lexer.bytePos
	lexer.tokenLine = lexer.line
	lexer.tokenColumn = lexer.bytePos - lexer.lineStart + 1

	if lexer.bytePos >= lexer.bodySize {
		return lexer.makeToken(token.KindEOF, "", prev), nil
	}

	char := lexer.peek()

	var kind token.Kind
	switch char {
	case '!':
		kind = token.KindBang
	case '$':
		kind = token.KindDollar
	case '&':
		kind = token.KindAmp
	case '(':
		kind = token.KindLeftParen
	case ')':
		kind = token.KindRightParen
	case ':':
		kind = token.KindColon
	case '=':
		kind = token.KindEquals
	case '@':
		kind = token.KindAt
	case '[':
		kind = token.KindLeftBracket
	case ']':
		kind = token.KindRightBracket
	case '{':
		kind = token.KindLeftBrace
	case '|':
		kind = token.KindPipe
	case '}':
		kind = token.KindRightBrace

	case '#':
		return lexer.lexComment(prev), nil

	case '.':
		body := lexer.source.Body()
		if body.At(lexer.bytePos+1) != '.' || body.At(lexer.bytePos+2) != '.' {
			return nil, lexer.newUnexpectedCharacterError(lexer.bytePos)
		}
		lexer.bytePos += 3
		return lexer.makeToken(token.KindSpread, "", prev), nil

	case '"':
		body := lexer.source.Body()
		if body.At(lexer.bytePos+1) == '"' && body.At(lexer.bytePos+2) == '"' {
			lexer.bytePos += 3
			return lexer.lexBlockString(prev)
		}
		lexer.consume()
		return lexer.lexString(prev)

	default:
		switch {
		case char == '_' || (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z'):
			return lexer.lexName(prev), nil
		case char == '-' || (char >= '0' && char <= '9'):
			return lexer.lexNumber(prev)
		}
		return nil, lexer.newUnexpectedCharacterError(lexer.bytePos)
	}

	lexer.consume()
	return lexer.makeToken(kind, "", prev), nil
}

// lexComment reads a comment token from the source file. The token value is the text following "#"
// up to (but not including) the line terminator.
//
//	Comment ::
//		# CommentChar*
//
//	CommentChar ::
//		SourceCharacter but not LineTerminator
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Comments
func (lexer *Lexer) lexComment(prev *token.Token) *token.Token {
	// Consume #.
	lexer.consume()
	for {
		char := lexer.peek()
		if char > 0x1F || char == '\t' {
			lexer.consume()
			continue
		}
		break
	}

	value := string(lexer.source.Body()[lexer.tokenStart+1 : lexer.bytePos])
	return lexer.makeToken(token.KindComment, value, prev)
}

// lexNumber reads a number token from the source file, either a float or an int depending on
// whether a decimal point or an exponent appears.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int-Value
func (lexer *Lexer) lexNumber(prev *token.Token) (*token.Token, error) {
	char := lexer.consume()
	kind := token.KindInt

	if char == '-' {
		char = lexer.peek()
		if char < '0' || char > '9' {
			return nil, lexer.syntaxError(lexer.bytePos,
				"Invalid number, expected digit after '-' but got: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}
		lexer.consume()
	}

	if char == '0' {
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			return nil, lexer.syntaxError(lexer.bytePos,
				"Invalid number, unexpected digit after 0: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}
	} else {
		char = lexer.consumeDigits()
	}

	if char == '.' {
		kind = token.KindFloat
		lexer.consume()
		if char = lexer.peek(); char < '0' || char > '9' {
			return nil, lexer.syntaxError(lexer.bytePos,
				"Invalid number, expected digit after decimal point ('.') but got: %s.",
				lexer.charAtPosToStr(lexer.bytePos))
		}
		char = lexer.consumeDigits()
	}

	if char == 'E' || char == 'e' {
		kind = token.KindFloat
		lexer.consume()
		if char = lexer.peek(); char == '+' || char == '-' {
			lexer.consume()
		}
		if char = lexer.peek(); char < '0' || char > '9' {
			return nil, lexer.syntaxError(lexer.bytePos,
				"Invalid number, expected digit but got: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}
		lexer.consumeDigits()
	}

	value := string(lexer.source.Body()[lexer.tokenStart:lexer.bytePos])
	return lexer.makeToken(kind, value, prev), nil
}

// lexString reads a string token from the source file. The opening quote was consumed by
// lexToken.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String-Value
func (lexer *Lexer) lexString(prev *token.Token) (*token.Token, error) {
	var value strings.Builder

	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()

		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			lexer.consume()
			return lexer.makeToken(token.KindString, value.String(), prev), nil
		}

		if char < 0x0020 && char != '\t' {
			return nil, lexer.syntaxError(lexer.bytePos,
				"Invalid character within String: %s.", lexer.charAtPosToStr(lexer.bytePos))
		}

		lexer.consume()
		if char != '\\' {
			value.WriteByte(char)
			continue
		}

		escapePos := lexer.bytePos
		switch char = lexer.consume(); char {
		case '"', '\\', '/':
			value.WriteByte(char)
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')

		case 'u':
			digitsPos := lexer.bytePos
			if lexer.bodySize-digitsPos >= 4 {
				body := lexer.source.Body()
				code := uniCharCode(body[digitsPos], body[digitsPos+1], body[digitsPos+2], body[digitsPos+3])
				if code >= 0 {
					lexer.bytePos += 4
					value.WriteRune(code)
					break
				}
			}
			digitsEnd := digitsPos + 4
			if digitsEnd > lexer.bodySize {
				digitsEnd = lexer.bodySize
			}
			return nil, lexer.syntaxError(escapePos,
				"Invalid character escape sequence: \\u%s.", string(lexer.source.Body()[digitsPos:digitsEnd]))

		default:
			return nil, lexer.syntaxError(escapePos, "Invalid character escape sequence: \\%c.", char)
		}
	}

	return nil, lexer.syntaxError(lexer.bytePos, "Unterminated string.")
}

// uniCharCode converts four hexadecimal chars to the integer that the string represents. Return a
// negative number if any of the chars is not a hex digit.
func uniCharCode(a byte, b byte, c byte, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a-'A') + 10
	case a >= 'a' && a <= 'f':
		return rune(a-'a') + 10
	}
	return -1
}

// lexBlockString reads a block string token from the source file. The opening triple-quote was
// consumed by lexToken. Line terminators within the block string advance the line counter.
func (lexer *Lexer) lexBlockString(prev *token.Token) (*token.Token, error) {
	var (
		body     = lexer.source.Body()
		rawValue strings.Builder
	)

	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()
		switch {
		case char == '"' && body.At(lexer.bytePos+1) == '"' && body.At(lexer.bytePos+2) == '"':
			lexer.bytePos += 3
			return lexer.makeToken(
				token.KindBlockString,
				lexerinternal.BlockStringValue(rawValue.String()),
				prev), nil

		case char == '\\' &&
			body.At(lexer.bytePos+1) == '"' &&
			body.At(lexer.bytePos+2) == '"' &&
			body.At(lexer.bytePos+3) == '"':
			// Escaped triple-quote (\""").
			lexer.bytePos += 4
			rawValue.WriteString(`"""`)

		case char == '\n' || char == '\r':
			start := lexer.bytePos
			lexer.consumeLineTerminator()
			rawValue.Write(body[start:lexer.bytePos])

		case char < 0x0020 && char != '\t':
			return nil, lexer.syntaxError(lexer.bytePos,
				"Invalid character within String: %s.", lexer.charAtPosToStr(lexer.bytePos))

		default:
			rawValue.WriteByte(lexer.consume())
		}
	}

	return nil, lexer.syntaxError(lexer.bytePos, "Unterminated string.")
}

// lexName lexes a Name token from source.
//
//	Name ::
//		/[_A-Za-z][_0-9A-Za-z]*/
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
func (lexer *Lexer) lexName(prev *token.Token) *token.Token {
	lexer.consume()
	for {
		char := lexer.peek()
		if char == '_' ||
			(char >= '0' && char <= '9') ||
			(char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') {
			lexer.consume()
			continue
		}
		break
	}

	value := string(lexer.source.Body()[lexer.tokenStart:lexer.bytePos])
	return lexer.makeToken(token.KindName, value, prev)
}

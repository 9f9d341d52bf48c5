// Package lexical provides text-level parsing primitives built purely
// on the public surface of the combinator engine: single characters,
// literals, character classes and numeric literals over string input.
package lexical

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BenchR267/parsel/combinator"
)

// Parser is a combinator.Parser specialized to string input.
type Parser[O any] = combinator.Parser[string, O]

// CharWhere matches a single rune satisfying pred. desc names the
// expected input in error messages.
func CharWhere(desc string, pred func(rune) bool) Parser[rune] {
	return combinator.New(func(input string) combinator.Result[string, rune] {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 {
			return combinator.Failure[string, rune](combinator.Unexpected(desc, "end of input"))
		}
		if !pred(r) {
			return combinator.Failure[string, rune](combinator.Unexpected(desc, string(r)))
		}
		return combinator.Success(r, input[size:])
	})
}

// Char matches exactly the rune c.
func Char(c rune) Parser[rune] {
	return CharWhere(string(c), func(r rune) bool {
		return r == c
	})
}

// Literal matches the string s exactly.
func Literal(s string) Parser[string] {
	return combinator.New(func(input string) combinator.Result[string, string] {
		if !strings.HasPrefix(input, s) {
			got := "end of input"
			if input != "" {
				got = fmt.Sprintf("%q", head(input, len(s)))
			}
			return combinator.Failure[string, string](combinator.Unexpected(fmt.Sprintf("%q", s), got))
		}
		return combinator.Success(s, input[len(s):])
	})
}

// OneOf matches any single rune contained in chars.
func OneOf(chars string) Parser[rune] {
	return CharWhere(fmt.Sprintf("one of %q", chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// ASCII matches any single ASCII rune.
func ASCII() Parser[rune] {
	return CharWhere("ascii", func(r rune) bool {
		return r < 128
	})
}

// Letter matches a single letter.
func Letter() Parser[rune] {
	return CharWhere("letter", unicode.IsLetter)
}

// Lowercase matches a single lowercase letter.
func Lowercase() Parser[rune] {
	return CharWhere("lowercase letter", unicode.IsLower)
}

// Uppercase matches a single uppercase letter.
func Uppercase() Parser[rune] {
	return CharWhere("uppercase letter", unicode.IsUpper)
}

// Whitespace matches a single whitespace rune.
func Whitespace() Parser[rune] {
	return CharWhere("whitespace", unicode.IsSpace)
}

// Whitespaces matches one or more whitespace runes.
func Whitespaces() Parser[string] {
	return combinator.Map(combinator.AtLeastOnce(Whitespace()), func(rs []rune) string {
		return string(rs)
	})
}

// NewLine matches a single line break rune.
func NewLine() Parser[rune] {
	return CharWhere("newline", func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// head returns at most n bytes of s without splitting a rune.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

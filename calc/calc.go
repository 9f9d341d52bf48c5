// Package calc implements an arithmetic expression grammar as an
// integration consumer of the combinator engine: addition,
// subtraction, multiplication, division and parentheses over float64,
// with optional whitespace between tokens.
package calc

import (
	"fmt"

	"github.com/BenchR267/parsel/combinator"
	"github.com/BenchR267/parsel/lexical"
)

// Parser returns the expression parser. Leading whitespace is skipped;
// deciding what to do with unconsumed trailing input is left to the
// caller.
func Parser() lexical.Parser[float64] {
	return combinator.SkipThen(combinator.Many(lexical.Whitespace()), expression())
}

// Eval parses and evaluates an arithmetic expression. Input left over
// after a complete expression is an error.
func Eval(input string) (float64, error) {
	value, rest, err := Parser().Parse(input).Get()
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, combinator.Unexpected("end of input", fmt.Sprintf("%q", rest))
	}
	return value, nil
}

// expression parses term (('+' | '-') term)*.
func expression() lexical.Parser[float64] {
	return chain(term(), lexeme(lexical.OneOf("+-")))
}

// term parses factor (('*' | '/') factor)*.
func term() lexical.Parser[float64] {
	return chain(factor(), lexeme(lexical.OneOf("*/")))
}

// factor parses a number literal or a parenthesized expression. The
// recursive reference back to expression goes through Lazy so the
// grammar can be built without infinite recursion.
func factor() lexical.Parser[float64] {
	paren := combinator.SkipThen(lexeme(lexical.Char('(')),
		combinator.ThenSkip(combinator.Lazy(expression), lexeme(lexical.Char(')'))))
	return number().Or(paren)
}

// number parses a floating or integer literal. The floating form is
// tried first; otherwise "1.5" would stop after the integer part.
func number() lexical.Parser[float64] {
	integer := combinator.Map(lexical.Number(), func(n int) float64 {
		return float64(n)
	})
	return lexeme(lexical.FloatingNumber().Or(integer))
}

// lexeme skips trailing whitespace after p.
func lexeme[O any](p lexical.Parser[O]) lexical.Parser[O] {
	return combinator.ThenSkip(p, combinator.Many(lexical.Whitespace()))
}

// chain parses operand (op operand)* and folds the steps left to
// right, which keeps subtraction and division left-associative.
func chain(operand lexical.Parser[float64], op lexical.Parser[rune]) lexical.Parser[float64] {
	rest := combinator.Many(combinator.Then(op, operand))
	return combinator.Map(combinator.Then(operand, rest),
		func(p combinator.Pair[float64, []combinator.Pair[rune, float64]]) float64 {
			value := p.First
			for _, step := range p.Second {
				value = apply(value, step.First, step.Second)
			}
			return value
		})
}

func apply(a float64, op rune, b float64) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	default:
		return a / b
	}
}

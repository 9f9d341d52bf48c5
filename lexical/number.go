package lexical

import "github.com/BenchR267/parsel/combinator"

// digitValue maps a rune to its numeric value in bases up to 16, or -1
// when the rune is no digit at all.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

func digitIn(base int, desc string) Parser[int] {
	p := CharWhere(desc, func(r rune) bool {
		v := digitValue(r)
		return v >= 0 && v < base
	})
	return combinator.Map(p, digitValue)
}

// Digit matches a single decimal digit and yields its value.
func Digit() Parser[int] {
	return digitIn(10, "digit")
}

// BinaryDigit matches 0 or 1.
func BinaryDigit() Parser[int] {
	return digitIn(2, "digit 0-1")
}

// OctalDigit matches a digit between 0 and 7.
func OctalDigit() Parser[int] {
	return digitIn(8, "digit 0-7")
}

// HexDigit matches a hexadecimal digit in either case.
func HexDigit() Parser[int] {
	return digitIn(16, "hex digit")
}

// accumulate folds one or more digits left to right into a single
// value: value = value*base + digit.
func accumulate(digit Parser[int], base int) Parser[int] {
	return combinator.Map(combinator.AtLeastOnce(digit), func(digits []int) int {
		value := 0
		for _, d := range digits {
			value = value*base + d
		}
		return value
	})
}

// Number matches one or more decimal digits as an int.
func Number() Parser[int] {
	return accumulate(Digit(), 10)
}

// BinaryNumber matches a 0b-prefixed binary literal.
func BinaryNumber() Parser[int] {
	return combinator.SkipThen(Literal("0b"), accumulate(BinaryDigit(), 2))
}

// OctalNumber matches a 0o-prefixed octal literal.
func OctalNumber() Parser[int] {
	return combinator.SkipThen(Literal("0o"), accumulate(OctalDigit(), 8))
}

// HexNumber matches a 0x-prefixed hexadecimal literal.
func HexNumber() Parser[int] {
	return combinator.SkipThen(Literal("0x"), accumulate(HexDigit(), 16))
}

// FloatingNumber matches digits, a dot and more digits as a float64.
// The fractional digits are applied at descending scale, left to
// right, mirroring the integer accumulation.
func FloatingNumber() Parser[float64] {
	p := combinator.Seq3(Number(), Char('.'), combinator.AtLeastOnce(Digit()))
	return combinator.Map(p, func(t combinator.Tuple3[int, rune, []int]) float64 {
		value := float64(t.V1)
		scale := 1.0
		for _, d := range t.V3 {
			scale /= 10
			value += float64(d) * scale
		}
		return value
	})
}

package lexical

import "testing"

func TestChar(t *testing.T) {
	p := Char('a')

	t.Run("match", func(t *testing.T) {
		value, rest, err := p.Parse("abc").Get()
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if value != 'a' {
			t.Errorf("value = %q, want 'a'", value)
		}
		if rest != "bc" {
			t.Errorf("rest = %q, want %q", rest, "bc")
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		r := p.Parse("xyz")
		if r.Succeeded() {
			t.Fatal("parse succeeded, want failure")
		}
		if got, want := r.Err().Error(), "expected a, got x"; got != want {
			t.Errorf("error = %q, want %q", got, want)
		}
	})

	t.Run("end of input", func(t *testing.T) {
		r := p.Parse("")
		if got, want := r.Err().Error(), "expected a, got end of input"; got != want {
			t.Errorf("error = %q, want %q", got, want)
		}
	})
}

func TestCharChoiceBacktracks(t *testing.T) {
	p := Char('a').Or(Char('b'))

	value, rest, err := p.Parse("bcd").Get()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if value != 'b' {
		t.Errorf("value = %q, want 'b'", value)
	}
	if rest != "cd" {
		t.Errorf("rest = %q, want %q", rest, "cd")
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		input   string
		rest    string
		wantErr string
	}{
		{name: "match", literal: "0x", input: "0xFF", rest: "FF"},
		{name: "mismatch", literal: "0x", input: "0b10", wantErr: `expected "0x", got "0b"`},
		{name: "empty input", literal: "0x", input: "", wantErr: `expected "0x", got end of input`},
		{name: "short input", literal: "abc", input: "ab", wantErr: `expected "abc", got "ab"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, rest, err := Literal(tt.literal).Parse(tt.input).Get()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("parse succeeded, want failure")
				}
				if err.Error() != tt.wantErr {
					t.Errorf("error = %q, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if value != tt.literal {
				t.Errorf("value = %q, want %q", value, tt.literal)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser[rune]
		accept string
		reject string
	}{
		{name: "OneOf", parser: OneOf("+-"), accept: "+-", reject: "*a"},
		{name: "ASCII", parser: ASCII(), accept: "aZ9 ~", reject: "äß"},
		{name: "Letter", parser: Letter(), accept: "aZä", reject: "9 +"},
		{name: "Lowercase", parser: Lowercase(), accept: "az", reject: "AZ9"},
		{name: "Uppercase", parser: Uppercase(), accept: "AZ", reject: "az9"},
		{name: "Whitespace", parser: Whitespace(), accept: " \t\n", reject: "a1"},
		{name: "NewLine", parser: NewLine(), accept: "\n\r", reject: " a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.accept {
				if res := tt.parser.Parse(string(r)); res.Failed() {
					t.Errorf("rejected %q: %v", r, res.Err())
				}
			}
			for _, r := range tt.reject {
				if res := tt.parser.Parse(string(r)); res.Succeeded() {
					t.Errorf("accepted %q", r)
				}
			}
		})
	}
}

func TestASCIIError(t *testing.T) {
	r := ASCII().Parse("ä")
	if got, want := r.Err().Error(), "expected ascii, got ä"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestWhitespaces(t *testing.T) {
	value, rest, err := Whitespaces().Parse(" \t x").Get()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if value != " \t " {
		t.Errorf("value = %q, want %q", value, " \t ")
	}
	if rest != "x" {
		t.Errorf("rest = %q, want %q", rest, "x")
	}
}

func TestCharWhereMultibyte(t *testing.T) {
	p := Char('ß')

	value, rest, err := p.Parse("ße").Get()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if value != 'ß' {
		t.Errorf("value = %q, want 'ß'", value)
	}
	if rest != "e" {
		t.Errorf("rest = %q, want %q", rest, "e")
	}
}

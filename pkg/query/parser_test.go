package query

import (
	"errors"
	"testing"
)

func TestParse_Precedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"COMP", "COMP"},
		{"a|b&c", "(a | (b & c))"},
		{"a&b|c", "((a & b) | c)"},
		{"a&b&c", "((a & b) & c)"},
		{"a|b|c", "((a | b) | c)"},
		{"!a&b", "(!a & b)"},
		{"!!a", "!!a"},
		{"~Lab&~\"Programming\"", "(~Lab & ~Programming)"},
		{"\"a&b\"", "\"a&b\""},
		{"COMP1***?", "COMP1***?"},
		{"C\"*\"*", "C\"*\"*"},
		{"Lab Session", "Lab Session"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(AttrName, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, expected %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{`"unterminated`, 0},
		{`abc"def`, 3},
		{"", 0},
		{"a&", 2},
		{"a|", 2},
		{"&a", 0},
		{"a||b", 2},
		{"!", 1},
		{"~", 1},
		{"~!a", 1},
		{"a~b", 1},
		{"a!b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(AttrCode, tt.input)

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
			if se.Attribute != AttrCode {
				t.Errorf("expected attribute code, got %s", se.Attribute)
			}
			if se.Input != tt.input {
				t.Errorf("expected input %q, got %q", tt.input, se.Input)
			}
			if se.Pos != tt.pos {
				t.Errorf("expected position %d, got %d (%v)", tt.pos, se.Pos, se)
			}
		})
	}
}

func TestParse_Matching(t *testing.T) {
	tests := []struct {
		expr  string
		value string
		want  bool
	}{
		{"COMP", "COMP", true},
		{"COMP", "COMP2011", false},
		{"COMP", "comp", false},
		{"C***", "COMP", true},
		{"C***", "CIVL", true},
		{"C***", "MATH", false},
		{"C***", "CS", false},
		{"COMP1***?", "COMP1003", true},
		{"COMP1***?", "COMP1003A", true},
		{"COMP1***?", "COMP1003AB", false},
		{"COMP1***?", "COMP100", false},
		{"COMP1003A?", "COMP1003A", true},
		{"COMP1003A?", "COMP1003AX", true},
		{"COMP1003A?", "COMP1003", false},
		{"~Lab", "ACCT2010 - Lab Session", true},
		{"~Lab", "ACCT2010 - Lecture", false},
		{"~lab", "ACCT2010 - Lab Session", true},
		{"~Lab&~\"Programming\"", "Programming Lab", true},
		{"~Lab&~\"Programming\"", "Lab Session", false},
		{"\"COMP\"|\"MATH\"", "MATH", true},
		{"\"COMP\"|\"MATH\"", "CIVL", false},
		{"!COMP", "MATH", true},
		{"!COMP", "COMP", false},
		{"\"C***\"", "C***", true},
		{"\"C***\"", "COMP", false},
		{"~\"a.b\"", "xxa.byy", true},
		{"~\"a.b\"", "xxacbyy", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr+" vs "+tt.value, func(t *testing.T) {
			node, err := Parse(AttrCode, tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := node.Match([]string{tt.value}); got != tt.want {
				t.Errorf("%q matching %q = %v, expected %v", tt.expr, tt.value, got, tt.want)
			}
		})
	}
}

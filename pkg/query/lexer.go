package query

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF     tokenKind = iota
	tokText              // plain or quoted characters
	tokAnyChar           // *
	tokOptChar           // ?
	tokContain           // ~
	tokNot               // !
	tokAnd               // &
	tokOr                // |
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of filter"
	case tokText:
		return fmt.Sprintf("literal %q", t.text)
	}
	return fmt.Sprintf("%q", t.text)
}

const operatorChars = `"*?~!&|`

// lex splits a filter expression into tokens. Quoted text is returned as a
// single tokText with the quotes removed and no operators recognised inside.
func lex(input string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(input); {
		c := input[i]
		switch c {
		case '"':
			end := strings.IndexByte(input[i+1:], '"')
			if end < 0 {
				return nil, &SyntaxError{Input: input, Pos: i, Msg: "unmatched quote"}
			}
			tokens = append(tokens, token{kind: tokText, text: input[i+1 : i+1+end], pos: i})
			i += end + 2
		case '*':
			tokens = append(tokens, token{kind: tokAnyChar, text: "*", pos: i})
			i++
		case '?':
			tokens = append(tokens, token{kind: tokOptChar, text: "?", pos: i})
			i++
		case '~':
			tokens = append(tokens, token{kind: tokContain, text: "~", pos: i})
			i++
		case '!':
			tokens = append(tokens, token{kind: tokNot, text: "!", pos: i})
			i++
		case '&':
			tokens = append(tokens, token{kind: tokAnd, text: "&", pos: i})
			i++
		case '|':
			tokens = append(tokens, token{kind: tokOr, text: "|", pos: i})
			i++
		default:
			end := strings.IndexAny(input[i:], operatorChars)
			if end < 0 {
				end = len(input) - i
			}
			tokens = append(tokens, token{kind: tokText, text: input[i : i+end], pos: i})
			i += end
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(input)}), nil
}

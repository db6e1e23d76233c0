package query

import (
	"regexp"
	"strings"
)

// Node is a parsed filter expression. A node is immutable once parsed.
type Node interface {
	// Match reports whether the expression holds for a field. Fields with
	// several values (the slots of a course) match a pattern when any value does.
	Match(values []string) bool
	String() string
}

type pieceKind int

const (
	pieceText pieceKind = iota
	pieceAny
	pieceOpt
)

type piece struct {
	kind pieceKind
	text string
}

type leaf struct {
	source   string
	contains bool
	re       *regexp.Regexp
}

func newLeaf(pieces []piece, contains bool) leaf {
	var src, expr strings.Builder
	for _, pc := range pieces {
		switch pc.kind {
		case pieceText:
			src.WriteString(quoteIfNeeded(pc.text))
			expr.WriteString(regexp.QuoteMeta(pc.text))
		case pieceAny:
			src.WriteByte('*')
			expr.WriteString(".")
		case pieceOpt:
			src.WriteByte('?')
			expr.WriteString(".?")
		}
	}

	pattern := "(?s)^(?:" + expr.String() + ")$"
	if contains {
		pattern = "(?is)" + expr.String()
	}

	return leaf{
		source:   src.String(),
		contains: contains,
		re:       regexp.MustCompile(pattern),
	}
}

func (l leaf) Match(values []string) bool {
	for _, v := range values {
		if l.re.MatchString(v) {
			return true
		}
	}
	return false
}

func (l leaf) String() string {
	if l.contains {
		return "~" + l.source
	}
	return l.source
}

func quoteIfNeeded(text string) string {
	if text == "" || strings.ContainsAny(text, operatorChars) {
		return `"` + text + `"`
	}
	return text
}

type notNode struct {
	operand Node
}

func (n notNode) Match(values []string) bool {
	return !n.operand.Match(values)
}

func (n notNode) String() string {
	return "!" + n.operand.String()
}

type andNode struct {
	left, right Node
}

func (n andNode) Match(values []string) bool {
	return n.left.Match(values) && n.right.Match(values)
}

func (n andNode) String() string {
	return "(" + n.left.String() + " & " + n.right.String() + ")"
}

type orNode struct {
	left, right Node
}

func (n orNode) Match(values []string) bool {
	return n.left.Match(values) || n.right.Match(values)
}

func (n orNode) String() string {
	return "(" + n.left.String() + " | " + n.right.String() + ")"
}

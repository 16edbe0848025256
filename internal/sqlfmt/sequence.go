package sqlfmt

import "strings"

type operandState int

const (
	expectOperand operandState = iota // after a keyword, operator, comma or opener
	afterOperand                      // an expression just ended; an alias may follow
	afterAlias                        // the expression and its alias are complete
)

// level is the sequence state inside one bracket pair.
type level struct {
	state operandState
	// typ marks ARRAY<...> and STRUCT<...> parameter lists, which are not checked.
	typ bool
	// sealed brackets complete their expression on close: USING (...),
	// EXCEPT (...), REPLACE (...) and AS (...).
	sealed bool
	// nameStart is set when the last token is a name that began an
	// expression, and so may be called.
	nameStart bool
}

// operandKeywords begin an expression and cannot directly follow one.
var operandKeywords = toSet(
	"NULL", "TRUE", "FALSE", "CASE", "CAST", "EXTRACT", "EXISTS", "IF", "ARRAY",
	"STRUCT", "INTERVAL", "UNNEST",
)

// literalTypes prefix typed literals such as DATE '2020-01-01'.
var literalTypes = toSet(
	"DATE", "DATETIME", "TIME", "TIMESTAMP", "NUMERIC", "BIGNUMERIC", "DECIMAL",
	"BIGDECIMAL", "JSON",
)

// checkSequence rejects balanced token streams that still cannot parse: two
// expressions side by side, a call on something that is not a function name,
// and keywords missing the keyword or list they require. The header of a
// CREATE statement, up to its AS, is not checked.
func checkSequence(toks []Token) error {
	levels := []level{{}}
	header := false

	for i, t := range toks {
		var prev, prev2, next *Token
		if i > 0 {
			prev = &toks[i-1]
		}
		if i > 1 {
			prev2 = &toks[i-2]
		}
		if i+1 < len(toks) {
			next = &toks[i+1]
		}

		if prev == nil || prev.Kind == KindSemicolon {
			header = t.is("CREATE")
		}
		cur := &levels[len(levels)-1]
		skip := header || cur.typ

		switch t.Kind {
		case KindSemicolon:
			levels = []level{{}}
			continue

		case KindLParen, KindLBracket, KindTypeOpen:
			if !skip {
				if err := checkOpen(t, prev, cur); err != nil {
					return err
				}
			}
			levels = append(levels, level{
				typ:    cur.typ || t.Kind == KindTypeOpen,
				sealed: t.Kind == KindLParen && seals(prev),
			})
			continue

		case KindRParen, KindRBracket, KindTypeClose:
			sealed := cur.sealed
			if len(levels) > 1 {
				levels = levels[:len(levels)-1]
			}
			parent := &levels[len(levels)-1]
			parent.state = afterOperand
			if sealed {
				parent.state = afterAlias
			}
			parent.nameStart = false
			continue
		}

		if header {
			if t.is("AS") && len(levels) == 1 {
				header = false
				cur.state = expectOperand
			}
			continue
		}
		if skip {
			continue
		}

		nameStart := false
		switch t.Kind {
		case KindComma, KindDot:
			cur.state = expectOperand

		case KindOperator:
			if cur.state == afterAlias {
				return unexpected(t, prev)
			}
			if t.isOp("*") && cur.state == expectOperand {
				cur.state = afterOperand
			} else {
				cur.state = expectOperand
			}

		case KindKeyword:
			if err := checkPartner(t, next); err != nil {
				return err
			}
			if operandKeywords[t.Text] && cur.state != expectOperand {
				return unexpected(t, prev)
			}
			switch t.Text {
			case "NULL", "TRUE", "FALSE", "END":
				cur.state = afterOperand
			case "ASC", "DESC":
				cur.state = afterAlias
			default:
				cur.state = expectOperand
			}

		case KindIdent, KindQuotedIdent:
			word := strings.ToUpper(t.Text)
			switch {
			case prev != nil && prev.is("AS"):
				if t.Kind == KindIdent && word == "VALUE" && prev2 != nil &&
					(prev2.is("SELECT") || prev2.is("DISTINCT") || prev2.is("ALL")) {
					cur.state = expectOperand
				} else {
					cur.state = afterAlias
				}
			case cur.state == expectOperand:
				cur.state = afterOperand
				nameStart = true
			case cur.state == afterOperand:
				switch {
				case t.Kind == KindIdent && word == "OFFSET":
					cur.state = expectOperand
				case t.Kind == KindIdent && word == "REPLACE" && prev.isOp("*") &&
					next != nil && next.Kind == KindLParen:
					cur.state = expectOperand
				case prev2 != nil && prev2.is("INTERVAL"):
					// date part of INTERVAL n <part>
				default:
					cur.state = afterAlias
				}
			default:
				return unexpected(t, prev)
			}

		case KindNumber, KindString, KindParam:
			switch {
			case cur.state == expectOperand:
				cur.state = afterOperand
			case cur.state == afterOperand && t.Kind == KindString && prev.Kind == KindIdent &&
				cur.nameStart && literalTypes[strings.ToUpper(prev.Text)]:
			default:
				return unexpected(t, prev)
			}
		}
		cur.nameStart = nameStart
	}
	return nil
}

// checkOpen allows '(' after a name that began an expression (a call) or a
// type (a constructor), and '[' after anything but an alias.
func checkOpen(t Token, prev *Token, cur *level) error {
	switch cur.state {
	case expectOperand:
		return nil
	case afterAlias:
		return unexpected(t, prev)
	}
	if t.Kind != KindLParen {
		return nil
	}
	if prev.Kind == KindTypeClose || ((prev.Kind == KindIdent || prev.Kind == KindQuotedIdent) && cur.nameStart) {
		return nil
	}
	return unexpected(t, prev)
}

func seals(prev *Token) bool {
	if prev == nil {
		return false
	}
	return prev.is("USING") || prev.is("EXCEPT") || prev.is("AS") ||
		(prev.Kind == KindIdent && strings.EqualFold(prev.Text, "REPLACE"))
}

// checkPartner requires the keyword that must follow t.
func checkPartner(t Token, next *Token) error {
	switch t.Text {
	case "GROUP", "ORDER":
		if next == nil || !next.is("BY") {
			return errorAt(t.Line, t.Col, "%s must be followed by BY", t.Text)
		}
	case "EXCEPT":
		if next == nil || !(next.Kind == KindLParen || next.is("DISTINCT") || next.is("ALL")) {
			return errorAt(t.Line, t.Col, "EXCEPT must be followed by a parenthesized column list")
		}
	case "LEFT", "RIGHT":
		if next == nil || !(next.Kind == KindLParen || next.is("JOIN") || next.is("OUTER")) {
			return errorAt(t.Line, t.Col, "expected JOIN after %s", t.Text)
		}
	case "FULL", "INNER", "CROSS":
		if next == nil || !(next.is("JOIN") || next.is("OUTER")) {
			return errorAt(t.Line, t.Col, "expected JOIN after %s", t.Text)
		}
	case "OUTER":
		if next == nil || !next.is("JOIN") {
			return errorAt(t.Line, t.Col, "expected JOIN after OUTER")
		}
	}
	return nil
}

func unexpected(t Token, prev *Token) error {
	if prev == nil {
		return errorAt(t.Line, t.Col, "unexpected %s", describe(t))
	}
	return errorAt(t.Line, t.Col, "unexpected %s after %s", describe(t), describe(*prev))
}

func describe(t Token) string {
	switch t.Kind {
	case KindKeyword:
		return t.Text
	case KindIdent, KindQuotedIdent, KindNumber, KindParam:
		return t.Kind.String() + " " + t.Text
	case KindOperator:
		return "'" + t.Text + "'"
	}
	return t.Kind.String()
}

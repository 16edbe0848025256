package sqlfmt

// binaryOperators require an operand on both sides. '-', '+' and '~' double
// as unary operators and '*' doubles as the star projection, so they are not
// listed.
var binaryOperators = toSet("=", "<", ">", "<=", ">=", "<>", "!=", "/", "%", "||", "|", "&", "^", "<<", ">>", "=>")

// setOperators take DISTINCT or ALL as a quantifier rather than an operand.
var setOperators = toSet("UNION", "INTERSECT", "EXCEPT")

type opener struct {
	tok   Token
	cases int
}

var closerFor = map[Kind]Kind{
	KindLParen:   KindRParen,
	KindLBracket: KindRBracket,
	KindTypeOpen: KindTypeClose,
}

// validate checks the structural soundness of a token stream: balanced
// brackets and CASE expressions, operands present wherever a comma, operator,
// or clause keyword requires one, and a sequence in which no two expressions
// touch. It does not resolve names or types.
func validate(all []Token) error {
	toks := significant(all)
	if len(toks) == 0 {
		return errorAt(1, 1, "empty statement")
	}

	stack := []opener{{}}
	for i, t := range toks {
		var prev, next *Token
		if i > 0 {
			prev = &toks[i-1]
		}
		if i+1 < len(toks) {
			next = &toks[i+1]
		}

		switch t.Kind {
		case KindLParen, KindLBracket, KindTypeOpen:
			stack = append(stack, opener{tok: t})

		case KindRParen, KindRBracket, KindTypeClose:
			top := stack[len(stack)-1]
			if len(stack) == 1 || closerFor[top.tok.Kind] != t.Kind {
				return errorAt(t.Line, t.Col, "unexpected %s", t.Kind)
			}
			if top.cases > 0 {
				return errorAt(t.Line, t.Col, "CASE without END before %s", t.Kind)
			}
			stack = stack[:len(stack)-1]

		case KindSemicolon:
			if len(stack) > 1 {
				open := stack[len(stack)-1].tok
				return errorAt(open.Line, open.Col, "unclosed %s", open.Kind)
			}
			if stack[0].cases > 0 {
				return errorAt(t.Line, t.Col, "CASE without END")
			}
			if prev == nil || prev.Kind == KindSemicolon {
				return errorAt(t.Line, t.Col, "empty statement")
			}

		case KindComma:
			if prev == nil || !endsOperand(*prev) {
				return errorAt(t.Line, t.Col, "unexpected ','")
			}
			if next == nil || next.Kind == KindComma || isCloser(*next) ||
				(startsClause(toks, i+1) && !next.is("FROM")) {
				return errorAt(t.Line, t.Col, "dangling ','")
			}

		case KindDot:
			if prev == nil || !(prev.Kind == KindIdent || prev.Kind == KindQuotedIdent ||
				prev.Kind == KindRParen || prev.Kind == KindRBracket || prev.Kind == KindParam) {
				return errorAt(t.Line, t.Col, "unexpected '.'")
			}
			if next == nil || !(next.Kind == KindIdent || next.Kind == KindQuotedIdent ||
				next.Kind == KindNumber || next.isOp("*")) {
				return errorAt(t.Line, t.Col, "expected name after '.'")
			}

		case KindOperator:
			if binaryOperators[t.Text] && (prev == nil || !endsOperand(*prev)) {
				return errorAt(t.Line, t.Col, "missing left operand for %q", t.Text)
			}
			if !t.isOp("*") && (next == nil || isTerminator(toks, i+1)) {
				return errorAt(t.Line, t.Col, "missing right operand for %q", t.Text)
			}

		case KindKeyword:
			top := &stack[len(stack)-1]
			switch t.Text {
			case "CASE":
				top.cases++
			case "END":
				if top.cases == 0 {
					return errorAt(t.Line, t.Col, "END without CASE")
				}
				top.cases--
			case "USING":
				if next == nil || next.Kind != KindLParen {
					return errorAt(t.Line, t.Col, "USING must be followed by a parenthesized column list")
				}
			case "AND", "OR":
				if prev == nil || !endsOperand(*prev) {
					return errorAt(t.Line, t.Col, "missing left operand for %s", t.Text)
				}
			}
			setQuantifier := t.Text == "DISTINCT" && prev != nil && setOperators[prev.Text]
			if expectsOperand[t.Text] && !setQuantifier && (next == nil || isTerminator(toks, i+1)) {
				return errorAt(t.Line, t.Col, "incomplete %s", t.Text)
			}
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1].tok
		return errorAt(open.Line, open.Col, "unclosed %s", open.Kind)
	}
	if stack[0].cases > 0 {
		last := toks[len(toks)-1]
		return errorAt(last.Line, last.Col, "CASE without END")
	}
	return checkSequence(toks)
}

// significant drops comments.
func significant(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if !t.IsComment() {
			out = append(out, t)
		}
	}
	return out
}

// endsOperand reports whether t can be the last token of an operand.
func endsOperand(t Token) bool {
	switch t.Kind {
	case KindIdent, KindQuotedIdent, KindNumber, KindString, KindParam,
		KindRParen, KindRBracket, KindTypeClose:
		return true
	case KindOperator:
		return t.Text == "*"
	case KindKeyword:
		switch t.Text {
		case "NULL", "TRUE", "FALSE", "END", "ASC", "DESC", "CURRENT",
			"PRECEDING", "FOLLOWING", "UNBOUNDED", "STRUCT", "ARRAY":
			return true
		}
	}
	return false
}

func isCloser(t Token) bool {
	switch t.Kind {
	case KindRParen, KindRBracket, KindTypeClose, KindSemicolon:
		return true
	}
	return false
}

// isTerminator reports whether toks[i] ends the operand slot before it: a
// closer, a comma, the start of a new clause, or a CASE keyword.
func isTerminator(toks []Token, i int) bool {
	t := toks[i]
	if isCloser(t) || t.Kind == KindComma {
		return true
	}
	if t.Kind == KindKeyword && caseWords[t.Text] {
		return true
	}
	return startsClause(toks, i)
}

// startsClause reports whether toks[i] begins a query clause. Join modifiers
// only count when a JOIN follows, so LEFT(...) and RIGHT(...) stay functions.
func startsClause(toks []Token, i int) bool {
	t := toks[i]
	if t.Kind != KindKeyword {
		return false
	}
	switch t.Text {
	case "LEFT", "RIGHT", "FULL", "INNER", "CROSS":
		return i+1 < len(toks) && (toks[i+1].is("JOIN") || toks[i+1].is("OUTER"))
	case "EXCEPT":
		return i+1 < len(toks) && (toks[i+1].is("DISTINCT") || toks[i+1].is("ALL"))
	}
	return clauseStarters[t.Text]
}

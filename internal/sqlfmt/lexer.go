package sqlfmt

import (
	"strings"
	"unicode"
)

// lexer splits BigQuery SQL into tokens using a single forward pass over runes.
type lexer struct {
	src  []rune
	pos  int
	line int
	col  int
	toks []Token
}

// Lex splits SQL text into tokens. Comments are kept as tokens; whitespace is
// dropped. The returned error is a *SyntaxError for unterminated literals,
// unterminated comments and characters that cannot start a token.
func Lex(sql string) ([]Token, error) {
	lx := &lexer{src: []rune(sql), line: 1, col: 1}
	if err := lx.run(); err != nil {
		return nil, err
	}
	toks := classifyTypeBrackets(lx.toks)
	return mergeOperators(toks), nil
}

func (lx *lexer) peek(offset int) rune {
	if lx.pos+offset < len(lx.src) {
		return lx.src[lx.pos+offset]
	}
	return 0
}

// advance consumes n runes, keeping line and column in step.
func (lx *lexer) advance(n int) {
	for i := 0; i < n && lx.pos < len(lx.src); i++ {
		if lx.src[lx.pos] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		lx.pos++
	}
}

func (lx *lexer) emit(kind Kind, text string, line, col int) {
	lx.toks = append(lx.toks, Token{Kind: kind, Text: text, Line: line, Col: col})
}

func (lx *lexer) run() error {
	for lx.pos < len(lx.src) {
		r := lx.peek(0)
		next := lx.peek(1)
		line, col := lx.line, lx.col
		start := lx.pos

		switch {
		case unicode.IsSpace(r):
			lx.advance(1)

		case r == '-' && next == '-', r == '#':
			for lx.pos < len(lx.src) && lx.peek(0) != '\n' {
				lx.advance(1)
			}
			text := strings.TrimRightFunc(string(lx.src[start:lx.pos]), unicode.IsSpace)
			lx.emit(KindLineComment, text, line, col)

		case r == '/' && next == '*':
			lx.advance(2)
			closed := false
			for lx.pos < len(lx.src) {
				if lx.peek(0) == '*' && lx.peek(1) == '/' {
					lx.advance(2)
					closed = true
					break
				}
				lx.advance(1)
			}
			if !closed {
				return errorAt(line, col, "unterminated block comment")
			}
			lx.emit(KindBlockComment, string(lx.src[start:lx.pos]), line, col)

		case r == '\'' || r == '"':
			if err := lx.lexString(start, false, line, col); err != nil {
				return err
			}

		case r == '`':
			lx.advance(1)
			closed := false
			for lx.pos < len(lx.src) {
				c := lx.peek(0)
				if c == '\\' {
					lx.advance(2)
					continue
				}
				if c == '\n' {
					break
				}
				lx.advance(1)
				if c == '`' {
					closed = true
					break
				}
			}
			if !closed {
				return errorAt(line, col, "unterminated quoted identifier")
			}
			lx.emit(KindQuotedIdent, string(lx.src[start:lx.pos]), line, col)

		case unicode.IsDigit(r):
			lx.lexNumber()
			lx.emit(KindNumber, string(lx.src[start:lx.pos]), line, col)

		case isIdentStart(r):
			for lx.pos < len(lx.src) && isIdentPart(lx.peek(0)) {
				lx.advance(1)
			}
			word := string(lx.src[start:lx.pos])
			if isStringPrefix(word) && (lx.peek(0) == '\'' || lx.peek(0) == '"') {
				raw := strings.ContainsAny(word, "rR")
				if err := lx.lexString(start, raw, line, col); err != nil {
					return err
				}
				continue
			}
			upper := strings.ToUpper(word)
			if reserved[upper] && !lx.afterDot() {
				lx.emit(KindKeyword, upper, line, col)
			} else {
				lx.emit(KindIdent, word, line, col)
			}

		case r == '@':
			lx.advance(1)
			if lx.peek(0) == '@' {
				lx.advance(1)
			}
			if !isIdentStart(lx.peek(0)) {
				return errorAt(line, col, "expected parameter name after '@'")
			}
			for lx.pos < len(lx.src) && isIdentPart(lx.peek(0)) {
				lx.advance(1)
			}
			lx.emit(KindParam, string(lx.src[start:lx.pos]), line, col)

		default:
			if err := lx.lexPunct(r, next, line, col); err != nil {
				return err
			}
		}
	}
	return nil
}

// lexString consumes a quoted literal starting at the current position, which
// is the opening quote. start marks the beginning of any r/b prefix.
func (lx *lexer) lexString(start int, raw bool, line, col int) error {
	quote := lx.peek(0)
	triple := lx.peek(1) == quote && lx.peek(2) == quote
	if triple {
		lx.advance(3)
	} else {
		lx.advance(1)
	}

	for lx.pos < len(lx.src) {
		c := lx.peek(0)
		if c == '\\' && !raw {
			lx.advance(2)
			continue
		}
		if c == '\\' && raw && lx.peek(1) == quote {
			lx.advance(2)
			continue
		}
		if c == quote {
			if !triple {
				lx.advance(1)
				lx.emit(KindString, string(lx.src[start:lx.pos]), line, col)
				return nil
			}
			if lx.peek(1) == quote && lx.peek(2) == quote {
				lx.advance(3)
				lx.emit(KindString, string(lx.src[start:lx.pos]), line, col)
				return nil
			}
		}
		if c == '\n' && !triple {
			break
		}
		lx.advance(1)
	}
	return errorAt(line, col, "unterminated string literal")
}

func (lx *lexer) lexNumber() {
	if lx.peek(0) == '0' && (lx.peek(1) == 'x' || lx.peek(1) == 'X') {
		lx.advance(2)
		for isHexDigit(lx.peek(0)) {
			lx.advance(1)
		}
		return
	}
	for unicode.IsDigit(lx.peek(0)) {
		lx.advance(1)
	}
	if lx.peek(0) == '.' && unicode.IsDigit(lx.peek(1)) {
		lx.advance(1)
		for unicode.IsDigit(lx.peek(0)) {
			lx.advance(1)
		}
	}
	if e := lx.peek(0); e == 'e' || e == 'E' {
		sign := lx.peek(1)
		if unicode.IsDigit(sign) {
			lx.advance(1)
		} else if (sign == '+' || sign == '-') && unicode.IsDigit(lx.peek(2)) {
			lx.advance(2)
		} else {
			return
		}
		for unicode.IsDigit(lx.peek(0)) {
			lx.advance(1)
		}
	}
}

func (lx *lexer) lexPunct(r, next rune, line, col int) error {
	switch r {
	case ',':
		lx.emit(KindComma, ",", line, col)
	case '.':
		lx.emit(KindDot, ".", line, col)
	case ';':
		lx.emit(KindSemicolon, ";", line, col)
	case '(':
		lx.emit(KindLParen, "(", line, col)
	case ')':
		lx.emit(KindRParen, ")", line, col)
	case '[':
		lx.emit(KindLBracket, "[", line, col)
	case ']':
		lx.emit(KindRBracket, "]", line, col)
	case '!':
		if next != '=' {
			return errorAt(line, col, "unexpected character '!'")
		}
		lx.advance(2)
		lx.emit(KindOperator, "!=", line, col)
		return nil
	case '|':
		if next == '|' {
			lx.advance(2)
			lx.emit(KindOperator, "||", line, col)
			return nil
		}
		lx.emit(KindOperator, "|", line, col)
	case '=', '<', '>', '+', '-', '*', '/', '%', '&', '^', '~':
		lx.emit(KindOperator, string(r), line, col)
	default:
		return errorAt(line, col, "unexpected character %q", r)
	}
	lx.advance(1)
	return nil
}

// afterDot reports whether the last significant token is a '.', in which case
// a reserved word is a field or table name rather than a keyword.
func (lx *lexer) afterDot() bool {
	for i := len(lx.toks) - 1; i >= 0; i-- {
		if lx.toks[i].IsComment() {
			continue
		}
		return lx.toks[i].Kind == KindDot
	}
	return false
}

// classifyTypeBrackets turns '<' following ARRAY or STRUCT into a type bracket,
// and the matching '>' into its closer.
func classifyTypeBrackets(toks []Token) []Token {
	depth := 0
	prev := -1
	for i := range toks {
		t := &toks[i]
		if t.IsComment() {
			continue
		}
		switch {
		case t.isOp("<") && prev >= 0 && (toks[prev].is("ARRAY") || toks[prev].is("STRUCT")):
			t.Kind = KindTypeOpen
			depth++
		case t.isOp(">") && depth > 0:
			t.Kind = KindTypeClose
			depth--
		}
		prev = i
	}
	return toks
}

var compoundOperators = map[string]bool{
	"<=": true, ">=": true, "<>": true, "=>": true, "<<": true, ">>": true,
}

// mergeOperators joins adjacent single-character operators into compound ones.
func mergeOperators(toks []Token) []Token {
	out := toks[:0]
	for _, t := range toks {
		if n := len(out); n > 0 && t.Kind == KindOperator {
			last := &out[n-1]
			adjacent := last.Line == t.Line && last.Col+len(last.Text) == t.Col
			if last.Kind == KindOperator && adjacent && compoundOperators[last.Text+t.Text] {
				last.Text += t.Text
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isStringPrefix(word string) bool {
	switch strings.ToLower(word) {
	case "r", "b", "rb", "br":
		return true
	}
	return false
}

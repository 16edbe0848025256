package sqlfmt

import "strings"

const indentUnit = "  "

type frameKind int

const (
	frameStatement frameKind = iota
	frameBlock
	frameInline
)

// frame tracks layout state for one nesting level: the statement itself, a
// parenthesized subquery, or an inline bracket such as a call or a type.
type frame struct {
	kind       frameKind
	base       int
	openIndent int
	clause     string
	first      bool
	content    bool
	modifiers  int
	between    bool
	cases      []int
}

var filterClauses = toSet("WHERE", "HAVING", "QUALIFY", "ON")
var listClauses = toSet("SELECT", "FROM", "GROUP", "ORDER", "WINDOW")
var joinModifiers = toSet("LEFT", "RIGHT", "FULL", "INNER", "CROSS", "OUTER")

type printer struct {
	sig []Token

	lines   []string
	line    strings.Builder
	indent  int
	started bool
	pending int
	blank   bool

	frames    []*frame
	prev      *Token
	prevUnary bool
}

// layout renders a validated token stream. Output depends only on the token
// sequence, so formatting already formatted text reproduces it.
func layout(all []Token) string {
	p := &printer{frames: []*frame{{kind: frameStatement, first: true}}}

	var leading [][]Token
	var pending []Token
	for _, t := range all {
		if t.IsComment() {
			pending = append(pending, t)
			continue
		}
		p.sig = append(p.sig, t)
		leading = append(leading, pending)
		pending = nil
	}

	for i := range p.sig {
		for _, c := range leading[i] {
			p.comment(c)
		}
		p.token(i)
	}
	for _, c := range pending {
		p.comment(c)
	}
	p.flush()
	return strings.Join(p.lines, "\n") + "\n"
}

func (p *printer) top() *frame {
	return p.frames[len(p.frames)-1]
}

func (p *printer) push(f *frame) {
	p.frames = append(p.frames, f)
}

func (p *printer) pop() {
	if len(p.frames) > 1 {
		p.frames = p.frames[:len(p.frames)-1]
	}
}

func (p *printer) flush() {
	if !p.started {
		return
	}
	p.lines = append(p.lines, p.line.String())
	p.line.Reset()
	p.started = false
}

func (p *printer) newLine(indent int) {
	p.flush()
	if p.blank && len(p.lines) > 0 {
		p.lines = append(p.lines, "")
	}
	p.blank = false
	p.indent = indent
	p.started = true
	p.line.WriteString(strings.Repeat(indentUnit, indent))
}

// write appends text to the output, starting a new line when a break is pending.
func (p *printer) write(text string, space bool) {
	switch {
	case p.pending >= 0 || !p.started:
		p.newLine(max(p.pending, 0))
		p.pending = -1
	case space:
		p.line.WriteByte(' ')
	}
	p.line.WriteString(text)
}

func (p *printer) emit(t Token) {
	p.write(t.Text, p.spaceBefore(t))
	p.prevUnary = isUnary(t, p.prev)
	p.prev = &t
}

// comment places a comment. A comment written on the same line as the token
// before it stays there; any other comment starts a line when a break is
// pending. Either way the pending break carries over to the next token, and a
// line comment always ends its line.
func (p *printer) comment(c Token) {
	inline := p.started && (p.pending < 0 || (p.prev != nil && c.Line == p.prev.Line))
	if !inline {
		keep := max(p.pending, 0)
		p.write(c.Text, false)
		p.pending = keep
		return
	}
	p.line.WriteString(" " + c.Text)
	if c.Kind == KindLineComment && p.pending < 0 {
		p.pending = p.indent
	}
}

func (p *printer) token(i int) {
	t := p.sig[i]
	f := p.top()
	var next *Token
	if i+1 < len(p.sig) {
		next = &p.sig[i+1]
	}

	if f.content {
		if f.modifiers > 0 {
			f.modifiers--
		} else {
			f.content = false
			p.pending = f.base + 1
		}
	}

	switch t.Kind {
	case KindSemicolon:
		p.emit(t)
		p.frames = []*frame{{kind: frameStatement, first: true}}
		p.pending = 0
		p.blank = next != nil
		return

	case KindLParen:
		p.emit(t)
		f.first = false
		if next != nil && (next.is("SELECT") || next.is("WITH")) {
			p.push(&frame{kind: frameBlock, base: p.indent + 1, openIndent: p.indent, first: true})
			p.pending = p.indent + 1
		} else {
			p.push(&frame{kind: frameInline})
		}
		return

	case KindLBracket, KindTypeOpen:
		p.emit(t)
		f.first = false
		p.push(&frame{kind: frameInline})
		return

	case KindRParen, KindRBracket, KindTypeClose:
		if f.kind == frameBlock {
			p.pending = f.openIndent
		}
		p.pop()
		p.emit(t)
		return
	}

	if f.kind != frameInline && len(f.cases) == 0 && p.clause(i, f) {
		f.first = false
		return
	}

	breaks := f.kind != frameInline
	switch {
	case t.is("CASE"):
		p.emit(t)
		f.cases = append(f.cases, p.indent)

	case (t.is("WHEN") || t.is("ELSE")) && len(f.cases) > 0:
		if breaks {
			p.pending = f.cases[len(f.cases)-1] + 1
		}
		p.emit(t)

	case t.is("END") && len(f.cases) > 0:
		if breaks {
			p.pending = f.cases[len(f.cases)-1]
		}
		f.cases = f.cases[:len(f.cases)-1]
		p.emit(t)

	case t.is("BETWEEN"):
		if breaks && len(f.cases) == 0 {
			f.between = true
		}
		p.emit(t)

	case (t.is("AND") || t.is("OR")) && breaks && len(f.cases) == 0 && filterClauses[f.clause]:
		if t.is("AND") && f.between {
			f.between = false
		} else {
			p.pending = f.base + 1
		}
		p.emit(t)

	case t.Kind == KindComma:
		p.emit(t)
		if breaks && len(f.cases) == 0 {
			switch {
			case listClauses[f.clause]:
				p.pending = f.base + 1
			case f.clause == "WITH":
				p.pending = f.base
			}
		}

	case t.Kind == KindIdent && strings.EqualFold(t.Text, "RETURNS") && breaks && f.clause == "CREATE":
		p.pending = f.base
		p.emit(t)

	default:
		p.emit(t)
	}
	f.first = false
}

// clause starts a new clause line when toks[i] begins one and reports whether
// it did.
func (p *printer) clause(i int, f *frame) bool {
	t := p.sig[i]
	switch {
	case t.is("WITH"):
		if !f.first {
			return false
		}
	case t.is("CREATE"):
	case t.is("ON"), t.is("USING"):
		f.clause = t.Text
		return false
	case t.is("JOIN") && p.prev != nil && joinModifiers[strings.ToUpper(p.prev.Text)] && p.prev.Kind == KindKeyword:
		return false
	case t.is("FROM") && p.prev != nil && p.prev.is("DISTINCT"):
		return false
	case !startsClause(p.sig, i):
		return false
	}

	p.pending = f.base
	p.emit(t)
	f.between = false
	f.content = false
	f.modifiers = 0
	f.clause = t.Text

	switch t.Text {
	case "SELECT":
		f.content = true
		f.modifiers = selectModifiers(p.sig, i+1)
	case "FROM", "WHERE", "HAVING", "QUALIFY", "WINDOW":
		f.content = true
	case "GROUP", "ORDER":
		f.content = true
		f.modifiers = 1
	case "LEFT", "RIGHT", "FULL", "INNER", "CROSS", "JOIN":
		f.clause = "JOIN"
	case "UNION", "INTERSECT", "EXCEPT":
		f.clause = ""
	}
	return true
}

// selectModifiers counts the tokens after SELECT that stay on its line:
// DISTINCT, ALL, AS STRUCT and AS VALUE.
func selectModifiers(toks []Token, j int) int {
	n := 0
	for j < len(toks) {
		switch {
		case toks[j].is("DISTINCT") || toks[j].is("ALL"):
			n++
			j++
		case toks[j].is("AS") && j+1 < len(toks) &&
			(toks[j+1].is("STRUCT") || (toks[j+1].Kind == KindIdent && strings.EqualFold(toks[j+1].Text, "VALUE"))):
			n += 2
			j += 2
		default:
			return n
		}
	}
	return n
}

func (p *printer) spaceBefore(t Token) bool {
	prev := p.prev
	if prev == nil {
		return false
	}
	switch t.Kind {
	case KindComma, KindRParen, KindRBracket, KindTypeOpen, KindTypeClose, KindSemicolon, KindDot:
		return false
	}
	switch prev.Kind {
	case KindLParen, KindLBracket, KindTypeOpen, KindDot:
		return false
	}
	if p.prevUnary {
		// keeps "- -x" from turning into a line comment
		return t.Kind == KindOperator
	}
	switch t.Kind {
	case KindLParen:
		return !(prev.Kind == KindIdent || prev.Kind == KindQuotedIdent || prev.Kind == KindTypeClose ||
			(prev.Kind == KindKeyword && callKeywords[prev.Text]))
	case KindLBracket:
		return !(prev.Kind == KindIdent || prev.Kind == KindQuotedIdent || prev.Kind == KindRParen ||
			prev.Kind == KindRBracket || prev.Kind == KindTypeClose || prev.is("ARRAY"))
	}
	return true
}

// isUnary reports whether t is a sign or bitwise-not applied to the operand after it.
func isUnary(t Token, prev *Token) bool {
	if t.Kind != KindOperator || !(t.Text == "-" || t.Text == "+" || t.Text == "~") {
		return false
	}
	if prev == nil {
		return true
	}
	switch prev.Kind {
	case KindOperator, KindComma, KindLParen, KindLBracket, KindTypeOpen, KindSemicolon:
		return true
	case KindKeyword:
		return !endsOperand(*prev)
	}
	return false
}

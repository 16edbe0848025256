package sqlfmt

import "strings"

// Kind classifies a lexical token.
type Kind int

const (
	KindKeyword Kind = iota
	KindIdent
	KindQuotedIdent
	KindNumber
	KindString
	KindParam
	KindOperator
	KindComma
	KindDot
	KindSemicolon
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindTypeOpen
	KindTypeClose
	KindLineComment
	KindBlockComment
)

var kindNames = map[Kind]string{
	KindKeyword:      "keyword",
	KindIdent:        "identifier",
	KindQuotedIdent:  "quoted identifier",
	KindNumber:       "number",
	KindString:       "string",
	KindParam:        "parameter",
	KindOperator:     "operator",
	KindComma:        "','",
	KindDot:          "'.'",
	KindSemicolon:    "';'",
	KindLParen:       "'('",
	KindRParen:       "')'",
	KindLBracket:     "'['",
	KindRBracket:     "']'",
	KindTypeOpen:     "'<'",
	KindTypeClose:    "'>'",
	KindLineComment:  "comment",
	KindBlockComment: "comment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a lexical unit of SQL text. Keyword text is uppercased; all other
// token text is kept exactly as written. Line and Col are 1-based.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == KindLineComment || t.Kind == KindBlockComment
}

func (t Token) is(kw string) bool {
	return t.Kind == KindKeyword && t.Text == kw
}

func (t Token) isOp(op string) bool {
	return t.Kind == KindOperator && t.Text == op
}

// reserved holds the BigQuery GoogleSQL reserved keywords. Only these are
// recognized as keywords and uppercased; everything else is an identifier.
var reserved = toSet(
	"ALL", "AND", "ANY", "ARRAY", "AS", "ASC", "ASSERT_ROWS_MODIFIED", "AT",
	"BETWEEN", "BY", "CASE", "CAST", "COLLATE", "CONTAINS", "CREATE", "CROSS",
	"CUBE", "CURRENT", "DEFAULT", "DEFINE", "DESC", "DISTINCT", "ELSE", "END",
	"ENUM", "ESCAPE", "EXCEPT", "EXCLUDE", "EXISTS", "EXTRACT", "FALSE", "FETCH",
	"FOLLOWING", "FOR", "FROM", "FULL", "GROUP", "GROUPING", "GROUPS", "HASH",
	"HAVING", "IF", "IGNORE", "IN", "INNER", "INTERSECT", "INTERVAL", "INTO",
	"IS", "JOIN", "LATERAL", "LEFT", "LIKE", "LIMIT", "LOOKUP", "MERGE",
	"NATURAL", "NEW", "NO", "NOT", "NULL", "NULLS", "OF", "ON", "OR", "ORDER",
	"OUTER", "OVER", "PARTITION", "PRECEDING", "PROTO", "QUALIFY", "RANGE",
	"RECURSIVE", "RESPECT", "RIGHT", "ROLLUP", "ROWS", "SELECT", "SET", "SOME",
	"STRUCT", "TABLESAMPLE", "THEN", "TO", "TREAT", "TRUE", "UNBOUNDED", "UNION",
	"UNNEST", "USING", "WHEN", "WHERE", "WINDOW", "WITH", "WITHIN",
)

// clauseStarters are keywords that begin a new clause of a query. An operand
// position directly followed by one of these is incomplete.
var clauseStarters = toSet(
	"SELECT", "FROM", "WHERE", "GROUP", "HAVING", "QUALIFY", "WINDOW", "ORDER",
	"LIMIT", "UNION", "INTERSECT", "JOIN", "INNER", "CROSS", "FULL", "LEFT",
	"RIGHT", "ON", "USING",
)

// expectsOperand are keywords that must be followed by an expression, a
// table or a list.
var expectsOperand = toSet(
	"SELECT", "FROM", "WHERE", "BY", "AND", "OR", "NOT", "ON", "USING", "AS",
	"JOIN", "IN", "IS", "LIKE", "BETWEEN", "WHEN", "THEN", "ELSE", "HAVING",
	"QUALIFY", "LIMIT", "INTERVAL", "DISTINCT",
)

// caseWords close or continue a CASE expression and cannot follow an operand slot.
var caseWords = toSet("WHEN", "THEN", "ELSE", "END")

// callKeywords are keywords written directly against their opening parenthesis.
var callKeywords = toSet(
	"ARRAY", "CAST", "CUBE", "EXCEPT", "EXISTS", "EXTRACT", "GROUPING", "IF",
	"LEFT", "RIGHT", "ROLLUP", "STRUCT", "UNNEST",
)

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = true
	}
	return set
}

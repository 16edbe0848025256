package sqlfmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_Positions(t *testing.T) {
	toks, err := Lex("select a.from, b >= 1 -- c")
	require.NoError(t, err)

	want := []Token{
		{Kind: KindKeyword, Text: "SELECT", Line: 1, Col: 1},
		{Kind: KindIdent, Text: "a", Line: 1, Col: 8},
		{Kind: KindDot, Text: ".", Line: 1, Col: 9},
		{Kind: KindIdent, Text: "from", Line: 1, Col: 10},
		{Kind: KindComma, Text: ",", Line: 1, Col: 14},
		{Kind: KindIdent, Text: "b", Line: 1, Col: 16},
		{Kind: KindOperator, Text: ">=", Line: 1, Col: 18},
		{Kind: KindNumber, Text: "1", Line: 1, Col: 21},
		{Kind: KindLineComment, Text: "-- c", Line: 1, Col: 23},
	}
	assert.Equal(t, want, toks)
}

func TestLex_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
		texts []string
	}{
		{
			name:  "type brackets",
			input: "ARRAY<STRUCT<a INT64>>",
			kinds: []Kind{KindKeyword, KindTypeOpen, KindKeyword, KindTypeOpen, KindIdent, KindIdent, KindTypeClose, KindTypeClose},
			texts: []string{"ARRAY", "<", "STRUCT", "<", "a", "INT64", ">", ">"},
		},
		{
			name:  "comparison stays an operator",
			input: "a < b",
			kinds: []Kind{KindIdent, KindOperator, KindIdent},
			texts: []string{"a", "<", "b"},
		},
		{
			name:  "separated operators are not merged",
			input: "a < = b",
			kinds: []Kind{KindIdent, KindOperator, KindOperator, KindIdent},
			texts: []string{"a", "<", "=", "b"},
		},
		{
			name:  "raw and bytes strings",
			input: `r'\d+' b"x" '''multi` + "\n" + `line'''`,
			kinds: []Kind{KindString, KindString, KindString},
			texts: []string{`r'\d+'`, `b"x"`, "'''multi\nline'''"},
		},
		{
			name:  "escaped quote",
			input: `'it\'s'`,
			kinds: []Kind{KindString},
			texts: []string{`'it\'s'`},
		},
		{
			name:  "backtick identifier",
			input: "`moz-fx-data-shared-prod.telemetry.main`",
			kinds: []Kind{KindQuotedIdent},
			texts: []string{"`moz-fx-data-shared-prod.telemetry.main`"},
		},
		{
			name:  "parameters",
			input: "@submission_date @@dataset_id",
			kinds: []Kind{KindParam, KindParam},
			texts: []string{"@submission_date", "@@dataset_id"},
		},
		{
			name:  "numbers",
			input: "1.5e-3 0xFF 42",
			kinds: []Kind{KindNumber, KindNumber, KindNumber},
			texts: []string{"1.5e-3", "0xFF", "42"},
		},
		{
			name:  "comments",
			input: "# hash  \n/* block */ x",
			kinds: []Kind{KindLineComment, KindBlockComment, KindIdent},
			texts: []string{"# hash", "/* block */", "x"},
		},
		{
			name:  "non reserved words keep their case",
			input: "Select Value, TYPE",
			kinds: []Kind{KindKeyword, KindIdent, KindComma, KindIdent},
			texts: []string{"SELECT", "Value", ",", "TYPE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Lex(tt.input)
			require.NoError(t, err)
			require.Len(t, toks, len(tt.kinds))
			for i, tok := range toks {
				assert.Equal(t, tt.kinds[i], tok.Kind, "token %d", i)
				assert.Equal(t, tt.texts[i], tok.Text, "token %d", i)
			}
		})
	}
}

func TestLex_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		col   int
	}{
		{"unterminated string", "SELECT 'abc", 1, 8},
		{"string broken by newline", "SELECT 'a\nb'", 1, 8},
		{"unterminated block comment", "SELECT 1 /* open", 1, 10},
		{"unterminated backtick", "SELECT `x", 1, 8},
		{"template delimiter", "SELECT {{ x }}", 1, 8},
		{"bare bang", "SELECT !x", 1, 8},
		{"bare at sign", "SELECT @ 1", 1, 8},
		{"second line", "SELECT\n  a ? b", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(tt.input)
			var se *SyntaxError
			require.True(t, errors.As(err, &se), "want *SyntaxError, got %v", err)
			assert.Equal(t, tt.line, se.Line)
			assert.Equal(t, tt.col, se.Column)
		})
	}
}

package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/vvka-141/glamgen/internal/sqlfmt"
)

// Calculator computes checksums of SQL documents.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum that ignores layout, comments
	// and the case of keywords and identifiers.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// It is a zero-size type and safe for concurrent use.
type SHA256 struct{}

// New creates a SHA-256 calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(Normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

// Normalize reduces SQL to its token sequence: comments are dropped, tokens
// are joined by single spaces, and everything except string literals and
// backtick-quoted identifiers is lowercased. Text that does not lex falls back to lowercasing with
// whitespace collapsed.
func Normalize(content string) string {
	toks, err := sqlfmt.Lex(content)
	if err != nil {
		return strings.Join(strings.Fields(strings.ToLower(content)), " ")
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, t := range toks {
		if t.IsComment() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if t.Kind == sqlfmt.KindString || t.Kind == sqlfmt.KindQuotedIdent {
			b.WriteString(t.Text)
		} else {
			b.WriteString(strings.ToLower(t.Text))
		}
	}
	return b.String()
}

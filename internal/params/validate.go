package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/glamgen/internal/sqlfmt"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// StructFields returns the field names declared by every STRUCT<...> in a
// BigQuery type declaration, in declaration order. Backticks are removed from
// quoted names; anonymous fields are skipped.
func StructFields(typeDecl string) ([]string, error) {
	all, err := sqlfmt.Lex(typeDecl)
	if err != nil {
		return nil, err
	}
	toks := make([]sqlfmt.Token, 0, len(all))
	for _, t := range all {
		if !t.IsComment() {
			toks = append(toks, t)
		}
	}

	// one entry per open type bracket: true when it belongs to a STRUCT
	var stack []bool
	var fields []string
	for i, t := range toks {
		switch t.Kind {
		case sqlfmt.KindTypeOpen:
			isStruct := i > 0 && toks[i-1].Kind == sqlfmt.KindKeyword && toks[i-1].Text == "STRUCT"
			stack = append(stack, isStruct)
			continue
		case sqlfmt.KindTypeClose:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if len(stack) == 0 || !stack[len(stack)-1] || i == 0 {
			continue
		}
		prev := toks[i-1].Kind
		if prev != sqlfmt.KindTypeOpen && prev != sqlfmt.KindComma {
			continue
		}
		if t.Kind != sqlfmt.KindIdent && t.Kind != sqlfmt.KindQuotedIdent {
			continue
		}
		if i+1 >= len(toks) || toks[i+1].Kind == sqlfmt.KindComma || toks[i+1].Kind == sqlfmt.KindTypeClose {
			continue
		}
		fields = append(fields, strings.Trim(t.Text, "`"))
	}
	return fields, nil
}

// ValidateUserDataAttributes checks that every payload attribute names a field
// declared in the payload type. Field names compare case-insensitively, as
// BigQuery does.
func ValidateUserDataAttributes(p RenderParameters) error {
	fields, err := StructFields(p.userDataType)
	if err != nil {
		return fmt.Errorf("%w: user_data_type: %v", glamgen.ErrInvalidParameters, err)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: user_data_type declares no STRUCT fields", glamgen.ErrInvalidParameters)
	}

	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		declared[strings.ToLower(f)] = true
	}

	var missing []string
	for _, attr := range p.userDataAttributes {
		if !declared[strings.ToLower(strings.Trim(attr, "`"))] {
			missing = append(missing, attr)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: user_data_attributes not declared in user_data_type: %s",
			glamgen.ErrInvalidParameters, strings.Join(missing, ", "))
	}
	return nil
}

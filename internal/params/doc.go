// Package params assembles the parameters of a generated query.
//
// A Shape is the configuration of one metrics payload: its dimension columns,
// the typed payload declaration, the SQL fragments spliced into the query and
// the tables it reads and writes. Assemble turns a Shape into an immutable
// RenderParameters value, checking only structure: required fields are
// present, lists are non-empty, the header is a single-line comment and no
// field contains template delimiters. SQL fragments are never parsed here.
//
// # Example Usage
//
//	shape.Attributes = []string{"client_id", "os", "app_version", "app_build_id", "channel"}
//	p, err := params.Assemble(shape)
//	if err != nil {
//	    return err // matches glamgen.ErrInvalidParameters
//	}
//	bindings := p.Bindings()
//
// ValidateUserDataAttributes is an optional extra pass that checks the payload
// field names against the declared payload type.
package params

package params

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vvka-141/glamgen/internal/templates"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// Template binding names.
const (
	BindHeader                 = "header"
	BindUserDataType           = "user_data_type"
	BindUserDataAttributes     = "user_data_attributes"
	BindUserDataAttributesList = "user_data_attributes_list"
	BindAttributes             = "attributes"
	BindAttributesList         = "attributes_list"
	BindExtractSelectClause    = "extract_select_clause"
	BindJoinFilter             = "join_filter"
	BindSourceTable            = "source_table"
	BindDestinationTable       = "destination_table"
)

// listSeparator joins list bindings for inline insertion.
const listSeparator = ","

var bindingOrder = []string{
	BindHeader, BindUserDataType, BindUserDataAttributes, BindAttributes,
	BindExtractSelectClause, BindJoinFilter, BindSourceTable, BindDestinationTable,
}

// RenderParameters is the complete, immutable input of one query render.
// Build it with Assemble; the zero value is not usable.
type RenderParameters struct {
	template            templates.Ref
	header              string
	userDataType        string
	userDataAttributes  []string
	attributes          []string
	extractSelectClause string
	joinFilter          string
	sourceTable         string
	destinationTable    string
}

// Template returns the template the parameters are rendered with.
func (p RenderParameters) Template() templates.Ref { return p.template }

func (p RenderParameters) Header() string              { return p.header }
func (p RenderParameters) UserDataType() string        { return p.userDataType }
func (p RenderParameters) ExtractSelectClause() string { return p.extractSelectClause }
func (p RenderParameters) JoinFilter() string          { return p.joinFilter }
func (p RenderParameters) SourceTable() string         { return p.sourceTable }
func (p RenderParameters) DestinationTable() string    { return p.destinationTable }

// UserDataAttributes returns a copy of the payload field names, in order.
func (p RenderParameters) UserDataAttributes() []string { return slices.Clone(p.userDataAttributes) }

// Attributes returns a copy of the dimension column names, in order.
func (p RenderParameters) Attributes() []string { return slices.Clone(p.attributes) }

// Bindings returns the template variables. Each list is bound twice: joined
// with commas under its own name and as a slice under "<name>_list".
func (p RenderParameters) Bindings() map[string]any {
	return map[string]any{
		BindHeader:                 p.header,
		BindUserDataType:           p.userDataType,
		BindUserDataAttributes:     strings.Join(p.userDataAttributes, listSeparator),
		BindUserDataAttributesList: slices.Clone(p.userDataAttributes),
		BindAttributes:             strings.Join(p.attributes, listSeparator),
		BindAttributesList:         slices.Clone(p.attributes),
		BindExtractSelectClause:    p.extractSelectClause,
		BindJoinFilter:             p.joinFilter,
		BindSourceTable:            p.sourceTable,
		BindDestinationTable:       p.destinationTable,
	}
}

// DefaultHeader is the provenance comment used when a shape sets none.
func DefaultHeader(shapeName string) string {
	if shapeName == "" {
		return glamgen.HeaderPrefix
	}
	return glamgen.HeaderPrefix + " --shape " + shapeName
}

// Assemble builds RenderParameters from a shape. It fails with an error
// matching glamgen.ErrInvalidParameters when the shape is structurally
// incomplete; it does not look inside SQL fragments.
func Assemble(shape Shape) (RenderParameters, error) {
	header := strings.TrimSpace(shape.Header)
	if header == "" {
		header = DefaultHeader(shape.Name)
	}

	tmplRef := shape.Template
	if tmplRef == "" {
		tmplRef = glamgen.DefaultTemplate
	}
	ref, err := templates.ParseRef(tmplRef)
	if err != nil {
		return RenderParameters{}, err
	}

	p := RenderParameters{
		template:            ref,
		header:              header,
		userDataType:        strings.TrimSpace(shape.UserDataType),
		userDataAttributes:  trimAll(shape.UserDataAttributes),
		attributes:          trimAll(shape.Attributes),
		extractSelectClause: strings.TrimSpace(shape.ExtractSelectClause),
		joinFilter:          strings.TrimSpace(shape.JoinFilter),
		sourceTable:         strings.TrimSpace(shape.SourceTable),
		destinationTable:    strings.TrimSpace(shape.DestinationTable),
	}

	if err := p.check(); err != nil {
		if shape.Name != "" {
			return RenderParameters{}, fmt.Errorf("shape %s: %w", shape.Name, err)
		}
		return RenderParameters{}, err
	}
	return p, nil
}

func (p RenderParameters) check() error {
	if !strings.HasPrefix(p.header, "--") {
		return invalid("header must be a SQL line comment starting with \"--\"")
	}
	if strings.ContainsAny(p.header, "\r\n") {
		return invalid("header must be a single line")
	}

	scalars := []struct{ name, value string }{
		{BindUserDataType, p.userDataType},
		{BindExtractSelectClause, p.extractSelectClause},
		{BindJoinFilter, p.joinFilter},
		{BindSourceTable, p.sourceTable},
		{BindDestinationTable, p.destinationTable},
	}
	for _, f := range scalars {
		if f.value == "" {
			return invalid("%s is required", f.name)
		}
	}

	lists := []struct {
		name  string
		value []string
	}{
		{BindUserDataAttributes, p.userDataAttributes},
		{BindAttributes, p.attributes},
	}
	for _, l := range lists {
		if len(l.value) == 0 {
			return invalid("%s must not be empty", l.name)
		}
		for i, item := range l.value {
			if item == "" {
				return invalid("%s[%d] is blank", l.name, i)
			}
		}
	}

	bindings := p.Bindings()
	for _, name := range bindingOrder {
		if hasDelimiters(bindings[name]) {
			return invalid("%s contains template delimiters", name)
		}
	}
	return nil
}

func hasDelimiters(v any) bool {
	s, _ := v.(string)
	return strings.Contains(s, "{{") || strings.Contains(s, "}}")
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", glamgen.ErrInvalidParameters, fmt.Sprintf(format, args...))
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

package params

import "slices"

// Shape is the configuration of one metrics payload and the query built for it.
type Shape struct {
	Name                string   `yaml:"name"`
	Description         string   `yaml:"description,omitempty"`
	Header              string   `yaml:"header,omitempty"`
	Template            string   `yaml:"template,omitempty"`
	Dataset             string   `yaml:"dataset,omitempty"`
	UserDataType        string   `yaml:"user_data_type"`
	UserDataAttributes  []string `yaml:"user_data_attributes"`
	Attributes          []string `yaml:"attributes"`
	ExtractSelectClause string   `yaml:"extract_select_clause"`
	JoinFilter          string   `yaml:"join_filter"`
	SourceTable         string   `yaml:"source_table"`
	DestinationTable    string   `yaml:"destination_table"`
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	s.UserDataAttributes = slices.Clone(s.UserDataAttributes)
	s.Attributes = slices.Clone(s.Attributes)
	return s
}

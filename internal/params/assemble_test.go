package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/glamgen/internal/templates"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

func telemetryShape() Shape {
	return Shape{
		Name:    "telemetry",
		Dataset: "telemetry_derived",
		UserDataType: `ARRAY<STRUCT<
			metric STRING, metric_type STRING, key STRING, process STRING, agg_type STRING, value FLOAT64
		>>`,
		UserDataAttributes:  []string{"metric", "metric_type", "key", "process"},
		Attributes:          []string{"client_id", "os", "app_version", "app_build_id", "channel"},
		ExtractSelectClause: "* EXCEPT(app_version), CAST(app_version AS INT64) as app_version",
		JoinFilter:          "LEFT JOIN latest_versions USING (channel) WHERE app_version >= (latest_version - 2)",
		SourceTable:         "clients_daily_scalar_aggregates_v1",
		DestinationTable:    "clients_scalar_aggregates_v1",
	}
}

func TestAssemble(t *testing.T) {
	p, err := Assemble(telemetryShape())
	require.NoError(t, err)

	assert.Equal(t, "-- generated by: glamgen render --shape telemetry", p.Header())
	assert.Equal(t, templates.Ref{Set: "glam", Name: "clients_scalar_aggregates_v1.sql"}, p.Template())
	assert.Equal(t, []string{"client_id", "os", "app_version", "app_build_id", "channel"}, p.Attributes())
	assert.Equal(t, []string{"metric", "metric_type", "key", "process"}, p.UserDataAttributes())
	assert.Equal(t, "clients_daily_scalar_aggregates_v1", p.SourceTable())
	assert.Equal(t, "clients_scalar_aggregates_v1", p.DestinationTable())
}

func TestAssemble_ExplicitHeaderAndTemplate(t *testing.T) {
	shape := telemetryShape()
	shape.Header = "  -- generated by: python3 -m bigquery_etl.glam.scalar_aggregates_incremental  "
	shape.Template = "custom/query.sql"

	p, err := Assemble(shape)
	require.NoError(t, err)
	assert.Equal(t, "-- generated by: python3 -m bigquery_etl.glam.scalar_aggregates_incremental", p.Header())
	assert.Equal(t, templates.Ref{Set: "custom", Name: "query.sql"}, p.Template())
}

func TestAssemble_Immutable(t *testing.T) {
	shape := telemetryShape()
	p, err := Assemble(shape)
	require.NoError(t, err)

	shape.Attributes[0] = "mutated"
	attrs := p.Attributes()
	attrs[1] = "mutated"
	p.Bindings()[BindAttributesList].([]string)[2] = "mutated"

	assert.Equal(t, []string{"client_id", "os", "app_version", "app_build_id", "channel"}, p.Attributes())
}

func TestAssemble_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Shape)
		msg    string
	}{
		{"empty attributes", func(s *Shape) { s.Attributes = nil }, "attributes must not be empty"},
		{"empty payload attributes", func(s *Shape) { s.UserDataAttributes = []string{} }, "user_data_attributes must not be empty"},
		{"blank attribute", func(s *Shape) { s.Attributes = []string{"client_id", "  "} }, "attributes[1] is blank"},
		{"missing source", func(s *Shape) { s.SourceTable = "" }, "source_table is required"},
		{"missing destination", func(s *Shape) { s.DestinationTable = " " }, "destination_table is required"},
		{"missing type", func(s *Shape) { s.UserDataType = "" }, "user_data_type is required"},
		{"missing extract", func(s *Shape) { s.ExtractSelectClause = "" }, "extract_select_clause is required"},
		{"missing join filter", func(s *Shape) { s.JoinFilter = "" }, "join_filter is required"},
		{"header not a comment", func(s *Shape) { s.Header = "generated" }, "line comment"},
		{"multi-line header", func(s *Shape) { s.Header = "-- a\n-- b" }, "single line"},
		{"delimiters in fragment", func(s *Shape) { s.JoinFilter = "WHERE {{ .x }}" }, "join_filter contains template delimiters"},
		{"delimiters in list", func(s *Shape) { s.Attributes = []string{"a}}"} }, "attributes contains template delimiters"},
		{"bad template reference", func(s *Shape) { s.Template = "no-slash" }, "<set>/<name>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := telemetryShape()
			tt.mutate(&shape)

			_, err := Assemble(shape)
			require.Error(t, err)
			assert.True(t, errors.Is(err, glamgen.ErrInvalidParameters))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestAssemble_SQLFragmentsNotParsed(t *testing.T) {
	shape := telemetryShape()
	shape.ExtractSelectClause = "*,, CAST(("
	shape.JoinFilter = "WHERE >="

	p, err := Assemble(shape)
	require.NoError(t, err)
	assert.Equal(t, "*,, CAST((", p.ExtractSelectClause())
}

func TestRenderParameters_Bindings(t *testing.T) {
	p, err := Assemble(telemetryShape())
	require.NoError(t, err)

	b := p.Bindings()
	assert.Len(t, b, 10)
	assert.Equal(t, "client_id,os,app_version,app_build_id,channel", b[BindAttributes])
	assert.Equal(t, []string{"client_id", "os", "app_version", "app_build_id", "channel"}, b[BindAttributesList])
	assert.Equal(t, "metric,metric_type,key,process", b[BindUserDataAttributes])
	assert.Equal(t, []string{"metric", "metric_type", "key", "process"}, b[BindUserDataAttributesList])
	assert.Equal(t, p.Header(), b[BindHeader])
	assert.Equal(t, p.UserDataType(), b[BindUserDataType])
	assert.Equal(t, p.ExtractSelectClause(), b[BindExtractSelectClause])
	assert.Equal(t, p.JoinFilter(), b[BindJoinFilter])
	assert.Equal(t, "clients_daily_scalar_aggregates_v1", b[BindSourceTable])
	assert.Equal(t, "clients_scalar_aggregates_v1", b[BindDestinationTable])
}

func TestDefaultHeader(t *testing.T) {
	assert.Equal(t, "-- generated by: glamgen render", DefaultHeader(""))
	assert.Equal(t, "-- generated by: glamgen render --shape glean", DefaultHeader("glean"))
}

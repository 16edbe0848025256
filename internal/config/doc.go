// Package config loads glamgen's tool settings and shape catalog.
//
// Settings come from glamgen.yaml in the working directory, overridden by
// GLAMGEN_* environment variables (a .env file is loaded first). Shapes are
// YAML documents of the form:
//
//	shapes:
//	  - name: telemetry
//	    dataset: telemetry_derived
//	    source_table: clients_daily_scalar_aggregates_v1
//	    destination_table: clients_scalar_aggregates_v1
//	    user_data_type: ARRAY<STRUCT<metric STRING, agg_type STRING, value FLOAT64>>
//	    user_data_attributes: [metric]
//	    attributes: [client_id, os, app_version, app_build_id, channel]
//	    extract_select_clause: "*"
//	    join_filter: "WHERE TRUE"
//
// The telemetry and glean shapes are built in; a shapes file adds to them and
// replaces built-in shapes of the same name.
package config

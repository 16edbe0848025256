// Package templates resolves SQL query templates by template set and name.
//
// Templates are Go text/template documents. Bindings are referenced as
// {{ .name }}; list bindings can be iterated with range or joined with the
// join helper. Executing a template that references a missing binding fails.
//
// The glam set ships embedded in the binary:
//
//	store := templates.NewEmbeddedStore()
//	tmpl, err := store.Resolve("glam", "clients_scalar_aggregates_v1.sql")
//
// A directory on disk with the same layout can replace it through
// NewStore(filesystem.NewOSFileSystem(dir)).
package templates

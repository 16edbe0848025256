// Package render turns RenderParameters into the final SQL document: it
// resolves the template, substitutes the bindings and normalizes the result
// with the SQL formatter. Either the complete formatted statement is returned
// or an error; never partial text.
package render

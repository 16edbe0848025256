// Package sqlfmt formats BigQuery Standard SQL into a canonical layout.
//
// Formatting runs in three steps:
//
//  1. Lex splits the text into tokens, keeping comments and uppercasing
//     reserved keywords.
//  2. A structural check rejects text that cannot be a well-formed statement:
//     unbalanced brackets or CASE expressions, dangling commas, operators and
//     clause keywords without operands.
//  3. The printer lays tokens out one clause per line, one list item per line,
//     and subqueries as indented blocks.
//
// The layout depends only on the token sequence, so Format is idempotent.
// Names, types and semantics are never checked.
package sqlfmt

// Package ast models the comma-delimited constructs of the supported
// ECMAScript subset.
//
// It is deliberately not a full expression tree: the trailing-comma checker
// only needs each bracketed list (literal, pattern, specifier list,
// parameter list, argument list) together with its ordered element slots and
// exact token-index ranges. The parser records a flat slice of Constructs;
// SortPreOrder restores depth-first visit order for the traversal.
//
// All values are ephemeral: rebuilt per file per run, never shared across
// analysis passes.
package ast

// Package query holds the parsed response tree for provider Query API
// calls. Node names are matched case-insensitively; the tree carries no
// attributes because the provider's responses never use them.
package query

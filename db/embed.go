// Package db embeds the snapshot schema migrations so a deployed
// binary can migrate without the source tree.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// Package migrations holds the embedded goose SQL migrations that define the
// storefront schema (users and flavors tables).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Package migrations embeds the SQL migration files so they ship inside the
// binary and golang-migrate can read them through an iofs source.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

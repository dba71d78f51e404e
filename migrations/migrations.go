// Package migrations embeds the SQL schema applied at startup.
package migrations

import "embed"

// FS holds the versioned *.up.sql files.
//
//go:embed *.up.sql
var FS embed.FS

// Package database manages the SQLite connection and schema migrations.
//
// Migrations are embedded in the binary (see the migrations package) and
// applied in version order, each in its own transaction.
package database

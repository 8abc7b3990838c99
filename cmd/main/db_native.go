//go:build !cgo_sqlite

package main

import (
	_ "modernc.org/sqlite"
)

// sqliteDriver is the pure-Go driver, so the default build needs no C toolchain.
const sqliteDriver = "sqlite"

//go:build tools

package tools

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose (migrations) is pinned via the blank import above:
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir migrations postgres "$DATABASE_DSN" up

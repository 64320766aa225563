// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package uuidv7 generates the time-ordered IDs used as primary keys in
// every content table and as the prefix of every blob object key. UUIDv7
// sorts by creation time, which keeps PostgreSQL index pages append-mostly
// where random v4 IDs would fragment them.
package uuidv7

import "github.com/google/uuid"

// New returns a fresh UUIDv7 string. It panics only when the OS entropy
// source fails, which is not a recoverable condition.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

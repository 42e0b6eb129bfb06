// Package ident mints the prefixed opaque identifiers used across the
// dashboard ("TASK-…", "ARH-…", "BUL-…").
package ident

import "github.com/google/uuid"

func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

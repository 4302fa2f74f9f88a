package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used for opaque public identifiers such as user ids.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewApplicationID returns APP-<unix-millis>-<4 hex>. The random suffix keeps
// ids unique when two submissions land in the same millisecond.
func NewApplicationID() string {
	return prefixed("APP")
}

// NewStudentID returns STU-<unix-millis>-<4 hex>.
func NewStudentID() string {
	return prefixed("STU")
}

func prefixed(prefix string) string {
	b := make([]byte, 2)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b))
}

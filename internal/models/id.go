// ABOUTME: Local placeholder ID generation for records not yet saved remotely.
// ABOUTME: Placeholder IDs are ULID-based and deliberately not GUID-shaped.
package models

import (
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// LocalIDPrefix marks IDs generated on this device before the server has
// assigned a real one. The server assigns canonical GUIDs; a prefixed ULID
// can never be mistaken for one.
const LocalIDPrefix = "local-"

// NewLocalID generates a placeholder ID for optimistic local inserts.
func NewLocalID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return LocalIDPrefix + ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// IsLocalID reports whether an ID was generated locally and must not be
// sent to the server as a path segment.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// ABOUTME: Device identity generation for session storage.
// ABOUTME: One ULID per install, minted on first run.
package session

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newDeviceID mints a ULID for this install.
func newDeviceID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

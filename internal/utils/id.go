package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a 32-character hex identifier for domain records
// (clients, properties, reservations).  IDs come from crypto/rand so
// they carry no ordering or process state; the reservation service takes
// this as its injected generator and tests substitute a deterministic
// one.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read only fails when the OS entropy source is broken;
		// there is no sensible recovery at this level.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

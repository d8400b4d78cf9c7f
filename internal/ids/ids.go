package ids

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// New generates an opaque random id.
func New() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fallbackID()
	}
	return hex.EncodeToString(b[:])
}

func fallbackID() string {
	return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
}

// Package objectid generates 24-character lowercase-hex identifiers with the
// MongoDB ObjectID layout: a 4-byte big-endian unix timestamp, a 5-byte
// per-process random value and a 3-byte incrementing counter seeded randomly.
//
// Order ids and request ids use this scheme so every payment attempt gets a
// fixed-length, globally unique, roughly time-sortable identifier.
package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"
)

const encodedLen = 24

var (
	processUnique = mustRandomBytes(5)
	counter       = mustRandomUint32()
)

// New returns a fresh 24-character hexadecimal identifier.
func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().Unix()))
	copy(b[4:9], processUnique)

	c := atomic.AddUint32(&counter, 1)
	b[9] = byte(c >> 16)
	b[10] = byte(c >> 8)
	b[11] = byte(c)

	return hex.EncodeToString(b[:])
}

// IsValid reports whether s is a well-formed 24-character hex identifier.
func IsValid(s string) bool {
	if len(s) != encodedLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func mustRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("objectid: cannot seed process unique bytes: " + err.Error())
	}
	return b
}

func mustRandomUint32() uint32 {
	b := mustRandomBytes(4)
	return binary.BigEndian.Uint32(b)
}

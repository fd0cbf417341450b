package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns the shuffle seed for a date: the first 8 bytes of
// HMAC(salt, YYYY-MM-DD). Every player with the same salt gets the same deal.
func Seed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

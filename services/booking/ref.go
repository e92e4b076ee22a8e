package booking

import (
	"crypto/rand"
	"time"
)

// refAlphabet avoids 0/O and 1/I so references survive being read aloud.
const refAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const refSuffixLen = 4

// NewBookingRef builds a human-shareable booking reference: a date prefix
// plus a short random suffix, e.g. "CM250828-K7QD". Uniqueness is
// probabilistic; the suffix space makes same-day collisions astronomically
// unlikely at this booking volume.
func NewBookingRef(t time.Time) string {
	buf := make([]byte, refSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall back to
		// the clock so submission still succeeds.
		nano := t.UnixNano()
		for i := range buf {
			buf[i] = byte(nano >> (8 * i))
		}
	}
	for i := range buf {
		buf[i] = refAlphabet[int(buf[i])%len(refAlphabet)]
	}
	return "CM" + t.Format("060102") + "-" + string(buf)
}

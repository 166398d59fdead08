package deck

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG generator seeded once with seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TimeSeed derives a seed from the current time
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Shuffle permutes d in place with a Fisher-Yates pass from the top of the
// deck down, drawing j uniformly from [0, i] for each i.
func Shuffle(d *Deck, src Source) {
	for i := len(d) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// ShuffleReseeding reproduces the legacy shuffle, which reseeded the
// generator from a one-second clock on every swap. Runs that finish within
// one second reuse the same seed on each draw, so the result is biased and
// repeats for the whole second. Use Shuffle unless output parity with the
// legacy program is required.
func ShuffleReseeding(d *Deck, clock func() time.Time) {
	for i := len(d) - 1; i > 0; i-- {
		src := NewSource(uint64(clock().Unix()))
		j := src.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

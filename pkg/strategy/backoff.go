package strategy

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff computes the delay before a retry attempt. Implementations must
// be safe for concurrent use. Attempt numbering starts at 1 for the first
// retry; non-positive attempts yield zero delay.
type Backoff interface {
	Delay(attempt int) time.Duration
}

// ConstantBackoff waits the same interval between every retry.
type ConstantBackoff struct {
	Interval time.Duration
}

func (b ConstantBackoff) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return b.Interval
}

// ExponentialBackoff grows the delay geometrically and caps it at Max.
// Jitter, when positive, randomizes each delay by up to that fraction in
// either direction so simultaneous clients spread their retries.
type ExponentialBackoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64

	// Rand supplies the jitter source; nil uses the package random
	// generator. Injectable so tests can be deterministic.
	Rand func() float64
}

// Delay computes min(Initial * Multiplier^(attempt-1), Max), then applies
// jitter. Zero fields take defaults: 1s initial, 30s max, multiplier 2.
func (b ExponentialBackoff) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := b.Initial
	if initial <= 0 {
		initial = time.Second
	}
	ceiling := b.Max
	if ceiling <= 0 {
		ceiling = 30 * time.Second
	}
	multiplier := b.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}

	d := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	if d > float64(ceiling) {
		d = float64(ceiling)
	}

	if b.Jitter > 0 {
		random := b.Rand
		if random == nil {
			random = rand.Float64
		}
		// Scale into [1-Jitter, 1+Jitter].
		d *= 1 + (random()*2-1)*b.Jitter
	}

	return time.Duration(d)
}

// DefaultBackoff is a production-ready retry policy: exponential growth
// from one second, capped at thirty, with 10% jitter.
func DefaultBackoff() Backoff {
	return ExponentialBackoff{
		Initial:    time.Second,
		Max:        30 * time.Second,
		Multiplier: 2,
		Jitter:     0.1,
	}
}

// Package rng implements the deterministic linear-congruential generator the
// simulation and demo-data code draw from. State is an explicit value passed
// to and returned from every draw; callers that need independent sequences
// seed separate states (sub-stream offsets are documented at the call sites).
package rng

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// State is the generator state. The zero value is a valid seed.
type State int64

// Seed normalizes an arbitrary integer seed into generator state.
func Seed(seed int64) State {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return State(s)
}

// Next advances the generator one step and returns a float in [0, 1) together
// with the new state. Same state in, same value out.
func Next(s State) (float64, State) {
	next := (int64(s)*multiplier + increment) % modulus
	return float64(next) / modulus, State(next)
}

// NextIntn draws floor(Next()*n), i.e. a uniform integer in [0, n).
func NextIntn(s State, n int) (int, State) {
	f, next := Next(s)
	return int(f * float64(n)), next
}

package pairs

import "math"

// Signal is the per-day trading state for a pair: long spread, short
// spread, or flat.
type Signal int8

const (
	Flat  Signal = 0
	Long  Signal = +1
	Short Signal = -1
)

func (s Signal) String() string {
	switch s {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "flat"
	}
}

// Transition advances the signal automaton by one step. It returns the
// next held state and the signal emitted for the day.
//
// On a NaN z-score the emitted signal is forced to Flat but the held
// state is left untouched: no transition logic runs for that step. The
// emitted/held asymmetry is intentional and covered by tests; callers
// must not collapse the two return values.
func Transition(state Signal, z, entry, exit float64) (next Signal, emitted Signal) {
	if math.IsNaN(z) {
		return state, Flat
	}

	switch state {
	case Flat:
		if z > entry {
			return Short, Short
		}
		if z < -entry {
			return Long, Long
		}
		return Flat, Flat

	case Long:
		if z >= -exit {
			return Flat, Flat
		}
		return Long, Long

	case Short:
		if z <= exit {
			return Flat, Flat
		}
		return Short, Short
	}

	return state, Flat
}

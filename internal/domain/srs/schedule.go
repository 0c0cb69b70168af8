// Package srs implements the spaced-repetition schedule used for
// information items. The schedule is a fixed forgetting-curve cadence:
// unlike adaptive algorithms (SM-2, FSRS), the checkpoints depend only
// on the creation instant, never on recall performance.
package srs

import "time"

// NumCheckpoints is the number of review checkpoints in a schedule.
const NumCheckpoints = 5

// checkpointOffsets are the fixed offsets from the creation instant,
// approximating the Ebbinghaus forgetting curve.
var checkpointOffsets = [NumCheckpoints]time.Duration{
	time.Hour,
	24 * time.Hour,
	4 * 24 * time.Hour,
	15 * 24 * time.Hour,
	30 * 24 * time.Hour,
}

// ReviewSchedule holds the five review checkpoints for an information item,
// in strictly increasing order.
type ReviewSchedule struct {
	First  time.Time
	Second time.Time
	Third  time.Time
	Fourth time.Time
	Fifth  time.Time
}

// Schedule computes the review schedule for an item created at t0.
// It is a pure function: deterministic, no side effects, and defined for
// any t0. The returned checkpoints are t0 plus +1h, +1d, +4d, +15d and
// +30d respectively, so they are always strictly increasing.
func Schedule(t0 time.Time) ReviewSchedule {
	return ReviewSchedule{
		First:  t0.Add(checkpointOffsets[0]),
		Second: t0.Add(checkpointOffsets[1]),
		Third:  t0.Add(checkpointOffsets[2]),
		Fourth: t0.Add(checkpointOffsets[3]),
		Fifth:  t0.Add(checkpointOffsets[4]),
	}
}

// Checkpoints returns the checkpoints as an ordered slice.
func (s ReviewSchedule) Checkpoints() []time.Time {
	return []time.Time{s.First, s.Second, s.Third, s.Fourth, s.Fifth}
}

// IsStrictlyIncreasing reports whether every checkpoint is strictly after
// the previous one. It holds for any schedule produced by Schedule and is
// exposed so stored values can be re-checked after a round trip through
// the database.
func (s ReviewSchedule) IsStrictlyIncreasing() bool {
	cps := s.Checkpoints()
	for i := 1; i < len(cps); i++ {
		if !cps[i].After(cps[i-1]) {
			return false
		}
	}
	return true
}

package system

import (
	"math/rand"
)

// Scheduler gates spawn admissions on a per-tick countdown.
// The wait is accumulated elapsed time checked each tick, never a
// blocking sleep, so spawn decisions interleave deterministically with
// clock and capture checks within the same tick.
type Scheduler struct {
	MinWait float64
	MaxWait float64

	rng       *rand.Rand
	remaining float64
}

// NewScheduler creates a scheduler with the first wait already armed
func NewScheduler(minWait, maxWait float64, rng *rand.Rand) *Scheduler {
	s := &Scheduler{MinWait: minWait, MaxWait: maxWait, rng: rng}
	s.Rearm()
	return s
}

// Tick decrements the wait by dt and reports whether a spawn is due.
// The caller admits the spawn (subject to pool capacity) and then
// calls Rearm; a due-but-blocked spawn stays due on later ticks until
// the pool has room.
func (s *Scheduler) Tick(dt float64) bool {
	if s.remaining > 0 {
		s.remaining -= dt
	}
	return s.remaining <= 0
}

// Rearm samples the next wait uniformly from [MinWait, MaxWait]
func (s *Scheduler) Rearm() {
	s.remaining = s.MinWait + s.rng.Float64()*(s.MaxWait-s.MinWait)
}

// SampleSpeed draws a chaser speed uniformly from [minSpeed, maxSpeed]
func SampleSpeed(minSpeed, maxSpeed float64, rng *rand.Rand) float64 {
	return minSpeed + rng.Float64()*(maxSpeed-minSpeed)
}

package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/snatch/component"
	"github.com/lixenwraith/snatch/event"
	"github.com/lixenwraith/snatch/route"
	"github.com/lixenwraith/snatch/system"
	"github.com/lixenwraith/snatch/vmath"
)

// Phase is the round lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Round is the single authority over the chaser pool, the countdown
// clock, spawn cadence, scoring and phase transitions. It is tick
// driven and single threaded: one Tick per frame, no operation blocks,
// and collaborators only ever see snapshots and drained events.
type Round struct {
	cfg Config

	rng       *rand.Rand
	selector  *route.Selector
	mover     *system.Mover
	scheduler *system.Scheduler
	events    *event.Queue

	phase Phase
	clock float64

	score int
	total int

	nextChaserID int
	pool         []*component.Chaser

	player vmath.Vec3

	warned bool
}

// NewRound validates cfg and constructs an idle round
func NewRound(cfg Config) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Round{
		cfg:       cfg,
		rng:       rng,
		selector:  route.NewSelector(cfg.Routes, rng),
		mover:     &system.Mover{ReachDistance: cfg.ReachDistance, Mode: cfg.Traversal},
		scheduler: system.NewScheduler(cfg.MinSpawnWait, cfg.MaxSpawnWait, rng),
		events:    event.NewQueue(),
		phase:     PhaseIdle,
	}, nil
}

// Start begins the first round. The clock gets the configured grace
// period on top of the game time; restarts do not.
func (r *Round) Start() {
	if r.phase != PhaseIdle {
		return
	}
	r.begin(r.cfg.GameTime + r.cfg.GracePeriod)
}

// Restart begins a fresh round from game over, triggered by a discrete
// external input event. Ignored in any other phase.
func (r *Round) Restart() {
	if r.phase != PhaseGameOver {
		return
	}
	r.begin(r.cfg.GameTime)
}

// begin resets session counters and enters the running phase
func (r *Round) begin(clock float64) {
	r.score = 0
	r.total = 0
	r.clearPool()
	r.clock = clock
	r.warned = false
	r.scheduler.Rearm()
	r.phase = PhaseRunning
	r.events.Push(event.Event{Type: event.EventRoundStarted})
}

// SetPlayerPosition updates the capture point. Continuous input, safe
// to call in any phase.
func (r *Round) SetPlayerPosition(p vmath.Vec3) {
	r.player = p
}

// Tick advances the round by dt seconds. Order within a tick is fixed:
// clock, spawn admission, movement and escape retirement, capture.
// Only the running phase ticks.
func (r *Round) Tick(dt float64) {
	if r.phase != PhaseRunning || dt <= 0 {
		return
	}

	r.clock -= dt
	if r.clock <= 0 {
		r.clock = 0
		r.end()
		return
	}

	if !r.warned && r.clock <= r.cfg.WarningThreshold {
		r.warned = true
		r.events.Push(event.Event{Type: event.EventTimeWarning})
	}

	if r.scheduler.Tick(dt) && len(r.pool) < r.cfg.SpawnCount {
		r.admitChaser()
		r.scheduler.Rearm()
	}

	r.advanceChasers(dt)
	r.captureChaser()
}

// admitChaser spawns one chaser on a randomly selected route. The
// capacity check in Tick is authoritative; the guard here only rejects
// a mutation that would break the pool invariant.
func (r *Round) admitChaser() {
	if len(r.pool) >= r.cfg.SpawnCount {
		return
	}

	routeIdx, rt := r.selector.Pick()
	r.nextChaserID++
	ch := &component.Chaser{
		ID:         r.nextChaserID,
		RouteIndex: routeIdx,
		// Placed on the first waypoint, heading for the second
		WaypointIndex: 1,
		Position:      rt.Start(),
		Speed:         system.SampleSpeed(r.cfg.MinSpeed, r.cfg.MaxSpeed, r.rng),
		Forward:       true,
		State:         component.ChaserActive,
	}
	r.pool = append(r.pool, ch)
	r.total++
	r.events.Push(event.Event{Type: event.EventChaserSpawned, ChaserID: ch.ID})
}

// advanceChasers moves every active chaser and retires completions in
// the same tick. An escaped chaser is a silent miss; the missed count
// is derived, no counter to update.
func (r *Round) advanceChasers(dt float64) {
	for i := 0; i < len(r.pool); {
		ch := r.pool[i]
		if r.mover.Advance(ch, r.cfg.Routes[ch.RouteIndex], dt) {
			ch.State = component.ChaserCompleted
			r.removeAt(i)
			r.events.Push(event.Event{Type: event.EventChaserEscaped, ChaserID: ch.ID})
			continue
		}
		i++
	}
}

// captureChaser scans the pool in order and retires the first chaser
// within capture radius. At most one capture per tick; first match
// wins, not the closest.
func (r *Round) captureChaser() {
	for i, ch := range r.pool {
		if system.WithinCaptureRadius(r.player, ch.Position, r.cfg.CaptureRadius) {
			ch.State = component.ChaserCaught
			r.removeAt(i)
			r.score++
			r.events.Push(event.Event{Type: event.EventChaserCaught, ChaserID: ch.ID})
			return
		}
	}
}

// removeAt drops the chaser at index i, preserving pool order so the
// capture tie-break stays stable. The vacated tail slot is nilled so
// the backing array does not keep retired chasers alive.
func (r *Round) removeAt(i int) {
	last := len(r.pool) - 1
	copy(r.pool[i:], r.pool[i+1:])
	r.pool[last] = nil
	r.pool = r.pool[:last]
}

// clearPool empties the pool and drops all chaser references
func (r *Round) clearPool() {
	for i := range r.pool {
		r.pool[i] = nil
	}
	r.pool = r.pool[:0]
}

// end tears the round down: spawning stops and the pool empties within
// the same tick
func (r *Round) end() {
	r.phase = PhaseGameOver
	r.clearPool()
	r.events.Push(event.Event{Type: event.EventGameOver})
}

// Phase returns the current lifecycle phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Score returns chasers caught this round
func (r *Round) Score() int {
	return r.score
}

// Total returns chasers spawned this round
func (r *Round) Total() int {
	return r.total
}

// Missed is derived: spawned minus caught
func (r *Round) Missed() int {
	return r.total - r.score
}

// TimeLeft returns the remaining clock in seconds
func (r *Round) TimeLeft() float64 {
	return r.clock
}

// Warning reports whether the clock is inside the warning threshold
func (r *Round) Warning() bool {
	return r.phase == PhaseRunning && r.clock <= r.cfg.WarningThreshold
}

// PoolSize returns the number of active chasers
func (r *Round) PoolSize() int {
	return len(r.pool)
}

// Events exposes the queue for the frame consumer to drain
func (r *Round) Events() *event.Queue {
	return r.events
}

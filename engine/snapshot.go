package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/snatch/component"
	"github.com/lixenwraith/snatch/vmath"
)

// ChaserView is a read-only copy of one chaser for presentation
type ChaserView struct {
	ID       int
	Position vmath.Vec3
	State    component.ChaserState
}

// Snapshot is the per-frame read model for HUD and render sinks.
// Everything is copied; holding a snapshot across ticks is safe.
type Snapshot struct {
	Phase    Phase
	Score    int
	Missed   int
	TimeLeft float64
	Clock    string
	Warning  bool
	GameOver bool
	Chasers  []ChaserView
}

// Snapshot copies the observable round state
func (r *Round) Snapshot() Snapshot {
	chasers := make([]ChaserView, len(r.pool))
	for i, ch := range r.pool {
		chasers[i] = ChaserView{ID: ch.ID, Position: ch.Position, State: ch.State}
	}
	return Snapshot{
		Phase:    r.phase,
		Score:    r.score,
		Missed:   r.Missed(),
		TimeLeft: r.clock,
		Clock:    FormatClock(r.clock),
		Warning:  r.Warning(),
		GameOver: r.phase == PhaseGameOver,
		Chasers:  chasers,
	}
}

// FormatClock renders seconds as minutes:seconds with zero-padded
// two-digit seconds, e.g. 75.3 -> "1:15"
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", whole/60, whole%60)
}

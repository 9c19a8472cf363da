package engine

import (
	"fmt"

	"github.com/lixenwraith/snatch/parameter"
	"github.com/lixenwraith/snatch/route"
	"github.com/lixenwraith/snatch/system"
)

// Config holds everything a round needs, set once at construction.
// Misconfiguration is rejected by Validate before a round exists;
// nothing in the tick path can fail afterwards.
type Config struct {
	// MinSpeed / MaxSpeed bound the per-chaser speed sampled at spawn
	MinSpeed float64
	MaxSpeed float64

	// ReachDistance is the waypoint arrival tolerance
	ReachDistance float64

	// MinSpawnWait / MaxSpawnWait bound the wait between admissions
	MinSpawnWait float64
	MaxSpawnWait float64

	// SpawnCount is the active pool capacity
	SpawnCount int

	// GameTime is the round duration in seconds
	GameTime float64

	// GracePeriod is added to the clock on the first start only, to
	// mask front-end setup latency; restarts run plain GameTime
	GracePeriod float64

	// WarningThreshold is the remaining time at which the warning
	// state turns on
	WarningThreshold float64

	// CaptureRadius is the player capture distance
	CaptureRadius float64

	// Routes is the registered route set, each with at least two
	// waypoints
	Routes []route.Route

	// Traversal selects forward (default) or bounce movement
	Traversal system.TraversalMode

	// Seed for the round RNG; 0 seeds from the clock
	Seed int64
}

// DefaultConfig returns the stock tuning with no routes registered
func DefaultConfig() Config {
	return Config{
		MinSpeed:         parameter.ChaserMinSpeed,
		MaxSpeed:         parameter.ChaserMaxSpeed,
		ReachDistance:    parameter.ReachDistance,
		MinSpawnWait:     parameter.MinSpawnWait,
		MaxSpawnWait:     parameter.MaxSpawnWait,
		SpawnCount:       parameter.SpawnCount,
		GameTime:         parameter.GameTime,
		GracePeriod:      parameter.GracePeriod,
		WarningThreshold: parameter.WarningThreshold,
		CaptureRadius:    parameter.CaptureRadius,
	}
}

// Validate rejects misconfiguration up front
func (c Config) Validate() error {
	if c.MinSpeed <= 0 || c.MaxSpeed <= 0 {
		return fmt.Errorf("config: speeds must be positive, got [%v, %v]", c.MinSpeed, c.MaxSpeed)
	}
	if c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("config: min speed %v exceeds max speed %v", c.MinSpeed, c.MaxSpeed)
	}
	if c.ReachDistance <= 0 {
		return fmt.Errorf("config: reach distance must be positive, got %v", c.ReachDistance)
	}
	if c.MinSpawnWait < 0 || c.MaxSpawnWait < 0 {
		return fmt.Errorf("config: spawn waits must be non-negative, got [%v, %v]", c.MinSpawnWait, c.MaxSpawnWait)
	}
	if c.MinSpawnWait > c.MaxSpawnWait {
		return fmt.Errorf("config: min spawn wait %v exceeds max %v", c.MinSpawnWait, c.MaxSpawnWait)
	}
	if c.SpawnCount <= 0 {
		return fmt.Errorf("config: spawn count must be positive, got %d", c.SpawnCount)
	}
	if c.GameTime <= 0 {
		return fmt.Errorf("config: game time must be positive, got %v", c.GameTime)
	}
	if c.GracePeriod < 0 {
		return fmt.Errorf("config: grace period must be non-negative, got %v", c.GracePeriod)
	}
	if c.CaptureRadius <= 0 {
		return fmt.Errorf("config: capture radius must be positive, got %v", c.CaptureRadius)
	}
	if len(c.Routes) == 0 {
		return fmt.Errorf("config: no routes registered")
	}
	for i, r := range c.Routes {
		if r.Len() < 2 {
			return fmt.Errorf("config: route %d has %d waypoints, need at least 2", i, r.Len())
		}
	}
	return nil
}

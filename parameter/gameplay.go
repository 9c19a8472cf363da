package parameter

// Round Clock
const (
	// GameTime is the round duration in seconds
	GameTime = 60.0

	// GracePeriod is added to the clock on round start to mask
	// front-end setup latency; restart restores the plain GameTime
	GracePeriod = 1.0

	// WarningThreshold is the remaining time below which the HUD
	// switches to the warning state
	WarningThreshold = 11.0
)

// Chaser Movement
const (
	// ChaserMinSpeed / ChaserMaxSpeed bound the per-chaser speed
	// sampled once at spawn (world units per second)
	ChaserMinSpeed = 3.0
	ChaserMaxSpeed = 7.0

	// ReachDistance is the arrival tolerance at a waypoint
	ReachDistance = 0.25
)

// Spawning
const (
	// SpawnCount is the chaser pool capacity
	SpawnCount = 5

	// MinSpawnWait / MaxSpawnWait bound the uniform wait between
	// spawn admissions (seconds)
	MinSpawnWait = 1.0
	MaxSpawnWait = 3.0
)

// Capture
const (
	// CaptureRadius is the max distance at which the player point
	// retires a chaser as caught
	CaptureRadius = 1.5
)

package game

// Screen dimensions (in screen pixels). Everything in the simulation is
// expressed in this coordinate space; the frontends only scale it up.
const (
	ScreenWidth  = 160
	ScreenHeight = 120
)

// Fixed timestep.
const (
	TickRate        = 60
	FramesPerMinute = 60 * TickRate
)

// Entity sizes (AABB side length, in pixels).
const (
	PlayerSize = 8
	EnemySize  = 8
)

// Player tuning.
const (
	PlayerStartHP    = 100.0
	PlayerMaxHP      = 200.0
	PlayerBaseSpeed  = 2.0
	PlayerMaxSpeed   = 4.0
	LevelUpHeal      = 10.0
	LevelUpSpeedGain = 0.2
	StartExpToLevel  = 10
)

// Enemy spawning. The interval shrinks as minutes pass, the stat
// multipliers grow (see difficulty.go).
const (
	SpawnInterval    = 30
	SpawnIntervalMin = 10
	SpawnIntervalCut = 2 // frames removed per elapsed minute
)

// Level-up choice screen.
const MaxLevelUpOptions = 3

// Music timing.
const (
	BaseBPM         = 120
	AmbientInterval = 120 // ticks between ambient pad triggers
	DOTInterval     = 15  // ticks between sacred-flame damage pulses
)

// Window defaults (desktop frontend).
const (
	DefaultScale = 4
	WindowTitle  = "Beat Survivor"
)

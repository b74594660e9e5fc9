package game

// Smoothing constants are applied once per tick and are not scaled by the
// elapsed delta, so the feel of the controls assumes a fixed frame rate
// (the clients target 60 fps).
const (
	SpeedDamping  = 5.0
	AxisDamping   = 2.0
	CameraKeep    = 0.9
	CameraLead    = 40.0
	DPadSpeed     = 2.0
	MoveDeadZone  = 0.02
	DefaultRadius = 10.0

	DecidingTimeout = 0.5
	WaterReach      = 20.0

	SleepDrainSeconds  = 60.0
	HungerDrainSeconds = 30.0
	ThirstDrainSeconds = 15.0
)

var (
	DefaultSpawn        = Vec2{X: 150, Y: 100}
	DefaultViewport     = Vec2{X: 320, Y: 240}
	DefaultHalfViewport = DefaultViewport.Scale(0.5)
)

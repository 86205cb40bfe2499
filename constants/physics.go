package constants

// Ball Physics
const (
	// BallRadius is the fixed sphere radius in world units
	BallRadius = 0.25

	// Gravity is the vertical acceleration in units/s²
	Gravity = -9.8

	// RelaunchSpeed is the vertical speed assigned on every floor contact
	// Not a reflection: bounce height stays constant regardless of impact speed
	RelaunchSpeed = 4.5

	// SpinSpeed is the spin rate in degrees per second
	SpinSpeed = 120.0

	// MaxStepSeconds clamps a single integration step
	MaxStepSeconds = 0.05
)

// Camera and Viewing Box
const (
	// FieldOfViewDeg is the vertical field of view
	FieldOfViewDeg = 45.0

	// CameraDistance is the distance from the camera to the box origin
	CameraDistance = 2.0

	// NearPlane and FarPlane bound the perspective projection
	NearPlane = 0.1
	FarPlane  = 50.0
)

// Initial Body Seeding
const (
	SeedX  = -0.5
	SeedVX = 0.8
	SeedVY = RelaunchSpeed

	// Extended mode staggers each display's ball by its creation index
	ExtendedOffsetX  = 0.5
	ExtendedOffsetY  = 0.2
	ExtendedOffsetVX = 0.1
)

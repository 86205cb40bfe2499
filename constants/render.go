package constants

// Checker Texture
const (
	TextureSize    = 128
	CheckerColumns = 16
	CheckerRows    = 8
)

// Sphere Tessellation
const (
	CoarseSlices = 16
	CoarseStacks = 8
	FineSlices   = 64
	FineStacks   = 32
)

// Ball Orientation (degrees)
const (
	BallTiltDeg = 90.0
	BallYawDeg  = -15.0
)

// Grid and Walls
const (
	// GridExtent is the half-size of the floor and back wall grid
	GridExtent = 1.0
	GridStep   = 0.2
	GridLines  = 10 // lines per axis minus one: 2*GridExtent/GridStep

	// BackWallZ is the depth of the back wall plane used for grid and wall shadow
	BackWallZ = -1.0

	// WallHeight is the height of the back wall grid above the floor
	WallHeight = 2.0
)

// Shadows
const (
	FloorShadowAlpha = 0.4
	WallShadowAlpha  = 0.3

	// ShadowSquash flattens the shadow sphere along the projection axis
	ShadowSquash = 0.1

	// ShadowLift keeps the floor shadow above the floor grid depth
	ShadowLift = 0.001
)

// Lighting
const (
	LightDirX = -0.5
	LightDirY = 0.8
	LightDirZ = 0.6

	// AmbientTerm combines global (0.3) and light (0.4) ambient against the 0.2 default material ambient
	AmbientTerm = 0.14

	// DiffuseTerm is the default material diffuse reflectance
	DiffuseTerm = 0.8
)

package component

// Position is an entity's location in world units.
// Pure data, zero methods. All mutations happen in System functions.
type Position struct {
	X float64
	Y float64
}

// Velocity is an entity's movement per second.
type Velocity struct {
	DX float64
	DY float64
}

// Health tracks hit points and per-second decay for the demo world.
type Health struct {
	Current int32
	Max     int32
	Decay   int32 // points lost per second, 0 = stable
}

// Sprite names the render assets an entity draws with.
type Sprite struct {
	Texture   string
	Material  string
	Triangles int32
	Visible   bool
}

package component

// Transform is a render-space position and rotation, synced from the physics
// body for dynamic entities.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

package component

// Input is the per-frame control state, written by the input system and read
// by the movement system.
type Input struct {
	MoveX  float64 // -1..1, left/right
	Rotate float64 // -1..1, counterclockwise/clockwise
	Drop   bool    // soft drop
}

var InputComponent = NewComponent[Input]()

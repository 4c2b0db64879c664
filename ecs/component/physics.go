package component

import "github.com/jakecoffman/cp"

// RigidBody stores Chipmunk runtime data for a dynamic block.
type RigidBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var RigidBodyComponent = NewComponent[RigidBody]()

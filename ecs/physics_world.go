package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/prefabs"
)

const (
	// CollisionTypeBoard marks the static floor and walls.
	CollisionTypeBoard cp.CollisionType = iota + 1
	// CollisionTypeBlock marks dynamic tetromino blocks.
	CollisionTypeBlock
)

// PhysicsWorld owns the Chipmunk space, the static board geometry, and the
// bookkeeping between shapes and block entities.
type PhysicsWorld struct {
	board common.Board
	cfg   prefabs.PhysicsSpec
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
}

// NewPhysicsWorld creates a space with gravity pointing down the screen and
// body sleeping enabled; piece settling relies on sleep detection.
func NewPhysicsWorld(board common.Board, cfg prefabs.PhysicsSpec) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	space.SleepTimeThreshold = cfg.SleepThreshold

	pw := &PhysicsWorld{
		board:         board,
		cfg:           cfg,
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.buildBoard()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Board returns the playfield geometry.
func (pw *PhysicsWorld) Board() common.Board {
	return pw.board
}

// Tuning returns the current physics tuning.
func (pw *PhysicsWorld) Tuning() prefabs.PhysicsSpec {
	return pw.cfg
}

// ApplyTuning swaps in new tuning values. Gravity, sleep threshold, and
// solver iterations take effect immediately; per-body values (mass, friction)
// apply to blocks spawned afterwards.
func (pw *PhysicsWorld) ApplyTuning(cfg prefabs.PhysicsSpec) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.cfg = cfg
	pw.space.Iterations = uint(cfg.Iterations)
	pw.space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	pw.space.SleepTimeThreshold = cfg.SleepThreshold
	pw.WakeAll()
}

// AddBlockBody creates the dynamic body and box shape for one block entity
// centered at (x, y).
func (pw *PhysicsWorld) AddBlockBody(e Entity, x, y float64) (*cp.Body, *cp.Shape) {
	bs := pw.board.BlockSize
	mass := pw.cfg.BlockMass
	body := cp.NewBody(mass, cp.MomentForBox(mass, bs, bs))
	body.SetPosition(cp.Vector{X: x, Y: y})

	// Rapier-style per-body linear damping; Chipmunk only damps per space.
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, _ float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity, pw.cfg.LinearDamping, dt)
	})

	// Slight inset so jointed neighbors don't fight their own contacts.
	shape := cp.NewBox(body, bs-2, bs-2, 0)
	shape.SetFriction(pw.cfg.Friction)
	shape.SetElasticity(pw.cfg.Elasticity)
	shape.SetCollisionType(CollisionTypeBlock)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return body, shape
}

// RemoveBlock takes a block's body and shape out of the space, along with any
// constraints still attached to the body. Touching bodies are woken first so
// the stack above a cleared row falls.
func (pw *PhysicsWorld) RemoveBlock(body *cp.Body, shape *cp.Shape) {
	if pw == nil || pw.space == nil {
		return
	}
	if body != nil {
		body.Activate()
		body.EachConstraint(func(c *cp.Constraint) {
			pw.space.RemoveConstraint(c)
		})
	}
	if shape != nil {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
	}
	if body != nil {
		pw.space.RemoveBody(body)
	}
}

// EntityForShape resolves a block shape back to its entity.
func (pw *PhysicsWorld) EntityForShape(shape *cp.Shape) (Entity, bool) {
	if pw == nil {
		return 0, false
	}
	e, ok := pw.shapeToEntity[shape]
	return e, ok
}

// WakeAll activates every dynamic body in the space.
func (pw *PhysicsWorld) WakeAll() {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.EachBody(func(body *cp.Body) {
		body.Activate()
	})
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) buildBoard() {
	b := pw.board
	bs := b.BlockSize
	wall := bs * float64(b.SideMargin)
	floorH := bs * float64(b.FloorBlocks)

	// The walls run from above the spawn rows down to the floor surface, so
	// a piece can never drift out of its lane off the top of the board.
	boxes := []cp.BB{
		{L: b.LeftEdgeX() - wall, B: b.FloorY(), R: b.RightEdgeX() + wall, T: b.FloorY() + floorH},
		{L: b.LeftEdgeX() - wall, B: -bs * 8, R: b.LeftEdgeX(), T: b.FloorY()},
		{L: b.RightEdgeX(), B: -bs * 8, R: b.RightEdgeX() + wall, T: b.FloorY()},
	}

	for _, bb := range boxes {
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		shape.SetFriction(pw.cfg.Friction)
		shape.SetElasticity(pw.cfg.Elasticity)
		shape.SetCollisionType(CollisionTypeBoard)
		pw.space.AddShape(shape)
	}
}

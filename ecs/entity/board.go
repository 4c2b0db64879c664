package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
	"github.com/milk9111/blockfall/ecs/render"
)

var boardColor = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x42, A: 0xff}

// NewBoard spawns the render entities for the floor and side walls. The
// matching static collision shapes already live in the physics world.
func NewBoard(w *ecs.World) error {
	pw := w.PhysicsWorld()
	if pw == nil {
		return fmt.Errorf("board: world has no physics world attached")
	}
	b := pw.Board()
	screenW, _ := b.ScreenSize()
	wall := int(b.BlockSize) * b.SideMargin
	floorH := int(b.BlockSize) * b.FloorBlocks

	pieces := []struct {
		w, h int
		x, y float64
	}{
		{w: screenW, h: floorH, x: float64(screenW) / 2, y: b.FloorY() + float64(floorH)/2},
		{w: wall, h: int(b.FloorY()), x: float64(wall) / 2, y: b.FloorY() / 2},
		{w: wall, h: int(b.FloorY()), x: float64(screenW) - float64(wall)/2, y: b.FloorY() / 2},
	}

	for _, p := range pieces {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: p.x, Y: p.y}); err != nil {
			return fmt.Errorf("board: add transform: %w", err)
		}
		sprite := &component.Sprite{
			Image:   render.SolidImage(p.w, p.h, boardColor),
			OriginX: float64(p.w) / 2,
			OriginY: float64(p.h) / 2,
		}
		if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
			return fmt.Errorf("board: add sprite: %w", err)
		}
		if err := ecs.Add(w, e, component.BoardTagComponent, &component.BoardTag{}); err != nil {
			return fmt.Errorf("board: add tag: %w", err)
		}
	}

	return nil
}

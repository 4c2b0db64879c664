package component

import "github.com/milk9111/blockfall/tetromino"

// Block marks one tetromino block. Active blocks belong to the in-flight
// piece and respond to input; settled blocks are passive stack material.
type Block struct {
	Kind   tetromino.Kind
	Active bool
}

var BlockComponent = NewComponent[Block]()

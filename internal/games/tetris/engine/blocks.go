package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/model"
)

// BlockID is a stable handle to a locked block. Zero means "no block" and is
// never handed out, so an empty matrix slot is simply the zero value.
type BlockID uint32

// Block is a single locked cell of a piece that has been committed to the board.
type Block struct {
	ID       BlockID
	Kind     model.Kind
	Pos      model.Pos
	Clearing bool // marked by Pattern, removed by Eliminate
}

// Blocks is the arena of locked blocks, keyed by handle.
type Blocks struct {
	records *intmap.Map[BlockID, *Block]
	nextID  BlockID
}

// NewBlocks creates an empty arena sized for a full board.
func NewBlocks() *Blocks {
	return &Blocks{
		records: intmap.New[BlockID, *Block](model.Width * model.VisibleHeight),
		nextID:  1,
	}
}

// Spawn records a new block and returns its handle.
// The caller is responsible for inserting the handle into the Matrix.
func (b *Blocks) Spawn(kind model.Kind, pos model.Pos) BlockID {
	id := b.nextID
	b.nextID++
	b.records.Put(id, &Block{ID: id, Kind: kind, Pos: pos})
	return id
}

// Get returns a copy of the block record.
func (b *Blocks) Get(id BlockID) (Block, bool) {
	blk, ok := b.records.Get(id)
	if !ok {
		return Block{}, false
	}
	return *blk, true
}

// SetPos re-stamps a block's position. Unknown handles are ignored.
func (b *Blocks) SetPos(id BlockID, pos model.Pos) {
	if blk, ok := b.records.Get(id); ok {
		blk.Pos = pos
	}
}

// MarkClearing flags a block for removal by the next elimination.
func (b *Blocks) MarkClearing(id BlockID) {
	if blk, ok := b.records.Get(id); ok {
		blk.Clearing = true
	}
}

// Despawn forgets a block.
func (b *Blocks) Despawn(id BlockID) {
	b.records.Del(id)
}

// Len returns the number of live blocks.
func (b *Blocks) Len() int {
	return b.records.Len()
}

// Clear drops every block. Handles are not reused.
func (b *Blocks) Clear() {
	b.records.Clear()
}

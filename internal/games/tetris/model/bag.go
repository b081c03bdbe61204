package model

import "math/rand"

// Bag is the 7-bag randomizer: every run of seven draws contains each kind once.
// Kinds are consumed from the end of the slice. The bag is refilled as soon as
// the last kind is taken, so PeekNext always has an answer.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewBag creates a filled bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		rng:   rng,
		kinds: make([]Kind, 0, NumKinds),
	}
	b.Refill()
	return b
}

// Refill replaces the contents with a uniformly shuffled full set of kinds.
func (b *Bag) Refill() {
	b.kinds = append(b.kinds[:0], allKinds[:]...)
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}

// PopNext removes and returns the next kind, refilling when the bag runs dry.
func (b *Bag) PopNext() Kind {
	if len(b.kinds) == 0 {
		panic("model: PopNext on an uninitialized bag")
	}
	next := b.kinds[len(b.kinds)-1]
	b.kinds = b.kinds[:len(b.kinds)-1]
	if len(b.kinds) == 0 {
		b.Refill()
	}
	return next
}

// PeekNext returns the kind the next PopNext will yield, without consuming it.
func (b *Bag) PeekNext() Kind {
	if len(b.kinds) == 0 {
		panic("model: PeekNext on an uninitialized bag")
	}
	return b.kinds[len(b.kinds)-1]
}

// Len returns how many kinds remain before the next refill.
func (b *Bag) Len() int {
	return len(b.kinds)
}

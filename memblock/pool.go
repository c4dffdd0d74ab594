package memblock

import "sync"

// Pool provides sync.Pool-based Block reuse to reduce GC pressure when
// blocks are created and discarded in hot paths.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Block{}
			},
		},
	}
}

// Get returns a Block with the requested size. The block is zeroed.
// Callers must return it via Put when done.
func (p *Pool) Get(size int) *Block {
	b := p.pool.Get().(*Block)
	b.SetSize(size, true)
	b.FillWith(0)
	return b
}

// Put returns a Block to the pool for reuse.
// The caller must not use the block after calling Put.
func (p *Pool) Put(b *Block) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

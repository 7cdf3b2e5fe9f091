package model

import "sync"

// UniverseToPool returns a universe to the pool for reuse
func UniverseToPool(u *Universe, pool *UniversePool) {
	if pool == nil {
		return
	}

	pool.Put(u)
}

// UniversePool recycles snapshot buffers between generations
type UniversePool struct {
	pool sync.Pool
}

func NewUniversePool() *UniversePool {
	return &UniversePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Universe{}
			},
		},
	}
}

// Snapshot retrieves a universe from the pool holding a copy of src
func (p *UniversePool) Snapshot(src *Universe) *Universe {
	u := p.pool.Get().(*Universe)
	u.CopyFrom(src)
	return u
}

// Put returns a universe to the pool
func (p *UniversePool) Put(u *Universe) {
	p.pool.Put(u)
}

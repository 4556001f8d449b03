package ratings

import "sync"

// propertyLocks serializes review submissions per property id. The review
// write is a read-modify-write over one document; without this, two
// simultaneous submissions could both read the same prior state and one
// review's contribution to the aggregate would be lost.
type propertyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPropertyLocks() *propertyLocks {
	return &propertyLocks{locks: make(map[string]*sync.Mutex)}
}

func (p *propertyLocks) get(id string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	p.locks[id] = l
	return l
}

var locks = newPropertyLocks()

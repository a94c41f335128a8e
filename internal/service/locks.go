package service

import (
	"hash/fnv"
	"sync"
)

// stripedLock serializes load-modify-save cycles per id within one process.
type stripedLock struct {
	mu [64]sync.Mutex
}

func (l *stripedLock) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	m := &l.mu[h.Sum32()%uint32(len(l.mu))]
	m.Lock()
	return m.Unlock
}

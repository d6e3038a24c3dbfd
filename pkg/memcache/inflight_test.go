package mem_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	mem "roteiro/pkg/memcache"
)

func TestInFlightBeginEnd(t *testing.T) {
	s := mem.NewInFlight()

	assert.True(t, s.Begin("HOS-1"))
	assert.True(t, s.Active("HOS-1"))
	assert.False(t, s.Begin("HOS-1"))

	// Other keys are independent.
	assert.True(t, s.Begin("HOS-2"))

	s.End("HOS-1")
	assert.False(t, s.Active("HOS-1"))
	assert.True(t, s.Begin("HOS-1"))
}

func TestInFlightEndUnknownKey(t *testing.T) {
	s := mem.NewInFlight()
	s.End("never-started")
	assert.False(t, s.Active("never-started"))
}

func TestInFlightConcurrentBegin(t *testing.T) {
	s := mem.NewInFlight()

	const goroutines = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Begin("shared") {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
}

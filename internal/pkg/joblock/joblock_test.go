package joblock_test

import (
	"sync"
	"testing"

	"dispatch/internal/pkg/joblock"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	locks := joblock.NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("job-1")
			defer locks.Unlock("job-1")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	locks := joblock.NewKeyedMutex()

	locks.Lock("job-1")

	// A different key must not block.
	done := make(chan struct{})
	go func() {
		locks.Lock("job-2")
		locks.Unlock("job-2")
		close(done)
	}()
	<-done

	locks.Unlock("job-1")
}

func TestKeyedMutex_UnlockUnknownKeyPanics(t *testing.T) {
	locks := joblock.NewKeyedMutex()

	assert.Panics(t, func() {
		locks.Unlock("never-locked")
	})
}

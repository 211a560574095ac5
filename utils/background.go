package utils

import (
	"sync"
	"time"
)

// GlobalWaitGroup tracks background tasks (audit writes, usage recording)
// so shutdown can drain them.
var GlobalWaitGroup sync.WaitGroup

// SafeGo runs fn on a goroutine tracked for graceful shutdown.
func SafeGo(fn func()) {
	GlobalWaitGroup.Add(1)
	go func() {
		defer GlobalWaitGroup.Done()
		fn()
	}()
}

// WaitForBackgroundTasks blocks until tracked tasks finish or the timeout
// elapses.
func WaitForBackgroundTasks(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		GlobalWaitGroup.Wait()
	}()

	select {
	case <-done:
		Logger.Info("All background tasks completed")
	case <-time.After(timeout):
		Logger.Warn("Shutdown timed out; some background tasks may have been cut off")
	}
}

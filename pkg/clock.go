package pkg

import (
	"fmt"
	"sync"
	"time"
)

// Clock tracks one side's remaining time. It ticks down once a second
// while unpaused; Punch adds the increment and starts it, Pause stops
// it. Time is advisory: a flag does not end the game, since the engine
// has no terminal state.
type Clock struct {
	Duration  time.Duration
	Increment time.Duration

	mu        sync.Mutex
	remaining time.Duration
	paused    bool
	done      chan struct{}
}

func NewClock(duration, increment time.Duration) *Clock {
	cl := &Clock{
		Duration:  duration,
		Increment: increment,
		remaining: duration,
		paused:    true,
		done:      make(chan struct{}),
	}
	go cl.run()
	return cl
}

func (cl *Clock) String() string {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return fmt.Sprintf("%d:%02d", int(cl.remaining.Minutes()), int(cl.remaining.Seconds())%60)
}

func (cl *Clock) run() {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			cl.mu.Lock()
			if !cl.paused && cl.remaining >= time.Second {
				cl.remaining -= time.Second
			}
			cl.mu.Unlock()
		case <-cl.done:
			return
		}
	}
}

// Punch starts the clock and credits the increment.
func (cl *Clock) Punch() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.paused = false
	cl.remaining += cl.Increment
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.paused = true
}

func (cl *Clock) Reset() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.remaining = cl.Duration
	cl.paused = true
}

func (cl *Clock) Stop() {
	close(cl.done)
}

package window

import (
	"time"
)

// frameMeter tracks the presentation frame rate over a fixed interval.
type frameMeter struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	rate           float64
}

func newFrameMeter() *frameMeter {
	return &frameMeter{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Tick should be called once per frame. Returns true when the interval has
// elapsed and a fresh rate is available from Rate.
//
// Returns:
//   - bool: true if the rate was updated this tick
func (m *frameMeter) Tick() bool {
	m.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(m.lastTime)

	if elapsed >= m.updateInterval {
		m.rate = float64(m.frameCount) / elapsed.Seconds()
		m.frameCount = 0
		m.lastTime = currentTime
		return true
	}

	return false
}

// Rate returns the most recently measured frames per second.
//
// Returns:
//   - float64: frames per second over the last interval
func (m *frameMeter) Rate() float64 {
	return m.rate
}

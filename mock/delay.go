package mock

import "github.com/barnybug/halmock/hal"

var (
	_ hal.Delay[uint8]  = Delay[uint8]{}
	_ hal.Delay[uint16] = Delay[uint16]{}
	_ hal.Delay[uint32] = Delay[uint32]{}
	_ hal.Delay[uint64] = Delay[uint64]{}
)

// Delay implements the delay capabilities without waiting.
type Delay[T hal.Width] struct{}

func (Delay[T]) DelayUs(n T) {
	logf(LOG_TRACE, "delay %dus", n)
}

func (Delay[T]) DelayMs(n T) {
	logf(LOG_TRACE, "delay %dms", n)
}

package hal

// Width is the set of counts a delay accepts.
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DelayUs pauses for n microseconds.
type DelayUs[T Width] interface {
	DelayUs(n T)
}

// DelayMs pauses for n milliseconds.
type DelayMs[T Width] interface {
	DelayMs(n T)
}

// Delay pauses in either unit.
type Delay[T Width] interface {
	DelayUs[T]
	DelayMs[T]
}

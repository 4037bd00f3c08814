package main

import "fmt"

// TempSource provides the current CPU temperature in °C.
// A source never fails: on any read problem it returns 0.0 so that
// a missing sensor cannot take the control loop down.
type TempSource interface {
	Read() (temp float64)
}

// HardwareSink is the fan duty-cycle register write.
type HardwareSink interface {
	WriteDutyCycle(dutyCycle int) error
}

// StateStore persists the last committed duty cycle across restarts.
// Read reports ok=false when there is no usable prior value.
type StateStore interface {
	Read() (speed int, ok bool)
	Write(speed int) error
}

// SpeedChange describes an accepted duty-cycle transition.
// From is -1 when the previous speed was unknown.
type SpeedChange struct {
	From int
	To   int
}

// EventRecorder receives one SpeedChange per accepted hardware write.
type EventRecorder interface {
	Record(change SpeedChange)
}

// logRecorder prints one line per speed change, journald style.
type logRecorder struct{}

func (logRecorder) Record(change SpeedChange) {
	fmt.Printf("[argonfc] fan_speed=%d%%\n", change.To)
}

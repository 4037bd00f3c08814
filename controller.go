package main

import (
	"fmt"
	"sync"
)

// speedUnknown marks a FanController with no known committed speed,
// either on first run or after the state file turned out unusable.
// The first SetSpeed is then never deduplicated away.
const speedUnknown = -1

// FanController owns the fan hardware handle and the last committed
// duty cycle. All speed changes go through SetSpeed, which serializes
// callers: the service loop and one-shot commands share the same
// read-check-write-persist critical section.
type FanController struct {
	mutex sync.Mutex

	fan    HardwareSink
	state  StateStore
	events EventRecorder

	// speed is the duty cycle last successfully written to the
	// hardware, speedUnknown before the first accepted write.
	speed int
}

// NewFanController returns a controller recovered from the state
// store: a readable prior value seeds the committed speed so that a
// redundant command right after restart stays a no-op.
func NewFanController(fan HardwareSink, state StateStore, events EventRecorder) *FanController {
	speed := speedUnknown
	if prev, ok := state.Read(); ok {
		speed = prev
	}
	return &FanController{
		fan:    fan,
		state:  state,
		events: events,
		speed:  speed,
	}
}

// SetSpeed commands the fan to the requested duty cycle, clamped to
// [0,100], and returns the committed speed. A request equal to the
// current committed speed is a no-op. The hardware write happens
// before the in-memory commit: on write failure the committed speed
// and the state store are left untouched and the error is returned.
// Persistence failures are only logged, the fan is already spinning
// at the new speed.
func (fc *FanController) SetSpeed(requested int) (int, error) {
	dc := clampDutyCycle(requested)

	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	if dc == fc.speed {
		return fc.speed, nil
	}

	if err := fc.fan.WriteDutyCycle(dc); err != nil {
		return fc.speed, fmt.Errorf("writing fan duty cycle %d%%: %w", dc, err)
	}

	prev := fc.speed
	fc.speed = dc

	if err := fc.state.Write(dc); err != nil {
		fmt.Println("unable to persist fan speed:", err.Error())
	}

	fc.events.Record(SpeedChange{From: prev, To: dc})

	return dc, nil
}

// Speed returns the last committed duty cycle, speedUnknown if none.
func (fc *FanController) Speed() int {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	return fc.speed
}

func clampDutyCycle(dc int) int {
	if dc < 0 {
		return 0
	}
	if dc > 100 {
		return 100
	}
	return dc
}

package main

import (
	"context"
	"fmt"
	"time"
)

// ArgonFC is the control loop: every interval it samples the CPU
// temperature, runs it through the fan curve with hysteresis and
// commands the resulting duty cycle.
type ArgonFC struct {
	curve    *Curve
	temp     TempSource
	fan      *FanController
	interval time.Duration
}

func NewArgonFC(curve *Curve, temp TempSource, fan *FanController, interval time.Duration) *ArgonFC {
	return &ArgonFC{
		curve:    curve,
		temp:     temp,
		fan:      fan,
		interval: interval,
	}
}

// Run drives the loop until ctx is cancelled. The first check happens
// immediately. Cancellation is observed at the top of each iteration
// and during the wait between iterations, never mid-iteration: an
// in-flight hardware write always completes before Run returns.
func (a *ArgonFC) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		a.check()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// check performs one control iteration. A hardware write failure is
// printed and left for the next tick, it must not stop the loop.
func (a *ArgonFC) check() {
	temp := a.temp.Read()
	target := decide(temp, a.curve, a.fan.Speed())
	if _, err := a.fan.SetSpeed(target); err != nil {
		fmt.Println("error updating fan speed:", err.Error())
	}
}

// Status is a point-in-time report of the decision inputs and output.
type Status struct {
	Temp      float64
	Target    int
	LastSpeed int
}

func (s Status) String() string {
	last := "none"
	if s.LastSpeed != speedUnknown {
		last = fmt.Sprint(s.LastSpeed)
	}
	return fmt.Sprintf("temp_c=%.2f target_speed=%d last_speed=%s", s.Temp, s.Target, last)
}

// readStatus computes what the controller would do right now, from
// the state store and sensor alone. No hardware is touched, so it is
// safe to call while the service owns the bus.
func readStatus(temp TempSource, curve *Curve, state StateStore) Status {
	last := speedUnknown
	if prev, ok := state.Read(); ok {
		last = prev
	}
	t := temp.Read()
	return Status{
		Temp:      t,
		Target:    decide(t, curve, last),
		LastSpeed: last,
	}
}

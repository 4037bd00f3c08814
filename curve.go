package main

import (
	"fmt"
	"sort"
)

// Step is a single breakpoint of the fan curve: at and above Temp
// the fan should run at least at DutyCycle percent.
type Step struct {
	Temp      float64 `yaml:"temp"`
	DutyCycle int     `yaml:"duty_cycle"`
}

// RejectedStep is a configured step that did not survive validation,
// kept so the loader can report it instead of swallowing it.
type RejectedStep struct {
	Step   Step
	Reason string
}

func (r RejectedStep) String() string {
	return fmt.Sprintf("step %v=%d rejected: %s", r.Step.Temp, r.Step.DutyCycle, r.Reason)
}

// Curve is an immutable fan curve, sorted ascending by temperature.
// Both temperatures and duty cycles are unique within a curve; the
// duty-cycle uniqueness keeps the Threshold reverse lookup unambiguous.
type Curve struct {
	steps []Step
}

// NewCurve validates the given steps and builds a Curve from the
// survivors. Steps with an out-of-range duty cycle, a duplicate
// temperature or a duplicate duty cycle are returned in rejected,
// first occurrence wins.
func NewCurve(steps []Step) (curve *Curve, rejected []RejectedStep) {
	valid := make([]Step, 0, len(steps))
	seenTemps := make(map[float64]bool, len(steps))
	seenDCs := make(map[int]bool, len(steps))

	for _, step := range steps {
		switch {
		case step.DutyCycle < 0 || step.DutyCycle > 100:
			rejected = append(rejected, RejectedStep{step, "duty cycle out of range [0,100]"})
		case seenTemps[step.Temp]:
			rejected = append(rejected, RejectedStep{step, "duplicate temperature"})
		case seenDCs[step.DutyCycle]:
			rejected = append(rejected, RejectedStep{step, "duplicate duty cycle"})
		default:
			seenTemps[step.Temp] = true
			seenDCs[step.DutyCycle] = true
			valid = append(valid, step)
		}
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Temp < valid[j].Temp
	})

	return &Curve{steps: valid}, rejected
}

// BaseTarget returns the duty cycle of the highest step whose
// temperature is ≤ temp, or 0 when no step qualifies.
func (c *Curve) BaseTarget(temp float64) int {
	target := 0
	for _, step := range c.steps {
		if temp >= step.Temp {
			target = step.DutyCycle
		}
	}
	return target
}

// Threshold returns the temperature of the step commanding the given
// duty cycle, ok=false when no step does.
func (c *Curve) Threshold(dutyCycle int) (temp float64, ok bool) {
	for _, step := range c.steps {
		if step.DutyCycle == dutyCycle {
			return step.Temp, true
		}
	}
	return 0, false
}

// Len returns the number of steps in the curve.
func (c *Curve) Len() int {
	return len(c.steps)
}

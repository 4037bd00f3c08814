package main

// hysteresisMargin is the temperature band (°C) that must be cleared
// before a speed transition is honored, preventing oscillation when
// the temperature hovers around a step boundary.
const hysteresisMargin = 4.0

// decide maps a temperature sample to the duty cycle to command,
// given the curve and the last committed speed (-1 when unknown).
//
// The base target comes straight from the curve. With a known last
// speed, a transition is suppressed while the sample is still inside
// the hysteresis band of the step anchoring it: an increase is held
// until the sample clears the target step's threshold minus the
// margin, a decrease until the sample has dropped a margin below the
// threshold of the currently commanded speed. A duty cycle with no
// step in the curve has no band, so that branch never suppresses.
//
// Pure function: no state, no I/O.
func decide(temp float64, curve *Curve, lastCommanded int) int {
	target := curve.BaseTarget(temp)
	if lastCommanded < 0 {
		return target
	}

	switch {
	case target > lastCommanded:
		if threshold, ok := curve.Threshold(target); ok && temp < threshold-hysteresisMargin {
			return lastCommanded
		}
	case target < lastCommanded:
		if threshold, ok := curve.Threshold(lastCommanded); ok && temp > threshold-hysteresisMargin {
			return lastCommanded
		}
	}

	return target
}

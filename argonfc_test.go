package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedTemp float64

func (f fixedTemp) Read() float64 { return float64(f) }

func TestRunDeduplicatesWrites(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)
	sink := &fakeSink{}
	fc := NewFanController(sink, &fakeStore{}, &fakeRecorder{})
	loop := NewArgonFC(curve, fixedTemp(70), fc, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	// let several ticks pass at a constant temperature
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("control loop did not stop")
	}

	// one hardware write despite repeated identical targets
	require.Equal(t, []int{100}, sink.writes)
	require.Equal(t, 100, fc.Speed())
}

func TestRunStopsBeforeFirstTickWhenCancelled(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)
	fc := NewFanController(&fakeSink{}, &fakeStore{}, &fakeRecorder{})
	loop := NewArgonFC(curve, fixedTemp(70), fc, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("control loop ignored cancellation")
	}
}

func TestRunSensorFailureDegradesToZero(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)
	sink := &fakeSink{}
	store := &fakeStore{speed: 55, ok: true}
	fc := NewFanController(sink, store, &fakeRecorder{})

	// the sentinel 0.0 reading maps to a base target of 0, and with
	// last=55 anchored at 55°C the decrease clears its band at once
	loop := NewArgonFC(curve, fixedTemp(0), fc, time.Hour)
	loop.check()

	require.Equal(t, []int{0}, sink.writes)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "temp_c=61.23 target_speed=75 last_speed=55",
		Status{Temp: 61.23, Target: 75, LastSpeed: 55}.String())
	require.Equal(t, "temp_c=0.00 target_speed=0 last_speed=none",
		Status{LastSpeed: speedUnknown}.String())
}

func TestReadStatus(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)

	status := readStatus(fixedTemp(63), curve, &fakeStore{speed: 100, ok: true})
	require.Equal(t, Status{Temp: 63, Target: 100, LastSpeed: 100}, status)

	status = readStatus(fixedTemp(63), curve, &fakeStore{ok: false})
	require.Equal(t, Status{Temp: 63, Target: 75, LastSpeed: speedUnknown}, status)
}

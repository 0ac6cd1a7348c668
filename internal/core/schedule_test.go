package core

import (
	"testing"
	"time"
)

func TestTimerArmExpire(t *testing.T) {
	start := time.Unix(1000, 0)
	var tm Timer

	if tm.Armed() || tm.Expired(start) {
		t.Fatal("zero Timer should be disarmed and never expire")
	}

	tm.Arm(start, 3*time.Second)
	if tm.Expired(start.Add(2999 * time.Millisecond)) {
		t.Error("timer expired before its deadline")
	}
	if !tm.Expired(start.Add(3 * time.Second)) {
		t.Error("timer should expire exactly at its deadline")
	}
	if got := tm.Remaining(start.Add(time.Second)); got != 2*time.Second {
		t.Errorf("Remaining() = %v, expected 2s", got)
	}
	if got := tm.Remaining(start.Add(10 * time.Second)); got != 0 {
		t.Errorf("Remaining() past deadline = %v, expected 0", got)
	}
}

func TestTimerRearmReplaces(t *testing.T) {
	start := time.Unix(1000, 0)
	var tm Timer

	tm.Arm(start, 3*time.Second)
	tm.Arm(start.Add(2*time.Second), 3*time.Second)

	if want := start.Add(5 * time.Second); !tm.Deadline().Equal(want) {
		t.Errorf("Deadline() = %v, expected %v", tm.Deadline(), want)
	}

	tm.Cancel()
	if tm.Armed() || tm.Expired(start.Add(time.Hour)) {
		t.Error("cancelled timer should never expire")
	}
}

func TestLoopGenerations(t *testing.T) {
	var l Loop
	if l.Running() || l.Accept(0) {
		t.Fatal("zero Loop should not accept ticks")
	}

	g1 := l.Start()
	if !l.Accept(g1) {
		t.Error("current generation should be accepted")
	}

	l.Stop()
	if l.Accept(g1) {
		t.Error("stopped loop should drop ticks")
	}

	g2 := l.Start()
	if g2 == g1 {
		t.Fatal("Start should hand out a new generation")
	}
	if l.Accept(g1) {
		t.Error("stale generation should be dropped after restart")
	}
	if !l.Accept(g2) {
		t.Error("new generation should be accepted")
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(500, 0)
	c := NewManualClock(start)

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("after Advance, elapsed = %v", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set should move the clock to the given time")
	}
}

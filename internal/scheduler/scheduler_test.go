package scheduler

import "testing"

func TestTickWithoutRequest(t *testing.T) {
	calls := 0
	s := New(func() { calls++ })
	if s.Tick() {
		t.Fatal("Tick() ran without a request")
	}
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestRequestCollapses(t *testing.T) {
	calls := 0
	s := New(func() { calls++ })
	s.Request()
	s.Request()
	s.Request()
	s.Tick()
	s.Tick()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestLoopSelfPerpetuates(t *testing.T) {
	calls := 0
	s := Loop(func() { calls++ })
	for i := 0; i < 10; i++ {
		if !s.Tick() {
			t.Fatalf("tick %d did not run", i)
		}
	}
	if calls != 10 || s.Frames() != 10 {
		t.Fatalf("calls = %d, frames = %d, want 10", calls, s.Frames())
	}
	if !s.Pending() {
		t.Fatal("loop stopped requesting frames")
	}
}

func TestHideStopsFrames(t *testing.T) {
	calls := 0
	s := Loop(func() { calls++ })
	s.Tick()
	if !s.Pending() {
		t.Fatal("expected a pending frame before hiding")
	}

	s.SetHidden(true)
	if s.Pending() {
		t.Fatal("hiding left a frame pending")
	}
	s.Request()
	for i := 0; i < 5; i++ {
		if s.Tick() {
			t.Fatal("Tick() ran while hidden")
		}
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	s.SetHidden(false)
	if !s.Pending() {
		t.Fatal("showing did not request a frame")
	}
	s.Tick()
	if calls != 2 {
		t.Fatalf("calls = %d after show, want 2", calls)
	}
}

func TestShowSchedulesExactlyOne(t *testing.T) {
	calls := 0
	s := New(func() { calls++ })
	s.SetHidden(true)
	s.SetHidden(false)
	s.SetHidden(false)
	if !s.Tick() {
		t.Fatal("no frame scheduled on show")
	}
	if s.Tick() {
		t.Fatal("more than one frame scheduled on show")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestRepeatedHideIsNoop(t *testing.T) {
	s := Loop(func() {})
	s.SetHidden(true)
	s.SetHidden(true)
	if !s.Hidden() || s.Pending() {
		t.Fatalf("hidden = %v, pending = %v", s.Hidden(), s.Pending())
	}
}

func TestCancel(t *testing.T) {
	s := Loop(func() {})
	s.Cancel()
	if s.Tick() {
		t.Fatal("Tick() ran after Cancel")
	}
}

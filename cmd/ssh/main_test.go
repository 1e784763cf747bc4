package main

import (
	"sync"
	"testing"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	if w, h, err := s.getSize(); err != nil || w != 80 || h != 24 {
		t.Fatalf("unexpected initial size %dx%d (%v)", w, h, err)
	}

	s.update(200, 50)
	if w, h, _ := s.getSize(); w != 200 || h != 50 {
		t.Fatalf("expected resize to 200x50, got %dx%d", w, h)
	}
}

func TestHandlerTracksSessions(t *testing.T) {
	h := &handler{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.track(1)
		}()
	}
	wg.Wait()
	h.track(-3)
	if got := h.active(); got != 7 {
		t.Fatalf("expected 7 active sessions, got %d", got)
	}
}

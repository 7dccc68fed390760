package game

import (
	"math/rand"
	"testing"
	"time"
)

func TestLoaderProgress(t *testing.T) {
	l := NewLoader(rand.New(rand.NewSource(3)))

	l.Step(50 * time.Millisecond)
	if l.Progress() != 0 {
		t.Errorf("progress before first interval = %v, want 0", l.Progress())
	}

	last := 0.0
	reachedAt := -1
	for i := 0; i < 1000 && !l.Done(); i++ {
		l.Step(100 * time.Millisecond)
		p := l.Progress()
		if p < last {
			t.Fatalf("progress went backwards: %v -> %v", last, p)
		}
		if p > 100 {
			t.Fatalf("progress %v exceeds 100", p)
		}
		if p == 100 && reachedAt < 0 {
			reachedAt = i
		}
		last = p
	}

	if !l.Done() {
		t.Fatal("loader never finished")
	}
	if reachedAt < 0 {
		t.Fatal("loader finished without reaching 100")
	}
}

func TestLoaderHold(t *testing.T) {
	l := NewLoader(rand.New(rand.NewSource(8)))
	for l.Progress() < 100 {
		l.Step(loaderInterval)
	}

	l.Step(loaderHold - time.Millisecond)
	if l.Done() {
		t.Fatal("loader done before the hold elapsed")
	}
	l.Step(time.Millisecond)
	if !l.Done() {
		t.Error("loader should be done once the hold elapsed")
	}

	l.Step(time.Hour)
	if l.Progress() != 100 || !l.Done() {
		t.Error("finished loader should not change")
	}
}

func TestLoaderCatchesUpLargeSteps(t *testing.T) {
	l := NewLoader(rand.New(rand.NewSource(1)))
	l.Step(10 * time.Second)
	if l.Progress() != 100 {
		t.Errorf("100 intervals should reach 100%%, got %v", l.Progress())
	}
}

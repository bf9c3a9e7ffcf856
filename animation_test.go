package spoke

import (
	"math"
	"testing"
)

func TestMoveReachesTarget(t *testing.T) {
	it := NewItem("move")
	a := NewAnimator()

	a.StartMove(it, Vec2{100, -50}, 1.0)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	a.Update(0.5)
	a.Update(0.5)

	if a.MoveActive(it) {
		t.Fatal("move should be finished after full duration")
	}
	if math.Abs(it.Offset.X-100) > 0.5 {
		t.Errorf("Offset.X = %f, want ~100", it.Offset.X)
	}
	if math.Abs(it.Offset.Y+50) > 0.5 {
		t.Errorf("Offset.Y = %f, want ~-50", it.Offset.Y)
	}
}

func TestMoveNotRequeuedWhileRunning(t *testing.T) {
	it := NewItem("move")
	a := NewAnimator()

	a.StartMove(it, Vec2{100, 0}, 1.0)
	a.Update(0.5)

	// A second request while the first runs must not redirect the tween.
	a.StartMove(it, Vec2{-100, 0}, 1.0)
	a.Update(0.5)

	if math.Abs(it.Offset.X-100) > 0.5 {
		t.Errorf("Offset.X = %f, want ~100 (original target)", it.Offset.X)
	}
}

func TestMoveCanRestartAfterFinish(t *testing.T) {
	it := NewItem("move")
	a := NewAnimator()

	a.StartMove(it, Vec2{10, 0}, 0.5)
	a.Update(0.25)
	a.Update(0.25)

	a.StartMove(it, Vec2{20, 0}, 0.5)
	if !a.MoveActive(it) {
		t.Fatal("expected a fresh move after the first finished")
	}
}

func TestFocusInGrowsToFocusSize(t *testing.T) {
	it := NewItem("grow")
	it.BoxSize = Vec2{50, 50}
	a := NewAnimator()

	a.FocusIn(it, 64, 0.25)
	a.Update(0.125)
	a.Update(0.125)

	if a.Growing(it) {
		t.Fatal("grow should be finished")
	}
	if math.Abs(it.BoxSize.X-64) > 0.5 || math.Abs(it.BoxSize.Y-64) > 0.5 {
		t.Errorf("BoxSize = %v, want ~64×64", it.BoxSize)
	}
}

func TestFocusOutCancelsRunningGrow(t *testing.T) {
	it := NewItem("race")
	it.BoxSize = Vec2{50, 50}
	a := NewAnimator()

	a.FocusIn(it, 64, 0.25)
	a.Update(0.05)

	// Pointer leaves before the grow completes: exactly one size tween may
	// remain, and it must be the shrink.
	a.FocusOut(it, 50, 0.25)

	if a.Growing(it) {
		t.Error("grow tween still running after FocusOut")
	}
	if !a.Shrinking(it) {
		t.Error("shrink tween not running after FocusOut")
	}

	// The item must settle back at the normal size, not an intermediate one.
	for i := 0; i < 10; i++ {
		a.Update(0.05)
	}
	if math.Abs(it.BoxSize.X-50) > 0.5 || math.Abs(it.BoxSize.Y-50) > 0.5 {
		t.Errorf("BoxSize = %v, want ~50×50 after settle", it.BoxSize)
	}
}

func TestFocusInCancelsRunningShrink(t *testing.T) {
	it := NewItem("race")
	it.BoxSize = Vec2{64, 64}
	a := NewAnimator()

	a.FocusOut(it, 50, 0.25)
	a.Update(0.05)
	a.FocusIn(it, 64, 0.25)

	if a.Shrinking(it) {
		t.Error("shrink tween still running after FocusIn")
	}
	if !a.Growing(it) {
		t.Error("grow tween not running after FocusIn")
	}
}

func TestFocusInIdempotentWhileGrowing(t *testing.T) {
	it := NewItem("grow")
	it.BoxSize = Vec2{50, 50}
	a := NewAnimator()

	a.FocusIn(it, 64, 0.25)
	a.Update(0.05)
	size := it.BoxSize

	// Re-entering while already growing must not restart the tween.
	a.FocusIn(it, 64, 0.25)
	if it.BoxSize != size {
		t.Errorf("BoxSize changed by redundant FocusIn: %v -> %v", size, it.BoxSize)
	}
	a.Update(0.05)
	if it.BoxSize.X <= size.X {
		t.Errorf("grow stalled after redundant FocusIn: %v", it.BoxSize)
	}
}

func TestGrowPicksUpFromInterruptedShrink(t *testing.T) {
	it := NewItem("mid")
	it.BoxSize = Vec2{64, 64}
	a := NewAnimator()

	a.FocusOut(it, 50, 0.25)
	a.Update(0.1)
	mid := it.BoxSize.X
	if mid >= 64 || mid <= 50 {
		t.Fatalf("BoxSize.X = %v, expected between 50 and 64 mid-shrink", mid)
	}

	a.FocusIn(it, 64, 0.25)
	a.Update(0.01)

	// No snap: the grow starts from the interrupted size.
	if math.Abs(it.BoxSize.X-mid) > 3 {
		t.Errorf("BoxSize.X = %v, want near %v (no snap)", it.BoxSize.X, mid)
	}
}

func TestUpdateDropsDisposedItems(t *testing.T) {
	it := NewItem("gone")
	a := NewAnimator()

	a.StartMove(it, Vec2{100, 0}, 1.0)
	it.dispose()
	a.Update(0.5)

	if it.Offset.X != 0 {
		t.Errorf("Offset.X = %v, want 0 (no writes to disposed item)", it.Offset.X)
	}
	if a.MoveActive(it) {
		t.Error("disposed item's tweens should be dropped")
	}
}

func TestCancelStopsTweens(t *testing.T) {
	it := NewItem("stop")
	a := NewAnimator()

	a.StartMove(it, Vec2{100, 0}, 1.0)
	a.FocusIn(it, 64, 0.25)
	a.Cancel(it)
	a.Update(0.5)

	if it.Offset.X != 0 || it.BoxSize.X != 0 {
		t.Errorf("item mutated after Cancel: offset %v, size %v", it.Offset, it.BoxSize)
	}
}

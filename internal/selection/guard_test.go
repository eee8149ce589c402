package selection

import (
	"testing"

	"wordrush.gg/wordrush/internal/grid"
)

func TestGuardDeadzone(t *testing.T) {
	var g Guard
	g.Start(100, 100)

	// Small wiggles inside the dead-zone do not confirm a drag.
	if g.CrossedDeadzone(102, 101, 4) {
		t.Error("Crossed at distance ~2.2 with threshold 4")
	}
	if g.CrossedDeadzone(100, 103, 4) {
		t.Error("Crossed at distance 3 with threshold 4")
	}
	if g.DragConfirmed() {
		t.Error("DragConfirmed before the threshold was crossed")
	}

	// Crossing confirms and stays confirmed, even back at the start.
	if !g.CrossedDeadzone(106, 100, 4) {
		t.Error("Not crossed at distance 6 with threshold 4")
	}
	if !g.CrossedDeadzone(100, 100, 4) {
		t.Error("A confirmed drag must stay confirmed")
	}
	if !g.DragConfirmed() {
		t.Error("DragConfirmed false after crossing")
	}
}

func TestGuardRestart(t *testing.T) {
	var g Guard
	g.Start(0, 0)
	if !g.CrossedDeadzone(10, 0, 4) {
		t.Fatal("Expected crossing")
	}

	// A new gesture resets the confirmation and the start point.
	g.Start(10, 0)
	if g.CrossedDeadzone(11, 0, 4) {
		t.Error("New gesture inherited the old confirmation")
	}
}

func TestGuardDistanceExactlyAtThreshold(t *testing.T) {
	var g Guard
	g.Start(0, 0)
	// Displacement must exceed the threshold, not merely reach it.
	if g.CrossedDeadzone(4, 0, 4) {
		t.Error("Crossed at distance exactly equal to threshold")
	}
}

func TestWithinCenter(t *testing.T) {
	hit := &grid.Hit{DistFromCenter: 20, CellRadius: 30}

	if !WithinCenter(hit, 0.85) { // limit 25.5
		t.Error("20 <= 25.5 should pass")
	}
	if WithinCenter(hit, 0.5) { // limit 15
		t.Error("20 > 15 should fail")
	}

	edge := &grid.Hit{DistFromCenter: 25.5, CellRadius: 30}
	if !WithinCenter(edge, 0.85) {
		t.Error("Distance exactly at the limit should pass")
	}
}

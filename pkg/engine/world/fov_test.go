package world

import "testing"

func TestCalculateFOV_WallsBlockSight(t *testing.T) {
	g := mustParse(t, "#######\n#..#..#\n#######")
	visible := CalculateFOV(g, Pos(1, 1), 6)

	if !visible.Has(Pos(1, 1)) {
		t.Error("center not visible")
	}
	if !visible.Has(Pos(1, 3)) {
		t.Error("blocking wall itself should be visible")
	}
	if visible.Has(Pos(1, 4)) {
		t.Error("cell behind wall is visible, want hidden")
	}
}

func TestCalculateFOV_Radius(t *testing.T) {
	g := mustParse(t, "#########\n#.......#\n#########")
	visible := CalculateFOV(g, Pos(1, 1), 2)
	if !visible.Has(Pos(1, 3)) {
		t.Error("cell at radius 2 not visible")
	}
	if visible.Has(Pos(1, 4)) {
		t.Error("cell at radius 3 visible with radius 2")
	}
}

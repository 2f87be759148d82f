package state

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/entities"
)

func newTestSession(t *testing.T, now int64) *Session {
	t.Helper()
	grid, err := world.ParseGrid("#####\n#..E#\n#####")
	if err != nil {
		t.Fatal(err)
	}
	exit, _ := grid.Exit()
	return NewSession(grid, exit, mapset.New[world.Position](), now)
}

func TestHint_Visible(t *testing.T) {
	h := Hint{Key: "hello", Until: 2000}
	if !h.Visible(1999) {
		t.Error("hint should be visible before its deadline")
	}
	if h.Visible(2000) {
		t.Error("hint should be hidden at its deadline")
	}
	if (Hint{Until: 5000}).Visible(0) {
		t.Error("empty hint should never be visible")
	}
}

func TestSession_FinishOnce(t *testing.T) {
	s := newTestSession(t, 1000)
	if !s.Finish(StatusWon, 4000) {
		t.Fatal("first Finish should succeed")
	}
	if s.Finish(StatusLost, 5000) {
		t.Error("second Finish should be refused")
	}
	if s.Status != StatusWon {
		t.Errorf("Status = %v, want Won", s.Status)
	}
	if got := s.ElapsedMillis(9000); got != 3000 {
		t.Errorf("ElapsedMillis after win = %d, want 3000", got)
	}
}

func TestSnapshot_Independent(t *testing.T) {
	s := newTestSession(t, 0)
	s.Enemy = &entities.Enemy{Position: world.Pos(1, 2)}
	s.Post("hint", 0, 1500)

	snap := s.Snapshot(2500)
	s.Grid.SetKind(world.Pos(1, 2), world.Wall)
	s.Player.Position = world.Pos(1, 2)

	if snap.Grid.Kind(world.Pos(1, 2)) != world.Path {
		t.Error("snapshot grid aliases the live grid")
	}
	if snap.Player != world.StartPosition {
		t.Errorf("snapshot player = %v, want %v", snap.Player, world.StartPosition)
	}
	if !snap.HasEnemy || snap.Enemy != world.Pos(1, 2) {
		t.Errorf("snapshot enemy = %v (present %v), want 1,2", snap.Enemy, snap.HasEnemy)
	}
	if snap.HintVisible {
		t.Error("hint posted for 1500ms should be hidden at 2500")
	}
	if snap.ElapsedSeconds != 2 {
		t.Errorf("ElapsedSeconds = %d, want 2", snap.ElapsedSeconds)
	}
}

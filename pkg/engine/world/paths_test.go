package world

import "testing"

func TestDistances_Corridor(t *testing.T) {
	g := mustParse(t, "#####\n#...#\n###.#\n#####")
	dist := Distances(g, Pos(1, 1))

	tests := []struct {
		p    Position
		want int
	}{
		{Pos(1, 1), 0},
		{Pos(1, 2), 1},
		{Pos(1, 3), 2},
		{Pos(2, 3), 3},
		{Pos(0, 0), Unreachable},
	}
	for _, tt := range tests {
		if got := dist[tt.p.Row][tt.p.Col]; got != tt.want {
			t.Errorf("distance to %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestFarthest_UniqueMaximum(t *testing.T) {
	g := mustParse(t, "#####\n#...#\n#.#.#\n#...#\n#.###\n#####")
	got := Farthest(g, Pos(1, 1))
	dist := Distances(g, Pos(1, 1))
	best := 0
	g.ForEachCell(func(p Position, kind TileKind) {
		if kind.Walkable() && dist[p.Row][p.Col] > best {
			best = dist[p.Row][p.Col]
		}
	})
	if dist[got.Row][got.Col] != best {
		t.Errorf("Farthest = %v at distance %d, want distance %d", got, dist[got.Row][got.Col], best)
	}
}

func TestFarthest_TieKeepsEarliestDiscovered(t *testing.T) {
	// Two branches of length 2: south is visited before east.
	g := mustParse(t, "#####\n#...#\n#.###\n#.###\n#####")
	if got := Farthest(g, Pos(1, 1)); got != Pos(3, 1) {
		t.Errorf("Farthest = %v, want 3,1 (south branch discovered first)", got)
	}
}

func TestFarthest_IsolatedStart(t *testing.T) {
	g := mustParse(t, "###\n#.#\n###")
	if got := Farthest(g, Pos(1, 1)); got != Pos(1, 1) {
		t.Errorf("Farthest = %v, want start 1,1", got)
	}
}

func TestIsConnected(t *testing.T) {
	connected := mustParse(t, "#####\n#...#\n#.#.#\n#####")
	if !IsConnected(connected, Pos(1, 1)) {
		t.Error("IsConnected(connected) = false, want true")
	}
	split := mustParse(t, "#####\n#.#.#\n#####")
	if IsConnected(split, Pos(1, 1)) {
		t.Error("IsConnected(split) = true, want false")
	}
}

func TestShortestNextStep(t *testing.T) {
	g := mustParse(t, "#######\n#.....#\n#.###.#\n#.....#\n#######")

	tests := []struct {
		name     string
		from, to Position
		want     Position
		wantOK   bool
	}{
		{"adjacent", Pos(1, 1), Pos(1, 2), Pos(1, 2), true},
		{"along corridor", Pos(1, 1), Pos(1, 5), Pos(1, 2), true},
		{"equal routes prefer east", Pos(1, 3), Pos(3, 3), Pos(1, 4), true},
		{"same cell", Pos(1, 1), Pos(1, 1), Pos(1, 1), false},
		{"target is wall", Pos(1, 1), Pos(2, 2), Pos(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ShortestNextStep(g, tt.from, tt.to)
			if ok != tt.wantOK {
				t.Fatalf("ShortestNextStep ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ShortestNextStep = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortestNextStep_NoPath(t *testing.T) {
	g := mustParse(t, "#######\n#..#..#\n#######")
	if _, ok := ShortestNextStep(g, Pos(1, 1), Pos(1, 5)); ok {
		t.Error("ShortestNextStep across a wall = ok, want no path")
	}
}

func TestShortestNextStep_ReducesDistanceByOne(t *testing.T) {
	g := mustParse(t, "#######\n#.....#\n#.#.#.#\n#.....#\n#######")
	target := Pos(3, 5)
	from := Pos(1, 1)
	for from != target {
		before := Distances(g, target)[from.Row][from.Col]
		next, ok := ShortestNextStep(g, from, target)
		if !ok {
			t.Fatalf("no step from %v", from)
		}
		after := Distances(g, target)[next.Row][next.Col]
		if after != before-1 {
			t.Fatalf("step %v -> %v changed distance %d -> %d, want %d", from, next, before, after, before-1)
		}
		from = next
	}
}

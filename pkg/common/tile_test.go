package common

import "testing"

func TestTileRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rank int
		file int
	}{
		{"a1", 0, 0},
		{"h1", 0, 7},
		{"a8", 7, 0},
		{"h8", 7, 7},
		{"e4", 3, 4},
		{"c6", 5, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var tile = MakeTile(test.rank, test.file)
			if tile.Rank() != test.rank || tile.File() != test.file {
				t.Errorf("rank/file: got %d/%d", tile.Rank(), tile.File())
			}
			if tile.String() != test.name {
				t.Errorf("String: got %q", tile.String())
			}
			parsed, err := ParseTile(test.name)
			if err != nil {
				t.Fatal(err)
			}
			if parsed != tile {
				t.Errorf("ParseTile: got %v", parsed)
			}
		})
	}
}

func TestParseTileRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "e", "e99", "i3", "e9", "a0"} {
		if _, err := ParseTile(s); err == nil {
			t.Errorf("ParseTile(%q) should fail", s)
		}
	}
}

func TestTileSector(t *testing.T) {
	tests := []struct {
		tile   string
		sector Sector
		center bool
	}{
		{"a1", 0, false},
		{"b2", 0, false},
		{"h1", 3, false},
		{"e4", 6, true},
		{"d5", 9, true},
		{"e5", 10, true},
		{"a8", 12, false},
		{"h8", 15, false},
	}
	for _, test := range tests {
		var tile = mustTile(t, test.tile)
		if got := tile.Sector(); got != test.sector {
			t.Errorf("%s: sector %d, want %d", test.tile, got, test.sector)
		}
		if got := test.sector.IsCenter(); got != test.center {
			t.Errorf("%s: IsCenter %v", test.tile, got)
		}
	}
}

func TestSectorHomes(t *testing.T) {
	for s := Sector(0); s < NumSectors; s++ {
		var wantWhite = s <= 3
		var wantBlack = s >= 12
		if s.IsHomeFor(White) != wantWhite {
			t.Errorf("sector %d IsHomeFor white", s)
		}
		if s.IsHomeFor(Black) != wantBlack {
			t.Errorf("sector %d IsHomeFor black", s)
		}
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		from  string
		color Color
		count int
		want  Tile
	}{
		{"e2", White, 1, mustTileValue("e3")},
		{"e2", White, 2, mustTileValue("e4")},
		{"e7", Black, 1, mustTileValue("e6")},
		{"e3", White, -1, mustTileValue("e2")},
		{"e8", White, 1, TileNone},
		{"e1", Black, 1, TileNone},
	}
	for _, test := range tests {
		var got = mustTileValue(test.from).Advance(test.color, test.count)
		if got != test.want {
			t.Errorf("%s advance %v %d: got %v, want %v", test.from, test.color, test.count, got, test.want)
		}
	}
}

func TestCastlingGeometry(t *testing.T) {
	if KingStart(White) != mustTileValue("e1") || KingStart(Black) != mustTileValue("e8") {
		t.Error("king start squares")
	}
	if RookStart(White, KingSide) != mustTileValue("h1") || RookStart(White, QueenSide) != mustTileValue("a1") {
		t.Error("white rook start squares")
	}
	if CastlingKingDestination(White, KingSide) != mustTileValue("g1") {
		t.Error("white O-O king destination")
	}
	if CastlingKingDestination(White, QueenSide) != mustTileValue("c1") {
		t.Error("white O-O-O king destination")
	}
	if CastlingRookDestination(White, KingSide) != mustTileValue("f1") {
		t.Error("white O-O rook destination")
	}
	if CastlingRookDestination(Black, QueenSide) != mustTileValue("d8") {
		t.Error("black O-O-O rook destination")
	}
}

func mustTile(t *testing.T, s string) Tile {
	t.Helper()
	tile, err := ParseTile(s)
	if err != nil {
		t.Fatal(err)
	}
	return tile
}

func mustTileValue(s string) Tile {
	tile, err := ParseTile(s)
	if err != nil {
		panic(err)
	}
	return tile
}

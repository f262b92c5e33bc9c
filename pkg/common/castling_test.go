package common

import "testing"

func TestCastlingRightsDisable(t *testing.T) {
	var r = DefaultRights
	for _, c := range [2]Color{White, Black} {
		for _, side := range [2]CastlingSide{KingSide, QueenSide} {
			if !r.Has(c, side) {
				t.Errorf("%v %v should start enabled", c, side)
			}
		}
	}

	r = r.Disable(White, KingSide)
	if r.Has(White, KingSide) {
		t.Error("white king side should be disabled")
	}
	if !r.Has(White, QueenSide) || !r.Has(Black, KingSide) {
		t.Error("other rights untouched")
	}

	r = r.DisableColor(Black)
	if r.Has(Black, KingSide) || r.Has(Black, QueenSide) {
		t.Error("both black rights should be disabled")
	}
	if !r.Has(White, QueenSide) {
		t.Error("white queen side untouched")
	}
}

func TestCastlingRightsMovePairs(t *testing.T) {
	tests := []struct {
		name string
		king string
		rook string
		want bool
	}{
		{"white king side", "e1", "h1", true},
		{"white queen side", "e1", "a1", true},
		{"black king side", "e8", "h8", true},
		{"black queen side", "e8", "a8", true},
		{"king destination target", "e1", "g1", true},
		{"king off square", "e2", "h1", false},
		{"not a rook square", "e1", "d1", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got = DefaultRights.IsCastlingMove(mustTileValue(test.king), mustTileValue(test.rook))
			if got != test.want {
				t.Errorf("got %v", got)
			}
		})
	}
}

func TestCastlingRightsOneWay(t *testing.T) {
	var r = NoRights
	if r.CanCastle(mustTileValue("e1"), mustTileValue("h1")) {
		t.Error("no rights, no castling")
	}
	// There is no enabling operation; rights only ever shrink.
	var full = DefaultRights
	var after = full.DisableCastling(mustTileValue("e1"), mustTileValue("h1"))
	if after.Has(White, KingSide) {
		t.Error("right should be revoked")
	}
	if after.DisableCastling(mustTileValue("e1"), mustTileValue("h1")) != after {
		t.Error("revoking twice is a no-op")
	}
}

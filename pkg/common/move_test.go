package common

import "testing"

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"e2e4", MoveFromTo(mustTileValue("e2"), mustTileValue("e4"))},
		{"e7e8Q", MoveFromToPromote(mustTileValue("e7"), mustTileValue("e8"), Queen)},
		{"Nf3", MovePieceTo(Knight, mustTileValue("f3"))},
		{"e4", MovePieceTo(Pawn, mustTileValue("e4"))},
		{"$Qe8", MovePurchase(Queen, mustTileValue("e8"))},
		{"O-O", MoveCastle(KingSide)},
		{"O-O-O", MoveCastle(QueenSide)},
		{"pass", MovePass()},
		{"resign", MoveResign()},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseMove(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != test.want.String() {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestParseMoveSequence(t *testing.T) {
	got, err := ParseMove("e2e4 $Pd2 Nf3")
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != MoveKindMany || len(got.Sequence) != 3 {
		t.Fatalf("got %v", got)
	}
	if got.String() != "e2e4 $Pd2 Nf3" {
		t.Errorf("round trip: got %q", got.String())
	}
}

func TestParseMoveLiteralShortCircuit(t *testing.T) {
	// A castling, pass or resign token stands for the whole line, even
	// with other tokens around it.
	got, err := ParseMove("O-O e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != MoveKindCastling || got.Side != KingSide {
		t.Errorf("got %v", got)
	}
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	for _, s := range []string{"e2e9", "Xf3", "$Q", "$Qe", "e2e4x9", "z9", "Nf3Z"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{MoveFromTo(mustTileValue("a2"), mustTileValue("a4")), "a2a4"},
		{MoveFromToPromote(mustTileValue("b7"), mustTileValue("b8"), Knight), "b7b8N"},
		{MovePieceTo(Rook, mustTileValue("d4")), "Rd4"},
		{MovePurchase(Pawn, mustTileValue("c2")), "$Pc2"},
		{MoveCastle(QueenSide), "O-O-O"},
		{MoveSequence(MovePass(), MoveResign()), "pass resign"},
	}
	for _, test := range tests {
		if got := test.move.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

package common

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// candidateMoves enumerates the squares a piece might try to reach from
// the tile, before any legality filtering. The enumeration order is load
// bearing: disambiguation and search tie-breaks both resolve to the
// first candidate that works, so reordering changes played games.
func candidateMoves(p Piece, from Tile) []Tile {
	switch p.Kind {
	case Pawn:
		return pawnCandidates(p.Color, from)
	case Knight:
		return offsetCandidates(from, knightOffsets)
	case Bishop:
		return diagonalLine(from)
	case Rook:
		return append(fileLine(from), rankLine(from)...)
	case Queen:
		return append(append(fileLine(from), rankLine(from)...), diagonalLine(from)...)
	case King:
		return offsetCandidates(from, kingOffsets)
	}
	return nil
}

func pawnCandidates(c Color, from Tile) []Tile {
	var dir = pawnDirection(c)
	var result []Tile
	for _, d := range [3][2]int{{dir, 1}, {dir, -1}, {dir, 0}} {
		if to, ok := from.MoveBy(d[0], d[1]); ok {
			result = append(result, to)
		}
	}
	if from.Rank() == rankPawnWhite || from.Rank() == rankPawnBlack {
		if to, ok := from.MoveBy(2*dir, 0); ok {
			result = append(result, to)
		}
	}
	return result
}

func offsetCandidates(from Tile, offsets [8][2]int) []Tile {
	var result []Tile
	for _, d := range offsets {
		if to, ok := from.MoveBy(d[0], d[1]); ok {
			result = append(result, to)
		}
	}
	return result
}

// fileLine walks every rank of from's file, bottom up.
func fileLine(from Tile) []Tile {
	var result = make([]Tile, 0, 8)
	for rank := 0; rank < 8; rank++ {
		result = append(result, MakeTile(rank, from.File()))
	}
	return result
}

// rankLine walks every file of from's rank, left to right.
func rankLine(from Tile) []Tile {
	var result = make([]Tile, 0, 8)
	for file := 0; file < 8; file++ {
		result = append(result, MakeTile(from.Rank(), file))
	}
	return result
}

// diagonalLine filters the whole board for squares diagonal to from,
// in tile-scan order. The origin square itself passes the filter; the
// legality check discards it downstream.
func diagonalLine(from Tile) []Tile {
	var result []Tile
	for t := Tile(0); t < 64; t++ {
		if isDiagonalTo(from, t) {
			result = append(result, t)
		}
	}
	return result
}

// LegalMoves enumerates every legal move for the side to move:
// tile-scan order over the mover's pieces, candidate order per piece,
// pawn moves onto the far rank expanded into the four promotion
// variants, and finally the castling moves, king side first.
func LegalMoves(b *Board) []Move {
	var result []Move
	var turn = b.WhoseTurn()

	for t := Tile(0); t < 64; t++ {
		var piece, ok = b.PieceAt(t)
		if !ok || piece.Color != turn {
			continue
		}
		for _, to := range candidateMoves(piece, t) {
			if !b.IsLegalPieceMove(t, to) {
				continue
			}
			if b.isValidPromotion(t, to) {
				for _, kind := range Promotions {
					result = append(result, MoveFromToPromote(t, to, kind))
				}
			} else {
				result = append(result, MoveFromTo(t, to))
			}
		}
	}

	var king = KingStart(turn)
	if b.CanCastle(king, RookStart(turn, KingSide)) {
		result = append(result, MoveCastle(KingSide))
	}
	if b.CanCastle(king, RookStart(turn, QueenSide)) {
		result = append(result, MoveCastle(QueenSide))
	}
	return result
}

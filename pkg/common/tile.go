package common

import "errors"

// Tile is a square of the board, rank-major: index = rank*8 + file.
// Rank 0 is white's back rank, file 0 is the a-file.
type Tile int

const TileNone Tile = -1

const (
	rankPawnWhite = 1
	rankPawnBlack = 6
	rankBackWhite = 0
	rankBackBlack = 7

	fileKing          = 4
	fileQueensideRook = 0
	fileKingsideRook  = 7
)

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func MakeTile(rank, file int) Tile {
	return Tile(rank<<3 | file)
}

func (t Tile) Rank() int {
	return int(t) >> 3
}

func (t Tile) File() int {
	return int(t) & 7
}

func (t Tile) Bit() uint64 {
	return 1 << uint(t)
}

func (t Tile) String() string {
	return string(fileNames[t.File()]) + string(rankNames[t.Rank()])
}

func ParseTile(s string) (Tile, error) {
	if len(s) != 2 {
		return TileNone, errors.New("bad tile: " + s)
	}
	var file = s[0] - 'a'
	var rank = s[1] - '1'
	if file > 7 || rank > 7 {
		return TileNone, errors.New("bad tile: " + s)
	}
	return MakeTile(int(rank), int(file)), nil
}

// MoveBy shifts the tile by rank and file deltas, reporting false when the
// result leaves the board.
func (t Tile) MoveBy(dRank, dFile int) (Tile, bool) {
	var rank = t.Rank() + dRank
	var file = t.File() + dFile
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return TileNone, false
	}
	return MakeTile(rank, file), true
}

func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// Advance moves the tile the given count of ranks in color's pawn
// direction. Off-board results collapse to TileNone.
func (t Tile) Advance(c Color, count int) Tile {
	var rank = t.Rank() + pawnDirection(c)*count
	if rank < 0 || rank > 7 {
		return TileNone
	}
	return MakeTile(rank, t.File())
}

func advanceRank(rank int, c Color, count int) int {
	return rank + pawnDirection(c)*count
}

// PlayerSide is the half of the board the tile sits on: ranks 0-3 belong
// to white, 4-7 to black.
func (t Tile) PlayerSide() Color {
	if t.Rank() <= 3 {
		return White
	}
	return Black
}

// CastlingSideOf maps the tile's file onto a castling wing: files a-d are
// the queen side, e-h the king side.
func (t Tile) CastlingSideOf() CastlingSide {
	if t.File() < 4 {
		return QueenSide
	}
	return KingSide
}

func KingStart(c Color) Tile {
	if c == White {
		return MakeTile(rankBackWhite, fileKing)
	}
	return MakeTile(rankBackBlack, fileKing)
}

func RookStart(c Color, side CastlingSide) Tile {
	var rank = rankBackWhite
	if c == Black {
		rank = rankBackBlack
	}
	if side == KingSide {
		return MakeTile(rank, fileKingsideRook)
	}
	return MakeTile(rank, fileQueensideRook)
}

// CastlingKingDestination is the square the king lands on: g1/c1/g8/c8.
func CastlingKingDestination(c Color, side CastlingSide) Tile {
	var delta = 2
	if side == QueenSide {
		delta = -2
	}
	var to, _ = KingStart(c).MoveBy(0, delta)
	return to
}

// CastlingRookDestination is the square on the far side of the castled king.
func CastlingRookDestination(c Color, side CastlingSide) Tile {
	var delta = -1
	if side == QueenSide {
		delta = 1
	}
	var to, _ = CastlingKingDestination(c, side).MoveBy(0, delta)
	return to
}

func (t Tile) isRookSquare(c Color) bool {
	var rank = rankBackWhite
	if c == Black {
		rank = rankBackBlack
	}
	return t.Rank() == rank && (t.File() == fileKingsideRook || t.File() == fileQueensideRook)
}

func (t Tile) isCastlingKingDestination(c Color) bool {
	return t == CastlingKingDestination(c, KingSide) || t == CastlingKingDestination(c, QueenSide)
}

func rankWithin(a, b, n int) bool {
	var d = a - b
	if d < 0 {
		d = -d
	}
	return d <= n
}

func isKnightMoveAway(from, to Tile) bool {
	return rankWithin(from.Rank(), to.Rank(), 1) && rankWithin(from.File(), to.File(), 2) ||
		rankWithin(from.Rank(), to.Rank(), 2) && rankWithin(from.File(), to.File(), 1)
}

func isKingMoveAway(from, to Tile) bool {
	return rankWithin(from.Rank(), to.Rank(), 1) && rankWithin(from.File(), to.File(), 1)
}

func isDiagonalTo(from, to Tile) bool {
	var dr = from.Rank() - to.Rank()
	var df = from.File() - to.File()
	if dr < 0 {
		dr = -dr
	}
	if df < 0 {
		df = -df
	}
	return dr == df
}

func isRookMoveAway(from, to Tile) bool {
	return from.Rank() == to.Rank() || from.File() == to.File()
}

func isBishopMoveAway(from, to Tile) bool {
	return isDiagonalTo(from, to)
}

func isQueenMoveAway(from, to Tile) bool {
	return isRookMoveAway(from, to) || isBishopMoveAway(from, to)
}

func isPawnMoveAway(from, to Tile, color Color, isAttack bool, enPassant Tile) bool {
	var oneAhead = advanceRank(from.Rank(), color, 1) == to.Rank()
	if isAttack {
		return oneAhead && rankWithin(from.File(), to.File(), 1) && from.File() != to.File()
	}
	if enPassant != TileNone && enPassant == to &&
		oneAhead && rankWithin(from.File(), to.File(), 1) && from.File() != to.File() {
		return true
	}
	if color == White && from.Rank() == rankPawnWhite &&
		advanceRank(from.Rank(), color, 2) == to.Rank() && from.File() == to.File() {
		return true
	}
	if color == Black && from.Rank() == rankPawnBlack &&
		advanceRank(from.Rank(), color, 2) == to.Rank() && from.File() == to.File() {
		return true
	}
	return oneAhead && from.File() == to.File()
}

// Sector is one of sixteen fixed 2x2 blocks, numbered 0-15 from the bottom
// left to the top right.
type Sector int

const NumSectors = 16

func (t Tile) Sector() Sector {
	return Sector((t.Rank()/2)*4 + t.File()/2)
}

func (s Sector) Index() int {
	return int(s)
}

// IsCenter reports whether the sector is one of the four middle blocks.
func (s Sector) IsCenter() bool {
	return s == 5 || s == 6 || s == 9 || s == 10
}

func (s Sector) IsOuter() bool {
	return !s.IsCenter()
}

// IsHomeFor reports whether the sector sits on color's first two ranks.
// Purchases may only be placed on home sectors.
func (s Sector) IsHomeFor(c Color) bool {
	if c == White {
		return s <= 3
	}
	return s >= 12
}

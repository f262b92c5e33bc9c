package common

import "errors"

// ErrIllegalMove is the only failure Apply reports. Validation happens
// before mutation, so a board that returns it is unchanged.
var ErrIllegalMove = errors.New("illegal move")

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Enemy() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

const NoPiece PieceKind = -1

var AllKinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Promotions in the order the move generator expands them.
var Promotions = [4]PieceKind{Knight, Bishop, Rook, Queen}

const pieceLetters = "PNBRQK"

// BaseValue is the classic material weight of the kind. The bishop sits
// slightly above the knight; the economy layer truncates when it converts
// these to currency.
func (k PieceKind) BaseValue() float64 {
	switch k {
	case Pawn:
		return 1
	case Knight:
		return 3
	case Bishop:
		return 3.15
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	}
	return 0
}

func (k PieceKind) Letter() byte {
	return pieceLetters[k]
}

func (k PieceKind) String() string {
	return string(k.Letter())
}

func ParsePieceKind(s string) (PieceKind, error) {
	if len(s) != 1 {
		return NoPiece, errors.New("bad piece kind: " + s)
	}
	for i := 0; i < len(pieceLetters); i++ {
		if pieceLetters[i] == s[0] {
			return PieceKind(i), nil
		}
	}
	return NoPiece, errors.New("bad piece kind: " + s)
}

type Piece struct {
	Kind  PieceKind
	Color Color
}

var pieceSymbols = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'},
	{'♟', '♞', '♝', '♜', '♛', '♚'},
}

func (p Piece) Symbol() rune {
	return pieceSymbols[p.Color][p.Kind]
}

// CanMove reports whether the piece's movement geometry permits from->to.
// It knows nothing about blocking or checks; the board layers those on top.
func (p Piece) CanMove(from, to Tile, isAttack bool, enPassant Tile) bool {
	switch p.Kind {
	case Pawn:
		return isPawnMoveAway(from, to, p.Color, isAttack, enPassant)
	case Knight:
		return isKnightMoveAway(from, to)
	case Bishop:
		return isBishopMoveAway(from, to)
	case Rook:
		return isRookMoveAway(from, to)
	case Queen:
		return isQueenMoveAway(from, to)
	case King:
		return isKingMoveAway(from, to)
	}
	return false
}

type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

func (s CastlingSide) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

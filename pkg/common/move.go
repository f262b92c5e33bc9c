package common

import (
	"errors"
	"strings"
)

type MoveKind int

const (
	MoveKindFromTo MoveKind = iota
	MoveKindPieceTo
	MoveKindPurchase
	MoveKindCastling
	MoveKindPass
	MoveKindResign
	MoveKindMany
)

// Move is a tagged union over the seven move forms. Only the fields of the
// active kind are meaningful.
type Move struct {
	Kind      MoveKind
	From      Tile
	To        Tile
	Piece     PieceKind
	Promotion PieceKind
	Side      CastlingSide
	Sequence  []Move
}

func MoveFromTo(from, to Tile) Move {
	return Move{Kind: MoveKindFromTo, From: from, To: to, Promotion: NoPiece}
}

func MoveFromToPromote(from, to Tile, promotion PieceKind) Move {
	return Move{Kind: MoveKindFromTo, From: from, To: to, Promotion: promotion}
}

func MovePieceTo(piece PieceKind, to Tile) Move {
	return Move{Kind: MoveKindPieceTo, Piece: piece, To: to, Promotion: NoPiece}
}

func MovePurchase(piece PieceKind, to Tile) Move {
	return Move{Kind: MoveKindPurchase, Piece: piece, To: to, Promotion: NoPiece}
}

func MoveCastle(side CastlingSide) Move {
	return Move{Kind: MoveKindCastling, Side: side, Promotion: NoPiece}
}

func MovePass() Move {
	return Move{Kind: MoveKindPass, Promotion: NoPiece}
}

func MoveResign() Move {
	return Move{Kind: MoveKindResign, Promotion: NoPiece}
}

func MoveSequence(moves ...Move) Move {
	return Move{Kind: MoveKindMany, Sequence: moves, Promotion: NoPiece}
}

func (m Move) String() string {
	switch m.Kind {
	case MoveKindFromTo:
		var s = m.From.String() + m.To.String()
		if m.Promotion != NoPiece {
			s += m.Promotion.String()
		}
		return s
	case MoveKindPieceTo:
		var s = m.Piece.String() + m.To.String()
		if m.Promotion != NoPiece {
			s += m.Promotion.String()
		}
		return s
	case MoveKindPurchase:
		return "$" + m.Piece.String() + m.To.String()
	case MoveKindCastling:
		return m.Side.String()
	case MoveKindPass:
		return "pass"
	case MoveKindResign:
		return "resign"
	case MoveKindMany:
		var parts = make([]string, len(m.Sequence))
		for i, sub := range m.Sequence {
			parts[i] = sub.String()
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func isPieceLetter(b byte) bool {
	return strings.IndexByte(pieceLetters, b) >= 0
}

// ParseMove parses a whitespace-separated line of move tokens. A castling
// token, "resign" or "pass" stands for the whole line; otherwise a single
// token yields that move and several tokens yield a compound sequence. Any
// malformed token fails the whole line.
func ParseMove(s string) (Move, error) {
	var moves []Move
	for _, word := range strings.Fields(s) {
		switch word {
		case "O-O":
			return MoveCastle(KingSide), nil
		case "O-O-O":
			return MoveCastle(QueenSide), nil
		case "resign":
			return MoveResign(), nil
		case "pass":
			return MovePass(), nil
		}

		if strings.HasPrefix(word, "$") {
			if len(word) != 4 {
				return Move{}, errors.New("bad move: " + word)
			}
			var piece, err = ParsePieceKind(word[1:2])
			if err != nil {
				return Move{}, err
			}
			to, err := ParseTile(word[2:4])
			if err != nil {
				return Move{}, err
			}
			moves = append(moves, MovePurchase(piece, to))
			continue
		}

		var m Move
		var err error
		switch {
		case len(word) == 5:
			m, err = parseFromTo(word[:4], word[4])
		case len(word) == 4 && isPieceLetter(word[0]):
			m, err = parsePieceTo(word[:3], word[3])
		case len(word) == 4:
			m, err = parseFromTo(word, 0)
		case len(word) == 3:
			m, err = parsePieceTo(word, 0)
		case len(word) == 2:
			var to Tile
			to, err = ParseTile(word)
			m = MovePieceTo(Pawn, to)
		default:
			err = errors.New("bad move: " + word)
		}
		if err != nil {
			return Move{}, err
		}
		moves = append(moves, m)
	}

	if len(moves) == 1 {
		return moves[0], nil
	}
	return MoveSequence(moves...), nil
}

func parseFromTo(word string, promotion byte) (Move, error) {
	var from, err = ParseTile(word[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseTile(word[2:4])
	if err != nil {
		return Move{}, err
	}
	if promotion == 0 {
		return MoveFromTo(from, to), nil
	}
	kind, err := ParsePieceKind(string(promotion))
	if err != nil {
		return Move{}, err
	}
	return MoveFromToPromote(from, to, kind), nil
}

func parsePieceTo(word string, promotion byte) (Move, error) {
	var piece, err = ParsePieceKind(word[:1])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseTile(word[1:3])
	if err != nil {
		return Move{}, err
	}
	var m = MovePieceTo(piece, to)
	if promotion != 0 {
		m.Promotion, err = ParsePieceKind(string(promotion))
		if err != nil {
			return Move{}, err
		}
	}
	return m, nil
}

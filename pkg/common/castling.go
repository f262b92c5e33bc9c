package common

// CastlingRights tracks which of the four castling options are still open.
// Rights only ever get disabled; nothing restores them.
type CastlingRights uint8

const (
	WhiteKingSideRight CastlingRights = 1 << iota
	WhiteQueenSideRight
	BlackKingSideRight
	BlackQueenSideRight
)

const (
	DefaultRights = WhiteKingSideRight | WhiteQueenSideRight | BlackKingSideRight | BlackQueenSideRight
	NoRights      CastlingRights = 0
)

func rightBit(c Color, side CastlingSide) CastlingRights {
	if c == White {
		if side == KingSide {
			return WhiteKingSideRight
		}
		return WhiteQueenSideRight
	}
	if side == KingSide {
		return BlackKingSideRight
	}
	return BlackQueenSideRight
}

func (r CastlingRights) Has(c Color, side CastlingSide) bool {
	return r&rightBit(c, side) != 0
}

func (r CastlingRights) Disable(c Color, side CastlingSide) CastlingRights {
	return r &^ rightBit(c, side)
}

func (r CastlingRights) DisableColor(c Color) CastlingRights {
	return r.Disable(c, KingSide).Disable(c, QueenSide)
}

// IsCastlingMove reports whether the king/rook tile pair encodes a castling
// attempt that the rights still permit: the king on its start square and the
// other tile either a rook home square or a castled-king destination.
func (r CastlingRights) IsCastlingMove(king, rook Tile) bool {
	var color = king.PlayerSide()
	return king == KingStart(color) &&
		(rook.isCastlingKingDestination(color) || rook.isRookSquare(color)) &&
		r.Has(color, rook.CastlingSideOf())
}

// CanCastle reports whether the rights allow castling for the pair.
func (r CastlingRights) CanCastle(king, rook Tile) bool {
	if !r.IsCastlingMove(king, rook) {
		return false
	}
	return r.Has(king.PlayerSide(), rook.CastlingSideOf())
}

// DisableCastling revokes the right for the side the pair encodes, a no-op
// when the pair is not a castling move.
func (r CastlingRights) DisableCastling(king, rook Tile) CastlingRights {
	if !r.IsCastlingMove(king, rook) {
		return r
	}
	return r.Disable(king.PlayerSide(), rook.CastlingSideOf())
}

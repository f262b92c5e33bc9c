package common

import (
	"fmt"
	"strings"
)

// insertSanityChecks enables the structural consistency check on the hot
// path. Off by default; tests flip it on. A failed check panics.
var insertSanityChecks = false

// Board is the full game state: one occupancy mask per color and piece
// kind, the open en-passant target if any, the castling rights, the side
// to move and the declared winner. It is a small value type; speculative
// moves are tried on plain copies.
type Board struct {
	pieces    [2][6]uint64
	enPassant Tile
	rights    CastlingRights
	turn      Color
	winner    Color
	hasWinner bool
}

var startFiles = [6][]int{
	Pawn:   {0, 1, 2, 3, 4, 5, 6, 7},
	Knight: {1, 6},
	Bishop: {2, 5},
	Rook:   {0, 7},
	Queen:  {3},
	King:   {4},
}

// NewBoard returns a board in the standard starting arrangement with
// white to move.
func NewBoard() Board {
	var b = EmptyBoard()
	b.rights = DefaultRights
	for _, kind := range AllKinds {
		var rank = rankBackWhite
		if kind == Pawn {
			rank = rankPawnWhite
		}
		for _, file := range startFiles[kind] {
			b.Put(Piece{kind, White}, MakeTile(rank, file))
			b.Put(Piece{kind, Black}, MakeTile(7-rank, file))
		}
	}
	return b
}

// EmptyBoard returns a board with no pieces and no castling rights.
func EmptyBoard() Board {
	return Board{enPassant: TileNone, rights: NoRights, turn: White}
}

func (b *Board) WhoseTurn() Color {
	return b.turn
}

func (b *Board) SetTurn(c Color) {
	b.turn = c
}

func (b *Board) Rights() CastlingRights {
	return b.rights
}

// SetRights overrides the castling rights. Intended for setting up
// positions; normal play only ever revokes rights through Apply.
func (b *Board) SetRights(r CastlingRights) {
	b.rights = r
}

func (b *Board) EnPassantTarget() Tile {
	return b.enPassant
}

// Winner reports the declared winner, set only by resignation.
func (b *Board) Winner() (Color, bool) {
	return b.winner, b.hasWinner
}

// Put places a piece of an explicit color, clearing any previous occupant.
func (b *Board) Put(p Piece, to Tile) {
	b.RemovePiece(to)
	b.pieces[p.Color][p.Kind] |= to.Bit()
}

// Spawn places a piece of the side to move, clearing any previous
// occupant. Used for promotion and for purchased pieces.
func (b *Board) Spawn(kind PieceKind, to Tile) {
	b.Put(Piece{kind, b.turn}, to)
}

func (b *Board) RemovePiece(to Tile) {
	var mask = ^to.Bit()
	for c := White; c <= Black; c++ {
		for _, kind := range AllKinds {
			b.pieces[c][kind] &= mask
		}
	}
}

// movePiece clears the destination on every mask, then shifts the source
// bit on whichever mask holds it.
func (b *Board) movePiece(from, to Tile) {
	b.RemovePiece(to)
	for c := White; c <= Black; c++ {
		for _, kind := range AllKinds {
			b.pieces[c][kind] = moveBit(b.pieces[c][kind], from, to)
		}
	}
}

// PieceAt returns the piece on the tile, scanning white masks before
// black ones. The masks are disjoint, so at most one can match.
func (b *Board) PieceAt(t Tile) (Piece, bool) {
	var bit = t.Bit()
	for c := White; c <= Black; c++ {
		for _, kind := range AllKinds {
			if b.pieces[c][kind]&bit != 0 {
				return Piece{kind, c}, true
			}
		}
	}
	return Piece{}, false
}

func (b *Board) HasPieceOn(t Tile) bool {
	return b.allBits()&t.Bit() != 0
}

func (b *Board) colorBits(c Color) uint64 {
	var bits uint64
	for _, kind := range AllKinds {
		bits |= b.pieces[c][kind]
	}
	return bits
}

func (b *Board) allBits() uint64 {
	return b.colorBits(White) | b.colorBits(Black)
}

func (b *Board) PieceCount(c Color) int {
	return popCount(b.colorBits(c))
}

func (b *Board) KindCount(c Color, kind PieceKind) int {
	return popCount(b.pieces[c][kind])
}

// AttackedBy is the union of every attack mask of the color's pieces.
// Sliders keep only the squares their line of sight actually reaches;
// knights jump, so their mask is never filtered.
func (b *Board) AttackedBy(c Color) uint64 {
	var all = b.allBits()
	var result uint64
	for _, kind := range AllKinds {
		for bits := b.pieces[c][kind]; bits != 0; bits &= bits - 1 {
			var from = tileFromBit(bits & -bits)
			var attack = attackBits(kind, c, from)
			if kind != Knight {
				attack = visibleBits(all, from, attack)
			}
			result |= attack
		}
	}
	return result
}

func (b *Board) isBlocked(from, to Tile) bool {
	return isBlockedBits(b.allBits(), from, to)
}

// IsInCheck reports whether the color's king sits on a square the enemy
// attacks.
func (b *Board) IsInCheck(c Color) bool {
	return b.pieces[c][King]&b.AttackedBy(c.Enemy()) != 0
}

// hasEscape reports whether any candidate move of the color's pieces
// passes the legality check.
func (b *Board) hasEscape(c Color) bool {
	for t := Tile(0); t < 64; t++ {
		var piece, ok = b.PieceAt(t)
		if !ok || piece.Color != c {
			continue
		}
		for _, to := range candidateMoves(piece, t) {
			if b.IsLegalPieceMove(t, to) {
				return true
			}
		}
	}
	return false
}

func (b *Board) IsInCheckmate(c Color) bool {
	return b.IsInCheck(c) && !b.hasEscape(c)
}

// IsStalemate reports whether the side to move has no legal move while
// not in check.
func (b *Board) IsStalemate() bool {
	return !b.IsInCheck(b.turn) && !b.hasEscape(b.turn)
}

// CanCastle reports whether the king and rook on the given squares may
// castle right now: the right must survive, the king must not be in
// check, and the path between them must be free of pieces and of enemy
// attacked squares.
func (b *Board) CanCastle(king, rook Tile) bool {
	if !b.rights.CanCastle(king, rook) {
		return false
	}
	if b.IsInCheck(king.PlayerSide()) {
		return false
	}
	var kingPiece, ok = b.PieceAt(king)
	if !ok {
		return false
	}
	if isBlockedBits(b.allBits()|b.AttackedBy(kingPiece.Color.Enemy()), king, rook) {
		return false
	}
	var rookPiece, rookOk = b.PieceAt(rook)
	return rookOk && kingPiece.Kind == King && rookPiece.Kind == Rook
}

func (b *Board) isCastlingMove(from, to Tile) bool {
	var piece, ok = b.PieceAt(from)
	return ok && piece.Kind == King && b.rights.IsCastlingMove(from, to)
}

// isInCheckAfterMove probes whether relocating from->to leaves the color
// in check. Castling rights and turn are not touched during the probe.
func (b *Board) isInCheckAfterMove(c Color, from, to Tile) bool {
	var probe = *b
	probe.movePiece(from, to)
	return probe.IsInCheck(c)
}

// IsLegalPieceMove is the central legality check for a from/to pair.
// Castling is encoded as a move from the king's square to the rook's
// square.
func (b *Board) IsLegalPieceMove(from, to Tile) bool {
	if insertSanityChecks {
		if err := b.SanityCheck(); err != nil {
			panic(err)
		}
	}
	var src, srcOk = b.PieceAt(from)
	if !srcOk {
		return false
	}
	var dst, dstOk = b.PieceAt(to)

	if dstOk && src.Color == dst.Color {
		// Only a castling encoding may target a friendly piece.
		return b.isCastlingMove(from, to) && b.CanCastle(from, to)
	}
	if src.Color != b.turn {
		return false
	}
	if !dstOk && b.isCastlingMove(from, to) {
		return b.CanCastle(from, to)
	}
	if !src.CanMove(from, to, dstOk, b.enPassant) {
		return false
	}
	if src.Kind != Knight && b.isBlocked(from, to) {
		return false
	}
	return !b.isInCheckAfterMove(b.turn, from, to)
}

// IsLegalMove reports whether the move can be applied to the board.
// Purchases always fail here: placing bought pieces is the concern of
// the layer that owns the banks, not of the board itself.
func (b *Board) IsLegalMove(m Move) bool {
	switch m.Kind {
	case MoveKindCastling:
		var king = KingStart(b.turn)
		var rook = RookStart(b.turn, m.Side)
		return b.CanCastle(king, rook)
	case MoveKindFromTo:
		return b.IsLegalPieceMove(m.From, m.To)
	case MoveKindPieceTo:
		var from, ok = b.EligiblePiece(m.Piece, m.To)
		return ok && b.IsLegalPieceMove(from, m.To)
	case MoveKindPass:
		return false
	case MoveKindResign:
		return true
	case MoveKindMany:
		if len(m.Sequence) == 0 {
			return false
		}
		var probe = *b
		for _, sub := range m.Sequence {
			probe.turn = b.turn
			if !probe.IsLegalMove(sub) {
				return false
			}
			probe.turn = b.turn
			if probe.Apply(sub) != nil {
				return false
			}
		}
		return true
	}
	return false
}

// EligiblePiece resolves a piece-disambiguated destination to a source
// tile: the first tile in scan order holding a piece of the right kind
// and color whose geometry reaches the destination. Several possible
// sources are not an error; the first one wins.
func (b *Board) EligiblePiece(kind PieceKind, to Tile) (Tile, bool) {
	var isAttack = b.HasPieceOn(to)
	for t := Tile(0); t < 64; t++ {
		var piece, ok = b.PieceAt(t)
		if ok && piece.Kind == kind && piece.Color == b.turn &&
			piece.CanMove(t, to, isAttack, b.enPassant) {
			return t, true
		}
	}
	return TileNone, false
}

// Apply validates and performs the move, flipping the turn on success.
// Validation precedes mutation, so a failed single move leaves the board
// untouched. A failing step inside a compound sequence does not roll
// back the steps already applied.
func (b *Board) Apply(m Move) error {
	if insertSanityChecks {
		if err := b.SanityCheck(); err != nil {
			panic(err)
		}
	}
	switch m.Kind {
	case MoveKindFromTo:
		return b.performMoveFromTo(m.From, m.To, m.Promotion)
	case MoveKindPieceTo:
		var from, ok = b.EligiblePiece(m.Piece, m.To)
		if !ok {
			return ErrIllegalMove
		}
		return b.performMoveFromTo(from, m.To, m.Promotion)
	case MoveKindCastling:
		var king = KingStart(b.turn)
		var rook = RookStart(b.turn, m.Side)
		return b.performMoveFromTo(king, rook, NoPiece)
	case MoveKindMany:
		if len(m.Sequence) == 0 {
			return nil
		}
		var turn = b.turn
		for _, sub := range m.Sequence {
			b.turn = turn
			if err := b.Apply(sub); err != nil {
				return err
			}
		}
		b.turn = turn.Enemy()
		return nil
	case MoveKindResign:
		b.winner = b.turn.Enemy()
		b.hasWinner = true
		b.turn = b.turn.Enemy()
		return nil
	case MoveKindPass:
		b.turn = b.turn.Enemy()
		return nil
	case MoveKindPurchase:
		return ErrIllegalMove
	}
	return ErrIllegalMove
}

func (b *Board) performMoveFromTo(from, to Tile, promotion PieceKind) error {
	if !b.IsLegalPieceMove(from, to) {
		return ErrIllegalMove
	}
	var piece, ok = b.PieceAt(from)
	if !ok {
		return ErrIllegalMove
	}
	b.turn = piece.Color

	if b.isCastlingMove(from, to) {
		b.performCastling(from, to)
		b.enPassant = TileNone
		b.turn = b.turn.Enemy()
		return nil
	}

	b.detectDisabledCastlingRights(from, to)

	if b.isEnPassantCapture(from, to) {
		b.captureEnPassant(from)
	} else {
		b.RemovePiece(to)
		if b.isValidPromotion(from, to) {
			if promotion == NoPiece {
				promotion = Queen
			}
			b.RemovePiece(from)
			b.Spawn(promotion, to)
			b.enPassant = TileNone
		} else {
			b.detectPossibleEnPassant(from, to)
			b.movePiece(from, to)
		}
	}

	b.turn = b.turn.Enemy()
	return nil
}

// performCastling relocates king and rook to their fixed destinations
// and revokes the mover's rights for that wing.
func (b *Board) performCastling(king, rook Tile) {
	if !b.isCastlingMove(king, rook) {
		return
	}
	b.rights = b.rights.DisableColor(b.turn)
	var side = rook.CastlingSideOf()
	b.movePiece(king, CastlingKingDestination(b.turn, side))
	b.movePiece(rook, CastlingRookDestination(b.turn, side))
}

// detectDisabledCastlingRights revokes rights when a rook or king leaves
// its home square. Rights never come back once revoked.
func (b *Board) detectDisabledCastlingRights(from, to Tile) {
	if b.isCastlingMove(from, to) {
		b.rights = b.rights.DisableColor(b.turn)
		return
	}
	switch from {
	case RookStart(White, KingSide):
		b.rights = b.rights.Disable(White, KingSide)
	case RookStart(White, QueenSide):
		b.rights = b.rights.Disable(White, QueenSide)
	case RookStart(Black, KingSide):
		b.rights = b.rights.Disable(Black, KingSide)
	case RookStart(Black, QueenSide):
		b.rights = b.rights.Disable(Black, QueenSide)
	case KingStart(White):
		b.rights = b.rights.DisableColor(White)
	case KingStart(Black):
		b.rights = b.rights.DisableColor(Black)
	}
}

func (b *Board) isEnPassantCapture(from, to Tile) bool {
	if b.enPassant == TileNone || b.enPassant != to {
		return false
	}
	var piece, ok = b.PieceAt(from)
	return ok && piece.Kind == Pawn
}

// captureEnPassant removes the pawn sitting one rank past the target and
// relocates the capturing pawn onto the target square.
func (b *Board) captureEnPassant(from Tile) {
	var target = b.enPassant
	b.RemovePiece(target.Advance(b.turn, -1))
	b.movePiece(from, target)
	b.enPassant = TileNone
}

// detectPossibleEnPassant opens an en-passant window behind a pawn that
// just advanced two squares from its starting rank, and closes any
// previous window otherwise.
func (b *Board) detectPossibleEnPassant(from, to Tile) {
	b.enPassant = TileNone
	var piece, ok = b.PieceAt(from)
	if !ok || piece.Kind != Pawn {
		return
	}
	if from.Rank() != rankPawnWhite && from.Rank() != rankPawnBlack {
		return
	}
	if to.Rank() != rankPawnWhite+2 && to.Rank() != rankPawnBlack-2 {
		return
	}
	b.enPassant = from.Advance(b.turn, 1)
}

// isValidPromotion reports whether the move is a pawn reaching the far
// back rank.
func (b *Board) isValidPromotion(from, to Tile) bool {
	var piece, ok = b.PieceAt(from)
	if !ok || piece.Kind != Pawn {
		return false
	}
	return piece.Color == White && to.Rank() == rankBackBlack ||
		piece.Color == Black && to.Rank() == rankBackWhite
}

// ControlledSectors reports, per sector, whether the color holds the
// material majority there.
func (b *Board) ControlledSectors(c Color) [NumSectors]bool {
	var result [NumSectors]bool
	for s := Sector(0); s < NumSectors; s++ {
		result[s] = b.ControlsSector(s, c)
	}
	return result
}

func (b *Board) ControlsSector(s Sector, c Color) bool {
	var owner, ok = b.WhoControlsSector(s)
	return ok && owner == c
}

// WhoControlsSector picks the color with the higher total piece value in
// the sector; an exact tie awards nobody. Fractional piece values
// truncate, matching the currency conversion the income census uses.
func (b *Board) WhoControlsSector(s Sector) (Color, bool) {
	var white, black = b.sectorValues(s)
	if white > black {
		return White, true
	}
	if black > white {
		return Black, true
	}
	return White, false
}

func (b *Board) sectorValues(s Sector) (white, black int) {
	for _, kind := range AllKinds {
		var value = int(kind.BaseValue())
		white += popCount(sectorBits(b.pieces[White][kind], s)) * value
		black += popCount(sectorBits(b.pieces[Black][kind], s)) * value
	}
	return white, black
}

// SanityCheck verifies the structural invariants: disjoint occupancy
// masks, castling rights consistent with king and rook placement, and a
// well-formed en-passant target. It is meant for debugging, not the hot
// path.
func (b *Board) SanityCheck() error {
	var seen uint64
	for c := White; c <= Black; c++ {
		for _, kind := range AllKinds {
			if seen&b.pieces[c][kind] != 0 {
				return fmt.Errorf("%s %s mask overlaps another mask", c, kind)
			}
			seen |= b.pieces[c][kind]
		}
	}

	for c := White; c <= Black; c++ {
		var kingHome = b.pieces[c][King] == KingStart(c).Bit()
		for _, side := range [2]CastlingSide{KingSide, QueenSide} {
			if !b.rights.Has(c, side) {
				continue
			}
			if !kingHome {
				return fmt.Errorf("%s king is off its square but keeps castling rights", c)
			}
			if b.pieces[c][Rook]&RookStart(c, side).Bit() == 0 {
				return fmt.Errorf("%s %s rook is off its square but keeps castling rights", c, side)
			}
		}
	}

	if b.enPassant != TileNone {
		var rank = b.enPassant.Rank()
		if rank != rankPawnWhite+1 && rank != rankPawnBlack-1 {
			return fmt.Errorf("en-passant target %s is not on a double-push rank", b.enPassant)
		}
		var color = b.enPassant.PlayerSide()
		var pawn = b.enPassant.Advance(color, 1)
		var piece, ok = b.PieceAt(pawn)
		if !ok || piece != (Piece{Pawn, color}) {
			return fmt.Errorf("no %s pawn behind en-passant target %s", color, b.enPassant)
		}
	}
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			var piece, ok = b.PieceAt(MakeTile(rank, file))
			if ok {
				sb.WriteRune(piece.Symbol())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

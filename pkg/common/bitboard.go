package common

import "math/bits"

var (
	pawnAttacks   [2][64]uint64
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	bishopRays    [64]uint64
	rookRays      [64]uint64
)

func init() {
	for sq := Tile(0); sq < 64; sq++ {
		for c := White; c <= Black; c++ {
			var ahead = advanceRank(sq.Rank(), c, 1)
			if ahead < 0 || ahead > 7 {
				continue
			}
			if sq.File() > 0 {
				pawnAttacks[c][sq] |= MakeTile(ahead, sq.File()-1).Bit()
			}
			if sq.File() < 7 {
				pawnAttacks[c][sq] |= MakeTile(ahead, sq.File()+1).Bit()
			}
		}
		for _, d := range [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}} {
			if to, ok := sq.MoveBy(d[0], d[1]); ok {
				knightAttacks[sq] |= to.Bit()
			}
		}
		for dr := -1; dr <= 1; dr++ {
			for df := -1; df <= 1; df++ {
				if dr == 0 && df == 0 {
					continue
				}
				if to, ok := sq.MoveBy(dr, df); ok {
					kingAttacks[sq] |= to.Bit()
				}
			}
		}
		// The slider rays are the raw geometric lines, origin square
		// included. Blockers get filtered out per position by
		// visibleBits, not here.
		for t := Tile(0); t < 64; t++ {
			if isDiagonalTo(sq, t) {
				bishopRays[sq] |= t.Bit()
			}
			if isRookMoveAway(sq, t) {
				rookRays[sq] |= t.Bit()
			}
		}
	}
}

func attackBits(kind PieceKind, color Color, from Tile) uint64 {
	switch kind {
	case Pawn:
		return pawnAttacks[color][from]
	case Knight:
		return knightAttacks[from]
	case Bishop:
		return bishopRays[from]
	case Rook:
		return rookRays[from]
	case Queen:
		return bishopRays[from] | rookRays[from]
	case King:
		return kingAttacks[from]
	}
	return 0
}

func tileFromBit(b uint64) Tile {
	return Tile(bits.TrailingZeros64(b))
}

// moveBit shifts the from bit to the to bit, a no-op when from is not set.
func moveBit(board uint64, from, to Tile) uint64 {
	if board&from.Bit() == 0 {
		return board
	}
	return board&^from.Bit() | to.Bit()
}

// sectorBits masks board down to the four squares of the sector.
func sectorBits(board uint64, sector Sector) uint64 {
	var result uint64
	var rank = sector.Index() / 4 * 2
	var file = sector.Index() % 4 * 2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			result |= MakeTile(rank+i, file+j).Bit()
		}
	}
	return result & board
}

// stepTowards moves the tile one unit step in the direction of target,
// diagonal steps when both rank and file differ.
func stepTowards(t, target Tile) Tile {
	var rank = t.Rank()
	var file = t.File()
	if rank < target.Rank() {
		rank++
	} else if rank > target.Rank() {
		rank--
	}
	if file < target.File() {
		file++
	} else if file > target.File() {
		file--
	}
	return MakeTile(rank, file)
}

// isBlockedBits walks unit steps from from towards to and reports whether
// any occupied square lies strictly between them.
func isBlockedBits(occupied uint64, from, to Tile) bool {
	var tile = from
	for i := 0; i < 8; i++ {
		tile = stepTowards(tile, to)
		if tile == from {
			continue
		}
		if tile == to {
			break
		}
		if occupied&tile.Bit() != 0 {
			return true
		}
	}
	return false
}

// visibleBits drops every square of vision whose straight-line path from
// origin crosses an occupied square.
func visibleBits(occupied uint64, origin Tile, vision uint64) uint64 {
	var result uint64
	for b := vision; b != 0; b &= b - 1 {
		var bit = b & -b
		if !isBlockedBits(occupied, origin, tileFromBit(bit)) {
			result |= bit
		}
	}
	return result
}

func popCount(b uint64) int {
	return bits.OnesCount64(b)
}

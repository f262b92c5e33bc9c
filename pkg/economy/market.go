package economy

import (
	"math"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
)

// Market fixes the prices of the game: what each piece kind costs to
// buy, what each move costs to play, and what controlled territory pays
// out per turn. A market is immutable once built; the WithX methods
// return adjusted copies.
type Market struct {
	pieceValues  [6]Currency
	baseMoveCost Currency

	castlingValue Currency
	passValue     Currency

	centerSectorIncome Currency
	outerSectorIncome  Currency

	// Compounding rate on each extra move inside a compound turn.
	moveInterestRate float64
}

// DefaultMarket prices each piece kind at twice its material value in
// doubloons, charges a doubloon per move, and pays double income for the
// four center sectors.
func DefaultMarket() Market {
	var m = Market{
		baseMoveCost:       Doubloon,
		castlingValue:      Doubloon * 2,
		passValue:          0,
		centerSectorIncome: Doubloon * 2,
		outerSectorIncome:  Doubloon,
		moveInterestRate:   2,
	}
	for _, kind := range common.AllKinds {
		m.pieceValues[kind] = Doubloon.MulFloat(kind.BaseValue()) * 2
	}
	return m
}

func (m Market) WithPieceValue(kind common.PieceKind, value Currency) Market {
	m.pieceValues[kind] = value
	return m
}

func (m Market) WithBaseMoveCost(cost Currency) Market {
	m.baseMoveCost = cost
	return m
}

func (m Market) WithCastlingValue(value Currency) Market {
	m.castlingValue = value
	return m
}

func (m Market) WithPassValue(value Currency) Market {
	m.passValue = value
	return m
}

func (m Market) WithCenterSectorIncome(value Currency) Market {
	m.centerSectorIncome = value
	return m
}

func (m Market) WithOuterSectorIncome(value Currency) Market {
	m.outerSectorIncome = value
	return m
}

func (m Market) WithInterestRate(rate float64) Market {
	m.moveInterestRate = rate
	return m
}

func (m Market) BaseMoveCost() Currency {
	return m.baseMoveCost
}

func (m Market) PieceValue(kind common.PieceKind) Currency {
	return m.pieceValues[kind]
}

// MoveValue prices a move. Each successive step of a compound sequence
// costs interest on top of its own price, so chaining moves gets
// expensive fast.
func (m Market) MoveValue(move common.Move) Currency {
	switch move.Kind {
	case common.MoveKindFromTo, common.MoveKindPieceTo:
		return m.baseMoveCost
	case common.MoveKindPurchase:
		return m.PieceValue(move.Piece)
	case common.MoveKindCastling:
		return m.castlingValue
	case common.MoveKindMany:
		var total Currency
		for i, sub := range move.Sequence {
			total += m.MoveValue(sub).MulFloat(math.Pow(m.moveInterestRate, float64(i)))
		}
		return total
	case common.MoveKindPass:
		return m.passValue
	}
	return 0
}

// SectorIncome is what holding the sector pays per census.
func (m Market) SectorIncome(s common.Sector) Currency {
	if s.IsCenter() {
		return m.centerSectorIncome
	}
	return m.outerSectorIncome
}

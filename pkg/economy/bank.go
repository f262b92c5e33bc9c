package economy

import (
	"errors"
	"fmt"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Bank is one player's treasury. It earns income from the board sectors
// the player controls and pays for that player's moves and purchases.
type Bank struct {
	color   common.Color
	balance Currency
	market  Market
	sectors [common.NumSectors]bool
}

// NewBank opens an empty bank that starts out owning the color's four
// home sectors.
func NewBank(color common.Color, market Market) Bank {
	var b = Bank{color: color, market: market}
	for s := common.Sector(0); s < common.NumSectors; s++ {
		b.sectors[s] = s.IsHomeFor(color)
	}
	return b
}

func (b *Bank) Color() common.Color {
	return b.color
}

func (b *Bank) Balance() Currency {
	return b.balance
}

func (b *Bank) Market() Market {
	return b.market
}

func (b *Bank) CanAfford(move common.Move) bool {
	return b.balance >= b.market.MoveValue(move)
}

func (b *Bank) Deposit(amount Currency) {
	b.balance += amount
}

func (b *Bank) Withdraw(amount Currency) error {
	if b.balance < amount {
		return ErrInsufficientFunds
	}
	b.balance -= amount
	return nil
}

// Purchase charges the bank the market price of the move.
func (b *Bank) Purchase(move common.Move) error {
	return b.Withdraw(b.market.MoveValue(move))
}

// PerformCensus recounts which sectors the bank's player controls and
// deposits the income they pay.
func (b *Bank) PerformCensus(board *common.Board) {
	b.sectors = board.ControlledSectors(b.color)
	b.balance += b.income()
}

func (b *Bank) income() Currency {
	var total Currency
	for s := common.Sector(0); s < common.NumSectors; s++ {
		if b.sectors[s] {
			total += b.market.SectorIncome(s)
		}
	}
	return total
}

func (b *Bank) String() string {
	return fmt.Sprintf("╔═══════════════╗\n║ %-5s %7s ║\n╚═══════════════╝\n", b.color, b.balance)
}
